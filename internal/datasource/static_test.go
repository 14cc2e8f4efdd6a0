package datasource

import (
	"context"
	"reflect"
	"testing"

	"stock-forensics/internal/store"
)

func TestStaticFetchDeterministic(t *testing.T) {
	source := NewStaticDataSource()

	first, err := source.FetchCompanyData(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("FetchCompanyData failed: %v", err)
	}
	second, err := source.FetchCompanyData(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("FetchCompanyData failed: %v", err)
	}

	if !reflect.DeepEqual(first.Prices, second.Prices) {
		t.Error("Expected identical price series for repeated fetches")
	}
	if !reflect.DeepEqual(first.IncomeStatement, second.IncomeStatement) {
		t.Error("Expected identical statements for repeated fetches")
	}
}

func TestStaticFetchShape(t *testing.T) {
	data, err := NewStaticDataSource().FetchCompanyData(context.Background(), "INFY")
	if err != nil {
		t.Fatalf("FetchCompanyData failed: %v", err)
	}

	if data.Symbol != "INFY" {
		t.Errorf("Expected symbol INFY, got %s", data.Symbol)
	}
	if len(data.Prices) != 126 {
		t.Errorf("Expected 126 bars, got %d", len(data.Prices))
	}
	if data.IncomeStatement.NumPeriods() != 2 {
		t.Errorf("Expected 2 income periods, got %d", data.IncomeStatement.NumPeriods())
	}
	if data.BalanceSheet.NumPeriods() != 2 {
		t.Errorf("Expected 2 balance periods, got %d", data.BalanceSheet.NumPeriods())
	}
	if len(data.Articles) == 0 {
		t.Error("Expected canned articles")
	}

	// The scoring paths depend on these line items being present.
	for _, item := range []string{"Total Revenue", "Cost Of Revenue", "Net Income", "EBIT"} {
		if _, ok := data.IncomeStatement.Periods[0].Items[item]; !ok {
			t.Errorf("Missing income line item %q", item)
		}
	}
	for _, item := range []string{"Total Assets", "Total Current Assets", "Accounts Receivable", "Retained Earnings"} {
		if _, ok := data.BalanceSheet.Periods[0].Items[item]; !ok {
			t.Errorf("Missing balance line item %q", item)
		}
	}
}

func TestStaticSeriesVariesBySymbol(t *testing.T) {
	source := NewStaticDataSource()
	a, _ := source.FetchCompanyData(context.Background(), "TCS")
	b, _ := source.FetchCompanyData(context.Background(), "INFY")

	if reflect.DeepEqual(a.Prices, b.Prices) {
		t.Error("Expected different symbols to produce different series")
	}
}

func TestFactorySelection(t *testing.T) {
	cfg := store.DefaultConfig()

	source, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if source.Name() != "static" {
		t.Errorf("Expected static source, got %s", source.Name())
	}

	cfg.DataSource = "LIVE"
	cfg.Live.CacheDir = t.TempDir()
	source, err = New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if source.Name() != "live" {
		t.Errorf("Expected live source, got %s", source.Name())
	}

	cfg.DataSource = "YAHOO"
	if _, err := New(cfg); err == nil {
		t.Error("Expected an error for an unknown source type")
	}
}
