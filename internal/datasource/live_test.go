package datasource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stock-forensics/internal/store"
)

func TestAssembleSeriesSortedAndMerged(t *testing.T) {
	// Price dataset arrives out of order; the volume dataset carries one
	// day the price dataset does not.
	raw := `{"datasets":[
		{"metric":"Price","label":"Price on NSE","values":[
			["2024-01-03","102"],["2024-01-02","101"],["2024-01-04","103"]]},
		{"metric":"Volume","label":"Volume","values":[
			["2024-01-01","500"],["2024-01-02","600"],["2024-01-03","700"],["2024-01-04","800"]]}
	]}`
	var chart chartResponse
	if err := json.Unmarshal([]byte(raw), &chart); err != nil {
		t.Fatalf("fixture does not parse: %v", err)
	}

	series := assembleSeries(chart)

	if len(series) != 3 {
		t.Fatalf("Expected 3 bars (volume-only day dropped), got %d", len(series))
	}
	for i := 1; i < len(series); i++ {
		if !series[i-1].Date.Before(series[i].Date) {
			t.Fatalf("Series not ascending by date: %v then %v", series[i-1].Date, series[i].Date)
		}
	}
	if series[0].Close != 101 || series[0].Volume != 600 {
		t.Errorf("Expected first bar close 101 volume 600, got %f / %f", series[0].Close, series[0].Volume)
	}
	for _, bar := range series {
		if bar.Close == 0 {
			t.Errorf("Bar %v has no price", bar.Date)
		}
	}
}

func TestAssembleSeriesSkipsBadDates(t *testing.T) {
	raw := `{"datasets":[{"metric":"Price","label":"Price","values":[
		["not-a-date","100"],["2024-01-02","101"]]}]}`
	var chart chartResponse
	if err := json.Unmarshal([]byte(raw), &chart); err != nil {
		t.Fatalf("fixture does not parse: %v", err)
	}

	series := assembleSeries(chart)
	if len(series) != 1 {
		t.Fatalf("Expected 1 bar, got %d", len(series))
	}
}

const companyPageHTML = `<html><body>
<h1>Test Company</h1>
<ul id="top-ratios">
<li><span class="name">Market Cap</span><span class="number">1,000</span></li>
<li><span class="name">Current Price</span><span class="number">250</span></li>
</ul>
<section id="profit-loss"><table>
<thead><tr><th></th><th>FY2024</th><th>FY2025</th></tr></thead>
<tbody><tr><td>Total Revenue</td><td>900</td><td>1000</td></tr></tbody>
</table></section>
</body></html>`

func newChartHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/company/") {
			if status != http.StatusOK {
				w.WriteHeader(status)
				return
			}
			w.Write([]byte(`{"datasets":[{"metric":"Price","label":"Price","values":[["2024-01-02","101"]]}]}`))
			return
		}
		w.Write([]byte(companyPageHTML))
	}
}

func newTestLiveSource(t *testing.T, serverURL string) *LiveDataSource {
	cfg := store.DefaultConfig()
	cfg.Live.BaseURL = serverURL
	cfg.Live.CacheDir = t.TempDir()
	return NewLiveDataSource(cfg)
}

func TestLiveFetchSkipsCacheOnPriceFailure(t *testing.T) {
	server := httptest.NewServer(newChartHandler(http.StatusInternalServerError))
	defer server.Close()

	source := newTestLiveSource(t, server.URL)
	data, err := source.FetchCompanyData(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("FetchCompanyData failed: %v", err)
	}
	if len(data.Prices) != 0 {
		t.Errorf("Expected no prices, got %d bars", len(data.Prices))
	}
	if data.IncomeStatement.NumPeriods() != 2 {
		t.Errorf("Expected parsed statements despite price failure, got %d periods",
			data.IncomeStatement.NumPeriods())
	}

	// The degraded bundle must not be cached for the full TTL.
	if _, ok := source.cache.Get("company:TCS"); ok {
		t.Error("Expected priceless bundle not to be cached")
	}
}

func TestLiveFetchCachesCompleteBundle(t *testing.T) {
	server := httptest.NewServer(newChartHandler(http.StatusOK))
	defer server.Close()

	source := newTestLiveSource(t, server.URL)
	data, err := source.FetchCompanyData(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("FetchCompanyData failed: %v", err)
	}
	if len(data.Prices) != 1 {
		t.Fatalf("Expected 1 price bar, got %d", len(data.Prices))
	}

	if _, ok := source.cache.Get("company:TCS"); !ok {
		t.Error("Expected complete bundle to be cached")
	}
}
