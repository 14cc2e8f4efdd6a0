package forensic

import (
	"testing"

	"stock-forensics/internal/types"
)

func TestFinancialRedFlagsAllTriggered(t *testing.T) {
	// Negative margin (+0.2), D/E above 2 (+0.2), current ratio below 1
	// (+0.2), negative ROE (+0.15), 20% revenue decline (+0.15) = 0.9.
	data := baselineData()
	data.Ratios.ProfitMargin = -5
	data.Ratios.DebtToEquity = 2.5
	data.Ratios.CurrentRatio = 0.8
	data.Ratios.ROE = -10
	data.IncomeStatement.Periods[0].Items["Total Revenue"] = 800

	result := newTestAnalyzer(data).FinancialRedFlags()

	if result.TotalFlags != 5 {
		t.Fatalf("Expected 5 flags, got %d", result.TotalFlags)
	}
	if result.RiskScore != 0.9 {
		t.Errorf("Expected risk score 0.9, got %f", result.RiskScore)
	}
	if result.RiskLevel != types.RiskHigh {
		t.Errorf("Expected HIGH risk, got %s", result.RiskLevel)
	}
	for _, f := range result.Findings {
		if f.Severity != types.RiskHigh {
			t.Errorf("Expected HIGH severity for %s, got %s", f.Description, f.Severity)
		}
	}
}

func TestFinancialRedFlagsModerateTiers(t *testing.T) {
	data := baselineData()
	data.Ratios.ProfitMargin = 3
	data.Ratios.DebtToEquity = 1.4
	data.Ratios.CurrentRatio = 1.2

	result := newTestAnalyzer(data).FinancialRedFlags()

	if result.TotalFlags != 3 {
		t.Fatalf("Expected 3 flags, got %d", result.TotalFlags)
	}
	if result.RiskScore != 0.3 {
		t.Errorf("Expected risk score 0.3, got %f", result.RiskScore)
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected LOW risk at the 0.3 boundary, got %s", result.RiskLevel)
	}
	for _, f := range result.Findings {
		if f.Severity != types.RiskMedium {
			t.Errorf("Expected MEDIUM severity for %s, got %s", f.Description, f.Severity)
		}
	}
}

func TestFinancialRedFlagsHealthyCompany(t *testing.T) {
	result := newTestAnalyzer(baselineData()).FinancialRedFlags()

	if result.TotalFlags != 0 {
		t.Fatalf("Expected no flags, got %d", result.TotalFlags)
	}
	if result.RiskScore != 0 {
		t.Errorf("Expected risk score 0, got %f", result.RiskScore)
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected LOW risk, got %s", result.RiskLevel)
	}
}
