package forensic

import (
	"math"
	"testing"

	"stock-forensics/internal/types"
)

func TestBeneishMScoreNeutralBaseline(t *testing.T) {
	// Identical periods mean every ratio index is exactly 1.0 and TATA is
	// 0.0, so M = -4.84 + sum(weights) = -2.48.
	result := newTestAnalyzer(baselineData()).BeneishMScore()

	if !result.CalculationPossible {
		t.Fatalf("Expected calculation to be possible: %s", result.Interpretation)
	}
	if result.Score == nil {
		t.Fatal("Expected a score value")
	}
	if math.Abs(*result.Score-(-2.48)) > 1e-9 {
		t.Errorf("Expected M-Score -2.48, got %f", *result.Score)
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected LOW risk, got %s", result.RiskLevel)
	}

	for _, name := range []string{"DSRI", "GMI", "AQI", "SGI", "DEPI", "SGAI", "LVGI"} {
		if result.Components[name] != 1.0 {
			t.Errorf("Expected %s = 1.0, got %f", name, result.Components[name])
		}
	}
	if result.Components["TATA"] != 0.0 {
		t.Errorf("Expected TATA = 0.0, got %f", result.Components["TATA"])
	}
}

func TestBeneishMScoreAccrualsPushHigh(t *testing.T) {
	// Net income 100 above operating cash flow on assets of 1000 gives
	// TATA = 0.1, lifting M by 0.4679 to -2.012, above the -2.22 cutoff.
	data := baselineData()
	data.IncomeStatement.Periods[0].Items["Net Income"] = 200

	result := newTestAnalyzer(data).BeneishMScore()

	if !result.CalculationPossible {
		t.Fatalf("Expected calculation to be possible: %s", result.Interpretation)
	}
	if math.Abs(*result.Score-(-2.012)) > 1e-9 {
		t.Errorf("Expected M-Score -2.012, got %f", *result.Score)
	}
	if result.RiskLevel != types.RiskHigh {
		t.Errorf("Expected HIGH risk, got %s", result.RiskLevel)
	}
	if result.Components["TATA"] != 0.1 {
		t.Errorf("Expected TATA = 0.1, got %f", result.Components["TATA"])
	}
}

func TestClassifyMScoreBoundary(t *testing.T) {
	analyzer := newTestAnalyzer(baselineData())
	cases := []struct {
		m    float64
		want types.RiskLevel
	}{
		{-3.0, types.RiskLow},
		{-2.23, types.RiskLow},
		{-2.22, types.RiskLow},
		{-2.21, types.RiskHigh},
		{0.0, types.RiskHigh},
	}
	for _, c := range cases {
		level, interpretation := analyzer.classifyMScore(c.m)
		if level != c.want {
			t.Errorf("classifyMScore(%f): expected %s, got %s", c.m, c.want, level)
		}
		if interpretation == "" {
			t.Errorf("classifyMScore(%f): expected an interpretation", c.m)
		}
	}
}

func TestBeneishMScoreMissingData(t *testing.T) {
	result := newTestAnalyzer(&types.CompanyData{Symbol: "EMPTY"}).BeneishMScore()
	if result.CalculationPossible {
		t.Error("Expected calculation to be impossible with no statements")
	}
	if result.Interpretation != "insufficient financial data for M-Score calculation" {
		t.Errorf("Unexpected interpretation: %s", result.Interpretation)
	}

	data := baselineData()
	data.IncomeStatement.Periods = data.IncomeStatement.Periods[:1]
	result = newTestAnalyzer(data).BeneishMScore()
	if result.CalculationPossible {
		t.Error("Expected calculation to be impossible with a single period")
	}
	if result.Interpretation != "need at least 2 periods of data for M-Score calculation" {
		t.Errorf("Unexpected interpretation: %s", result.Interpretation)
	}
}
