package forensic

import (
	"testing"

	"stock-forensics/internal/types"
)

func TestOwnershipAnalysisNormalPattern(t *testing.T) {
	result := newTestAnalyzer(baselineData()).OwnershipAnalysis()

	if len(result.Findings) != 0 {
		t.Fatalf("Expected no findings, got %d", len(result.Findings))
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected LOW risk, got %s", result.RiskLevel)
	}
	if result.Interpretation != "Shareholding pattern appears normal with no significant red flags." {
		t.Errorf("Unexpected interpretation: %s", result.Interpretation)
	}
	if result.InsiderOwnershipPercent != 14.2 {
		t.Errorf("Expected insider ownership 14.2, got %f", result.InsiderOwnershipPercent)
	}
}

func TestOwnershipAnalysisInsiderExtremes(t *testing.T) {
	data := baselineData()
	data.Shareholding.InsiderOwnership = 0.5
	result := newTestAnalyzer(data).OwnershipAnalysis()
	if result.RiskLevel != types.RiskMedium {
		t.Errorf("Expected MEDIUM risk for very low insider ownership, got %s", result.RiskLevel)
	}
	if len(result.Findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(result.Findings))
	}

	data.Shareholding.InsiderOwnership = 80
	result = newTestAnalyzer(data).OwnershipAnalysis()
	if result.RiskLevel != types.RiskMedium {
		t.Errorf("Expected MEDIUM risk for very high insider ownership, got %s", result.RiskLevel)
	}
}

func TestOwnershipAnalysisInstitutionalNote(t *testing.T) {
	// A thin institutional stake is reported but does not move the level.
	data := baselineData()
	data.Shareholding.InstitutionalOwnership = 5

	result := newTestAnalyzer(data).OwnershipAnalysis()

	if len(result.Findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(result.Findings))
	}
	if result.Findings[0].Severity != types.RiskLow {
		t.Errorf("Expected LOW severity finding, got %s", result.Findings[0].Severity)
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected overall level to stay LOW, got %s", result.RiskLevel)
	}
}

func TestOwnershipAnalysisShortInterest(t *testing.T) {
	data := baselineData()
	data.Shareholding.ShortRatio = 12

	result := newTestAnalyzer(data).OwnershipAnalysis()

	if result.RiskLevel != types.RiskHigh {
		t.Errorf("Expected HIGH risk for elevated short interest, got %s", result.RiskLevel)
	}
	if result.Interpretation != "Found 1 potential concerns in shareholding pattern." {
		t.Errorf("Unexpected interpretation: %s", result.Interpretation)
	}
}
