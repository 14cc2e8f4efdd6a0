package types

// RiskLevel is the classification tier attached to every score and finding.
type RiskLevel string

const (
	RiskLow     RiskLevel = "LOW"
	RiskMedium  RiskLevel = "MEDIUM"
	RiskHigh    RiskLevel = "HIGH"
	RiskUnknown RiskLevel = "UNKNOWN"
)

// ScoreResult is the uniform output shape of every scoring routine
// (M-Score, Z-Score). Score is nil whenever CalculationPossible is false;
// Interpretation always explains the outcome, including degraded ones.
type ScoreResult struct {
	Score               *float64           `json:"score"`
	CalculationPossible bool               `json:"calculation_possible"`
	Components          map[string]float64 `json:"components"`
	RiskLevel           RiskLevel          `json:"risk_level"`
	Interpretation      string             `json:"interpretation"`
}

// NewUnknownScore returns a degraded ScoreResult carrying only an
// explanation of why the calculation was not possible.
func NewUnknownScore(interpretation string) ScoreResult {
	return ScoreResult{
		CalculationPossible: false,
		Components:          map[string]float64{},
		RiskLevel:           RiskUnknown,
		Interpretation:      interpretation,
	}
}

// RiskFinding is a single rule-triggered red flag. Value carries the
// formatted supporting number (e.g. "-3.20%"). Findings are never mutated
// after creation.
type RiskFinding struct {
	Category    string    `json:"category"`
	Description string    `json:"flag"`
	Severity    RiskLevel `json:"severity"`
	Value       string    `json:"value"`
}
