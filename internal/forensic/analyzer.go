// Package forensic computes the statement-level fraud and distress
// indicators: the Beneish M-Score, the Altman Z-Score, the ownership
// review, and the financial red-flag rules, aggregated into a single
// forensic risk score.
//
// Every public method is terminal for its own failures. Whatever happens
// during extraction, the caller receives a well-formed result; degraded
// inputs surface through ScoreResult.CalculationPossible and the
// interpretation text, never through an error or panic.
package forensic

import (
	"context"
	"time"

	"stock-forensics/internal/logger"
	"stock-forensics/internal/quant"
	"stock-forensics/internal/store"
	"stock-forensics/internal/trace"
	"stock-forensics/internal/types"
)

// Analyzer scores one company's statement data. It never mutates the
// CompanyData it is given, so a single Analyzer is safe for concurrent use.
type Analyzer struct {
	cfg  *store.Config
	data *types.CompanyData
}

// NewAnalyzer creates an analyzer over immutable company data.
func NewAnalyzer(cfg *store.Config, data *types.CompanyData) *Analyzer {
	return &Analyzer{
		cfg:  cfg,
		data: data,
	}
}

// GenerateReport runs all four statement-level checks and aggregates them.
//
// The forensic score is the mean of up to three contributions: the M-Score
// mapped to {HIGH: 1.0, else 0.3} and the Z-Score mapped to {HIGH: 1.0,
// MEDIUM: 0.5, else 0.2}, each counted only when its calculation was
// possible, plus the red-flag rule score, which is always present. With no usable
// contribution the score defaults to 0.5.
func (a *Analyzer) GenerateReport(ctx context.Context) types.ForensicReport {
	ctx, span := trace.StartSpan(ctx, "forensic-report")
	defer span.End()

	symbol := a.data.Symbol

	mScore := a.BeneishMScore()
	if mScore.Score != nil {
		logger.Score(ctx, symbol, "beneish_m_score", *mScore.Score, string(mScore.RiskLevel))
	}

	zScore := a.AltmanZScore()
	if zScore.Score != nil {
		logger.Score(ctx, symbol, "altman_z_score", *zScore.Score, string(zScore.RiskLevel))
	}

	ownership := a.OwnershipAnalysis()
	redFlags := a.FinancialRedFlags()
	for _, f := range redFlags.Findings {
		logger.Finding(ctx, symbol, f.Category, string(f.Severity), f.Description)
	}

	var contributions []float64
	if mScore.CalculationPossible {
		if mScore.RiskLevel == types.RiskHigh {
			contributions = append(contributions, 1.0)
		} else {
			contributions = append(contributions, 0.3)
		}
	}
	if zScore.CalculationPossible {
		switch zScore.RiskLevel {
		case types.RiskHigh:
			contributions = append(contributions, 1.0)
		case types.RiskMedium:
			contributions = append(contributions, 0.5)
		default:
			contributions = append(contributions, 0.2)
		}
	}
	contributions = append(contributions, redFlags.RiskScore)

	score := 0.5
	if len(contributions) > 0 {
		score = quant.Mean(contributions)
	}

	return types.ForensicReport{
		Symbol:    symbol,
		Timestamp: time.Now(),
		MScore:    mScore,
		ZScore:    zScore,
		Ownership: ownership,
		RedFlags:  redFlags,
		RiskScore: quant.Round2(score),
		RiskLevel: riskLevelFromScore(score),
	}
}

// riskLevelFromScore maps an aggregate score in [0,1] to the standard
// forensic tiers. Both boundaries are exclusive.
func riskLevelFromScore(score float64) types.RiskLevel {
	switch {
	case score > 0.6:
		return types.RiskHigh
	case score > 0.3:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}
