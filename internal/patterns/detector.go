// Package patterns detects unusual price and volume behavior in a daily
// OHLCV series: volume spikes, rolling-band price anomalies, overnight
// gaps, price/volume divergence, and volatility. Each detector degrades to
// an UNKNOWN or empty result when the series is too short; none of them
// can fail the overall report.
package patterns

import (
	"context"
	"time"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/store"
	"stock-forensics/internal/trace"
	"stock-forensics/internal/types"
)

const dateLayout = "2006-01-02"

// Detector runs the five pattern checks over one immutable price series.
// Safe for concurrent use.
type Detector struct {
	cfg    *store.Config
	series types.PriceSeries
}

// NewDetector creates a detector over a chronologically ascending series.
func NewDetector(cfg *store.Config, series types.PriceSeries) *Detector {
	return &Detector{
		cfg:    cfg,
		series: series,
	}
}

// GenerateReport runs all five detectors and aggregates their risk tiers.
// Each detector contributes a fixed value chosen by its own tier; the
// pattern score is the unweighted mean of the five contributions.
func (d *Detector) GenerateReport(ctx context.Context) types.PatternReport {
	_, span := trace.StartSpan(ctx, "pattern-report")
	defer span.End()

	volumeSpikes := d.VolumeSpikes()
	priceAnomalies := d.PriceAnomalies()
	gapMoves := d.GapMoves()
	divergence := d.Divergence()
	volatility := d.Volatility()

	contributions := []float64{
		tierValue(volumeSpikes.RiskLevel, 0.8, 0.5),
		tierValue(priceAnomalies.RiskLevel, 0.7, 0.4),
		tierValue(gapMoves.RiskLevel, 0.6, 0.4),
		divergenceValue(divergence.RiskLevel),
		tierValue(volatility.RiskLevel, 0.7, 0.4),
	}
	score := quant.Mean(contributions)

	return types.PatternReport{
		Timestamp:      time.Now(),
		VolumeSpikes:   volumeSpikes,
		PriceAnomalies: priceAnomalies,
		GapMoves:       gapMoves,
		Divergence:     divergence,
		Volatility:     volatility,
		RiskScore:      quant.Round2(score),
		RiskLevel:      patternLevel(score),
	}
}

func tierValue(level types.RiskLevel, high, medium float64) float64 {
	switch level {
	case types.RiskHigh:
		return high
	case types.RiskMedium:
		return medium
	default:
		return 0.2
	}
}

// divergenceValue: the divergence detector never reports HIGH on its own;
// only a bearish (MEDIUM) divergence lifts its contribution.
func divergenceValue(level types.RiskLevel) float64 {
	if level == types.RiskMedium {
		return 0.5
	}
	return 0.2
}

// patternLevel uses the pattern-specific 0.6/0.4 boundaries, both
// exclusive.
func patternLevel(score float64) types.RiskLevel {
	switch {
	case score > 0.6:
		return types.RiskHigh
	case score > 0.4:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}
