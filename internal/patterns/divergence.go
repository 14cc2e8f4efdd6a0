package patterns

import (
	"stock-forensics/internal/quant"
	"stock-forensics/internal/types"
)

// Divergence compares the price trend and the volume trend over the
// trailing window. A rising price on fading volume is the bearish case
// and the only one that raises the tier; a falling price on rising volume
// is noted as potential accumulation.
func (d *Detector) Divergence() types.DivergenceResult {
	if len(d.series) == 0 {
		return types.DivergenceResult{
			RiskLevel:      types.RiskUnknown,
			Interpretation: "Insufficient data for divergence analysis",
		}
	}

	window := d.cfg.Patterns.DivergenceWindow
	recent := d.series
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}
	if len(recent) < 10 {
		return types.DivergenceResult{
			RiskLevel:      types.RiskUnknown,
			Interpretation: "Insufficient recent data for divergence analysis",
		}
	}

	priceTrend := quant.PercentChange(recent[len(recent)-1].Close, recent[0].Close)

	volumes := recent.Volumes()
	volStart := quant.Mean(volumes[:5])
	volEnd := quant.Mean(volumes[len(volumes)-5:])
	volumeTrend := quant.PercentChange(volEnd, volStart)

	result := types.DivergenceResult{
		PriceTrendPercent:  quant.Round2(priceTrend),
		VolumeTrendPercent: quant.Round2(volumeTrend),
		RiskLevel:          types.RiskLow,
		Interpretation:     "No significant price-volume divergence detected",
	}

	switch {
	case priceTrend > 5 && volumeTrend < -20:
		result.Detected = true
		result.Type = "BEARISH"
		result.RiskLevel = types.RiskMedium
		result.Interpretation = "Bearish divergence: price rising on declining volume, potential weakness"
	case priceTrend < -5 && volumeTrend > 20:
		result.Detected = true
		result.Type = "BULLISH"
		result.Interpretation = "Bullish divergence: price falling on rising volume, potential accumulation"
	}

	return result
}
