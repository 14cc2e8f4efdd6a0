package patterns

import (
	"fmt"
	"math"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/types"
)

const tradingDaysPerYear = 252

// Volatility annualizes the standard deviation of close-to-close returns
// and reports it alongside the trailing 30-day figure and the single worst
// and best daily moves.
func (d *Detector) Volatility() types.VolatilityResult {
	closes := d.series.Closes()
	returns := quant.DailyReturns(closes)
	if len(returns) == 0 {
		return types.VolatilityResult{
			RiskLevel:      types.RiskUnknown,
			Interpretation: "No price data available for volatility analysis",
		}
	}

	annualized := quant.StdDev(returns) * math.Sqrt(tradingDaysPerYear) * 100

	recent := returns
	if len(recent) > 30 {
		recent = recent[len(recent)-30:]
	}
	recentVol := quant.StdDev(recent) * math.Sqrt(tradingDaysPerYear) * 100

	maxGain, maxLoss := returns[0], returns[0]
	for _, r := range returns[1:] {
		if r > maxGain {
			maxGain = r
		}
		if r < maxLoss {
			maxLoss = r
		}
	}

	level := types.RiskLow
	word := "low"
	switch {
	case annualized > d.cfg.Patterns.VolatilityHigh:
		level = types.RiskHigh
		word = "high"
	case annualized > d.cfg.Patterns.VolatilityMedium:
		level = types.RiskMedium
		word = "moderate"
	}

	return types.VolatilityResult{
		AnnualizedVolatility: quant.Round2(annualized),
		RecentVolatility:     quant.Round2(recentVol),
		MaxDailyGain:         quant.Round2(maxGain * 100),
		MaxDailyLoss:         quant.Round2(maxLoss * 100),
		RiskLevel:            level,
		Interpretation:       fmt.Sprintf("Annualized volatility of %.1f%% indicates %s price fluctuation", annualized, word),
	}
}
