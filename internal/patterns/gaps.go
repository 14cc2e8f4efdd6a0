package patterns

import (
	"fmt"
	"math"
	"sort"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/types"
)

// GapMoves flags opens that gapped away from the prior close by more than
// the configured percentage. Repeated gap-downs drive the risk tier; gap-ups
// are reported but carry no risk on their own.
func (d *Detector) GapMoves() types.GapResult {
	if len(d.series) == 0 {
		return types.GapResult{
			Gaps:           []types.GapMove{},
			RiskLevel:      types.RiskUnknown,
			Interpretation: "No price data available for gap analysis",
		}
	}

	threshold := d.cfg.Patterns.GapThresholdPercent

	gaps := make([]types.GapMove, 0)
	for i := 1; i < len(d.series); i++ {
		prevClose := d.series[i-1].Close
		if prevClose == 0 || math.IsNaN(prevClose) {
			continue
		}
		gapPct := (d.series[i].Open - prevClose) / prevClose * 100
		if math.Abs(gapPct) <= threshold {
			continue
		}
		kind := "GAP_UP"
		if gapPct < 0 {
			kind = "GAP_DOWN"
		}
		gaps = append(gaps, types.GapMove{
			Date:          d.series[i].Date.Format(dateLayout),
			GapPercent:    quant.Round2(gapPct),
			OpenPrice:     quant.Round2(d.series[i].Open),
			PreviousClose: quant.Round2(prevClose),
			Type:          kind,
		})
	}

	total := len(gaps)
	gapUp, gapDown := 0, 0
	for _, g := range gaps {
		if g.Type == "GAP_UP" {
			gapUp++
		} else {
			gapDown++
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return math.Abs(gaps[i].GapPercent) > math.Abs(gaps[j].GapPercent)
	})
	if len(gaps) > 10 {
		gaps = gaps[:10]
	}

	level := types.RiskLow
	switch {
	case gapDown > 5:
		level = types.RiskHigh
	case gapDown > 2:
		level = types.RiskMedium
	}

	return types.GapResult{
		GapsDetected:   total,
		Gaps:           gaps,
		GapUpCount:     gapUp,
		GapDownCount:   gapDown,
		RiskLevel:      level,
		Interpretation: fmt.Sprintf("%d overnight gap(s) larger than %.1f%%", total, threshold),
	}
}
