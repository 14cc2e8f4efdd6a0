package patterns

import (
	"fmt"
	"math"
	"sort"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/types"
)

// PriceAnomalies flags closes that breach the rolling mean by the
// configured number of standard deviations. The band needs a full window
// of history, so the first window-1 bars can never be flagged.
func (d *Detector) PriceAnomalies() types.PriceAnomalyResult {
	if len(d.series) == 0 {
		return types.PriceAnomalyResult{
			Anomalies:      []types.PriceAnomaly{},
			RiskLevel:      types.RiskUnknown,
			Interpretation: "No price data available for anomaly detection",
		}
	}

	window := d.cfg.Patterns.AnomalyWindow
	sigmas := d.cfg.Patterns.AnomalyStdDevs
	closes := d.series.Closes()

	anomalies := make([]types.PriceAnomaly, 0)
	for i := range d.series {
		sd := quant.RollingStdDev(closes, i, window)
		if math.IsNaN(sd) {
			continue
		}
		ma := quant.RollingMean(closes, i, window)
		upper := ma + sigmas*sd
		lower := ma - sigmas*sd

		price := closes[i]
		if price <= upper && price >= lower {
			continue
		}
		kind := "SPIKE"
		if price < lower {
			kind = "DROP"
		}
		anomalies = append(anomalies, types.PriceAnomaly{
			Date:             d.series[i].Date.Format(dateLayout),
			Price:            quant.Round2(price),
			MovingAverage:    quant.Round2(ma),
			DeviationPercent: quant.Round2(quant.SafeDivide(price-ma, ma, 0) * 100),
			Type:             kind,
		})
	}

	total := len(anomalies)
	sort.SliceStable(anomalies, func(i, j int) bool {
		return math.Abs(anomalies[i].DeviationPercent) > math.Abs(anomalies[j].DeviationPercent)
	})
	if len(anomalies) > 10 {
		anomalies = anomalies[:10]
	}

	level := types.RiskLow
	switch {
	case total > 15:
		level = types.RiskHigh
	case total > 8:
		level = types.RiskMedium
	}

	return types.PriceAnomalyResult{
		AnomaliesDetected: total,
		Anomalies:         anomalies,
		RiskLevel:         level,
		Interpretation:    fmt.Sprintf("%d close(s) outside the %d-day %.0f-sigma band", total, window, sigmas),
	}
}
