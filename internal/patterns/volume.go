package patterns

import (
	"fmt"
	"sort"

	"stock-forensics/internal/quant"
	"stock-forensics/internal/types"
)

// VolumeSpikes flags days whose volume exceeds the series mean by the
// configured multiple. The spike day's own volume is part of the mean.
func (d *Detector) VolumeSpikes() types.VolumeSpikeResult {
	if len(d.series) == 0 {
		return types.VolumeSpikeResult{
			Spikes:         []types.VolumeSpike{},
			RiskLevel:      types.RiskUnknown,
			Interpretation: "No price data available for volume analysis",
		}
	}

	threshold := d.cfg.Patterns.VolumeSpikeThreshold
	volumes := d.series.Volumes()
	avg := quant.Mean(volumes)

	spikes := make([]types.VolumeSpike, 0)
	for i, bar := range d.series {
		if avg > 0 && volumes[i] > avg*threshold {
			spikes = append(spikes, types.VolumeSpike{
				Date:       bar.Date.Format(dateLayout),
				Volume:     bar.Volume,
				Multiplier: quant.Round2(volumes[i] / avg),
				ClosePrice: quant.Round2(bar.Close),
			})
		}
	}

	total := len(spikes)
	sort.SliceStable(spikes, func(i, j int) bool {
		return spikes[i].Multiplier > spikes[j].Multiplier
	})
	if len(spikes) > 10 {
		spikes = spikes[:10]
	}

	level := types.RiskLow
	switch {
	case total > 10:
		level = types.RiskHigh
	case total > 5:
		level = types.RiskMedium
	}

	return types.VolumeSpikeResult{
		Spikes:         spikes,
		SpikesDetected: total,
		AverageVolume:  quant.Round2(avg),
		RiskLevel:      level,
		Interpretation: fmt.Sprintf("%d volume spike(s) above %.1fx the average daily volume", total, threshold),
	}
}
