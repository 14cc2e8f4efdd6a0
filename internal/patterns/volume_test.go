package patterns

import (
	"testing"

	"stock-forensics/internal/types"
)

func TestVolumeSpikesSingleBurst(t *testing.T) {
	// 99 bars at volume 10 plus one at 110: mean is 11, so the burst is
	// exactly 10x and the only bar above the 2x cutoff.
	closes := make([]float64, 100)
	volumes := make([]float64, 100)
	for i := range closes {
		closes[i] = 50
		volumes[i] = 10
	}
	volumes[60] = 110

	result := newTestDetector(makeSeries(closes, volumes)).VolumeSpikes()

	if result.SpikesDetected != 1 {
		t.Fatalf("Expected 1 spike, got %d", result.SpikesDetected)
	}
	if result.AverageVolume != 11 {
		t.Errorf("Expected average volume 11, got %f", result.AverageVolume)
	}
	if result.Spikes[0].Multiplier != 10.0 {
		t.Errorf("Expected multiplier 10.0, got %f", result.Spikes[0].Multiplier)
	}
	if result.Spikes[0].Date != "2026-03-06" {
		t.Errorf("Unexpected spike date %s", result.Spikes[0].Date)
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected LOW risk for a single spike, got %s", result.RiskLevel)
	}
}

func TestVolumeSpikesTopTenOrdering(t *testing.T) {
	closes := make([]float64, 60)
	volumes := make([]float64, 60)
	for i := range closes {
		closes[i] = 50
		volumes[i] = 10
	}
	// Twelve spikes with increasing magnitude, all far enough above the
	// inflated mean (318) to clear the 2x cutoff.
	for i := 0; i < 12; i++ {
		volumes[i*4] = 1000 + float64(i)*100
	}

	result := newTestDetector(makeSeries(closes, volumes)).VolumeSpikes()

	if result.SpikesDetected != 12 {
		t.Fatalf("Expected 12 spikes counted, got %d", result.SpikesDetected)
	}
	if len(result.Spikes) != 10 {
		t.Fatalf("Expected list truncated to 10, got %d", len(result.Spikes))
	}
	for i := 1; i < len(result.Spikes); i++ {
		if result.Spikes[i].Multiplier > result.Spikes[i-1].Multiplier {
			t.Fatal("Expected spikes sorted by descending multiplier")
		}
	}
	if result.RiskLevel != types.RiskHigh {
		t.Errorf("Expected HIGH risk for 12 spikes, got %s", result.RiskLevel)
	}
}

func TestVolumeSpikesEmptySeries(t *testing.T) {
	result := newTestDetector(nil).VolumeSpikes()
	if result.RiskLevel != types.RiskUnknown {
		t.Errorf("Expected UNKNOWN risk on empty series, got %s", result.RiskLevel)
	}
	if len(result.Spikes) != 0 {
		t.Errorf("Expected no spikes, got %d", len(result.Spikes))
	}
}
