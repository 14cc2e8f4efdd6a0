package patterns

import (
	"math"
	"testing"

	"stock-forensics/internal/types"
)

func TestPriceAnomaliesFlatSeries(t *testing.T) {
	result := newTestDetector(flatSeries(30, 100, 1000)).PriceAnomalies()
	if result.AnomaliesDetected != 0 {
		t.Errorf("Expected no anomalies on a flat series, got %d", result.AnomaliesDetected)
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected LOW risk, got %s", result.RiskLevel)
	}
}

func TestPriceAnomaliesSingleSpike(t *testing.T) {
	// 25 bars at 100 then one at 150. The trailing 20-bar window at the
	// last bar has mean 102.5 and sample stddev ~11.18, putting the upper
	// band near 124.9, well below 150.
	closes := make([]float64, 26)
	volumes := make([]float64, 26)
	for i := range closes {
		closes[i] = 100
		volumes[i] = 1000
	}
	closes[25] = 150

	result := newTestDetector(makeSeries(closes, volumes)).PriceAnomalies()

	if result.AnomaliesDetected != 1 {
		t.Fatalf("Expected 1 anomaly, got %d", result.AnomaliesDetected)
	}
	anomaly := result.Anomalies[0]
	if anomaly.Type != "SPIKE" {
		t.Errorf("Expected SPIKE, got %s", anomaly.Type)
	}
	if anomaly.Price != 150 {
		t.Errorf("Expected price 150, got %f", anomaly.Price)
	}
	if math.Abs(anomaly.MovingAverage-102.5) > 1e-9 {
		t.Errorf("Expected moving average 102.5, got %f", anomaly.MovingAverage)
	}
	// (150 - 102.5) / 102.5 = 46.34%
	if anomaly.DeviationPercent != 46.34 {
		t.Errorf("Expected deviation 46.34, got %f", anomaly.DeviationPercent)
	}
	if result.RiskLevel != types.RiskLow {
		t.Errorf("Expected LOW risk for a single anomaly, got %s", result.RiskLevel)
	}
}

func TestPriceAnomaliesDrop(t *testing.T) {
	closes := make([]float64, 26)
	volumes := make([]float64, 26)
	for i := range closes {
		closes[i] = 100
		volumes[i] = 1000
	}
	closes[25] = 60

	result := newTestDetector(makeSeries(closes, volumes)).PriceAnomalies()

	if result.AnomaliesDetected != 1 {
		t.Fatalf("Expected 1 anomaly, got %d", result.AnomaliesDetected)
	}
	if result.Anomalies[0].Type != "DROP" {
		t.Errorf("Expected DROP, got %s", result.Anomalies[0].Type)
	}
}

func TestPriceAnomaliesShortSeries(t *testing.T) {
	// Fewer bars than the rolling window means no band is ever defined.
	result := newTestDetector(flatSeries(10, 100, 1000)).PriceAnomalies()
	if result.AnomaliesDetected != 0 {
		t.Errorf("Expected no anomalies, got %d", result.AnomaliesDetected)
	}
}
