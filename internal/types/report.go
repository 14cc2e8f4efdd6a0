package types

import "time"

// ForensicReport is the statement-level half of the analysis: both index
// scores, the ownership review, the red-flag rule results, and their
// aggregation into a single forensic risk score in [0,1].
type ForensicReport struct {
	Symbol    string          `json:"symbol"`
	Timestamp time.Time       `json:"timestamp"`
	MScore    ScoreResult     `json:"beneish_m_score"`
	ZScore    ScoreResult     `json:"altman_z_score"`
	Ownership OwnershipResult `json:"ownership_analysis"`
	RedFlags  RedFlagResult   `json:"financial_red_flags"`
	RiskScore float64         `json:"overall_risk_score"`
	RiskLevel RiskLevel       `json:"overall_risk_level"`
}

// OwnershipResult is the outcome of the ownership rule pass.
type OwnershipResult struct {
	InsiderOwnershipPercent       float64       `json:"insider_ownership_percent"`
	InstitutionalOwnershipPercent float64       `json:"institutional_ownership_percent"`
	Findings                      []RiskFinding `json:"red_flags"`
	RiskLevel                     RiskLevel     `json:"risk_level"`
	Interpretation                string        `json:"interpretation"`
}

// RedFlagResult is the outcome of the additive ratio rule pass. RiskScore
// is capped at 1.0 regardless of how many rules fire.
type RedFlagResult struct {
	Findings   []RiskFinding `json:"red_flags"`
	TotalFlags int           `json:"total_flags"`
	RiskScore  float64       `json:"risk_score"`
	RiskLevel  RiskLevel     `json:"risk_level"`
}

// VolumeSpike is one bar whose volume breached the spike threshold.
type VolumeSpike struct {
	Date       string  `json:"date"`
	Volume     float64 `json:"volume"`
	Multiplier float64 `json:"multiplier"`
	ClosePrice float64 `json:"close_price"`
}

// VolumeSpikeResult reports unusual volume activity over the whole series.
type VolumeSpikeResult struct {
	SpikesDetected int           `json:"spikes_detected"`
	Spikes         []VolumeSpike `json:"spike_dates"`
	AverageVolume  float64       `json:"average_volume"`
	RiskLevel      RiskLevel     `json:"risk_level"`
	Interpretation string        `json:"interpretation,omitempty"`
}

// PriceAnomaly is a bar whose close breached the rolling 2-sigma band.
type PriceAnomaly struct {
	Date             string  `json:"date"`
	Price            float64 `json:"price"`
	MovingAverage    float64 `json:"moving_average"`
	DeviationPercent float64 `json:"deviation_percent"`
	Type             string  `json:"type"` // "SPIKE" or "DROP"
}

// PriceAnomalyResult reports rolling-band breaches of the close price.
type PriceAnomalyResult struct {
	AnomaliesDetected int            `json:"anomalies_detected"`
	Anomalies         []PriceAnomaly `json:"anomaly_dates"`
	RiskLevel         RiskLevel      `json:"risk_level"`
	Interpretation    string         `json:"interpretation,omitempty"`
}

// GapMove is an open that gapped away from the prior close.
type GapMove struct {
	Date          string  `json:"date"`
	GapPercent    float64 `json:"gap_percent"`
	OpenPrice     float64 `json:"open_price"`
	PreviousClose float64 `json:"previous_close"`
	Type          string  `json:"type"` // "GAP_UP" or "GAP_DOWN"
}

// GapResult reports significant overnight gaps. Risk is driven by the
// number of gap-down events.
type GapResult struct {
	GapsDetected   int       `json:"gaps_detected"`
	Gaps           []GapMove `json:"gap_dates"`
	GapUpCount     int       `json:"gap_up_count"`
	GapDownCount   int       `json:"gap_down_count"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Interpretation string    `json:"interpretation,omitempty"`
}

// DivergenceResult reports a price/volume trend divergence over the
// trailing window.
type DivergenceResult struct {
	Detected           bool      `json:"divergence_detected"`
	Type               string    `json:"divergence_type,omitempty"` // "BEARISH" or "BULLISH"
	PriceTrendPercent  float64   `json:"price_trend_percent"`
	VolumeTrendPercent float64   `json:"volume_trend_percent"`
	RiskLevel          RiskLevel `json:"risk_level"`
	Interpretation     string    `json:"interpretation"`
}

// VolatilityResult reports annualized close-to-close volatility.
type VolatilityResult struct {
	AnnualizedVolatility float64   `json:"annualized_volatility"`
	RecentVolatility     float64   `json:"recent_volatility"`
	MaxDailyGain         float64   `json:"max_daily_gain"`
	MaxDailyLoss         float64   `json:"max_daily_loss"`
	RiskLevel            RiskLevel `json:"risk_level"`
	Interpretation       string    `json:"interpretation,omitempty"`
}

// PatternReport bundles the five price/volume detectors and their
// aggregated risk score in [0,1].
type PatternReport struct {
	Timestamp      time.Time          `json:"timestamp"`
	VolumeSpikes   VolumeSpikeResult  `json:"volume_spikes"`
	PriceAnomalies PriceAnomalyResult `json:"price_anomalies"`
	GapMoves       GapResult          `json:"gap_movements"`
	Divergence     DivergenceResult   `json:"price_volume_divergence"`
	Volatility     VolatilityResult   `json:"volatility_metrics"`
	RiskScore      float64            `json:"overall_pattern_risk_score"`
	RiskLevel      RiskLevel          `json:"overall_risk_level"`
}

// SentimentResult summarizes per-article keyword sentiment.
type SentimentResult struct {
	Score         float64 `json:"sentiment_score"` // -1..1
	Sentiment     string  `json:"sentiment"`       // POSITIVE, NEGATIVE, NEUTRAL
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	TotalArticles int     `json:"total_articles"`
}

// SignalArticle is one article that matched risk keywords.
type SignalArticle struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	URL      string   `json:"url"`
	Date     string   `json:"date"`
}

// RiskSignalResult is the keyword risk scan over all articles. RiskScore
// is in [0,1] and feeds the top-level aggregation.
type RiskSignalResult struct {
	HighRisk   []SignalArticle `json:"high_risk"`
	MediumRisk []SignalArticle `json:"medium_risk"`
	LowRisk    []SignalArticle `json:"low_risk"`
	RiskScore  float64         `json:"risk_score"`
	RiskLevel  RiskLevel       `json:"risk_level"`
}

// Topic is a frequent term extracted from article texts.
type Topic struct {
	Topic     string `json:"topic"`
	Frequency int    `json:"frequency"`
}

// CriticalArticle is an article carrying high-risk keywords, surfaced
// verbatim for the report reader.
type CriticalArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Date        string    `json:"published_date"`
	Keywords    []string  `json:"critical_keywords"`
	Severity    RiskLevel `json:"severity"`
}

// NewsReport is the keyword-scanner output for a batch of articles.
type NewsReport struct {
	Timestamp       time.Time         `json:"analysis_timestamp"`
	TotalArticles   int               `json:"total_articles_analyzed"`
	Sentiment       SentimentResult   `json:"sentiment_analysis"`
	RiskSignals     RiskSignalResult  `json:"risk_signals"`
	KeyTopics       []Topic           `json:"key_topics"`
	RecentHeadlines []NewsArticle     `json:"recent_headlines"`
	CriticalNews    []CriticalArticle `json:"critical_news"`
}

// AnalysisReport is the complete product of one analysis run, consumed
// verbatim by the rendering layer.
type AnalysisReport struct {
	Symbol           string         `json:"symbol"`
	Timestamp        time.Time      `json:"analysis_timestamp"`
	Snapshot         StockSnapshot  `json:"stock_info"`
	Ratios           KeyRatios      `json:"key_ratios"`
	Forensic         ForensicReport `json:"forensic_analysis"`
	News             NewsReport     `json:"news_analysis"`
	Patterns         PatternReport  `json:"pattern_analysis"`
	OverallRiskScore float64        `json:"overall_risk_score"`
	OverallRiskLevel RiskLevel      `json:"overall_risk_level"`
}
