package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every threshold, window, and weight the engine uses.
// The numbers default to the published formula constants; the struct
// exists so tests and operators can override them without touching
// global state.
type Config struct {
	DataSource string `yaml:"data_source"` // "STATIC" or "LIVE"

	Forensic struct {
		MScoreThreshold float64 `yaml:"m_score_threshold"` // M > threshold => HIGH
		ZScoreSafe      float64 `yaml:"z_score_safe"`      // Z > safe => LOW
		ZScoreDistress  float64 `yaml:"z_score_distress"`  // Z <= distress => HIGH
	} `yaml:"forensic"`

	Ownership struct {
		InsiderLowPercent       float64 `yaml:"insider_low_percent"`
		InsiderHighPercent      float64 `yaml:"insider_high_percent"`
		InstitutionalLowPercent float64 `yaml:"institutional_low_percent"`
		ShortRatioHigh          float64 `yaml:"short_ratio_high"`
	} `yaml:"ownership"`

	Patterns struct {
		VolumeSpikeThreshold float64 `yaml:"volume_spike_threshold"` // multiple of mean volume
		AnomalyWindow        int     `yaml:"anomaly_window"`         // rolling band window, bars
		AnomalyStdDevs       float64 `yaml:"anomaly_std_devs"`
		GapThresholdPercent  float64 `yaml:"gap_threshold_percent"`
		DivergenceWindow     int     `yaml:"divergence_window"` // trailing bars
		VolatilityHigh       float64 `yaml:"volatility_high"`   // annualized %
		VolatilityMedium     float64 `yaml:"volatility_medium"`
	} `yaml:"patterns"`

	Live struct {
		BaseURL        string `yaml:"base_url"`
		CacheDir       string `yaml:"cache_dir"`
		CacheTTLHours  int    `yaml:"cache_ttl_hours"`
		RequestsPerSec int    `yaml:"requests_per_sec"`
	} `yaml:"live"`

	News struct {
		Enabled     bool `yaml:"enabled"`
		MaxArticles int  `yaml:"max_articles"`
		TimeoutSecs int  `yaml:"timeout_secs"`
	} `yaml:"news"`

	Weights struct {
		Forensic float64 `yaml:"forensic"`
		News     float64 `yaml:"news"`
		Patterns float64 `yaml:"patterns"`
	} `yaml:"weights"`

	Report struct {
		OutputDir string `yaml:"output_dir"`
	} `yaml:"report"`
}

// DefaultConfig returns the published-formula defaults.
func DefaultConfig() *Config {
	var c Config
	c.DataSource = "STATIC"
	c.Forensic.MScoreThreshold = -2.22
	c.Forensic.ZScoreSafe = 2.99
	c.Forensic.ZScoreDistress = 1.81
	c.Ownership.InsiderLowPercent = 1
	c.Ownership.InsiderHighPercent = 75
	c.Ownership.InstitutionalLowPercent = 10
	c.Ownership.ShortRatioHigh = 10
	c.Patterns.VolumeSpikeThreshold = 2.0
	c.Patterns.AnomalyWindow = 20
	c.Patterns.AnomalyStdDevs = 2.0
	c.Patterns.GapThresholdPercent = 5.0
	c.Patterns.DivergenceWindow = 20
	c.Patterns.VolatilityHigh = 50
	c.Patterns.VolatilityMedium = 30
	c.Live.BaseURL = "https://www.screener.in"
	c.Live.CacheDir = "cache/data"
	c.Live.CacheTTLHours = 24
	c.Live.RequestsPerSec = 5
	c.News.Enabled = true
	c.News.MaxArticles = 15
	c.News.TimeoutSecs = 10
	c.Weights.Forensic = 0.5
	c.Weights.News = 0.3
	c.Weights.Patterns = 0.2
	c.Report.OutputDir = "reports"
	return &c
}

// Validate rejects configurations that would make scoring meaningless.
func (c *Config) Validate() error {
	if c.DataSource != "STATIC" && c.DataSource != "LIVE" {
		return fmt.Errorf("invalid data_source '%s': must be 'STATIC' or 'LIVE'", c.DataSource)
	}
	if c.Forensic.ZScoreSafe <= c.Forensic.ZScoreDistress {
		return fmt.Errorf("forensic.z_score_safe (%.2f) must exceed z_score_distress (%.2f)",
			c.Forensic.ZScoreSafe, c.Forensic.ZScoreDistress)
	}
	if c.Patterns.VolumeSpikeThreshold <= 1 {
		return fmt.Errorf("patterns.volume_spike_threshold must be > 1, got %.2f", c.Patterns.VolumeSpikeThreshold)
	}
	if c.Patterns.AnomalyWindow < 2 {
		return fmt.Errorf("patterns.anomaly_window must be >= 2, got %d", c.Patterns.AnomalyWindow)
	}
	if c.Patterns.DivergenceWindow < 10 {
		return fmt.Errorf("patterns.divergence_window must be >= 10, got %d", c.Patterns.DivergenceWindow)
	}
	wsum := c.Weights.Forensic + c.Weights.News + c.Weights.Patterns
	if wsum < 0.99 || wsum > 1.01 {
		return fmt.Errorf("weights must sum to 1.0, got %.2f", wsum)
	}
	return nil
}

// LoadConfig reads a yaml config file, fills unset values with the
// defaults, and validates the result.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if c.Report.OutputDir == "" {
		c.Report.OutputDir = "reports"
	}
	if c.News.MaxArticles == 0 {
		c.News.MaxArticles = 15
	}
	if c.Live.RequestsPerSec <= 0 {
		c.Live.RequestsPerSec = 5
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}
