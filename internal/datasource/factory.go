package datasource

import (
	"fmt"

	"stock-forensics/internal/interfaces"
	"stock-forensics/internal/store"
)

// New creates the data source named by cfg.DataSource.
func New(cfg *store.Config) (interfaces.MarketDataSource, error) {
	switch cfg.DataSource {
	case "", "STATIC":
		return NewStaticDataSource(), nil
	case "LIVE":
		return NewLiveDataSource(cfg), nil
	default:
		return nil, fmt.Errorf("unknown data source type: %s (valid options: STATIC, LIVE)", cfg.DataSource)
	}
}
