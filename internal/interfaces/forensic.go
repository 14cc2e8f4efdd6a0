package interfaces

import (
	"context"

	"stock-forensics/internal/types"
)

// MarketDataSource provides everything the analysis needs for one symbol.
// Implementations are expected to degrade gracefully: absent sections of
// CompanyData come back zero-valued, not as errors. An error means the
// symbol could not be resolved at all.
type MarketDataSource interface {
	// Name identifies the source in logs and reports.
	Name() string

	// FetchCompanyData retrieves the complete bundle for a symbol.
	FetchCompanyData(ctx context.Context, symbol string) (*types.CompanyData, error)
}

// ForensicScorer produces the statement-level half of the analysis.
type ForensicScorer interface {
	GenerateReport(ctx context.Context) types.ForensicReport
}

// PatternScanner produces the price/volume half of the analysis.
type PatternScanner interface {
	GenerateReport(ctx context.Context) types.PatternReport
}

// NewsRiskAnalyzer scans an article batch for risk language.
type NewsRiskAnalyzer interface {
	GenerateReport(ctx context.Context, symbol string) types.NewsReport
}
