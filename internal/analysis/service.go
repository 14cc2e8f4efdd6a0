// Package analysis orchestrates a full forensic run for one symbol: data
// fetch, the three scoring components, and the weighted overall risk
// aggregation.
package analysis

import (
	"context"
	"fmt"
	"time"

	"stock-forensics/internal/forensic"
	"stock-forensics/internal/interfaces"
	"stock-forensics/internal/logger"
	"stock-forensics/internal/news"
	"stock-forensics/internal/patterns"
	"stock-forensics/internal/quant"
	"stock-forensics/internal/store"
	"stock-forensics/internal/trace"
	"stock-forensics/internal/types"
)

// Service runs complete analyses. It holds no per-run state, so one
// Service can analyze different symbols concurrently.
type Service struct {
	cfg    *store.Config
	source interfaces.MarketDataSource
	news   *news.Service

	// Scoring component constructors, overridable in tests.
	newScorer   func(data *types.CompanyData) interfaces.ForensicScorer
	newScanner  func(prices types.PriceSeries) interfaces.PatternScanner
	newAnalyzer func(articles []types.NewsArticle) interfaces.NewsRiskAnalyzer
}

// NewService wires the orchestrator. newsService may be nil; articles then
// come only from the data source bundle.
func NewService(cfg *store.Config, source interfaces.MarketDataSource, newsService *news.Service) *Service {
	return &Service{
		cfg:    cfg,
		source: source,
		news:   newsService,
		newScorer: func(data *types.CompanyData) interfaces.ForensicScorer {
			return forensic.NewAnalyzer(cfg, data)
		},
		newScanner: func(prices types.PriceSeries) interfaces.PatternScanner {
			return patterns.NewDetector(cfg, prices)
		},
		newAnalyzer: func(articles []types.NewsArticle) interfaces.NewsRiskAnalyzer {
			return news.NewAnalyzer(articles)
		},
	}
}

// Analyze produces the complete report for symbol. Component failures
// degrade inside their own reports; only a failed data fetch is an error.
func (s *Service) Analyze(ctx context.Context, symbol string) (*types.AnalysisReport, error) {
	ctx, span := trace.StartSpan(ctx, "analyze-symbol")
	defer span.End()

	timer := logger.StartOperation(ctx, "analysis", "symbol", symbol, "source", s.source.Name())

	data, err := s.source.FetchCompanyData(ctx, symbol)
	if err != nil {
		timer.EndWithError(err)
		return nil, fmt.Errorf("failed to fetch data for %s: %w", symbol, err)
	}

	// Live bundles carry no articles; the news service fills the gap.
	if len(data.Articles) == 0 && s.news != nil {
		data.Articles = s.news.GetArticles(ctx, symbol)
	}

	forensicReport := s.newScorer(data).GenerateReport(ctx)
	newsReport := s.newAnalyzer(data.Articles).GenerateReport(ctx, symbol)
	patternReport := s.newScanner(data.Prices).GenerateReport(ctx)

	overall := forensicReport.RiskScore*s.cfg.Weights.Forensic +
		newsReport.RiskSignals.RiskScore*s.cfg.Weights.News +
		patternReport.RiskScore*s.cfg.Weights.Patterns

	level := types.RiskLow
	switch {
	case overall > 0.6:
		level = types.RiskHigh
	case overall > 0.3:
		level = types.RiskMedium
	}

	logger.Score(ctx, symbol, "overall_risk", quant.Round2(overall), string(level),
		"forensic", forensicReport.RiskScore,
		"news", newsReport.RiskSignals.RiskScore,
		"patterns", patternReport.RiskScore)
	timer.End("overall_risk_level", string(level))

	return &types.AnalysisReport{
		Symbol:           data.Symbol,
		Timestamp:        time.Now(),
		Snapshot:         data.Snapshot,
		Ratios:           data.Ratios,
		Forensic:         forensicReport,
		News:             newsReport,
		Patterns:         patternReport,
		OverallRiskScore: quant.Round2(overall),
		OverallRiskLevel: level,
	}, nil
}
