// Package datasource provides the two MarketDataSource implementations:
// a deterministic static source for offline runs and tests, and a live
// source that scrapes a financial data provider with caching and rate
// limiting in front.
package datasource

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"

	"stock-forensics/internal/types"
)

// StaticDataSource serves a fully synthetic but internally consistent
// company bundle for any symbol. The same symbol always produces the same
// data, so analyses over it are reproducible.
type StaticDataSource struct{}

// NewStaticDataSource creates the offline source.
func NewStaticDataSource() *StaticDataSource {
	return &StaticDataSource{}
}

// Name implements interfaces.MarketDataSource.
func (s *StaticDataSource) Name() string { return "static" }

// FetchCompanyData returns the synthetic bundle for symbol. It never fails.
func (s *StaticDataSource) FetchCompanyData(ctx context.Context, symbol string) (*types.CompanyData, error) {
	symbol = strings.ToUpper(symbol)

	data := &types.CompanyData{
		Symbol:    symbol,
		FetchedAt: time.Now(),
		Snapshot: types.StockSnapshot{
			Symbol:        symbol,
			CompanyName:   symbol + " Industries Ltd",
			Sector:        "Industrials",
			Industry:      "Diversified Manufacturing",
			MarketCap:     1.85e9,
			CurrentPrice:  148.20,
			PreviousClose: 146.55,
			Volume:        1_150_000,
			AverageVolume: 980_000,
			PERatio:       21.4,
			ForwardPE:     18.9,
			DividendYield: 1.1,
			Beta:          1.18,
			WeekHigh52:    172.40,
			WeekLow52:     96.10,
		},
		IncomeStatement: staticIncomeStatement(),
		BalanceSheet:    staticBalanceSheet(),
		CashFlow:        staticCashFlow(),
		Ratios: types.KeyRatios{
			ProfitMargin:    6.8,
			OperatingMargin: 11.2,
			ROE:             12.5,
			ROA:             5.9,
			CurrentRatio:    1.6,
			DebtToEquity:    0.85,
			AssetTurnover:   0.92,
		},
		Shareholding: types.Shareholding{
			InsiderOwnership:       14.2,
			InstitutionalOwnership: 38.6,
			FloatShares:            9.8e6,
			SharesOutstanding:      1.25e7,
			SharesShort:            4.1e5,
			ShortRatio:             3.4,
		},
		Prices:   staticPriceSeries(symbol),
		Articles: staticArticles(symbol),
	}

	return data, nil
}

// Statement values are in thousands and span two fiscal years, newest
// first.

func staticIncomeStatement() types.StatementTable {
	return types.StatementTable{
		Periods: []types.StatementPeriod{
			{
				Label: "FY2025",
				Items: map[string]float64{
					"Total Revenue":                      1_250_000,
					"Cost Of Revenue":                    812_500,
					"Selling General And Administration": 187_500,
					"EBIT":                               140_000,
					"Net Income":                         85_000,
				},
			},
			{
				Label: "FY2024",
				Items: map[string]float64{
					"Total Revenue":                      1_120_000,
					"Cost Of Revenue":                    716_800,
					"Selling General And Administration": 168_000,
					"EBIT":                               126_000,
					"Net Income":                         76_200,
				},
			},
		},
	}
}

func staticBalanceSheet() types.StatementTable {
	return types.StatementTable{
		Periods: []types.StatementPeriod{
			{
				Label: "FY2025",
				Items: map[string]float64{
					"Accounts Receivable":                     172_000,
					"Total Current Assets":                    520_000,
					"Total Assets":                            1_360_000,
					"Net PPE":                                 540_000,
					"Total Current Liabilities":               325_000,
					"Total Liabilities Net Minority Interest": 680_000,
					"Retained Earnings":                       312_000,
				},
			},
			{
				Label: "FY2024",
				Items: map[string]float64{
					"Accounts Receivable":                     148_000,
					"Total Current Assets":                    474_000,
					"Total Assets":                            1_245_000,
					"Net PPE":                                 505_000,
					"Total Current Liabilities":               296_000,
					"Total Liabilities Net Minority Interest": 610_000,
					"Retained Earnings":                       262_000,
				},
			},
		},
	}
}

func staticCashFlow() types.StatementTable {
	return types.StatementTable{
		Periods: []types.StatementPeriod{
			{
				Label: "FY2025",
				Items: map[string]float64{
					"Operating Cash Flow": 98_500,
					"Depreciation":        -46_000,
				},
			},
			{
				Label: "FY2024",
				Items: map[string]float64{
					"Operating Cash Flow": 91_000,
					"Depreciation":        -42_500,
				},
			},
		},
	}
}

// staticPriceSeries builds roughly six months of daily bars. The random
// walk is seeded from the symbol, so every run of the same symbol sees the
// same history. A handful of volume spikes and one gap-down are injected
// so the pattern detectors have something to find.
func staticPriceSeries(symbol string) types.PriceSeries {
	var seed int64
	for _, r := range symbol {
		seed = seed*31 + int64(r)
	}
	rng := rand.New(rand.NewSource(seed))

	const bars = 126
	series := make(types.PriceSeries, 0, bars)

	price := 120.0
	date := time.Now().AddDate(0, 0, -bars*7/5) // skipping weekends below
	for len(series) < bars {
		date = date.AddDate(0, 0, 1)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		drift := 0.0006
		ret := drift + rng.NormFloat64()*0.016
		open := price * (1 + rng.NormFloat64()*0.004)
		price = price * (1 + ret)
		volume := 900_000 * (0.7 + rng.Float64()*0.6)

		switch len(series) {
		case 40, 82, 110:
			// episodic volume bursts
			volume *= 3.2
		case 95:
			// one sharp gap-down on heavy volume
			open = price * 0.93
			price = open * 1.004
			volume *= 2.8
		}

		high := math.Max(open, price) * (1 + rng.Float64()*0.006)
		low := math.Min(open, price) * (1 - rng.Float64()*0.006)

		series = append(series, types.PriceBar{
			Date:   time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  price,
			Volume: math.Round(volume),
		})
	}
	return series
}

func staticArticles(symbol string) []types.NewsArticle {
	now := time.Now()
	return []types.NewsArticle{
		{
			Title:       symbol + " reports strong quarterly growth, beats estimates",
			Description: "The company posted record revenue on the back of robust demand and margin expansion.",
			URL:         "https://example.com/news/" + strings.ToLower(symbol) + "/q-results",
			Source:      "static",
			PublishedAt: now.AddDate(0, 0, -3).Format("2006-01-02"),
		},
		{
			Title:       symbol + " faces regulatory probe over disclosure lapses",
			Description: "The markets regulator has opened an investigation into delayed disclosure of material events.",
			URL:         "https://example.com/news/" + strings.ToLower(symbol) + "/probe",
			Source:      "static",
			PublishedAt: now.AddDate(0, 0, -9).Format("2006-01-02"),
		},
		{
			Title:       "Analysts flag margin pressure and rising competition for " + symbol,
			Description: "Brokerages cite input cost headwinds and pricing pressure in the core segment.",
			URL:         "https://example.com/news/" + strings.ToLower(symbol) + "/analyst-note",
			Source:      "static",
			PublishedAt: now.AddDate(0, 0, -14).Format("2006-01-02"),
		},
		{
			Title:       symbol + " announces capacity expansion and new partnership",
			Description: "The board approved a greenfield expansion alongside a technology partnership.",
			URL:         "https://example.com/news/" + strings.ToLower(symbol) + "/expansion",
			Source:      "static",
			PublishedAt: now.AddDate(0, 0, -21).Format("2006-01-02"),
		},
	}
}
