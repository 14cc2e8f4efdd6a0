package types

import "time"

// StockSnapshot is the current market view of a company. One snapshot is
// taken per analysis run and never mutated afterwards.
type StockSnapshot struct {
	Symbol        string  `json:"symbol"`
	CompanyName   string  `json:"company_name"`
	Sector        string  `json:"sector,omitempty"`
	Industry      string  `json:"industry,omitempty"`
	MarketCap     float64 `json:"market_cap"`
	CurrentPrice  float64 `json:"current_price"`
	PreviousClose float64 `json:"previous_close"`
	Volume        float64 `json:"volume"`
	AverageVolume float64 `json:"average_volume"`
	PERatio       float64 `json:"pe_ratio"`
	ForwardPE     float64 `json:"forward_pe"`
	DividendYield float64 `json:"dividend_yield"`
	Beta          float64 `json:"beta"`
	WeekHigh52    float64 `json:"52_week_high"`
	WeekLow52     float64 `json:"52_week_low"`
}

// Shareholding describes the ownership structure of a company.
type Shareholding struct {
	InsiderOwnership       float64 `json:"insider_ownership"`       // percent
	InstitutionalOwnership float64 `json:"institutional_ownership"` // percent
	FloatShares            float64 `json:"float_shares"`
	SharesOutstanding      float64 `json:"shares_outstanding"`
	SharesShort            float64 `json:"shares_short"`
	ShortRatio             float64 `json:"short_ratio"` // days to cover
}

// KeyRatios are pre-computed financial ratios used by the red-flag rules.
// Percent-valued fields (margins, ROE, ROA) are expressed as percentages,
// not fractions.
type KeyRatios struct {
	ProfitMargin    float64 `json:"profit_margin"`
	OperatingMargin float64 `json:"operating_margin"`
	ROE             float64 `json:"roe"`
	ROA             float64 `json:"roa"`
	CurrentRatio    float64 `json:"current_ratio"`
	DebtToEquity    float64 `json:"debt_to_equity"`
	AssetTurnover   float64 `json:"asset_turnover"`
}

// PriceBar is a single trading day of OHLCV data.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is a chronologically ascending run of daily bars with no
// duplicate dates. Detectors that need more history than the series holds
// degrade to an explicit "insufficient data" result.
type PriceSeries []PriceBar

// Closes returns the close prices in series order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Volumes returns the traded volumes in series order.
func (s PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Volume
	}
	return out
}

// CompanyData bundles everything the scoring engine consumes for one
// company: three statement tables, the market snapshot, ratio and
// ownership data, price history, and any pre-fetched news articles.
// It is assembled once by a MarketDataSource and treated as immutable.
type CompanyData struct {
	Symbol          string         `json:"symbol"`
	FetchedAt       time.Time      `json:"fetched_at"`
	Snapshot        StockSnapshot  `json:"stock_info"`
	IncomeStatement StatementTable `json:"income_statement"`
	BalanceSheet    StatementTable `json:"balance_sheet"`
	CashFlow        StatementTable `json:"cash_flow"`
	Ratios          KeyRatios      `json:"key_ratios"`
	Shareholding    Shareholding   `json:"shareholding"`
	Prices          PriceSeries    `json:"historical_data"`
	Articles        []NewsArticle  `json:"news,omitempty"`
}
