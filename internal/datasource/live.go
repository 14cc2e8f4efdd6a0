package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"stock-forensics/internal/logger"
	"stock-forensics/internal/store"
	"stock-forensics/internal/types"
)

// LiveDataSource scrapes company fundamentals and price history from the
// configured provider. Responses are cached on disk and requests are rate
// limited, so repeated analyses stay polite to the upstream site.
type LiveDataSource struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
	limiter    *RateLimiter
	headers    map[string]string
}

// NewLiveDataSource builds the live source from the live section of the
// config.
func NewLiveDataSource(cfg *store.Config) *LiveDataSource {
	ttl := time.Duration(cfg.Live.CacheTTLHours) * time.Hour
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	return &LiveDataSource{
		baseURL: cfg.Live.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache:   NewCache(cfg.Live.CacheDir, ttl),
		limiter: NewRateLimiter(cfg.Live.RequestsPerSec, time.Second),
		headers: map[string]string{
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			"Accept":     "text/html,application/json",
		},
	}
}

// Name implements interfaces.MarketDataSource.
func (l *LiveDataSource) Name() string { return "live" }

// FetchCompanyData retrieves and parses the full bundle for symbol. The
// assembled bundle is cached as a whole; individual sections that fail to
// parse come back zero-valued.
func (l *LiveDataSource) FetchCompanyData(ctx context.Context, symbol string) (*types.CompanyData, error) {
	cacheKey := "company:" + strings.ToUpper(symbol)
	if cached, ok := l.cache.Get(cacheKey); ok {
		var data types.CompanyData
		if err := json.Unmarshal(cached, &data); err == nil {
			logger.Info(ctx, "Using cached company data", "symbol", symbol)
			return &data, nil
		}
	}

	pageURL := fmt.Sprintf("%s/company/%s/consolidated/", l.baseURL, strings.ToLower(symbol))
	body, err := l.fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company page for %s: %w", symbol, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse company page for %s: %w", symbol, err)
	}

	data := &types.CompanyData{
		Symbol:    strings.ToUpper(symbol),
		FetchedAt: time.Now(),
	}
	data.Snapshot = l.parseSnapshot(doc, data.Symbol)
	data.Ratios = l.parseRatios(doc)
	data.Shareholding = l.parseShareholding(doc)
	data.IncomeStatement = l.parseStatement(doc, "section#profit-loss table")
	data.BalanceSheet = l.parseStatement(doc, "section#balance-sheet table")
	data.CashFlow = l.parseStatement(doc, "section#cash-flow table")

	prices, err := l.fetchPriceHistory(ctx, symbol)
	if err != nil {
		// A priceless bundle would pin a degraded pattern report for the
		// whole cache TTL; return it uncached so the next run retries.
		logger.ErrorWithErr(ctx, "Failed to fetch price history", err, "symbol", symbol)
		return data, nil
	}
	data.Prices = prices

	if raw, err := json.Marshal(data); err == nil {
		l.cache.Set(cacheKey, raw)
	}
	return data, nil
}

func (l *LiveDataSource) fetch(ctx context.Context, url string) ([]byte, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range l.headers {
		req.Header.Set(key, value)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (l *LiveDataSource) parseSnapshot(doc *goquery.Document, symbol string) types.StockSnapshot {
	snapshot := types.StockSnapshot{
		Symbol:      symbol,
		CompanyName: strings.TrimSpace(doc.Find("h1").First().Text()),
	}

	doc.Find("#top-ratios li").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find(".name").Text())
		value := parseNumber(s.Find(".number").Text())
		switch {
		case strings.Contains(name, "Market Cap"):
			snapshot.MarketCap = value * 1e7 // quoted in crores
		case strings.Contains(name, "Current Price"):
			snapshot.CurrentPrice = value
		case strings.Contains(name, "Stock P/E"):
			snapshot.PERatio = value
		case strings.Contains(name, "Dividend Yield"):
			snapshot.DividendYield = value
		case strings.Contains(name, "High / Low"):
			parts := strings.Split(s.Find(".number").Text(), "/")
			if len(parts) == 2 {
				snapshot.WeekHigh52 = parseNumber(parts[0])
				snapshot.WeekLow52 = parseNumber(parts[1])
			}
		}
	})
	return snapshot
}

func (l *LiveDataSource) parseRatios(doc *goquery.Document) types.KeyRatios {
	var ratios types.KeyRatios
	doc.Find("section#ratios table tbody tr").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find("td").First().Text())
		value := parseNumber(s.Find("td").Last().Text())
		switch {
		case strings.Contains(name, "Net Profit Margin"):
			ratios.ProfitMargin = value
		case strings.Contains(name, "OPM"), strings.Contains(name, "Operating Margin"):
			ratios.OperatingMargin = value
		case strings.Contains(name, "ROE"):
			ratios.ROE = value
		case strings.Contains(name, "ROA"):
			ratios.ROA = value
		case strings.Contains(name, "Current Ratio"):
			ratios.CurrentRatio = value
		case strings.Contains(name, "Debt to Equity"):
			ratios.DebtToEquity = value
		case strings.Contains(name, "Asset Turnover"):
			ratios.AssetTurnover = value
		}
	})
	return ratios
}

func (l *LiveDataSource) parseShareholding(doc *goquery.Document) types.Shareholding {
	var holding types.Shareholding
	doc.Find("section#shareholding table tbody tr").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find("td").First().Text())
		value := parseNumber(s.Find("td").Last().Text())
		switch {
		case strings.Contains(name, "Promoter"), strings.Contains(name, "Insider"):
			holding.InsiderOwnership = value
		case strings.Contains(name, "FII"), strings.Contains(name, "DII"), strings.Contains(name, "Institution"):
			holding.InstitutionalOwnership += value
		}
	})
	return holding
}

// parseStatement reads a statement table whose header row carries period
// labels and whose first column carries line-item names. Columns come out
// newest first.
func (l *LiveDataSource) parseStatement(doc *goquery.Document, selector string) types.StatementTable {
	table := doc.Find(selector).First()
	if table.Length() == 0 {
		return types.StatementTable{}
	}

	var labels []string
	table.Find("thead th").Each(func(i int, s *goquery.Selection) {
		if i == 0 {
			return
		}
		labels = append(labels, strings.TrimSpace(s.Text()))
	})
	if len(labels) == 0 {
		return types.StatementTable{}
	}

	periods := make([]types.StatementPeriod, len(labels))
	for i, label := range labels {
		periods[i] = types.StatementPeriod{Label: label, Items: map[string]float64{}}
	}

	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		name := strings.TrimSuffix(strings.TrimSpace(cells.First().Text()), " +")
		if name == "" {
			return
		}
		cells.Each(func(i int, cell *goquery.Selection) {
			if i == 0 || i > len(periods) {
				return
			}
			periods[i-1].Items[name] = parseNumber(cell.Text())
		})
	})

	// Provider tables run oldest to newest; the engine wants newest first.
	for i, j := 0, len(periods)-1; i < j; i, j = i+1, j-1 {
		periods[i], periods[j] = periods[j], periods[i]
	}
	return types.StatementTable{Periods: periods}
}

type chartResponse struct {
	Datasets []struct {
		Metric string      `json:"metric"`
		Label  string      `json:"label"`
		Values [][2]string `json:"values"`
	} `json:"datasets"`
}

func (l *LiveDataSource) fetchPriceHistory(ctx context.Context, symbol string) (types.PriceSeries, error) {
	url := fmt.Sprintf("%s/api/company/%s/chart/Price-Volume/?days=180",
		l.baseURL, strings.ToLower(symbol))
	body, err := l.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}
	return assembleSeries(chart), nil
}

// assembleSeries merges the chart datasets into a series that is ascending
// by date. Days that appear only in the volume dataset carry no usable
// price and are dropped.
func assembleSeries(chart chartResponse) types.PriceSeries {
	bars := map[string]*types.PriceBar{}
	priced := map[string]bool{}
	for _, ds := range chart.Datasets {
		metric := strings.ToLower(ds.Metric + ds.Label)
		isVolume := strings.Contains(metric, "volume")
		for _, pair := range ds.Values {
			day, raw := pair[0], pair[1]
			bar, ok := bars[day]
			if !ok {
				date, err := time.Parse("2006-01-02", day)
				if err != nil {
					continue
				}
				bar = &types.PriceBar{Date: date}
				bars[day] = bar
			}
			value := parseNumber(raw)
			if isVolume {
				bar.Volume = value
			} else {
				// Single daily price point; stand in for the full OHLC.
				bar.Open, bar.High, bar.Low, bar.Close = value, value, value, value
				priced[day] = true
			}
		}
	}

	series := make(types.PriceSeries, 0, len(bars))
	for day, bar := range bars {
		if priced[day] {
			series = append(series, *bar)
		}
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(",", "", "%", "", "₹", "", "Cr.", "", "Cr", "").Replace(s)
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
