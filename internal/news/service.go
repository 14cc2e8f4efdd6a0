package news

import (
	"context"
	"sync"
	"time"

	"stock-forensics/internal/logger"
	"stock-forensics/internal/store"
	"stock-forensics/internal/types"
)

// Service fetches articles for a symbol with a TTL cache in front of the
// scraper, so repeated analyses of the same symbol within the TTL do not
// re-hit the news sites.
type Service struct {
	scraper *Scraper
	cache   *articleCache
	cfg     *store.Config
}

type articleCache struct {
	mu   sync.RWMutex
	data map[string]*cacheEntry
	ttl  time.Duration
}

type cacheEntry struct {
	articles  []types.NewsArticle
	timestamp time.Time
}

func newArticleCache(ttl time.Duration) *articleCache {
	cache := &articleCache{
		data: make(map[string]*cacheEntry),
		ttl:  ttl,
	}
	go cache.cleanupLoop()
	return cache
}

func (c *articleCache) get(symbol string) ([]types.NewsArticle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[symbol]
	if !exists || time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}
	return entry.articles, true
}

func (c *articleCache) set(symbol string, articles []types.NewsArticle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[symbol] = &cacheEntry{
		articles:  articles,
		timestamp: time.Now(),
	}
}

func (c *articleCache) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for symbol, entry := range c.data {
			if now.Sub(entry.timestamp) > c.ttl {
				delete(c.data, symbol)
			}
		}
		c.mu.Unlock()
	}
}

// NewService creates the article service from the news section of the
// config.
func NewService(cfg *store.Config) *Service {
	return &Service{
		scraper: NewScraper(time.Duration(cfg.News.TimeoutSecs) * time.Second),
		cache:   newArticleCache(1 * time.Hour),
		cfg:     cfg,
	}
}

// GetArticles returns cached or freshly scraped articles for symbol. A
// scrape failure degrades to an empty batch rather than an error: missing
// news narrows the analysis, it must not abort it.
func (s *Service) GetArticles(ctx context.Context, symbol string) []types.NewsArticle {
	if !s.cfg.News.Enabled {
		return nil
	}

	if cached, ok := s.cache.get(symbol); ok {
		logger.Info(ctx, "Using cached articles", "symbol", symbol, "articles", len(cached))
		return cached
	}

	articles, err := s.scraper.ScrapeNews(ctx, symbol, s.cfg.News.MaxArticles)
	if err != nil {
		logger.ErrorWithErr(ctx, "News scraping failed", err, "symbol", symbol)
		return nil
	}

	if len(articles) == 0 {
		logger.Info(ctx, "No articles from primary sources, trying Google News", "symbol", symbol)
		articles, err = s.scraper.ScrapeGoogleNews(ctx, symbol, s.cfg.News.MaxArticles)
		if err != nil {
			logger.ErrorWithErr(ctx, "Google News fallback failed", err, "symbol", symbol)
			return nil
		}
	}

	s.cache.set(symbol, articles)
	return articles
}

// ClearCache drops all cached article batches.
func (s *Service) ClearCache() {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	s.cache.data = make(map[string]*cacheEntry)
}
