package news

import (
	"context"
	"testing"
	"time"

	"stock-forensics/internal/store"
	"stock-forensics/internal/types"
)

func TestArticleCacheHitAndExpiry(t *testing.T) {
	cache := newArticleCache(50 * time.Millisecond)
	articles := []types.NewsArticle{{Title: "Cached headline"}}

	cache.set("TCS", articles)

	got, ok := cache.get("TCS")
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if len(got) != 1 || got[0].Title != "Cached headline" {
		t.Errorf("Unexpected cached articles: %+v", got)
	}

	if _, ok := cache.get("INFY"); ok {
		t.Error("Expected miss for unknown symbol")
	}

	time.Sleep(80 * time.Millisecond)
	if _, ok := cache.get("TCS"); ok {
		t.Error("Expected entry to expire after TTL")
	}
}

func TestGetArticlesDisabled(t *testing.T) {
	cfg := store.DefaultConfig()
	cfg.News.Enabled = false

	service := NewService(cfg)
	if articles := service.GetArticles(context.Background(), "TCS"); articles != nil {
		t.Errorf("Expected nil articles when news is disabled, got %d", len(articles))
	}
}

func TestGetArticlesCachePreferred(t *testing.T) {
	cfg := store.DefaultConfig()
	cfg.News.Enabled = true

	service := NewService(cfg)
	cached := []types.NewsArticle{{Title: "Seeded"}}
	service.cache.set("TCS", cached)

	got := service.GetArticles(context.Background(), "TCS")
	if len(got) != 1 || got[0].Title != "Seeded" {
		t.Errorf("Expected the seeded cache entry, got %+v", got)
	}
}

func TestClearCache(t *testing.T) {
	service := NewService(store.DefaultConfig())
	service.cache.set("TCS", []types.NewsArticle{{Title: "Stale"}})

	service.ClearCache()

	if _, ok := service.cache.get("TCS"); ok {
		t.Error("Expected cache to be empty after ClearCache")
	}
}
