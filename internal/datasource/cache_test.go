package datasource

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	cache := NewCache(t.TempDir(), time.Hour)

	if _, ok := cache.Get("company:TCS"); ok {
		t.Error("Expected miss on an empty cache")
	}

	if err := cache.Set("company:TCS", []byte(`{"symbol":"TCS"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, ok := cache.Get("company:TCS")
	if !ok {
		t.Fatal("Expected hit after Set")
	}
	if string(data) != `{"symbol":"TCS"}` {
		t.Errorf("Unexpected payload: %s", data)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(t.TempDir(), 1*time.Nanosecond)

	if err := cache.Set("company:TCS", []byte("payload")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok := cache.Get("company:TCS"); ok {
		t.Error("Expected entry to expire")
	}
}

func TestCacheKeyIsolation(t *testing.T) {
	cache := NewCache(t.TempDir(), time.Hour)

	cache.Set("a", []byte("one"))
	cache.Set("b", []byte("two"))

	data, ok := cache.Get("b")
	if !ok || string(data) != "two" {
		t.Errorf("Expected 'two' for key b, got %q", data)
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1,234.56", 1234.56},
		{"₹ 3,450", 3450},
		{"12.5%", 12.5},
		{"1,25,000 Cr.", 125000},
		{"-", 0},
		{"", 0},
		{"n/a", 0},
	}
	for _, c := range cases {
		if got := parseNumber(c.in); got != c.want {
			t.Errorf("parseNumber(%q): expected %f, got %f", c.in, c.want, got)
		}
	}
}

func TestRateLimiterImmediateTokens(t *testing.T) {
	rl := NewRateLimiter(2, time.Second)

	if !rl.tryAcquire() {
		t.Error("Expected first token to be available")
	}
	if !rl.tryAcquire() {
		t.Error("Expected second token to be available")
	}
	if rl.tryAcquire() {
		t.Error("Expected the bucket to be empty")
	}
}
