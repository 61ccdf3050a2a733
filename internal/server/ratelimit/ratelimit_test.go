package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestTokenBucket_Allow(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 10 tokens, 1 token per second

	// Should allow 10 requests immediately (burst)
	for i := 0; i < 10; i++ {
		if !bucket.allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	// 11th request should be denied (no tokens left)
	if bucket.allow() {
		t.Error("Expected 11th request to be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := newTokenBucket(10, 1.0) // 1 token per second

	for i := 0; i < 10; i++ {
		bucket.allow()
	}

	// Wait for 1 token to refill
	time.Sleep(1100 * time.Millisecond)

	if !bucket.allow() {
		t.Error("Expected request to be allowed after refill")
	}

	if bucket.allow() {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"
	endpoint := "/api/players"
	method := "GET"

	for i := 0; i < 10; i++ {
		allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if rateInfo.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", rateInfo.Limit)
		}
	}

	allowed, rateInfo := limiter.Allow(clientID, endpoint, method)
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if rateInfo.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/api/players", "GET")
		if !allowed {
			t.Fatalf("Expected whitelisted request %d to be allowed", i+1)
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"10.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/api/players", "GET")
	if allowed {
		t.Error("Expected blacklisted request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/api/recommendations", "POST")
		if !allowed {
			t.Fatal("Expected all requests to be allowed when disabled")
		}
	}
}

func TestLimiter_SeparateClientsSeparateBuckets(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-a", "/api/players", "GET")
	if !allowed {
		t.Error("Expected first client to be allowed")
	}
	allowed, _ = limiter.Allow("client-b", "/api/players", "GET")
	if !allowed {
		t.Error("Expected second client to be allowed")
	}
	allowed, _ = limiter.Allow("client-a", "/api/players", "GET")
	if allowed {
		t.Error("Expected first client's second request to be denied")
	}
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				limiter.Allow("127.0.0.1", "/api/players", "GET")
			}
		}()
	}
	wg.Wait()
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected health endpoint to match")
	}
	if config.Limit != 0 {
		t.Errorf("Expected health endpoint to be unlimited, got limit %d", config.Limit)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	config := MatchEndpoint("/api/recommendations", "POST", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected recommendation endpoint to match")
	}
	if config.Limit != 30 {
		t.Errorf("Expected limit 30, got %d", config.Limit)
	}
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	config := MatchEndpoint("/api/players/abc-123", "PUT", DefaultEndpointConfigs())
	if config == nil {
		t.Fatal("Expected player update endpoint to match by prefix")
	}
	if config.Limit != 100 {
		t.Errorf("Expected limit 100, got %d", config.Limit)
	}
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	config := MatchEndpoint("/api/unmapped", "GET", DefaultEndpointConfigs())
	if config != nil {
		t.Error("Expected no match for unmapped endpoint")
	}
}
