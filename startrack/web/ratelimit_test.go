package web

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("key-a") {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
	if rl.Allow("key-a") {
		t.Error("request over the limit allowed, want denied")
	}
	// Other keys are tracked independently.
	if !rl.Allow("key-b") {
		t.Error("fresh key denied, want allowed")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("key") {
		t.Fatal("first request denied")
	}
	if rl.Allow("key") {
		t.Fatal("second request inside window allowed")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("key") {
		t.Error("request after window expiry denied")
	}
}
