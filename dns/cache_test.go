package dns

import (
	"context"
	"net"
	"testing"
	"time"
)

func TestResolveLiteralIP(t *testing.T) {
	c := NewCache()
	ips, err := c.Resolve(context.Background(), "127.0.0.1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(ips) != 1 || !ips[0].Equal(net.IPv4(127, 0, 0, 1)) {
		t.Errorf("Resolve(127.0.0.1) = %v", ips)
	}
}

func TestCacheHit(t *testing.T) {
	c := NewCache()
	c.entries["example.test"] = &entry{
		ips:       []net.IP{net.IPv4(203, 0, 113, 7)},
		expiresAt: time.Now().Add(time.Minute),
	}
	ips, err := c.Resolve(context.Background(), "example.test")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(ips) != 1 || !ips[0].Equal(net.IPv4(203, 0, 113, 7)) {
		t.Errorf("cache hit returned %v", ips)
	}
}

func TestStaleServedOnLookupFailure(t *testing.T) {
	c := NewCache()
	// Expired entry for a name that cannot resolve.
	c.entries["does-not-exist.invalid"] = &entry{
		ips:       []net.IP{net.IPv4(203, 0, 113, 9)},
		expiresAt: time.Now().Add(-time.Minute),
	}
	ips, err := c.Resolve(context.Background(), "does-not-exist.invalid")
	if err != nil {
		t.Fatalf("Resolve should fall back to stale entry: %v", err)
	}
	if len(ips) != 1 || !ips[0].Equal(net.IPv4(203, 0, 113, 9)) {
		t.Errorf("stale fallback returned %v", ips)
	}
}

func TestResolveOnePrefersIPv6(t *testing.T) {
	c := NewCache()
	v6 := net.ParseIP("2001:db8::1")
	c.entries["dual.test"] = &entry{
		ips:       []net.IP{net.IPv4(203, 0, 113, 1), v6},
		expiresAt: time.Now().Add(time.Minute),
	}
	ip, err := c.ResolveOne(context.Background(), "dual.test")
	if err != nil {
		t.Fatalf("ResolveOne: %v", err)
	}
	if !ip.Equal(v6) {
		t.Errorf("ResolveOne = %v, want %v", ip, v6)
	}
}

func TestInvalidateAndCleanup(t *testing.T) {
	c := NewCache()
	c.entries["a.test"] = &entry{expiresAt: time.Now().Add(time.Minute)}
	c.entries["b.test"] = &entry{expiresAt: time.Now().Add(-time.Minute)}

	c.Invalidate("a.test")
	if _, ok := c.entries["a.test"]; ok {
		t.Error("Invalidate left the entry")
	}

	c.Cleanup()
	if _, ok := c.entries["b.test"]; ok {
		t.Error("Cleanup left an expired entry")
	}
}

func TestSetTTLClamped(t *testing.T) {
	c := NewCache()
	c.SetTTL(time.Second)
	if c.ttl != minTTL {
		t.Errorf("ttl = %v, want clamp to %v", c.ttl, minTTL)
	}
}
