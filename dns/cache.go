// Package dns provides a TTL-aware resolver cache for the emulated HTTP
// layer, so repeated page loads against the same host do not re-resolve on
// every request.
package dns

import (
	"context"
	"net"
	"sync"
	"time"
)

type entry struct {
	ips       []net.IP
	expiresAt time.Time
}

func (e *entry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// Cache caches hostname lookups with a fixed TTL. Stale entries are served
// when a refresh lookup fails, which mirrors how browsers keep navigating
// on a flaky resolver.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]*entry
	resolver *net.Resolver
	ttl      time.Duration
}

const minTTL = 30 * time.Second

// NewCache creates a cache backed by the default system resolver.
func NewCache() *Cache {
	return &Cache{
		entries:  make(map[string]*entry),
		resolver: net.DefaultResolver,
		ttl:      5 * time.Minute,
	}
}

// SetTTL changes the TTL for future entries. Values below 30s are clamped
// to avoid hammering the resolver.
func (c *Cache) SetTTL(ttl time.Duration) {
	if ttl < minTTL {
		ttl = minTTL
	}
	c.mu.Lock()
	c.ttl = ttl
	c.mu.Unlock()
}

// Resolve returns the addresses for host, from cache when fresh.
func (c *Cache) Resolve(ctx context.Context, host string) ([]net.IP, error) {
	c.mu.RLock()
	e, ok := c.entries[host]
	c.mu.RUnlock()

	if ok && !e.expired() {
		return e.ips, nil
	}

	ips, err := c.lookup(ctx, host)
	if err != nil {
		if ok {
			return e.ips, nil // stale beats nothing
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries[host] = &entry{ips: ips, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return ips, nil
}

// ResolveOne returns a single address for host, preferring IPv6.
func (c *Cache) ResolveOne(ctx context.Context, host string) (net.IP, error) {
	ips, err := c.Resolve(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, &net.DNSError{Err: "no addresses found", Name: host}
	}
	for _, ip := range ips {
		if ip.To4() == nil {
			return ip, nil
		}
	}
	return ips[0], nil
}

func (c *Cache) lookup(ctx context.Context, host string) ([]net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return []net.IP{ip}, nil
	}
	addrs, err := c.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	ips := make([]net.IP, len(addrs))
	for i, addr := range addrs {
		ips[i] = addr.IP
	}
	return ips, nil
}

// Invalidate drops a single host from the cache.
func (c *Cache) Invalidate(host string) {
	c.mu.Lock()
	delete(c.entries, host)
	c.mu.Unlock()
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

// Cleanup removes expired entries.
func (c *Cache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for host, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, host)
		}
	}
}

// StartCleanup periodically calls Cleanup until ctx is done.
func (c *Cache) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Cleanup()
			}
		}
	}()
}
