// Package session layers stateful browsing on top of the client package:
// each session keeps the cookies and cache validators a real browser
// accumulates, tied to one browser version for its whole lifetime.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Corpus-2021/htmlunit/browser"
	"github.com/Corpus-2021/htmlunit/client"
)

var ErrSessionClosed = errors.New("session is closed")

// cacheEntry stores the validators a response carried, replayed as
// If-None-Match / If-Modified-Since on the next request to the same URL.
type cacheEntry struct {
	etag         string
	lastModified string
}

// Session is a persistent browsing context: one browser version, its own
// connection pool, and accumulated cookies and cache validators.
type Session struct {
	ID           string
	CreatedAt    time.Time
	LastUsed     time.Time
	RequestCount int64

	version *browser.BrowserVersion
	client  *client.Client

	// cookies is shared with forked sessions; it carries its own lock.
	cookies      *cookieJar
	cacheEntries map[string]*cacheEntry

	mu     sync.RWMutex
	active bool
}

// NewSession creates a session emulating the given browser version. A nil
// version uses the process default.
func NewSession(version *browser.BrowserVersion, opts ...client.Option) *Session {
	if version == nil {
		version = browser.Default()
	}
	return &Session{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		LastUsed:     time.Now(),
		version:      version,
		client:       client.NewClient(version, opts...),
		cookies:      newCookieJar(),
		cacheEntries: make(map[string]*cacheEntry),
		active:       true,
	}
}

// Version returns the browser version this session emulates.
func (s *Session) Version() *browser.BrowserVersion { return s.version }

// Request executes a request with the session's cookies and cache
// validators applied, then absorbs any Set-Cookie and validator headers
// from the response.
func (s *Session) Request(ctx context.Context, req *client.Request) (*client.Response, error) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	s.LastUsed = time.Now()
	s.RequestCount++

	if req.Headers == nil {
		req.Headers = make(map[string]string)
	}
	if cookie := s.cookies.header(); cookie != "" {
		req.Headers[browser.HeaderCookie] = cookie
	}
	if cached, ok := s.cacheEntries[req.URL]; ok {
		if cached.etag != "" {
			req.Headers["If-None-Match"] = cached.etag
		}
		if cached.lastModified != "" {
			req.Headers["If-Modified-Since"] = cached.lastModified
		}
	}
	s.mu.Unlock()

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cookies.absorb(resp.Headers["set-cookie"])
	s.storeCacheHeaders(req.URL, resp.Headers)

	return resp, nil
}

// Get fetches a document within the session.
func (s *Session) Get(ctx context.Context, url string) (*client.Response, error) {
	return s.Request(ctx, &client.Request{Method: "GET", URL: url, Resource: client.ResourceDocument})
}

// Post sends a body within the session.
func (s *Session) Post(ctx context.Context, url string, body []byte, contentType string) (*client.Response, error) {
	req := &client.Request{Method: "POST", URL: url, Resource: client.ResourceDocument, Body: body}
	if contentType != "" {
		req.Headers = map[string]string{"Content-Type": contentType}
	}
	return s.Request(ctx, req)
}

func (s *Session) storeCacheHeaders(url string, headers map[string]string) {
	etag := headers["etag"]
	lastModified := headers["last-modified"]
	if etag == "" && lastModified == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cacheEntries[url] = &cacheEntry{etag: etag, lastModified: lastModified}
}

// IsActive reports whether the session can still serve requests.
func (s *Session) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Close marks the session inactive and releases its connections.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	s.client.Close()
}

// IdleTime returns how long since the session last served a request.
func (s *Session) IdleTime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.LastUsed)
}

// Cookies returns a copy of the session's cookies.
func (s *Session) Cookies() map[string]string { return s.cookies.snapshot() }

// SetCookie stores one cookie.
func (s *Session) SetCookie(name, value string) { s.cookies.set(name, value) }

// ClearCookies drops all cookies.
func (s *Session) ClearCookies() { s.cookies.clear() }

// ClearCache drops the stored validators so the next fetch of every URL
// is unconditional.
func (s *Session) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cacheEntries = make(map[string]*cacheEntry)
}

// Stats returns a snapshot of the session's counters.
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		ID:              s.ID,
		Browser:         s.version.Nickname(),
		CreatedAt:       s.CreatedAt,
		LastUsed:        s.LastUsed,
		RequestCount:    s.RequestCount,
		Active:          s.active,
		CookieCount:     s.cookies.len(),
		CacheEntryCount: len(s.cacheEntries),
		Age:             time.Since(s.CreatedAt),
		IdleTime:        time.Since(s.LastUsed),
	}
}

// Stats describes one session for listing and diagnostics.
type Stats struct {
	ID              string
	Browser         string
	CreatedAt       time.Time
	LastUsed        time.Time
	RequestCount    int64
	Active          bool
	CookieCount     int
	CacheEntryCount int
	Age             time.Duration
	IdleTime        time.Duration
}

// cookieJar is a name/value cookie store safe for concurrent use. Forked
// sessions share one jar so a login in any tab is visible in all of them.
type cookieJar struct {
	mu      sync.Mutex
	entries map[string]string
}

func newCookieJar() *cookieJar {
	return &cookieJar{entries: make(map[string]string)}
}

func (j *cookieJar) set(name, value string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries[name] = value
}

func (j *cookieJar) clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = make(map[string]string)
}

func (j *cookieJar) len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

func (j *cookieJar) snapshot() map[string]string {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make(map[string]string, len(j.entries))
	for k, v := range j.entries {
		out[k] = v
	}
	return out
}

// header renders the jar as a Cookie request header, empty if the jar is.
func (j *cookieJar) header() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	var b strings.Builder
	for name, value := range j.entries {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
	}
	return b.String()
}

// absorb parses a Set-Cookie response value, one cookie per line, keeping
// only the name=value pair and discarding attributes.
func (j *cookieJar) absorb(setCookie string) {
	if setCookie == "" {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, line := range strings.Split(setCookie, "\n") {
		cookie := strings.TrimSpace(line)
		if idx := strings.IndexByte(cookie, ';'); idx != -1 {
			cookie = cookie[:idx]
		}
		name, value, ok := strings.Cut(cookie, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name != "" {
			j.entries[name] = strings.TrimSpace(value)
		}
	}
}
