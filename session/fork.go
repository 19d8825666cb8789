package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/Corpus-2021/htmlunit/client"
)

// Fork creates n sessions that share cookies with the parent but keep
// independent connections. This models multiple tabs of one browser
// instance: same identity, same cookie store, parallel sockets.
func (s *Session) Fork(n int) []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.active || n <= 0 {
		return nil
	}

	forks := make([]*Session, n)
	for i := range forks {
		forks[i] = s.forkOne()
	}
	return forks
}

// forkOne creates a single forked session. Caller holds s.mu.
func (s *Session) forkOne() *Session {
	cacheEntries := make(map[string]*cacheEntry, len(s.cacheEntries))
	for url, entry := range s.cacheEntries {
		entryCopy := *entry
		cacheEntries[url] = &entryCopy
	}

	return &Session{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		LastUsed:     time.Now(),
		version:      s.version,
		client:       client.NewClient(s.version),
		cookies:      s.cookies, // shared jar, locked internally
		cacheEntries: cacheEntries,
		active:       true,
	}
}
