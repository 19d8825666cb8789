package session

import (
	"testing"
	"time"

	"github.com/Corpus-2021/htmlunit/browser"
)

func TestCookieJarAbsorb(t *testing.T) {
	tests := []struct {
		name      string
		setCookie string
		want      map[string]string
	}{
		{
			name:      "single cookie",
			setCookie: "sid=abc123",
			want:      map[string]string{"sid": "abc123"},
		},
		{
			name:      "attributes stripped",
			setCookie: "sid=abc123; Path=/; HttpOnly; Expires=Wed, 21 Oct 2026 07:28:00 GMT",
			want:      map[string]string{"sid": "abc123"},
		},
		{
			name:      "multiple cookies one per line",
			setCookie: "a=1; Path=/\nb=2; Secure",
			want:      map[string]string{"a": "1", "b": "2"},
		},
		{
			name:      "malformed line skipped",
			setCookie: "not-a-cookie\nc=3",
			want:      map[string]string{"c": "3"},
		},
		{
			name:      "empty value kept",
			setCookie: "cleared=",
			want:      map[string]string{"cleared": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jar := newCookieJar()
			jar.absorb(tt.setCookie)
			got := jar.snapshot()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d cookies %v, want %d", len(got), got, len(tt.want))
			}
			for name, value := range tt.want {
				if got[name] != value {
					t.Errorf("cookie %q = %q, want %q", name, got[name], value)
				}
			}
		})
	}
}

func TestCookieJarHeader(t *testing.T) {
	jar := newCookieJar()
	if jar.header() != "" {
		t.Error("empty jar should render an empty header")
	}

	jar.set("sid", "abc")
	if got := jar.header(); got != "sid=abc" {
		t.Errorf("header = %q, want sid=abc", got)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(browser.Chrome)

	if s.ID == "" {
		t.Error("session should get a generated ID")
	}
	if !s.IsActive() {
		t.Error("new session should be active")
	}
	if s.Version() != browser.Chrome {
		t.Error("session should keep the version it was created with")
	}

	s.Close()
	if s.IsActive() {
		t.Error("closed session should not be active")
	}
	s.Close() // second close is a no-op
}

func TestForkSharesCookies(t *testing.T) {
	parent := NewSession(browser.Firefox)
	defer parent.Close()

	forks := parent.Fork(2)
	if len(forks) != 2 {
		t.Fatalf("Fork(2) returned %d sessions", len(forks))
	}
	defer forks[0].Close()
	defer forks[1].Close()

	if forks[0].ID == parent.ID || forks[0].ID == forks[1].ID {
		t.Error("forked sessions should get fresh IDs")
	}
	if forks[0].Version() != parent.Version() {
		t.Error("fork should keep the parent's browser version")
	}

	parent.SetCookie("sid", "shared")
	if forks[0].Cookies()["sid"] != "shared" {
		t.Error("cookie set on parent should be visible in fork")
	}
	forks[1].SetCookie("tab", "2")
	if parent.Cookies()["tab"] != "2" {
		t.Error("cookie set on fork should be visible in parent")
	}
}

func TestForkClosedSession(t *testing.T) {
	s := NewSession(browser.Chrome)
	s.Close()
	if forks := s.Fork(1); forks != nil {
		t.Error("forking a closed session should return nil")
	}
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	defer m.Shutdown()

	id, err := m.CreateSession(browser.Chrome)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	s, err := m.GetSession(id)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if s.ID != id {
		t.Errorf("session ID = %q, want %q", s.ID, id)
	}
	if m.SessionCount() != 1 {
		t.Errorf("SessionCount = %d, want 1", m.SessionCount())
	}

	if err := m.CloseSession(id); err != nil {
		t.Fatalf("CloseSession: %v", err)
	}
	if _, err := m.GetSession(id); err == nil {
		t.Error("GetSession should fail after close")
	}
	if err := m.CloseSession(id); err == nil {
		t.Error("closing an unknown session should fail")
	}
}

func TestManagerSessionLimit(t *testing.T) {
	m := NewManager()
	defer m.Shutdown()
	m.SetMaxSessions(1)

	if _, err := m.CreateSession(browser.Chrome); err != nil {
		t.Fatalf("first CreateSession: %v", err)
	}
	if _, err := m.CreateSession(browser.Chrome); err == nil {
		t.Error("second CreateSession should hit the limit")
	}
}

func TestManagerCleanupExpired(t *testing.T) {
	m := NewManager()
	defer m.Shutdown()
	m.SetSessionTimeout(10 * time.Millisecond)

	id, err := m.CreateSession(browser.Chrome)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	s, _ := m.GetSession(id)
	s.mu.Lock()
	s.LastUsed = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	m.cleanupExpiredSessions()
	if m.SessionCount() != 0 {
		t.Errorf("expired session should be reaped, count = %d", m.SessionCount())
	}
}

func TestManagerListSessions(t *testing.T) {
	m := NewManager()
	defer m.Shutdown()

	m.CreateSession(browser.Chrome)
	m.CreateSession(browser.Firefox)

	stats := m.ListSessions()
	if len(stats) != 2 {
		t.Fatalf("ListSessions returned %d entries, want 2", len(stats))
	}
	browsers := map[string]bool{}
	for _, st := range stats {
		if !st.Active {
			t.Errorf("session %s should be active", st.ID)
		}
		browsers[st.Browser] = true
	}
	if !browsers[browser.Chrome.Nickname()] || !browsers[browser.Firefox.Nickname()] {
		t.Errorf("stats should cover both browsers, got %v", browsers)
	}
}
