package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/cracktacoshop/site/internal/location"
	"github.com/google/uuid"
)

// SessionCookie names the cookie that ties a browser to its shopping
// location selection.
const SessionCookie = "cts_session"

// sessionTTL is how long an idle session keeps its selection.
const sessionTTL = 30 * 24 * time.Hour

type session struct {
	store    *location.Store
	lastSeen time.Time
}

// sessionRegistry keeps one location store per browser session. Entries
// expire after sessionTTL of inactivity.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
}

func newSessionRegistry(ttl time.Duration) *sessionRegistry {
	if ttl <= 0 {
		ttl = sessionTTL
	}
	sr := &sessionRegistry{
		sessions: make(map[string]*session),
		ttl:      ttl,
	}
	go sr.sweep()
	return sr
}

// sweep removes idle sessions every ten minutes.
func (sr *sessionRegistry) sweep() {
	for {
		time.Sleep(10 * time.Minute)
		cutoff := time.Now().Add(-sr.ttl)
		sr.mu.Lock()
		for id, s := range sr.sessions {
			if s.lastSeen.Before(cutoff) {
				delete(sr.sessions, id)
			}
		}
		sr.mu.Unlock()
	}
}

// get returns the store for a session ID, creating the session if needed.
func (sr *sessionRegistry) get(id string) *location.Store {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	s, ok := sr.sessions[id]
	if !ok {
		s = &session{store: location.NewStore(location.NewMemStorage())}
		sr.sessions[id] = s
	}
	s.lastSeen = time.Now()
	return s.store
}

func (sr *sessionRegistry) len() int {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return len(sr.sessions)
}

// sessionStore resolves the request's session store, setting the session
// cookie on first contact.
func (s *Server) sessionStore(w http.ResponseWriter, r *http.Request) *location.Store {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		if _, err := uuid.Parse(c.Value); err == nil {
			return s.sessions.get(c.Value)
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.sessions.get(id)
}
