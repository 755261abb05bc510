package main

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Zachkp/portfolio-motion/motion"
)

const sessionCookie = "motion_session"

// cursorSession is one visitor's cursor, kept until it goes idle.
type cursorSession struct {
	cursor   *motion.Cursor
	lastSeen time.Time
}

// cursorRegistry owns the per-visitor cursors.
type cursorRegistry struct {
	mu          sync.Mutex
	sessions    map[string]*cursorSession
	trailLength int
	ttl         time.Duration
	now         func() time.Time
}

func newCursorRegistry(trailLength int, ttl time.Duration) *cursorRegistry {
	return &cursorRegistry{
		sessions:    make(map[string]*cursorSession),
		trailLength: trailLength,
		ttl:         ttl,
		now:         time.Now,
	}
}

// get returns the session's cursor, creating it on first use.
func (r *cursorRegistry) get(id string) *motion.Cursor {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = &cursorSession{cursor: motion.NewCursor(motion.WithTrailLength(r.trailLength))}
		r.sessions[id] = s
	}
	s.lastSeen = r.now()
	return s.cursor
}

// lookup returns the session's cursor without creating one.
func (r *cursorRegistry) lookup(id string) (*motion.Cursor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = r.now()
	return s.cursor, true
}

// blank is the state of a session that has sent no events yet.
func (r *cursorRegistry) blank() motion.CursorSnapshot {
	return motion.NewCursor(motion.WithTrailLength(r.trailLength)).Snapshot()
}

// remove stops and forgets a session's cursor. It reports whether there
// was one.
func (r *cursorRegistry) remove(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.cursor.Stop()
	}
	return ok
}

// reap stops cursors that have been idle longer than the TTL.
func (r *cursorRegistry) reap() int {
	cutoff := r.now().Add(-r.ttl)
	var stale []*motion.Cursor

	r.mu.Lock()
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			stale = append(stale, s.cursor)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, c := range stale {
		c.Stop()
	}
	return len(stale)
}

func (r *cursorRegistry) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// stopAll stops every cursor, for shutdown.
func (r *cursorRegistry) stopAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*cursorSession)
	r.mu.Unlock()
	for _, s := range sessions {
		s.cursor.Stop()
	}
}

// runReaper cleans up idle sessions until done is closed.
func (r *cursorRegistry) runReaper(every time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if n := r.reap(); n > 0 {
				log.Printf("Session cleanup: stopped %d idle cursors", n)
			}
		}
	}
}

// sessionMiddleware makes sure every page request carries a session id.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip static files
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		id, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, 3600*24, "/", "", false, true)
		}
		c.Set(sessionCookie, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCookie)
}
