package session

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reservetable/webapp/services"
)

const cookieName = "reservetable_session"

// Flash kinds rendered by the layout banner.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot banner message; it is popped on the next render.
type Flash struct {
	Type string
	Text string
}

// Session carries the only state that outlives a single request: the booking
// wizard and a pending flash message. Everything else (filters, lists) is
// query-param and render scoped. Concurrent requests from one browser (two
// tabs, a double-click) share a session, so all of it sits behind one mutex.
type Session struct {
	ID string

	mu     sync.Mutex
	wizard *services.BookingWizard
	flash  *Flash
}

// WithWizard runs fn with exclusive access to the session's wizard. Every
// wizard read or transition goes through here; the wizard itself carries no
// lock of its own.
func (s *Session) WithWizard(fn func(*services.BookingWizard)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.wizard)
}

// WizardView returns a value snapshot safe to render while other requests
// keep transitioning the wizard. Pointer fields (table, slot) are write-once
// per selection, so the shallow copy stays consistent.
func (s *Session) WizardView() services.BookingWizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.wizard
}

func (s *Session) SetFlash(kind, text string) {
	s.mu.Lock()
	s.flash = &Flash{Type: kind, Text: text}
	s.mu.Unlock()
}

func (s *Session) PopFlash() *Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	flash := s.flash
	s.flash = nil
	return flash
}

// Store keeps sessions in memory, keyed by a cookie. Nothing is persisted:
// restarting the process forgets every in-progress booking, which matches the
// no-local-state contract of the client.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the request's session, minting one (and setting the cookie)
// when the browser has none yet.
func (st *Store) Get(c *gin.Context) *Session {
	if id, err := c.Cookie(cookieName); err == nil {
		st.mu.RLock()
		sess, ok := st.sessions[id]
		st.mu.RUnlock()
		if ok {
			return sess
		}
	}

	sess := &Session{
		ID:     uuid.NewString(),
		wizard: services.NewBookingWizard(),
	}
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	c.SetCookie(cookieName, sess.ID, 0, "/", "", false, true)
	return sess
}
