package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atomicstack/todoodler/internal/logging/events"
)

var (
	// ErrRestore marks errors raised while handing the terminal back.
	ErrRestore = errors.New("restore terminal")
	// ErrSessionUsed is returned when Run is called on a finished session.
	ErrSessionUsed = errors.New("terminal session already used")
)

type control struct {
	name    string
	acquire func() error
	release func() error
}

// Session scopes exclusive use of a Console around a body of work. A session
// runs once.
type Session struct {
	controls []control
	show     func() error

	mu       sync.Mutex
	started  bool
	acquired int
	once     sync.Once
	released error
}

// NewSession prepares a session over console. Nothing is touched until Run.
func NewSession(console Console) *Session {
	return &Session{
		controls: []control{
			{name: "raw mode", acquire: console.EnableRawMode, release: console.DisableRawMode},
			{name: "alternate screen", acquire: console.EnterAltScreen, release: console.LeaveAltScreen},
			{name: "mouse capture", acquire: console.EnableMouseCapture, release: console.DisableMouseCapture},
		},
		show: console.ShowCursor,
	}
}

// Run acquires the console, runs body and releases the console on every exit
// path, including a panic in body. The body error is returned after release;
// release failures are joined to it.
func (s *Session) Run(body func() error) (err error) {
	if !s.start() {
		return ErrSessionUsed
	}
	defer func() {
		if rerr := s.release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()
	if err := s.acquire(); err != nil {
		return err
	}
	return body()
}

func (s *Session) start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return false
	}
	s.started = true
	return true
}

func (s *Session) acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.controls {
		err := c.acquire()
		events.Terminal.Acquire(c.name, err)
		if err != nil {
			return fmt.Errorf("enable %s: %w", c.name, err)
		}
		s.acquired++
	}
	return nil
}

// release undoes every acquired control, in acquisition order, at most once
// per session. Every step runs even when an earlier one fails.
func (s *Session) release() error {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.acquired == 0 {
			return
		}
		var errs []error
		for _, c := range s.controls[:s.acquired] {
			err := c.release()
			events.Terminal.Release(c.name, err)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s: %w", ErrRestore, c.name, err))
			}
		}
		err := s.show()
		events.Terminal.Release("cursor", err)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: show cursor: %w", ErrRestore, err))
		}
		s.acquired = 0
		s.released = errors.Join(errs...)
	})
	return s.released
}
