package anim

import (
	"context"
	"sync/atomic"
)

// Session holds the cancellation flag of one animation run. Once set it
// stays set.
type Session struct {
	cancelled atomic.Bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Cancel() {
	s.cancelled.Store(true)
}

func (s *Session) Cancelled() bool {
	return s.cancelled.Load()
}

// Bind cancels the session when ctx is done. The returned func detaches it.
func (s *Session) Bind(ctx context.Context) (stop func() bool) {
	return context.AfterFunc(ctx, s.Cancel)
}
