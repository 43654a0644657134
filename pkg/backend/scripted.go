package backend

import (
	"context"
	"sync"
)

// Scripted is an in-memory Backend that replays canned responses in order
// and records every prompt it receives. Used by tests to pin down dispatch
// counts and exact rendered prompts without a live provider.
type Scripted struct {
	mu        sync.Mutex
	responses []string
	prompts   []string
	err       error
}

// NewScripted creates a scripted backend that cycles through responses
func NewScripted(responses ...string) *Scripted {
	return &Scripted{responses: responses}
}

// FailWith makes every subsequent Generate call fail with err wrapped in a
// *BackendError. Pass nil to clear.
func (s *Scripted) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Generate records the prompt and returns the next scripted response
func (s *Scripted) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &BackendError{Backend: s.Name(), Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, prompt)

	if s.err != nil {
		return "", &BackendError{Backend: s.Name(), Err: s.err}
	}

	if len(s.responses) == 0 {
		return "", nil
	}

	response := s.responses[(len(s.prompts)-1)%len(s.responses)]
	return response, nil
}

// Name returns the backend name
func (s *Scripted) Name() string {
	return "scripted"
}

// Model returns the configured model identifier
func (s *Scripted) Model() string {
	return "scripted"
}

// Prompts returns a copy of every prompt received so far
func (s *Scripted) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// CallCount returns the number of Generate calls received
func (s *Scripted) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
