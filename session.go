package neochat

import (
	"fmt"
	"unicode/utf8"
)

// Display name length bounds, counted in runes.
const (
	MinNameLen = 3
	MaxNameLen = 15
)

// Session holds the active display name and the running count of sent
// messages. Sending is disallowed until a name is set. Session is owned by
// the UI goroutine and is never shared with producer goroutines.
type Session struct {
	name string
	sent int
}

// SetName sets the display name. Candidates outside the length bounds are
// rejected with a validation error and leave the prior name untouched.
func (s *Session) SetName(candidate string) error {
	if n := utf8.RuneCountInString(candidate); n < MinNameLen || n > MaxNameLen {
		return fmt.Errorf("display name must be %d-%d characters, got %q: %w", MinNameLen, MaxNameLen, candidate, ErrValidation)
	}
	s.name = candidate
	return nil
}

// Name returns the current display name, or "" when none is set.
func (s *Session) Name() string { return s.name }

// Named reports whether a display name has been set.
func (s *Session) Named() bool { return s.name != "" }

// RecordSent increments the sent counter and returns the new count.
func (s *Session) RecordSent() int {
	s.sent++
	return s.sent
}

// Sent returns the number of messages sent this session.
func (s *Session) Sent() int { return s.sent }

// Reset zeroes the sent counter. Called on transcript clear.
func (s *Session) Reset() { s.sent = 0 }
