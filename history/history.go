// Package history persists the rendered transcript to a plain text file.
package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/neochat"
)

// DefaultPath is where the transcript is written unless overridden.
const DefaultPath = "chat_history.txt"

// Interface compliance check.
var _ neochat.Persister = (*Persister)(nil)

// Persister writes the transcript to a text file. Each save replaces the
// whole file atomically via a temp file and rename, so a crash mid-write
// never leaves a truncated history behind.
type Persister struct {
	path string
}

// New creates a [Persister] writing to path. An empty path means
// [DefaultPath].
func New(path string) *Persister {
	if path == "" {
		path = DefaultPath
	}
	return &Persister{path: path}
}

// Path returns the file the transcript is written to.
func (p *Persister) Path() string {
	return p.path
}

// Save replaces the history file with text.
func (p *Persister) Save(text string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
