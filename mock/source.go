// Package mock provides test doubles for neochat interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/fwojciec/neochat"
)

// Interface compliance checks.
var (
	_ neochat.Source    = (*Source)(nil)
	_ neochat.Listener  = (*Listener)(nil)
	_ neochat.Persister = (*Persister)(nil)
)

// Source is a test double for neochat.Source.
// Set SendFn before calling Send.
type Source struct {
	SendFn func(ctx context.Context, msg neochat.Message) error
}

// Send delegates to SendFn.
func (s *Source) Send(ctx context.Context, msg neochat.Message) error {
	return s.SendFn(ctx, msg)
}

// Listener is a test double for neochat.Listener.
// Set ListenFn before calling Listen.
type Listener struct {
	ListenFn func(ctx context.Context, emit func(neochat.Message)) error
}

// Listen delegates to ListenFn.
func (l *Listener) Listen(ctx context.Context, emit func(neochat.Message)) error {
	return l.ListenFn(ctx, emit)
}

// Persister is a test double for neochat.Persister.
// Set SaveFn before calling Save.
type Persister struct {
	SaveFn func(text string) error
}

// Save delegates to SaveFn.
func (p *Persister) Save(text string) error {
	return p.SaveFn(text)
}
