package neochat

import "context"

// Interface compliance check.
var _ Source = (*Loopback)(nil)

// Loopback is the offline Source: sends are echoed straight back into the
// queue as if the backend had delivered them, tagged with the sender's own
// name. Nothing leaves the process.
type Loopback struct {
	queue *Queue
}

// NewLoopback creates a Loopback echoing into q.
func NewLoopback(q *Queue) *Loopback {
	return &Loopback{queue: q}
}

// Send enqueues the message locally.
func (l *Loopback) Send(ctx context.Context, msg Message) error {
	l.queue.Enqueue(msg)
	return nil
}
