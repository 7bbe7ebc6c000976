package neochat

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Chat is the outbound half of the message pipeline. It validates and
// dispatches user messages through a Source and emits local system notices
// into the queue.
type Chat struct {
	queue  *Queue
	source Source
}

// NewChat creates a Chat sending through source and emitting notices into q.
func NewChat(q *Queue, source Source) *Chat {
	return &Chat{queue: q, source: source}
}

// Send validates and dispatches one message. The sender must be present and
// the body non-empty after trimming whitespace; violations return a
// validation error. Transport failures do not: they surface as a
// system-tagged "Send failed" record in the queue and the message is
// dropped, never retried. Delivery is fire-and-forget either way.
func (c *Chat) Send(ctx context.Context, sender, body string) error {
	body = strings.TrimSpace(body)
	if sender == "" {
		return fmt.Errorf("sender required: %w", ErrValidation)
	}
	if body == "" {
		return fmt.Errorf("empty message body: %w", ErrValidation)
	}
	msg := Message{Sender: sender, Body: body, Timestamp: time.Now()}
	if err := c.source.Send(ctx, msg); err != nil {
		c.System(fmt.Sprintf("Send failed: %v", err))
	}
	return nil
}

// System enqueues a local notice. Notices never reach the backend.
func (c *Chat) System(text string) {
	c.queue.Enqueue(NewSystemMessage(text))
}
