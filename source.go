package neochat

import "context"

// Source delivers outbound messages to wherever the chat lives: the remote
// backend when connected, or straight back into the queue in offline mode.
type Source interface {
	Send(ctx context.Context, msg Message) error
}

// Listener produces inbound messages. Listen blocks, calling emit once per
// received message, until the subscription ends or ctx is cancelled. The
// emit callback runs on the listener's goroutine and must do nothing beyond
// enqueueing.
type Listener interface {
	Listen(ctx context.Context, emit func(Message)) error
}
