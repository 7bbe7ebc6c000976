package neochat

import "sync"

// Queue is an unbounded FIFO buffer decoupling message producers from the
// single display consumer. Enqueue never blocks and never fails. Any number
// of goroutines may enqueue concurrently while a single consumer drains.
// Ordering is guaranteed within one producer's emissions, not between
// producers.
type Queue struct {
	mu   sync.Mutex
	msgs []Message
}

// Enqueue appends a message to the queue.
func (q *Queue) Enqueue(msg Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, msg)
}

// DrainAll atomically removes and returns all queued messages in arrival
// order. It returns nil when nothing is pending.
func (q *Queue) DrainAll() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	msgs := q.msgs
	q.msgs = nil
	return msgs
}
