package neochat

import "time"

// SystemSender is the sender name reserved for local notices (connection
// state, validation results). Records carrying it are never sent to the
// backend.
const SystemSender = "SYSTEM"

// Message is a single chat record: who said what, when.
// Invariant: Timestamp is always a valid instant; sources that receive a
// record without one stamp it with the current time. Messages are immutable
// once queued and consumed exactly once by the renderer.
type Message struct {
	Sender    string
	Body      string
	Timestamp time.Time
}

// NewSystemMessage creates a local notice stamped with the current time.
func NewSystemMessage(body string) Message {
	return Message{Sender: SystemSender, Body: body, Timestamp: time.Now()}
}
