package firebase

import (
	"time"

	"github.com/fwojciec/neochat"
)

// ParseTimestamp exports parseTimestamp for testing.
func ParseTimestamp(s string) (time.Time, error) {
	return parseTimestamp(s)
}

// Normalize exports normalize for testing.
func Normalize(sender, message, timestamp string) neochat.Message {
	return normalize(record{Sender: sender, Message: message, Timestamp: timestamp})
}
