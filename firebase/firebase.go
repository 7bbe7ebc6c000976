// Package firebase implements [neochat.Source] and [neochat.Listener] for
// the Firebase Realtime Database REST surface.
//
// Outbound messages are appended with one POST per record; the database
// assigns the push key. Inbound messages arrive over the REST streaming
// protocol: a long-lived GET with Accept: text/event-stream on which the
// database pushes put and patch events, parsed one at a time with a
// bufio.Scanner. The protocol is consumed, not owned.
package firebase

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/fwojciec/neochat"
)

const (
	// defaultPath is the collection holding chat records.
	defaultPath = "messages"

	// backlogLimit is how many trailing records a new subscription
	// replays before going live.
	backlogLimit = 100

	// maxEventSize bounds a single SSE event. The initial put carries the
	// whole backlog in one event.
	maxEventSize = 1 << 20
)

// unknownSender is substituted when a record arrives without a sender.
const unknownSender = "Unknown"

// record is the wire shape of one chat message.
type record struct {
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ssePut is the data payload of put and patch events: a path within the
// watched location and the JSON value written there.
type ssePut struct {
	Path string          `json:"path"`
	Data json.RawMessage `json:"data"`
}

// isoLayout matches timestamps from clients that serialize without a zone
// (Python's datetime.isoformat). Such values are read as local time.
const isoLayout = "2006-01-02T15:04:05.999999"

// normalize converts a wire record to a domain message. A record without a
// sender is attributed to unknownSender; an unparseable or missing
// timestamp is replaced by the current time.
func normalize(rec record) neochat.Message {
	sender := rec.Sender
	if sender == "" {
		sender = unknownSender
	}
	ts, err := parseTimestamp(rec.Timestamp)
	if err != nil {
		ts = time.Now()
	}
	return neochat.Message{Sender: sender, Body: rec.Message, Timestamp: ts}
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, nil
	}
	return time.ParseInLocation(isoLayout, s, time.Local)
}
