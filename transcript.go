package neochat

import "strings"

// Line is one rendered transcript entry.
type Line struct {
	Text  string
	Class Class
}

// Transcript is the ordered, append-only rendered text of all displayed
// messages for the current run. Lines are only ever removed by Clear. The
// transcript is owned by the UI goroutine; it has no internal locking.
type Transcript struct {
	lines []Line
}

// Append adds a line to the end of the transcript.
func (t *Transcript) Append(line Line) {
	t.lines = append(t.lines, line)
}

// Drain consumes all pending queue messages, appending one formatted line
// per message, classified against selfName at append time. It returns the
// number of lines appended.
func (t *Transcript) Drain(q *Queue, selfName string) int {
	msgs := q.DrainAll()
	for _, msg := range msgs {
		t.Append(Line{Text: FormatLine(msg), Class: Classify(msg.Sender, selfName)})
	}
	return len(msgs)
}

// Lines returns a copy of the transcript lines.
func (t *Transcript) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// Len returns the number of lines.
func (t *Transcript) Len() int { return len(t.lines) }

// Text returns the transcript as plain text, each line terminated by a
// newline. This is the persisted form.
func (t *Transcript) Text() string {
	if len(t.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range t.lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Clear removes all lines.
func (t *Transcript) Clear() { t.lines = nil }
