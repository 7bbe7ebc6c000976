package neochat

import "fmt"

// Class is the display classification of a transcript line. It is assigned
// once when the line is appended and never reassigned; changing the display
// name later does not recolor history.
type Class int

const (
	ClassDefault Class = iota
	ClassSelf
	ClassSystem
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassSelf:
		return "self"
	case ClassSystem:
		return "system"
	default:
		return "default"
	}
}

// FormatLine renders a message as "[HH:MM] sender: body" using the
// zero-padded local hour and minute of the message timestamp.
func FormatLine(msg Message) string {
	return fmt.Sprintf("[%s] %s: %s", msg.Timestamp.Local().Format("15:04"), msg.Sender, msg.Body)
}

// Classify assigns a display class, evaluating rules in order: the system
// sender wins, then the viewer's own name, then default.
func Classify(sender, selfName string) Class {
	switch {
	case sender == SystemSender:
		return ClassSystem
	case selfName != "" && sender == selfName:
		return ClassSelf
	default:
		return ClassDefault
	}
}
