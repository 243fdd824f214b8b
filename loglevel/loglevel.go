// Package loglevel formats leveled messages.
package loglevel

import "fmt"

// Level is a message severity.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Message is a leveled line of text.
type Message struct {
	Level Level
	Text  string
}

// Format renders m as "[LEVEL] text".
func Format(m Message) string {
	return "[" + m.Level.String() + "] " + m.Text
}
