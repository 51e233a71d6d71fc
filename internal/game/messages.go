package game

import "fmt"

// MessageLog is the append-only game log. Only the tail is ever shown.
type MessageLog struct {
	lines []string
}

// Add appends one line.
func (l *MessageLog) Add(msg string) {
	l.lines = append(l.lines, msg)
}

// Addf appends one formatted line.
func (l *MessageLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Recent returns a copy of the last n lines, oldest first.
func (l *MessageLog) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	start := max(0, len(l.lines)-n)
	return append([]string(nil), l.lines[start:]...)
}

// Len returns the number of lines logged.
func (l *MessageLog) Len() int { return len(l.lines) }

// Clear drops every line.
func (l *MessageLog) Clear() { l.lines = nil }
