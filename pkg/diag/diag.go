// Package diag defines the diagnostic model for gomdparse: severity-tagged
// messages collected from every parse stage, and the overall parse status
// derived from them. Parsing is error-tolerant; messages never carry fatal
// infrastructure faults, which surface as Go errors instead.
package diag

import (
	"cmp"
	"fmt"
	"slices"
)

// Severity represents the severity level of a parse message.
type Severity string

const (
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityDeprecation Severity = "deprecation"
)

// Status is the overall outcome of a parse.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Message is a single diagnostic produced during parsing.
type Message struct {
	// Severity indicates the importance of the message.
	Severity Severity `json:"severity"`

	// Line is the 1-based source line the message refers to.
	// Zero means the message cannot be attributed to a line.
	Line int `json:"line"`

	// Text is the human-readable description.
	Text string `json:"text"`
}

// String formats the message for log and CLI output.
func (m Message) String() string {
	return fmt.Sprintf("%s: line %d: %s", m.Severity, m.Line, m.Text)
}

// StatusOf derives the overall status from a message list.
// Status is error iff any message has severity error or warning;
// deprecations alone do not flip the status.
func StatusOf(messages []Message) Status {
	for _, m := range messages {
		if m.Severity == SeverityError || m.Severity == SeverityWarning {
			return StatusError
		}
	}
	return StatusOK
}

// Sort orders messages by ascending line number, preserving the relative
// order of messages on the same line.
func Sort(messages []Message) {
	slices.SortStableFunc(messages, func(a, b Message) int {
		return cmp.Compare(a.Line, b.Line)
	})
}

// Collector accumulates messages from a single parse stage or unit.
// It is not safe for concurrent use; each concurrent unit owns its own
// Collector and the results are merged strictly after join.
type Collector struct {
	messages []Message
}

// Add appends a message to the collector.
func (c *Collector) Add(m Message) {
	c.messages = append(c.messages, m)
}

// Errorf records an error-severity message.
func (c *Collector) Errorf(line int, format string, args ...any) {
	c.Add(Message{Severity: SeverityError, Line: line, Text: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-severity message.
func (c *Collector) Warnf(line int, format string, args ...any) {
	c.Add(Message{Severity: SeverityWarning, Line: line, Text: fmt.Sprintf(format, args...)})
}

// Deprecatef records a deprecation-severity message.
func (c *Collector) Deprecatef(line int, format string, args ...any) {
	c.Add(Message{Severity: SeverityDeprecation, Line: line, Text: fmt.Sprintf(format, args...)})
}

// Merge appends all messages from another collector.
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	c.messages = append(c.messages, other.messages...)
}

// Len returns the number of collected messages.
func (c *Collector) Len() int {
	return len(c.messages)
}

// Messages returns the finalized message list, sorted by ascending line
// number with stable order for equal lines.
func (c *Collector) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	Sort(out)
	return out
}

// Status returns the overall status implied by the collected messages.
func (c *Collector) Status() Status {
	return StatusOf(c.messages)
}
