package parser

import (
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/diag"
)

// Context carries the state of one parse invocation: the active options
// and the accumulated diagnostic messages. A Context is created per call,
// split per concurrent unit, and merged back at join; it is never shared
// across running units.
type Context struct {
	Options *config.Options

	collector diag.Collector
}

// NewContext creates a parse context with the given options.
// Nil options select the defaults.
func NewContext(opts *config.Options) *Context {
	if opts == nil {
		opts = config.NewOptions()
	}
	return &Context{Options: opts}
}

// Split creates a child context for one concurrent unit. The child shares
// the options but owns its own message list.
func (c *Context) Split() *Context {
	return &Context{Options: c.Options}
}

// Join merges a child context's messages back after its unit completed.
func (c *Context) Join(child *Context) {
	if child == nil {
		return
	}
	c.collector.Merge(&child.collector)
}

// Warnf records a warning at the given line.
func (c *Context) Warnf(line int, format string, args ...any) {
	c.collector.Warnf(line, format, args...)
}

// Errorf records an error at the given line.
func (c *Context) Errorf(line int, format string, args ...any) {
	c.collector.Errorf(line, format, args...)
}

// Deprecatef records a deprecation notice at the given line.
func (c *Context) Deprecatef(line int, format string, args ...any) {
	c.collector.Deprecatef(line, format, args...)
}

// Messages returns the finalized, line-sorted message list.
func (c *Context) Messages() []diag.Message {
	return c.collector.Messages()
}

// Status returns the overall status implied by the collected messages.
func (c *Context) Status() diag.Status {
	return c.collector.Status()
}
