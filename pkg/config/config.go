// Package config defines the pure-data option set for gomdparse.
// These types carry no dependency on the loader; file-based resolution
// lives in internal/configloader.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DefaultTimeoutMillis is the default bound for one parse call.
const DefaultTimeoutMillis = 5000

// Options controls parsing and rendering behavior.
type Options struct {
	// GFM enables GitHub Flavored Markdown extensions
	// (strikethrough, autolinks, tables).
	GFM bool `yaml:"gfm"`

	// Breaks makes every line break inside a paragraph significant,
	// rendering it as a hard break. Requires GFM.
	Breaks bool `yaml:"breaks"`

	// CodeClassPrefix is a space-separated list of prefix tokens. A code
	// block with language L gets class "L" followed by "prefix+L" for
	// each token, space-joined in configured order.
	CodeClassPrefix string `yaml:"code_class_prefix"`

	// Smartypants converts straight quotes, double/triple dashes, and
	// "..." to their typographic equivalents in plain text.
	Smartypants bool `yaml:"smartypants"`

	// PureLinks turns bare URLs in text into links.
	PureLinks bool `yaml:"pure_links"`

	// GFMTables enables lenient table detection: a header row directly
	// followed by a separator row, no preceding blank line required.
	GFMTables bool `yaml:"gfm_tables"`

	// DetectCodeLanguage enables go-enry based language detection for
	// fenced code blocks that carry no info string.
	DetectCodeLanguage bool `yaml:"detect_code_language"`

	// TimeoutMillis bounds the concurrent fan-out of one parse call,
	// in milliseconds. Must be positive.
	TimeoutMillis int `yaml:"timeout"`
}

// NewOptions returns Options with the documented defaults.
func NewOptions() *Options {
	return &Options{
		GFM:           true,
		Smartypants:   true,
		PureLinks:     true,
		TimeoutMillis: DefaultTimeoutMillis,
	}
}

// Timeout returns the configured bound as a duration.
func (o *Options) Timeout() time.Duration {
	return time.Duration(o.TimeoutMillis) * time.Millisecond
}

// Clone returns a deep copy of the options.
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	clone := *o
	return &clone
}

// ErrBreaksRequiresGFM is returned when breaks is set without gfm.
var ErrBreaksRequiresGFM = errors.New("breaks requires gfm")

// Validate checks option consistency.
func (o *Options) Validate() error {
	if o.Breaks && !o.GFM {
		return ErrBreaksRequiresGFM
	}
	if o.TimeoutMillis <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", o.TimeoutMillis)
	}
	return nil
}
