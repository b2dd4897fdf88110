package config_test

import (
	"errors"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdparse/pkg/config"
)

func TestNewOptions_Defaults(t *testing.T) {
	t.Parallel()

	opts := config.NewOptions()

	if !opts.GFM {
		t.Error("GFM should default to true")
	}
	if opts.Breaks {
		t.Error("Breaks should default to false")
	}
	if !opts.Smartypants {
		t.Error("Smartypants should default to true")
	}
	if !opts.PureLinks {
		t.Error("PureLinks should default to true")
	}
	if opts.GFMTables {
		t.Error("GFMTables should default to false")
	}
	if opts.CodeClassPrefix != "" {
		t.Errorf("CodeClassPrefix = %q, want empty", opts.CodeClassPrefix)
	}
	if opts.TimeoutMillis != 5000 {
		t.Errorf("TimeoutMillis = %d, want 5000", opts.TimeoutMillis)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Options)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*config.Options) {},
			wantErr: false,
		},
		{
			name: "breaks with gfm",
			mutate: func(o *config.Options) {
				o.Breaks = true
			},
			wantErr: false,
		},
		{
			name: "breaks without gfm",
			mutate: func(o *config.Options) {
				o.GFM = false
				o.Breaks = true
			},
			wantErr: true,
		},
		{
			name: "zero timeout",
			mutate: func(o *config.Options) {
				o.TimeoutMillis = 0
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			mutate: func(o *config.Options) {
				o.TimeoutMillis = -100
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := config.NewOptions()
			tt.mutate(opts)

			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_BreaksSentinel(t *testing.T) {
	t.Parallel()

	opts := config.NewOptions()
	opts.GFM = false
	opts.Breaks = true

	if err := opts.Validate(); !errors.Is(err, config.ErrBreaksRequiresGFM) {
		t.Errorf("Validate() error = %v, want ErrBreaksRequiresGFM", err)
	}
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	opts := config.NewOptions()
	opts.TimeoutMillis = 250

	if got := opts.Timeout(); got != 250*time.Millisecond {
		t.Errorf("Timeout() = %v, want 250ms", got)
	}
}

func TestClone(t *testing.T) {
	t.Parallel()

	opts := config.NewOptions()
	opts.CodeClassPrefix = "lang-"

	clone := opts.Clone()
	clone.CodeClassPrefix = "language-"
	clone.GFM = false

	if opts.CodeClassPrefix != "lang-" || !opts.GFM {
		t.Error("mutating the clone changed the original")
	}
}

func TestOptions_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	src := `
gfm: true
breaks: true
code_class_prefix: "lang- language-"
smartypants: false
pure_links: false
gfm_tables: true
detect_code_language: true
timeout: 1200
`
	opts := config.NewOptions()
	if err := yaml.Unmarshal([]byte(src), opts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !opts.Breaks || !opts.GFMTables || !opts.DetectCodeLanguage {
		t.Error("bool options not read from yaml")
	}
	if opts.Smartypants || opts.PureLinks {
		t.Error("false overrides not applied from yaml")
	}
	if opts.CodeClassPrefix != "lang- language-" {
		t.Errorf("CodeClassPrefix = %q", opts.CodeClassPrefix)
	}
	if opts.TimeoutMillis != 1200 {
		t.Errorf("TimeoutMillis = %d, want 1200", opts.TimeoutMillis)
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Validate() after yaml load: %v", err)
	}
}
