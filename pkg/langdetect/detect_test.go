package langdetect_test

import (
	"testing"

	"github.com/yaklabco/gomdparse/pkg/langdetect"
)

func TestDetect_Empty(t *testing.T) {
	t.Parallel()

	if got := langdetect.Detect(nil); got != "" {
		t.Errorf("Detect(nil) = %q, want empty", got)
	}
	if got := langdetect.Detect([]byte("")); got != "" {
		t.Errorf("Detect(empty) = %q, want empty", got)
	}
}

func TestDetect_Shebang(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "bash",
			content: "#!/bin/bash\necho hello\n",
			want:    "shell",
		},
		{
			name:    "python",
			content: "#!/usr/bin/env python\nprint('hello')\n",
			want:    "python",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := langdetect.Detect([]byte(tt.content)); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetect_LowercasesResult(t *testing.T) {
	t.Parallel()

	got := langdetect.Detect([]byte("#!/bin/sh\n"))
	if got != "" && got != "shell" {
		t.Errorf("Detect() = %q, want a lowercase identifier", got)
	}
	for _, r := range got {
		if r >= 'A' && r <= 'Z' {
			t.Errorf("Detect() = %q contains uppercase", got)
		}
	}
}
