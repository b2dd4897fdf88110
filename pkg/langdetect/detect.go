// Package langdetect proposes a language identifier for fenced code
// blocks that carry no info string. It uses go-enry, preferring shebang
// detection and falling back to the classifier over a fixed candidate
// set. Results feed the code block's class attribute, so low-confidence
// guesses return the empty string rather than a wrong label.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates is the language set offered to the classifier. Keeping it
// small makes the classifier usable on short snippets.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Elixir", "Dockerfile",
}

// Detect returns a lowercase language identifier for the code content,
// or "" when nothing can be determined with confidence.
func Detect(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// normalize lowercases and flattens enry names into class-safe tokens.
func normalize(lang string) string {
	lang = strings.ToLower(lang)
	lang = strings.ReplaceAll(lang, " ", "-")
	lang = strings.ReplaceAll(lang, "+", "p")
	return lang
}
