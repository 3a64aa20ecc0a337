package intent

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/moodbot/backend/internal/analysis/tokenize"
	"github.com/zhouzirui/moodbot/backend/internal/model/reply"
)

// Mode selects how keywords are compared against tokens.
type Mode int

const (
	// MatchToken compares each keyword against single tokens. Multi-word
	// keywords such as "see you" can never match in this mode.
	MatchToken Mode = iota
	// MatchPhrase lets a multi-word keyword match a run of consecutive tokens.
	MatchPhrase
)

func (m Mode) String() string {
	switch m {
	case MatchToken:
		return "token"
	case MatchPhrase:
		return "phrase"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type rule struct {
	intent   reply.Intent
	keywords []string
}

// Evaluated top-down, first match wins. Order is observable; keep it.
var rules = []rule{
	{reply.Greeting, []string{"hi", "hello", "hey"}},
	{reply.Farewell, []string{"bye", "goodbye", "see you"}},
	{reply.Thanks, []string{"thanks", "thank you"}},
	{reply.Advice, []string{"advice", "help", "suggest"}},
}

// Detector classifies a message into one of the fixed intents.
// It holds no mutable state and is safe for concurrent use.
type Detector struct {
	tokenizer tokenize.Tokenizer
	mode      Mode
}

// NewDetector builds a detector. A nil tokenizer means tokenize.Simple.
func NewDetector(tokenizer tokenize.Tokenizer, mode Mode) *Detector {
	if tokenizer == nil {
		tokenizer = tokenize.Simple{}
	}
	return &Detector{tokenizer: tokenizer, mode: mode}
}

// Mode reports the matching mode.
func (d *Detector) Mode() Mode {
	return d.mode
}

// Detect lowercases and tokenizes text, then runs the keyword cascade.
// The only error source is the tokenizer.
func (d *Detector) Detect(text string) (reply.Intent, error) {
	tokens, err := d.tokenizer.Tokenize(strings.ToLower(text))
	if err != nil {
		return reply.Unknown, fmt.Errorf("tokenize message: %w", err)
	}

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if d.matches(tokens, keyword) {
				return r.intent, nil
			}
		}
	}
	return reply.Unknown, nil
}

func (d *Detector) matches(tokens []string, keyword string) bool {
	if d.mode == MatchPhrase {
		return containsRun(tokens, strings.Fields(keyword))
	}
	for _, tok := range tokens {
		if tok == keyword {
			return true
		}
	}
	return false
}

func containsRun(tokens, phrase []string) bool {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		for j, word := range phrase {
			if tokens[i+j] != word {
				continue outer
			}
		}
		return true
	}
	return false
}

var defaultDetector = NewDetector(tokenize.Simple{}, MatchToken)

// Detect classifies text with the simple tokenizer and per-token matching.
// It never fails.
func Detect(text string) reply.Intent {
	got, _ := defaultDetector.Detect(text)
	return got
}
