package tokenize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Tokenizer splits text into word-level tokens.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

const (
	KindSimple = "simple"
	KindProse  = "prose"
)

var ErrUnknownTokenizer = errors.New("unknown tokenizer")

// New returns the tokenizer registered under kind.
func New(kind string) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindSimple:
		return Simple{}, nil
	case KindProse:
		return Prose{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenizer, kind)
	}
}

// Simple splits on whitespace, emits runs of letters and digits as words and
// every other rune as a token of its own. Contractions are split the way
// English word tokenizers usually do: "it's" -> "it", "'s"; "don't" -> "do", "n't".
type Simple struct{}

// Tokenize never fails.
func (Simple) Tokenize(text string) ([]string, error) {
	var tokens []string
	for _, field := range strings.Fields(text) {
		tokens = appendFieldTokens(tokens, []rune(field))
	}
	return tokens, nil
}

func appendFieldTokens(tokens []string, runes []rune) []string {
	i := 0
	for i < len(runes) {
		if !isWordRune(runes[i]) {
			tokens = append(tokens, string(runes[i]))
			i++
			continue
		}

		j := i
		for j < len(runes) && isWordRune(runes[j]) {
			j++
		}

		if j+1 < len(runes) && isApostrophe(runes[j]) && isWordRune(runes[j+1]) {
			k := j + 1
			for k < len(runes) && isWordRune(runes[k]) {
				k++
			}
			head, suffix := string(runes[i:j]), string(runes[j:k])
			if strings.EqualFold(string(runes[j+1:k]), "t") && j-i > 1 && (runes[j-1] == 'n' || runes[j-1] == 'N') {
				head, suffix = string(runes[i:j-1]), string(runes[j-1:k])
			}
			tokens = append(tokens, head, suffix)
			i = k
			continue
		}

		tokens = append(tokens, string(runes[i:j]))
		i = j
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// Prose tokenizes with prose's iterative word tokenizer. Tagging, sentence
// segmentation and entity extraction are switched off so no model is loaded.
type Prose struct{}

func (Prose) Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose tokenize: %w", err)
	}

	raw := doc.Tokens()
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tokens = append(tokens, tok.Text)
	}
	return tokens, nil
}
