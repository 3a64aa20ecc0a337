package chatbot

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/zhouzirui/moodbot/backend/internal/analysis/intent"
	"github.com/zhouzirui/moodbot/backend/internal/model/chatbot"
	"github.com/zhouzirui/moodbot/backend/internal/model/reply"
)

var ErrEmptyPool = errors.New("reply pool is empty")

// Random picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

// globalRandom uses the goroutine-safe top-level generator.
type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// Option customises a Service.
type Option func(*Service)

// WithRandom swaps the random source, typically for a seeded one in tests.
func WithRandom(r Random) Option {
	return func(s *Service) {
		if r != nil {
			s.random = r
		}
	}
}

// WithDetector swaps the intent detector.
func WithDetector(d *intent.Detector) Option {
	return func(s *Service) {
		if d != nil {
			s.detector = d
		}
	}
}

// Service turns a caller's emotion and message into a canned reply.
// It keeps no per-request state; the configured Random must be safe for
// concurrent use if the Service is shared across goroutines.
type Service struct {
	random   Random
	detector *intent.Detector
}

// NewService wires a Service with the global random source and the default
// token-matching detector unless options say otherwise.
func NewService(opts ...Option) *Service {
	s := &Service{
		random:   globalRandom{},
		detector: intent.NewDetector(nil, intent.MatchToken),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reply picks a reply from the emotion pool, then replaces it with one from the
// intent pool when the message is not empty.
func (s *Service) Reply(_ context.Context, req chatbot.Request) (chatbot.Response, error) {
	emotion := req.Emotion
	if emotion == "" {
		emotion = string(reply.Neutral)
	}

	response, err := s.pick(reply.EmotionPool(emotion))
	if err != nil {
		return chatbot.Response{}, err
	}

	message := strings.ToLower(req.Message)
	if message != "" {
		detected, err := s.detector.Detect(message)
		if err != nil {
			return chatbot.Response{}, fmt.Errorf("detect intent: %w", err)
		}
		response, err = s.pick(reply.IntentPool(detected))
		if err != nil {
			return chatbot.Response{}, err
		}
	}

	return chatbot.Response{Response: response}, nil
}

func (s *Service) pick(pool []string) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	return pool[s.random.IntN(len(pool))], nil
}
