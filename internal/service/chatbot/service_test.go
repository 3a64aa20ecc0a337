package chatbot_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/zhouzirui/moodbot/backend/internal/analysis/intent"
	model "github.com/zhouzirui/moodbot/backend/internal/model/chatbot"
	"github.com/zhouzirui/moodbot/backend/internal/model/reply"
	chatbot "github.com/zhouzirui/moodbot/backend/internal/service/chatbot"
)

// fixedRandom always returns the same index, clamped to the pool size.
type fixedRandom int

func (f fixedRandom) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

type brokenTokenizer struct{}

func (brokenTokenizer) Tokenize(string) ([]string, error) {
	return nil, errors.New("boom")
}

func mustReply(t *testing.T, svc *chatbot.Service, req model.Request) string {
	t.Helper()
	resp, err := svc.Reply(context.Background(), req)
	if err != nil {
		t.Fatalf("Reply err: %v", err)
	}
	if resp.Response == "" {
		t.Fatal("expected non-empty reply")
	}
	return resp.Response
}

func TestReplyUsesEmotionPool(t *testing.T) {
	svc := chatbot.NewService()
	for _, e := range reply.Emotions() {
		pool, _ := reply.ForEmotion(e)
		got := mustReply(t, svc, model.Request{Emotion: string(e)})
		if !slices.Contains(pool, got) {
			t.Fatalf("emotion %s: reply %q not in pool %v", e, got, pool)
		}
	}
}

func TestReplyFallsBackToNeutral(t *testing.T) {
	svc := chatbot.NewService()
	neutral, _ := reply.ForEmotion(reply.Neutral)
	for _, label := range []string{"", "bored", "Happy", "SAD"} {
		got := mustReply(t, svc, model.Request{Emotion: label})
		if !slices.Contains(neutral, got) {
			t.Fatalf("emotion %q: expected neutral reply, got %q", label, got)
		}
	}
}

func TestReplyGreeting(t *testing.T) {
	svc := chatbot.NewService()
	want := []string{"Hello! How can I assist you?", "Hi there! What's on your mind?"}
	got := mustReply(t, svc, model.Request{Emotion: "sad", Message: "hello there"})
	if !slices.Contains(want, got) {
		t.Fatalf("expected greeting reply, got %q", got)
	}
}

func TestReplyMessageIsLowercased(t *testing.T) {
	svc := chatbot.NewService(chatbot.WithRandom(fixedRandom(0)))
	if got := mustReply(t, svc, model.Request{Message: "THANKS A LOT"}); got != "You're welcome!" {
		t.Fatalf("expected thanks reply, got %q", got)
	}
}

func TestReplySeeYouTokenMode(t *testing.T) {
	// Per-token matching never matches the two-word keyword.
	svc := chatbot.NewService()
	unknown, _ := reply.ForIntent(reply.Unknown)
	got := mustReply(t, svc, model.Request{Message: "see you"})
	if !slices.Contains(unknown, got) {
		t.Fatalf("expected unknown reply, got %q", got)
	}
}

func TestReplySeeYouPhraseMode(t *testing.T) {
	svc := chatbot.NewService(chatbot.WithDetector(intent.NewDetector(nil, intent.MatchPhrase)))
	farewell, _ := reply.ForIntent(reply.Farewell)
	got := mustReply(t, svc, model.Request{Message: "see you"})
	if !slices.Contains(farewell, got) {
		t.Fatalf("expected farewell reply, got %q", got)
	}
}

func TestReplyEmptyMessageSkipsIntent(t *testing.T) {
	svc := chatbot.NewService(chatbot.WithDetector(intent.NewDetector(brokenTokenizer{}, intent.MatchToken)))
	sad, _ := reply.ForEmotion(reply.Sad)
	got := mustReply(t, svc, model.Request{Emotion: "sad"})
	if !slices.Contains(sad, got) {
		t.Fatalf("expected sad reply, got %q", got)
	}
}

func TestReplyWhitespaceMessageIsUnknown(t *testing.T) {
	svc := chatbot.NewService(chatbot.WithRandom(fixedRandom(1)))
	if got := mustReply(t, svc, model.Request{Emotion: "happy", Message: "   "}); got != "I see. Can you elaborate?" {
		t.Fatalf("expected unknown reply, got %q", got)
	}
}

func TestReplyFixedRandomIsExact(t *testing.T) {
	svc := chatbot.NewService(chatbot.WithRandom(fixedRandom(2)))
	if got := mustReply(t, svc, model.Request{Emotion: "angry"}); got != "I'm sorry you're upset. How can I help?" {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestReplySeededRandomIsReproducible(t *testing.T) {
	first := chatbot.NewService(chatbot.WithRandom(rand.New(rand.NewPCG(7, 11))))
	second := chatbot.NewService(chatbot.WithRandom(rand.New(rand.NewPCG(7, 11))))
	for i := 0; i < 20; i++ {
		req := model.Request{Emotion: "surprised"}
		if a, b := mustReply(t, first, req), mustReply(t, second, req); a != b {
			t.Fatalf("iteration %d: seeded sources diverged: %q vs %q", i, a, b)
		}
	}
}

func TestReplyAlwaysFromSameSet(t *testing.T) {
	svc := chatbot.NewService()
	advice, _ := reply.ForIntent(reply.Advice)
	for i := 0; i < 50; i++ {
		got := mustReply(t, svc, model.Request{Emotion: "happy", Message: "any advice?"})
		if !slices.Contains(advice, got) {
			t.Fatalf("iteration %d: reply %q outside advice pool", i, got)
		}
	}
}

func TestReplyTokenizerError(t *testing.T) {
	svc := chatbot.NewService(chatbot.WithDetector(intent.NewDetector(brokenTokenizer{}, intent.MatchToken)))
	if _, err := svc.Reply(context.Background(), model.Request{Message: "hello"}); err == nil {
		t.Fatal("expected error when tokenizer fails")
	}
}
