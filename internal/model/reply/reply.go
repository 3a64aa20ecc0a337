package reply

// Emotion 表示调用方提供的情绪标签。
type Emotion string

const (
	Happy     Emotion = "happy"
	Sad       Emotion = "sad"
	Neutral   Emotion = "neutral"
	Angry     Emotion = "angry"
	Surprised Emotion = "surprised"
)

// Intent 表示用户消息被归入的意图类别。
type Intent string

const (
	Greeting Intent = "greeting"
	Farewell Intent = "farewell"
	Thanks   Intent = "thanks"
	Advice   Intent = "advice"
	Unknown  Intent = "unknown"
)

var emotionReplies = map[Emotion][]string{
	Happy: {
		"You seem happy! What's the good news?",
		"Glad to see you're happy! Tell me more!",
		"Happiness looks great on you. What made your day?",
	},
	Sad: {
		"I'm sorry you're feeling sad. Want to talk about it?",
		"It's okay to feel down sometimes. I'm here to listen.",
		"What happened? Talking might help.",
	},
	Neutral: {
		"How's your day going?",
		"Anything interesting happening today?",
		"What would you like to talk about?",
	},
	Angry: {
		"Take a deep breath. I'm here if you want to talk.",
		"It's okay to vent. What's bothering you?",
		"I'm sorry you're upset. How can I help?",
	},
	Surprised: {
		"Wow, you seem surprised! Tell me what's on your mind.",
		"Surprises are fun! What's going on?",
		"Something unexpected happened? I'm curious!",
	},
}

var intentReplies = map[Intent][]string{
	Greeting: {"Hello! How can I assist you?", "Hi there! What's on your mind?"},
	Farewell: {"Goodbye! Take care.", "See you later!"},
	Thanks:   {"You're welcome!", "Happy to help!"},
	Advice:   {"Life has its ups and downs. Stay strong.", "Believe in yourself. You can do it!"},
	Unknown:  {"That's interesting! Tell me more.", "I see. Can you elaborate?"},
}

// Emotions lists the recognised emotion labels in a stable order.
func Emotions() []Emotion {
	return []Emotion{Happy, Sad, Neutral, Angry, Surprised}
}

// Intents lists every intent the detector can produce, in a stable order.
func Intents() []Intent {
	return []Intent{Greeting, Farewell, Thanks, Advice, Unknown}
}

// ForEmotion returns a copy of the reply pool for the label and whether the
// label is a table key.
func ForEmotion(e Emotion) ([]string, bool) {
	pool, ok := emotionReplies[e]
	if !ok {
		return nil, false
	}
	return append([]string(nil), pool...), true
}

// ForIntent returns a copy of the reply pool for the intent and whether the
// intent is a table key.
func ForIntent(i Intent) ([]string, bool) {
	pool, ok := intentReplies[i]
	if !ok {
		return nil, false
	}
	return append([]string(nil), pool...), true
}

// EmotionPool resolves a raw label to its pool, falling back to neutral.
func EmotionPool(label string) []string {
	if pool, ok := ForEmotion(Emotion(label)); ok {
		return pool
	}
	pool, _ := ForEmotion(Neutral)
	return pool
}

// IntentPool resolves an intent to its pool, falling back to unknown.
func IntentPool(i Intent) []string {
	if pool, ok := ForIntent(i); ok {
		return pool
	}
	pool, _ := ForIntent(Unknown)
	return pool
}
