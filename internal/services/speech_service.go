package services

import (
	"context"
	"math/rand"
	"strings"
)

// SpeechToText converts captured audio into plain text. The audio bytes are
// opaque to the rest of the system; the inventory core only ever sees the
// transcript.
type SpeechToText interface {
	// Transcribe converts an audio clip to text. hint is the original
	// filename, when the client supplied one.
	Transcribe(ctx context.Context, audio []byte, hint string) (string, error)
	// ProcessText normalizes direct text input (the no-audio path).
	ProcessText(text string) string
}

// mockSpeechToText is a stand-in transcriber that returns canned utterances.
// It keeps the full pipeline exercisable end to end until a real speech
// engine is plugged in behind the same interface.
type mockSpeechToText struct {
	rng *rand.Rand
}

func NewMockSpeechToText(rng *rand.Rand) SpeechToText {
	return &mockSpeechToText{rng: rng}
}

var mockTranscripts = map[string][]string{
	"add": {
		"add 10 laptops",
		"add 5 mice",
		"add 3 keyboards",
		"add 15 monitors",
	},
	"remove": {
		"remove 2 headsets",
		"remove 5 cables",
		"remove 1 webcam",
	},
	"update": {
		"update laptop quantity to 20",
		"change mouse to 10",
		"set keyboard to 5",
	},
	"check": {
		"how many laptops do we have",
		"check mouse quantity",
		"quantity of monitors",
	},
}

var mockFallback = []string{
	"add 5 apples",
	"check inventory",
	"update orange quantity to 10",
}

func (m *mockSpeechToText) Transcribe(_ context.Context, _ []byte, hint string) (string, error) {
	hint = strings.ToLower(hint)
	for _, intent := range []string{"add", "remove", "update", "check"} {
		if strings.Contains(hint, intent) {
			options := mockTranscripts[intent]
			return options[m.rng.Intn(len(options))], nil
		}
	}
	return mockFallback[m.rng.Intn(len(mockFallback))], nil
}

func (m *mockSpeechToText) ProcessText(text string) string {
	return strings.TrimSpace(text)
}
