package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/parser"
)

func TestMockTranscribe_HintSelectsIntent(t *testing.T) {
	stt := NewMockSpeechToText(rand.New(rand.NewSource(1)))

	text, err := stt.Transcribe(context.Background(), []byte("audio"), "add_command.wav")
	require.NoError(t, err)
	assert.Contains(t, mockTranscripts["add"], text)

	text, err = stt.Transcribe(context.Background(), []byte("audio"), "REMOVE-clip")
	require.NoError(t, err)
	assert.Contains(t, mockTranscripts["remove"], text)
}

func TestMockTranscribe_UnknownHintFallsBack(t *testing.T) {
	stt := NewMockSpeechToText(rand.New(rand.NewSource(1)))

	text, err := stt.Transcribe(context.Background(), []byte("audio"), "recording.wav")
	require.NoError(t, err)
	assert.Contains(t, mockFallback, text)
}

func TestMockTranscripts_AllParse(t *testing.T) {
	// Every canned utterance must survive the parser, or the mock produces
	// dead ends the real pipeline would never see.
	for intent, options := range mockTranscripts {
		for _, text := range options {
			assert.NotNil(t, parser.Parse(text), "%s transcript %q did not parse", intent, text)
		}
	}
	for _, text := range mockFallback {
		assert.NotNil(t, parser.Parse(text), "fallback transcript %q did not parse", text)
	}
}

func TestProcessText_Trims(t *testing.T) {
	stt := NewMockSpeechToText(rand.New(rand.NewSource(1)))
	assert.Equal(t, "add 5 apples", stt.ProcessText("  add 5 apples \n"))
}
