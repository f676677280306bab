package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
)

func TestActionForKeyword(t *testing.T) {
	tests := []struct {
		token  string
		action models.Action
	}{
		{"add", models.ActionAdd},
		{"పెట్టు", models.ActionAdd},
		{"जोड़ो", models.ActionAdd},
		{"remove", models.ActionRemove},
		{"हटाओ", models.ActionRemove},
		{"update", models.ActionUpdate},
		{"మార్చు", models.ActionUpdate},
		{"check", models.ActionCheck},
		{"ఎంత", models.ActionCheck},
		{"how", models.ActionCheck},
		{"list", models.ActionList},
		{"చూపించు", models.ActionList},
	}
	for _, tt := range tests {
		action, ok := ActionForKeyword(tt.token)
		assert.True(t, ok, tt.token)
		assert.Equal(t, tt.action, action, tt.token)
	}

	_, ok := ActionForKeyword("rice")
	assert.False(t, ok)

	// Multi-word phrases never resolve through single-token lookup.
	_, ok = ActionForKeyword("how many")
	assert.False(t, ok)
}

func TestStopWords(t *testing.T) {
	for _, w := range []string{"and", "please", "మరియు", "और", "का"} {
		assert.True(t, IsStopWord(w), w)
	}
	for _, w := range []string{"rice", "laptop", "బియ్యం", "चावल"} {
		assert.False(t, IsStopWord(w), w)
	}
}

func TestUnitWords(t *testing.T) {
	for _, w := range []string{"bags", "kg", "packets", "బ్యాగ్స్", "पैकेट"} {
		assert.True(t, IsUnitWord(w), w)
	}
	assert.False(t, IsUnitWord("rice"))
}

func TestQuantityActionOrderIsStable(t *testing.T) {
	// Parse results for ambiguous utterances depend on this exact order.
	assert.Equal(t, []models.Action{models.ActionAdd, models.ActionRemove, models.ActionUpdate}, QuantityActionOrder)
}
