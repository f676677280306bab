package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
)

func TestParse_StructuredEnglish(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		action   models.Action
		item     string
		quantity int
	}{
		{"add simple", "add 10 apples", models.ActionAdd, "apples", 10},
		{"add with unit and of", "add 10 bags of rice", models.ActionAdd, "rice", 10},
		{"put keyword", "put 3 water bottles", models.ActionAdd, "water bottles", 3},
		{"insert keyword", "insert 7 pens", models.ActionAdd, "pens", 7},
		{"remove simple", "remove 5 laptops", models.ActionRemove, "laptops", 5},
		{"delete keyword", "delete 2 chairs", models.ActionRemove, "chairs", 2},
		{"take keyword", "take 4 boxes", models.ActionRemove, "boxes", 4},
		{"update to", "update rice to 20", models.ActionUpdate, "rice", 20},
		{"update with quantity word", "change laptop quantity to 15", models.ActionUpdate, "laptop", 15},
		{"set keyword", "set mouse to 8", models.ActionUpdate, "mouse", 8},
		{"compound keeps first clause", "add 100 water bottles and also 50 pens", models.ActionAdd, "water bottles", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.text)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.action, cmd.Action)
			assert.Equal(t, tt.item, cmd.Item)
			assert.Equal(t, tt.quantity, cmd.Quantity)
			assert.Equal(t, models.ConfidenceStructured, cmd.Confidence)
		})
	}
}

func TestParse_StructuredTelugu(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		action   models.Action
		item     string
		quantity int
	}{
		{"suffix add", "10 బ్యాగ్స్ బియ్యం పెట్టు", models.ActionAdd, "బియ్యం", 10},
		{"suffix remove", "5 పంచదార తీసేయ", models.ActionRemove, "పంచదార", 5},
		{"suffix update", "బియ్యం 20 కు మార్చు", models.ActionUpdate, "బియ్యం", 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.text)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.action, cmd.Action)
			assert.Equal(t, tt.item, cmd.Item)
			assert.Equal(t, tt.quantity, cmd.Quantity)
			assert.Equal(t, models.ConfidenceStructured, cmd.Confidence)
		})
	}
}

func TestParse_StructuredHindi(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		action   models.Action
		item     string
		quantity int
	}{
		{"prefix add", "जोड़ो 10 चावल", models.ActionAdd, "चावल", 10},
		{"suffix remove", "2 चावल हटाओ", models.ActionRemove, "चावल", 2},
		{"suffix add", "5 पैकेट चीनी डालो", models.ActionAdd, "चीनी", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.text)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.action, cmd.Action)
			assert.Equal(t, tt.item, cmd.Item)
			assert.Equal(t, tt.quantity, cmd.Quantity)
			assert.Equal(t, models.ConfidenceStructured, cmd.Confidence)
		})
	}
}

func TestParse_Check(t *testing.T) {
	tests := []struct {
		name string
		text string
		item string
	}{
		{"check keyword", "check rice", "rice"},
		{"how many", "how many laptops", "laptops"},
		{"quantity of", "quantity of monitors", "monitors"},
		{"hindi", "कितना चावल", "चावल"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.text)
			require.NotNil(t, cmd)
			assert.Equal(t, models.ActionCheck, cmd.Action)
			assert.Equal(t, tt.item, cmd.Item)
		})
	}
}

func TestParse_List(t *testing.T) {
	for _, text := range []string{"list all", "show inventory", "list everything", "show all items"} {
		cmd := Parse(text)
		require.NotNil(t, cmd, text)
		assert.Equal(t, models.ActionList, cmd.Action, text)
		assert.Equal(t, "all", cmd.Item, text)
		assert.Equal(t, models.ConfidenceStructured, cmd.Confidence, text)
	}
}

func TestParse_FlexibleFallback(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		action   models.Action
		item     string
		quantity int
	}{
		{"filler words", "please can you add 10 red apples", models.ActionAdd, "red apples", 10},
		{"action mid-sentence", "i want to add 3 staplers", models.ActionAdd, "staplers", 3},
		{"no quantity defaults to one", "add milk", models.ActionAdd, "milk", 1},
		{"telugu check question", "బియ్యం ఎంత ఉంది", models.ActionCheck, "బియ్యం", 1},
		{"unit word skipped", "please remove 2 packets of sugar", models.ActionRemove, "sugar", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := Parse(tt.text)
			require.NotNil(t, cmd)
			assert.Equal(t, tt.action, cmd.Action)
			assert.Equal(t, tt.item, cmd.Item)
			assert.Equal(t, tt.quantity, cmd.Quantity)
			assert.Equal(t, models.ConfidenceFlexible, cmd.Confidence)
		})
	}
}

func TestParse_Unrecognized(t *testing.T) {
	for _, text := range []string{
		"",
		"   ",
		"hello there",
		"the weather is nice today",
		"10 20 30",
	} {
		assert.Nil(t, Parse(text), "expected no parse for %q", text)
	}
}

func TestParse_NormalizesInput(t *testing.T) {
	cmd := Parse("  ADD   10   Apples  ")
	require.NotNil(t, cmd)
	assert.Equal(t, models.ActionAdd, cmd.Action)
	assert.Equal(t, "apples", cmd.Item)
	assert.Equal(t, 10, cmd.Quantity)
	assert.Equal(t, "add 10 apples", cmd.RawText)
}

func TestParse_ZeroQuantityStructured(t *testing.T) {
	// Structured patterns pass the literal quantity through; rejecting
	// zero is the dispatcher's call, not the parser's.
	cmd := Parse("add 0 apples")
	require.NotNil(t, cmd)
	assert.Equal(t, 0, cmd.Quantity)
	assert.Equal(t, models.ConfidenceStructured, cmd.Confidence)
}

func TestCleanItemName_AllStopWords(t *testing.T) {
	// A span made entirely of stop words keeps its original text rather
	// than collapsing to nothing.
	assert.Equal(t, "the and of", cleanItemName("the and of"))
	assert.Equal(t, "red apples", cleanItemName("the red apples"))
}
