// Package lexicon holds the static multilingual keyword tables the command
// parser matches against: action keywords, stop words and unit words for
// English, Telugu and Hindi. The tables are loaded once at init and never
// mutated afterwards.
package lexicon

import (
	"strings"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
)

// Language codes for the per-language stop word tables.
type Language string

const (
	English Language = "en"
	Telugu  Language = "te"
	Hindi   Language = "hi"
)

// QuantityActionOrder is the fixed order in which structured patterns are
// tried for quantity-bearing actions. First match wins; changing this order
// changes parse results for ambiguous utterances, so it is a tested contract.
var QuantityActionOrder = []models.Action{
	models.ActionAdd,
	models.ActionRemove,
	models.ActionUpdate,
}

// ActionKeywords maps each action to its trigger words across all supported
// languages. Entries may be multi-word phrases ("how many", "quantity of",
// "ले लो"); those match as contiguous token sequences.
var ActionKeywords = map[models.Action][]string{
	models.ActionAdd:    {"add", "put", "insert", "ఆడ్", "చెయ్", "పెట్టు", "जोड़ो", "डालो", "रखो"},
	models.ActionRemove: {"remove", "delete", "take", "తీసేయ", "తీయ", "తొలగించు", "हटाओ", "निकालो", "ले लो"},
	models.ActionUpdate: {"update", "change", "set", "అప్డేట్", "మార్చు", "सेट", "बदलो", "अपडेट"},
	models.ActionCheck:  {"check", "how many", "quantity of", "చెక్", "ఎంత", "चेक", "कितना", "मात्रा"},
	models.ActionList:   {"list", "show", "get", "లిస్ట్", "చూపించు", "सूची", "दिखाओ", "लिस्ट"},
}

// StopWords are filler tokens stripped from item names, per language.
var StopWords = map[Language][]string{
	English: {"and", "also", "the", "a", "an", "of", "in", "to", "for", "with", "please", "can", "you", "i", "want", "need"},
	Telugu:  {"మరియు", "కూడా", "ఉంది", "అయితే", "అయిందా"},
	Hindi:   {"और", "भी", "का", "की", "के", "से", "में"},
}

// UnitWords are measure words that may sit between a quantity and an item
// name ("add 10 bags of rice"). They are consumed by structured patterns and
// skipped by the flexible parser.
var UnitWords = []string{
	"bag", "bags", "unit", "units", "pc", "pcs", "piece", "pieces", "kg", "gram", "grams",
	"packet", "packets", "ప్యాకెట్", "ప్యాకెట్లు", "బ్యాగ్", "బ్యాగ్స్", "पैकेट", "बैग",
}

// Conjunctions terminate the item span in structured patterns so compound
// utterances do not bleed into the item name.
var Conjunctions = []string{"and", "also", "మరియు", "और"}

var (
	stopWordSet   map[string]struct{}
	unitWordSet   map[string]struct{}
	actionForWord map[string]models.Action
)

func init() {
	stopWordSet = make(map[string]struct{})
	for _, words := range StopWords {
		for _, w := range words {
			stopWordSet[w] = struct{}{}
		}
	}

	unitWordSet = make(map[string]struct{}, len(UnitWords))
	for _, w := range UnitWords {
		unitWordSet[w] = struct{}{}
	}

	actionForWord = make(map[string]models.Action)
	for _, action := range []models.Action{
		models.ActionAdd, models.ActionRemove, models.ActionUpdate, models.ActionCheck, models.ActionList,
	} {
		for _, kw := range ActionKeywords[action] {
			if strings.ContainsRune(kw, ' ') {
				continue // multi-word phrases are matched by the parser, not token lookup
			}
			if _, taken := actionForWord[kw]; !taken {
				actionForWord[kw] = action
			}
		}
	}
	// Bare question/display words recognized only by the flexible parser.
	actionForWord["how"] = models.ActionCheck
}

// IsStopWord reports whether the token is a stop word in any supported
// language. Tokens are expected to be case-folded already.
func IsStopWord(token string) bool {
	_, ok := stopWordSet[token]
	return ok
}

// IsUnitWord reports whether the token is a measure word.
func IsUnitWord(token string) bool {
	_, ok := unitWordSet[token]
	return ok
}

// ActionForKeyword resolves a single token to the action it triggers.
func ActionForKeyword(token string) (models.Action, bool) {
	action, ok := actionForWord[token]
	return action, ok
}
