// Package parser turns raw natural-language utterances (English, Telugu,
// Hindi) into structured inventory commands. It tries strict multilingual
// patterns first and falls back to a token scan for less structured input.
package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kranthi-826-ai/Inventory-Agent/internal/lexicon"
	"github.com/kranthi-826-ai/Inventory-Agent/internal/models"
)

type pattern struct {
	action  models.Action
	re      *regexp.Regexp
	qtyIdx  int // submatch index of the quantity, 0 when the pattern has none
	itemIdx int // submatch index of the item span, 0 when the pattern has none
}

// structured holds the tier-1 patterns in match order. Quantity-bearing
// actions are tried in the fixed add, remove, update sequence; the first
// matching pattern wins and no later action is considered.
var structured []pattern

func init() {
	unit := alternation(lexicon.UnitWords)
	conj := alternation(lexicon.Conjunctions)

	for _, action := range lexicon.QuantityActionOrder {
		kws := alternation(lexicon.ActionKeywords[action])
		if action == models.ActionUpdate {
			// "update rice to 20" / "set rice quantity to 20"
			structured = append(structured, pattern{
				action:  action,
				re:      regexp.MustCompile(fmt.Sprintf(`^(?:%s)\s+(.+?)\s+(?:quantity\s+)?(?:to|కు|को)\s+(\d+)$`, kws)),
				itemIdx: 1,
				qtyIdx:  2,
			})
			// "rice to 20 update" / "బియ్యం 20 కు మార్చు"
			structured = append(structured, pattern{
				action:  action,
				re:      regexp.MustCompile(fmt.Sprintf(`^(.+?)(?:\s+(?:to|కు|को))?\s+(\d+)(?:\s+(?:to|కు|को))?\s+(?:%s)$`, kws)),
				itemIdx: 1,
				qtyIdx:  2,
			})
			continue
		}
		// "add 10 bags of rice [and ...]"
		structured = append(structured, pattern{
			action:  action,
			re:      regexp.MustCompile(fmt.Sprintf(`^(?:%s)\s+(\d+)\s+(?:(?:%s)\s+)?(?:of\s+)?(.+?)(?:\s+(?:%s)\s+.*)?$`, kws, unit, conj)),
			qtyIdx:  1,
			itemIdx: 2,
		})
		// "10 బ్యాగ్స్ బియ్యం పెట్టు" (quantity, unit, item, trailing action keyword)
		structured = append(structured, pattern{
			action:  action,
			re:      regexp.MustCompile(fmt.Sprintf(`^(\d+)\s+(?:(?:%s)\s+)?(.+?)\s+(?:%s)$`, unit, kws)),
			qtyIdx:  1,
			itemIdx: 2,
		})
	}

	// Lower-volume intents use dedicated fixed-phrase patterns.
	checkKws := alternation(lexicon.ActionKeywords[models.ActionCheck])
	structured = append(structured, pattern{
		action:  models.ActionCheck,
		re:      regexp.MustCompile(fmt.Sprintf(`^(?:%s)\s+(.+)$`, checkKws)),
		itemIdx: 1,
	})

	listKws := alternation(lexicon.ActionKeywords[models.ActionList])
	structured = append(structured, pattern{
		action: models.ActionList,
		re:     regexp.MustCompile(fmt.Sprintf(`^(?:%s)\s+(?:all|inventory|everything|అన్నీ|सब)(?:\s+.*)?$`, listKws)),
	})
}

// Parse interprets an utterance as an inventory command. It returns nil when
// the text is empty or no strategy recognizes it; it never panics on odd
// input. Matching is case-folded and whitespace-normalized.
func Parse(text string) *models.ParsedCommand {
	norm := normalize(text)
	if norm == "" {
		return nil
	}
	if cmd := structuredParse(norm); cmd != nil {
		return cmd
	}
	return flexibleParse(norm)
}

// structuredParse is tier 1: strict patterns at full confidence.
func structuredParse(text string) *models.ParsedCommand {
	for _, p := range structured {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		quantity := 0
		if p.qtyIdx > 0 {
			q, err := strconv.Atoi(m[p.qtyIdx])
			if err != nil {
				continue // out-of-range number, let the next pattern try
			}
			quantity = q
		}
		item := "all"
		if p.itemIdx > 0 {
			item = cleanItemName(m[p.itemIdx])
		}
		return &models.ParsedCommand{
			Action:     p.action,
			Item:       item,
			Quantity:   quantity,
			RawText:    text,
			Confidence: models.ConfidenceStructured,
		}
	}
	return nil
}

// flexibleParse is tier 2: a left-to-right token scan for utterances the
// strict patterns miss. The first action keyword sets the intent, the first
// purely numeric token sets the quantity (default 1), and the remaining
// tokens that are not keywords, stop words or unit words form the item name
// in their original order.
func flexibleParse(text string) *models.ParsedCommand {
	tokens := strings.Fields(text)

	var action models.Action
	actionTokens := make(map[int]bool)
	found := false
	for i := 0; i < len(tokens) && !found; i++ {
		if i+1 < len(tokens) {
			switch tokens[i] + " " + tokens[i+1] {
			case "how many", "quantity of":
				action = models.ActionCheck
				actionTokens[i] = true
				actionTokens[i+1] = true
				found = true
				continue
			}
		}
		if a, ok := lexicon.ActionForKeyword(tokens[i]); ok {
			action = a
			actionTokens[i] = true
			found = true
		}
	}
	if !found {
		return nil
	}

	quantity, quantityIdx := 0, -1
	for i, tok := range tokens {
		if !isNumeric(tok) {
			continue
		}
		if q, err := strconv.Atoi(tok); err == nil {
			quantity, quantityIdx = q, i
			break
		}
	}

	var itemTokens []string
	for i, tok := range tokens {
		if actionTokens[i] || i == quantityIdx {
			continue
		}
		if isNumeric(tok) || lexicon.IsStopWord(tok) || lexicon.IsUnitWord(tok) {
			continue
		}
		if _, ok := lexicon.ActionForKeyword(tok); ok {
			continue
		}
		itemTokens = append(itemTokens, tok)
	}
	if len(itemTokens) == 0 {
		return nil
	}

	if quantity <= 0 {
		quantity = 1
	}
	return &models.ParsedCommand{
		Action:     action,
		Item:       strings.Join(itemTokens, " "),
		Quantity:   quantity,
		RawText:    text,
		Confidence: models.ConfidenceFlexible,
	}
}

// cleanItemName strips stop words from a captured item span. If cleaning
// would leave nothing, the original trimmed span is kept: a matched pattern
// never yields an empty item.
func cleanItemName(span string) string {
	words := strings.Fields(span)
	kept := words[:0:0]
	for _, w := range words {
		if !lexicon.IsStopWord(w) {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return strings.TrimSpace(span)
	}
	return strings.Join(kept, " ")
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// alternation builds a regexp alternation from keyword tables, longest
// alternative first so Go's leftmost-first matching prefers full keywords.
func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return strings.Join(quoted, "|")
}
