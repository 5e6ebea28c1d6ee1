package paper

import (
	"strings"
	"unicode"
)

// CountTokens approximates the token count of text: about 1.3 tokens per
// word plus one per two punctuation marks.
func CountTokens(text string) int {
	if text == "" {
		return 0
	}

	words := len(strings.Fields(text))

	punct := 0
	for _, r := range text {
		if unicode.IsPunct(r) {
			punct++
		}
	}

	return int(float64(words)*1.3) + punct/2
}

// EstimateTokens approximates the token count of every page in doc.
func EstimateTokens(doc *Document) int {
	if doc == nil {
		return 0
	}
	total := 0
	for _, p := range doc.Pages {
		total += CountTokens(p.Text())
	}
	return total
}
