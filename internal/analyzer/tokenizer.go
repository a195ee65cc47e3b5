package analyzer

import "strings"

// Tokenize normalizes raw text into lowercase alphabetic tokens and the set of
// unique words among them. Every character that is not a-z (after lowercasing)
// or a space is stripped, not replaced, so punctuation inside a word fuses its
// halves ("don't" -> "dont") and digits vanish entirely.
//
// Tokenize is total: empty or all-punctuation input yields empty outputs.
func Tokenize(text string) ([]string, map[string]bool) {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}

	tokens := strings.Fields(b.String())

	wordSet := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		wordSet[token] = true
	}

	return tokens, wordSet
}
