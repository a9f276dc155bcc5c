package quicksearch

import (
	"strings"
	"unicode"
)

// Tokenize splits a raw query into lowercase tokens. Runs of letters
// and digits form tokens; everything else separates them, so
// "Transform.position" yields ["transform", "position"].
func Tokenize(query string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range strings.ToLower(query) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
