package words

import "strings"

// Token is one word of the source text in reading order.
type Token struct {
	Text        string
	Index       int
	Highlighted bool
}

// Segment splits text on whitespace and flags every token that starts with
// one of the highlight prefixes. Matching is case-sensitive.
func Segment(text string, highlights []string) []Token {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(fields))
	for i, f := range fields {
		tokens = append(tokens, Token{
			Text:        f,
			Index:       i,
			Highlighted: hasAnyPrefix(f, highlights),
		})
	}
	return tokens
}

func hasAnyPrefix(word string, prefixes []string) bool {
	for _, p := range prefixes {
		// an empty prefix would match everything
		if p == "" {
			continue
		}
		if strings.HasPrefix(word, p) {
			return true
		}
	}
	return false
}
