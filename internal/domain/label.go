package domain

import (
	"strings"
	"unicode"
)

// FormatCategorySlug turns a category slug into its display label.
// The slug is split into words on separators, case changes and letter/digit
// boundaries; each word is capitalized and the words are joined with spaces.
//
//	FormatCategorySlug("main-course") == "Main Course"
//	FormatCategorySlug("side_dish")   == "Side Dish"
func FormatCategorySlug(slug string) string {
	words := splitWords(slug)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func splitWords(s string) []string {
	var (
		words   []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if len(current) > 0 {
			prev := current[len(current)-1]
			switch {
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// "BBQRibs" splits before the R
				flush()
			}
		}

		current = append(current, r)
	}
	flush()

	return words
}
