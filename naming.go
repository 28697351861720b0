package states

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSnake converts a StudlyCase or camelCase identifier into snake_case.
// Identifiers made only of lower-case letters are returned unchanged.
func ToSnake(identifier string) string {
	if isLower(identifier) {
		return identifier
	}

	var b strings.Builder
	b.Grow(len(identifier) + 4)
	first := true
	for _, word := range strings.Fields(identifier) {
		for i, r := range word {
			if i == 0 {
				r = unicode.ToUpper(r)
			}
			if !first && unicode.IsUpper(r) {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			first = false
		}
	}
	return cases.Lower(language.Und).String(b.String())
}

// ToConstantName returns the SCREAMING_SNAKE form of identifier. Runes are
// upper-cased one by one so letters without a single-rune upper case (ß)
// are kept.
func ToConstantName(identifier string) string {
	return strings.Map(unicode.ToUpper, ToSnake(identifier))
}

// ToStudly converts snake_case (or kebab-case) into StudlyCase. Only the first
// rune of each word is changed.
func ToStudly(identifier string) string {
	words := strings.FieldsFunc(identifier, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	var b strings.Builder
	b.Grow(len(identifier))
	for _, word := range words {
		for i, r := range word {
			if i == 0 {
				r = unicode.ToTitle(r)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stateName maps a constant name such as USER_TYPE back to its state name.
func stateName(constant string) string {
	return cases.Lower(language.Und).String(constant)
}

func isLower(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
