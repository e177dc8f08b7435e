// Package naming provides the string transformations shared by every
// generator: case conversion, pluralization, and identifier sanitization.
package naming

import (
	"regexp"
	"strings"
	"unicode"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// splitWords splits a string into words for transformation. It understands
// kebab-case, snake_case, camelCase and PascalCase inputs.
func splitWords(s string) []string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = camelBoundary.ReplaceAllString(s, "${1} ${2}")
	return strings.Fields(s)
}

// Title uppercases the first rune of a word and lowercases the rest.
func Title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Pascalize converts a string to PascalCase.
func Pascalize(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = Title(words[i])
	}
	return strings.Join(words, "")
}

// Camelize converts a string to camelCase.
func Camelize(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}

	result := strings.ToLower(words[0])
	for i := 1; i < len(words); i++ {
		result += Title(words[i])
	}
	return result
}

// KebabCase converts a string to kebab-case.
func KebabCase(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, "-")
}

// Dasherize is an alias for KebabCase kept for template compatibility.
func Dasherize(s string) string {
	return KebabCase(s)
}

// SnakeCase converts a string to snake_case.
func SnakeCase(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, "_")
}

// Underscore converts a string to snake_case.
func Underscore(s string) string {
	return SnakeCase(s)
}

// Pluralize returns a simple English plural form of a word.
func Pluralize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	if strings.HasSuffix(s, "s") || strings.HasSuffix(s, "x") ||
		strings.HasSuffix(s, "z") || strings.HasSuffix(s, "ch") ||
		strings.HasSuffix(s, "sh") {
		return s + "es"
	}

	if strings.HasSuffix(s, "y") && len(s) > 1 {
		if !isVowel(rune(s[len(s)-2])) {
			return s[:len(s)-1] + "ies"
		}
	}

	return s + "s"
}

// Singularize reverses Pluralize for the same simple rule set. A word that
// does not look plural is returned unchanged.
func Singularize(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, "ies") && len(s) > 3:
		return s[:len(s)-3] + "y"
	case strings.HasSuffix(s, "ches"), strings.HasSuffix(s, "shes"),
		strings.HasSuffix(s, "xes"), strings.HasSuffix(s, "zes"),
		strings.HasSuffix(s, "sses"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "s") && !strings.HasSuffix(s, "ss") && len(s) > 1:
		return s[:len(s)-1]
	}
	return s
}

// SanitizeIdentifier strips everything that cannot appear in a source-level
// identifier and prefixes a leading digit with an underscore.
func SanitizeIdentifier(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	if unicode.IsDigit(rune(out[0])) {
		out = "_" + out
	}
	return out
}

// isVowel checks if a rune is a vowel.
func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}
