package odata

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CityVariants returns the distinct spellings searched for a city input, in
// this order: the input as given, lower case, upper case, and title case
// (first character upper, rest lower). Duplicates are removed keeping the
// first occurrence.
//
// Case mapping uses full Unicode rules, so "ß" upper-cases to "SS".
func CityVariants(city string) []string {
	candidates := [...]string{
		city,
		lower(city),
		upper(city),
		titleFirst(city),
	}

	variants := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, v := range candidates {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}
	return variants
}

// Casers carry state and are not safe for concurrent use, so one is built
// per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// titleFirst upper-cases the first character and lower-cases the remainder.
// Words after the first are not capitalized: "new york" becomes "New york".
func titleFirst(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper(s[:size]) + lower(s[size:])
}
