// Package normalize maps free-text product names onto canonical brand and
// category names. Matching is substring-based over a keyword dictionary and
// deliberately forgiving: vendor CSVs mix scripts, casing and width, so both
// the haystack and the keywords are folded before comparison.
package normalize

import "strings"

// Entry binds one canonical output name to the keywords that imply it. Any
// keyword found as a substring of the (folded) product name wins.
type Entry struct {
	Canonical string
	Keywords  []string
}

// Dictionary is ordered: entries are tried top to bottom and the first hit
// wins, so more specific names must be declared before the generic ones they
// contain ("ヴィトン" before "トン", sub-brands before parent houses).
type Dictionary []Entry

// Normalizer resolves brand and category from a product name. Dictionaries
// are injected so tests can run against small fixtures and so the tables can
// eventually move to the database without touching the matcher.
type Normalizer struct {
	brands     Dictionary
	categories Dictionary
}

func New(brands, categories Dictionary) *Normalizer {
	return &Normalizer{brands: brands, categories: categories}
}

// Default returns a normalizer loaded with the built-in tables.
func Default() *Normalizer {
	return New(BrandDictionary, CategoryDictionary)
}

// DetectBrand returns the canonical brand for the product name, or "" when
// no dictionary keyword matches.
func (n *Normalizer) DetectBrand(productName string) string {
	return match(n.brands, productName)
}

// DetectCategory returns the canonical category for the product name, or "".
func (n *Normalizer) DetectCategory(productName string) string {
	return match(n.categories, productName)
}

func match(dict Dictionary, productName string) string {
	folded := Fold(productName)
	if folded == "" {
		return ""
	}
	for _, e := range dict {
		for _, kw := range e.Keywords {
			if strings.Contains(folded, Fold(kw)) {
				return e.Canonical
			}
		}
	}
	return ""
}

// Fold lowercases and strips every kind of whitespace, including the
// full-width space U+3000 that Japanese vendor exports use between words.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\r', '\n', '　':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
