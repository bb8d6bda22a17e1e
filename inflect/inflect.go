/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

// Package inflect derives document type names from association names.
//
// An association named "addresses" with no explicit target resolves to the
// type "Address": the name is singularized and then classified into the
// type-name convention. Both steps are rule driven so hosts with irregular
// vocabulary can extend the default inflector instead of relying on a
// hard-coded mapping.
package inflect

import (
	"strings"
	"unicode"
)

// Rule rewrites a trailing suffix during singularization. Rules are applied
// in order; the first matching rule wins.
type Rule struct {
	Suffix      string
	Replacement string
}

// Inflector applies irregular word mappings first, then suffix rules.
type Inflector struct {
	rules      []Rule
	irregulars map[string]string
}

// defaultRules cover the regular English plural forms. The bare "s" rule must
// stay last.
var defaultRules = []Rule{
	{Suffix: "ies", Replacement: "y"},
	{Suffix: "sses", Replacement: "ss"},
	{Suffix: "ches", Replacement: "ch"},
	{Suffix: "shes", Replacement: "sh"},
	{Suffix: "xes", Replacement: "x"},
	{Suffix: "zes", Replacement: "z"},
	{Suffix: "ses", Replacement: "s"},
	{Suffix: "s", Replacement: ""},
}

var defaultIrregulars = map[string]string{
	"people":   "person",
	"children": "child",
	"feet":     "foot",
	"teeth":    "tooth",
}

// New returns an inflector with the default rule set.
func New() *Inflector {
	irr := make(map[string]string, len(defaultIrregulars))
	for k, v := range defaultIrregulars {
		irr[k] = v
	}
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return &Inflector{rules: rules, irregulars: irr}
}

// WithRule prepends a suffix rule so it takes precedence over the defaults.
func (i *Inflector) WithRule(suffix, replacement string) *Inflector {
	i.rules = append([]Rule{{Suffix: suffix, Replacement: replacement}}, i.rules...)
	return i
}

// WithIrregular registers an irregular plural such as "oxen" -> "ox".
func (i *Inflector) WithIrregular(plural, singular string) *Inflector {
	i.irregulars[plural] = singular
	return i
}

// Singularize returns the singular form of word. Words that match no rule are
// returned unchanged.
func (i *Inflector) Singularize(word string) string {
	if s, ok := i.irregulars[strings.ToLower(word)]; ok {
		return s
	}
	for _, r := range i.rules {
		if strings.HasSuffix(word, r.Suffix) {
			return word[:len(word)-len(r.Suffix)] + r.Replacement
		}
	}
	return word
}

// Classify converts a snake_case identifier into the type-name convention,
// e.g. "billing_address" -> "BillingAddress".
func (i *Inflector) Classify(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		b.WriteRune(unicode.ToUpper(r[0]))
		b.WriteString(string(r[1:]))
	}
	return b.String()
}

var std = New()

// Default returns the process-wide default inflector.
func Default() *Inflector {
	return std
}

// Singularize applies the default inflector.
func Singularize(word string) string {
	return std.Singularize(word)
}

// Classify applies the default inflector.
func Classify(name string) string {
	return std.Classify(name)
}
