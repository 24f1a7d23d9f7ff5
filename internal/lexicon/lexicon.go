// Package lexicon implements Dutch-aware query expansion: misspelling
// expansions, bidirectional synonym fan-out, and diminutive stemming used by
// excerpt extraction.
package lexicon

import (
	"sort"
	"strings"

	"github.com/masoai/kbengine/config"
)

// Expander expands user queries with the configured synonym and expansion
// tables. It is stateless and safe for concurrent use.
type Expander struct {
	cfg *config.SearchConfig
}

// NewExpander returns an Expander backed by the given config tables.
func NewExpander(cfg *config.SearchConfig) *Expander {
	return &Expander{cfg: cfg}
}

// Expand grows a lowercased query with expansions and synonyms. The result is
// a space-joined, deterministically ordered term list; multi-word synonyms
// stay intact as phrases. The same query always yields the same string.
func (e *Expander) Expand(query string) string {
	queryLower := strings.ToLower(query)
	expanded := queryLower

	for _, key := range sortedKeys(e.cfg.QueryExpansions) {
		if strings.Contains(queryLower, key) {
			expanded += " " + strings.Join(e.cfg.QueryExpansions[key], " ")
		}
	}

	terms := make(map[string]struct{})
	for _, w := range strings.Fields(expanded) {
		terms[w] = struct{}{}
	}

	for _, base := range sortedKeys(e.cfg.Synonyms) {
		synonyms := e.cfg.Synonyms[base]
		if strings.Contains(queryLower, base) {
			for _, s := range synonyms {
				terms[s] = struct{}{}
			}
		}
		for _, syn := range synonyms {
			if !strings.Contains(queryLower, syn) {
				continue
			}
			terms[base] = struct{}{}
			for _, sibling := range synonyms {
				if sibling != syn {
					terms[sibling] = struct{}{}
				}
			}
		}
	}

	out := make([]string, 0, len(terms))
	for t := range terms {
		out = append(out, t)
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}

// ExcerptTerms builds the term lists used to locate a relevant excerpt. base
// holds the query's significant words plus their Dutch diminutive stems
// (biertje becomes bier); all additionally fans out over the excerpt synonym
// table. Both preserve first-seen order and contain no duplicates.
func (e *Expander) ExcerptTerms(query string) (base, all []string) {
	queryLower := strings.ToLower(query)

	for _, word := range strings.Fields(queryLower) {
		if len(word) <= 2 || e.cfg.StopwordsExtended.Contains(word) {
			continue
		}
		base = append(base, word)
		if stem := StripDiminutive(word); stem != word {
			base = append(base, stem)
		}
	}

	all = append(all, base...)
	for _, term := range base {
		all = append(all, e.cfg.ExcerptSynonyms[term]...)
	}

	return dedupe(base), dedupe(all)
}

// StripDiminutive removes a Dutch diminutive suffix from a word, returning
// the word unchanged when it carries none. Only one suffix is stripped.
func StripDiminutive(word string) string {
	switch {
	case strings.HasSuffix(word, "tje"):
		return word[:len(word)-3]
	case strings.HasSuffix(word, "tjes"):
		return word[:len(word)-4]
	case strings.HasSuffix(word, "jes"):
		return word[:len(word)-3]
	case strings.HasSuffix(word, "je"):
		return word[:len(word)-2]
	}
	return word
}

// dedupe removes duplicates while preserving first-seen order.
func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := terms[:0]
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
