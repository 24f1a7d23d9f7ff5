// Package config provides the configuration consumed by the knowledge-base
// services: keyword tables for query expansion and signal detection, FAQ
// heuristic indicator lists, and the similarity thresholds used by the diff
// service. All tables are plain data; callers substitute their own by
// constructing a SearchConfig instead of using the Dutch defaults.
package config

import "strings"

// WordSet is a set of lowercase keywords.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from the given words.
func NewWordSet(words ...string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether the word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// MatchesQuery reports whether any entry of the set occurs as a substring of
// the lowercased query. Multi-word entries match whole phrases.
func (s WordSet) MatchesQuery(queryLower string) bool {
	for w := range s {
		if w != "" && strings.Contains(queryLower, w) {
			return true
		}
	}
	return false
}

// Union returns a new set containing both operands.
func (s WordSet) Union(other WordSet) WordSet {
	out := make(WordSet, len(s)+len(other))
	for w := range s {
		out[w] = struct{}{}
	}
	for w := range other {
		out[w] = struct{}{}
	}
	return out
}

// SearchConfig carries every tunable table of the search, signal, and diff
// services. The zero value is unusable; start from DefaultDutch and override.
type SearchConfig struct {
	// Lexical tables.
	Stopwords         WordSet
	StopwordsExtended WordSet
	Synonyms          map[string][]string
	QueryExpansions   map[string][]string
	ExcerptSynonyms   map[string][]string

	// Signal keyword sets.
	KidsKeywords         WordSet
	BedrijfKeywords      WordSet
	PricingKeywords      WordSet
	ArrangementKeywords  WordSet
	OpeningHoursKeywords WordSet
	GeneralKeywords      WordSet
	LocationKeywords     WordSet
	MenuKeywords         WordSet
	ReservationKeywords  WordSet

	// Drink and allergy boosting.
	DrinkKeywords        WordSet
	DrinkTypes           []string
	DrinkContentPatterns []string
	AllergyQueryKeywords WordSet
	AllergyContentWords  WordSet

	// ImportantSearchTerms get an extra boost on title/content coincidence.
	ImportantSearchTerms WordSet

	// ActivitySynonyms maps a normalized activity name to its spoken variants.
	ActivitySynonyms map[string][]string

	// CategoryPatterns drive scored category detection.
	CategoryPatterns map[string][]string

	// Day tables for opening-hours rendering.
	DayNamesENToNL map[string]string
	DaysOrder      []string

	// Matching thresholds for the diff service. High on purpose: two
	// similarly worded but distinct questions must not be conflated.
	FAQMatchThreshold         float64
	ArrangementMatchThreshold float64
}

// ApplyDefaults backfills zero values so a partially specified config is
// safe to use.
func (c *SearchConfig) ApplyDefaults() {
	def := DefaultDutch()
	if c.Stopwords == nil {
		c.Stopwords = def.Stopwords
	}
	if c.StopwordsExtended == nil {
		c.StopwordsExtended = def.StopwordsExtended
	}
	if c.Synonyms == nil {
		c.Synonyms = def.Synonyms
	}
	if c.QueryExpansions == nil {
		c.QueryExpansions = def.QueryExpansions
	}
	if c.ExcerptSynonyms == nil {
		c.ExcerptSynonyms = def.ExcerptSynonyms
	}
	if c.KidsKeywords == nil {
		c.KidsKeywords = def.KidsKeywords
	}
	if c.BedrijfKeywords == nil {
		c.BedrijfKeywords = def.BedrijfKeywords
	}
	if c.PricingKeywords == nil {
		c.PricingKeywords = def.PricingKeywords
	}
	if c.ArrangementKeywords == nil {
		c.ArrangementKeywords = def.ArrangementKeywords
	}
	if c.OpeningHoursKeywords == nil {
		c.OpeningHoursKeywords = def.OpeningHoursKeywords
	}
	if c.GeneralKeywords == nil {
		c.GeneralKeywords = def.GeneralKeywords
	}
	if c.LocationKeywords == nil {
		c.LocationKeywords = def.LocationKeywords
	}
	if c.MenuKeywords == nil {
		c.MenuKeywords = def.MenuKeywords
	}
	if c.ReservationKeywords == nil {
		c.ReservationKeywords = def.ReservationKeywords
	}
	if c.DrinkKeywords == nil {
		c.DrinkKeywords = def.DrinkKeywords
	}
	if c.DrinkTypes == nil {
		c.DrinkTypes = def.DrinkTypes
	}
	if c.DrinkContentPatterns == nil {
		c.DrinkContentPatterns = def.DrinkContentPatterns
	}
	if c.AllergyQueryKeywords == nil {
		c.AllergyQueryKeywords = def.AllergyQueryKeywords
	}
	if c.AllergyContentWords == nil {
		c.AllergyContentWords = def.AllergyContentWords
	}
	if c.ImportantSearchTerms == nil {
		c.ImportantSearchTerms = def.ImportantSearchTerms
	}
	if c.ActivitySynonyms == nil {
		c.ActivitySynonyms = def.ActivitySynonyms
	}
	if c.CategoryPatterns == nil {
		c.CategoryPatterns = def.CategoryPatterns
	}
	if c.DayNamesENToNL == nil {
		c.DayNamesENToNL = def.DayNamesENToNL
	}
	if c.DaysOrder == nil {
		c.DaysOrder = def.DaysOrder
	}
	if c.FAQMatchThreshold == 0 {
		c.FAQMatchThreshold = def.FAQMatchThreshold
	}
	if c.ArrangementMatchThreshold == 0 {
		c.ArrangementMatchThreshold = def.ArrangementMatchThreshold
	}
}
