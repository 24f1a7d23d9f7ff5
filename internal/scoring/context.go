// Package scoring ranks knowledge-base entries against a user query. Scores
// are additive keyword heuristics tuned for Dutch venue content; a score of
// zero means the entry is irrelevant and must be dropped from results.
package scoring

import (
	"strings"

	"github.com/masoai/kbengine/config"
)

// QueryContext carries the per-query state shared by all scorers: the
// lowercased query, its expansion, and the intent flags that gate the big
// boosts. Build it once per search call.
type QueryContext struct {
	QueryLower    string
	Expanded      string
	ExpandedWords []string

	queryWords map[string]struct{}

	IsArrangement bool
	IsMenu        bool
	IsRacing      bool
}

// NewQueryContext derives the scoring context from a query and its expansion.
func NewQueryContext(cfg *config.SearchConfig, query, expanded string) *QueryContext {
	queryLower := strings.ToLower(query)

	words := make(map[string]struct{})
	for _, w := range strings.Fields(queryLower) {
		words[w] = struct{}{}
	}

	return &QueryContext{
		QueryLower:    queryLower,
		Expanded:      expanded,
		ExpandedWords: strings.Fields(expanded),
		queryWords:    words,
		IsArrangement: cfg.ArrangementKeywords.MatchesQuery(queryLower),
		IsMenu:        cfg.MenuKeywords.MatchesQuery(queryLower),
		IsRacing:      containsAny(queryLower, racingWords),
	}
}

// QueryHasWord reports whether the raw query contains the exact word.
func (ctx *QueryContext) QueryHasWord(word string) bool {
	_, ok := ctx.queryWords[word]
	return ok
}

// queryWordsIn reports whether any exact query word is a member of the set.
func (ctx *QueryContext) queryWordsIn(set config.WordSet) bool {
	for w := range ctx.queryWords {
		if set.Contains(w) {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var racingWords = []string{"simracen", "racen", "race", "simrace", "racer"}
