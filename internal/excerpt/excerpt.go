// Package excerpt locates the most relevant window of a long content block
// for a query and cuts it out along sentence boundaries. Used by the context
// builder to keep page content inside the LLM prompt budget.
package excerpt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/internal/lexicon"
)

const (
	// DefaultContextChars is the window size after the matched term.
	DefaultContextChars = 1000
	// DefaultBeforeChars is the window size before the matched term.
	DefaultBeforeChars = 300

	// sentenceOverrun caps how far the window may grow past its size while
	// walking to a sentence boundary.
	sentenceOverrun = 100
)

// Extractor finds query-relevant excerpts. Safe for concurrent use.
type Extractor struct {
	lex *lexicon.Expander
}

// NewExtractor returns an Extractor backed by the given config tables.
func NewExtractor(cfg *config.SearchConfig) (*Extractor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("excerpt: config is required")
	}
	return &Extractor{lex: lexicon.NewExpander(cfg)}, nil
}

// Extract returns the slice of content around the strongest query term match,
// expanded to sentence boundaries and marked with ellipses where truncated.
// Terms are the query's significant words plus diminutive stems and excerpt
// synonyms; longer and original (non-synonym) terms win the match position.
// When no term occurs in the content the leading contextChars are returned.
// Non-positive sizes fall back to the package defaults.
func (e *Extractor) Extract(content, query string, contextChars, beforeChars int) string {
	if contextChars <= 0 {
		contextChars = DefaultContextChars
	}
	if beforeChars <= 0 {
		beforeChars = DefaultBeforeChars
	}

	contentLower := strings.ToLower(content)
	baseTerms, allTerms := e.lex.ExcerptTerms(query)

	base := make(map[string]struct{}, len(baseTerms))
	for _, t := range baseTerms {
		base[t] = struct{}{}
	}

	bestPos := -1
	bestScore := 0
	for _, term := range allTerms {
		pos := strings.Index(contentLower, term)
		if pos < 0 {
			continue
		}
		runes := utf8.RuneCountInString(term)
		score := runes * 2
		if _, ok := base[term]; ok {
			score += 5
		}
		if runes >= 6 {
			score += 3
		}
		if score > bestScore {
			bestScore = score
			bestPos = pos
		}
	}

	if bestPos < 0 {
		return prefix(content, contextChars) + "..."
	}

	start := bestPos - beforeChars
	if start < 0 {
		start = 0
	}
	end := bestPos + contextChars
	if end > len(content) {
		end = len(content)
	}

	for start > 0 && !isSentenceBoundary(content[start]) {
		start--
		if bestPos-start > beforeChars+sentenceOverrun {
			break
		}
	}
	for end < len(content) && !isSentenceBoundary(content[end]) {
		end++
		if end-bestPos > contextChars+sentenceOverrun {
			break
		}
	}

	// The overrun cap can stop mid-rune in multibyte text.
	for start > 0 && !utf8.RuneStart(content[start]) {
		start--
	}
	for end < len(content) && !utf8.RuneStart(content[end]) {
		end++
	}

	out := strings.TrimSpace(content[start:end])
	if start > 0 {
		out = "..." + out
	}
	if end < len(content) {
		out += "..."
	}
	return out
}

func isSentenceBoundary(b byte) bool {
	return b == '.' || b == '!' || b == '?' || b == '\n'
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
