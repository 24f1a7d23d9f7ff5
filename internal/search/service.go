// Package search implements the ranked knowledge-base search. The service is
// stateless: every call receives the corpus snapshot to search, so callers
// can swap snapshots without coordinating with in-flight searches.
package search

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/internal/lexicon"
	"github.com/masoai/kbengine/internal/scoring"
	"github.com/masoai/kbengine/model"
)

const defaultMaxResults = 5

// Service scores and ranks corpus entries against user queries.
type Service struct {
	cfg      *config.SearchConfig
	expander *lexicon.Expander
	logger   *zap.Logger
}

// NewService creates a new search Service.
func NewService(cfg *config.SearchConfig, logger *zap.Logger) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		cfg:      cfg,
		expander: lexicon.NewExpander(cfg),
		logger:   logger,
	}, nil
}

// Search returns the highest scoring corpus entries for the query, descending
// by score. Only strictly positive scores qualify; minScore additionally
// filters before truncation to maxResults, so the caller never receives an
// under-filled page while better-than-threshold entries exist. An empty or
// nil corpus yields an empty slice.
func (s *Service) Search(corpus *model.Corpus, query string, maxResults int, minScore float64) []model.SearchResult {
	if corpus == nil || corpus.IsEmpty() {
		s.logger.Warn("search on empty knowledge base", zap.String("query", query))
		return []model.SearchResult{}
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	expanded := s.expander.Expand(query)
	ctx := scoring.NewQueryContext(s.cfg, query, expanded)

	if ctx.IsArrangement {
		s.logger.Debug("arrangement query detected", zap.String("query", query))
	}
	if ctx.IsMenu {
		s.logger.Debug("menu query detected", zap.String("query", query))
	}

	results := make([]model.SearchResult, 0)

	for _, faq := range corpus.FAQs {
		score := scoring.FAQ(s.cfg, ctx, faq)
		if score > 0 {
			results = append(results, formatFAQ(faq, score))
		}
	}

	for i, section := range corpus.ContentSections {
		score := scoring.Section(s.cfg, ctx, section, corpus.SearchableContent, i)
		if score > 0 {
			results = append(results, formatSection(section, score, expanded))
		}
	}

	for _, arr := range corpus.Arrangements {
		score := scoring.Arrangement(s.cfg, ctx, arr)
		if score > 0 {
			results = append(results, formatArrangement(arr, score))
		}
	}

	// Stable sort: equal scores keep collection order (FAQs, sections,
	// arrangements).
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if minScore > 0 {
		filtered := results[:0]
		for _, r := range results {
			if r.Score >= minScore {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}

	s.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)

	return results
}

// Expand exposes the service's query expansion, used by excerpt extraction
// and context building to stay consistent with ranking.
func (s *Service) Expand(query string) string {
	return s.expander.Expand(query)
}

func formatFAQ(faq model.FAQ, score float64) model.SearchResult {
	return model.SearchResult{
		Kind:     model.KindFAQ,
		Title:    "FAQ: " + faq.Question,
		Content:  fmt.Sprintf("VRAAG: %s\n\nANTWOORD: %s", faq.Question, faq.Answer),
		Question: faq.Question,
		Answer:   faq.Answer,
		URL:      faq.SourceURL,
		IsFAQ:    true,
		Score:    score,
	}
}

func formatSection(section model.ContentSection, score float64, expanded string) model.SearchResult {
	return model.SearchResult{
		Kind:        model.KindSection,
		Title:       section.Title,
		Content:     section.Content,
		URL:         section.URL,
		Score:       score,
		SearchQuery: expanded,
	}
}

func formatArrangement(arr model.Arrangement, score float64) model.SearchResult {
	return model.SearchResult{
		Kind:  model.KindArrangement,
		Title: "Arrangement: " + arr.Name,
		Content: fmt.Sprintf("%s - %s - Prijs: %s - Duur: %s",
			arr.Name, arr.Description, arr.Price.Display(), arr.Duration),
		URL: arr.SourceURL,
		Metadata: &model.ArrangementMeta{
			Prices:     arr.Price.Values(),
			Duration:   arr.Duration,
			Activities: arr.Activities,
		},
		IsArrangement: true,
		Score:         score,
	}
}
