// Package services defines the interfaces the API layer consumes. The engine
// package provides the production implementation.
package services

import (
	"github.com/masoai/kbengine/model"
)

// Searcher defines ranked retrieval over the held corpus.
type Searcher interface {
	Search(query string, maxResults int, minScore float64) ([]model.SearchResult, error)
}

// SignalAnalyzer defines query intent analysis.
type SignalAnalyzer interface {
	Analyze(query string) model.QuerySignals
	SearchWeights(signals model.QuerySignals) model.SearchWeights
}

// Differ defines corpus reconciliation: generating a changeset against a
// scraped snapshot and applying a reviewed selection of it.
type Differ interface {
	GenerateDiff(scraped *model.Corpus) (*model.DiffResult, error)
	ApplyChanges(changeIDs []string, changes []model.DiffChange) (*model.Corpus, error)
}

// ContextBuilder defines the combined analyze-search-render pipeline that
// produces an LLM prompt context for a query.
type ContextBuilder interface {
	ContextForLLM(query string, maxLength int) (string, error)
}

// CorpusManager manages the held corpus snapshot.
type CorpusManager interface {
	SetCorpus(c *model.Corpus)
	Corpus() (*model.Corpus, error)
}

// KnowledgeService combines every knowledge-base capability. The HTTP API is
// built against this interface.
type KnowledgeService interface {
	Searcher
	SignalAnalyzer
	Differ
	ContextBuilder
	CorpusManager
}
