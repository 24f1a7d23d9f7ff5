// Package engine provides the unified facade over the knowledge-base
// services: query analysis, search, diffing, and LLM context building run
// against one held corpus snapshot. The components themselves are pure; the
// engine owns the only mutable state (the corpus) behind a RW mutex.
package engine

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/internal/contextbuild"
	"github.com/masoai/kbengine/internal/diff"
	"github.com/masoai/kbengine/internal/kberrors"
	"github.com/masoai/kbengine/internal/persistence"
	"github.com/masoai/kbengine/internal/search"
	"github.com/masoai/kbengine/internal/signals"
	"github.com/masoai/kbengine/model"
	"github.com/masoai/kbengine/services"
)

// Default parameters for the combined context pipeline.
const (
	contextSearchResults    = 10
	defaultContextMaxLength = 8000

	// faqDirectMinScore gates the direct-answer shortcut: only a scored FAQ
	// hit above it is trusted as a standalone answer.
	faqDirectMinScore = 0.7
)

// Engine combines the knowledge-base components over a held corpus.
// It implements services.KnowledgeService.
type Engine struct {
	mu     sync.RWMutex
	corpus *model.Corpus

	cfg      *config.SearchConfig
	searcher *search.Service
	analyzer *signals.Analyzer
	differ   *diff.Service
	builder  *contextbuild.Builder
	logger   *zap.Logger
}

var _ services.KnowledgeService = (*Engine)(nil)

// New creates an Engine with no corpus loaded. cfg may be nil, selecting the
// Dutch defaults.
func New(cfg *config.SearchConfig, logger *zap.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultDutch()
	}
	cfg.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	searcher, err := search.NewService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	differ, err := diff.NewService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	builder, err := contextbuild.NewBuilder(cfg, defaultContextMaxLength, logger)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	return &Engine{
		cfg:      cfg,
		searcher: searcher,
		analyzer: signals.NewAnalyzer(cfg, logger),
		differ:   differ,
		builder:  builder,
		logger:   logger,
	}, nil
}

// SetCorpus swaps the held corpus for a clone of c. Calls in flight keep the
// snapshot they started with.
func (e *Engine) SetCorpus(c *model.Corpus) {
	clone := c.Clone()
	e.mu.Lock()
	e.corpus = clone
	e.mu.Unlock()
	e.logger.Info("corpus updated",
		zap.Int("faqs", len(clone.FAQs)),
		zap.Int("sections", len(clone.ContentSections)),
		zap.Int("arrangements", len(clone.Arrangements)))
}

// Corpus returns a clone of the held corpus, or an error when none is loaded.
func (e *Engine) Corpus() (*model.Corpus, error) {
	c := e.snapshot()
	if c == nil {
		return nil, kberrors.ErrCorpusNotLoaded
	}
	return c.Clone(), nil
}

// LoadCorpusFromFile reads a corpus JSON document and installs it.
func (e *Engine) LoadCorpusFromFile(path string) error {
	var corpus model.Corpus
	if err := persistence.LoadJSON(path, &corpus); err != nil {
		return fmt.Errorf("engine: load corpus: %w", err)
	}
	e.SetCorpus(&corpus)
	return nil
}

// SaveCorpusToFile writes the held corpus as a JSON document.
func (e *Engine) SaveCorpusToFile(path string) error {
	c := e.snapshot()
	if c == nil {
		return kberrors.ErrCorpusNotLoaded
	}
	if err := persistence.SaveJSON(path, c); err != nil {
		return fmt.Errorf("engine: save corpus: %w", err)
	}
	return nil
}

// Search ranks the held corpus against the query.
func (e *Engine) Search(query string, maxResults int, minScore float64) ([]model.SearchResult, error) {
	c := e.snapshot()
	if c == nil {
		return nil, kberrors.ErrCorpusNotLoaded
	}
	return e.searcher.Search(c, query, maxResults, minScore), nil
}

// Analyze extracts the query's topical signals.
func (e *Engine) Analyze(query string) model.QuerySignals {
	return e.analyzer.Analyze(query)
}

// SearchWeights derives per-kind weight hints from signals.
func (e *Engine) SearchWeights(s model.QuerySignals) model.SearchWeights {
	return e.analyzer.SearchWeights(s)
}

// GenerateDiff compares the held corpus against a scraped snapshot.
func (e *Engine) GenerateDiff(scraped *model.Corpus) (*model.DiffResult, error) {
	c := e.snapshot()
	if c == nil {
		return nil, kberrors.ErrCorpusNotLoaded
	}
	return e.differ.Generate(c, scraped), nil
}

// ApplyChanges applies the selected changes to the held corpus and returns
// the resulting corpus without installing it. Callers review the result and
// install it through SetCorpus.
func (e *Engine) ApplyChanges(changeIDs []string, changes []model.DiffChange) (*model.Corpus, error) {
	c := e.snapshot()
	if c == nil {
		return nil, kberrors.ErrCorpusNotLoaded
	}
	return e.differ.Apply(c, changeIDs, changes), nil
}

// ContextForLLM runs the full pipeline for a query: analyze, search, and
// render the context modules. A non-positive maxLength keeps the default.
func (e *Engine) ContextForLLM(query string, maxLength int) (string, error) {
	c := e.snapshot()
	if c == nil {
		return "", kberrors.ErrCorpusNotLoaded
	}

	sig := e.analyzer.Analyze(query)
	results := e.searcher.Search(c, query, contextSearchResults, 0)
	ctx := e.builder.Build(c, results, sig, query)

	if maxLength > 0 && len(ctx) > maxLength {
		ctx = ctx[:maxLength] + "..."
	}
	return ctx, nil
}

// FAQAnswer returns the answer of a high-confidence FAQ hit for the query,
// or false when no FAQ answers it directly.
func (e *Engine) FAQAnswer(query string) (string, bool) {
	c := e.snapshot()
	if c == nil {
		return "", false
	}

	results := e.searcher.Search(c, query, 3, 0.5)
	for _, r := range results {
		if !r.IsFAQ || r.Score <= faqDirectMinScore {
			continue
		}
		if r.Answer != "" {
			return r.Answer, true
		}
		if _, after, ok := strings.Cut(r.Content, "ANTWOORD:"); ok {
			return strings.TrimSpace(after), true
		}
		return r.Content, true
	}
	return "", false
}

// ArrangementInfo looks up an arrangement by name, exact match first and
// substring match second.
func (e *Engine) ArrangementInfo(name string) (model.Arrangement, error) {
	c := e.snapshot()
	if c == nil {
		return model.Arrangement{}, kberrors.ErrCorpusNotLoaded
	}

	nameLower := strings.ToLower(name)
	for _, arr := range c.Arrangements {
		if strings.ToLower(arr.Name) == nameLower {
			return arr, nil
		}
	}
	for _, arr := range c.Arrangements {
		if strings.Contains(strings.ToLower(arr.Name), nameLower) {
			return arr, nil
		}
	}
	return model.Arrangement{}, kberrors.NewArrangementNotFoundError(name)
}

// snapshot returns the current corpus pointer. The corpus is never mutated
// after install, so readers can use it without copying.
func (e *Engine) snapshot() *model.Corpus {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.corpus
}
