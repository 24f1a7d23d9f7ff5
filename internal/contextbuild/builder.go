// Package contextbuild renders knowledge-base content and search results
// into the Dutch prompt context handed to the LLM. Rendering is modular:
// each Module decides from the query signals whether it applies and produces
// one block of the final context.
package contextbuild

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/model"
)

// DefaultMaxLength bounds the built context in bytes.
const DefaultMaxLength = 5000

// noInfoFallback is returned when no module produced content.
const noInfoFallback = "Geen specifieke informatie gevonden."

// truncationMarker is appended when the context is hard-truncated.
const truncationMarker = "\n\n[Context truncated...]"

// Module renders one block of LLM context.
type Module interface {
	// Name identifies the module in logs.
	Name() string
	// ShouldInclude reports whether the module applies to this query.
	ShouldInclude(signals model.QuerySignals, results []model.SearchResult) bool
	// Render produces the module's context block, "" when it has nothing to
	// say. query is the original user query, not the expanded one.
	Render(corpus *model.Corpus, results []model.SearchResult, signals model.QuerySignals, query string) string
}

// Builder runs a module pipeline and assembles the final context string.
type Builder struct {
	modules   []Module
	maxLength int
	logger    *zap.Logger
}

// NewBuilder returns a Builder with the default module set. A non-positive
// maxLength selects DefaultMaxLength.
func NewBuilder(cfg *config.SearchConfig, maxLength int, logger *zap.Logger) (*Builder, error) {
	if cfg == nil {
		return nil, fmt.Errorf("contextbuild: config is required")
	}
	modules, err := DefaultModules(cfg)
	if err != nil {
		return nil, err
	}
	return NewBuilderWithModules(modules, maxLength, logger)
}

// NewBuilderWithModules returns a Builder over a custom module pipeline.
func NewBuilderWithModules(modules []Module, maxLength int, logger *zap.Logger) (*Builder, error) {
	if len(modules) == 0 {
		return nil, fmt.Errorf("contextbuild: at least one module is required")
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{modules: modules, maxLength: maxLength, logger: logger}, nil
}

// Build renders every applicable module in pipeline order and joins the
// blocks. When the result exceeds the length budget the search-results block
// is dropped first; whatever still overflows is hard-truncated.
func (b *Builder) Build(corpus *model.Corpus, results []model.SearchResult, signals model.QuerySignals, query string) string {
	if corpus == nil {
		corpus = &model.Corpus{}
	}

	var parts []string
	var used []string
	var searchBlock string
	for _, m := range b.modules {
		block := b.renderSafe(m, corpus, results, signals, query)
		if block == "" {
			continue
		}
		parts = append(parts, block)
		used = append(used, m.Name())
		if m.Name() == moduleSearchResults {
			searchBlock = block
		}
	}

	full := strings.Join(parts, "\n")
	b.logger.Info("context built",
		zap.Strings("modules", used),
		zap.Int("length", len(full)))

	if len(full) > b.maxLength {
		b.logger.Warn("context too long, trimming", zap.Int("length", len(full)))
		if searchBlock != "" {
			full = strings.Replace(full, searchBlock, "", 1)
		}
		if len(full) > b.maxLength {
			full = truncate(full, b.maxLength) + truncationMarker
		}
	}

	if full == "" {
		return noInfoFallback
	}
	return full
}

// renderSafe isolates module faults: a panicking module contributes nothing
// instead of failing the whole build.
func (b *Builder) renderSafe(m Module, corpus *model.Corpus, results []model.SearchResult, signals model.QuerySignals, query string) (block string) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("context module panicked",
				zap.String("module", m.Name()),
				zap.Any("panic", r))
			block = ""
		}
	}()
	if !m.ShouldInclude(signals, results) {
		return ""
	}
	return m.Render(corpus, results, signals, query)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
