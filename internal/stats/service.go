// Package stats implements lightweight in-memory search analytics: recent
// query events and the aggregates the dashboard endpoint reports.
package stats

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/masoai/kbengine/model"
)

// maxEventsToKeep bounds the in-memory event window.
const maxEventsToKeep = 10000

// SearchEvent records one handled search request.
type SearchEvent struct {
	Query       string        `json:"query"`
	ResultCount int           `json:"result_count"`
	Took        time.Duration `json:"took"`
	Timestamp   time.Time     `json:"timestamp"`
}

// PopularQuery is a query with its occurrence count over the event window.
type PopularQuery struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// Dashboard aggregates the event window and the held corpus.
type Dashboard struct {
	TotalSearches   int            `json:"total_searches"`
	AvgTookMs       float64        `json:"avg_took_ms"`
	NoResultRate    float64        `json:"no_result_rate"`
	PopularQueries  []PopularQuery `json:"popular_queries"`
	FAQs            int            `json:"faqs"`
	ContentSections int            `json:"content_sections"`
	Arrangements    int            `json:"arrangements"`
	PDFDocuments    int            `json:"pdf_documents"`
}

// Service tracks search events. Safe for concurrent use.
type Service struct {
	mu     sync.RWMutex
	events []SearchEvent
}

// NewService creates an empty stats service.
func NewService() *Service {
	return &Service{}
}

// TrackSearch records a handled search request.
func (s *Service) TrackSearch(query string, resultCount int, took time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, SearchEvent{
		Query:       query,
		ResultCount: resultCount,
		Took:        took,
		Timestamp:   time.Now(),
	})
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// Dashboard aggregates the tracked events. corpus may be nil when none is
// loaded; the collection counts stay zero then.
func (s *Service) Dashboard(corpus *model.Corpus) Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := Dashboard{
		TotalSearches:  len(s.events),
		PopularQueries: s.popularQueries(5),
	}

	if len(s.events) > 0 {
		var totalTook time.Duration
		noResults := 0
		for _, ev := range s.events {
			totalTook += ev.Took
			if ev.ResultCount == 0 {
				noResults++
			}
		}
		d.AvgTookMs = float64(totalTook.Milliseconds()) / float64(len(s.events))
		d.NoResultRate = float64(noResults) / float64(len(s.events))
	}

	if corpus != nil {
		d.FAQs = len(corpus.FAQs)
		d.ContentSections = len(corpus.ContentSections)
		d.Arrangements = len(corpus.Arrangements)
		d.PDFDocuments = len(corpus.PDFDocuments)
	}
	return d
}

// popularQueries ranks the window's queries by count, ties alphabetical.
// Callers must hold at least the read lock.
func (s *Service) popularQueries(max int) []PopularQuery {
	counts := make(map[string]int)
	for _, ev := range s.events {
		q := strings.ToLower(strings.TrimSpace(ev.Query))
		if q == "" {
			continue
		}
		counts[q]++
	}
	if len(counts) == 0 {
		return nil
	}

	popular := make([]PopularQuery, 0, len(counts))
	for q, n := range counts {
		popular = append(popular, PopularQuery{Query: q, Count: n})
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Query < popular[j].Query
	})
	if len(popular) > max {
		popular = popular[:max]
	}
	return popular
}
