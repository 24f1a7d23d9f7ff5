package model

// ResultKind identifies which corpus collection a search result came from.
type ResultKind string

const (
	KindFAQ         ResultKind = "faq"
	KindSection     ResultKind = "section"
	KindArrangement ResultKind = "arrangement"
)

// SearchResult is a single ranked hit. Results are created fresh per search
// call and never persisted.
type SearchResult struct {
	Kind    ResultKind `json:"type"`
	Title   string     `json:"title"`
	Content string     `json:"content"`
	URL     string     `json:"url,omitempty"`
	Score   float64    `json:"score"`

	IsFAQ         bool `json:"is_faq,omitempty"`
	IsArrangement bool `json:"is_arrangement,omitempty"`

	// FAQ origin fields.
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`

	// Arrangement origin fields.
	Metadata *ArrangementMeta `json:"metadata,omitempty"`

	// SearchQuery is the expanded query that produced this result.
	SearchQuery string `json:"search_query,omitempty"`
}

// ArrangementMeta carries the arrangement details of an arrangement hit.
type ArrangementMeta struct {
	Prices     []string `json:"prices,omitempty"`
	Duration   string   `json:"duration,omitempty"`
	Activities []string `json:"activities,omitempty"`
}

// QuerySignals is the fixed set of topical intents detected for a query,
// computed fresh per query string.
type QuerySignals struct {
	Kids         bool `json:"kids"`
	Bedrijf      bool `json:"bedrijf"`
	Pricing      bool `json:"pricing"`
	Activity     bool `json:"activity"`
	Arrangement  bool `json:"arrangement"`
	General      bool `json:"general"`
	Location     bool `json:"location"`
	OpeningHours bool `json:"opening_hours"`
	Reservation  bool `json:"reservation"`
	Food         bool `json:"food"`
	Drinks       bool `json:"drinks"`
	Allergy      bool `json:"allergy"`
	Group        bool `json:"group"`

	// DetectedActivity is the normalized activity name when the query
	// mentions a known activity, e.g. "bowlen".
	DetectedActivity string `json:"detected_activity,omitempty"`
}

// SearchWeights are per-kind multiplier hints derived from query signals.
// They let callers bias presentation without re-scoring.
type SearchWeights struct {
	FAQ         float64 `json:"faq"`
	Section     float64 `json:"section"`
	Arrangement float64 `json:"arrangement"`
}
