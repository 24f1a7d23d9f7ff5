// Package model defines the knowledge-base data structures shared by the
// search, diff, and context-building services. A Corpus is a plain value:
// services receive it as input and never mutate it in place.
package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// FAQ is a single question/answer entry in the knowledge base.
type FAQ struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}

// ContentSection is a block of content scraped from a webpage.
type ContentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Type    string `json:"type,omitempty"` // e.g. "pdf", "page"
}

// PDFDocument is an extracted PDF document.
type PDFDocument struct {
	Filename  string `json:"filename"`
	URL       string `json:"url"`
	Content   string `json:"content"`
	PageCount int    `json:"page_count,omitempty"`
}

// Arrangement is a bookable package/offer.
type Arrangement struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Price          Price    `json:"price,omitempty"`
	Duration       string   `json:"duration,omitempty"`
	Category       string   `json:"category,omitempty"`
	SourceURL      string   `json:"source_url,omitempty"`
	AgeRestriction string   `json:"age_restriction,omitempty"`
	GroupSize      string   `json:"group_size,omitempty"`
	Activities     []string `json:"activities,omitempty"`
	IsFeatured     bool     `json:"is_featured,omitempty"`
}

// BusinessInfo holds the organisation-level fields of the knowledge base.
type BusinessInfo struct {
	Name         string            `json:"name"`
	URL          string            `json:"url,omitempty"`
	Type         string            `json:"type,omitempty"`
	Description  string            `json:"description,omitempty"`
	OpeningHours map[string]string `json:"opening_hours,omitempty"`
	Address      string            `json:"address,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Email        string            `json:"email,omitempty"`
}

// Metadata carries bookkeeping about a corpus snapshot.
type Metadata struct {
	ContentFingerprint string `json:"content_fingerprint,omitempty"`
	ScrapedAt          string `json:"scraped_at,omitempty"`
	SourceURL          string `json:"source_url,omitempty"`
}

// Corpus is the complete knowledge-base snapshot. Collections are
// order-preserving: item identity is positional, so the diff service tracks
// indices into these slices explicitly.
type Corpus struct {
	FAQs            []FAQ            `json:"faqs,omitempty"`
	ContentSections []ContentSection `json:"content_sections,omitempty"`
	Arrangements    []Arrangement    `json:"arrangements,omitempty"`
	PDFDocuments    []PDFDocument    `json:"pdf_documents,omitempty"`
	BusinessInfo    BusinessInfo     `json:"business_info,omitempty"`

	// SearchableContent maps a term to the indices of the sections indexed
	// under it. Built by the scraper, consumed read-only by section scoring.
	SearchableContent map[string][]int `json:"searchable_content,omitempty"`

	Metadata *Metadata `json:"_metadata,omitempty"`
}

// IsEmpty reports whether the corpus has no searchable content at all.
func (c *Corpus) IsEmpty() bool {
	return len(c.FAQs) == 0 && len(c.ContentSections) == 0 &&
		len(c.Arrangements) == 0 && len(c.PDFDocuments) == 0
}

// Clone returns a deep copy of the corpus. The diff service applies changes
// to a clone so the caller's snapshot is never aliased.
func (c *Corpus) Clone() *Corpus {
	if c == nil {
		return nil
	}
	out := &Corpus{
		FAQs:            append([]FAQ(nil), c.FAQs...),
		ContentSections: append([]ContentSection(nil), c.ContentSections...),
		PDFDocuments:    append([]PDFDocument(nil), c.PDFDocuments...),
		BusinessInfo:    c.BusinessInfo,
	}
	out.Arrangements = make([]Arrangement, len(c.Arrangements))
	for i, arr := range c.Arrangements {
		cp := arr
		cp.Price = arr.Price.Clone()
		cp.Activities = append([]string(nil), arr.Activities...)
		out.Arrangements[i] = cp
	}
	if c.BusinessInfo.OpeningHours != nil {
		hours := make(map[string]string, len(c.BusinessInfo.OpeningHours))
		for k, v := range c.BusinessInfo.OpeningHours {
			hours[k] = v
		}
		out.BusinessInfo.OpeningHours = hours
	}
	if c.SearchableContent != nil {
		sc := make(map[string][]int, len(c.SearchableContent))
		for term, indices := range c.SearchableContent {
			sc[term] = append([]int(nil), indices...)
		}
		out.SearchableContent = sc
	}
	if c.Metadata != nil {
		meta := *c.Metadata
		out.Metadata = &meta
	}
	return out
}

// Fingerprint returns the content fingerprint, or "" when the snapshot
// carries none.
func (c *Corpus) Fingerprint() string {
	if c == nil || c.Metadata == nil {
		return ""
	}
	return c.Metadata.ContentFingerprint
}

// Price is the price of an arrangement. Scraped data is polymorphic (a bare
// number, a single string, or a list of price points), so the variant is
// decided once at ingestion and rendered through Display.
type Price struct {
	values []string
}

// NewPrice builds a tiered price from explicit price points.
func NewPrice(values ...string) Price {
	return Price{values: values}
}

// IsZero reports whether no price information is present.
func (p Price) IsZero() bool { return len(p.values) == 0 }

// Values returns the individual price points, never nil for a non-zero price.
func (p Price) Values() []string { return append([]string(nil), p.values...) }

// Display renders the price for humans: price points joined by ", ", or the
// "price on request" fallback when unspecified.
func (p Price) Display() string {
	if len(p.values) == 0 {
		return "Prijs op aanvraag"
	}
	return strings.Join(p.values, ", ")
}

// Equal compares two prices order-insensitively: a reordering of the same
// price points is not a change.
func (p Price) Equal(other Price) bool {
	if len(p.values) != len(other.values) {
		return false
	}
	a := append([]string(nil), p.values...)
	b := append([]string(nil), other.values...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no backing storage.
func (p Price) Clone() Price {
	return Price{values: append([]string(nil), p.values...)}
}

// UnmarshalJSON accepts a number, a single string, or a list of strings.
func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` || trimmed == "[]" {
		p.values = nil
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		p.values = []string{formatEuro(num)}
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		p.values = []string{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		p.values = list
		return nil
	}
	return fmt.Errorf("price: unsupported JSON value %s", trimmed)
}

// MarshalJSON writes the canonical list form.
func (p Price) MarshalJSON() ([]byte, error) {
	if len(p.values) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(p.values)
}

// formatEuro renders a bare number the way the Dutch site displays prices.
func formatEuro(amount float64) string {
	return strings.Replace(fmt.Sprintf("€%.2f", amount), ".", ",", 1)
}
