package model

// DiffAction is what happened to an entity between two snapshots.
type DiffAction string

const (
	ActionAdded    DiffAction = "ADDED"
	ActionModified DiffAction = "MODIFIED"
	ActionRemoved  DiffAction = "REMOVED"
)

// ChangeType is the entity kind a change applies to.
type ChangeType string

const (
	ChangeFAQ          ChangeType = "faq"
	ChangeSection      ChangeType = "section"
	ChangeDocument     ChangeType = "document"
	ChangeArrangement  ChangeType = "arrangement"
	ChangeBusinessInfo ChangeType = "business_info"
)

// FieldModification records one changed field of a matched entity.
type FieldModification struct {
	Field    string `json:"field"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
	// Diff is a rendered unified diff for long text fields, for human review.
	Diff string `json:"diff,omitempty"`
}

// DiffChange is one detected difference between two corpus snapshots.
// ChangeID is a deterministic content hash, so regenerating the diff from
// the same inputs yields identical ids.
type DiffChange struct {
	ChangeID string     `json:"change_id"`
	Type     ChangeType `json:"type"`
	Action   DiffAction `json:"action"`

	// CurrentIndex is the position in the original snapshot's collection,
	// present for MODIFIED and REMOVED changes.
	CurrentIndex *int `json:"current_index,omitempty"`

	// Exactly one payload pointer is set, matching Type. For business_info
	// changes the Field/OldValue/NewValue (or hours) fields are used instead.
	FAQ         *FAQ            `json:"faq,omitempty"`
	Section     *ContentSection `json:"section,omitempty"`
	Document    *PDFDocument    `json:"document,omitempty"`
	Arrangement *Arrangement    `json:"arrangement,omitempty"`

	Field    string            `json:"field,omitempty"`
	OldValue string            `json:"old_value,omitempty"`
	NewValue string            `json:"new_value,omitempty"`
	OldHours map[string]string `json:"old_hours,omitempty"`
	NewHours map[string]string `json:"new_hours,omitempty"`

	Modifications []FieldModification `json:"modifications,omitempty"`
}

// ActionCounts tallies changes per action.
type ActionCounts struct {
	Added    int `json:"ADDED"`
	Modified int `json:"MODIFIED"`
	Removed  int `json:"REMOVED"`
}

// Add increments the counter for the given action.
func (c *ActionCounts) Add(action DiffAction) {
	switch action {
	case ActionAdded:
		c.Added++
	case ActionModified:
		c.Modified++
	case ActionRemoved:
		c.Removed++
	}
}

// DiffSummary aggregates a changeset.
type DiffSummary struct {
	Total            int                         `json:"total"`
	ByType           map[ChangeType]ActionCounts `json:"by_type"`
	ByAction         ActionCounts                `json:"by_action"`
	FingerprintMatch bool                        `json:"fingerprint_match,omitempty"`
}

// DiffResult is the complete output of a diff generation.
type DiffResult struct {
	Summary DiffSummary  `json:"summary"`
	Changes []DiffChange `json:"changes"`
}
