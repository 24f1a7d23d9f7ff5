// Package diff reconciles two knowledge-base snapshots. Generate produces a
// reviewable changeset with deterministic change ids; Apply replays a
// selected subset of those changes onto a corpus, returning a new corpus
// value and never mutating its input.
package diff

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/internal/matcher"
	"github.com/masoai/kbengine/model"
)

const (
	// contentCompareChars bounds document content comparison: scraped PDFs
	// re-extract with trailing noise, so only the leading prefix is identity.
	contentCompareChars = 500
	// contentPreviewChars bounds the old/new values stored in a change.
	contentPreviewChars = 200
)

// Service generates and applies corpus changesets.
type Service struct {
	cfg    *config.SearchConfig
	logger *zap.Logger
}

// NewService creates a new diff Service.
func NewService(cfg *config.SearchConfig, logger *zap.Logger) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, logger: logger}, nil
}

// Generate compares the current corpus against a freshly scraped one. When
// both snapshots carry a content fingerprint and they are equal, comparison
// is skipped entirely and an empty changeset with FingerprintMatch set is
// returned.
func (s *Service) Generate(current, scraped *model.Corpus) *model.DiffResult {
	if current == nil {
		current = &model.Corpus{}
	}
	if scraped == nil {
		scraped = &model.Corpus{}
	}

	currentFP := current.Fingerprint()
	scrapedFP := scraped.Fingerprint()
	if currentFP != "" && scrapedFP != "" {
		if currentFP == scrapedFP {
			s.logger.Info("content fingerprints match, no changes")
			return &model.DiffResult{
				Summary: model.DiffSummary{
					ByType:           map[model.ChangeType]model.ActionCounts{},
					FingerprintMatch: true,
				},
				Changes: []model.DiffChange{},
			}
		}
		s.logger.Info("content fingerprints differ",
			zap.String("current", currentFP),
			zap.String("scraped", scrapedFP),
		)
	}

	changes := make([]model.DiffChange, 0)
	changes = append(changes, s.diffFAQs(current.FAQs, scraped.FAQs)...)
	changes = append(changes, s.diffSections(current.ContentSections, scraped.ContentSections)...)
	changes = append(changes, s.diffDocuments(current.PDFDocuments, scraped.PDFDocuments)...)
	changes = append(changes, s.diffArrangements(current.Arrangements, scraped.Arrangements)...)
	changes = append(changes, s.diffBusinessInfo(current.BusinessInfo, scraped.BusinessInfo)...)

	summary := summarize(changes)
	s.logger.Info("generated changeset",
		zap.Int("total", summary.Total),
		zap.Int("added", summary.ByAction.Added),
		zap.Int("modified", summary.ByAction.Modified),
		zap.Int("removed", summary.ByAction.Removed),
	)

	return &model.DiffResult{Summary: summary, Changes: changes}
}

// Apply replays the selected changes onto a deep copy of the corpus. Unknown
// change ids are logged and skipped. Changes apply in a fixed order, MODIFIED
// then ADDED then REMOVED, because modifications and removals address
// positions in the original collections; removing first would shift those
// positions. Out-of-range indices make the single change a no-op.
func (s *Service) Apply(current *model.Corpus, changeIDs []string, allChanges []model.DiffChange) *model.Corpus {
	lookup := make(map[string]model.DiffChange, len(allChanges))
	for _, c := range allChanges {
		lookup[c.ChangeID] = c
	}

	out := current.Clone()
	if out == nil {
		out = &model.Corpus{}
	}

	byAction := map[model.DiffAction][]model.DiffChange{}
	for _, id := range changeIDs {
		change, ok := lookup[id]
		if !ok {
			s.logger.Warn("change id not found", zap.String("change_id", id))
			continue
		}
		byAction[change.Action] = append(byAction[change.Action], change)
	}

	for _, action := range []model.DiffAction{model.ActionModified, model.ActionAdded, model.ActionRemoved} {
		for _, change := range byAction[action] {
			s.applyChange(out, change)
		}
	}

	return out
}

func (s *Service) applyChange(corpus *model.Corpus, change model.DiffChange) {
	switch change.Type {
	case model.ChangeFAQ:
		corpus.FAQs = applyToSlice(corpus.FAQs, change, change.FAQ)
	case model.ChangeSection:
		corpus.ContentSections = applyToSlice(corpus.ContentSections, change, change.Section)
	case model.ChangeDocument:
		corpus.PDFDocuments = applyToSlice(corpus.PDFDocuments, change, change.Document)
	case model.ChangeArrangement:
		corpus.Arrangements = applyToSlice(corpus.Arrangements, change, change.Arrangement)
	case model.ChangeBusinessInfo:
		s.applyBusinessInfo(corpus, change)
	default:
		s.logger.Warn("unknown change type",
			zap.String("change_id", change.ChangeID),
			zap.String("type", string(change.Type)),
		)
	}
}

// applyToSlice performs one ADDED/MODIFIED/REMOVED operation on a collection.
// A nil payload or out-of-range index makes the change a no-op.
func applyToSlice[T any](items []T, change model.DiffChange, payload *T) []T {
	switch change.Action {
	case model.ActionAdded:
		if payload != nil {
			items = append(items, *payload)
		}
	case model.ActionModified:
		if payload != nil && indexInRange(change.CurrentIndex, len(items)) {
			items[*change.CurrentIndex] = *payload
		}
	case model.ActionRemoved:
		if indexInRange(change.CurrentIndex, len(items)) {
			idx := *change.CurrentIndex
			items = append(items[:idx], items[idx+1:]...)
		}
	}
	return items
}

func (s *Service) applyBusinessInfo(corpus *model.Corpus, change model.DiffChange) {
	if change.Action != model.ActionModified {
		return
	}
	switch change.Field {
	case "name":
		corpus.BusinessInfo.Name = change.NewValue
	case "url":
		corpus.BusinessInfo.URL = change.NewValue
	case "type":
		corpus.BusinessInfo.Type = change.NewValue
	case "description":
		corpus.BusinessInfo.Description = change.NewValue
	case "opening_hours":
		hours := make(map[string]string, len(change.NewHours))
		for day, value := range change.NewHours {
			hours[day] = value
		}
		corpus.BusinessInfo.OpeningHours = hours
	default:
		s.logger.Warn("unknown business info field",
			zap.String("change_id", change.ChangeID),
			zap.String("field", change.Field),
		)
	}
}

func indexInRange(idx *int, length int) bool {
	return idx != nil && *idx >= 0 && *idx < length
}

// =========================================================================
// Per-collection diffing
// =========================================================================

func (s *Service) diffFAQs(current, scraped []model.FAQ) []model.DiffChange {
	var changes []model.DiffChange

	res := matcher.MatchSimilar(current, scraped, faqKey, s.cfg.FAQMatchThreshold)

	for _, pair := range res.Matched {
		var mods []model.FieldModification

		if pair.Current.Question != pair.Scraped.Question {
			mods = append(mods, model.FieldModification{
				Field:    "question",
				OldValue: pair.Current.Question,
				NewValue: pair.Scraped.Question,
			})
		}
		if pair.Current.Answer != pair.Scraped.Answer {
			mods = append(mods, model.FieldModification{
				Field:    "answer",
				OldValue: pair.Current.Answer,
				NewValue: pair.Scraped.Answer,
				Diff:     renderTextDiff(pair.Current.Answer, pair.Scraped.Answer),
			})
		}
		if pair.Current.Category != pair.Scraped.Category {
			mods = append(mods, model.FieldModification{
				Field:    "category",
				OldValue: pair.Current.Category,
				NewValue: pair.Scraped.Category,
			})
		}

		if len(mods) > 0 {
			idx := pair.CurrentIndex
			faq := pair.Scraped
			changes = append(changes, model.DiffChange{
				ChangeID:      changeID(model.ChangeFAQ, model.ActionModified, faqKey(faq)),
				Type:          model.ChangeFAQ,
				Action:        model.ActionModified,
				CurrentIndex:  &idx,
				FAQ:           &faq,
				Modifications: mods,
			})
		}
	}

	for _, added := range res.Added {
		faq := added.Item
		changes = append(changes, model.DiffChange{
			ChangeID: changeID(model.ChangeFAQ, model.ActionAdded, faqKey(faq)),
			Type:     model.ChangeFAQ,
			Action:   model.ActionAdded,
			FAQ:      &faq,
		})
	}

	for _, removed := range res.Removed {
		idx := removed.Index
		faq := removed.Item
		changes = append(changes, model.DiffChange{
			ChangeID:     changeID(model.ChangeFAQ, model.ActionRemoved, faqKey(faq)),
			Type:         model.ChangeFAQ,
			Action:       model.ActionRemoved,
			CurrentIndex: &idx,
			FAQ:          &faq,
		})
	}

	return changes
}

// positioned retains an entity's index in the unfiltered corpus slice, so
// changes reference positions Apply can use directly.
type positioned[T any] struct {
	item T
	pos  int
}

func (s *Service) diffSections(current, scraped []model.ContentSection) []model.DiffChange {
	var changes []model.DiffChange

	// PDF-typed sections are diffed separately as documents.
	key := func(p positioned[model.ContentSection]) string { return p.item.URL }
	res := matcher.MatchExact(nonPDFSections(current), nonPDFSections(scraped), key)

	for _, pair := range res.Matched {
		var mods []model.FieldModification

		if pair.Current.item.Title != pair.Scraped.item.Title {
			mods = append(mods, model.FieldModification{
				Field:    "title",
				OldValue: pair.Current.item.Title,
				NewValue: pair.Scraped.item.Title,
			})
		}
		// Equality is on the full content; the stored values and rendered
		// diff are bounded previews.
		if pair.Current.item.Content != pair.Scraped.item.Content {
			mods = append(mods, model.FieldModification{
				Field:    "content",
				OldValue: preview(pair.Current.item.Content),
				NewValue: preview(pair.Scraped.item.Content),
				Diff: renderTextDiff(
					prefix(pair.Current.item.Content, contentCompareChars),
					prefix(pair.Scraped.item.Content, contentCompareChars),
				),
			})
		}

		if len(mods) > 0 {
			idx := pair.Current.pos
			section := pair.Scraped.item
			changes = append(changes, model.DiffChange{
				ChangeID:      changeID(model.ChangeSection, model.ActionModified, sectionKey(section)),
				Type:          model.ChangeSection,
				Action:        model.ActionModified,
				CurrentIndex:  &idx,
				Section:       &section,
				Modifications: mods,
			})
		}
	}

	for _, added := range res.Added {
		section := added.Item.item
		changes = append(changes, model.DiffChange{
			ChangeID: changeID(model.ChangeSection, model.ActionAdded, sectionKey(section)),
			Type:     model.ChangeSection,
			Action:   model.ActionAdded,
			Section:  &section,
		})
	}

	for _, removed := range res.Removed {
		idx := removed.Item.pos
		section := removed.Item.item
		changes = append(changes, model.DiffChange{
			ChangeID:     changeID(model.ChangeSection, model.ActionRemoved, sectionKey(section)),
			Type:         model.ChangeSection,
			Action:       model.ActionRemoved,
			CurrentIndex: &idx,
			Section:      &section,
		})
	}

	return changes
}

func nonPDFSections(sections []model.ContentSection) []positioned[model.ContentSection] {
	out := make([]positioned[model.ContentSection], 0, len(sections))
	for i, sec := range sections {
		if sec.Type == "pdf" {
			continue
		}
		out = append(out, positioned[model.ContentSection]{item: sec, pos: i})
	}
	return out
}

func (s *Service) diffDocuments(current, scraped []model.PDFDocument) []model.DiffChange {
	var changes []model.DiffChange

	if len(current) == 0 && len(scraped) == 0 {
		return changes
	}

	res := matcher.MatchExact(current, scraped, documentKey)

	for _, pair := range res.Matched {
		var mods []model.FieldModification

		if pair.Current.Filename != pair.Scraped.Filename {
			mods = append(mods, model.FieldModification{
				Field:    "filename",
				OldValue: pair.Current.Filename,
				NewValue: pair.Scraped.Filename,
			})
		}

		currContent := prefix(pair.Current.Content, contentCompareChars)
		newContent := prefix(pair.Scraped.Content, contentCompareChars)
		if currContent != newContent {
			mods = append(mods, model.FieldModification{
				Field:    "content",
				OldValue: preview(currContent),
				NewValue: preview(newContent),
			})
		}

		if len(mods) > 0 {
			idx := pair.CurrentIndex
			doc := pair.Scraped
			changes = append(changes, model.DiffChange{
				ChangeID:      changeID(model.ChangeDocument, model.ActionModified, documentKey(doc)),
				Type:          model.ChangeDocument,
				Action:        model.ActionModified,
				CurrentIndex:  &idx,
				Document:      &doc,
				Modifications: mods,
			})
		}
	}

	for _, added := range res.Added {
		doc := added.Item
		changes = append(changes, model.DiffChange{
			ChangeID: changeID(model.ChangeDocument, model.ActionAdded, documentKey(doc)),
			Type:     model.ChangeDocument,
			Action:   model.ActionAdded,
			Document: &doc,
		})
	}

	for _, removed := range res.Removed {
		idx := removed.Index
		doc := removed.Item
		changes = append(changes, model.DiffChange{
			ChangeID:     changeID(model.ChangeDocument, model.ActionRemoved, documentKey(doc)),
			Type:         model.ChangeDocument,
			Action:       model.ActionRemoved,
			CurrentIndex: &idx,
			Document:     &doc,
		})
	}

	return changes
}

func (s *Service) diffArrangements(current, scraped []model.Arrangement) []model.DiffChange {
	var changes []model.DiffChange

	res := matcher.MatchSimilar(current, scraped, arrangementKey, s.cfg.ArrangementMatchThreshold)

	for _, pair := range res.Matched {
		mods := arrangementMods(pair.Current, pair.Scraped)

		if len(mods) > 0 {
			idx := pair.CurrentIndex
			arr := pair.Scraped
			changes = append(changes, model.DiffChange{
				ChangeID:      changeID(model.ChangeArrangement, model.ActionModified, arrangementKey(arr)),
				Type:          model.ChangeArrangement,
				Action:        model.ActionModified,
				CurrentIndex:  &idx,
				Arrangement:   &arr,
				Modifications: mods,
			})
		}
	}

	for _, added := range res.Added {
		arr := added.Item
		changes = append(changes, model.DiffChange{
			ChangeID:    changeID(model.ChangeArrangement, model.ActionAdded, arrangementKey(arr)),
			Type:        model.ChangeArrangement,
			Action:      model.ActionAdded,
			Arrangement: &arr,
		})
	}

	for _, removed := range res.Removed {
		idx := removed.Index
		arr := removed.Item
		changes = append(changes, model.DiffChange{
			ChangeID:     changeID(model.ChangeArrangement, model.ActionRemoved, arrangementKey(arr)),
			Type:         model.ChangeArrangement,
			Action:       model.ActionRemoved,
			CurrentIndex: &idx,
			Arrangement:  &arr,
		})
	}

	return changes
}

func arrangementMods(current, scraped model.Arrangement) []model.FieldModification {
	var mods []model.FieldModification

	fields := []struct {
		name     string
		old, new string
	}{
		{"name", current.Name, scraped.Name},
		{"description", current.Description, scraped.Description},
		{"duration", current.Duration, scraped.Duration},
		{"category", current.Category, scraped.Category},
		{"age_restriction", current.AgeRestriction, scraped.AgeRestriction},
		{"group_size", current.GroupSize, scraped.GroupSize},
	}
	for _, f := range fields {
		if f.old != f.new {
			mods = append(mods, model.FieldModification{
				Field:    f.name,
				OldValue: f.old,
				NewValue: f.new,
			})
		}
	}

	// Price points compare as a set: a reordering is not a change.
	if !current.Price.Equal(scraped.Price) {
		mods = append(mods, model.FieldModification{
			Field:    "price",
			OldValue: priceValue(current.Price),
			NewValue: priceValue(scraped.Price),
		})
	}

	return mods
}

func priceValue(p model.Price) string {
	if p.IsZero() {
		return "None"
	}
	return strings.Join(p.Values(), ", ")
}

func (s *Service) diffBusinessInfo(current, scraped model.BusinessInfo) []model.DiffChange {
	var changes []model.DiffChange

	fields := []struct {
		name     string
		old, new string
	}{
		{"name", current.Name, scraped.Name},
		{"url", current.URL, scraped.URL},
		{"type", current.Type, scraped.Type},
		{"description", current.Description, scraped.Description},
	}
	for _, f := range fields {
		if f.old != f.new {
			changes = append(changes, model.DiffChange{
				ChangeID: changeID(model.ChangeBusinessInfo, model.ActionModified, f.name),
				Type:     model.ChangeBusinessInfo,
				Action:   model.ActionModified,
				Field:    f.name,
				OldValue: f.old,
				NewValue: f.new,
			})
		}
	}

	if !hoursEqual(current.OpeningHours, scraped.OpeningHours) {
		changes = append(changes, model.DiffChange{
			ChangeID: changeID(model.ChangeBusinessInfo, model.ActionModified, "opening_hours"),
			Type:     model.ChangeBusinessInfo,
			Action:   model.ActionModified,
			Field:    "opening_hours",
			OldHours: current.OpeningHours,
			NewHours: scraped.OpeningHours,
		})
	}

	return changes
}

func hoursEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for day, value := range a {
		if other, ok := b[day]; !ok || other != value {
			return false
		}
	}
	return true
}

func summarize(changes []model.DiffChange) model.DiffSummary {
	summary := model.DiffSummary{
		Total:  len(changes),
		ByType: map[model.ChangeType]model.ActionCounts{},
	}
	for _, change := range changes {
		counts := summary.ByType[change.Type]
		counts.Add(change.Action)
		summary.ByType[change.Type] = counts
		summary.ByAction.Add(change.Action)
	}
	return summary
}

// prefix returns the first n bytes of s, shorter when s is shorter.
func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// preview elides long content for storage inside a change.
func preview(s string) string {
	return prefix(s, contentPreviewChars) + "..."
}
