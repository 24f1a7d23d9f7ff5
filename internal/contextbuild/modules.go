package contextbuild

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/internal/excerpt"
	"github.com/masoai/kbengine/model"
)

const (
	moduleOrganisation  = "organisation"
	moduleOpeningHours  = "opening_hours"
	moduleArrangements  = "arrangements"
	moduleFavorites     = "favorite_arrangements"
	moduleKids          = "kids"
	moduleBedrijf       = "bedrijf"
	moduleFAQs          = "faqs"
	moduleSearchResults = "search_results"
)

// DefaultModules returns the standard pipeline in render order.
func DefaultModules(cfg *config.SearchConfig) ([]Module, error) {
	ex, err := excerpt.NewExtractor(cfg)
	if err != nil {
		return nil, err
	}
	return []Module{
		&OrganisationModule{cfg: cfg},
		&OpeningHoursModule{cfg: cfg},
		&ArrangementsModule{MaxItems: 10},
		&FavoriteArrangementsModule{MaxItems: 5},
		&KidsModule{MaxItems: 5},
		&BedrijfModule{MaxItems: 5},
		&FAQModule{MaxItems: 5},
		&SearchResultsModule{MaxItems: 3, ExcerptLength: 2000, extractor: ex},
	}, nil
}

// OrganisationModule renders the business description, with opening hours
// when the query asks for them.
type OrganisationModule struct {
	cfg *config.SearchConfig
}

func (m *OrganisationModule) Name() string { return moduleOrganisation }

func (m *OrganisationModule) ShouldInclude(signals model.QuerySignals, _ []model.SearchResult) bool {
	return signals.General || signals.OpeningHours || signals.Location
}

func (m *OrganisationModule) Render(corpus *model.Corpus, _ []model.SearchResult, signals model.QuerySignals, _ string) string {
	info := corpus.BusinessInfo
	var b strings.Builder

	if info.Description != "" {
		name := info.Name
		if name == "" {
			name = "De organisatie"
		}
		b.WriteString("🏢 OVER " + name + ":\n")
		b.WriteString(info.Description)
		b.WriteString("\n\n")
	}

	if signals.OpeningHours {
		b.WriteString(renderOpeningHours(m.cfg, info.OpeningHours))
	}

	return b.String()
}

// OpeningHoursModule renders opening hours on their own when specifically
// asked for.
type OpeningHoursModule struct {
	cfg *config.SearchConfig
}

func (m *OpeningHoursModule) Name() string { return moduleOpeningHours }

func (m *OpeningHoursModule) ShouldInclude(signals model.QuerySignals, _ []model.SearchResult) bool {
	return signals.OpeningHours
}

func (m *OpeningHoursModule) Render(corpus *model.Corpus, _ []model.SearchResult, _ model.QuerySignals, _ string) string {
	return renderOpeningHours(m.cfg, corpus.BusinessInfo.OpeningHours)
}

// ArrangementsModule renders the arrangements overview for arrangement
// queries: the top three in full, the rest as one-liners.
type ArrangementsModule struct {
	MaxItems int
}

func (m *ArrangementsModule) Name() string { return moduleArrangements }

func (m *ArrangementsModule) ShouldInclude(signals model.QuerySignals, _ []model.SearchResult) bool {
	return signals.Arrangement
}

func (m *ArrangementsModule) Render(corpus *model.Corpus, _ []model.SearchResult, _ model.QuerySignals, _ string) string {
	unique := dedupeByName(corpus.Arrangements)
	if len(unique) == 0 {
		return ""
	}
	sortFeaturedFirst(unique)

	var b strings.Builder

	top := unique
	if len(top) > 3 {
		top = top[:3]
	}
	b.WriteString("🎯 TOP ")
	b.WriteString(strconv.Itoa(len(top)))
	b.WriteString(" MEEST GEKOZEN ARRANGEMENTEN:\n\n")
	for i, arr := range top {
		b.WriteString(formatArrangement(arr, i+1))
	}

	if len(unique) > 3 {
		rest := unique[3:]
		if m.MaxItems > 3 && len(rest) > m.MaxItems-3 {
			rest = rest[:m.MaxItems-3]
		}
		b.WriteString("\n📦 OVERIGE ARRANGEMENTEN (")
		b.WriteString(strconv.Itoa(len(rest)))
		b.WriteString(" opties):\n\n")
		for _, arr := range rest {
			b.WriteString(formatArrangementShort(arr))
		}
	}

	b.WriteString("\n💡 Voor maatwerk of grote groepen, vraag naar een offerte!\n\n")
	return b.String()
}

// FavoriteArrangementsModule surfaces featured arrangements on queries that
// are neither arrangement nor general questions.
type FavoriteArrangementsModule struct {
	MaxItems int
}

func (m *FavoriteArrangementsModule) Name() string { return moduleFavorites }

func (m *FavoriteArrangementsModule) ShouldInclude(signals model.QuerySignals, _ []model.SearchResult) bool {
	return !signals.Arrangement && !signals.General
}

func (m *FavoriteArrangementsModule) Render(corpus *model.Corpus, _ []model.SearchResult, _ model.QuerySignals, _ string) string {
	var favorites []model.Arrangement
	for _, arr := range corpus.Arrangements {
		if arr.IsFeatured {
			favorites = append(favorites, arr)
		}
	}
	unique := dedupeByName(favorites)
	if len(unique) == 0 {
		return ""
	}
	if m.MaxItems > 0 && len(unique) > m.MaxItems {
		unique = unique[:m.MaxItems]
	}

	var b strings.Builder
	b.WriteString("⭐ POPULAIRE ARRANGEMENTEN:\n\n")
	for _, arr := range unique {
		b.WriteString(formatArrangementShort(arr))
	}
	b.WriteString("\n")
	return b.String()
}

// KidsModule renders children's arrangements for kids queries.
type KidsModule struct {
	MaxItems int
}

func (m *KidsModule) Name() string { return moduleKids }

func (m *KidsModule) ShouldInclude(signals model.QuerySignals, _ []model.SearchResult) bool {
	return signals.Kids
}

func (m *KidsModule) Render(corpus *model.Corpus, _ []model.SearchResult, _ model.QuerySignals, _ string) string {
	matched := filterArrangements(corpus.Arrangements, []string{"kids", "kinder", "party", "feest"})
	if len(matched) == 0 {
		return ""
	}
	if m.MaxItems > 0 && len(matched) > m.MaxItems {
		matched = matched[:m.MaxItems]
	}

	var b strings.Builder
	b.WriteString("🎈 KINDERARRANGEMENTEN:\n\n")
	for _, arr := range matched {
		b.WriteString(formatArrangement(arr, 0))
	}
	b.WriteString("💡 INSTRUCTIE: Noem altijd de exacte prijzen en beschrijvingen!\n\n")
	return b.String()
}

// BedrijfModule renders corporate arrangements for business queries.
type BedrijfModule struct {
	MaxItems int
}

func (m *BedrijfModule) Name() string { return moduleBedrijf }

func (m *BedrijfModule) ShouldInclude(signals model.QuerySignals, _ []model.SearchResult) bool {
	return signals.Bedrijf
}

func (m *BedrijfModule) Render(corpus *model.Corpus, _ []model.SearchResult, _ model.QuerySignals, _ string) string {
	matched := filterArrangements(corpus.Arrangements, []string{"bedrijf", "zakelijk", "team", "corporate", "uitje"})
	if len(matched) == 0 {
		return ""
	}
	if m.MaxItems > 0 && len(matched) > m.MaxItems {
		matched = matched[:m.MaxItems]
	}

	var b strings.Builder
	b.WriteString("🏢 BEDRIJFSARRANGEMENTEN:\n\n")
	for _, arr := range matched {
		b.WriteString(formatArrangement(arr, 0))
	}
	return b.String()
}

// FAQModule renders the ranked FAQ hits as question/answer pairs.
type FAQModule struct {
	MaxItems int
}

func (m *FAQModule) Name() string { return moduleFAQs }

func (m *FAQModule) ShouldInclude(_ model.QuerySignals, results []model.SearchResult) bool {
	for _, r := range results {
		if r.IsFAQ {
			return true
		}
	}
	return false
}

func (m *FAQModule) Render(_ *model.Corpus, results []model.SearchResult, _ model.QuerySignals, _ string) string {
	var b strings.Builder
	b.WriteString("❓ VEELGESTELDE VRAGEN:\n\n")

	count := 0
	for _, r := range results {
		if !r.IsFAQ {
			continue
		}
		if m.MaxItems > 0 && count >= m.MaxItems {
			break
		}
		question := r.Question
		if question == "" {
			question = strings.TrimPrefix(r.Title, "FAQ: ")
		}
		answer := r.Answer
		if answer == "" {
			if _, after, ok := strings.Cut(r.Content, "ANTWOORD:"); ok {
				answer = strings.TrimSpace(after)
			} else {
				answer = r.Content
			}
		}
		b.WriteString("• " + question + "\n")
		b.WriteString("  → " + answer + "\n\n")
		count++
	}

	if count == 0 {
		return ""
	}
	return b.String()
}

// SearchResultsModule appends non-FAQ, non-arrangement hits as extra context,
// excerpted around the original query's terms.
type SearchResultsModule struct {
	MaxItems      int
	ExcerptLength int

	extractor *excerpt.Extractor
}

func (m *SearchResultsModule) Name() string { return moduleSearchResults }

func (m *SearchResultsModule) ShouldInclude(_ model.QuerySignals, results []model.SearchResult) bool {
	for _, r := range results {
		if !r.IsFAQ && !r.IsArrangement {
			return true
		}
	}
	return false
}

func (m *SearchResultsModule) Render(_ *model.Corpus, results []model.SearchResult, _ model.QuerySignals, query string) string {
	var b strings.Builder
	b.WriteString("📋 EXTRA INFORMATIE:\n\n")

	count := 0
	for _, r := range results {
		if r.IsFAQ || r.IsArrangement {
			continue
		}
		if m.MaxItems > 0 && count >= m.MaxItems {
			break
		}

		title := r.Title
		if title == "" {
			title = "Onbekend"
		}
		b.WriteString("PAGINA: " + title + "\n")

		// Excerpt against the original query: the expanded query carries
		// synonyms that can anchor the window on the wrong passage.
		content := r.Content
		if query != "" && len(content) > m.ExcerptLength {
			content = m.extractor.Extract(content, query, m.ExcerptLength, 200)
		} else if len(content) > m.ExcerptLength {
			content = truncate(content, m.ExcerptLength) + "..."
		}
		b.WriteString(content + "\n\n")
		count++
	}

	if count == 0 {
		return ""
	}
	return b.String()
}

// renderOpeningHours renders hours in the fixed Dutch day order, translating
// English day keys when the scraper delivered those.
func renderOpeningHours(cfg *config.SearchConfig, hours map[string]string) string {
	hours = normalizeOpeningHours(cfg, hours)
	if len(hours) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("🕐 OPENINGSTIJDEN:\n")
	for _, day := range cfg.DaysOrder {
		if h, ok := hours[day]; ok {
			b.WriteString("  • " + capitalize(day) + ": " + h + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// normalizeOpeningHours maps English day keys to Dutch ones. Hours already
// keyed by Dutch day names pass through untouched.
func normalizeOpeningHours(cfg *config.SearchConfig, hours map[string]string) map[string]string {
	if len(hours) == 0 {
		return hours
	}
	for _, day := range cfg.DaysOrder {
		if _, ok := hours[day]; ok {
			return hours
		}
	}

	hasEnglish := false
	for day := range hours {
		if _, ok := cfg.DayNamesENToNL[strings.ToLower(day)]; ok {
			hasEnglish = true
			break
		}
	}
	if !hasEnglish {
		return hours
	}

	normalized := make(map[string]string, len(hours))
	for day, h := range hours {
		nl, ok := cfg.DayNamesENToNL[strings.ToLower(day)]
		if !ok {
			continue
		}
		normalized[nl] = h
	}
	return normalized
}

// dedupeByName keeps the first arrangement per lowercased name, dropping
// unnamed entries.
func dedupeByName(arrangements []model.Arrangement) []model.Arrangement {
	seen := make(map[string]struct{}, len(arrangements))
	var out []model.Arrangement
	for _, arr := range arrangements {
		name := strings.ToLower(strings.TrimSpace(arr.Name))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, arr)
	}
	return out
}

// sortFeaturedFirst orders featured arrangements before the rest, each group
// alphabetical by name.
func sortFeaturedFirst(arrangements []model.Arrangement) {
	sort.SliceStable(arrangements, func(i, j int) bool {
		if arrangements[i].IsFeatured != arrangements[j].IsFeatured {
			return arrangements[i].IsFeatured
		}
		return arrangements[i].Name < arrangements[j].Name
	})
}

// filterArrangements keeps arrangements whose name or category mentions any
// of the given words.
func filterArrangements(arrangements []model.Arrangement, words []string) []model.Arrangement {
	var out []model.Arrangement
	for _, arr := range arrangements {
		haystack := strings.ToLower(arr.Name + arr.Category)
		for _, w := range words {
			if strings.Contains(haystack, w) {
				out = append(out, arr)
				break
			}
		}
	}
	return out
}

// formatArrangement renders one arrangement in full. A positive number
// prefixes the name for top lists.
func formatArrangement(arr model.Arrangement, numbered int) string {
	name := arr.Name
	if name == "" {
		name = "Onbekend"
	}

	var b strings.Builder
	if numbered > 0 {
		b.WriteString("⭐ " + strconv.Itoa(numbered) + ". " + name + "\n")
	} else {
		b.WriteString("⭐ " + name + "\n")
	}
	if !arr.Price.IsZero() {
		b.WriteString("💰 " + arr.Price.Display() + "\n")
	}
	if arr.Duration != "" {
		b.WriteString("⏱️ " + arr.Duration + "\n")
	}
	if arr.Description != "" {
		b.WriteString("📋 " + arr.Description + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// formatArrangementShort renders an arrangement as a one-liner.
func formatArrangementShort(arr model.Arrangement) string {
	name := arr.Name
	if name == "" {
		name = "Onbekend"
	}
	line := "• " + name
	if !arr.Price.IsZero() {
		line += " - " + arr.Price.Display()
	}
	return line + "\n"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

