// Package signals analyzes user queries for topical intent: kids parties,
// corporate outings, pricing, opening hours, and so on. Signals drive search
// weighting and context-module selection; they never change ranking scores
// directly.
package signals

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/model"
)

// Detector keyword lists. These deliberately differ from the search-time
// signal tables: detection here is looser because a false positive only
// reorders context, it never filters results.
var (
	generalWords      = []string{"hallo", "hoi", "welkom", "wat kun", "wat kan", "help"}
	openingHoursWords = []string{"open", "geopend", "sluit", "dicht", "openingstijd", "uur"}
	dayWords          = []string{"maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag", "zondag", "weekend"}
	locationWords     = []string{"adres", "waar", "locatie", "route", "parkeren", "navigeer", "rijden"}
	arrangementWords  = []string{"arrangement", "pakket", "formule", "deal", "feest", "party", "uitje"}
	kidsWords         = []string{"kind", "kinder", "kids", "kinderen", "kinderfeest", "kinderparty"}
	bedrijfWords      = []string{"bedrijf", "team", "teamuitje", "teambuilding", "corporate", "zakelijk", "collega"}
	pricingWords      = []string{"prijs", "kost", "kosten", "euro", "€", "tarief", "goedkoop", "duur", "budget"}
	reservationWords  = []string{"reserv", "boek", "boeking", "afspraak", "beschikbaar"}
	foodWords         = []string{"eten", "maaltijd", "diner", "lunch", "hapje", "menu", "gerecht", "burger", "pizza"}
	groupWords        = []string{"groep", "grote", "personen", "mensen", "gezelschap"}

	groupCountPattern = regexp.MustCompile(`\b\d+\s*(personen|mensen|persoon)\b`)

	groupSizePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(personen|mensen|persoon|pers)`),
		regexp.MustCompile(`groep\s*van\s*(\d+)`),
		regexp.MustCompile(`met\s*(\d+)\s*(mensen|personen)`),
		regexp.MustCompile(`(\d+)\s*man\b`),
	}

	dutchIndicators   = wordSetOf("en", "van", "het", "de", "een", "wat", "is", "zijn", "voor", "met", "op", "aan", "bij", "naar")
	englishIndicators = wordSetOf("the", "a", "an", "is", "are", "what", "how", "do", "does", "can", "could", "with", "for", "at", "to")
)

// Analyzer detects query signals, categories, group sizes, and language.
// Safe for concurrent use.
type Analyzer struct {
	cfg    *config.SearchConfig
	logger *zap.Logger
}

// NewAnalyzer returns an Analyzer backed by the given config.
func NewAnalyzer(cfg *config.SearchConfig, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{cfg: cfg, logger: logger}
}

// Analyze runs every signal detector over the query. A panicking detector is
// logged and counts as false; one bad detector never poisons the others.
func (a *Analyzer) Analyze(query string) model.QuerySignals {
	q := strings.ToLower(query)

	var signals model.QuerySignals
	signals.General = a.safeDetect("general", q, func(q string) bool {
		return containsAny(q, generalWords)
	})
	signals.OpeningHours = a.safeDetect("opening_hours", q, func(q string) bool {
		return containsAny(q, openingHoursWords) || containsAny(q, dayWords)
	})
	signals.Location = a.safeDetect("location", q, func(q string) bool {
		return containsAny(q, locationWords)
	})
	signals.Arrangement = a.safeDetect("arrangement", q, func(q string) bool {
		return containsAny(q, arrangementWords)
	})
	signals.Kids = a.safeDetect("kids", q, func(q string) bool {
		return containsAny(q, kidsWords)
	})
	signals.Bedrijf = a.safeDetect("bedrijf", q, func(q string) bool {
		return containsAny(q, bedrijfWords)
	})
	signals.Pricing = a.safeDetect("pricing", q, func(q string) bool {
		return containsAny(q, pricingWords)
	})
	signals.Reservation = a.safeDetect("reservation", q, func(q string) bool {
		return containsAny(q, reservationWords)
	})
	signals.Food = a.safeDetect("food", q, func(q string) bool {
		return containsAny(q, foodWords)
	})
	signals.Drinks = a.safeDetect("drinks", q, func(q string) bool {
		return containsAny(q, a.cfg.DrinkTypes)
	})
	signals.Allergy = a.safeDetect("allergy", q, func(q string) bool {
		return a.cfg.AllergyQueryKeywords.MatchesQuery(q)
	})
	signals.Group = a.safeDetect("group", q, func(q string) bool {
		return containsAny(q, groupWords) || groupCountPattern.MatchString(q)
	})

	signals.DetectedActivity = a.DetectActivity(q)
	signals.Activity = signals.DetectedActivity != ""

	return signals
}

// DetectActivity returns the normalized name of the activity the query
// mentions, or "" when none matches. Activities are checked in sorted order
// so overlapping synonym tables resolve deterministically.
func (a *Analyzer) DetectActivity(query string) string {
	q := strings.ToLower(query)

	for _, activity := range sortedKeys(a.cfg.ActivitySynonyms) {
		for _, synonym := range a.cfg.ActivitySynonyms[activity] {
			if strings.Contains(q, strings.ToLower(synonym)) {
				return activity
			}
		}
	}
	return ""
}

// DetectCategories scores the configured category patterns against the query
// and returns up to maxCategories names, best first. Exact word hits count
// double over substring hits; ties break alphabetically.
func (a *Analyzer) DetectCategories(query string, maxCategories int) []string {
	q := strings.ToLower(query)
	queryWords := make(map[string]struct{})
	for _, w := range strings.Fields(q) {
		queryWords[w] = struct{}{}
	}

	type scored struct {
		name  string
		score int
	}
	var hits []scored

	for _, category := range sortedKeys(a.cfg.CategoryPatterns) {
		score := 0
		for _, pattern := range a.cfg.CategoryPatterns[category] {
			if _, exact := queryWords[pattern]; exact {
				score += 2
			} else if strings.Contains(q, pattern) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{name: category, score: score})
		}
	}

	// Names are pre-sorted, so a stable sort keeps ties alphabetical.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if maxCategories > 0 && len(hits) > maxCategories {
		hits = hits[:maxCategories]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// ExtractGroupSize pulls an explicit group size out of the query, e.g.
// "met 12 personen". The second return is false when none is mentioned.
func (a *Analyzer) ExtractGroupSize(query string) (int, bool) {
	q := strings.ToLower(query)

	for _, pattern := range groupSizePatterns {
		m := pattern.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// DetectLanguage guesses the query language from indicator words. Dutch is
// the default; English needs at least two indicator hits and more than Dutch.
func (a *Analyzer) DetectLanguage(query string) string {
	words := strings.Fields(strings.ToLower(query))

	dutch, english := 0, 0
	for _, w := range words {
		if _, ok := dutchIndicators[w]; ok {
			dutch++
		}
		if _, ok := englishIndicators[w]; ok {
			english++
		}
	}

	if english > dutch && english >= 2 {
		return "en"
	}
	return "nl"
}

// SearchWeights derives presentation weight multipliers from signals. Later
// rules override earlier ones when several signals fire.
func (a *Analyzer) SearchWeights(signals model.QuerySignals) model.SearchWeights {
	weights := model.SearchWeights{FAQ: 1.0, Section: 1.0, Arrangement: 1.0}

	if signals.Arrangement || signals.Kids || signals.Bedrijf {
		weights.Arrangement = 1.5
		weights.FAQ = 0.8
	}
	if signals.Pricing {
		weights.Arrangement = 1.3
		weights.FAQ = 1.2
	}
	if signals.OpeningHours || signals.Location {
		weights.Section = 1.5
		weights.FAQ = 1.3
	}

	return weights
}

func (a *Analyzer) safeDetect(name, query string, detect func(string) bool) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Warn("signal detector failed",
				zap.String("detector", name),
				zap.Any("panic", r),
			)
			result = false
		}
	}()
	return detect(query)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func wordSetOf(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
