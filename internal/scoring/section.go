package scoring

import (
	"strings"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/model"
)

var (
	pdfMenuContentWords = []string{"menu", "koffie", "bier", "pizza", "cocktail"}
	drinkTitleWords     = []string{"bier", "wijn", "cocktail", "drank", "menu"}
	allergyTitleWords   = []string{"allergie", "dieet", "vegan", "vegetarisch", "glutenvrij"}
)

// Section scores a content section against the query context. searchable is
// the scraper-built term index of the corpus and index the section's position
// in the corpus slice.
func Section(cfg *config.SearchConfig, ctx *QueryContext, section model.ContentSection, searchable map[string][]int, index int) float64 {
	score := 0.0
	content := strings.ToLower(section.Content)
	title := strings.ToLower(section.Title)
	url := strings.ToLower(section.URL)

	// Arrangement pages dominate for arrangement queries.
	if ctx.IsArrangement {
		if strings.Contains(title, "arrangementen") || strings.Contains(title, "deals") ||
			strings.Contains(url, "arrangement") {
			score += 100
		}
	}

	isPDFMenu := strings.Contains(title, "pdf:") && containsAny(content, pdfMenuContentWords)
	if ctx.IsMenu && isPDFMenu {
		score += 50
	}

	if ctx.IsRacing && strings.Contains(title, "simracen") {
		score += 15
	}

	if ctx.queryWordsIn(cfg.DrinkKeywords) {
		hasDrinkContent := false
		for _, pattern := range cfg.DrinkContentPatterns {
			if strings.Contains(content, pattern) || strings.Contains(title, pattern) {
				hasDrinkContent = true
				break
			}
		}
		if hasDrinkContent {
			score += 30
			if containsAny(title, drinkTitleWords) {
				score += 15
			}
		}
	}

	if ctx.queryWordsIn(cfg.AllergyQueryKeywords) {
		hasAllergyContent := false
		for kw := range cfg.AllergyContentWords {
			if strings.Contains(content, kw) {
				hasAllergyContent = true
				break
			}
		}
		if hasAllergyContent {
			score += 35
			if containsAny(title, allergyTitleWords) {
				score += 20
			}
		}
	}

	for term, sectionIndices := range searchable {
		if !strings.Contains(ctx.Expanded, term) {
			continue
		}
		for _, si := range sectionIndices {
			if si == index {
				score += 10
				break
			}
		}
	}

	for _, word := range ctx.ExpandedWords {
		if !cfg.Stopwords.Contains(word) && strings.Contains(title, word) {
			score += 8
			break
		}
	}

	for _, word := range ctx.ExpandedWords {
		if len(word) > 2 && !cfg.Stopwords.Contains(word) {
			score += float64(strings.Count(content, word)) * 2
		}
	}

	for term := range cfg.ImportantSearchTerms {
		if !strings.Contains(ctx.Expanded, term) {
			continue
		}
		if strings.Contains(title, term) {
			score += 12
		} else if strings.Contains(content, term) {
			score += 6
		}
	}

	return score
}
