package scoring

import (
	"strings"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/model"
)

var (
	kidsQueryWords       = []string{"kinderfeest", "kinderparty", "kids", "kinder", "verjaardag", "birthday"}
	kidsArrangementWords = []string{"kids", "kinder", "party"}
	arrangementKeywords  = []string{"arrangement", "kids", "party", "kinderfeest", "verjaardag", "deal"}
)

// Arrangement scores a bookable package against the query context.
func Arrangement(cfg *config.SearchConfig, ctx *QueryContext, arr model.Arrangement) float64 {
	score := 0.0
	name := strings.ToLower(arr.Name)
	desc := strings.ToLower(arr.Description)
	category := strings.ToLower(arr.Category)

	if ctx.IsArrangement {
		score += 80
	}

	if containsAny(ctx.QueryLower, kidsQueryWords) {
		if containsAny(name+desc+category, kidsArrangementWords) {
			score += 60
		}
	}

	for _, word := range ctx.ExpandedWords {
		if !cfg.Stopwords.Contains(word) && strings.Contains(name, word) {
			score += 15
			break
		}
	}

	nameAndDesc := name + desc
	for _, word := range ctx.ExpandedWords {
		if len(word) > 2 && !cfg.Stopwords.Contains(word) {
			if count := strings.Count(nameAndDesc, word); count > 0 {
				score += float64(count) * 3
			}
		}
	}

	for _, keyword := range arrangementKeywords {
		if strings.Contains(ctx.Expanded, keyword) && strings.Contains(desc, keyword) {
			score += 8
		}
	}

	return score
}
