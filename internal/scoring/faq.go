package scoring

import (
	"regexp"
	"strings"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/model"
)

// Indicator lists for the venue-specific FAQ heuristics. Racing entries need
// these because "hoe lang" is ambiguous in Dutch: it asks for a duration in
// most contexts but for a minimum body height at the simulators.
var (
	heightQueryWords  = []string{"lang", "groot", "lengte", "meter", "cm"}
	durationWords     = []string{"duurt", "duren", "tijd"}
	ageQueryWords     = []string{"leeftijd", "jaar", "oud", "minimumleeftijd"}
	minimumWords      = []string{"minimum", "minimaal", "minimale", "min"}
	heightIndicators  = []string{"lengte", "lang", "groot", "meter", "cm", "140", "1,40", "height"}
	heightAnswerHints = []string{"140", "1,40", "1.40", "meter"}
	ageIndicators     = []string{"leeftijd", "jaar", "oud", "jong", "age"}
	ageAnswerHints    = []string{"jaar", "oud", "jong", "leeftijd"}
	countQueryWords   = []string{"hoeveel", "aantal", "hoe veel"}
	faqStyleWords     = []string{"mag", "kunnen", "vanaf", "wanneer", "hoe", "wat"}

	simulatorCountQueries = []string{
		"hoeveel simulator", "aantal simulator", "hoeveel race",
		"hoeveel personen racen", "hoeveel kunnen racen",
	}
	simulatorCountQuestions = []string{"hoeveel personen", "tegelijk racen", "tegen elkaar racen"}
	simulatorCountAnswers   = []string{"20 personen", "twintig personen", "20 mensen"}

	digitPattern = regexp.MustCompile(`\d+`)
)

// FAQ scores a question/answer entry against the query context.
func FAQ(cfg *config.SearchConfig, ctx *QueryContext, faq model.FAQ) float64 {
	score := 0.0
	question := strings.ToLower(faq.Question)
	answer := strings.ToLower(faq.Answer)

	isHeightQuery := containsAny(ctx.QueryLower, heightQueryWords)
	isDurationQuery := containsAny(ctx.QueryLower, durationWords)
	isAgeQuery := containsAny(ctx.QueryLower, ageQueryWords)
	isMinimumQuery := containsAny(ctx.QueryLower, minimumWords)
	isSimulatorCountQuery := containsAny(ctx.QueryLower, simulatorCountQueries)

	if isSimulatorCountQuery {
		if containsAny(question, simulatorCountQuestions) {
			score += 40
		}
		if containsAny(answer, simulatorCountAnswers) {
			score += 35
		}
	}

	if strings.Contains(ctx.QueryLower, "hoe lang") && ctx.IsRacing {
		if strings.Contains(question, "lengte") || strings.Contains(question, "leeftijd") ||
			strings.Contains(answer, "140") || strings.Contains(answer, "meter") {
			score += 30
		} else if strings.Contains(question, "duurt") || strings.Contains(question, "duur") {
			score -= 15
		}
	}

	if isMinimumQuery && ctx.IsRacing && (isAgeQuery || isHeightQuery) {
		if containsAny(question, []string{"leeftijd", "lengte", "minimum"}) {
			score += 35
		}
		if containsAny(answer, []string{"140", "1,40", "meter", "6 jaar", "6 tot"}) {
			score += 30
		}
	}

	if isDurationQuery && !ctx.IsRacing {
		if strings.Contains(question, "duurt") || strings.Contains(question, "duur") {
			score += 25
		}
	}

	// Exact match bonus, either direction.
	if strings.Contains(question, ctx.QueryLower) || strings.Contains(ctx.QueryLower, question) {
		score += 50
	}

	// Category relevance.
	if ctx.IsRacing && faq.Category == "simracen" {
		score += 20
	} else if ctx.IsRacing {
		score -= 10
	}

	for _, word := range ctx.ExpandedWords {
		if len(word) > 2 && !cfg.Stopwords.Contains(word) {
			if strings.Contains(question, word) {
				score += 15
			}
			if strings.Contains(answer, word) {
				score += 8
			}
		}
	}

	// Count questions prefer answers carrying numbers.
	if containsAny(ctx.QueryLower, countQueryWords) && digitPattern.MatchString(answer) {
		score += 15
	}

	if containsAny(ctx.QueryLower, heightIndicators) {
		if containsAny(answer, heightAnswerHints) {
			score += 25
		}
		if containsAny(question, heightIndicators) {
			score += 15
		}
	}

	if containsAny(ctx.QueryLower, ageIndicators) {
		if containsAny(answer, ageAnswerHints) {
			score += 20
		}
		if containsAny(question, ageIndicators) {
			score += 15
		}
	}

	for _, keyword := range faqStyleWords {
		if strings.Contains(ctx.QueryLower, keyword) && strings.Contains(question, keyword) {
			score += 5
		}
	}

	return score
}
