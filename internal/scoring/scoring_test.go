package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/internal/lexicon"
	"github.com/masoai/kbengine/model"
)

func newCtx(t *testing.T, query string) (*config.SearchConfig, *QueryContext) {
	t.Helper()
	cfg := config.DefaultDutch()
	expanded := lexicon.NewExpander(cfg).Expand(query)
	return cfg, NewQueryContext(cfg, query, expanded)
}

func TestQueryContextIntents(t *testing.T) {
	cfg := config.DefaultDutch()

	tests := []struct {
		query         string
		isArrangement bool
		isMenu        bool
		isRacing      bool
	}{
		{"welke arrangementen hebben jullie", true, false, false},
		{"hebben jullie een menukaart", false, true, false},
		{"hoe lang moet je zijn om te racen", false, false, true},
		{"waar kan ik parkeren", false, false, false},
	}
	for _, tt := range tests {
		ctx := NewQueryContext(cfg, tt.query, tt.query)
		assert.Equal(t, tt.isArrangement, ctx.IsArrangement, "arrangement: %q", tt.query)
		assert.Equal(t, tt.isMenu, ctx.IsMenu, "menu: %q", tt.query)
		assert.Equal(t, tt.isRacing, ctx.IsRacing, "racing: %q", tt.query)
	}
}

func TestFAQ_ExactMatchBonus(t *testing.T) {
	cfg, ctx := newCtx(t, "wat zijn de openingstijden?")

	matching := model.FAQ{
		Question: "Wat zijn de openingstijden?",
		Answer:   "Wij zijn dagelijks open van 10:00 tot 22:00.",
	}
	unrelated := model.FAQ{
		Question: "Is er een kleedkamer?",
		Answer:   "Nee.",
	}

	assert.Greater(t, FAQ(cfg, ctx, matching), FAQ(cfg, ctx, unrelated)+50.0)
}

func TestFAQ_RacingCategory(t *testing.T) {
	cfg, ctx := newCtx(t, "vanaf welke leeftijd mag je racen")

	racing := model.FAQ{
		Question: "Wat is de minimumleeftijd om te racen?",
		Answer:   "Vanaf 6 jaar en minimaal 1,40 meter.",
		Category: "simracen",
	}
	offTopic := model.FAQ{
		Question: "Hebben jullie een garderobe?",
		Answer:   "Ja, bij de ingang.",
		Category: "algemeen",
	}

	racingScore := FAQ(cfg, ctx, racing)
	offTopicScore := FAQ(cfg, ctx, offTopic)

	assert.Greater(t, racingScore, 100.0)
	// The racing query penalizes FAQs outside the simracen category.
	assert.Less(t, offTopicScore, 0.0)
}

func TestFAQ_HoeLangDisambiguation(t *testing.T) {
	cfg, ctx := newCtx(t, "hoe lang moet je zijn om te simracen")

	height := model.FAQ{
		Question: "Wat is de minimale lengte voor de simulators?",
		Answer:   "Minimaal 1,40 meter.",
		Category: "simracen",
	}
	duration := model.FAQ{
		Question: "Hoe lang duurt een sessie?",
		Answer:   "Een sessie duurt 15 minuten.",
		Category: "simracen",
	}

	assert.Greater(t, FAQ(cfg, ctx, height), FAQ(cfg, ctx, duration))
}

func TestFAQ_CountQueryPrefersNumericAnswers(t *testing.T) {
	cfg, ctx := newCtx(t, "hoeveel simulators hebben jullie")

	numeric := model.FAQ{
		Question: "Hoeveel personen kunnen tegelijk racen?",
		Answer:   "Er kunnen 20 personen tegelijk racen.",
	}
	vague := model.FAQ{
		Question: "Hoeveel personen kunnen tegelijk racen?",
		Answer:   "Heel veel mensen tegelijk.",
	}

	assert.Greater(t, FAQ(cfg, ctx, numeric), FAQ(cfg, ctx, vague))
}

func TestSection_ArrangementPageBoost(t *testing.T) {
	cfg, ctx := newCtx(t, "welke arrangementen zijn er")

	arrangementPage := model.ContentSection{
		Title:   "Arrangementen en deals",
		Content: "Bekijk onze arrangementen.",
		URL:     "https://example.nl/arrangementen",
	}
	plainPage := model.ContentSection{
		Title:   "Contact",
		Content: "Bel ons gerust.",
		URL:     "https://example.nl/contact",
	}

	diff := Section(cfg, ctx, arrangementPage, nil, 0) - Section(cfg, ctx, plainPage, nil, 1)
	assert.GreaterOrEqual(t, diff, 100.0)
}

func TestSection_DrinkBoost(t *testing.T) {
	cfg, ctx := newCtx(t, "welke bieren hebben jullie op tap")

	drinkSection := model.ContentSection{
		Title:   "Bierkaart",
		Content: "Onze tap: pils, IPA en tripel. Glas bier vanaf €3,50.",
		URL:     "https://example.nl/dranken",
	}
	foodSection := model.ContentSection{
		Title:   "Parkeren",
		Content: "Gratis parkeren voor de deur.",
		URL:     "https://example.nl/parkeren",
	}

	assert.Greater(t, Section(cfg, ctx, drinkSection, nil, 0), Section(cfg, ctx, foodSection, nil, 1))
}

func TestSection_SearchableIndexBonus(t *testing.T) {
	cfg, ctx := newCtx(t, "reserveren")

	section := model.ContentSection{Title: "Praktisch", Content: "Alle praktische informatie."}
	searchable := map[string][]int{
		"reserveren": {0, 3},
		"parkeren":   {0},
	}

	withIndex := Section(cfg, ctx, section, searchable, 0)
	withoutIndex := Section(cfg, ctx, section, searchable, 1)
	assert.InDelta(t, 10.0, withIndex-withoutIndex, 1e-9)
}

func TestArrangement_KidsBoost(t *testing.T) {
	cfg, ctx := newCtx(t, "kinderfeestje voor 8 jarigen")

	kidsParty := model.Arrangement{
		Name:        "Kids Party Deluxe",
		Description: "Het leukste kinderfeestje met taart en ranja.",
		Category:    "kinderfeestje",
	}
	corporate := model.Arrangement{
		Name:        "Zakelijke borrel",
		Description: "Borrelarrangement voor bedrijven.",
		Category:    "bedrijfsuitje",
	}

	assert.Greater(t, Arrangement(cfg, ctx, kidsParty), Arrangement(cfg, ctx, corporate)+60.0)
}

func TestArrangement_IntentBoostAppliesToAll(t *testing.T) {
	cfg, ctx := newCtx(t, "welke arrangementen hebben jullie")

	arr := model.Arrangement{Name: "Bowlingavond", Description: "Twee uur bowlen."}
	score := Arrangement(cfg, ctx, arr)
	assert.GreaterOrEqual(t, score, 80.0)
}

func TestUnrelatedEntriesScoreZero(t *testing.T) {
	cfg, ctx := newCtx(t, "xyzzy")

	assert.Zero(t, FAQ(cfg, ctx, model.FAQ{Question: "Is er wifi?", Answer: "Zeker."}))
	assert.Zero(t, Section(cfg, ctx, model.ContentSection{Title: "Wifi", Content: "Gratis wifi."}, nil, 0))
	assert.Zero(t, Arrangement(cfg, ctx, model.Arrangement{Name: "Bowlen", Description: "Bowlingbaan huren."}))
}
