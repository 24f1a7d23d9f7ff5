package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masoai/kbengine/config"
	"github.com/masoai/kbengine/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(config.DefaultDutch(), nil)
	require.NoError(t, err)
	return svc
}

func testCorpus() *model.Corpus {
	return &model.Corpus{
		FAQs: []model.FAQ{
			{
				Question:  "Wat zijn de openingstijden?",
				Answer:    "Wij zijn open van dinsdag tot zondag, van 10:00 tot 23:00.",
				Category:  "algemeen",
				SourceURL: "https://example.nl/faq",
			},
			{
				Question: "Vanaf welke leeftijd mag je simracen?",
				Answer:   "Vanaf 6 jaar en minimaal 1,40 meter.",
				Category: "simracen",
			},
		},
		ContentSections: []model.ContentSection{
			{
				Title:   "Arrangementen en deals",
				Content: "Bekijk al onze arrangementen voor groepen en bedrijven.",
				URL:     "https://example.nl/arrangementen",
			},
			{
				Title:   "Contact",
				Content: "Bel ons op 020-1234567 of mail info@example.nl.",
				URL:     "https://example.nl/contact",
			},
		},
		Arrangements: []model.Arrangement{
			{
				Name:        "Kids Party",
				Description: "Het leukste kinderfeestje, inclusief ranja en friet.",
				Price:       model.NewPrice("€17,50 p.p."),
				Duration:    "2 uur",
				Category:    "kinderfeestje",
				SourceURL:   "https://example.nl/kids-party",
			},
			{
				Name:        "Bedrijfsuitje Compleet",
				Description: "Teambuilding arrangement met borrel en bites.",
				Price:       model.NewPrice("€45,00 p.p.", "€55,00 p.p. inclusief diner"),
				Duration:    "3 uur",
				Category:    "bedrijfsuitje",
			},
		},
	}
}

func TestSearch_EmptyCorpus(t *testing.T) {
	svc := newTestService(t)

	results := svc.Search(&model.Corpus{}, "openingstijden", 5, 0)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	results = svc.Search(nil, "openingstijden", 5, 0)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_FAQWins(t *testing.T) {
	svc := newTestService(t)

	results := svc.Search(testCorpus(), "wat zijn de openingstijden?", 5, 0)

	require.NotEmpty(t, results)
	top := results[0]
	assert.Equal(t, model.KindFAQ, top.Kind)
	assert.True(t, top.IsFAQ)
	assert.Equal(t, "FAQ: Wat zijn de openingstijden?", top.Title)
	assert.Contains(t, top.Content, "VRAAG: Wat zijn de openingstijden?")
	assert.Contains(t, top.Content, "ANTWOORD: Wij zijn open")
	assert.Equal(t, "https://example.nl/faq", top.URL)
}

func TestSearch_ArrangementQuery(t *testing.T) {
	svc := newTestService(t)

	results := svc.Search(testCorpus(), "welke arrangementen hebben jullie?", 5, 0)

	require.NotEmpty(t, results)
	// The arrangements page and the arrangement entries outrank the FAQs.
	assert.NotEqual(t, model.KindFAQ, results[0].Kind)

	var sawArrangement bool
	for _, r := range results {
		if r.Kind == model.KindArrangement {
			sawArrangement = true
			assert.True(t, r.IsArrangement)
			require.NotNil(t, r.Metadata)
		}
	}
	assert.True(t, sawArrangement)
}

func TestSearch_ArrangementFormatting(t *testing.T) {
	svc := newTestService(t)

	results := svc.Search(testCorpus(), "kinderfeestje", 5, 0)

	require.NotEmpty(t, results)
	var kids *model.SearchResult
	for i := range results {
		if results[i].Title == "Arrangement: Kids Party" {
			kids = &results[i]
			break
		}
	}
	require.NotNil(t, kids)
	assert.Contains(t, kids.Content, "Kids Party - Het leukste kinderfeestje")
	assert.Contains(t, kids.Content, "Prijs: €17,50 p.p.")
	assert.Contains(t, kids.Content, "Duur: 2 uur")
	require.NotNil(t, kids.Metadata)
	assert.Equal(t, []string{"€17,50 p.p."}, kids.Metadata.Prices)
}

func TestSearch_ScoresDescending(t *testing.T) {
	svc := newTestService(t)

	results := svc.Search(testCorpus(), "arrangement prijzen kinderen", 10, 0)

	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearch_MaxResults(t *testing.T) {
	svc := newTestService(t)

	results := svc.Search(testCorpus(), "arrangement prijzen kinderen open", 2, 0)
	assert.LessOrEqual(t, len(results), 2)
}

func TestSearch_MinScoreBeforeTruncation(t *testing.T) {
	svc := newTestService(t)

	unfiltered := svc.Search(testCorpus(), "arrangement prijzen kinderen", 10, 0)
	require.Greater(t, len(unfiltered), 2)

	// A threshold above the third-best score but below the top two must
	// still return the top two, even with maxResults 2.
	threshold := unfiltered[1].Score
	filtered := svc.Search(testCorpus(), "arrangement prijzen kinderen", 2, threshold)

	require.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.GreaterOrEqual(t, r.Score, threshold)
	}
}

func TestSearch_NoMatchesReturnsEmpty(t *testing.T) {
	svc := newTestService(t)

	results := svc.Search(testCorpus(), "xyzzy", 5, 0)
	assert.Empty(t, results)
}

func TestSearch_SectionCarriesExpandedQuery(t *testing.T) {
	svc := newTestService(t)

	results := svc.Search(testCorpus(), "hoe kan ik contact opnemen", 5, 0)

	for _, r := range results {
		if r.Kind == model.KindSection {
			assert.NotEmpty(t, r.SearchQuery)
		}
	}
}

func TestNewService_NilConfig(t *testing.T) {
	_, err := NewService(nil, nil)
	assert.Error(t, err)
}
