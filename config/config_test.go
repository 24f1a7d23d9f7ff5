package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &SearchConfig{}
	cfg.ApplyDefaults()

	assert.True(t, cfg.Stopwords.Contains("de"))
	assert.True(t, cfg.StopwordsExtended.Contains("the"))
	assert.NotEmpty(t, cfg.Synonyms["prijs"])
	assert.NotEmpty(t, cfg.QueryExpansions["open"])
	assert.InDelta(t, 0.90, cfg.FAQMatchThreshold, 1e-9)
	assert.InDelta(t, 0.92, cfg.ArrangementMatchThreshold, 1e-9)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	custom := NewWordSet("foo")
	cfg := &SearchConfig{
		Stopwords:         custom,
		FAQMatchThreshold: 0.5,
	}
	cfg.ApplyDefaults()

	assert.True(t, cfg.Stopwords.Contains("foo"))
	assert.False(t, cfg.Stopwords.Contains("de"))
	assert.InDelta(t, 0.5, cfg.FAQMatchThreshold, 1e-9)
	// Untouched fields still get backfilled.
	require.NotNil(t, cfg.Synonyms)
}

func TestWordSetMatchesQuery(t *testing.T) {
	set := NewWordSet("openingstijd", "hoe laat")

	assert.True(t, set.MatchesQuery("wat zijn de openingstijden?"))
	assert.True(t, set.MatchesQuery("hoe laat gaan jullie open"))
	assert.False(t, set.MatchesQuery("mag mijn kind meedoen"))
}

func TestDefaultDutchTables(t *testing.T) {
	cfg := DefaultDutch()

	t.Run("stopwords extended is a superset", func(t *testing.T) {
		for w := range cfg.Stopwords {
			assert.True(t, cfg.StopwordsExtended.Contains(w), "missing %q", w)
		}
	})

	t.Run("drink keywords are flattened", func(t *testing.T) {
		assert.True(t, cfg.DrinkKeywords.Contains("pils"))
		assert.True(t, cfg.DrinkKeywords.Contains("prosecco"))
		assert.True(t, cfg.DrinkKeywords.Contains("espresso"))
	})

	t.Run("day tables agree", func(t *testing.T) {
		require.Len(t, cfg.DaysOrder, 7)
		seen := make(map[string]bool)
		for _, nl := range cfg.DayNamesENToNL {
			seen[nl] = true
		}
		for _, day := range cfg.DaysOrder {
			assert.True(t, seen[day], "no English mapping for %q", day)
		}
	})
}
