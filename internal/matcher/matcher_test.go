package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Key  string
	Body string
}

func entryKey(e entry) string { return e.Key }

func TestMatchExact(t *testing.T) {
	current := []entry{
		{Key: "https://example.nl/a", Body: "old a"},
		{Key: "https://example.nl/b", Body: "old b"},
		{Key: "https://example.nl/c", Body: "old c"},
	}
	scraped := []entry{
		{Key: "https://example.nl/b", Body: "new b"},
		{Key: "https://example.nl/d", Body: "new d"},
		{Key: "https://example.nl/a", Body: "new a"},
	}

	res := MatchExact(current, scraped, entryKey)

	require.Len(t, res.Matched, 2)
	// Pairs follow scraped order.
	assert.Equal(t, "old b", res.Matched[0].Current.Body)
	assert.Equal(t, "new b", res.Matched[0].Scraped.Body)
	assert.Equal(t, 1, res.Matched[0].CurrentIndex)
	assert.Equal(t, "new a", res.Matched[1].Scraped.Body)

	require.Len(t, res.Added, 1)
	assert.Equal(t, "new d", res.Added[0].Item.Body)

	require.Len(t, res.Removed, 1)
	assert.Equal(t, "old c", res.Removed[0].Item.Body)
	assert.Equal(t, 2, res.Removed[0].Index)
}

func TestMatchExact_EmptyKeysIgnored(t *testing.T) {
	current := []entry{{Key: "", Body: "nameless"}}
	scraped := []entry{{Key: "", Body: "also nameless"}}

	res := MatchExact(current, scraped, entryKey)

	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
}

func TestMatchExact_DuplicateKeyLastWins(t *testing.T) {
	current := []entry{{Key: "x", Body: "first"}, {Key: "x", Body: "second"}}
	scraped := []entry{{Key: "x", Body: "scraped"}}

	res := MatchExact(current, scraped, entryKey)

	require.Len(t, res.Matched, 1)
	assert.Equal(t, "second", res.Matched[0].Current.Body)
	assert.Empty(t, res.Removed)
}

func TestMatchSimilar_NormalizedExactPhase(t *testing.T) {
	current := []entry{{Key: "Wat zijn de openingstijden?", Body: "old"}}
	scraped := []entry{{Key: "wat  zijn de openingstijden?", Body: "new"}}

	res := MatchSimilar(current, scraped, entryKey, 0.90)

	require.Len(t, res.Matched, 1)
	assert.Equal(t, "old", res.Matched[0].Current.Body)
	assert.Equal(t, "new", res.Matched[0].Scraped.Body)
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
}

func TestMatchSimilar_SimilarityPhase(t *testing.T) {
	// One typo in 20 runes: ratio 0.95, above the 0.90 threshold.
	current := []entry{{Key: "wat kost het biertje", Body: "old"}}
	scraped := []entry{{Key: "wat kost het biertme", Body: "new"}}

	res := MatchSimilar(current, scraped, entryKey, 0.90)

	require.Len(t, res.Matched, 1)
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)
}

func TestMatchSimilar_BelowThresholdIsRemoveAndAdd(t *testing.T) {
	current := []entry{{Key: "Wat zijn de openingstijden?", Body: "old"}}
	scraped := []entry{{Key: "Wanneer zijn jullie open?", Body: "new"}}

	res := MatchSimilar(current, scraped, entryKey, 0.90)

	assert.Empty(t, res.Matched)
	require.Len(t, res.Removed, 1)
	assert.Equal(t, "old", res.Removed[0].Item.Body)
	require.Len(t, res.Added, 1)
	assert.Equal(t, "new", res.Added[0].Item.Body)
}

func TestMatchSimilar_EmptyCurrentKeyIsRemoval(t *testing.T) {
	current := []entry{{Key: "", Body: "nameless"}}
	scraped := []entry{{Key: "iets", Body: "new"}}

	res := MatchSimilar(current, scraped, entryKey, 0.90)

	assert.Empty(t, res.Matched)
	require.Len(t, res.Removed, 1)
	require.Len(t, res.Added, 1)
}

func TestMatchSimilar_ClaimedScrapedNotReused(t *testing.T) {
	current := []entry{
		{Key: "kinderfeestje arrangement", Body: "c1"},
		{Key: "kinderfeestje arrangament", Body: "c2"},
	}
	scraped := []entry{
		{Key: "kinderfeestje arrangement", Body: "s1"},
	}

	res := MatchSimilar(current, scraped, entryKey, 0.90)

	// c1 claims s1 exactly; c2 has no candidate left.
	require.Len(t, res.Matched, 1)
	assert.Equal(t, "c1", res.Matched[0].Current.Body)
	require.Len(t, res.Removed, 1)
	assert.Equal(t, "c2", res.Removed[0].Item.Body)
	assert.Empty(t, res.Added)
}

func TestMatchSimilar_Deterministic(t *testing.T) {
	current := []entry{
		{Key: "alpha arrangement", Body: "a"},
		{Key: "beta arrangement", Body: "b"},
		{Key: "gamma arrangement", Body: "g"},
	}
	scraped := []entry{
		{Key: "beta arrangement deluxe", Body: "b2"},
		{Key: "alpha arrangement", Body: "a2"},
	}

	first := MatchSimilar(current, scraped, entryKey, 0.85)
	for i := 0; i < 25; i++ {
		assert.Equal(t, first, MatchSimilar(current, scraped, entryKey, 0.85))
	}
}
