package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/masoai/kbengine/config"
)

func newTestExpander() *Expander {
	return NewExpander(config.DefaultDutch())
}

func TestExpand_QueryExpansions(t *testing.T) {
	e := newTestExpander()

	expanded := e.Expand("hoe kan ik reserveren?")

	for _, want := range []string{"boeken", "reservering", "boeking"} {
		assert.Contains(t, strings.Fields(expanded), want)
	}
}

func TestExpand_SynonymsBidirectional(t *testing.T) {
	e := newTestExpander()

	t.Run("base word pulls in synonyms", func(t *testing.T) {
		expanded := e.Expand("wat kost een bier")
		assert.Contains(t, strings.Fields(expanded), "pils")
		assert.Contains(t, strings.Fields(expanded), "tapbier")
	})

	t.Run("synonym pulls in base and siblings", func(t *testing.T) {
		expanded := e.Expand("doen jullie aan simracing")
		words := strings.Fields(expanded)
		assert.Contains(t, words, "simracen")
		assert.Contains(t, words, "simulator")
	})
}

func TestExpand_Deterministic(t *testing.T) {
	e := newTestExpander()

	first := e.Expand("kindermenu prijs open reserveren bier")
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, e.Expand("kindermenu prijs open reserveren bier"))
	}
}

func TestExpand_LowercasesInput(t *testing.T) {
	e := newTestExpander()
	assert.Equal(t, e.Expand("BIER"), e.Expand("bier"))
}

func TestExcerptTerms(t *testing.T) {
	e := newTestExpander()

	t.Run("filters stopwords and short words", func(t *testing.T) {
		base, _ := e.ExcerptTerms("wat is de prijs")
		assert.Equal(t, []string{"prijs"}, base)
	})

	t.Run("adds diminutive stems", func(t *testing.T) {
		base, _ := e.ExcerptTerms("lekker biertje")
		assert.Contains(t, base, "biertje")
		assert.Contains(t, base, "bier")
	})

	t.Run("fans out over excerpt synonyms", func(t *testing.T) {
		base, all := e.ExcerptTerms("welke bier hebben jullie")
		assert.Equal(t, []string{"bier"}, base)
		assert.Contains(t, all, "pils")
		assert.Contains(t, all, "tapbier")
	})

	t.Run("no duplicates, order preserved", func(t *testing.T) {
		_, all := e.ExcerptTerms("bier biertje")
		seen := map[string]int{}
		for _, term := range all {
			seen[term]++
		}
		for term, n := range seen {
			assert.Equal(t, 1, n, "duplicate term %q", term)
		}
		assert.Equal(t, "bier", all[0])
	})
}

func TestStripDiminutive(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"biertje", "bier"},
		{"wijntje", "wijn"},
		{"biertjes", "bier"},
		{"hapjes", "hap"},
		{"bier", "bier"},
		{"menu", "menu"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripDiminutive(tt.word), "word %q", tt.word)
	}
}
