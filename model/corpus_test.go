package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []string
	}{
		{"bare number", `17.5`, []string{"€17,50"}},
		{"integer number", `25`, []string{"€25,00"}},
		{"single string", `"€17,50 p.p."`, []string{"€17,50 p.p."}},
		{"list of strings", `["€17,50","€22,50"]`, []string{"€17,50", "€22,50"}},
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{"empty list", `[]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tt.json), &p))
			if tt.want == nil {
				assert.True(t, p.IsZero())
			} else {
				assert.Equal(t, tt.want, p.Values())
			}
		})
	}

	t.Run("unsupported value", func(t *testing.T) {
		var p Price
		assert.Error(t, json.Unmarshal([]byte(`{"amount": 10}`), &p))
	})
}

func TestPriceDisplay(t *testing.T) {
	assert.Equal(t, "Prijs op aanvraag", Price{}.Display())
	assert.Equal(t, "€17,50", NewPrice("€17,50").Display())
	assert.Equal(t, "€17,50, €22,50", NewPrice("€17,50", "€22,50").Display())
}

func TestPriceEqual(t *testing.T) {
	assert.True(t, NewPrice("€17,50", "€22,50").Equal(NewPrice("€22,50", "€17,50")))
	assert.True(t, Price{}.Equal(Price{}))
	assert.False(t, NewPrice("€17,50").Equal(NewPrice("€19,50")))
	assert.False(t, NewPrice("€17,50").Equal(NewPrice("€17,50", "€22,50")))
}

func TestPriceJSONRoundTrip(t *testing.T) {
	in := NewPrice("€17,50", "€22,50")

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Price
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.Values(), out.Values())
}

func TestArrangementPriceFromScrapedJSON(t *testing.T) {
	// Scraped arrangements deliver the price in any of the three shapes.
	raw := `{
		"name": "Kids Party",
		"price": 17.5,
		"duration": "2 uur"
	}`

	var arr Arrangement
	require.NoError(t, json.Unmarshal([]byte(raw), &arr))
	assert.Equal(t, "€17,50", arr.Price.Display())
}

func TestCorpusIsEmpty(t *testing.T) {
	assert.True(t, (&Corpus{}).IsEmpty())
	assert.True(t, (&Corpus{BusinessInfo: BusinessInfo{Name: "X"}}).IsEmpty())
	assert.False(t, (&Corpus{FAQs: []FAQ{{Question: "Q"}}}).IsEmpty())
}

func TestCorpusClone(t *testing.T) {
	orig := &Corpus{
		FAQs: []FAQ{{Question: "Q", Answer: "A"}},
		Arrangements: []Arrangement{
			{Name: "Kids Party", Price: NewPrice("€17,50"), Activities: []string{"racen"}},
		},
		BusinessInfo: BusinessInfo{
			Name:         "Venue",
			OpeningHours: map[string]string{"maandag": "gesloten"},
		},
		SearchableContent: map[string][]int{"bier": {0, 2}},
		Metadata:          &Metadata{ContentFingerprint: "abc"},
	}

	clone := orig.Clone()

	// Mutating the clone leaves the original untouched.
	clone.FAQs[0].Answer = "anders"
	clone.Arrangements[0].Activities[0] = "bowlen"
	clone.BusinessInfo.OpeningHours["maandag"] = "10:00-22:00"
	clone.SearchableContent["bier"][0] = 9
	clone.Metadata.ContentFingerprint = "xyz"

	assert.Equal(t, "A", orig.FAQs[0].Answer)
	assert.Equal(t, "racen", orig.Arrangements[0].Activities[0])
	assert.Equal(t, "gesloten", orig.BusinessInfo.OpeningHours["maandag"])
	assert.Equal(t, []int{0, 2}, orig.SearchableContent["bier"])
	assert.Equal(t, "abc", orig.Metadata.ContentFingerprint)
}

func TestCorpusCloneNil(t *testing.T) {
	var c *Corpus
	assert.Nil(t, c.Clone())
}

func TestCorpusFingerprint(t *testing.T) {
	var c *Corpus
	assert.Equal(t, "", c.Fingerprint())
	assert.Equal(t, "", (&Corpus{}).Fingerprint())
	assert.Equal(t, "abc", (&Corpus{Metadata: &Metadata{ContentFingerprint: "abc"}}).Fingerprint())
}
