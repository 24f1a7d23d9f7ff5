// Package matcher pairs entities across two corpus snapshots. Matching is
// fully deterministic: inputs are walked in slice order, so the same
// snapshots always produce the same pairs, additions, and removals.
package matcher

import (
	"strings"

	"github.com/masoai/kbengine/internal/similarity"
)

// Pair couples a current entity with the scraped entity it matched.
type Pair[T any] struct {
	Current      T
	Scraped      T
	CurrentIndex int
	ScrapedIndex int
}

// Indexed is an entity together with its position in its source slice.
type Indexed[T any] struct {
	Item  T
	Index int
}

// Result is the outcome of matching two snapshots of one collection.
type Result[T any] struct {
	Matched []Pair[T]
	Added   []Indexed[T]
	Removed []Indexed[T]
}

// MatchExact pairs entities whose key fields are byte-for-byte equal. When a
// key occurs more than once in a slice the last occurrence wins, keyed
// entities are visited in first-occurrence order. Entities with an empty key
// are ignored.
func MatchExact[T any](current, scraped []T, key func(T) string) Result[T] {
	var res Result[T]

	currentByKey := lastOccurrence(current, key)
	scrapedByKey := lastOccurrence(scraped, key)

	seen := make(map[string]struct{})
	for _, s := range scraped {
		k := key(s)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		sc := scrapedByKey[k]
		if cur, ok := currentByKey[k]; ok {
			res.Matched = append(res.Matched, Pair[T]{
				Current:      cur.Item,
				Scraped:      sc.Item,
				CurrentIndex: cur.Index,
				ScrapedIndex: sc.Index,
			})
		} else {
			res.Added = append(res.Added, sc)
		}
	}

	seen = make(map[string]struct{})
	for _, c := range current {
		k := key(c)
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		if _, ok := scrapedByKey[k]; !ok {
			res.Removed = append(res.Removed, currentByKey[k])
		}
	}

	return res
}

// MatchSimilar pairs entities in two phases. First, keys are normalized
// (lowercased, whitespace collapsed) and matched exactly. Second, every
// unmatched current entity is compared against the unclaimed scraped entities
// and paired with the highest-scoring one at or above threshold; ties go to
// the earlier scraped entity. Current entities with an empty key, or with no
// candidate above the threshold, are removals; unclaimed scraped entities are
// additions.
func MatchSimilar[T any](current, scraped []T, key func(T) string, threshold float64) Result[T] {
	var res Result[T]

	scrapedNormalized := make(map[string]Indexed[T])
	for i, s := range scraped {
		if k := normalizeKey(key(s)); k != "" {
			scrapedNormalized[k] = Indexed[T]{Item: s, Index: i}
		}
	}

	claimed := make(map[int]struct{})
	matched := make(map[int]struct{})
	for i, c := range current {
		k := normalizeKey(key(c))
		if k == "" {
			continue
		}
		if sc, ok := scrapedNormalized[k]; ok {
			res.Matched = append(res.Matched, Pair[T]{
				Current:      c,
				Scraped:      sc.Item,
				CurrentIndex: i,
				ScrapedIndex: sc.Index,
			})
			matched[i] = struct{}{}
			claimed[sc.Index] = struct{}{}
		}
	}

	for i, c := range current {
		if _, ok := matched[i]; ok {
			continue
		}

		currText := key(c)
		if currText == "" {
			res.Removed = append(res.Removed, Indexed[T]{Item: c, Index: i})
			continue
		}

		bestScore := 0.0
		bestIdx := -1
		for j, s := range scraped {
			if _, ok := claimed[j]; ok {
				continue
			}
			scrapedText := key(s)
			if scrapedText == "" {
				continue
			}
			score := similarity.Ratio(strings.ToLower(currText), strings.ToLower(scrapedText))
			if score > bestScore {
				bestScore = score
				bestIdx = j
			}
		}

		if bestIdx >= 0 && bestScore >= threshold {
			res.Matched = append(res.Matched, Pair[T]{
				Current:      c,
				Scraped:      scraped[bestIdx],
				CurrentIndex: i,
				ScrapedIndex: bestIdx,
			})
			claimed[bestIdx] = struct{}{}
		} else {
			res.Removed = append(res.Removed, Indexed[T]{Item: c, Index: i})
		}
	}

	for j, s := range scraped {
		if _, ok := claimed[j]; ok {
			continue
		}
		res.Added = append(res.Added, Indexed[T]{Item: s, Index: j})
	}

	return res
}

func lastOccurrence[T any](items []T, key func(T) string) map[string]Indexed[T] {
	m := make(map[string]Indexed[T], len(items))
	for i, item := range items {
		if k := key(item); k != "" {
			m[k] = Indexed[T]{Item: item, Index: i}
		}
	}
	return m
}

// normalizeKey lowercases and collapses internal whitespace.
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
