// Package search filters the accumulated photo list by author.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/photovault/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Match is a single filter hit
type Match struct {
	Index          int   // Index into the photo slice
	Score          int   // Lower is better
	MatchedIndexes []int // Rune positions in the author name (empty for typo matches)
}

// typoScoreBase ranks typo-tolerant hits after every subsequence hit
const typoScoreBase = 1000

// AuthorIndex implements sahilm/fuzzy.Source over photo authors
type AuthorIndex struct {
	photos       []domain.Photo
	lowerAuthors []string
}

// NewAuthorIndex pre-computes lowercase authors for matching
func NewAuthorIndex(photos []domain.Photo) *AuthorIndex {
	lower := make([]string, len(photos))
	for i, p := range photos {
		lower[i] = strings.ToLower(p.Author)
	}
	return &AuthorIndex{photos: photos, lowerAuthors: lower}
}

// String returns the lowercase author at index i (implements fuzzy.Source)
func (idx *AuthorIndex) String(i int) string { return idx.lowerAuthors[i] }

// Len returns the number of photos (implements fuzzy.Source)
func (idx *AuthorIndex) Len() int { return len(idx.lowerAuthors) }

// FilterPhotos matches query against photo authors.
//
// Subsequence matches come first, ranked by sahilm/fuzzy. When nothing
// matches, a typo-tolerant pass compares the query against each word of the
// author by edit distance. An empty query returns nil.
func FilterPhotos(query string, photos []domain.Photo) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(photos) == 0 {
		return nil
	}

	idx := NewAuthorIndex(photos)

	found := fuzzy.FindFrom(query, idx)
	if len(found) > 0 {
		matches := make([]Match, len(found))
		for i, m := range found {
			matches[i] = Match{
				Index:          m.Index,
				Score:          -m.Score,
				MatchedIndexes: runeIndexes(m.Str, m.MatchedIndexes),
			}
		}
		sortMatches(matches)
		return matches
	}

	return typoMatches(query, idx)
}

// runeIndexes converts byte offsets reported by sahilm/fuzzy into rune
// positions. Lowercasing maps rune for rune, so positions in the lowered
// author line up with the original.
func runeIndexes(s string, offsets []int) []int {
	if len(offsets) == 0 {
		return nil
	}
	byRune := make(map[int]int, utf8.RuneCountInString(s))
	pos := 0
	for offset := range s {
		byRune[offset] = pos
		pos++
	}

	out := make([]int, 0, len(offsets))
	for _, off := range offsets {
		if p, ok := byRune[off]; ok {
			out = append(out, p)
		}
	}
	return out
}

// typoMatches finds authors within a small edit distance of the query
func typoMatches(query string, idx *AuthorIndex) []Match {
	limit := maxTypos(query)
	if limit == 0 {
		return nil
	}

	var matches []Match
	for i := 0; i < idx.Len(); i++ {
		best := -1
		for _, word := range candidates(idx.String(i)) {
			d := fuzzysearch.LevenshteinDistance(query, word)
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 && best <= limit {
			matches = append(matches, Match{Index: i, Score: typoScoreBase + best})
		}
	}

	sortMatches(matches)
	return matches
}

// candidates returns the full author plus each of its words
func candidates(author string) []string {
	words := strings.Fields(author)
	return append([]string{author}, words...)
}

// maxTypos scales the allowed edit distance with query length.
// Very short queries get no typo tolerance.
func maxTypos(query string) int {
	n := utf8.RuneCountInString(query)
	switch {
	case n < 4:
		return 0
	case n < 8:
		return 1
	default:
		return 2
	}
}

// sortMatches orders by score, then by original position
func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score < matches[j].Score
		}
		return matches[i].Index < matches[j].Index
	})
}
