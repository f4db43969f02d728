package catalog

import (
	"sort"
	"strings"
)

// Suggest returns up to limit slugs that plausibly match input, for
// "did you mean" output after a failed lookup. Two strategies are
// tried: subsequence matching for abbreviations ("cdpush" matches
// "cd-onpush") and restricted Damerau-Levenshtein distance for typos
// ("cd-onpsuh"). Results are sorted by descending score.
func (c *Catalog) Suggest(input string, limit int) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		slug  string
		score int
	}
	var ranked []scored
	for _, slug := range c.Slugs() {
		if score, ok := matchSlug(input, slug); ok {
			ranked = append(ranked, scored{slug: slug, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].slug < ranked[j].slug
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.slug
	}
	return out
}

// matchSlug scores input against a single slug. A higher score is a
// better match; (0, false) means no plausible match.
func matchSlug(input, slug string) (int, bool) {
	if input == slug {
		return len(slug)*2 + 40, true
	}

	if score, ok := subsequenceScore(input, slug); ok {
		return score, true
	}

	// Typo path: accept up to ceil(len/3) edits, capped at 3.
	dist := editDistance(input, slug)
	longest := max(len(input), len(slug))
	threshold := (longest + 2) / 3
	if threshold > 3 {
		threshold = 3
	}
	if dist > threshold {
		return 0, false
	}

	score := longest*2 - dist*5
	if input[0] == slug[0] {
		score += 6
	}
	if score <= 0 {
		score = 1
	}
	return score, true
}

// subsequenceScore checks whether every character of input appears in
// slug in order, and scores the alignment. Adjacent matches, matches at
// the start, and matches right after a hyphen score extra; longer slugs
// are penalized slightly so tighter matches rank first.
func subsequenceScore(input, slug string) (int, bool) {
	if len(input) > len(slug) {
		return 0, false
	}

	score := 0
	prev := -2
	si := 0
	for ii := 0; ii < len(input); ii++ {
		for si < len(slug) && slug[si] != input[ii] {
			si++
		}
		if si == len(slug) {
			return 0, false
		}

		score++
		if si == prev+1 {
			score += 4
		}
		if si == 0 {
			score += 8
		} else if slug[si-1] == '-' {
			score += 4
		}
		prev = si
		si++
	}

	score -= len(slug) - len(input)
	return score, true
}

// editDistance computes the restricted Damerau-Levenshtein distance
// (insertions, deletions, substitutions, adjacent transpositions).
func editDistance(a, b string) int {
	d := make([][]int, len(a)+1)
	for i := range d {
		d[i] = make([]int, len(b)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d[i][j] = min(d[i][j], d[i-2][j-2]+cost)
			}
		}
	}
	return d[len(a)][len(b)]
}
