// Package fuzzy provides similarity scoring between two strings on a 0-100
// scale. Two scorers are available: Ratio, a plain full-string similarity,
// and WRatio, a weighted variant that tolerates partial overlap and word
// reordering. Both are cheap enough to be called in a tight loop over an
// entire key set.
package fuzzy

import (
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scorer computes a similarity score in [0,100] for two strings.
type Scorer func(a, b string) int

// ScorerFor selects the scorer matching the weighted flag.
func ScorerFor(weighted bool) Scorer {
	if weighted {
		return WRatio
	}
	return Ratio
}

// Ratio returns the full-string similarity of a and b after cleaning
// (lower-casing and stripping non-alphanumeric runs). Returns 0 when either
// string is empty after cleaning.
func Ratio(a, b string) int {
	pa, pb := clean(a), clean(b)
	if pa == "" || pb == "" {
		return 0
	}
	return ratio(pa, pb)
}

// WRatio returns a weighted similarity score. It takes the best of the plain
// ratio and, depending on how different the string lengths are, scaled
// partial, token-sort and token-set ratios. Long strings matched against a
// short substring still score high, as do the same words in a different
// order.
func WRatio(a, b string) int {
	pa, pb := clean(a), clean(b)
	if pa == "" || pb == "" {
		return 0
	}

	base := float64(ratio(pa, pb))

	shorter, longer := len(pa), len(pb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	lenRatio := float64(longer) / float64(shorter)

	const unbaseScale = 0.95
	if lenRatio < 1.5 {
		tsor := float64(tokenSortRatio(pa, pb, false)) * unbaseScale
		tset := float64(tokenSetRatio(pa, pb, false)) * unbaseScale
		return int(math.Round(math.Max(base, math.Max(tsor, tset))))
	}

	partialScale := 0.90
	if lenRatio > 8 {
		partialScale = 0.60
	}
	part := float64(partialRatio(pa, pb)) * partialScale
	ptsor := float64(tokenSortRatio(pa, pb, true)) * unbaseScale * partialScale
	ptset := float64(tokenSetRatio(pa, pb, true)) * unbaseScale * partialScale
	best := math.Max(base, math.Max(part, math.Max(ptsor, ptset)))
	return int(math.Round(best))
}

// ratio is the normalized Levenshtein similarity of two non-empty strings.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if lb := len([]rune(b)); lb > longest {
		longest = lb
	}
	return int(math.Round((1 - float64(dist)/float64(longest)) * 100))
}

// partialRatio slides the shorter string over the longer one and returns the
// best window score.
func partialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}
	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if score := ratio(string(shorter), window); score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

func tokenSortRatio(a, b string, partial bool) int {
	sa, sb := sortTokens(a), sortTokens(b)
	if partial {
		return partialRatio(sa, sb)
	}
	return ratio(sa, sb)
}

// tokenSetRatio compares the shared words of both strings against each full
// token set, so extra words on one side cost little.
func tokenSetRatio(a, b string, partial bool) int {
	ta, tb := tokenSet(a), tokenSet(b)

	var common, onlyA, onlyB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	shared := strings.Join(common, " ")
	combinedA := strings.TrimSpace(shared + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(shared + " " + strings.Join(onlyB, " "))

	score := func(x, y string) int {
		if x == "" || y == "" {
			return 0
		}
		if partial {
			return partialRatio(x, y)
		}
		return ratio(x, y)
	}

	best := score(shared, combinedA)
	if s := score(shared, combinedB); s > best {
		best = s
	}
	if s := score(combinedA, combinedB); s > best {
		best = s
	}
	return best
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

// clean lower-cases s and replaces every non-alphanumeric run with a single
// space, trimming the ends.
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range strings.ToLower(s) {
		alnum := r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 127
		if alnum {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		} else {
			space = true
		}
	}
	return b.String()
}
