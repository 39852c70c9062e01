package company

import "strings"

// Similarity scores how alike two company names are, in [0, 1].  Both names
// are normalized first; the score blends a character-level sequence ratio
// (weight 0.7) with word-set Jaccard overlap (weight 0.3) so that word
// reordering is penalised less than character noise.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return 0
	}

	score := sequenceRatio(na, nb)

	wordsA := fieldSet(na)
	wordsB := fieldSet(nb)
	if len(wordsA) > 0 && len(wordsB) > 0 {
		inter := 0
		union := len(wordsB)
		for w := range wordsA {
			if wordsB[w] {
				inter++
			} else {
				union++
			}
		}
		overlap := float64(inter) / float64(union)
		score = score*0.7 + overlap*0.3
	}
	return score
}

func fieldSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// sequenceRatio computes 2*M / (len(a)+len(b)) where M is the total length of
// all matching blocks found by recursively locating the longest common
// substring and matching the segments on either side of it.
func sequenceRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	m := matchingChars(ra, rb)
	return 2 * float64(m) / float64(total)
}

func matchingChars(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingChars(a[:ai], b[:bi]) +
		matchingChars(a[ai+size:], b[bi+size:])
}

// longestCommonSubstring returns the start offsets and length of the longest
// run of identical runes shared by a and b.  Dynamic programming over one
// rolling row keeps memory at O(len(b)).
func longestCommonSubstring(a, b []rune) (ai, bi, size int) {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > size {
					size = curr[j]
					ai = i - size
					bi = j - size
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return ai, bi, size
}

//Personal.AI order the ending
