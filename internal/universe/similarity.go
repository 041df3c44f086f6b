package universe

// similarityRatio scores two symbols as 1 - d/max(len(a), len(b)), where d is
// the optimal string alignment distance (edits are insert, delete, substitute
// and adjacent transposition, so a swapped-letter typo costs one edit). The
// result is in [0, 1], with 1 meaning identical strings. Symbols are short
// ASCII strings, so the quadratic cost is irrelevant here.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(alignmentDistance(a, b))/float64(maxLen)
}

// alignmentDistance computes the optimal string alignment distance between a
// and b with a rolling three-row table.
func alignmentDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			d := prev[j-1] + cost // substitute
			if del := prev[j] + 1; del < d {
				d = del
			}
			if ins := curr[j-1] + 1; ins < d {
				d = ins
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if tr := prev2[j-2] + 1; tr < d {
					d = tr
				}
			}
			curr[j] = d
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[len(b)]
}
