package textutil

// LongestCommonSubstring returns the longest contiguous substring shared by
// a and b. When several substrings tie on length the one starting earliest
// in a wins. Returns "" when the strings share nothing.
func LongestCommonSubstring(a, b string) string {
	if a == "" || b == "" {
		return ""
	}
	// Rolling single-row DP over byte positions. Both inputs are normalized
	// ASCII, so byte indexing is safe.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	bestLen := 0
	bestEnd := 0
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > bestLen {
					bestLen = curr[j]
					bestEnd = i
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return a[bestEnd-bestLen : bestEnd]
}
