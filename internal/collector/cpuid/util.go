package cpuid

// matchEntry matches the byte c against the head of pattern p. It returns
// how many pattern bytes were consumed, or -1.
func matchEntry(c byte, p string) int {
	if c == 0 || len(p) == 0 {
		return -1
	}
	if c == p[0] || p[0] == '.' {
		return 1
	}
	if p[0] == '#' && c >= '0' && c <= '9' {
		return 1
	}
	if p[0] == '[' {
		j := 1
		for j < len(p) && p[j] != ']' {
			j++
		}
		if j == len(p) {
			return -1
		}
		for i := 1; i < j; i++ {
			if p[i] == c {
				return j + 1
			}
		}
	}
	return -1
}

// MatchPattern searches s for pattern and returns the match position plus
// one, or 0 when there is no match. In the pattern '.' matches any byte, '#'
// any digit and "[abc]" any of the listed bytes. Ranges are not supported.
func MatchPattern(s, pattern string) int {
	at := func(i int) byte {
		if i < len(s) {
			return s[i]
		}
		return 0
	}

	m := len(pattern)
	for i := 0; i < len(s); i++ {
		if matchEntry(s[i], pattern) == -1 {
			continue
		}
		j, k := 0, 0
		for j < m {
			dj := matchEntry(at(i+k), pattern[j:])
			if dj == -1 {
				break
			}
			k++
			j += dj
		}
		if j == m {
			return i + 1
		}
	}
	return 0
}

// MatchAll reports whether every bit of mask is set in bits.
func MatchAll(bits, mask uint64) bool {
	return bits&mask == mask
}
