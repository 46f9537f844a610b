package regex

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func charMatches(c, p byte, caseInsensitive bool) bool {
	if caseInsensitive {
		return lowerByte(c) == lowerByte(p)
	}
	return c == p
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// matchAt consumes pattern against text starting at offset start, in
// lock-step. A match succeeds only when the entire pattern is consumed
// against consecutive bytes; the number of bytes consumed is irrelevant
// here, span measurement happens at the scan layer.
func matchAt(text string, start int, pattern string, caseInsensitive bool) bool {
	ti := start
	pi := 0
	for ti < len(text) && pi < len(pattern) {
		switch {
		case pattern[pi] == '[':
			pi++
			negate := false
			matched := false
			if pi < len(pattern) && pattern[pi] == '^' {
				negate = true
				pi++
			}
			// An empty character class is malformed.
			if pi < len(pattern) && pattern[pi] == ']' {
				return false
			}
			for pi < len(pattern) && pattern[pi] != ']' {
				if pattern[pi] != '\\' && pi+2 < len(pattern) && pattern[pi+1] == '-' && pattern[pi+2] != ']' {
					lo, hi := pattern[pi], pattern[pi+2]
					c := text[ti]
					if (c >= lo && c <= hi) ||
						(caseInsensitive &&
							((lowerByte(c) >= lowerByte(lo) && lowerByte(c) <= lowerByte(hi)) ||
								(upperByte(c) >= upperByte(lo) && upperByte(c) <= upperByte(hi)))) {
						matched = true
						break
					}
					pi += 3
				} else {
					if charMatches(text[ti], pattern[pi], caseInsensitive) {
						matched = true
						break
					}
					pi++
				}
			}
			for pi < len(pattern) && pattern[pi] != ']' {
				pi++
			}
			if pi < len(pattern) {
				pi++
			}
			if negate {
				matched = !matched
			}
			if !matched {
				return false
			}
		case pattern[pi] == '\\':
			pi++
			if pi >= len(pattern) {
				// Dangling escape at end of pattern.
				return false
			}
			switch pattern[pi] {
			case 'd':
				if !isDigit(text[ti]) {
					return false
				}
			case 'w':
				if !isWordChar(text[ti]) {
					return false
				}
			case 's':
				if !isSpace(text[ti]) {
					return false
				}
			case 'b':
				// Zero-width word-boundary assertion: the preceding and
				// current byte must differ in word-class membership.
				prevIsWord := ti > 0 && isWordChar(text[ti-1])
				currIsWord := isWordChar(text[ti])
				if prevIsWord == currIsWord {
					return false
				}
				ti-- // do not consume input
			default:
				if !charMatches(text[ti], pattern[pi], caseInsensitive) {
					return false
				}
			}
		case pattern[pi] == '.':
			// Matches any byte.
		default:
			if !charMatches(text[ti], pattern[pi], caseInsensitive) {
				return false
			}
		}
		ti++
		pi++
	}
	return pi == len(pattern)
}
