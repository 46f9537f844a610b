package regex

import "strings"

// matchSpan tests whether a match starts at offset i and, if so, measures
// its span in bytes.
//
// A trailing '+' is the one quantifier the engine understands: the '+' is
// stripped, the reduced pattern gates the candidate, and the span is then
// extended one byte at a time when the reduced pattern is a character
// class, or fixed at the reduced pattern's length otherwise. Plain
// patterns use the same approximation: a leading class spans one byte,
// anything else spans the pattern length capped at the remaining text.
func (re *Regex) matchSpan(text string, i int) (int, bool) {
	pattern := re.Pattern
	hasPlus := len(pattern) > 0 && pattern[len(pattern)-1] == '+'

	var n int
	switch {
	case hasPlus:
		base := pattern[:len(pattern)-1]
		if !matchAt(text, i, base, re.caseInsensitive) {
			return 0, false
		}
		if len(base) > 0 && base[0] == '[' {
			for i+n < len(text) && matchAt(text, i+n, base, re.caseInsensitive) {
				n++
			}
		} else {
			n = len(base)
		}
	default:
		if !matchAt(text, i, pattern, re.caseInsensitive) {
			return 0, false
		}
		if len(pattern) > 0 && pattern[0] == '[' {
			n = 1
		} else {
			n = len(pattern)
		}
	}
	if i+n > len(text) {
		n = len(text) - i
	}
	return n, true
}

// Match scans text left to right and returns the matches as a bracketed,
// comma-separated list of quoted strings, e.g. ["a","b"]. Quotes and commas
// inside matched text are not escaped. Without the 'g' flag only the first
// match is collected; "[]" is returned when nothing matches. Zero-length
// matches advance the scan by at least one byte.
func (re *Regex) Match(text string) string {
	var b strings.Builder
	count := 0
	for i := 0; i < len(text); i++ {
		n, ok := re.matchSpan(text, i)
		if !ok {
			continue
		}
		if count == 0 {
			b.WriteByte('[')
		} else {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(text[i : i+n])
		b.WriteByte('"')
		count++
		if !re.global {
			break
		}
		if n > 1 {
			i += n - 1
		}
	}
	if count == 0 {
		return "[]"
	}
	b.WriteByte(']')
	return b.String()
}

// Replace splices replacement verbatim over each match (first match only
// without the 'g' flag). There is no group or backreference substitution.
// When nothing matches the input text is returned unchanged.
func (re *Regex) Replace(text, replacement string) string {
	var b strings.Builder
	last := 0
	matched := false
	for i := 0; i < len(text); i++ {
		n, ok := re.matchSpan(text, i)
		if !ok {
			continue
		}
		matched = true
		b.WriteString(text[last:i])
		b.WriteString(replacement)
		last = i + n
		if !re.global {
			break
		}
		if n > 1 {
			i += n - 1
		}
	}
	if !matched {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// Test reports whether the pattern matches anywhere in text.
func (re *Regex) Test(text string) bool {
	for i := 0; i < len(text); i++ {
		if _, ok := re.matchSpan(text, i); ok {
			return true
		}
	}
	return false
}
