package rt

import (
	"strings"

	"smashrt/internal/regex"
)

// splitPatternFlags separates a trailing /flags suffix from a combined
// pattern argument. A slash at position 0 belongs to the pattern; when no
// suffix is present the supplied default flags apply.
func splitPatternFlags(pattern, defaultFlags string) (string, string) {
	if i := strings.LastIndexByte(pattern, '/'); i > 0 {
		return pattern[:i], pattern[i+1:]
	}
	return pattern, defaultFlags
}

// StringMatch matches text against a "pattern/flags" argument (flags
// default to empty) and returns the bracketed quoted-match list.
func StringMatch(text, pattern string) string {
	pat, flags := splitPatternFlags(pattern, "")
	return regex.New(pat, flags).Match(text)
}

// StringReplace replaces matches of a "pattern/flags" argument in text.
// Flags default to "g"; when a flags suffix is present, 'g' is force-added
// if omitted so replacement is always global unless the caller never asked
// for flags at all.
func StringReplace(text, pattern, replacement string) string {
	pat, flags := splitPatternFlags(pattern, "g")
	if !strings.ContainsRune(flags, 'g') {
		flags += "g"
	}
	return regex.New(pat, flags).Replace(text, replacement)
}

// RegexTest reports whether the compiled pattern matches anywhere in text.
func RegexTest(re *regex.Regex, text string) bool {
	return re.Test(text)
}

// RegexMatch returns the bracketed quoted-match list for text.
func RegexMatch(re *regex.Regex, text string) string {
	return re.Match(text)
}

// RegexReplace splices replacement over matches in text.
func RegexReplace(re *regex.Regex, text, replacement string) string {
	return re.Replace(text, replacement)
}
