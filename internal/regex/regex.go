// Package regex implements the runtime's self-contained pattern matcher.
//
// The engine is a greedy, linear, single-pass interpreter over the raw
// pattern text: character classes, the \d \w \s \b escapes, '.' and literal
// characters, plus a narrow trailing-'+' quantifier handled at the scan
// layer. There is no compiled automaton and no backtracking; the supported
// surface is deliberately small and is not full ECMAScript regex.
package regex

// Regex is an immutable compiled pattern: the raw pattern text, the raw
// flags text and the two flags the engine understands.
type Regex struct {
	Pattern string
	Flags   string

	caseInsensitive bool
	global          bool
}

// New compiles a pattern with the given flag string. Recognized flags are
// 'i' (case-insensitive) and 'g' (global); anything else is ignored.
func New(pattern, flags string) *Regex {
	re := &Regex{Pattern: pattern, Flags: flags}
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'i':
			re.caseInsensitive = true
		case 'g':
			re.global = true
		}
	}
	return re
}

// CaseInsensitive reports whether the 'i' flag was set.
func (re *Regex) CaseInsensitive() bool { return re.caseInsensitive }

// Global reports whether the 'g' flag was set.
func (re *Regex) Global() bool { return re.global }
