package rt

import (
	"strings"
	"unicode"
)

// Raw-string helpers backing the language's string methods. They operate
// on plain strings; the transpiler unwraps the string payload at the call
// site.

// StringToUpper returns s uppercased.
func StringToUpper(s string) string {
	return strings.ToUpper(s)
}

// StringToLower returns s lowercased.
func StringToLower(s string) string {
	return strings.ToLower(s)
}

// StringTrim removes leading and trailing whitespace.
func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// StringTrimStart removes leading whitespace.
func StringTrimStart(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// StringTrimEnd removes trailing whitespace.
func StringTrimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// StringCharAt returns the byte at index as a one-character string, or ""
// when index is out of range.
func StringCharAt(s string, index int) string {
	if index < 0 || index >= len(s) {
		return ""
	}
	return s[index : index+1]
}

// StringConcat concatenates two strings.
func StringConcat(a, b string) string {
	return a + b
}

// StringIncludes reports whether s contains search.
func StringIncludes(s, search string) bool {
	return strings.Contains(s, search)
}

// StringIndexOf returns the byte index of the first occurrence of search
// in s, or -1.
func StringIndexOf(s, search string) int {
	return strings.Index(s, search)
}

// StringSlice extracts s[start:end] with the original clamping rules:
// negative starts clamp to 0, ends past the string clamp to its length,
// and start >= end yields "".
func StringSlice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}

// StringRepeat repeats s count times; non-positive counts yield "".
func StringRepeat(s string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(s, count)
}

// StringLength returns the byte length of s.
func StringLength(s string) int {
	return len(s)
}
