package rt

import (
	"fmt"
	"io"
	"strings"
)

// Print stringifies each value via ToString, joins them with single spaces
// and writes the result with one trailing newline.
func Print(w io.Writer, values ...Value) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = ToString(v)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
