package rt

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Recoverable invalid operations (wrong-type accessor arguments,
// out-of-bounds reads) degrade to a safe default and log a best-effort
// diagnostic here; they never abort the caller.

var (
	diagMu  sync.Mutex
	diagOut io.Writer = os.Stderr
)

// SetDiagOutput redirects runtime diagnostics, returning the previous
// writer. Tests use this to capture or silence the error stream.
func SetDiagOutput(w io.Writer) io.Writer {
	diagMu.Lock()
	defer diagMu.Unlock()
	prev := diagOut
	diagOut = w
	return prev
}

func reportf(format string, args ...any) {
	diagMu.Lock()
	defer diagMu.Unlock()
	fmt.Fprintf(diagOut, "error: "+format+"\n", args...)
}
