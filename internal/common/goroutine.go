package common

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ternarybob/arbor"
)

// SafeGo runs fn on its own goroutine. A panic in one channel call or in the
// HTTP server loop is logged with its stack under name and does not take down
// the other calls sharing the process.
func SafeGo(logger arbor.ILogger, name string, fn func()) {
	go func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			buf := make([]byte, 4096)
			stack := string(buf[:runtime.Stack(buf, false)])

			if logger == nil {
				fmt.Fprintf(os.Stderr, "panic in %s: %v\n%s\n", name, r, stack)
				return
			}
			logger.Error().
				Str("goroutine", name).
				Str("panic", fmt.Sprintf("%v", r)).
				Str("stack", stack).
				Msg("Recovered panic; call abandoned")
		}()

		fn()
	}()
}
