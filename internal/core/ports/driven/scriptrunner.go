package driven

import (
	"context"
	"time"
)

// ScriptRunner executes one script to completion or timeout in the
// external interpreter.
type ScriptRunner interface {
	// Run spawns the interpreter with the script as its inline program,
	// captures its output streams, and blocks until the process exits or
	// the timeout elapses.
	//
	// On timeout the process is forcibly terminated and Run returns an
	// empty result with no error; callers read "no output" as "no result
	// found". On a non-zero exit the captured stderr is surfaced as a
	// *domain.ScriptError. On a normal exit the captured stdout is
	// returned trimmed of leading and trailing whitespace.
	Run(ctx context.Context, script string, timeout time.Duration) (string, error)
}
