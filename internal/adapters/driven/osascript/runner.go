package osascript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/salmonumbrella/Contactbook/internal/core/domain"
	"github.com/salmonumbrella/Contactbook/internal/core/ports/driven"
)

// Ensure Runner implements the interface.
var _ driven.ScriptRunner = (*Runner)(nil)

// DefaultBinary is the macOS script interpreter.
const DefaultBinary = "/usr/bin/osascript"

// Runner executes scripts via the osascript binary. Each call spawns a
// fresh interpreter process with the script passed inline (-e).
type Runner struct {
	mu     sync.Mutex
	binary string
}

// New creates a runner using the system osascript binary.
func New() *Runner {
	return &Runner{binary: DefaultBinary}
}

// NewWithBinary creates a runner using the given interpreter binary.
// Used for configuration overrides and tests.
func NewWithBinary(binary string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{binary: binary}
}

// SetBinary swaps the interpreter binary. Empty restores the default.
// Safe to call while scripts are running; in-flight processes keep the
// binary they were spawned with.
func (r *Runner) SetBinary(binary string) {
	if binary == "" {
		binary = DefaultBinary
	}
	r.mu.Lock()
	r.binary = binary
	r.mu.Unlock()
}

func (r *Runner) binaryPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.binary
}

// Run executes one script, blocking until the process exits, the
// timeout elapses, or the context is cancelled.
//
// A timed-out process is killed and reported as an empty result with no
// error: read paths treat "no output" as "no result found". A mutation
// whose effect already landed inside Contacts.app before the timeout is
// therefore silently missed by the caller; the caller must re-query if
// certainty is required.
func (r *Runner) Run(ctx context.Context, script string, timeout time.Duration) (string, error) {
	binary := r.binaryPath()
	cmd := exec.Command(binary, "-e", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("start %s: %w", binary, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return "", &domain.ScriptError{Stderr: stderr.String()}
			}
			return "", fmt.Errorf("wait for %s: %w", binary, err)
		}
		return strings.TrimSpace(stdout.String()), nil

	case <-timer.C:
		_ = cmd.Process.Kill()
		<-done
		return "", nil

	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return "", ctx.Err()
	}
}
