// Package render runs the external video renderer and schedules render tasks.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/weatherrecap/weatherrecap/internal/constants"
)

var ErrEmptyCommand = errors.New("render command is empty")

// Result is the captured output of one render run.
type Result struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes the renderer once.
type Runner interface {
	Run(ctx context.Context) (*Result, error)
}

// ExitError reports a renderer that started but did not succeed.
type ExitError struct {
	Err    error
	Result *Result
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("render command failed: %v", e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExecRunner runs a shell-free command line in a working directory.
type ExecRunner struct {
	Dir     string
	Command string
}

func NewExecRunner(dir, command string) *ExecRunner {
	return &ExecRunner{Dir: dir, Command: command}
}

func (r *ExecRunner) Run(ctx context.Context) (*Result, error) {
	args := strings.Fields(r.Command)
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.Dir

	stdout := newCappedBuffer(constants.MaxRenderOutputBytes)
	stderr := newCappedBuffer(constants.MaxRenderOutputBytes)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		return res, &ExitError{Err: err, Result: res}
	}
	return res, nil
}

// cappedBuffer keeps the last max bytes written to it.
type cappedBuffer struct {
	buf bytes.Buffer
	max int
	mu  sync.Mutex
}

func newCappedBuffer(max int) *cappedBuffer {
	return &cappedBuffer{max: max}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(p)
	if len(p) >= b.max {
		b.buf.Reset()
		b.buf.Write(p[len(p)-b.max:])
		return n, nil
	}
	if over := b.buf.Len() + len(p) - b.max; over > 0 {
		b.buf.Next(over)
	}
	b.buf.Write(p)
	return n, nil
}

func (b *cappedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
