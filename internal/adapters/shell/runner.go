// Package shell runs commands on the local machine and, over ssh, on remotes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/reso/internal/core/domain"
	"go.trai.ch/reso/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner starts processes under a pseudo-terminal, so that tools flush their
// output line by line, and collects stdout and stderr merged.
type Runner struct {
	logger  ports.Logger
	timeout time.Duration
}

// NewRunner creates a Runner with the default command timeout.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger, timeout: domain.DefaultCommandTimeout}
}

// WithTimeout overrides the wall-clock budget of every command.
func (r *Runner) WithTimeout(d time.Duration) *Runner {
	r.timeout = d
	return r
}

// Run executes argv and waits for it. A non-zero exit is reported in the
// result; the error is set only when the process could not run or timed out.
func (r *Runner) Run(ctx context.Context, argv []string) (domain.CommandResult, error) {
	if len(argv) == 0 {
		return domain.CommandResult{}, nil
	}

	echo := domain.Echoed(ctx)
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // commands are built by reso
	cmd.Env = os.Environ()

	r.logger.Debug("Running command '" + Join(argv...) + "'...")
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return domain.CommandResult{}, zerr.With(zerr.Wrap(err, "failed to start command"), "command", argv[0])
	}

	var out bytes.Buffer
	lw := &logWriter{logger: r.logger, echo: echo}
	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = lw.Close() }()
		// The pty merges stdout and stderr.
		_, _ = io.Copy(io.MultiWriter(&out, lw), ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone

	res := domain.CommandResult{Output: strings.ReplaceAll(out.String(), "\r\n", "\n")}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return res, &domain.CommandError{Command: Join(argv...), ExitCode: -1, Output: res.Output, TimedOut: true}
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, zerr.With(zerr.Wrap(waitErr, "command failed"), "command", argv[0])
	}

	r.logger.Debug("Command '" + argv[0] + "' finished with exit code " + strconv.Itoa(res.ExitCode))
	return res, nil
}

// logWriter forwards complete lines to the logger. Echoed commands show the
// lines between the markers at info level.
type logWriter struct {
	logger ports.Logger
	echo   bool
	inside bool
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	msg := strings.TrimSuffix(string(line), "\r")

	if !w.echo {
		w.logger.Debug(msg)
		return
	}
	switch {
	case strings.HasPrefix(msg, BeginMarker):
		w.inside = true
	case strings.HasPrefix(msg, EndMarker):
		w.inside = false
	case w.inside:
		w.logger.Info(msg)
	default:
		w.logger.Debug(msg)
	}
}
