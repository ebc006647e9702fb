// Package shell runs external processes for the stager and VCS adapters.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// stderrTail is how many bytes of standard error are kept for error reports.
const stderrTail = 4096

// Runner implements ports.CommandRunner using os/exec.
// At most limit processes run at the same time.
type Runner struct {
	logger ports.Logger
	tracer ports.Tracer
	sem    *semaphore.Weighted
}

var _ ports.CommandRunner = (*Runner)(nil)

// NewRunner creates a Runner. A limit below one is treated as one.
func NewRunner(logger ports.Logger, tracer ports.Tracer, limit int) *Runner {
	if limit < 1 {
		limit = 1
	}
	return &Runner{
		logger: logger,
		tracer: tracer,
		sem:    semaphore.NewWeighted(int64(limit)),
	}
}

// Run executes cmd and returns its standard output.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) ([]byte, error) {
	if cmd.Name == "" {
		return nil, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, zerr.With(domain.Categorize(domain.ErrCommandFailed, err), "command", cmd.String())
	}
	defer r.sem.Release(1)

	ctx, span := r.tracer.Start(ctx, "exec "+cmd.Name, ports.WithAttribute("args", cmd.Args), ports.WithAttribute("dir", cmd.Dir))
	defer span.End()

	r.logger.Debug("exec " + cmd.String())

	env := resolveEnvironment(os.Environ(), cmd.Env)
	executable := cmd.Name
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // commands come from configuration
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = env

	var stdout bytes.Buffer
	stderr := &tailBuffer{limit: stderrTail}
	stdoutLog := &logWriter{logger: r.logger}
	stderrLog := &logWriter{logger: r.logger}
	c.Stdout = io.MultiWriter(&stdout, stdoutLog, span)
	c.Stderr = io.MultiWriter(stderr, stderrLog, span)

	err := c.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		span.RecordError(err)

		wrapped := zerr.With(domain.Categorize(domain.ErrCommandFailed, err), "command", cmd.String())
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if tail := strings.TrimSpace(stderr.String()); tail != "" {
			wrapped = zerr.With(wrapped, "stderr", tail)
		}
		return stdout.Bytes(), wrapped
	}

	return stdout.Bytes(), nil
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.limit; over > 0 {
		b.buf = b.buf[over:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}

// logWriter forwards complete lines to the debug log.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) emit(line []byte) {
	if s := strings.TrimRight(string(line), "\r"); s != "" {
		w.logger.Debug(s)
	}
}

// resolveEnvironment layers extra KEY=VALUE entries over the system environment.
func resolveEnvironment(sysEnv, extra []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(extra))
	order := make([]string, 0, len(sysEnv)+len(extra))

	for _, list := range [][]string{sysEnv, extra} {
		for _, entry := range list {
			k, v, ok := strings.Cut(entry, "=")
			if !ok {
				continue
			}
			if _, seen := envMap[k]; !seen {
				order = append(order, k)
			}
			envMap[k] = v
		}
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
