package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/aretw0/awsh/pkg/domain"
)

// Environment variables exported to every process.
const (
	EnvActionPath = "AWSH_ACTION"
	EnvActionArgs = "AWSH_ARGS"
)

// Runner executes allow-listed local processes.
// Only commands registered up front can run; operator input only ever
// becomes argv of a registered command, never a shell line.
type Runner struct {
	registry map[string]ProcessConfig
	baseDir  string
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithRegistry populates the allow-list from a loaded config.
func WithRegistry(procs map[string]ProcessConfig) RunnerOption {
	return func(r *Runner) {
		for name, p := range procs {
			p.Name = name
			r.Register(p)
		}
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// NewRunner creates a new Process Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[string]ProcessConfig),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trusted command to the allow-list.
func (r *Runner) Register(p ProcessConfig) {
	r.registry[p.Name] = p
}

// Registered reports whether name is on the allow-list.
func (r *Runner) Registered(name string) bool {
	_, ok := r.registry[name]
	return ok
}

// Handler binds the named process to the ActionHandler contract.
// The lookup happens at invocation time.
func (r *Runner) Handler(name string) domain.ActionHandler {
	return domain.ActionFunc(func(ctx context.Context, call domain.ActionCall) error {
		return r.Execute(ctx, name, call)
	})
}

// Execute runs the named process with the operator's trailing arguments
// appended to its configured args. Output streams to the call writers.
func (r *Runner) Execute(ctx context.Context, name string, call domain.ActionCall) error {
	proc, ok := r.registry[name]
	if !ok {
		return fmt.Errorf("process not registered: %s", name)
	}

	var extra []string
	if len(call.Args) > 1 {
		extra = call.Args[1:]
	}

	cmd := r.command(ctx, proc, extra)
	cmd.Env = append(cmd.Env,
		EnvActionPath+"="+strings.Join(call.Path, domain.PathSeparator),
		EnvActionArgs+"="+strings.Join(extra, " "),
	)
	cmd.Stdout = writerOrDiscard(call.Stdout)

	var stderr bytes.Buffer
	if call.Stderr != nil {
		cmd.Stderr = io.MultiWriter(call.Stderr, &stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("execution failed: %w%s", err, stderrSuffix(stderr.String()))
	}
	return nil
}

// Capture runs the named process and returns its stdout.
func (r *Runner) Capture(ctx context.Context, name string, extra ...string) ([]byte, error) {
	proc, ok := r.registry[name]
	if !ok {
		return nil, fmt.Errorf("process not registered: %s", name)
	}

	cmd := r.command(ctx, proc, extra)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("execution failed: %w%s", err, stderrSuffix(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func (r *Runner) command(ctx context.Context, proc ProcessConfig, extra []string) *exec.Cmd {
	args := make([]string, 0, len(proc.Args)+len(extra))
	args = append(args, proc.Args...)
	args = append(args, extra...)

	cmd := exec.CommandContext(ctx, proc.Command, args...)
	cmd.Dir = r.baseDir
	cmd.Env = cmd.Environ()
	for k, v := range proc.Environment {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	return cmd
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

func stderrSuffix(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return ". Stderr: " + s
}
