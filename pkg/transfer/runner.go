package transfer

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/kism/smart-rom-sync/pkg/logging"
)

// Output is what a command wrote
type Output struct {
	Stdout string
	Stderr string
}

// Runner runs an external command
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

// ExecRunner runs commands with os/exec. When Stdout or Stderr are set the
// command output is also streamed to them, so rsync progress stays visible.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, r.Stdout)
	cmd.Stderr = tee(&stderr, r.Stderr)

	err := cmd.Run()
	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
