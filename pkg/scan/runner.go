package scan

import (
	"context"
	"os/exec"
	"strings"

	"github.com/oceanbound/marlin/pkg/errors"
	"github.com/spf13/afero"
)

// Runner executes one extractor invocation to completion.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// NewExecRunner returns a Runner backed by os/exec. The sidecar output file
// is created through fs so tests and dry environments can redirect it.
func NewExecRunner(fs afero.Fs) Runner {
	return &execRunner{fs: fs}
}

type execRunner struct {
	fs afero.Fs
}

func (r *execRunner) Run(ctx context.Context, inv Invocation) error {
	out, err := r.fs.Create(inv.OutputPath)
	if err != nil {
		return err
	}

	var stderr strings.Builder
	cmd := exec.CommandContext(ctx, inv.ExtractorPath, inv.Args...)
	cmd.Stdout = out
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	closeErr := out.Close()
	if runErr != nil {
		// do not leave a partial sidecar behind
		_ = r.fs.Remove(inv.OutputPath)
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return errors.ErrExtractorFailed.Wrap(errors.New(msg).Wrap(runErr))
		}
		return errors.ErrExtractorFailed.Wrap(runErr)
	}
	return closeErr
}
