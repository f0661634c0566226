package scan

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Cataloguer walks a MatchSet and generates EXIF sidecars, one synchronous
// extractor process per directory.
type Cataloguer struct {
	fs              afero.Fs
	runner          Runner
	l               *zap.Logger
	continueOnError bool
}

// CataloguerOption alters the behavior of a Cataloguer
type CataloguerOption func(*Cataloguer)

// WithLogger sets a logger on the cataloguer
func WithLogger(l *zap.Logger) CataloguerOption {
	return func(c *Cataloguer) {
		if l != nil {
			c.l = l
		}
	}
}

// ContinueOnError collects per-directory extractor failures instead of
// aborting the whole run on the first one.
func ContinueOnError(enabled bool) CataloguerOption {
	return func(c *Cataloguer) {
		c.continueOnError = enabled
	}
}

// NewCataloguer builds a Cataloguer over fs, executing invocations with runner.
func NewCataloguer(fs afero.Fs, runner Runner, opts ...CataloguerOption) *Cataloguer {
	c := &Cataloguer{
		fs:     fs,
		runner: runner,
		l:      zap.NewNop(),
	}
	for _, apply := range opts {
		apply(c)
	}
	return c
}

// DirectoryError records an extractor failure for a single directory.
type DirectoryError struct {
	Directory string
	Err       error
}

func (d DirectoryError) Error() string {
	return d.Directory + ": " + d.Err.Error()
}

// Summary reports the outcome of one cataloguing run.
type Summary struct {
	// Generated counts directories for which a sidecar was (re)written.
	Generated int
	// Skipped counts directories left untouched because their sidecar
	// already existed and overwrite was off.
	Skipped int
	// Failures holds per-directory errors collected under ContinueOnError.
	Failures []DirectoryError
}

// Catalogue processes candidates in order. For each directory it recomputes
// the extension probe, then invokes the extractor iff overwrite is set or the
// sidecar is absent. The default policy aborts on the first extractor
// failure; ContinueOnError records failures in the summary instead.
func (c *Cataloguer) Catalogue(ctx context.Context, req Request, candidates MatchSet, extractorPath string) (Summary, error) {
	var summary Summary
	for _, rel := range candidates {
		dir := filepath.Join(req.SourceRoot, rel)

		// re-checked at catalogue time: the tree may have changed since matching
		if !hasFileWithExtension(c.fs, dir, req.FileExtension) {
			c.l.Debug("no matching files at catalogue time, skipping",
				zap.String("dir", dir), zap.String("ext", req.FileExtension))
			continue
		}

		sidecar := SidecarPath(dir, req.FileExtension)
		exists, err := afero.Exists(c.fs, sidecar)
		if err != nil {
			return summary, err
		}
		if !req.Overwrite && exists {
			c.l.Debug("sidecar present, skipping", zap.String("sidecar", sidecar))
			summary.Skipped++
			continue
		}

		inv := BuildInvocation(extractorPath, req.FileExtension, dir, sidecar)
		c.l.Info("cataloguing", zap.String("dir", dir), zap.String("sidecar", sidecar))
		if err := c.runner.Run(ctx, inv); err != nil {
			if c.continueOnError {
				c.l.Warn("extractor failed, continuing",
					zap.String("dir", dir), zap.Error(err))
				summary.Failures = append(summary.Failures, DirectoryError{Directory: dir, Err: err})
				continue
			}
			return summary, err
		}
		summary.Generated++
	}
	return summary, nil
}
