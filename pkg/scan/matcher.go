package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// FindCandidates expands the request's glob pattern against its source root
// and keeps every matched directory holding at least one file with the target
// extension. Zero matches is a valid, empty result.
//
// The extension test is a two-case probe: a directory qualifies when it holds
// a file named *.<EXT> or *.<ext>. This is deliberately not a generalized
// case-insensitive match; it mirrors the sidecar layouts produced by earlier
// versions of the tool on case-sensitive filesystems.
func FindCandidates(fs afero.Fs, req Request) (MatchSet, error) {
	pattern := strings.TrimSuffix(filepath.ToSlash(req.GlobPattern), "/")
	if pattern == "" {
		pattern = "."
	}

	candidates := make(MatchSet, 0)
	err := afero.Walk(fs, req.SourceRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(req.SourceRoot, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			// the root itself matches a fully recursive or empty pattern
			if pattern != "**" && pattern != "." {
				return nil
			}
		} else if ok, merr := doublestar.Match(pattern, rel); merr != nil || !ok {
			return merr
		}
		if hasFileWithExtension(fs, path, req.FileExtension) {
			candidates = append(candidates, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(candidates)
	return candidates, nil
}

// hasFileWithExtension probes dir for at least one entry named *.<EXT> or
// *.<ext>, both literal cases.
func hasFileWithExtension(fs afero.Fs, dir, extension string) bool {
	for _, probe := range []string{strings.ToUpper(extension), strings.ToLower(extension)} {
		matches, err := afero.Glob(fs, filepath.Join(dir, "*."+probe))
		if err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}
