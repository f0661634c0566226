// Package scan implements the directory-tree cataloguing core: it finds the
// leaf directories of a survey tree that hold target media files and drives
// idempotent, overwrite-aware generation of EXIF sidecar files through an
// external extractor process.
package scan

// Request captures one cataloguing run. It is built once from command-line
// input and never mutated afterwards.
type Request struct {
	// SourceRoot is the root of the survey tree. It must be an existing
	// directory, verified by the caller before scanning starts.
	SourceRoot string

	// GlobPattern selects directories under SourceRoot. Recursive
	// wildcards (doublestar) are supported.
	GlobPattern string

	// FileExtension is the target media extension, without a leading dot.
	// Case is preserved as supplied.
	FileExtension string

	// Overwrite regenerates sidecars that already exist.
	Overwrite bool
}

// MatchSet is an ordered sequence of candidate directories, as paths
// relative to the request's source root, sorted lexically.
type MatchSet []string
