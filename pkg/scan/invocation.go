package scan

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Invocation is the fully constructed extractor command for one candidate
// directory. It is built fresh per directory and never persisted.
type Invocation struct {
	// ExtractorPath locates the exiftool executable.
	ExtractorPath string
	// Args is the argument vector, excluding the executable itself.
	Args []string
	// Directory is the candidate directory being catalogued.
	Directory string
	// OutputPath receives the extractor's standard output.
	OutputPath string
}

// SidecarPath returns the on-disk identity of a directory's sidecar file:
// <dir>/.exif_<extension>.json.
func SidecarPath(dir, extension string) string {
	return filepath.Join(dir, ".exif_"+extension+".json")
}

// BuildInvocation constructs the extractor command for one directory:
// large-file-aware mode, JSON output, restricted to the supplied extension
// (case preserved), with stdout redirected to the sidecar path. Arguments are
// passed as a vector so paths with spaces need no quoting.
func BuildInvocation(extractorPath, fileExtension, directory, sidecarPath string) Invocation {
	return Invocation{
		ExtractorPath: extractorPath,
		Args:          []string{"-api", "largefile=1", "-json", "-ext", fileExtension, directory},
		Directory:     directory,
		OutputPath:    sidecarPath,
	}
}

// String renders the invocation the way a shell user would type it, for
// logging and dry runs.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+3)
	parts = append(parts, maybeQuote(i.ExtractorPath))
	for _, a := range i.Args {
		parts = append(parts, maybeQuote(a))
	}
	parts = append(parts, ">", maybeQuote(i.OutputPath))
	return strings.Join(parts, " ")
}

func maybeQuote(s string) string {
	if strings.ContainsAny(s, " \t'\"") {
		return strconv.Quote(s)
	}
	return s
}
