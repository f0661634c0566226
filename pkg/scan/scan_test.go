package scan

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/oceanbound/marlin/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	fs          afero.Fs
	invocations []Invocation
	failOn      string // directory suffix triggering a failure
}

func (f *fakeRunner) Run(_ context.Context, inv Invocation) error {
	f.invocations = append(f.invocations, inv)
	if f.failOn != "" && filepath.Base(inv.Directory) == f.failOn {
		return errors.ErrExtractorFailed.Wrap(errors.New("exit status 1"))
	}
	return afero.WriteFile(f.fs, inv.OutputPath, []byte(`[]`), 0644)
}

func testTree(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("root/A", 0755))
	require.NoError(t, fs.MkdirAll("root/B", 0755))
	require.NoError(t, afero.WriteFile(fs, "root/A/img.JPG", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fs, "root/B/note.txt", []byte("x"), 0644))
	return fs
}

func TestFindCandidatesTwoCaseProbe(t *testing.T) {
	fs := testTree(t)
	req := Request{SourceRoot: "root", GlobPattern: "*/", FileExtension: "jpg"}

	matches, err := FindCandidates(fs, req)
	require.NoError(t, err)
	assert.Equal(t, MatchSet{"A"}, matches)

	// lowercase files found via an uppercase request
	require.NoError(t, afero.WriteFile(fs, "root/B/pic.jpg", []byte("x"), 0644))
	matches, err = FindCandidates(fs, Request{SourceRoot: "root", GlobPattern: "*/", FileExtension: "JPG"})
	require.NoError(t, err)
	assert.Equal(t, MatchSet{"A", "B"}, matches)
}

func TestFindCandidatesRecursive(t *testing.T) {
	fs := testTree(t)
	require.NoError(t, fs.MkdirAll("root/A/deep/deeper", 0755))
	require.NoError(t, afero.WriteFile(fs, "root/A/deep/deeper/frame.jpg", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fs, "root/top.JPG", []byte("x"), 0644))

	matches, err := FindCandidates(fs, Request{SourceRoot: "root", GlobPattern: "**", FileExtension: "jpg"})
	require.NoError(t, err)
	assert.Equal(t, MatchSet{".", "A", "A/deep/deeper"}, matches)
}

func TestFindCandidatesEmptyPatternMatchesRoot(t *testing.T) {
	fs := testTree(t)
	require.NoError(t, afero.WriteFile(fs, "root/top.JPG", []byte("x"), 0644))

	matches, err := FindCandidates(fs, Request{SourceRoot: "root", GlobPattern: "", FileExtension: "jpg"})
	require.NoError(t, err)
	assert.Equal(t, MatchSet{"."}, matches)
}

func TestFindCandidatesNoMatches(t *testing.T) {
	fs := testTree(t)
	matches, err := FindCandidates(fs, Request{SourceRoot: "root", GlobPattern: "*/", FileExtension: "png"})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "A", ".exif_jpg.json"), SidecarPath(filepath.Join("root", "A"), "jpg"))
}

func TestBuildInvocation(t *testing.T) {
	inv := BuildInvocation("exiftool", "JPG", "root/A", "root/A/.exif_JPG.json")
	assert.Equal(t, []string{"-api", "largefile=1", "-json", "-ext", "JPG", "root/A"}, inv.Args)
	assert.Equal(t, "root/A/.exif_JPG.json", inv.OutputPath)

	spaced := BuildInvocation("/opt/exif tool/exiftool", "jpg", "root/my survey", "root/my survey/.exif_jpg.json")
	assert.Contains(t, spaced.String(), `"/opt/exif tool/exiftool"`)
	assert.Contains(t, spaced.String(), `"root/my survey"`)
}

func TestCatalogueGeneratesOncePerDirectory(t *testing.T) {
	fs := testTree(t)
	req := Request{SourceRoot: "root", GlobPattern: "*/", FileExtension: "jpg"}
	matches, err := FindCandidates(fs, req)
	require.NoError(t, err)

	runner := &fakeRunner{fs: fs}
	c := NewCataloguer(fs, runner)

	summary, err := c.Catalogue(context.Background(), req, matches, "exiftool")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 0, summary.Skipped)
	require.Len(t, runner.invocations, 1)
	assert.Equal(t, filepath.Join("root", "A"), runner.invocations[0].Directory)

	ok, err := afero.Exists(fs, filepath.Join("root", "A", ".exif_jpg.json"))
	require.NoError(t, err)
	assert.True(t, ok)

	// second run with overwrite off performs zero invocations
	summary, err = c.Catalogue(context.Background(), req, matches, "exiftool")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Generated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, runner.invocations, 1)
}

func TestCatalogueOverwrite(t *testing.T) {
	fs := testTree(t)
	require.NoError(t, afero.WriteFile(fs, "root/A/.exif_jpg.json", []byte(`[]`), 0644))
	req := Request{SourceRoot: "root", GlobPattern: "*/", FileExtension: "jpg", Overwrite: true}
	matches, err := FindCandidates(fs, req)
	require.NoError(t, err)

	runner := &fakeRunner{fs: fs}
	summary, err := NewCataloguer(fs, runner).Catalogue(context.Background(), req, matches, "exiftool")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Generated)
	assert.Len(t, runner.invocations, 1)
}

func TestCatalogueRechecksDirectoryAtRunTime(t *testing.T) {
	fs := testTree(t)
	req := Request{SourceRoot: "root", GlobPattern: "*/", FileExtension: "jpg"}
	matches, err := FindCandidates(fs, req)
	require.NoError(t, err)

	// the matched file disappears between matching and cataloguing
	require.NoError(t, fs.Remove("root/A/img.JPG"))

	runner := &fakeRunner{fs: fs}
	summary, err := NewCataloguer(fs, runner).Catalogue(context.Background(), req, matches, "exiftool")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Generated)
	assert.Empty(t, runner.invocations)
}

func TestCatalogueFailFast(t *testing.T) {
	fs := testTree(t)
	require.NoError(t, fs.MkdirAll("root/C", 0755))
	require.NoError(t, afero.WriteFile(fs, "root/C/other.jpg", []byte("x"), 0644))
	req := Request{SourceRoot: "root", GlobPattern: "*/", FileExtension: "jpg"}
	matches, err := FindCandidates(fs, req)
	require.NoError(t, err)
	require.Equal(t, MatchSet{"A", "C"}, matches)

	runner := &fakeRunner{fs: fs, failOn: "A"}
	summary, err := NewCataloguer(fs, runner).Catalogue(context.Background(), req, matches, "exiftool")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrExtractorFailed))
	assert.Equal(t, 0, summary.Generated)
	// run stops immediately: C is never attempted
	assert.Len(t, runner.invocations, 1)
}

func TestCatalogueContinueOnError(t *testing.T) {
	fs := testTree(t)
	require.NoError(t, fs.MkdirAll("root/C", 0755))
	require.NoError(t, afero.WriteFile(fs, "root/C/other.jpg", []byte("x"), 0644))
	req := Request{SourceRoot: "root", GlobPattern: "*/", FileExtension: "jpg"}
	matches, err := FindCandidates(fs, req)
	require.NoError(t, err)

	runner := &fakeRunner{fs: fs, failOn: "A"}
	summary, err := NewCataloguer(fs, runner, ContinueOnError(true)).Catalogue(context.Background(), req, matches, "exiftool")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Generated)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, filepath.Join("root", "A"), summary.Failures[0].Directory)
	assert.Len(t, runner.invocations, 2)
}
