package storage_test

import (
	"context"
	"testing"

	"github.com/oceanbound/marlin/pkg/storage"
	"github.com/oceanbound/marlin/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datasetFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "dataset/ifdo.yaml", []byte("image-set-name: s\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "dataset/images/a.jpg", []byte("aaa"), 0644))
	require.NoError(t, afero.WriteFile(fs, "dataset/images/.exif_jpg.json", []byte("[]"), 0644))
	return fs
}

func TestPushUploadsTree(t *testing.T) {
	fs := datasetFs(t)
	store := localfs.New(fs, "target")

	summary, err := storage.Push(context.Background(), fs, "dataset", store, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Uploaded)
	assert.Equal(t, 0, summary.Skipped)

	keys, err := store.Keys(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ifdo.yaml", "images/.exif_jpg.json", "images/a.jpg"}, keys)

	rdr, err := store.Get(context.Background(), "images/a.jpg")
	require.NoError(t, err)
	defer rdr.Close()
	buf := make([]byte, 3)
	_, err = rdr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "aaa", string(buf))
}

func TestPushIdempotent(t *testing.T) {
	fs := datasetFs(t)
	store := localfs.New(fs, "target")

	_, err := storage.Push(context.Background(), fs, "dataset", store, false, nil)
	require.NoError(t, err)

	summary, err := storage.Push(context.Background(), fs, "dataset", store, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Uploaded)
	assert.Equal(t, 3, summary.Skipped)

	// overwrite pushes everything again
	summary, err = storage.Push(context.Background(), fs, "dataset", store, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Uploaded)
}

func TestLocalfsGetMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := localfs.New(fs, "target")
	_, err := store.Get(context.Background(), "nope")
	assert.Equal(t, storage.ErrNotFound, err)
}
