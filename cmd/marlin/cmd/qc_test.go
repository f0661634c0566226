package cmd

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const qcSidecar = `[
  {"SourceFile": "root/A/img_0001.JPG", "DateTimeOriginal": "2023:04:12 08:31:05"},
  {"SourceFile": "root/A/img_0002.JPG", "DateTimeOriginal": "2023:04:14 17:02:44"}
]`

func TestCollectStats(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "root/A/img_0001.JPG", []byte("xxxx"), 0644))
	require.NoError(t, afero.WriteFile(fs, "root/A/img_0002.JPG", []byte("xx"), 0644))
	require.NoError(t, afero.WriteFile(fs, "root/A/.exif_JPG.json", []byte(qcSidecar), 0644))
	require.NoError(t, afero.WriteFile(fs, "root/B/dive.log", []byte("x"), 0644))

	stats, first, last, err := collectStats(fs, "root")
	require.NoError(t, err)

	assert.Equal(t, 2, stats["jpg"].files)
	assert.Equal(t, int64(6), stats["jpg"].bytes)
	assert.Equal(t, 1, stats["log"].files)
	assert.Equal(t, 1, stats["json"].files)

	// capture window comes from the sidecar timestamps: the fake JPGs carry
	// no EXIF headers of their own
	assert.Equal(t, time.Date(2023, 4, 12, 8, 31, 5, 0, time.UTC), first)
	assert.Equal(t, time.Date(2023, 4, 14, 17, 2, 44, 0, time.UTC), last)
}

func TestIsSidecar(t *testing.T) {
	assert.True(t, isSidecar("root/A/.exif_jpg.json"))
	assert.False(t, isSidecar("root/A/exif.json"))
	assert.False(t, isSidecar("root/A/img.JPG"))
}
