package cmd

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/gosuri/uitable"
	"github.com/oceanbound/marlin/pkg/exif"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// qcProbeLimit bounds how many images are opened for the capture-time range.
const qcProbeLimit = 25

// qcFs is patched during test
var qcFs = afero.NewOsFs()

type extStat struct {
	files int
	bytes int64
}

var qcCmd = &cobra.Command{
	Use:   "qc <source-path>",
	Short: "Run quality control over a survey tree",
	Long: `Run quality control over the files of a survey tree: per-extension file
counts and sizes, plus the capture-time window probed from the EXIF headers
of a sample of images.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sourcePath := args[0]
		ok, err := afero.DirExists(qcFs, sourcePath)
		if err != nil || !ok {
			errorPanel("The source path %s is not a valid directory path", sourcePath)
			osExit(2)
			return
		}

		stats, first, last, err := collectStats(qcFs, sourcePath)
		if err != nil {
			wrapFatalln("walking "+sourcePath, err)
			return
		}

		extensions := make([]string, 0, len(stats))
		for ext := range stats {
			extensions = append(extensions, ext)
		}
		sort.Strings(extensions)

		table := uitable.New()
		table.AddRow("EXTENSION", "FILES", "SIZE")
		for _, ext := range extensions {
			table.AddRow(ext, stats[ext].files, units.HumanSize(float64(stats[ext].bytes)))
		}
		infoLogger.Println(table)
		if !first.IsZero() {
			infoLogger.Printf("Capture window: %s to %s",
				first.Format(time.RFC3339), last.Format(time.RFC3339))
		}
	},
}

func collectStats(fs afero.Fs, root string) (map[string]extStat, time.Time, time.Time, error) {
	stats := map[string]extStat{}
	var first, last time.Time
	probed := 0

	observe := func(ts time.Time) {
		if first.IsZero() || ts.Before(first) {
			first = ts
		}
		if ts.After(last) {
			last = ts
		}
	}

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if ext == "" {
			ext = "(none)"
		}
		s := stats[ext]
		s.files++
		s.bytes += info.Size()
		stats[ext] = s

		// catalogued directories already carry extractor timestamps
		if isSidecar(path) {
			if records, err := exif.LoadSidecar(fs, path); err == nil {
				for _, record := range records {
					if ts, ok := record.CaptureTime(); ok {
						observe(ts)
					}
				}
			}
			return nil
		}

		if probed < qcProbeLimit && (ext == "jpg" || ext == "jpeg" || ext == "tif" || ext == "tiff") {
			probed++
			if ts, ok := probeCaptureTime(fs, path); ok {
				observe(ts)
			}
		}
		return nil
	})
	return stats, first, last, err
}

func isSidecar(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".exif_") && strings.HasSuffix(base, ".json")
}

func probeCaptureTime(fs afero.Fs, path string) (time.Time, bool) {
	f, err := fs.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()
	ts, err := exif.ProbeTime(f)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func init() {
	rootCmd.AddCommand(qcCmd)
}
