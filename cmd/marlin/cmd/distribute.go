package cmd

import (
	"strings"

	"github.com/oceanbound/marlin/pkg/errors"
	"github.com/oceanbound/marlin/pkg/storage"
	"github.com/oceanbound/marlin/pkg/storage/localfs"
	s3store "github.com/oceanbound/marlin/pkg/storage/s3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// distributeFs is patched during test
var distributeFs = afero.NewOsFs()

var distributeCmd = &cobra.Command{
	Use:   "distribute <dataset-path>",
	Short: "Distribute a packaged dataset to a target",
	Long: `Upload a packaged dataset tree to a distribution target: a local directory
or an S3 location given as s3://<bucket>/<prefix>. Files already present on
the target are skipped unless --overwrite is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		datasetPath := args[0]
		ok, err := afero.DirExists(distributeFs, datasetPath)
		if err != nil || !ok {
			errorPanel("The dataset path %s is not a valid directory path", datasetPath)
			osExit(2)
			return
		}

		target := marlinFlags.distribute.Target
		if target == "" {
			target = config.Target
		}
		store, err := parseTarget(target)
		if err != nil {
			errorPanel("Invalid distribution target %q: pass --target <dir> or --target s3://<bucket>/<prefix>", target)
			osExit(2)
			return
		}

		logger := mustGetLogger()
		defer func() { _ = logger.Sync() }()

		summary, err := storage.Push(cmd.Context(), distributeFs, datasetPath, store, marlinFlags.distribute.Overwrite, logger)
		if err != nil {
			wrapFatalln("distributing to "+store.String(), err)
			return
		}
		infoLogger.Printf("Distributed %s to %s: %d uploaded, %d already present",
			datasetPath, store.String(), summary.Uploaded, summary.Skipped)
	},
}

// parseTarget builds the store for a target spec: s3://bucket/prefix or a
// local directory path.
func parseTarget(target string) (storage.Store, error) {
	if target == "" {
		return nil, errors.ErrInvalidTarget
	}
	if strings.HasPrefix(target, "s3://") {
		rest := strings.TrimPrefix(target, "s3://")
		bucket, prefix, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return nil, errors.ErrInvalidTarget
		}
		return s3store.New(s3store.Bucket(bucket), s3store.Prefix(prefix)), nil
	}
	return localfs.New(distributeFs, target), nil
}

func init() {
	addTargetFlag(distributeCmd)
	addDistributeOverwriteFlag(distributeCmd)
	rootCmd.AddCommand(distributeCmd)
}
