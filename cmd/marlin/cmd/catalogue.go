package cmd

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/oceanbound/marlin/pkg/scan"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// patched during test
	catalogueFs = afero.NewOsFs()
	newRunner   = scan.NewExecRunner
	lookPath    = exec.LookPath
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue <source-path>",
	Short: "Create an EXIF catalogue of survey media",
	Long: `Create an EXIF catalogue of the media files stored under a survey tree.

Every directory matching the glob pattern and holding at least one file with
the target extension gets a sidecar file .exif_<extension>.json, produced by
running exiftool over the directory. Sidecars that already exist are left
untouched unless --overwrite is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sourcePath := args[0]

		ok, err := afero.DirExists(catalogueFs, sourcePath)
		if err != nil || !ok {
			errorPanel("The source path %s is not a valid directory path", sourcePath)
			osExit(2)
			return
		}
		extractor, err := resolveExtractor(exiftoolPath())
		if err != nil {
			errorPanel("Cannot resolve the exiftool executable %s: install exiftool or point --exiftool at it", exiftoolPath())
			osExit(2)
			return
		}

		req := scan.Request{
			SourceRoot:    sourcePath,
			GlobPattern:   marlinFlags.catalogue.GlobPattern,
			FileExtension: strings.TrimPrefix(marlinFlags.catalogue.FileExtension, "."),
			Overwrite:     marlinFlags.catalogue.Overwrite,
		}
		logger := mustGetLogger()
		defer func() { _ = logger.Sync() }()

		infoLogger.Println("Preparing...")
		candidates, err := scan.FindCandidates(catalogueFs, req)
		if err != nil {
			wrapFatalln("scanning for candidate directories", err)
			return
		}
		if len(candidates) == 0 {
			infoLogger.Println("No directories to catalogue.")
			return
		}

		if marlinFlags.catalogue.DryRun {
			printPlan(req, candidates, extractor)
			return
		}

		cataloguer := scan.NewCataloguer(catalogueFs, newRunner(catalogueFs),
			scan.WithLogger(logger),
			scan.ContinueOnError(marlinFlags.catalogue.ContinueOnError),
		)
		infoLogger.Println("Cataloguing...")
		summary, err := cataloguer.Catalogue(cmd.Context(), req, candidates, extractor)
		if err != nil {
			wrapFatalln("cataloguing aborted", err)
			return
		}
		infoLogger.Printf("Catalogued %d directories (%d sidecars generated, %d up to date).",
			len(candidates), summary.Generated, summary.Skipped)
		if len(summary.Failures) > 0 {
			for _, failure := range summary.Failures {
				logger.Error("extractor failed", zap.String("dir", failure.Directory), zap.Error(failure.Err))
			}
			wrapFatalWithCodef(1, "%d directories failed", len(summary.Failures))
		}
	},
}

func exiftoolPath() string {
	if marlinFlags.catalogue.ExiftoolPath != "" {
		return marlinFlags.catalogue.ExiftoolPath
	}
	return config.Exiftool
}

// resolveExtractor locates the exiftool executable: explicit paths are
// checked on the filesystem, bare names on the search path.
func resolveExtractor(path string) (string, error) {
	if strings.ContainsRune(path, filepath.Separator) || strings.ContainsRune(path, '/') {
		if ok, err := afero.Exists(catalogueFs, path); err == nil && ok {
			return path, nil
		}
		return "", errExtractorNotFound(path)
	}
	return lookPath(path)
}

func errExtractorNotFound(path string) error {
	return &exec.Error{Name: path, Err: exec.ErrNotFound}
}

func printPlan(req scan.Request, candidates scan.MatchSet, extractor string) {
	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("DIRECTORY", "SIDECAR", "ACTION")
	for _, rel := range candidates {
		dir := filepath.Join(req.SourceRoot, rel)
		sidecar := scan.SidecarPath(dir, req.FileExtension)
		action := "generate"
		if ok, _ := afero.Exists(catalogueFs, sidecar); ok {
			if req.Overwrite {
				action = "overwrite"
			} else {
				action = "skip"
			}
		}
		table.AddRow(dir, sidecar, action)
	}
	infoLogger.Println(table)
	infoLogger.Printf("%d directories matched. Example invocation:", len(candidates))
	if len(candidates) > 0 {
		dir := filepath.Join(req.SourceRoot, candidates[0])
		infoLogger.Println("  " + scan.BuildInvocation(extractor, req.FileExtension, dir, scan.SidecarPath(dir, req.FileExtension)).String())
	}
}

func init() {
	addExiftoolFlag(catalogueCmd)
	addExtensionFlag(catalogueCmd)
	addGlobFlag(catalogueCmd)
	addCatalogueOverwriteFlag(catalogueCmd)
	addContinueOnErrorFlag(catalogueCmd)
	addDryRunFlag(catalogueCmd)
	rootCmd.AddCommand(catalogueCmd)
}
