package cmd

import (
	"github.com/spf13/cobra"
)

type flagsT struct {
	catalogue struct {
		ExiftoolPath    string
		FileExtension   string
		GlobPattern     string
		Overwrite       bool
		ContinueOnError bool
		DryRun          bool
	}
	configCreate struct {
		Overwrite bool
	}
	metadata struct {
		Format string
	}
	distribute struct {
		Target    string
		Overwrite bool
	}
	report struct {
		Width  int
		Height int
	}
	root struct {
		logLevel string
	}
}

var marlinFlags = flagsT{}

func addLogLevelFlag(cmd *cobra.Command) string {
	logLevel := "log-level"
	cmd.PersistentFlags().StringVar(&marlinFlags.root.logLevel, logLevel, "info",
		"The logging level: debug, info or none")
	return logLevel
}

func addExiftoolFlag(cmd *cobra.Command) string {
	exiftool := "exiftool"
	cmd.Flags().StringVar(&marlinFlags.catalogue.ExiftoolPath, exiftool, "",
		"Path to the exiftool executable. Defaults to exiftool on the search path.")
	return exiftool
}

func addExtensionFlag(cmd *cobra.Command) string {
	extension := "extension"
	cmd.Flags().StringVar(&marlinFlags.catalogue.FileExtension, extension, "JPG",
		"File extension to catalogue, without leading dot")
	return extension
}

func addGlobFlag(cmd *cobra.Command) string {
	glob := "glob"
	cmd.Flags().StringVar(&marlinFlags.catalogue.GlobPattern, glob, "**",
		"Glob pattern selecting directories under the source path")
	return glob
}

func addCatalogueOverwriteFlag(cmd *cobra.Command) string {
	overwrite := "overwrite"
	cmd.Flags().BoolVar(&marlinFlags.catalogue.Overwrite, overwrite, false,
		"Regenerate sidecar files that already exist")
	return overwrite
}

func addContinueOnErrorFlag(cmd *cobra.Command) string {
	continueOnError := "continue-on-error"
	cmd.Flags().BoolVar(&marlinFlags.catalogue.ContinueOnError, continueOnError, false,
		"Keep cataloguing remaining directories when the extractor fails on one")
	return continueOnError
}

func addDryRunFlag(cmd *cobra.Command) string {
	dryRun := "dry-run"
	cmd.Flags().BoolVar(&marlinFlags.catalogue.DryRun, dryRun, false,
		"List the planned extractor invocations without executing them")
	return dryRun
}

func addConfigOverwriteFlag(cmd *cobra.Command) string {
	overwrite := "overwrite"
	cmd.Flags().BoolVar(&marlinFlags.configCreate.Overwrite, overwrite, false,
		"Overwrite an existing config file")
	return overwrite
}

func addFormatFlag(cmd *cobra.Command) string {
	format := "format"
	cmd.Flags().StringVar(&marlinFlags.metadata.Format, format, "",
		"Output serialization format: json or yaml. Defaults to the output file extension.")
	return format
}

func addTargetFlag(cmd *cobra.Command) string {
	target := "target"
	cmd.Flags().StringVar(&marlinFlags.distribute.Target, target, "",
		"Distribution target: a directory path or s3://<bucket>/<prefix>")
	return target
}

func addDistributeOverwriteFlag(cmd *cobra.Command) string {
	overwrite := "overwrite"
	cmd.Flags().BoolVar(&marlinFlags.distribute.Overwrite, overwrite, false,
		"Upload files already present on the target")
	return overwrite
}

func addMapSizeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&marlinFlags.report.Width, "width", 800, "Map width in pixels")
	cmd.Flags().IntVar(&marlinFlags.report.Height, "height", 600, "Map height in pixels")
}
