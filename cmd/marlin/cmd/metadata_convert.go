package cmd

import (
	"path/filepath"
	"strings"

	"github.com/oceanbound/marlin/pkg/metadata"
	"github.com/spf13/cobra"
)

var metadataConvertCmd = &cobra.Command{
	Use:   "convert <input-path> <output-path>",
	Short: "Convert a metadata document between YAML and JSON",
	Long: `Load a metadata document and save it again in the selected serialization
format. Without --format, the format is taken from the output file extension.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		inputPath, outputPath := args[0], args[1]

		tag := marlinFlags.metadata.Format
		if tag == "" {
			tag = strings.TrimPrefix(filepath.Ext(outputPath), ".")
			if strings.EqualFold(tag, "yml") {
				tag = "yaml"
			}
		}
		format, err := metadata.ParseFormat(tag)
		if err != nil {
			wrapFatalln("selecting output format", err)
			return
		}

		doc, err := metadata.Load(metadataFs, inputPath)
		if err != nil {
			wrapFatalln("loading "+inputPath, err)
			return
		}
		if err := metadata.Save(metadataFs, doc, outputPath, format); err != nil {
			wrapFatalln("writing "+outputPath, err)
			return
		}
		infoLogger.Printf("Wrote %s as %s", outputPath, format)
	},
}

func init() {
	addFormatFlag(metadataConvertCmd)
	metadataCmd.AddCommand(metadataConvertCmd)
}
