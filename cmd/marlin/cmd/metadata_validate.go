package cmd

import (
	"github.com/gosuri/uitable"
	"github.com/oceanbound/marlin/pkg/ifdo"
	"github.com/oceanbound/marlin/pkg/metadata"
	"github.com/spf13/cobra"
)

var metadataValidateCmd = &cobra.Command{
	Use:   "validate <ifdo-path>",
	Short: "Validate an iFDO document against the iFDO schema",
	Long: `Validate an iFDO metadata document (YAML or JSON) against the iFDO JSON
schema. A non-conforming document lists its violations and exits with a
non-zero status; it is not treated as a crash.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifdoPath := args[0]

		validator, err := ifdo.NewValidator(metadataFs, config.Schemas)
		if err != nil {
			wrapFatalln("loading iFDO schema resources from "+config.Schemas, err)
			return
		}
		doc, err := metadata.Load(metadataFs, ifdoPath)
		if err != nil {
			wrapFatalln("loading "+ifdoPath, err)
			return
		}

		violations := validator.Report(doc)
		if len(violations) == 0 {
			infoLogger.Printf("%s conforms to the iFDO schema", ifdoPath)
			return
		}
		table := uitable.New()
		table.MaxColWidth = 100
		table.Wrap = true
		table.AddRow("LOCATION", "VIOLATION")
		for _, v := range violations {
			location := v.InstanceLocation
			if location == "" {
				location = "/"
			}
			table.AddRow(location, v.Message)
		}
		infoLogger.Println(table)
		wrapFatalWithCodef(1, "%s does not conform to the iFDO schema (%d violations)", ifdoPath, len(violations))
	},
}

func init() {
	metadataCmd.AddCommand(metadataValidateCmd)
}
