package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// metadataFs is patched during test
var metadataFs = afero.NewOsFs()

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Commands to manage iFDO metadata documents",
	Long:  "Commands to validate and convert iFDO (image File Descriptor) metadata documents.",
}

func init() {
	rootCmd.AddCommand(metadataCmd)
}
