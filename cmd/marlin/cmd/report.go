package cmd

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Commands to build survey reports",
	Long:  "Commands to build summary artifacts for a survey from its iFDO metadata.",
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
