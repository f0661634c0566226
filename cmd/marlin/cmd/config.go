package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage survey and deployment config files",
	Long:  "Commands to create and inspect the survey- and deployment-level config files describing a marine imaging survey.",
}

func init() {
	rootCmd.AddCommand(configCmd)
}
