package cmd

import (
	"path/filepath"

	"github.com/oceanbound/marlin/pkg/metadata"
	"github.com/oceanbound/marlin/pkg/prompt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	levelSurvey     = "survey"
	levelDeployment = "deployment"
)

// configFs is patched during test
var configFs = afero.NewOsFs()

// askSchema is patched during test
var askSchema = prompt.Ask

var surveySchema = prompt.Schema{
	{Key: "survey-id", Default: "", Help: "Unique survey identifier, e.g. IN2023_V04"},
	{Key: "survey-name", Default: ""},
	{Key: "vessel", Default: "", Help: "Vessel or platform the survey ran from"},
	{Key: "start-date", Default: "", Help: "ISO date, e.g. 2023-04-12"},
	{Key: "end-date", Default: ""},
	{Key: "contact", Default: "", Help: "Name and email of the data custodian"},
}

var deploymentSchema = prompt.Schema{
	{Key: "deployment-id", Default: ""},
	{Key: "site-id", Default: ""},
	{Key: "start-latitude", Default: 0.0, Help: "Decimal degrees, south negative"},
	{Key: "start-longitude", Default: 0.0, Help: "Decimal degrees, west negative"},
	{Key: "depth-metres", Default: 0.0},
	{Key: "camera-count", Default: 1},
	{Key: "baited", Default: false},
	{Key: "notes", Default: ""},
}

var configCreateCmd = &cobra.Command{
	Use:   "create {survey|deployment} <output-path>",
	Short: "Create a survey or deployment config file",
	Long: `Create the initial minimal survey- or deployment-level config file by
answering a series of questions. The file is written as <level>.yaml inside
the output directory.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		level, outputPath := args[0], args[1]

		var schema prompt.Schema
		switch level {
		case levelSurvey:
			schema = surveySchema
		case levelDeployment:
			schema = deploymentSchema
		default:
			errorPanel("Unknown config level %s: expected survey or deployment", level)
			osExit(2)
			return
		}
		ok, err := afero.DirExists(configFs, outputPath)
		if err != nil || !ok {
			errorPanel("The output path %s is not a valid directory path", outputPath)
			osExit(2)
			return
		}

		target := filepath.Join(outputPath, level+".yaml")
		if exists, _ := afero.Exists(configFs, target); exists && !marlinFlags.configCreate.Overwrite {
			errorPanel("%s already exists: pass --overwrite to replace it", target)
			osExit(2)
			return
		}

		answers, err := askSchema(schema)
		if err != nil {
			wrapFatalln("config creation aborted", err)
			return
		}
		if err := metadata.Save(configFs, answers, target, metadata.FormatYAML); err != nil {
			wrapFatalln("writing "+target, err)
			return
		}
		infoLogger.Printf("Created %s-level config file at %s", level, target)
	},
}

func init() {
	addConfigOverwriteFlag(configCreateCmd)
	configCmd.AddCommand(configCreateCmd)
}
