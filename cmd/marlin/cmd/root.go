package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/oceanbound/marlin/pkg/dlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marlin",
	Short: "marlin catalogues marine imaging survey datasets",
	Long: `marlin catalogues and validates metadata for marine imaging survey datasets.

It drives an external EXIF extractor (exiftool) over survey directory trees to
build per-directory metadata sidecars, creates survey and deployment
configuration files, validates iFDO metadata documents against the iFDO
schema, and distributes packaged datasets to local or S3 targets.
`,
}

var config *Config

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	addLogLevelFlag(rootCmd)
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("exiftool", "exiftool")
	viper.SetDefault("schemas", defaultSchemaDir)
	if os.Getenv("MARLIN_CONFIG") != "" {
		// Use config file from the env override.
		viper.SetConfigFile(os.Getenv("MARLIN_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.marlin")
		viper.AddConfigPath("/etc/marlin")
		viper.SetConfigName("marlin")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
	}
}

// mustGetLogger builds the run logger from the persistent log-level flag.
func mustGetLogger() *zap.Logger {
	logger, err := dlogger.GetLogger(marlinFlags.root.logLevel, dlogger.WithConsole())
	if err != nil {
		wrapFatalln("invalid log level "+marlinFlags.root.logLevel, err)
		return zap.NewNop()
	}
	return logger
}
