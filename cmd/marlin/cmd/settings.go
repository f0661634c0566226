package cmd

import (
	"github.com/spf13/viper"
)

const defaultSchemaDir = "resources/schemas/ifdo"

// Config is the resolved marlin configuration (file, env and defaults).
type Config struct {
	// Exiftool locates the external EXIF extractor executable
	Exiftool string `json:"exiftool" yaml:"exiftool"`
	// Schemas is the directory holding the iFDO schema resources
	Schemas string `json:"schemas" yaml:"schemas"`
	// Target is the default distribution target
	Target string `json:"target" yaml:"target"`
}

func newConfig() (*Config, error) {
	c := Config{}
	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
