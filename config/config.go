package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config represents service configuration for dp-datadoc-generator
type Config struct {
	OutputDir       string `envconfig:"OUTPUT_DIR"`
	OutputFilename  string `envconfig:"OUTPUT_FILENAME"`
	FileVersion     string `envconfig:"FILE_VERSION"`
	DocumentVersion string `envconfig:"DOCUMENT_VERSION"`
	Sample          string `envconfig:"SAMPLE"`
	Timezone        string `envconfig:"TIMEZONE"`
	PrettyPrint     bool   `envconfig:"PRETTY_PRINT"`
	ColourOutput    bool   `envconfig:"COLOUR_OUTPUT"`
	ValidateSchema  bool   `envconfig:"VALIDATE_SCHEMA"`
}

// Get returns the default config with any modifications through environment
// variables
func Get() (cfg *Config, err error) {

	cfg = &Config{
		OutputDir:       ".",
		FileVersion:     "1",
		DocumentVersion: "4.0.0",
		Sample:          "person_testdata",
		Timezone:        "UTC",
		PrettyPrint:     true,
		ColourOutput:    true,
		ValidateSchema:  true,
	}

	return cfg, envconfig.Process("", cfg)
}
