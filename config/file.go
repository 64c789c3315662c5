package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the content of a YAML configuration file.
//
// Fields that are not set in the file are left as zero values and the defaults are used.
//
//	horizon: 15
//	workers: 4
//	variant: skip-idle-entry-reset
//	export: tree.nwk
type File struct {
	Horizon int    `yaml:"horizon"`
	Workers int    `yaml:"workers"`
	Variant string `yaml:"variant"`
	// Path of a file the explored search tree is written to
	Export string `yaml:"export"`
}

// Read and parse the configuration file at path
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	return Parse(data)
}

// Parse a YAML configuration. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	f := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}
	return f, nil
}
