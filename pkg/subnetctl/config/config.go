// Copyright 2025 The Subnetctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional subnetctl defaults file, a TOML document
// providing the values pre-filled into the interactive prompts and the
// directory exports are written to.
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// Config carries the planner defaults.
type Config struct {
	// DefaultNetwork pre-fills the parent network prompt.
	DefaultNetwork string `toml:"default-network" validate:"omitempty,cidrv4"`
	// DefaultRouters pre-fills the router count prompt.
	DefaultRouters int `toml:"default-routers" validate:"min=0"`
	// DefaultHosts pre-fills the per-subnet host count prompt.
	DefaultHosts int `toml:"default-hosts" validate:"min=0"`
	// ExportDir is where plan exports are written. Empty means the
	// current directory.
	ExportDir string `toml:"export-dir"`
}

// Default returns the configuration used when no file is given, matching the
// planner's historical prompt defaults.
func Default() Config {
	return Config{
		DefaultNetwork: "192.168.0.0/16",
		DefaultRouters: 2,
		DefaultHosts:   10,
	}
}

// Read decodes and validates a configuration, applying defaults for absent
// fields.
func Read(r io.Reader) (Config, error) {
	result := Default()
	if _, err := toml.NewDecoder(r).Decode(&result); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}
	if err := validate.Struct(&result); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}
	return result, nil
}

// ReadFromFile loads a configuration from path.
func ReadFromFile(path string) (Config, error) {
	fin, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to open config file")
	}
	defer fin.Close()
	return Read(fin)
}
