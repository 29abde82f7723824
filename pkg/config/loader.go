// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath names the environment variable consulted when no
	// --config flag is given.
	EnvConfigPath = "SORTBENCH_CONFIG"

	// DefaultFileName is looked up in the working directory last.
	DefaultFileName = "sortbench.yaml"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrConfigExists is returned by WriteDefault rather than overwrite a file.
	ErrConfigExists = errors.New("config file already exists")
)

var validate = newValidator()

// newValidator reports fields by their YAML key so messages match the file.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Resolve picks the config file to read.
//
// Order: flagPath, then $SORTBENCH_CONFIG, then ./sortbench.yaml when it
// exists. An empty result means built-in defaults.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}
	return ""
}

// Load resolves and reads the configuration.
//
// Outputs:
//
//	Config - Defaults overlaid with the file's values.
//	string - The file read, or "" when defaults were used.
//	error - Read, parse or validation failure.
func Load(flagPath string) (Config, string, error) {
	path := Resolve(flagPath)
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// LoadFile reads path over the defaults. Keys absent from the file keep
// their default; unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// describe renders one failed constraint as "harness.runs must be at least 1".
func describe(fe validator.FieldError) string {
	key := fe.Namespace()
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}
	switch fe.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", key, fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("%s must be at most %s, got %v", key, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "required", "required_if":
		return fmt.Sprintf("%s is required", key)
	default:
		return fmt.Sprintf("%s failed %s", key, fe.Tag())
	}
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create the config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
