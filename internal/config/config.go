// Package config loads the optional journeys/jt.yaml file controlling
// where compiled artifacts land.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"jt/internal/emit"
)

// Path is the well-known config location under the project root.
const Path = "journeys/jt.yaml"

type Config struct {
	ContractsDir string `yaml:"contracts-dir" validate:"required"`
	TestsDir     string `yaml:"tests-dir" validate:"required"`
	ContractExt  string `yaml:"contract-ext" validate:"required"`
	StubExt      string `yaml:"stub-ext" validate:"required"`
}

// Default returns the layout used when no config file exists.
func Default() *Config {
	return &Config{
		ContractsDir: "contracts/journeys",
		TestsDir:     "tests/journeys",
		ContractExt:  "yaml",
		StubExt:      "spec.js",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the config under root. A missing file is not an error:
// defaults apply, and fields omitted from the file keep their defaults.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, Path))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every field is set, directories stay inside the
// project root, and extensions carry no leading dot.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := checkDir("contracts-dir", cfg.ContractsDir); err != nil {
		return err
	}
	if err := checkDir("tests-dir", cfg.TestsDir); err != nil {
		return err
	}
	if err := checkExt("contract-ext", cfg.ContractExt); err != nil {
		return err
	}
	return checkExt("stub-ext", cfg.StubExt)
}

func checkDir(name, dir string) error {
	if filepath.IsAbs(dir) {
		return fmt.Errorf("config: '%s' must be a relative path, got %q", name, dir)
	}
	clean := filepath.Clean(dir)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("config: '%s' escapes the project root: %q", name, dir)
	}
	return nil
}

func checkExt(name, ext string) error {
	if strings.HasPrefix(ext, ".") {
		return fmt.Errorf("config: '%s' must not start with a dot, got %q", name, ext)
	}
	return nil
}

// Layout converts the config into the emit package's layout.
func (c *Config) Layout() emit.Layout {
	return emit.Layout{
		ContractsDir: c.ContractsDir,
		TestsDir:     c.TestsDir,
		ContractExt:  c.ContractExt,
		StubExt:      c.StubExt,
	}
}
