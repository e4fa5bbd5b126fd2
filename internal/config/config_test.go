package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "journeys"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, Path), []byte(content), 0644))
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "contracts/journeys", cfg.ContractsDir)
	assert.Equal(t, "tests/journeys", cfg.TestsDir)
	assert.Equal(t, "yaml", cfg.ContractExt)
	assert.Equal(t, "spec.js", cfg.StubExt)
}

func TestLoad_OverridesKeepUnsetDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "contracts-dir: docs/contracts\n")

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "docs/contracts", cfg.ContractsDir)
	assert.Equal(t, "tests/journeys", cfg.TestsDir)
	assert.Equal(t, "spec.js", cfg.StubExt)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "contracts-dir: [unclosed\n")

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config:")
}

func TestLoad_RejectsExplicitlyEmptyField(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "tests-dir: \"\"\n")

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config:")
}

func TestValidate_RejectsAbsoluteDirectory(t *testing.T) {
	cfg := Default()
	cfg.ContractsDir = "/etc/contracts"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contracts-dir")
	assert.Contains(t, err.Error(), "relative")
}

func TestValidate_RejectsDirectoryEscapingRoot(t *testing.T) {
	cfg := Default()
	cfg.TestsDir = "../outside"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the project root")
}

func TestValidate_RejectsDottedExtension(t *testing.T) {
	cfg := Default()
	cfg.ContractExt = ".yaml"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not start with a dot")
}

func TestLayout_MirrorsConfig(t *testing.T) {
	cfg := Default()
	l := cfg.Layout()

	assert.Equal(t, "contracts/journeys/journey_login.yaml", l.ContractPath("J-LOGIN"))
	assert.Equal(t, "tests/journeys/journey_login.spec.js", l.StubPath("J-LOGIN"))
}
