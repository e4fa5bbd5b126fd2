package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifacts_ListsGeneratedFiles(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("journeys.csv", []byte(testTable), 0o644))
	runCompile(t, "journeys.csv")

	var buf bytes.Buffer
	require.NoError(t, RunArtifacts(&buf, "J-LOGIN"))

	out := buf.String()
	assert.Contains(t, out, "contracts/journeys/journey_login.yaml")
	assert.Contains(t, out, "tests/journeys/journey_login.spec.js")
}

func TestArtifacts_AcceptsLowercaseID(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("journeys.csv", []byte(testTable), 0o644))
	runCompile(t, "journeys.csv")

	var buf bytes.Buffer
	require.NoError(t, RunArtifacts(&buf, "j-login"))

	assert.Contains(t, buf.String(), "journey_login.yaml")
}

func TestArtifacts_NothingGenerated(t *testing.T) {
	inTempDir(t)

	var buf bytes.Buffer
	require.NoError(t, RunArtifacts(&buf, "J-LOGIN"))

	assert.Equal(t, "no generated artifacts for J-LOGIN\n", buf.String())
}
