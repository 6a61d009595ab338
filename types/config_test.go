package types

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, ioutil.WriteFile(path.Join(dir, name), []byte(content), 0644))
}

func TestLoadConfigurations(t *testing.T) {
	dir, err := ioutil.TempDir("", "scribe-configs")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "full.yaml", "pipeline: medical_scribe\nfeatures:\n  - dialogue\n  - soap\n  - documents\n")
	writeConfigFile(t, dir, "wrong.yaml", "pipeline: something_else\n")
	writeConfigFile(t, dir, "notes.txt", "not a configuration")

	configs, err := LoadConfigurations(dir)
	require.NoError(t, err)
	require.Len(t, configs, 1)

	cfg := configs[0]
	require.Equal(t, "full", cfg.Name)
	require.Equal(t, MedicalScribePipeline, cfg.Pipeline)
	require.True(t, cfg.CheckFeature(DialogueFeature))
	require.True(t, cfg.CheckFeature(SOAPFeature))
	require.True(t, cfg.CheckFeature(DocumentsFeature))
	require.False(t, cfg.CheckFeature("metrics"))
}

func TestLoadConfigurationsMissingDir(t *testing.T) {
	_, err := LoadConfigurations("/nonexistent/dir")
	require.Error(t, err)
}

func TestDefaultConfigurationEnablesAllFeatures(t *testing.T) {
	cfg := DefaultConfiguration()
	require.Equal(t, MedicalScribePipeline, cfg.Pipeline)
	for _, feature := range []string{DialogueFeature, SOAPFeature, DocumentsFeature} {
		require.True(t, cfg.CheckFeature(feature))
	}
}
