package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutSeconds(t *testing.T) {
	assert.Equal(t, 1, timeoutSeconds(500*time.Millisecond))
	assert.Equal(t, 1, timeoutSeconds(time.Second))
	assert.Equal(t, 2, timeoutSeconds(1500*time.Millisecond))
	assert.Equal(t, 90, timeoutSeconds(90*time.Second))
}

func TestLocalizeCommand_CompletionLine(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// A stylesheet without matching URLs needs no network and must still end
	// with the completion line.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.css"),
		[]byte("body { color: red; }"), 0644))

	cmd := exec.Command(binaryPath, "localize", "--assets-dir", dir, "--stylesheet", "plain.css")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Finished downloading fonts and updating CSS.")
}

func TestLocalizeCommand_FlagOverridesConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// The config file points at a directory that does not exist; the flag
	// points at a real one. The run succeeds only if the flag wins.
	flagDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(flagDir, "plain.css"),
		[]byte("body {}"), 0644))

	cfgDir := t.TempDir()
	cfgPath := filepath.Join(cfgDir, "config.json")
	cfgJSON := `{"assets_dir": "` + filepath.Join(cfgDir, "does-not-exist") + `", "stylesheets": ["plain.css"]}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgJSON), 0644))

	cmd := exec.Command(binaryPath, "localize",
		"--config", cfgPath,
		"--assets-dir", flagDir)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Finished downloading fonts and updating CSS.")
}

func TestLocalizeCommand_ConfigFileValuesApplied(t *testing.T) {
	binaryPath := getBinaryPath(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only.css"),
		[]byte("body {}"), 0644))

	cfgPath := filepath.Join(dir, "config.json")
	cfgJSON := `{"assets_dir": "` + dir + `", "stylesheets": ["only.css"], "manifest": true}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgJSON), 0644))

	cmd := exec.Command(binaryPath, "localize", "--config", cfgPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Manifest:")
	assert.Contains(t, string(output), "Finished downloading fonts and updating CSS.")
	_, err = os.Stat(filepath.Join(dir, "fonts.manifest.json"))
	assert.NoError(t, err)
}

func TestLocalizeCommand_MissingStylesheet(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "localize", "--assets-dir", t.TempDir(), "--stylesheet", "missing.css")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read stylesheet")
}

func TestRootCommand_RunsLocalizeByDefault(t *testing.T) {
	binaryPath, err := filepath.Abs(getBinaryPath(t))
	require.NoError(t, err)

	// Bare invocation processes static/fonts/inter.css and icons.css
	// relative to the working directory.
	workDir := t.TempDir()
	fontsDir := filepath.Join(workDir, "static", "fonts")
	require.NoError(t, os.MkdirAll(fontsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(fontsDir, "inter.css"), []byte("body {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(fontsDir, "icons.css"), []byte("body {}"), 0644))

	cmd := exec.Command(binaryPath)
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Finished downloading fonts and updating CSS.")
}
