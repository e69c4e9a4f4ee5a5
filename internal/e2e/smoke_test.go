package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runWave(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "dev\n", stdout)

	stdout, stderr, err = runWave(t, binaryPath, home,
		"passphrase", "set",
		"--account", "0x00000000000000000000000000000000000000aa",
		"--value", "correct horse",
	)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "stored passphrase for")

	stdout, stderr, err = runWave(t, binaryPath, home, "account", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Empty(t, stdout)

	_, stderr, err = runWave(t, binaryPath, home, "connect")
	require.Error(t, err)
	assert.Contains(t, stderr, "Get a wallet!")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "wave-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wave")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build wave binary: %s", string(output))
	return binaryPath
}

func runWave(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	// An empty PATH keeps pass out of reach so secrets land in the file store.
	cmd.Env = append(os.Environ(), "HOME="+home, "PATH="+t.TempDir())

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
