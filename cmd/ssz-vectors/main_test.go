package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateThenVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.json")
	_, err := execute(t, "generate", "--out", path, "--log-level", "warn")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"LightClientUpdate\"")

	_, err = execute(t, "verify", "--vectors", path, "--log-level", "warn")
	assert.NoError(t, err)
}

func TestGenerateToStdout(t *testing.T) {
	out, err := execute(t, "generate", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "\"SyncAggregate\"")
}

func TestVerifyCrosscheck(t *testing.T) {
	_, err := execute(t, "verify", "--crosscheck", "--log-level", "warn")
	assert.NoError(t, err)
}

func TestVerifyRequiresInput(t *testing.T) {
	_, err := execute(t, "verify")
	assert.Error(t, err)
}

func TestVerifyMissingSpecTests(t *testing.T) {
	_, err := execute(t, "verify", "--spec-tests", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestOutFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.json")
	t.Setenv("SSZ_VECTORS_OUT", path)
	_, err := execute(t, "generate")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestBadLogLevel(t *testing.T) {
	_, err := execute(t, "generate", "--log-level", "loud")
	assert.Error(t, err)
}

type failingCloser struct{ err error }

func (f failingCloser) Close() error { return f.err }

func TestCloseOutputReportsError(t *testing.T) {
	closeErr := errors.New("disk quota exceeded")

	var err error
	closeOutput(failingCloser{err: closeErr}, "vectors.json", &err)
	require.Error(t, err)
	assert.True(t, errors.Is(err, closeErr))

	writeErr := errors.New("short write")
	err = writeErr
	closeOutput(failingCloser{err: closeErr}, "vectors.json", &err)
	assert.Equal(t, writeErr, err)

	err = nil
	closeOutput(failingCloser{}, "vectors.json", &err)
	assert.NoError(t, err)
}

func TestGenerateToFullDevice(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	_, err := execute(t, "generate", "--out", "/dev/full", "--log-level", "warn")
	assert.Error(t, err)
}
