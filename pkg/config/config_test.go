package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(`
pipeline:
  nodeCount: 5
  hopTimeout: 2s
store:
  path: /var/lib/mixnet
`))
	require.NoError(t, err)
	assert.Equal(t, 5, c.Pipeline.NodeCount)
	assert.Equal(t, 2*time.Second, c.Pipeline.HopTimeout)
	assert.Equal(t, DefaultConcurrency, c.Pipeline.Concurrency)
	assert.Equal(t, "/var/lib/mixnet", c.Store.Path)
	assert.False(t, c.Store.InMemory)
}

func TestReadRejects(t *testing.T) {
	_, err := Read(strings.NewReader("pipeline:\n  retryCount: 7\nstore:\n  inMemory: true\n"))
	assert.Error(t, err)

	_, err = Read(strings.NewReader("pipeline:\n  nodeCount: -1\nstore:\n  inMemory: true\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultAndLoad(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, DefaultNodeCount, c.Pipeline.NodeCount)
	assert.Equal(t, DefaultHopTimeout, c.Pipeline.HopTimeout)

	path := filepath.Join(t.TempDir(), "mixnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  inMemory: true\n"), 0o600))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
