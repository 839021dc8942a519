package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	dir := t.TempDir()

	c1, err := ReadOrCreate(dir)
	assert.NoError(t, err)
	assert.NotNil(t, c1)
	assert.Equal(t, defaultDataFile, c1.Data)
	assert.Equal(t, defaultPort, c1.Port)
	assert.Equal(t, filepath.Join(dir, defaultDBFile), c1.DB)

	c1.Data = "test.csv"
	c1.Port = 9090
	c1.LogLevel = "debug"

	err = Save(dir, c1)
	assert.NoError(t, err)

	c2, err := ReadOrCreate(dir)
	assert.NoError(t, err)
	assert.NotNil(t, c2)
	assert.Equal(t, c1.Data, c2.Data)
	assert.Equal(t, c1.Port, c2.Port)
	assert.Equal(t, c1.LogLevel, c2.LogLevel)
}

func TestConfigErrors(t *testing.T) {
	_, err := ReadOrCreate("")
	assert.Error(t, err)

	err = Save("", &Config{})
	assert.Error(t, err)

	err = Save(t.TempDir(), nil)
	assert.Error(t, err)
}

func TestGetOrCreateHomeDir(t *testing.T) {
	_, _, err := GetOrCreateHomeDir("")
	assert.Error(t, err)
}
