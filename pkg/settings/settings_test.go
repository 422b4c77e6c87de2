package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCliParams(t *testing.T) {
	run := NewCliParams()
	assert.Equal(t, int8(0), run.MinLogLevel)
	assert.Equal(t, "text", run.Output)
	assert.Zero(t, run.Width)
	assert.Empty(t, run.ConfigPath)
}

func TestVersionInformationDefaults(t *testing.T) {
	assert.Equal(t, "crumbline", CliBinaryName)
	assert.NotEmpty(t, VersionInformation.BuildVersion)
	assert.Equal(t, "unknown", VersionInformation.Commit)
}
