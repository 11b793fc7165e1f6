package config

import (
	"os"
	"strings"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "PICBATCH_") {
			os.Unsetenv(strings.SplitN(kv, "=", 2)[0])
		}
	}

	var s Settings
	require.NoError(t, envconfig.Process("picbatch", &s))

	assert.Equal(t, 600, s.MaxWidth)
	assert.Equal(t, 600, s.MaxHeight)
	assert.Equal(t, 60, s.Quality)
	assert.Equal(t, 400, s.UltraMaxWidth)
	assert.Equal(t, 400, s.UltraMaxHeight)
	assert.Equal(t, 40, s.UltraQuality)
	assert.Equal(t, []string{"muffin", "chihuahua"}, s.Folders)
	assert.False(t, s.Develop)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PICBATCH_QUALITY", "35")
	t.Setenv("PICBATCH_FOLDERS", "cats,dogs")

	var s Settings
	require.NoError(t, envconfig.Process("picbatch", &s))

	assert.Equal(t, 35, s.Quality)
	assert.Equal(t, []string{"cats", "dogs"}, s.Folders)
	assert.Equal(t, 600, s.MaxWidth)
}
