package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("GPM_STORE_SIZE")
	os.Unsetenv("GPM_DEF_CHAR")
	os.Unsetenv("GPM_BATCH_CONCURRENCY")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4096, c.StoreSize)
	assert.Equal(t, "&", c.DefChar)
	assert.Equal(t, 4, c.Concurrent)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GPM_STORE_SIZE", "512")
	t.Setenv("GPM_DEF_CHAR", "@")
	t.Setenv("GPM_BATCH_CONCURRENCY", "8")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 512, c.StoreSize)
	assert.Equal(t, "@", c.DefChar)
	assert.Equal(t, 8, c.Concurrent)
}

func TestWarningCharsOverridesDef(t *testing.T) {
	c := Config{DefChar: "@"}
	wc, err := c.WarningChars()
	require.NoError(t, err)

	assert.Equal(t, '@', wc.Def)
	assert.Equal(t, '<', wc.Open)
	assert.Equal(t, '>', wc.Close)
}

func TestWarningCharsRejectsMultiRuneDefChar(t *testing.T) {
	c := Config{DefChar: "&&"}
	_, err := c.WarningChars()
	assert.Error(t, err)
}
