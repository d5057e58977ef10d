package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benkyo-app/benkyo/internal/testutil"
)

func TestLoadConfig(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())

	oldConfigFile := configFile
	configFile = cfgPath
	defer func() { configFile = oldConfigFile }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.SRS.MaxInterval)
	// Unset scheduler keys keep their defaults.
	assert.Equal(t, 2.5, cfg.SRS.InitialEaseFactor)
}
