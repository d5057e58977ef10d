package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benkyo-app/benkyo/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	cfgPath := SetupTestConfig(t, t.TempDir())

	loader, err := config.NewConfigLoader(cfgPath)
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, "benkyo_test", cfg.Database.Database)
	assert.Equal(t, 30, cfg.SRS.MaxInterval)
}
