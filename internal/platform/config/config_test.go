package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Arrange
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("EVENTS_PORT", "9100")
	t.Setenv("LOCK_TIMEOUT", "750ms")
	t.Setenv("SAME_PRIORITY_DELAY", "3s")
	t.Setenv("LOCK_HOLD_DELAY", "0s")
	t.Setenv("ALLOW_OVERDRAFT", "false")
	t.Setenv("DEFAULT_AMOUNT", "25.50")
	t.Setenv("DEPLOYMENT_MODE", "devel")

	// Act
	cfg := LoadConfig()

	// Assert
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 9100, cfg.EventsPort)
	assert.Equal(t, 750*time.Millisecond, cfg.LockTimeout)
	assert.Equal(t, 3*time.Second, cfg.SamePriorityDelay)
	assert.Equal(t, time.Duration(0), cfg.HoldDelay)
	assert.False(t, cfg.AllowOverdraft)
	assert.Equal(t, "25.50", cfg.DefaultAmount)
	assert.Equal(t, "devel", cfg.DeploymentMode)

	engine := cfg.EngineConfig()
	assert.Equal(t, cfg.LockTimeout, engine.LockTimeout)
	assert.False(t, engine.AllowOverdraft)
}

func TestLoadConfig_FallsBackOnBadValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	t.Setenv("LOCK_TIMEOUT", "soon")
	t.Setenv("SAME_PRIORITY_DELAY", "-1s")
	t.Setenv("ALLOW_OVERDRAFT", "maybe")
	t.Setenv("DEFAULT_AMOUNT", "")

	cfg := LoadConfig()

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, 2*time.Second, cfg.LockTimeout)
	assert.Equal(t, 2*time.Second, cfg.SamePriorityDelay)
	assert.True(t, cfg.AllowOverdraft)
	assert.Equal(t, "100", cfg.DefaultAmount)
}

func TestPortValue_ExplicitFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")

	assert.Equal(t, 4000, portValue("HTTP_PORT", 4000, true))
	assert.Equal(t, 8080, portValue("HTTP_PORT", 3000, false))

	t.Setenv("HTTP_PORT", "")
	assert.Equal(t, 3000, portValue("HTTP_PORT", 3000, false))
}
