package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers_Defaults(t *testing.T) {
	assert.Equal(t, "fallback", envStr("CONFIG_TEST_UNSET", "fallback"))
	assert.Equal(t, 42, envInt("CONFIG_TEST_UNSET", 42))
	assert.Equal(t, time.Minute, envDur("CONFIG_TEST_UNSET", time.Minute))
	assert.True(t, envBool("CONFIG_TEST_UNSET", true))
}

func TestEnvHelpers_Parsing(t *testing.T) {
	t.Setenv("CONFIG_TEST_INT", "7")
	t.Setenv("CONFIG_TEST_BAD_INT", "seven")
	t.Setenv("CONFIG_TEST_DUR", "30s")
	t.Setenv("CONFIG_TEST_BAD_DUR", "soon")
	t.Setenv("CONFIG_TEST_BOOL", "off")

	assert.Equal(t, 7, envInt("CONFIG_TEST_INT", 1))
	assert.Equal(t, 1, envInt("CONFIG_TEST_BAD_INT", 1), "unparseable values fall back to the default")
	assert.Equal(t, 30*time.Second, envDur("CONFIG_TEST_DUR", time.Minute))
	assert.Equal(t, time.Minute, envDur("CONFIG_TEST_BAD_DUR", time.Minute))
	assert.False(t, envBool("CONFIG_TEST_BOOL", true))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV("a, b"))
	assert.Equal(t, []string{"*"}, splitCSV("*"))
	assert.Empty(t, splitCSV(" , ,"))
}

func TestLoadRateLimitConfig_Clamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "0")
	t.Setenv("RATE_LIMIT_WINDOW", "-5s")

	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
	assert.Equal(t, "rl", cfg.Prefix)
}

func TestLoadRateLimitConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "15s")
	t.Setenv("RATE_LIMIT_PREFIX", "authrl")

	cfg := LoadRateLimitConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, 15*time.Second, cfg.Window)
	assert.Equal(t, "authrl", cfg.Prefix)
}
