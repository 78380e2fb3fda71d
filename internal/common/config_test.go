package common

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "gpt-4o", cfg.LLM.PrimaryModel)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.FallbackModel)
	assert.Less(t, cfg.LLM.FallbackMaxTokens, cfg.LLM.PrimaryMaxTokens)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4.1")
	t.Setenv("OPENAI_TEMPERATURE", "0.3")
	t.Setenv("OPENAI_TIMEOUT", "10s")

	cfg := LoadConfig()
	assert.Equal(t, "gpt-4.1", cfg.LLM.PrimaryModel)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-6)
	assert.Equal(t, 10*time.Second, cfg.LLM.Timeout)
}

func TestValidateMissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg := LoadConfig()

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.False(t, errors.Is(err, ErrModel),
		"missing credential must not read as a model error")
}

func TestValidateOK(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	cfg := LoadConfig()
	assert.NoError(t, cfg.Validate())
}
