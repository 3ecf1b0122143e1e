package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		APIKey:      "test-key",
		LiveModel:   DefaultLiveModel,
		SearchModel: DefaultSearchModel,
		Voice:       DefaultVoice,
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.APIKey = "  "
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
}

func TestValidate_EmptyModels(t *testing.T) {
	cfg := validConfig()
	cfg.LiveModel = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidModelName)

	cfg = validConfig()
	cfg.SearchModel = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidModelName)
}

func TestValidate_EmptyVoice(t *testing.T) {
	cfg := validConfig()
	cfg.Voice = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidVoice)
}

func TestValidate_NegativePadding(t *testing.T) {
	cfg := validConfig()
	cfg.MapPadding = [4]int{0, -10, 0, 0}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidPadding)
}

func TestSystemPrompt_Default(t *testing.T) {
	prompt, err := validConfig().SystemPrompt()
	require.NoError(t, err)
	assert.Contains(t, prompt, "updateClientProfile")
}

func TestSystemPrompt_OverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("custom persona"), 0o600))

	cfg := validConfig()
	cfg.SystemPromptFile = path

	prompt, err := cfg.SystemPrompt()
	require.NoError(t, err)
	assert.Equal(t, "custom persona", prompt)
}

func TestSystemPrompt_MissingOverrideFile(t *testing.T) {
	cfg := validConfig()
	cfg.SystemPromptFile = filepath.Join(t.TempDir(), "missing.txt")

	_, err := cfg.SystemPrompt()
	assert.Error(t, err)
}
