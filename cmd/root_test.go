package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDefaults(t *testing.T) {
	config, err := getConfig()
	require.NoError(t, err)

	assert.Equal(t, "default", config.User)
	assert.Equal(t, "artifacts/model.json", config.ArtifactPath)
	assert.Equal(t, "data/history.db", config.HistoryDB)
	require.NotNil(t, config.Model)
	assert.Equal(t, uint64(7), config.Model.Seed)
	assert.Equal(t, 140, config.Model.SamplesPerCareer)
	assert.Equal(t, 250, config.Model.MaxIterations)
	require.NotNil(t, config.AI)
	assert.False(t, config.AI.Enabled)
	assert.Equal(t, "gemini", config.AI.Provider)
	require.NotNil(t, config.AI.Gemini)
	assert.Equal(t, 3, config.AI.Gemini.MaxRetries)
}

func TestGetConfigValidation(t *testing.T) {
	cases := map[string]any{
		"model.samples-per-career": 0,
		"ai.provider":              "openai",
		"history-db":               "",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			previous := viper.Get(key)
			viper.Set(key, value)
			t.Cleanup(func() { viper.Set(key, previous) })

			_, err := getConfig()
			assert.Error(t, err)
		})
	}
}

func TestCommandsAreRegistered(t *testing.T) {
	for _, name := range []string{"train", "predict", "roadmap", "interests", "info", "history", "chat", "mcp", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
