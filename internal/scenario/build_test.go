package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vppsim/internal/config"
)

func TestBuildRunsEveryPreset(t *testing.T) {
	for _, name := range config.PresetNames {
		cfg, err := config.FromPreset(name)
		require.NoError(t, err)

		eng, err := Build(cfg)
		require.NoError(t, err, "preset %s", name)

		results := eng.Run()
		assert.Equal(t, cfg.Simulation.StepsPerDay*cfg.Simulation.Days, len(results))
	}
}

func TestBuildRejectsUnknownSolarModel(t *testing.T) {
	cfg := config.Default()
	cfg.Solar.Model = "nonexistent"
	_, err := Build(cfg)
	assert.Error(t, err)
}
