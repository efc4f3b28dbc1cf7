package trainer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shallow-ml/shallow/internal/config"
	"github.com/shallow-ml/shallow/internal/nn"
	"github.com/shallow-ml/shallow/internal/trainer"
)

func TestFromConfig(t *testing.T) {
	rc, err := trainer.FromConfig(config.Default())
	require.NoError(t, err)

	assert.Equal(t, 8, rc.HiddenUnits)
	assert.Equal(t, 50, rc.Epochs)
	assert.Equal(t, float32(0.2), rc.LearningRate)
	assert.Equal(t, nn.ELU, rc.Activation)
}

func TestFromConfig_UnknownActivation(t *testing.T) {
	cfg := config.Default()
	cfg.Activation = "swish"

	_, err := trainer.FromConfig(cfg)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	err := trainer.Run(trainer.RunConfig{
		HiddenUnits:  4,
		Epochs:       3,
		LearningRate: 0.2,
		Seed:         1,
		Activation:   nn.ELU,
		LogEvery:     10,
	})
	require.NoError(t, err)
}

func TestRun_InvalidEpochs(t *testing.T) {
	err := trainer.Run(trainer.RunConfig{
		HiddenUnits:  4,
		Epochs:       0,
		LearningRate: 0.2,
		Activation:   nn.ELU,
	})
	require.Error(t, err)
}
