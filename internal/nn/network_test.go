package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shallow-ml/shallow/internal/dataset"
	"github.com/shallow-ml/shallow/internal/nn"
)

func TestNewNetwork_RejectsZeroWidths(t *testing.T) {
	cases := [][3]int{
		{0, 8, 1},
		{1, 0, 1},
		{1, 8, 0},
	}
	for _, c := range cases {
		_, err := nn.NewNetwork(c[0], c[1], c[2], nn.ELU, newRand())
		require.Error(t, err, "widths %v", c)
	}
}

func TestNetwork_EvaluateDimensionContract(t *testing.T) {
	cases := [][3]int{
		{1, 1, 1},
		{1, 8, 1},
		{3, 5, 2},
		{2, 4, 4},
	}
	for _, c := range cases {
		net, err := nn.NewNetwork(c[0], c[1], c[2], nn.ELU, newRand())
		require.NoError(t, err)

		outputs := net.Evaluate(make([]float32, c[0]))
		assert.Len(t, outputs, c[2], "widths %v", c)
	}
}

func TestNetwork_Evaluate_PanicsOnMismatchedInput(t *testing.T) {
	net, err := nn.NewNetwork(2, 4, 1, nn.ELU, newRand())
	require.NoError(t, err)

	require.Panics(t, func() {
		net.Evaluate([]float32{1})
	})
	require.Panics(t, func() {
		net.Evaluate([]float32{1, 2, 3})
	})
}

func TestNetwork_Evaluate_Deterministic(t *testing.T) {
	net, err := nn.NewNetwork(2, 6, 3, nn.ELU, newRand())
	require.NoError(t, err)

	inputs := []float32{0.3, -0.7}
	first := net.Evaluate(inputs)
	second := net.Evaluate(inputs)

	require.Equal(t, first, second)
}

func TestNetwork_Train_ValidatesArguments(t *testing.T) {
	net, err := nn.NewNetwork(1, 4, 1, nn.ELU, newRand())
	require.NoError(t, err)

	err = net.Train(nil, 10, 0.2, nil)
	require.Error(t, err)

	empty, err := dataset.New(nil, nil, 1, 1)
	require.NoError(t, err)
	err = net.Train(empty, 10, 0.2, nil)
	require.Error(t, err)

	wideInputs, err := dataset.New([]float32{1, 2}, []float32{1}, 2, 1)
	require.NoError(t, err)
	err = net.Train(wideInputs, 10, 0.2, nil)
	require.Error(t, err)

	wideTargets, err := dataset.New([]float32{1}, []float32{1, 2}, 1, 2)
	require.NoError(t, err)
	err = net.Train(wideTargets, 10, 0.2, nil)
	require.Error(t, err)

	err = net.Train(dataset.Ramp(), 0, 0.2, nil)
	require.Error(t, err)

	err = net.Train(dataset.Ramp(), 5, 0, nil)
	require.Error(t, err, "zero learning rate trains nothing and must be rejected")

	err = net.Train(dataset.Ramp(), 5, -0.2, nil)
	require.Error(t, err)

	err = net.Train(dataset.Ramp(), 5, float32(math.NaN()), nil)
	require.Error(t, err)
}

// TestNetwork_Train_ErrorDecreases trains the demo configuration and checks
// that the reported epoch error drops well below its starting value.
func TestNetwork_Train_ErrorDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	net, err := nn.NewNetwork(1, 8, 1, nn.ELU, rng)
	require.NoError(t, err)

	var epochs []int
	var errors []float32
	err = net.Train(dataset.Ramp(), 50, 0.2, func(epoch int, sse float32) {
		epochs = append(epochs, epoch)
		errors = append(errors, sse)
	})
	require.NoError(t, err)

	require.Len(t, errors, 50)
	for i, epoch := range epochs {
		require.Equal(t, i, epoch, "epochs must be reported in order")
	}

	first := errors[0]
	last := errors[len(errors)-1]
	assert.Positive(t, first)
	assert.Less(t, last, 0.5*first, "error after 50 epochs should be well below the initial error")
}

// TestNetwork_Train_LearnsDecreasingRamp checks that after training on the
// falling ramp the network's outputs track the targets and keep their
// ordering.
func TestNetwork_Train_LearnsDecreasingRamp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	net, err := nn.NewNetwork(1, 8, 1, nn.ELU, rng)
	require.NoError(t, err)

	examples := dataset.Ramp()
	require.NoError(t, net.Train(examples, 50, 0.2, nil))

	outputs := make([]float32, examples.Len())
	for i := 0; i < examples.Len(); i++ {
		out := net.Evaluate(examples.Input(i))
		require.Len(t, out, 1)
		outputs[i] = out[0]
		assert.InDelta(t, examples.Target(i)[0], out[0], 0.25,
			"output for input %v too far from target", examples.Input(i))
	}

	// The target function is decreasing, so the learned outputs must be
	// non-increasing across the rising inputs.
	for i := 0; i+1 < len(outputs); i++ {
		assert.LessOrEqual(t, outputs[i+1], outputs[i]+1e-3,
			"outputs must be non-increasing (index %d)", i)
	}
}

// TestNetwork_Train_MutatesOnlyDuringTrain pins the state model: evaluation
// before and after training differs, repeated evaluation does not.
func TestNetwork_Train_MutatesOnlyDuringTrain(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	net, err := nn.NewNetwork(1, 8, 1, nn.ELU, rng)
	require.NoError(t, err)

	input := []float32{0.2}
	before := net.Evaluate(input)

	require.NoError(t, net.Train(dataset.Ramp(), 5, 0.2, nil))

	after := net.Evaluate(input)
	require.NotEqual(t, before, after, "training must mutate the parameters")
	require.Equal(t, after, net.Evaluate(input))
}
