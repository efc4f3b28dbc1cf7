// Package shallow is a minimal feed-forward neural network with exactly
// two trainable layers, trained by per-sample stochastic gradient descent
// with backpropagation.
//
// # Basic Usage
//
//	rng := rand.New(rand.NewSource(1))
//
//	net, err := shallow.New(1, 8, 1, shallow.ELU, rng)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	examples, err := shallow.NewExamples(
//	    []float32{0.0, 0.2, 0.8, 1.0}, // inputs, one per example
//	    []float32{1.0, 0.8, 0.2, 0.0}, // targets, one per example
//	    1, 1,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = net.Train(examples, 50, 0.2, func(epoch int, sse float32) {
//	    log.Printf("epoch=%d error=%.3f", epoch, sse)
//	})
//
//	outputs := net.Evaluate([]float32{0.5})
//
// Training visits the examples in order, every epoch, for exactly the
// requested number of epochs; there is no batching, shuffling or early
// stopping.
package shallow

import (
	"math/rand"

	"github.com/shallow-ml/shallow/internal/dataset"
	"github.com/shallow-ml/shallow/internal/nn"
)

// Activation selects the nonlinearity used by both layers. Each constant
// carries the activation function and its matched derivative as one unit.
type Activation = nn.Activation

// Supported activations.
const (
	ELU      = nn.ELU
	Sigmoid  = nn.Sigmoid
	ReLU     = nn.ReLU
	Softplus = nn.Softplus
)

// ParseActivation maps a tag ("elu", "sigmoid", "relu", "softplus") onto an
// Activation.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// Network is a two-layer feed-forward network.
type Network = nn.Network

// Dense is one fully connected layer.
type Dense = nn.Dense

// EpochFunc receives the epoch index and that epoch's total squared error.
type EpochFunc = nn.EpochFunc

// Examples is an ordered set of (input, target) training pairs backed by
// flat parallel buffers.
type Examples = dataset.Examples

// New creates a two-layer network with the given input, hidden and output
// widths. Weights and biases are initialized from rng, so a seeded
// *rand.Rand gives reproducible runs.
func New(inputs, hidden, outputs int, act Activation, rng *rand.Rand) (*Network, error) {
	return nn.NewNetwork(inputs, hidden, outputs, act, rng)
}

// NewExamples wraps flat parallel input/target buffers into an example set.
// Example t's input starts at inputs[t*inputWidth].
func NewExamples(inputs, targets []float32, inputWidth, targetWidth int) (*Examples, error) {
	return dataset.New(inputs, targets, inputWidth, targetWidth)
}
