// Package nn implements a minimal two-layer feed-forward neural network
// trained by per-sample stochastic gradient descent with backpropagation.
//
// The package provides:
//   - Dense: one fully connected layer (affine transform + activation)
//   - Activation: a closed set of activation/derivative pairs
//   - Network: two Dense layers in series plus the training loop
//
// Everything runs single-threaded on flat float32 buffers; there is no
// batching, no momentum and no model serialization.
package nn

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/shallow-ml/shallow/internal/dataset"
)

// EpochFunc receives the epoch index and the squared error totalled over
// every example in that epoch.
type EpochFunc func(epoch int, sse float32)

// Network is a feed-forward network with exactly two trainable layers: a
// hidden layer mapping the input to hidden units and an output layer
// mapping hidden units to the output. The hidden layer's output width
// always equals the output layer's input width.
//
// A Network is either untrained (fresh random weights) or trained to some
// number of full passes; Train is a single blocking call with no
// pause/resume.
type Network struct {
	hidden *Dense
	output *Dense
}

// NewNetwork creates a two-layer network with the given widths. All weights
// and biases in both layers are drawn from rng (see NewDense), so the same
// seed reproduces the same starting parameters.
func NewNetwork(inputs, hidden, outputs int, act Activation, rng *rand.Rand) (*Network, error) {
	hiddenLayer, err := NewDense(inputs, hidden, act, rng)
	if err != nil {
		return nil, fmt.Errorf("nn: hidden layer: %w", err)
	}
	outputLayer, err := NewDense(hidden, outputs, act, rng)
	if err != nil {
		return nil, fmt.Errorf("nn: output layer: %w", err)
	}
	return &Network{hidden: hiddenLayer, output: outputLayer}, nil
}

// Evaluate runs one forward pass and returns the network's outputs. It is a
// pure function of the current parameters and the input; the network is not
// mutated. Panics if inputs does not have the network's input width.
func (n *Network) Evaluate(inputs []float32) []float32 {
	hiddenValues := make([]float32, n.hidden.outFeatures)
	outputs := make([]float32, n.output.outFeatures)
	n.hidden.Forward(inputs, hiddenValues)
	n.output.Forward(hiddenValues, outputs)
	return outputs
}

// Train mutates both layers by running per-sample gradient descent over the
// example set. Examples are visited in their given order every epoch, for
// exactly epochs passes; there is no shuffling, no convergence check and no
// early stopping. After each epoch the totalled squared error is passed to
// report when it is non-nil.
//
// Per example the steps are:
//  1. forward through both layers, keeping both layers' activations
//  2. output deltas from the squared error against the target
//  3. hidden deltas through the output layer's still-unmodified weights
//  4. weight updates for both layers
//
// Step 3 must precede the output layer's update in step 4; the updates
// themselves touch disjoint parameter sets.
func (n *Network) Train(examples *dataset.Examples, epochs int, lr float32, report EpochFunc) error {
	if examples == nil || examples.Len() == 0 {
		return errors.New("nn: no training examples")
	}
	if w := examples.InputWidth(); w != n.hidden.inFeatures {
		return fmt.Errorf("nn: example input width %d does not match network input width %d", w, n.hidden.inFeatures)
	}
	if w := examples.TargetWidth(); w != n.output.outFeatures {
		return fmt.Errorf("nn: example target width %d does not match network output width %d", w, n.output.outFeatures)
	}
	if epochs <= 0 {
		return fmt.Errorf("nn: epochs must be > 0 (got %d)", epochs)
	}
	if lr <= 0 || math.IsNaN(float64(lr)) {
		return fmt.Errorf("nn: learning rate must be > 0 (got %g)", lr)
	}

	// Scratch buffers are shared across every example and epoch; the hot
	// loop does not allocate.
	hiddenValues := make([]float32, n.hidden.outFeatures)
	hiddenDeltas := make([]float32, n.hidden.outFeatures)
	outputValues := make([]float32, n.output.outFeatures)
	outputDeltas := make([]float32, n.output.outFeatures)

	for epoch := 0; epoch < epochs; epoch++ {
		var totalSSE float32

		for t := 0; t < examples.Len(); t++ {
			inputs := examples.Input(t)
			expected := examples.Target(t)

			n.hidden.Forward(inputs, hiddenValues)
			n.output.Forward(hiddenValues, outputValues)

			totalSSE += n.output.OutputDeltas(outputValues, expected, outputDeltas)
			n.hidden.BackpropDeltas(n.output, outputDeltas, hiddenValues, hiddenDeltas)

			n.output.Update(hiddenValues, outputDeltas, lr)
			n.hidden.Update(inputs, hiddenDeltas, lr)
		}

		if report != nil {
			report(epoch, totalSSE)
		}
	}
	return nil
}

// Hidden returns the input-to-hidden layer.
func (n *Network) Hidden() *Dense {
	return n.hidden
}

// Output returns the hidden-to-output layer.
func (n *Network) Output() *Dense {
	return n.output
}

// InFeatures returns the network's input width.
func (n *Network) InFeatures() int {
	return n.hidden.inFeatures
}

// OutFeatures returns the network's output width.
func (n *Network) OutFeatures() int {
	return n.output.outFeatures
}
