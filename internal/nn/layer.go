package nn

import (
	"fmt"
	"math/rand"
)

// Weight and bias initialization range: uniform over [0.5, 0.9).
const (
	initBase = 0.5
	initSpan = 0.4
)

// Dense is one fully connected layer: an affine transform (weights plus
// biases) followed by a pointwise nonlinear activation.
//
// Weights are stored row-major by output unit, so weights[o*inFeatures+i]
// is the weight from input i to output unit o. Both buffers are allocated
// once at construction, never resized, and exclusively owned by the layer;
// the only mutation path is Update.
type Dense struct {
	inFeatures  int
	outFeatures int
	weights     []float32 // [outFeatures, inFeatures]
	biases      []float32 // [outFeatures]
	act         Activation
}

// NewDense creates a fully connected layer with inFeatures inputs and
// outFeatures outputs. Every weight and bias is drawn independently from a
// uniform distribution over [0.5, 0.9) using the supplied source, so a
// seeded *rand.Rand gives a reproducible starting point.
//
// Returns an error if either dimension is not positive: propagation through
// a zero-width layer is undefined.
func NewDense(inFeatures, outFeatures int, act Activation, rng *rand.Rand) (*Dense, error) {
	if inFeatures <= 0 {
		return nil, fmt.Errorf("nn: inFeatures must be > 0 (got %d)", inFeatures)
	}
	if outFeatures <= 0 {
		return nil, fmt.Errorf("nn: outFeatures must be > 0 (got %d)", outFeatures)
	}

	d := &Dense{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weights:     make([]float32, inFeatures*outFeatures),
		biases:      make([]float32, outFeatures),
		act:         act,
	}
	randomize(d.weights, rng)
	randomize(d.biases, rng)
	return d, nil
}

func randomize(values []float32, rng *rand.Rand) {
	for i := range values {
		values[i] = initBase + initSpan*rng.Float32()
	}
}

// Forward propagates inputs through the layer, writing one activated value
// per output unit into outputs. Deterministic; the layer is not mutated.
//
// Panics if the buffer lengths do not match the layer's widths.
func (d *Dense) Forward(inputs, outputs []float32) {
	if len(inputs) != d.inFeatures {
		panic(fmt.Sprintf("nn: Dense.Forward: expected %d inputs, got %d", d.inFeatures, len(inputs)))
	}
	if len(outputs) != d.outFeatures {
		panic(fmt.Sprintf("nn: Dense.Forward: expected %d outputs, got %d", d.outFeatures, len(outputs)))
	}

	for o := 0; o < d.outFeatures; o++ {
		weights := d.weights[o*d.inFeatures : (o+1)*d.inFeatures]
		sum := d.biases[o]
		for i, x := range inputs {
			sum += x * weights[i]
		}
		outputs[o] = d.act.Apply(sum)
	}
}

// OutputDeltas computes the error deltas for this layer acting as the
// network's output layer under a squared-error loss. outputs must be the
// values this layer produced via Forward for the current example and
// expected the training targets. Deltas are written into deltas; the return
// value is the squared error summed over all output units.
func (d *Dense) OutputDeltas(outputs, expected, deltas []float32) float32 {
	if len(outputs) != d.outFeatures || len(expected) != d.outFeatures || len(deltas) != d.outFeatures {
		panic(fmt.Sprintf("nn: Dense.OutputDeltas: buffers must have %d values (got %d/%d/%d)",
			d.outFeatures, len(outputs), len(expected), len(deltas)))
	}

	var sse float32
	for o, out := range outputs {
		err := expected[o] - out
		deltas[o] = err * d.act.DerivOutput(out)
		sse += err * err
	}
	return sse
}

// BackpropDeltas computes this layer's deltas from the downstream layer's
// deltas, propagating the error backward through next's weight matrix.
// values must be this layer's outputs from the forward pass of the same
// example, and next's weights must not have been updated for this example
// yet.
func (d *Dense) BackpropDeltas(next *Dense, nextDeltas, values, deltas []float32) {
	if next.inFeatures != d.outFeatures {
		panic(fmt.Sprintf("nn: Dense.BackpropDeltas: next layer takes %d inputs, this layer has %d outputs",
			next.inFeatures, d.outFeatures))
	}
	if len(nextDeltas) != next.outFeatures {
		panic(fmt.Sprintf("nn: Dense.BackpropDeltas: expected %d next deltas, got %d",
			next.outFeatures, len(nextDeltas)))
	}
	if len(values) != d.outFeatures || len(deltas) != d.outFeatures {
		panic(fmt.Sprintf("nn: Dense.BackpropDeltas: buffers must have %d values (got %d/%d)",
			d.outFeatures, len(values), len(deltas)))
	}

	for o := 0; o < d.outFeatures; o++ {
		var err float32
		for k, nd := range nextDeltas {
			err += nd * next.weights[k*next.inFeatures+o]
		}
		deltas[o] = err * d.act.DerivOutput(values[o])
	}
}

// Update applies one gradient step in place:
//
//	weights[o,i] += lr * deltas[o] * inputs[i]
//	biases[o]    += lr * deltas[o]
//
// inputs must be the same values that produced the activations behind
// deltas; passing anything else corrupts the gradient direction without any
// error being raised.
func (d *Dense) Update(inputs, deltas []float32, lr float32) {
	if len(inputs) != d.inFeatures {
		panic(fmt.Sprintf("nn: Dense.Update: expected %d inputs, got %d", d.inFeatures, len(inputs)))
	}
	if len(deltas) != d.outFeatures {
		panic(fmt.Sprintf("nn: Dense.Update: expected %d deltas, got %d", d.outFeatures, len(deltas)))
	}

	for o, delta := range deltas {
		weights := d.weights[o*d.inFeatures : (o+1)*d.inFeatures]
		step := lr * delta
		for i, x := range inputs {
			weights[i] += step * x
		}
		d.biases[o] += step
	}
}

// InFeatures returns the number of inputs the layer takes.
func (d *Dense) InFeatures() int {
	return d.inFeatures
}

// OutFeatures returns the number of output units.
func (d *Dense) OutFeatures() int {
	return d.outFeatures
}

// Weights returns the layer's weight buffer, row-major by output unit.
// Mutating it changes the layer.
func (d *Dense) Weights() []float32 {
	return d.weights
}

// Biases returns the layer's bias buffer. Mutating it changes the layer.
func (d *Dense) Biases() []float32 {
	return d.biases
}
