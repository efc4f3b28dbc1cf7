// Package dataset provides the flat-buffer example sets consumed by the
// training loop.
package dataset

import "fmt"

// Examples is an ordered set of (input, target) pairs stored as two
// parallel flat buffers: example t's input occupies
// inputs[t*inputWidth : (t+1)*inputWidth], and likewise for targets.
// The training loop treats an Examples as an immutable read-only view.
type Examples struct {
	inputs      []float32
	targets     []float32
	inputWidth  int
	targetWidth int
	count       int
}

// New validates and wraps the given flat buffers. Both widths must be
// positive, both buffers must divide evenly into their width, and the two
// buffers must describe the same number of examples. The buffers are not
// copied; callers must not mutate them while the set is in use.
func New(inputs, targets []float32, inputWidth, targetWidth int) (*Examples, error) {
	if inputWidth <= 0 {
		return nil, fmt.Errorf("dataset: input width must be > 0 (got %d)", inputWidth)
	}
	if targetWidth <= 0 {
		return nil, fmt.Errorf("dataset: target width must be > 0 (got %d)", targetWidth)
	}
	if len(inputs)%inputWidth != 0 {
		return nil, fmt.Errorf("dataset: %d input values do not divide into examples of width %d", len(inputs), inputWidth)
	}
	if len(targets)%targetWidth != 0 {
		return nil, fmt.Errorf("dataset: %d target values do not divide into examples of width %d", len(targets), targetWidth)
	}

	count := len(inputs) / inputWidth
	if got := len(targets) / targetWidth; got != count {
		return nil, fmt.Errorf("dataset: %d inputs but %d targets", count, got)
	}

	return &Examples{
		inputs:      inputs,
		targets:     targets,
		inputWidth:  inputWidth,
		targetWidth: targetWidth,
		count:       count,
	}, nil
}

// Len returns the number of examples.
func (e *Examples) Len() int {
	return e.count
}

// InputWidth returns the number of values per input.
func (e *Examples) InputWidth() int {
	return e.inputWidth
}

// TargetWidth returns the number of values per target.
func (e *Examples) TargetWidth() int {
	return e.targetWidth
}

// Input returns example t's input as a view into the underlying buffer.
// Callers must not modify it.
func (e *Examples) Input(t int) []float32 {
	return e.inputs[t*e.inputWidth : (t+1)*e.inputWidth]
}

// Target returns example t's expected output as a view into the underlying
// buffer. Callers must not modify it.
func (e *Examples) Target(t int) []float32 {
	return e.targets[t*e.targetWidth : (t+1)*e.targetWidth]
}

// Ramp returns the built-in demo set mapping a rising input to a falling
// target: {0.0->1.0, 0.2->0.8, 0.8->0.2, 1.0->0.0}.
func Ramp() *Examples {
	e, err := New(
		[]float32{0.0, 0.2, 0.8, 1.0},
		[]float32{1.0, 0.8, 0.2, 0.0},
		1, 1,
	)
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return e
}
