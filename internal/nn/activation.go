package nn

import (
	"fmt"
	"math"
)

// Activation selects the nonlinearity applied after a layer's affine
// transform.
//
// Each variant carries the activation function and its derivative as a
// single matched pair. The derivative is expressed in terms of the
// activation's own output, which lets the backward pass reuse the values
// already produced by the forward pass instead of keeping the pre-activation
// sums around. Swapping one half of the pair without the other silently
// breaks convergence, so the pairing is sealed inside this type.
type Activation int

// Supported activations.
const (
	// ELU is the exponential linear unit: x for x >= 0, e^x - 1 otherwise.
	ELU Activation = iota
	// Sigmoid is the logistic function 1 / (1 + e^-x).
	Sigmoid
	// ReLU is the rectified linear unit max(0, x).
	ReLU
	// Softplus is log(1 + e^x), a smooth approximation of ReLU.
	Softplus
)

// ParseActivation maps a config tag onto an Activation.
//
// Recognized tags: "elu", "sigmoid", "relu", "softplus".
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "elu":
		return ELU, nil
	case "sigmoid":
		return Sigmoid, nil
	case "relu":
		return ReLU, nil
	case "softplus":
		return Softplus, nil
	default:
		return 0, fmt.Errorf("nn: unknown activation %q", name)
	}
}

// String returns the config tag for the activation.
func (a Activation) String() string {
	switch a {
	case ELU:
		return "elu"
	case Sigmoid:
		return "sigmoid"
	case ReLU:
		return "relu"
	case Softplus:
		return "softplus"
	default:
		return fmt.Sprintf("Activation(%d)", int(a))
	}
}

// Apply computes the activation at x.
//
// Large magnitudes go through math.Exp unguarded; overflow is not clamped
// so that runs stay reproducible.
func (a Activation) Apply(x float32) float32 {
	switch a {
	case ELU:
		if x >= 0 {
			return x
		}
		return float32(math.Exp(float64(x))) - 1
	case Sigmoid:
		return 1 / (1 + float32(math.Exp(float64(-x))))
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	case Softplus:
		return float32(math.Log1p(math.Exp(float64(x))))
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}

// DerivOutput computes the activation's derivative from the activation's
// own output y, so that DerivOutput(Apply(x)) equals the true derivative of
// Apply at x:
//
//	ELU:      1 for y >= 0, y + 1 otherwise (y = e^x - 1 gives e^x = y + 1)
//	Sigmoid:  y * (1 - y)
//	ReLU:     1 for y > 0, 0 otherwise
//	Softplus: 1 - e^-y (y = log(1 + e^x) gives sigmoid(x) = 1 - e^-y)
//
// Passing anything other than a value produced by Apply is a contract
// violation that cannot be detected here.
func (a Activation) DerivOutput(y float32) float32 {
	switch a {
	case ELU:
		if y >= 0 {
			return 1
		}
		return y + 1
	case Sigmoid:
		return y * (1 - y)
	case ReLU:
		if y > 0 {
			return 1
		}
		return 0
	case Softplus:
		return 1 - float32(math.Exp(float64(-y)))
	default:
		panic(fmt.Sprintf("nn: unknown activation %d", int(a)))
	}
}
