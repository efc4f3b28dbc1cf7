// Package metrics tracks the per-epoch training error of a run.
package metrics

import "fmt"

// History accumulates the total squared error reported after each epoch,
// in epoch order. The zero value is ready to use.
type History struct {
	errors []float32
}

// Record stores the error reported for an epoch. Epochs must arrive in
// order starting at zero; a gap or repeat is a programming error and
// panics.
func (h *History) Record(epoch int, sse float32) {
	if epoch != len(h.errors) {
		panic(fmt.Sprintf("metrics: epoch %d reported out of order (want %d)", epoch, len(h.errors)))
	}
	h.errors = append(h.errors, sse)
}

// Len returns the number of recorded epochs.
func (h *History) Len() int {
	return len(h.errors)
}

// Snapshot summarizes the recorded history.
type Snapshot struct {
	Epochs    int
	First     float32
	Last      float32
	Best      float32
	BestEpoch int
}

// Snapshot returns a summary of the run so far. The zero Snapshot is
// returned when nothing has been recorded.
func (h *History) Snapshot() Snapshot {
	if len(h.errors) == 0 {
		return Snapshot{}
	}

	snap := Snapshot{
		Epochs: len(h.errors),
		First:  h.errors[0],
		Last:   h.errors[len(h.errors)-1],
		Best:   h.errors[0],
	}
	for epoch, sse := range h.errors {
		if sse < snap.Best {
			snap.Best = sse
			snap.BestEpoch = epoch
		}
	}
	return snap
}

// Improved reports whether the last recorded error is below the first.
// At least two epochs must have been recorded.
func (h *History) Improved() bool {
	return len(h.errors) >= 2 && h.errors[len(h.errors)-1] < h.errors[0]
}
