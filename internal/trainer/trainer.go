// Package trainer wires the network, example set and reporting together
// for one training run.
package trainer

import (
	"log"
	"math/rand"

	"github.com/shallow-ml/shallow/internal/config"
	"github.com/shallow-ml/shallow/internal/dataset"
	"github.com/shallow-ml/shallow/internal/metrics"
	"github.com/shallow-ml/shallow/internal/nn"
)

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	HiddenUnits  int
	Epochs       int
	LearningRate float32
	Seed         int64
	Activation   nn.Activation
	LogEvery     int
	Examples     *dataset.Examples // defaults to dataset.Ramp when nil
}

// FromConfig resolves a validated config.Config into a RunConfig.
func FromConfig(cfg *config.Config) (RunConfig, error) {
	act, err := nn.ParseActivation(cfg.Activation)
	if err != nil {
		return RunConfig{}, err
	}
	return RunConfig{
		HiddenUnits:  cfg.HiddenUnits,
		Epochs:       cfg.Epochs,
		LearningRate: cfg.LearningRate,
		Seed:         cfg.Seed,
		Activation:   act,
		LogEvery:     cfg.LogEvery,
	}, nil
}

// Run executes the training workload: it builds a seeded network, trains it
// over the example set, logs the per-epoch error and finally logs what the
// network learned for each example.
func Run(rc RunConfig) error {
	if rc.LogEvery <= 0 {
		rc.LogEvery = 1
	}
	examples := rc.Examples
	if examples == nil {
		examples = dataset.Ramp()
	}

	rng := rand.New(rand.NewSource(rc.Seed))
	net, err := nn.NewNetwork(examples.InputWidth(), rc.HiddenUnits, examples.TargetWidth(), rc.Activation, rng)
	if err != nil {
		return err
	}

	var history metrics.History
	err = net.Train(examples, rc.Epochs, rc.LearningRate, func(epoch int, sse float32) {
		history.Record(epoch, sse)
		if (epoch+1)%rc.LogEvery == 0 || epoch == rc.Epochs-1 {
			log.Printf("epoch=%d error=%.3f", epoch, sse)
		}
	})
	if err != nil {
		return err
	}

	snap := history.Snapshot()
	log.Printf("trained epochs=%d error_first=%.3f error_last=%.3f error_best=%.3f best_epoch=%d",
		snap.Epochs, snap.First, snap.Last, snap.Best, snap.BestEpoch)

	for t := 0; t < examples.Len(); t++ {
		inputs := examples.Input(t)
		log.Printf("input=%.3f output=%.3f target=%.3f", inputs, net.Evaluate(inputs), examples.Target(t))
	}
	return nil
}
