package main

import (
	"flag"
	"log"

	"github.com/shallow-ml/shallow/internal/config"
	"github.com/shallow-ml/shallow/internal/trainer"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	hidden := flag.Int("hidden", 0, "Hidden units (overrides config)")
	epochs := flag.Int("epochs", 0, "Training epochs (overrides config)")
	lr := flag.Float64("lr", 0, "Learning rate (overrides config)")
	seed := flag.Int64("seed", 0, "PRNG seed for weight initialization (overrides config)")
	activation := flag.String("activation", "", "Activation: elu, sigmoid, relu or softplus (overrides config)")
	logEvery := flag.Int("log-every", 0, "Log the epoch error every N epochs (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	cfg.ApplyOverrides(config.Overrides{
		HiddenUnits:  *hidden,
		Epochs:       *epochs,
		LearningRate: *lr,
		Seed:         *seed,
		Activation:   *activation,
		LogEvery:     *logEvery,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	rc, err := trainer.FromConfig(cfg)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if err := trainer.Run(rc); err != nil {
		log.Fatalf("training failed: %v", err)
	}
}
