package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/drakos74/free-net/internal/math/ml"
	"github.com/drakos74/free-net/infra/config"
	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/free-net/internal/storage"
	"github.com/drakos74/free-net/internal/storage/file/json"
	"github.com/drakos74/free-net/internal/train"
	"github.com/drakos74/free-net/internal/train/backprop"
	"github.com/drakos74/free-net/internal/train/genetic"
	"github.com/rs/zerolog"
)

const (
	Backprop = "backprop"
	Genetic  = "genetic"
)

const (
	defaultConfig = "xor"
	table         = "networks"
)

// Layer describes one layer of the topology.
type Layer struct {
	Neurons    int    `json:"neurons"`
	Activation string `json:"activation"`
}

// Config is the training configuration.
type Config struct {
	Topology    []Layer         `json:"topology"`
	Trainer     string          `json:"trainer"`
	Backprop    backprop.Config `json:"backprop"`
	Genetic     genetic.Config  `json:"genetic"`
	Run         train.Options   `json:"run"`
	Set         *train.Set      `json:"set,omitempty"`
	Attempts    int             `json:"attempts"`
	Seed        int64           `json:"seed"`
	LogLevel    string          `json:"log_level"`
	MetricsPort int             `json:"metrics_port"`
	StorageDir  string          `json:"storage_dir"`
}

// readConfig loads the given config file, or the default exclusive-or config if no file is given.
func readConfig(file string) (Config, error) {
	var cfg Config
	if file == "" {
		config.MustLoad(defaultConfig, &cfg)
		return cfg, nil
	}
	_, err := config.Load(file, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Persistence creates the storage shard for the given trainer.
// Networks are kept as json files under the storage dir, unless the dir is disabled.
func (c Config) Persistence(trainer string) (storage.Persistence, error) {
	if c.StorageDir == storage.Disabled {
		return storage.VoidShard(table)(trainer)
	}
	if c.StorageDir != "" {
		storage.DefaultDir = c.StorageDir
	}
	return json.BlobShard(table)(trainer)
}

// TrainingSet returns the configured training set, the exclusive-or table if none is given.
func (c Config) TrainingSet() train.Set {
	if c.Set == nil {
		return train.XOR()
	}
	return *c.Set
}

// Level parses the configured log level, defaults to info.
func (c Config) Level() zerolog.Level {
	if c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Network builds the configured topology.
func (c Config) Network(rng *rand.Rand) (*net.Network, error) {
	if len(c.Topology) < 2 {
		return nil, fmt.Errorf("topology needs at least an input and an output layer: %d", len(c.Topology))
	}
	network := net.New(rng)
	for i, l := range c.Topology {
		if l.Neurons <= 0 {
			return nil, fmt.Errorf("layer %d has no neurons: %w", i, net.SizeMismatchErr)
		}
		activation, err := ml.ByName(l.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		network.Add(l.Neurons, activation)
	}
	return network, nil
}

// NewTrainer creates the configured trainer for the network.
func (c Config) NewTrainer(network *net.Network) (train.Trainer, error) {
	set := c.TrainingSet()
	switch strings.ToLower(c.Trainer) {
	case Backprop, "":
		trainer, err := backprop.New(network, set, c.Backprop)
		if err != nil {
			return nil, err
		}
		return trainer, nil
	case Genetic:
		cfg := c.Genetic
		if cfg.Seed == 0 {
			cfg.Seed = c.Seed
		}
		trainer, err := genetic.New(network, set, cfg)
		if err != nil {
			return nil, err
		}
		return trainer, nil
	}
	return nil, fmt.Errorf("unknown trainer '%s'", c.Trainer)
}
