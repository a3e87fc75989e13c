package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"

	"github.com/drakos74/free-net/internal/metrics"
	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/free-net/internal/net/codec"
	"github.com/drakos74/free-net/internal/storage"
	"github.com/drakos74/free-net/internal/train"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configFile = flag.String("config", "", "training config file, the exclusive-or config if empty")
	trainer    = flag.String("trainer", "", "trainer override: backprop, genetic")
	load       = flag.Bool("load", false, "load the stored network instead of training a new one")
	serve      = flag.Int("serve", 0, "port to serve predictions of the network on, after training")
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	flag.Parse()

	cfg, err := readConfig(*configFile)
	if err != nil {
		panic(err.Error())
	}
	if *trainer != "" {
		cfg.Trainer = *trainer
	}
	if cfg.Trainer == "" {
		cfg.Trainer = Backprop
	}
	cfg.Trainer = strings.ToLower(cfg.Trainer)
	zerolog.SetGlobalLevel(cfg.Level())

	if cfg.MetricsPort > 0 {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())
			err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.MetricsPort), mux)
			if err != nil {
				log.Error().Err(err).Int("port", cfg.MetricsPort).Msg("metrics server stopped")
			}
		}()
	}

	ctx, cnl := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cnl()

	rng := rand.New(rand.NewSource(cfg.Seed))
	network, err := cfg.Network(rng)
	if err != nil {
		panic(err.Error())
	}

	persistence, err := cfg.Persistence(cfg.Trainer)
	if err != nil {
		panic(err.Error())
	}
	key := storage.Key{
		Hash:     cfg.Seed,
		Topology: codec.Topology(network),
		Label:    cfg.Trainer,
	}

	if *load {
		err = restore(persistence, key, network)
		if err != nil {
			panic(err.Error())
		}
	} else {
		network, err = run(ctx, cfg, network)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn().Msg("training cancelled")
				return
			}
			panic(err.Error())
		}
		err = persistence.Store(key, codec.Encode(network))
		if err != nil {
			log.Error().Err(err).Str("key", key.Path()).Msg("could not store network")
		} else {
			log.Info().Str("key", key.Path()).Str("dir", storage.DefaultDir).Msg("stored network")
		}
	}

	err = predictions(os.Stdout, network, cfg.TrainingSet())
	if err != nil {
		panic(err.Error())
	}

	if *serve > 0 {
		srv := newServer(*serve, network)
		go func() {
			err := srv.Run()
			if err != nil {
				panic(err.Error())
			}
		}()
		<-ctx.Done()
	}
}

// run trains the network, resetting its weights and starting over
// as long as the error does not drop below the threshold.
func run(ctx context.Context, cfg Config, network *net.Network) (*net.Network, error) {
	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var best *net.Network
	bestErr := 0.0
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			network.Reset()
		}
		t, err := cfg.NewTrainer(network)
		if err != nil {
			return nil, err
		}
		result, err := train.Run(ctx, cfg.Trainer, t, cfg.Run)
		if err != nil {
			return nil, err
		}
		trained, err := t.Network()
		if err != nil {
			return nil, err
		}
		if best == nil || result.Error < bestErr {
			best = trained.Clone(rand.New(rand.NewSource(cfg.Seed)))
			bestErr = result.Error
		}
		log.Info().
			Str("id", result.ID).
			Int("attempt", attempt).
			Int("iterations", result.Iterations).
			Float64("error", result.Error).
			Float64("window-avg", result.Window.Avg()).
			Float64("window-stdev", result.Window.StDev()).
			Bool("converged", result.Converged).
			Msg("training attempt")
		if result.Converged {
			plot(os.Stdout, cfg.Trainer, result.History)
			return best, nil
		}
	}
	log.Warn().Int("attempts", attempts).Float64("error", bestErr).Msg("training did not converge")
	return best, nil
}

// restore loads the stored weight vector for the given key into the network.
func restore(persistence storage.Persistence, key storage.Key, network *net.Network) error {
	var vector []float64
	err := persistence.Load(key, &vector)
	if err != nil {
		return fmt.Errorf("could not load network '%s': %w", key.Path(), err)
	}
	err = codec.Decode(vector, network)
	if err != nil {
		return fmt.Errorf("could not restore network '%s': %w", key.Path(), err)
	}
	log.Info().Str("key", key.Path()).Msg("loaded network")
	return nil
}
