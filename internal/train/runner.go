package train

import (
	"context"
	"fmt"

	"github.com/drakos74/free-net/internal/buffer"
	"github.com/drakos74/free-net/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultWindow = 100

// Options controls the training loop.
type Options struct {
	MaxIterations int     `json:"max_iterations"`
	Threshold     float64 `json:"threshold"`
	Window        int     `json:"window"`
}

// Result is the outcome of a training run.
type Result struct {
	ID         string
	Iterations int
	Error      float64
	Converged  bool
	History    []float64
	Window     buffer.Stats
}

// Run iterates the trainer until the error drops below the threshold,
// the max number of iterations is reached or the context is cancelled.
// The context is only checked between iterations.
func Run(ctx context.Context, name string, trainer Trainer, options Options) (Result, error) {
	if options.MaxIterations <= 0 {
		return Result{}, fmt.Errorf("max iterations must be positive: %d", options.MaxIterations)
	}
	if options.Window <= 0 {
		options.Window = defaultWindow
	}

	result := Result{
		ID:      uuid.New().String(),
		History: make([]float64, 0, options.MaxIterations),
	}
	window := buffer.NewRing(options.Window)

	log.Info().
		Str("id", result.ID).
		Str("trainer", name).
		Int("max-iterations", options.MaxIterations).
		Float64("threshold", options.Threshold).
		Msg("start training")

	for result.Iterations < options.MaxIterations {
		select {
		case <-ctx.Done():
			result.Window = window.Stats()
			log.Warn().
				Str("id", result.ID).
				Str("trainer", name).
				Int("iteration", result.Iterations).
				Float64("error", result.Error).
				Msg("training interrupted")
			return result, ctx.Err()
		default:
		}

		if err := trainer.Iteration(); err != nil {
			result.Window = window.Stats()
			return result, fmt.Errorf("iteration %d failed for '%s': %w", result.Iterations, name, err)
		}
		result.Iterations++
		result.Error = trainer.Error()
		result.History = append(result.History, result.Error)
		window.Push(result.Error)
		metrics.Observer.Iteration(name, result.Error)

		log.Debug().
			Str("id", result.ID).
			Str("trainer", name).
			Int("iteration", result.Iterations).
			Float64("error", result.Error).
			Msg("iteration")

		if result.Error < options.Threshold {
			result.Converged = true
			break
		}
	}

	result.Window = window.Stats()
	if result.Converged {
		log.Info().
			Str("id", result.ID).
			Str("trainer", name).
			Int("iterations", result.Iterations).
			Float64("error", result.Error).
			Msg("training converged")
	} else {
		log.Warn().
			Str("id", result.ID).
			Str("trainer", name).
			Int("iterations", result.Iterations).
			Float64("error", result.Error).
			Msg("training reached max iterations")
	}
	return result, nil
}
