package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/drakos74/free-net/internal/metrics"
	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/free-net/internal/server"
)

type predictRequest struct {
	Input []float64 `json:"input"`
}

type predictResponse struct {
	Output []float64 `json:"output"`
}

// newServer exposes the trained network for predictions.
func newServer(port int, network *net.Network) *server.Server {
	return server.NewServer("free-net", port).
		Add(server.Live()).
		Add(predict(network)).
		Handle("/metrics", metrics.Handler())
}

func predict(network *net.Network) server.Route {
	return server.Route{
		Action: server.Api,
		Path:   "predict",
		Method: server.POST,
		Exec: func(r *http.Request) ([]byte, int, error) {
			var request predictRequest
			if err := server.ReadJson(r, &request); err != nil {
				return nil, http.StatusBadRequest, fmt.Errorf("could not read request: %w", err)
			}
			out, err := network.ComputeOutputs(request.Input)
			if errors.Is(err, net.SizeMismatchErr) {
				return nil, http.StatusBadRequest, err
			} else if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			b, err := json.Marshal(predictResponse{Output: out.Copy()})
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return b, http.StatusOK, nil
		},
	}
}
