package main

import (
	"fmt"
	"io"

	netmath "github.com/drakos74/free-net/internal/math"
	"github.com/drakos74/free-net/internal/net"
	"github.com/drakos74/free-net/internal/train"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

const maxPlotPoints = 120

// plot draws the error curve of the training run.
func plot(w io.Writer, name string, history []float64) {
	if len(history) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, asciigraph.Plot(sample(history, maxPlotPoints),
		asciigraph.Height(12),
		asciigraph.Caption(fmt.Sprintf("%s error over %d iterations", name, len(history)))))
}

// sample reduces the series to at most n points, keeping the first and last one.
func sample(series []float64, n int) []float64 {
	if len(series) <= n {
		return series
	}
	points := make([]float64, n)
	step := float64(len(series)-1) / float64(n-1)
	for i := range points {
		points[i] = series[int(float64(i)*step)]
	}
	points[n-1] = series[len(series)-1]
	return points
}

// predictions renders the network outputs for every sample of the set.
func predictions(w io.Writer, network *net.Network, set train.Set) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"input", "ideal", "actual"})
	for i := range set.Input {
		out, err := network.ComputeOutputs(set.Input[i])
		if err != nil {
			return err
		}
		table.Append([]string{
			netmath.FormatVector(set.Input[i]),
			netmath.FormatVector(set.Ideal[i]),
			netmath.FormatVector(out),
		})
	}
	table.Render()
	return nil
}
