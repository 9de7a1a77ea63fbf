package search

import (
	"errors"
	"math"
	"runtime"

	"lintang/metronav/pkg/concurrent"
	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/util"
)

// NearestStations stasiun dengan jarak euclidean minimum ke (x, y). yang seri ikut semua, ascending by id.
func NearestStations(n *datastructure.Network, x, y float64) ([]int32, error) {
	if n == nil || n.NumStations() == 0 {
		return nil, ErrEmptyNetwork
	}
	return n.NearestStations(x, y), nil
}

type originResult struct {
	index int
	path  *datastructure.Path
	err   error
}

// AStarMultipleOrigins A* dari setiap stasiun terdekat ke (x, y), ambil hasil dengan G terkecil.
// G sama -> origin dengan id terkecil. A* per origin saling independen jadi dijalankan di worker pool.
func AStarMultipleOrigins(n *datastructure.Network, x, y float64, destination int32, mode CostMode) (*datastructure.Path, error) {
	c, err := CriterionFor(mode)
	if err != nil {
		return nil, err
	}
	origins, err := NearestStations(n, x, y)
	if err != nil {
		return nil, err
	}
	if err := validateEndpoints(n, origins[0], destination); err != nil {
		return nil, err
	}

	numWorkers := runtime.NumCPU()
	if len(origins) < numWorkers {
		numWorkers = len(origins)
	}
	workers := concurrent.NewWorkerPool[concurrent.OriginJobItem, originResult](numWorkers, len(origins))
	for i, origin := range origins {
		workers.AddJob(concurrent.OriginJobItem{Index: i, Origin: origin})
	}
	workers.Close()

	workers.Start(func(job concurrent.OriginJobItem) originResult {
		p, err := aStar(n, job.Origin, destination, c)
		return originResult{index: job.Index, path: p, err: err}
	})
	workers.Wait()

	results := make([]originResult, len(origins))
	for res := range workers.CollectResults() {
		results[res.index] = res
	}

	// origin yang tidak sampai ke destination dapat cost +Inf
	costs := make([]float64, len(results))
	for i, res := range results {
		switch {
		case res.err == nil:
			costs[i] = res.path.G
		case errors.Is(res.err, ErrRouteNotFound):
			costs[i] = math.Inf(1)
		default:
			return nil, res.err
		}
	}
	best := util.MinIndex(costs)
	if math.IsInf(costs[best], 1) {
		return nil, ErrRouteNotFound
	}
	return results[best].path, nil
}
