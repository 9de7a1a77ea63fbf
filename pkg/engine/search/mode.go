package search

import (
	"fmt"
	"strings"

	"lintang/metronav/pkg/datastructure"
)

type CostMode int

const (
	Adjacency CostMode = iota
	Time
	Distance
	Transfers
)

func (m CostMode) String() string {
	switch m {
	case Adjacency:
		return "adjacency"
	case Time:
		return "time"
	case Distance:
		return "distance"
	case Transfers:
		return "transfers"
	default:
		return fmt.Sprintf("CostMode(%d)", int(m))
	}
}

// ParseCostMode terima nama mode atau digit 0..3.
func ParseCostMode(s string) (CostMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacency", "0":
		return Adjacency, nil
	case "time", "1":
		return Time, nil
	case "distance", "2":
		return Distance, nil
	case "transfers", "3":
		return Transfers, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Criterion pasangan cost & heuristic untuk satu cost mode. dipilih sekali per search.
type Criterion interface {
	Mode() CostMode
	// EdgeCost cost satu edge from->to dengan weight (waktu) dari adjacency.
	EdgeCost(n *datastructure.Network, from, to datastructure.Station, weight float64) float64
	// Estimate estimasi sisa cost dari station ke destination.
	Estimate(n *datastructure.Network, from, dest datastructure.Station) float64
}

// CriterionFor ErrInvalidMode kalau mode tidak dikenal.
func CriterionFor(mode CostMode) (Criterion, error) {
	switch mode {
	case Adjacency:
		return adjacencyCriterion{}, nil
	case Time:
		return timeCriterion{}, nil
	case Distance:
		return distanceCriterion{}, nil
	case Transfers:
		return transfersCriterion{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode))
}

type adjacencyCriterion struct{}

func (adjacencyCriterion) Mode() CostMode { return Adjacency }

func (adjacencyCriterion) EdgeCost(_ *datastructure.Network, _, _ datastructure.Station, _ float64) float64 {
	return 1
}

func (adjacencyCriterion) Estimate(_ *datastructure.Network, from, dest datastructure.Station) float64 {
	if from.ID != dest.ID {
		return 1
	}
	return 0
}

type timeCriterion struct{}

func (timeCriterion) Mode() CostMode { return Time }

func (timeCriterion) EdgeCost(_ *datastructure.Network, _, _ datastructure.Station, weight float64) float64 {
	return weight
}

// Estimate jarak lurus / velocity maksimum: lower bound waktu tempuh.
func (timeCriterion) Estimate(n *datastructure.Network, from, dest datastructure.Station) float64 {
	maxVel := n.MaxVelocity()
	if maxVel <= 0 {
		return 0
	}
	return n.StraightLineDistance(from.ID, dest.ID) / maxVel
}

type distanceCriterion struct{}

func (distanceCriterion) Mode() CostMode { return Distance }

// EdgeCost weight * velocity line asal. interchange di halte yang sama (nama sama) factor nya 1.
// line tanpa velocity juga dianggap factor 1.
func (distanceCriterion) EdgeCost(n *datastructure.Network, from, to datastructure.Station, weight float64) float64 {
	if datastructure.SameStop(from, to) {
		return weight
	}
	velocity, ok := n.Velocity(from.Line)
	if !ok {
		return weight
	}
	return weight * velocity
}

func (distanceCriterion) Estimate(n *datastructure.Network, from, dest datastructure.Station) float64 {
	return n.StraightLineDistance(from.ID, dest.ID)
}

type transfersCriterion struct{}

func (transfersCriterion) Mode() CostMode { return Transfers }

func (transfersCriterion) EdgeCost(_ *datastructure.Network, from, to datastructure.Station, _ float64) float64 {
	if datastructure.IsTransfer(from, to) {
		return 1
	}
	return 0
}

func (transfersCriterion) Estimate(_ *datastructure.Network, from, dest datastructure.Station) float64 {
	if from.Line != dest.Line {
		return 1
	}
	return 0
}

type Algorithm string

const (
	DepthFirst   Algorithm = "dfs"
	BreadthFirst Algorithm = "bfs"
	UniformCost  Algorithm = "ucs"
	AStarSearch  Algorithm = "astar"
)

func ParseAlgorithm(s string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(s))); alg {
	case DepthFirst, BreadthFirst, UniformCost, AStarSearch:
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAlgorithm, s)
}
