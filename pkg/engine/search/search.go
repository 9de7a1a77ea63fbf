package search

import (
	"fmt"

	"lintang/metronav/pkg/datastructure"
)

func validateEndpoints(n *datastructure.Network, origin, destination int32) error {
	if n == nil || n.NumStations() == 0 {
		return ErrEmptyNetwork
	}
	if !n.HasStation(origin) {
		return fmt.Errorf("%w: origin %d", ErrUnknownStation, origin)
	}
	if !n.HasStation(destination) {
		return fmt.Errorf("%w: destination %d", ErrUnknownStation, destination)
	}
	return nil
}

// DepthFirstSearch goal test dilakukan ke path di top stack sebelum di-pop.
func DepthFirstSearch(n *datastructure.Network, origin, destination int32) (*datastructure.Path, error) {
	if err := validateEndpoints(n, origin, destination); err != nil {
		return nil, err
	}
	return blindSearch(NewStack(), n, origin, destination)
}

// BreadthFirstSearch goal test dilakukan ke path di head queue sebelum di-pop.
func BreadthFirstSearch(n *datastructure.Network, origin, destination int32) (*datastructure.Path, error) {
	if err := validateEndpoints(n, origin, destination); err != nil {
		return nil, err
	}
	return blindSearch(NewQueue(), n, origin, destination)
}

func blindSearch(frontier Frontier, n *datastructure.Network, origin, destination int32) (*datastructure.Path, error) {
	frontier.Insert([]*datastructure.Path{datastructure.NewPath(origin)})
	for {
		next, ok := frontier.Peek()
		if !ok {
			return nil, ErrRouteNotFound
		}
		if next.Last() == destination {
			return next, nil
		}
		frontier.Pop()
		frontier.Insert(RemoveCycles(Expand(next, n)))
	}
}

// UniformCostSearch frontier terurut by G. goal test setelah head di-pop.
func UniformCostSearch(n *datastructure.Network, origin, destination int32, mode CostMode) (*datastructure.Path, error) {
	c, err := CriterionFor(mode)
	if err != nil {
		return nil, err
	}
	if err := validateEndpoints(n, origin, destination); err != nil {
		return nil, err
	}

	frontier := NewPriorityFrontier(ByG)
	frontier.Insert([]*datastructure.Path{datastructure.NewPath(origin)})
	for {
		head, ok := frontier.Pop()
		if !ok {
			return nil, ErrRouteNotFound
		}
		if head.Last() == destination {
			return head, nil
		}
		costed := CalculateCost(RemoveCycles(Expand(head, n)), n, c)
		frontier.Insert(costed)
	}
}

// AStar frontier terurut by F = G + H, dengan redundant path pruning pakai visited cost table.
func AStar(n *datastructure.Network, origin, destination int32, mode CostMode) (*datastructure.Path, error) {
	c, err := CriterionFor(mode)
	if err != nil {
		return nil, err
	}
	if err := validateEndpoints(n, origin, destination); err != nil {
		return nil, err
	}
	return aStar(n, origin, destination, c)
}

func aStar(n *datastructure.Network, origin, destination int32, c Criterion) (*datastructure.Path, error) {
	frontier := NewPriorityFrontier(ByF)
	visited := make(VisitedCost)
	frontier.Insert([]*datastructure.Path{datastructure.NewPath(origin)})
	for {
		head, ok := frontier.Pop()
		if !ok {
			return nil, ErrRouteNotFound
		}
		if head.Last() == destination {
			return head, nil
		}
		costed := CalculateCost(RemoveCycles(Expand(head, n)), n, c)
		costed = CalculateHeuristics(costed, n, destination, c)
		UpdateF(costed)
		frontier.Insert(RemoveRedundantPaths(costed, frontier, visited))
	}
}

// Search dispatch ke algoritma alg. mode divalidasi untuk semua algoritma walaupun dfs/bfs tidak memakainya.
func Search(alg Algorithm, n *datastructure.Network, origin, destination int32, mode CostMode) (*datastructure.Path, error) {
	if _, err := CriterionFor(mode); err != nil {
		return nil, err
	}
	switch alg {
	case DepthFirst:
		return DepthFirstSearch(n, origin, destination)
	case BreadthFirst:
		return BreadthFirstSearch(n, origin, destination)
	case UniformCost:
		return UniformCostSearch(n, origin, destination, mode)
	case AStarSearch:
		return AStar(n, origin, destination, mode)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, string(alg))
}
