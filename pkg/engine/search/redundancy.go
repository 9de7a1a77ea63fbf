package search

import "lintang/metronav/pkg/datastructure"

// VisitedCost cost G terendah yang pernah dicapai untuk tiap stasiun selama satu A* search.
type VisitedCost map[int32]float64

// RemoveRedundantPaths buang candidate yang didominasi path lain ke stasiun yang sama, dan evict path pending
// di frontier yang didominasi candidate baru. visited di-update in place.
// keputusan dibuat dulu untuk semua candidate, baru eviction frontier dijalankan.
func RemoveRedundantPaths(candidates []*datastructure.Path, frontier *PriorityFrontier, visited VisitedCost) []*datastructure.Path {
	survivors := make([]*datastructure.Path, 0, len(candidates))
	evict := make([]int32, 0)
	for _, p := range candidates {
		station := p.Last()
		best, ok := visited[station]
		switch {
		case !ok:
			visited[station] = p.G
			survivors = append(survivors, p)
		case p.G < best:
			visited[station] = p.G
			survivors = append(survivors, p)
			evict = append(evict, station)
		}
	}

	for _, station := range evict {
		frontier.RemoveEndingAt(station)
	}
	return survivors
}
