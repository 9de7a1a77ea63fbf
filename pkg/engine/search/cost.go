package search

import "lintang/metronav/pkg/datastructure"

// CostedPaths paths yang G nya sudah dihitung ulang dengan satu Criterion.
// CalculateHeuristics cuma menerima tipe ini supaya urutan cost -> heuristic tidak bisa terbalik.
type CostedPaths []*datastructure.Path

// CalculateCost hitung ulang G setiap path dari seluruh route nya (bukan akumulasi), jadi idempotent.
func CalculateCost(paths []*datastructure.Path, n *datastructure.Network, c Criterion) CostedPaths {
	for _, p := range paths {
		p.G = RouteCost(p.Route, n, c)
	}
	return CostedPaths(paths)
}

// RouteCost total cost route dengan criterion c.
func RouteCost(route []int32, n *datastructure.Network, c Criterion) float64 {
	total := 0.0
	for i := 0; i+1 < len(route); i++ {
		from, _ := n.Station(route[i])
		to, _ := n.Station(route[i+1])
		weight, _ := n.Weight(route[i], route[i+1])
		total += c.EdgeCost(n, from, to, weight)
	}
	return total
}

// CalculateHeuristics overwrite H setiap path dengan estimasi dari stasiun terakhir ke destination.
func CalculateHeuristics(paths CostedPaths, n *datastructure.Network, destination int32, c Criterion) CostedPaths {
	dest, _ := n.Station(destination)
	for _, p := range paths {
		last, _ := n.Station(p.Last())
		p.H = c.Estimate(n, last, dest)
	}
	return paths
}

// UpdateF F = G + H.
func UpdateF(paths []*datastructure.Path) []*datastructure.Path {
	for _, p := range paths {
		p.F = p.G + p.H
	}
	return paths
}
