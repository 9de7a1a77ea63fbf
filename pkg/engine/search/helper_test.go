package search_test

import (
	"lintang/metronav/pkg/datastructure"
)

// newMetroNetwork dua line, interchange di "B" (2/5) dan "D" (4/9).
//
//	6(E) --- 7(F) --- 8(G)        line 2
//	 |     /            |
//	5(B)              9(D)
//	 |                  |
//	1(A) - 2(B) - 3(C) - 4(D)     line 1
//
// weight line 1 = 5 (velocity 2), weight line 2 = 10 (velocity 1), 5-7 = 15, transfer = 2.
// untuk setiap edge weight*velocity >= jarak euclidean, jadi heuristic time & distance admissible.
func newMetroNetwork() *datastructure.Network {
	n := datastructure.NewNetwork()
	stations := []datastructure.Station{
		{ID: 1, Name: "A", Line: 1, X: 0, Y: 0},
		{ID: 2, Name: "B", Line: 1, X: 10, Y: 0},
		{ID: 3, Name: "C", Line: 1, X: 20, Y: 0},
		{ID: 4, Name: "D", Line: 1, X: 30, Y: 0},
		{ID: 5, Name: "B", Line: 2, X: 10, Y: 0},
		{ID: 6, Name: "E", Line: 2, X: 10, Y: 10},
		{ID: 7, Name: "F", Line: 2, X: 20, Y: 10},
		{ID: 8, Name: "G", Line: 2, X: 30, Y: 10},
		{ID: 9, Name: "D", Line: 2, X: 30, Y: 0},
	}
	for _, s := range stations {
		n.AddStation(s)
	}
	edges := []struct {
		a, b   int32
		weight float64
	}{
		{1, 2, 5}, {2, 3, 5}, {3, 4, 5},
		{5, 6, 10}, {6, 7, 10}, {7, 8, 10}, {8, 9, 10}, {5, 7, 15},
		{2, 5, 2}, {4, 9, 2},
	}
	for _, e := range edges {
		n.AddConnection(e.a, e.b, e.weight)
		n.AddConnection(e.b, e.a, e.weight)
	}
	n.SetVelocity(1, 2)
	n.SetVelocity(2, 1)
	return n
}

// newTriangleNetwork 1->2 (5), 2->3 (5), 1->3 (20).
func newTriangleNetwork() *datastructure.Network {
	n := datastructure.NewNetwork()
	n.AddStation(datastructure.Station{ID: 1, Name: "Sants", Line: 1, X: 0, Y: 0})
	n.AddStation(datastructure.Station{ID: 2, Name: "Tarragona", Line: 1, X: 5, Y: 0})
	n.AddStation(datastructure.Station{ID: 3, Name: "Espanya", Line: 1, X: 10, Y: 0})
	n.AddConnection(1, 2, 5)
	n.AddConnection(2, 3, 5)
	n.AddConnection(1, 3, 20)
	n.SetVelocity(1, 1)
	return n
}

// newDisconnectedNetwork 9 tidak bisa dicapai dari 1.
func newDisconnectedNetwork() *datastructure.Network {
	n := datastructure.NewNetwork()
	n.AddStation(datastructure.Station{ID: 1, Name: "Drassanes", Line: 3, X: 0, Y: 0})
	n.AddStation(datastructure.Station{ID: 2, Name: "Liceu", Line: 3, X: 1, Y: 0})
	n.AddStation(datastructure.Station{ID: 9, Name: "Fondo", Line: 1, X: 50, Y: 50})
	n.AddConnection(1, 2, 3)
	n.AddConnection(2, 1, 3)
	n.SetVelocity(1, 1)
	n.SetVelocity(3, 1)
	return n
}

// newBranchingNetwork DAG 1->{2,3}, 2->4->5->6, 3->6.
func newBranchingNetwork() *datastructure.Network {
	n := datastructure.NewNetwork()
	for i := int32(1); i <= 6; i++ {
		n.AddStation(datastructure.Station{ID: i, Name: string(rune('A' + i - 1)), Line: 1, X: float64(i), Y: 0})
	}
	n.AddConnection(1, 2, 1)
	n.AddConnection(1, 3, 1)
	n.AddConnection(2, 4, 1)
	n.AddConnection(4, 5, 1)
	n.AddConnection(5, 6, 1)
	n.AddConnection(3, 6, 1)
	n.SetVelocity(1, 1)
	return n
}

func path(g float64, route ...int32) *datastructure.Path {
	return &datastructure.Path{Route: route, G: g, F: g}
}

func routes(paths []*datastructure.Path) [][]int32 {
	res := make([][]int32, 0, len(paths))
	for _, p := range paths {
		res = append(res, p.Route)
	}
	return res
}
