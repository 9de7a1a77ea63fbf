package search_test

import (
	"errors"
	"testing"

	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/engine/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func criterion(t *testing.T, mode search.CostMode) search.Criterion {
	t.Helper()
	c, err := search.CriterionFor(mode)
	require.NoError(t, err)
	return c
}

func TestCalculateCost(t *testing.T) {
	n := newMetroNetwork()

	tests := []struct {
		name string
		mode search.CostMode
		want float64
	}{
		{"adjacency counts hops", search.Adjacency, 3},
		{"time sums edge weights", search.Time, 5 + 2 + 10},
		{"distance scales by line velocity except at the interchange", search.Distance, 5*2 + 2 + 10*1},
		{"transfers counts line changes", search.Transfers, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &datastructure.Path{Route: []int32{1, 2, 5, 6}}
			costed := search.CalculateCost([]*datastructure.Path{p}, n, criterion(t, tt.mode))
			assert.Equal(t, tt.want, costed[0].G)
		})
	}

	t.Run("cost is recomputed, not accumulated", func(t *testing.T) {
		for _, mode := range []search.CostMode{search.Adjacency, search.Time, search.Distance, search.Transfers} {
			paths := []*datastructure.Path{{Route: []int32{6, 7, 8, 9, 4}}, {Route: []int32{3, 2, 5}}}
			c := criterion(t, mode)
			first := search.CalculateCost(paths, n, c)
			g0, g1 := first[0].G, first[1].G
			second := search.CalculateCost(paths, n, c)
			assert.Equal(t, g0, second[0].G, mode.String())
			assert.Equal(t, g1, second[1].G, mode.String())
		}
	})

	t.Run("costs are non-negative and adjacency equals route length minus one", func(t *testing.T) {
		routes := [][]int32{{1}, {1, 2}, {6, 5, 2, 3, 4, 9}, {8, 9, 4, 3}}
		for _, mode := range []search.CostMode{search.Adjacency, search.Time, search.Distance, search.Transfers} {
			for _, r := range routes {
				p := &datastructure.Path{Route: r}
				search.CalculateCost([]*datastructure.Path{p}, n, criterion(t, mode))
				assert.GreaterOrEqual(t, p.G, 0.0)
				if mode == search.Adjacency {
					assert.Equal(t, float64(len(r)-1), p.G)
				}
			}
		}
	})

	t.Run("line without velocity uses factor one", func(t *testing.T) {
		tri := newTriangleNetwork()
		tri.AddStation(datastructure.Station{ID: 4, Name: "Poble Sec", Line: 7, X: 20, Y: 0})
		tri.AddConnection(4, 3, 4)
		p := &datastructure.Path{Route: []int32{4, 3}}
		search.CalculateCost([]*datastructure.Path{p}, tri, criterion(t, search.Distance))
		assert.Equal(t, 4.0, p.G)
	})
}

func TestCalculateHeuristics(t *testing.T) {
	n := newMetroNetwork()
	// stasiun 6 (10,10) ke 4 (30,0): sqrt(500)
	straight := n.StraightLineDistance(6, 4)

	tests := []struct {
		name      string
		mode      search.CostMode
		route     []int32
		wantH     float64
		wantDelta float64
	}{
		{"adjacency not at destination", search.Adjacency, []int32{5, 6}, 1, 0},
		{"adjacency at destination", search.Adjacency, []int32{3, 4}, 0, 0},
		{"time divides by the fastest line", search.Time, []int32{5, 6}, straight / 2, 1e-9},
		{"distance is the straight line", search.Distance, []int32{5, 6}, straight, 1e-9},
		{"transfers on another line", search.Transfers, []int32{5, 6}, 1, 0},
		{"transfers on the destination line", search.Transfers, []int32{2, 3}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := criterion(t, tt.mode)
			p := &datastructure.Path{Route: tt.route, H: 123}
			costed := search.CalculateCost([]*datastructure.Path{p}, n, c)
			search.CalculateHeuristics(costed, n, 4, c)
			assert.InDelta(t, tt.wantH, p.H, tt.wantDelta)
		})
	}

	t.Run("time heuristic is zero without velocities", func(t *testing.T) {
		bare := datastructure.NewNetwork()
		bare.AddStation(datastructure.Station{ID: 1, Line: 1, X: 0, Y: 0})
		bare.AddStation(datastructure.Station{ID: 2, Line: 1, X: 3, Y: 4})
		c := criterion(t, search.Time)
		p := datastructure.NewPath(1)
		search.CalculateHeuristics(search.CalculateCost([]*datastructure.Path{p}, bare, c), bare, 2, c)
		assert.Equal(t, 0.0, p.H)
	})
}

func TestUpdateF(t *testing.T) {
	p := &datastructure.Path{Route: []int32{1}, G: 4, H: 2.5}
	search.UpdateF([]*datastructure.Path{p})
	assert.Equal(t, 6.5, p.F)
	search.UpdateF([]*datastructure.Path{p})
	assert.Equal(t, 6.5, p.F)
}

func TestParseCostMode(t *testing.T) {
	for in, want := range map[string]search.CostMode{
		"adjacency":   search.Adjacency,
		"Time":        search.Time,
		"2":           search.Distance,
		" transfers ": search.Transfers,
	} {
		got, err := search.ParseCostMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := search.ParseCostMode("speed")
	assert.True(t, errors.Is(err, search.ErrInvalidMode))

	_, err = search.CriterionFor(search.CostMode(7))
	assert.True(t, errors.Is(err, search.ErrInvalidMode))
	assert.Equal(t, "CostMode(7)", search.CostMode(7).String())
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := search.ParseAlgorithm("AStar")
	require.NoError(t, err)
	assert.Equal(t, search.AStarSearch, alg)

	_, err = search.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, search.ErrInvalidAlgorithm)
}
