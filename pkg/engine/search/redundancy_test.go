package search_test

import (
	"testing"

	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/engine/search"

	"github.com/stretchr/testify/assert"
)

func TestRemoveRedundantPaths(t *testing.T) {
	t.Run("unseen stations are recorded and kept", func(t *testing.T) {
		f := search.NewPriorityFrontier(search.ByF)
		visited := search.VisitedCost{}
		got := search.RemoveRedundantPaths([]*datastructure.Path{path(5, 1, 2), path(20, 1, 3)}, f, visited)

		assert.Equal(t, [][]int32{{1, 2}, {1, 3}}, routes(got))
		assert.Equal(t, search.VisitedCost{2: 5, 3: 20}, visited)
	})

	t.Run("candidate no cheaper than the recorded cost is dropped", func(t *testing.T) {
		f := search.NewPriorityFrontier(search.ByF)
		visited := search.VisitedCost{3: 10}
		got := search.RemoveRedundantPaths([]*datastructure.Path{path(10, 1, 2, 3), path(12, 1, 4, 3)}, f, visited)

		assert.Empty(t, got)
		assert.Equal(t, 10.0, visited[3])
	})

	t.Run("cheaper candidate evicts pending paths to the same station", func(t *testing.T) {
		f := search.NewPriorityFrontier(search.ByF)
		f.Insert([]*datastructure.Path{path(20, 1, 3), path(6, 1, 4)})
		visited := search.VisitedCost{3: 20, 4: 6}

		got := search.RemoveRedundantPaths([]*datastructure.Path{path(10, 1, 2, 3)}, f, visited)

		assert.Equal(t, [][]int32{{1, 2, 3}}, routes(got))
		assert.Equal(t, 10.0, visited[3])
		assert.Equal(t, [][]int32{{1, 4}}, routes(f.Paths()))
	})

	t.Run("recorded costs never increase", func(t *testing.T) {
		f := search.NewPriorityFrontier(search.ByF)
		visited := search.VisitedCost{}
		batches := [][]*datastructure.Path{
			{path(9, 1, 5)},
			{path(12, 1, 2, 5), path(3, 1, 2, 6)},
			{path(4, 1, 7, 5), path(8, 1, 7, 6)},
			{path(4, 1, 8, 5)},
		}
		prev := search.VisitedCost{}
		for _, b := range batches {
			search.RemoveRedundantPaths(b, f, visited)
			for station, cost := range prev {
				assert.LessOrEqual(t, visited[station], cost)
			}
			prev = search.VisitedCost{}
			for k, v := range visited {
				prev[k] = v
			}
		}
		assert.Equal(t, search.VisitedCost{5: 4, 6: 3}, visited)
	})
}
