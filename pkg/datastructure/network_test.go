package datastructure_test

import (
	"testing"

	"lintang/metronav/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGridNetwork() *datastructure.Network {
	n := datastructure.NewNetwork()
	n.AddStation(datastructure.Station{ID: 1, Name: "Catalunya", Line: 1, X: 0, Y: 0})
	n.AddStation(datastructure.Station{ID: 2, Name: "Universitat", Line: 1, X: 10, Y: 0})
	n.AddStation(datastructure.Station{ID: 3, Name: "Urgell", Line: 1, X: 20, Y: 0})
	n.AddStation(datastructure.Station{ID: 4, Name: "Universitat", Line: 2, X: 10, Y: 0})
	n.AddStation(datastructure.Station{ID: 5, Name: "Tetuan", Line: 2, X: 10, Y: 10})
	return n
}

func TestNetworkConnections(t *testing.T) {
	t.Run("connections keep insertion order and replace existing weight in place", func(t *testing.T) {
		n := newGridNetwork()
		n.AddConnection(1, 3, 20)
		n.AddConnection(1, 2, 5)
		n.AddConnection(1, 3, 18)

		assert.Equal(t, []datastructure.Connection{{To: 3, Weight: 18}, {To: 2, Weight: 5}}, n.Connections(1))

		w, ok := n.Weight(1, 2)
		assert.True(t, ok)
		assert.Equal(t, 5.0, w)

		_, ok = n.Weight(2, 1)
		assert.False(t, ok, "adjacency is directed")
	})

	t.Run("station without outgoing edges has no connections", func(t *testing.T) {
		n := newGridNetwork()
		assert.Empty(t, n.Connections(5))
	})
}

func TestNetworkVelocity(t *testing.T) {
	n := newGridNetwork()
	assert.Equal(t, 0.0, n.MaxVelocity())

	n.SetVelocity(1, 2.5)
	n.SetVelocity(2, 1)
	assert.Equal(t, 2.5, n.MaxVelocity())

	v, ok := n.Velocity(2)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = n.Velocity(9)
	assert.False(t, ok)
	assert.Equal(t, []int32{1, 2}, n.Lines())
}

func TestNetworkStations(t *testing.T) {
	n := newGridNetwork()
	assert.Equal(t, 5, n.NumStations())
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, n.StationIDs())
	assert.True(t, n.HasStation(4))
	assert.False(t, n.HasStation(42))
	assert.Equal(t, 10.0, n.StraightLineDistance(1, 2))
}

func TestNearestStations(t *testing.T) {
	t.Run("single nearest station", func(t *testing.T) {
		n := newGridNetwork()
		assert.Equal(t, []int32{3}, n.NearestStations(19, 1))
	})

	t.Run("ties are all returned", func(t *testing.T) {
		n := newGridNetwork()
		// (5, 0) sama jauhnya dari 1, 2 dan 4 (2 & 4 satu koordinat)
		assert.Equal(t, []int32{1, 2, 4}, n.NearestStations(5, 0))
	})

	t.Run("replacing a station moves it in the index", func(t *testing.T) {
		n := newGridNetwork()
		n.AddStation(datastructure.Station{ID: 5, Name: "Tetuan", Line: 2, X: 100, Y: 100})
		assert.Equal(t, []int32{5}, n.NearestStations(99, 99))
		assert.Equal(t, 5, n.NumStations())
	})

	t.Run("empty network", func(t *testing.T) {
		n := datastructure.NewNetwork()
		assert.Empty(t, n.NearestStations(0, 0))
	})
}

func TestPath(t *testing.T) {
	p := datastructure.NewPath(1)
	child := p.Extend(2)
	grandChild := child.Extend(3)

	require.Equal(t, []int32{1}, p.Route, "extend must not mutate the parent")
	assert.Equal(t, []int32{1, 2, 3}, grandChild.Route)
	assert.Equal(t, int32(3), grandChild.Last())
	assert.Equal(t, int32(1), grandChild.Origin())
	assert.Equal(t, 2, grandChild.Hops())
	assert.Equal(t, "1-2-3", grandChild.Key())
	assert.True(t, grandChild.Equal(&datastructure.Path{Route: []int32{1, 2, 3}, G: 99}))
	assert.False(t, grandChild.Equal(child))

	sibling := child.Extend(4)
	assert.Equal(t, []int32{1, 2, 3}, grandChild.Route, "siblings must not share backing arrays")
	assert.Equal(t, []int32{1, 2, 4}, sibling.Route)
}

func TestRenderPath(t *testing.T) {
	n := newGridNetwork()
	p := &datastructure.Path{Route: []int32{1, 2}}
	assert.NotEmpty(t, datastructure.RenderPath(n, p))
}

func TestRouteCoordinates(t *testing.T) {
	n := newGridNetwork()
	p := &datastructure.Path{Route: []int32{1, 2, 99, 5}}
	assert.Equal(t, []datastructure.Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, datastructure.RouteCoordinates(n, p))
}
