package osmparser

import (
	"testing"

	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/geo"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFromRelation(t *testing.T) {
	t.Run("subway relation without ref uses its name", func(t *testing.T) {
		rel := &osm.Relation{
			ID: 7,
			Tags: osm.Tags{
				{Key: "type", Value: "route"},
				{Key: "route", Value: "subway"},
				{Key: "name", Value: "Metro L5"},
			},
			Members: osm.Members{
				{Type: osm.TypeNode, Ref: 10, Role: "stop"},
				{Type: osm.TypeWay, Ref: 11, Role: ""},
				{Type: osm.TypeNode, Ref: 12, Role: "platform"},
				{Type: osm.TypeNode, Ref: 13, Role: "stop_exit_only"},
			},
		}
		line, ok := lineFromRelation(rel)
		require.True(t, ok)
		assert.Equal(t, "Metro L5", line.Ref)
		assert.Equal(t, []osm.NodeID{10, 13}, line.Stops)
	})

	t.Run("bus routes are ignored", func(t *testing.T) {
		rel := &osm.Relation{
			Tags: osm.Tags{{Key: "type", Value: "route"}, {Key: "route", Value: "bus"}, {Key: "ref", Value: "V15"}},
			Members: osm.Members{
				{Type: osm.TypeNode, Ref: 10, Role: "stop"},
			},
		}
		_, ok := lineFromRelation(rel)
		assert.False(t, ok)
	})

	t.Run("relation without stops is ignored", func(t *testing.T) {
		rel := &osm.Relation{
			Tags: osm.Tags{{Key: "type", Value: "route"}, {Key: "route", Value: "tram"}, {Key: "ref", Value: "T1"}},
		}
		_, ok := lineFromRelation(rel)
		assert.False(t, ok)
	})
}

func TestBuildNetwork(t *testing.T) {
	stops := map[osm.NodeID]stopNode{
		100: {Name: "Sants Estacio", Lat: 41.3790, Lon: 2.1400},
		101: {Name: "Espanya", Lat: 41.3750, Lon: 2.1490},
		102: {Name: "Paral-lel", Lat: 41.3750, Lon: 2.1680},
		201: {Name: "Espanya", Lat: 41.3752, Lon: 2.1492},
		202: {Name: "", Lat: 41.3760, Lon: 2.1750},
	}
	lines := []transitLine{
		{Ref: "L1", Stops: []osm.NodeID{100, 101, 102}},
		{Ref: "L1", Stops: []osm.NodeID{102, 101, 100}},
		{Ref: "L3", Stops: []osm.NodeID{201, 999, 202}},
	}
	p := NewOSMParser(30, 4, false)
	n := p.buildNetwork(lines, stops)

	assert.Equal(t, 5, n.NumStations())
	assert.Equal(t, []int32{1, 2}, n.Lines())
	assert.Equal(t, "L1", n.LineName(1))
	assert.Equal(t, "L3", n.LineName(2))
	vel, ok := n.Velocity(1)
	assert.True(t, ok)
	assert.Equal(t, 0.5, vel)

	first, _ := n.Station(1)
	assert.Equal(t, datastructure.Station{ID: 1, Name: "Sants Estacio", Line: 1, X: 0, Y: 0}, first)
	unnamed, _ := n.Station(5)
	assert.Equal(t, "node/202", unnamed.Name)

	conns := n.Connections(2)
	to := make([]int32, 0, len(conns))
	for _, c := range conns {
		to = append(to, c.To)
	}
	assert.Equal(t, []int32{1, 3, 4}, to)

	km := geo.HaversineDistance(geo.NewLocation(41.3790, 2.1400), geo.NewLocation(41.3750, 2.1490))
	w, ok := n.Weight(1, 2)
	assert.True(t, ok)
	assert.InDelta(t, km/30*60, w, 1e-9)

	transfer, ok := n.Weight(4, 2)
	assert.True(t, ok)
	assert.Equal(t, 4.0, transfer)

	_, ok = n.Weight(4, 5)
	assert.True(t, ok, "missing stop between two stops keeps the line connected")
}
