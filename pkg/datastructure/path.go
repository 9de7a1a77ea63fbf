package datastructure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/twpayne/go-polyline"
)

// Path rute dari Route[0] ke Route[len-1]. G cost asli, H heuristic, F = G + H.
type Path struct {
	Route []int32
	G     float64
	H     float64
	F     float64
}

func NewPath(origin int32) *Path {
	return &Path{Route: []int32{origin}}
}

func (p *Path) Last() int32 {
	return p.Route[len(p.Route)-1]
}

func (p *Path) Origin() int32 {
	return p.Route[0]
}

// Hops jumlah edge yang dilewati.
func (p *Path) Hops() int {
	return len(p.Route) - 1
}

// Extend copy route parent + satu stasiun. cost fields tidak diset.
func (p *Path) Extend(station int32) *Path {
	route := make([]int32, len(p.Route), len(p.Route)+1)
	copy(route, p.Route)
	return &Path{Route: append(route, station)}
}

// Key representasi route sebagai string, dipakai buat equality by value & cache key.
func (p *Path) Key() string {
	var sb strings.Builder
	for i, s := range p.Route {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.FormatInt(int64(s), 10))
	}
	return sb.String()
}

func (p *Path) Equal(other *Path) bool {
	if other == nil || len(p.Route) != len(other.Route) {
		return false
	}
	for i := range p.Route {
		if p.Route[i] != other.Route[i] {
			return false
		}
	}
	return true
}

func (p *Path) String() string {
	return fmt.Sprintf("Route: %v, \t Cost: %v", p.Route, p.G)
}

// RouteCoordinates koordinat setiap stasiun di route. stasiun yang tidak ada di network di-skip.
func RouteCoordinates(n *Network, p *Path) []Coordinate {
	coords := make([]Coordinate, 0, len(p.Route))
	for _, id := range p.Route {
		s, ok := n.Station(id)
		if !ok {
			continue
		}
		coords = append(coords, NewCoordinate(s.X, s.Y))
	}
	return coords
}

// RenderPath encode koordinat stasiun di route jadi polyline.
func RenderPath(n *Network, p *Path) string {
	coords := make([][]float64, 0, len(p.Route))
	for _, c := range RouteCoordinates(n, p) {
		coords = append(coords, []float64{c.Y, c.X})
	}
	return string(polyline.EncodeCoords(coords))
}
