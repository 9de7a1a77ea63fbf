package datastructure

import (
	"sort"

	"lintang/metronav/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

var tol = 0.0001

type StationRect struct {
	Location  rtreego.Point
	StationID int32
}

func (s *StationRect) Bounds() rtreego.Rect {
	// define the bounds of s to be a rectangle centered at s.location
	// with side lengths 2 * tol:
	return s.Location.ToRect(tol)
}

// Network graph stasiun transit. adjacency directed & urutan connection = urutan insert.
type Network struct {
	stations  map[int32]Station
	adjacency map[int32][]Connection
	velocity  map[int32]float64
	maxVel    float64
	lineNames map[int32]string
	rects     map[int32]*StationRect
	rtree     *rtreego.Rtree
}

func NewNetwork() *Network {
	return &Network{
		stations:  make(map[int32]Station),
		adjacency: make(map[int32][]Connection),
		velocity:  make(map[int32]float64),
		lineNames: make(map[int32]string),
		rects:     make(map[int32]*StationRect),
		rtree:     rtreego.NewTree(2, 25, 50), // 2 dimension, 25 min entries dan 50 max entries
	}
}

// AddStation insert atau replace stasiun dan update rtree index nya.
func (n *Network) AddStation(s Station) {
	if old, ok := n.rects[s.ID]; ok {
		n.rtree.Delete(old)
	}
	n.stations[s.ID] = s
	rect := &StationRect{Location: rtreego.Point{s.X, s.Y}, StationID: s.ID}
	n.rects[s.ID] = rect
	n.rtree.Insert(rect)
}

// AddConnection tambah edge from->to. kalau edge sudah ada weight nya di-replace tanpa mengubah urutan.
func (n *Network) AddConnection(from, to int32, weight float64) {
	conns := n.adjacency[from]
	for i := range conns {
		if conns[i].To == to {
			conns[i].Weight = weight
			return
		}
	}
	n.adjacency[from] = append(conns, Connection{To: to, Weight: weight})
}

func (n *Network) SetVelocity(line int32, velocity float64) {
	n.velocity[line] = velocity
	n.maxVel = 0
	for _, v := range n.velocity {
		if v > n.maxVel {
			n.maxVel = v
		}
	}
}

func (n *Network) SetLineName(line int32, name string) {
	n.lineNames[line] = name
}

func (n *Network) LineName(line int32) string {
	return n.lineNames[line]
}

func (n *Network) Velocity(line int32) (float64, bool) {
	v, ok := n.velocity[line]
	return v, ok
}

// MaxVelocity velocity terbesar dari semua line, 0 kalau belum ada.
func (n *Network) MaxVelocity() float64 {
	return n.maxVel
}

// Velocities copy mapping line -> velocity.
func (n *Network) Velocities() map[int32]float64 {
	res := make(map[int32]float64, len(n.velocity))
	for line, v := range n.velocity {
		res[line] = v
	}
	return res
}

func (n *Network) Station(id int32) (Station, bool) {
	s, ok := n.stations[id]
	return s, ok
}

func (n *Network) HasStation(id int32) bool {
	_, ok := n.stations[id]
	return ok
}

func (n *Network) NumStations() int {
	return len(n.stations)
}

// StationIDs semua id stasiun, ascending.
func (n *Network) StationIDs() []int32 {
	ids := make([]int32, 0, len(n.stations))
	for id := range n.stations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Lines semua line id yang punya stasiun atau velocity, ascending.
func (n *Network) Lines() []int32 {
	seen := make(map[int32]struct{})
	for _, s := range n.stations {
		seen[s.Line] = struct{}{}
	}
	for line := range n.velocity {
		seen[line] = struct{}{}
	}
	lines := make([]int32, 0, len(seen))
	for line := range seen {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })
	return lines
}

func (n *Network) Connections(id int32) []Connection {
	return n.adjacency[id]
}

func (n *Network) Weight(from, to int32) (float64, bool) {
	for _, c := range n.adjacency[from] {
		if c.To == to {
			return c.Weight, true
		}
	}
	return 0, false
}

// StraightLineDistance jarak euclidean antara dua stasiun.
func (n *Network) StraightLineDistance(from, to int32) float64 {
	a := n.stations[from]
	b := n.stations[to]
	return geo.EuclideanDistance(a.X, a.Y, b.X, b.Y)
}

// NearestStations semua stasiun dengan jarak euclidean minimum ke (x, y), termasuk yang seri. ascending by id.
// rtree dipakai buat dapat satu kandidat terdekat d, lalu semua stasiun dalam bounding box radius d dicek jarak exact nya.
func (n *Network) NearestStations(x, y float64) []int32 {
	if len(n.stations) == 0 {
		return []int32{}
	}
	p := rtreego.Point{x, y}
	nearest, ok := n.rtree.NearestNeighbor(p).(*StationRect)
	if !ok || nearest == nil {
		return []int32{}
	}
	s := n.stations[nearest.StationID]
	radius := geo.EuclideanDistance(x, y, s.X, s.Y) + 2*tol

	box, err := rtreego.NewRect(rtreego.Point{x - radius, y - radius}, []float64{2 * radius, 2 * radius})
	if err != nil {
		return []int32{nearest.StationID}
	}

	minDist := -1.0
	result := []int32{}
	for _, obj := range n.rtree.SearchIntersect(box) {
		rect := obj.(*StationRect)
		cand := n.stations[rect.StationID]
		dist := geo.EuclideanDistance(x, y, cand.X, cand.Y)
		if minDist < 0 || dist < minDist {
			minDist = dist
			result = result[:0]
			result = append(result, rect.StationID)
		} else if dist == minDist {
			result = append(result, rect.StationID)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
