package datastructure

type Station struct {
	ID   int32
	Name string
	Line int32
	X, Y float64
}

// Connection edge keluar dari satu stasiun. Weight dalam satuan waktu.
type Connection struct {
	To     int32
	Weight float64
}

type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{
		X: x,
		Y: y,
	}
}

// IsTransfer true kalau edge from->to pindah line.
func IsTransfer(from, to Station) bool {
	return from.Line != to.Line
}

// SameStop true kalau dua stasiun adalah halte fisik yang sama (interchange antar line).
func SameStop(from, to Station) bool {
	return from.Name == to.Name
}
