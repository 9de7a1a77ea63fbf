package search

import "errors"

var (
	// ErrRouteNotFound frontier habis sebelum destination tercapai. bukan fault.
	ErrRouteNotFound = errors.New("route not found")
	// ErrInvalidMode cost mode di luar adjacency/time/distance/transfers.
	ErrInvalidMode = errors.New("invalid cost mode")
	// ErrInvalidAlgorithm nama algoritma search tidak dikenal.
	ErrInvalidAlgorithm = errors.New("invalid search algorithm")
	// ErrEmptyNetwork network nil atau tidak punya stasiun.
	ErrEmptyNetwork = errors.New("network has no stations")
	// ErrUnknownStation origin/destination tidak ada di network.
	ErrUnknownStation = errors.New("unknown station")
)
