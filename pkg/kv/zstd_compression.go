package kv

import (
	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

// StationRecord stasiun di dalam LineRecord. line nya dari LineRecord.
type StationRecord struct {
	ID   int32
	Name string
	X    float64
	Y    float64
}

// ConnectionRecord edge keluar dari stasiun di line yang sama dengan LineRecord. urutan = urutan adjacency.
type ConnectionRecord struct {
	From   int32
	To     int32
	Weight float64
}

// LineRecord isi satu key line:<id>.
type LineRecord struct {
	Line        int32
	Name        string
	Velocity    float64
	HasVelocity bool
	Stations    []StationRecord
	Connections []ConnectionRecord
}

// RouteRecord isi satu key route cache.
type RouteRecord struct {
	Route []int32
	G     float64
	H     float64
	F     float64
}

func Encode[T any](v T) ([]byte, error) {
	return binary.Marshal(v)
}

func Decode[T any](bb []byte) (T, error) {
	var v T
	err := binary.Unmarshal(bb, &v)
	return v, err
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}

func encodeCompress[T any](v T) ([]byte, error) {
	bb, err := Encode(v)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func decompressDecode[T any](bb []byte) (T, error) {
	raw, err := Decompress(bb)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](raw)
}
