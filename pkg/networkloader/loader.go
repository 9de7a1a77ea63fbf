package networkloader

import (
	"context"
	"errors"
	"log"

	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/kv"
	"lintang/metronav/pkg/osmparser"
	"lintang/metronav/pkg/transitparser"
)

var ErrNoSource = errors.New("no network source: give -f, or -stations/-connections/-velocities, or a pebble snapshot")

type Source string

const (
	SourceOSM      Source = "osm"
	SourceTables   Source = "tables"
	SourceSnapshot Source = "snapshot"
)

type Options struct {
	OSMFile         string
	StationsFile    string
	ConnectionsFile string
	VelocitiesFile  string
	// SpeedKmh & TransferPenalty cuma dipakai import osm.
	SpeedKmh        float64
	TransferPenalty float64
	ShowProgress    bool
}

// Load urutan: file osm, lalu tabel text, lalu snapshot pebble (kalau store tidak nil).
func Load(ctx context.Context, opts Options, store *kv.KVDB) (*datastructure.Network, Source, error) {
	switch {
	case opts.OSMFile != "":
		log.Printf("importing transit network from %s", opts.OSMFile)
		n, err := osmparser.NewOSMParser(opts.SpeedKmh, opts.TransferPenalty, opts.ShowProgress).ParseNetwork(ctx, opts.OSMFile)
		return n, SourceOSM, err
	case opts.StationsFile != "" || opts.ConnectionsFile != "" || opts.VelocitiesFile != "":
		if opts.StationsFile == "" || opts.ConnectionsFile == "" || opts.VelocitiesFile == "" {
			return nil, SourceTables, errors.New("stations, connections and velocities files are all required")
		}
		log.Printf("loading transit network from %s", opts.StationsFile)
		n, err := transitparser.NewTransitParser(opts.ShowProgress).ParseNetwork(opts.StationsFile, opts.ConnectionsFile, opts.VelocitiesFile)
		return n, SourceTables, err
	case store != nil:
		log.Printf("loading transit network snapshot from pebble db")
		n, err := store.LoadNetwork()
		if errors.Is(err, kv.ErrNoSnapshot) {
			return nil, SourceSnapshot, ErrNoSource
		}
		return n, SourceSnapshot, err
	}
	return nil, "", ErrNoSource
}
