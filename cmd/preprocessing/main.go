package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"lintang/metronav/pkg/kv"
	"lintang/metronav/pkg/networkloader"

	"github.com/cockroachdb/pebble"
)

var (
	mapFile         = flag.String("f", "", "openstreetmap .osm.pbf file buat import transit network")
	stationsFile    = flag.String("stations", "", "tabel stasiun (id name line x y)")
	connectionsFile = flag.String("connections", "", "tabel connection (from to weight)")
	velocitiesFile  = flag.String("velocities", "", "tabel velocity line (line velocity [name])")
	dbDir           = flag.String("db", "metronavDB", "direktori pebble db buat snapshot network")
	speed           = flag.Float64("speed", 35, "kecepatan rata-rata kereta (km/jam) untuk import osm")
	transferPenalty = flag.Float64("transfer", 4, "weight (menit) connection transfer antar line untuk import osm")
)

// preprocessing import transit network (osm atau tabel text) lalu simpan snapshot nya ke pebble,
// supaya cmd/server bisa start tanpa parsing ulang.
func main() {
	flag.Parse()
	if *mapFile == "" && *stationsFile == "" {
		log.Fatal(networkloader.ErrNoSource)
	}

	network, src, err := networkloader.Load(context.Background(), networkloader.Options{
		OSMFile:         *mapFile,
		StationsFile:    *stationsFile,
		ConnectionsFile: *connectionsFile,
		VelocitiesFile:  *velocitiesFile,
		SpeedKmh:        *speed,
		TransferPenalty: *transferPenalty,
		ShowProgress:    true,
	}, nil)
	if err != nil {
		log.Fatal(err)
	}

	db, err := pebble.Open(*dbDir, &pebble.Options{})
	if err != nil {
		log.Fatal(err)
	}
	kvDB := kv.NewKVDB(db, true)
	defer kvDB.Close()

	if err := kvDB.SaveNetwork(network); err != nil {
		log.Fatal(err)
	}
	if err := kvDB.ClearRoutes(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nsnapshot %s network (%d stations, %d lines) saved to %s\n", src, network.NumStations(), len(network.Lines()), *dbDir)
}
