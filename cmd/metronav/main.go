package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"lintang/metronav/pkg/kv"
	"lintang/metronav/pkg/networkloader"
	"lintang/metronav/pkg/server/rest/service"
	"lintang/metronav/pkg/util"

	"github.com/cockroachdb/pebble"
)

var (
	alg             = flag.String("alg", "astar", "algoritma search: dfs, bfs, ucs, astar")
	mode            = flag.String("mode", "time", "cost mode: adjacency, time, distance, transfers (atau 0..3)")
	from            = flag.Int("from", 0, "id stasiun asal")
	to              = flag.Int("to", 0, "id stasiun tujuan")
	x               = flag.Float64("x", 0, "koordinat x titik asal (multi-origin A*)")
	y               = flag.Float64("y", 0, "koordinat y titik asal (multi-origin A*)")
	mapFile         = flag.String("f", "", "openstreetmap .osm.pbf file buat import transit network")
	stationsFile    = flag.String("stations", "", "tabel stasiun (id name line x y)")
	connectionsFile = flag.String("connections", "", "tabel connection (from to weight)")
	velocitiesFile  = flag.String("velocities", "", "tabel velocity line (line velocity [name])")
	dbDir           = flag.String("db", "", "direktori pebble db snapshot network (opsional)")
	speed           = flag.Float64("speed", 35, "kecepatan rata-rata kereta (km/jam) untuk import osm")
	transferPenalty = flag.Float64("transfer", 4, "weight (menit) connection transfer antar line untuk import osm")
)

func main() {
	flag.Parse()
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	fromCoordinate := set["x"] || set["y"]
	if !set["to"] || (!fromCoordinate && !set["from"]) {
		fmt.Fprintln(os.Stderr, "usage: metronav [-alg astar] [-mode time] (-from ID | -x X -y Y) -to ID <network source flags>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var store *kv.KVDB
	if *dbDir != "" {
		db, err := pebble.Open(*dbDir, &pebble.Options{})
		if err != nil {
			log.Fatal(err)
		}
		store = kv.NewKVDB(db, false)
		defer store.Close()
	}

	ctx := context.Background()
	network, _, err := networkloader.Load(ctx, networkloader.Options{
		OSMFile:         *mapFile,
		StationsFile:    *stationsFile,
		ConnectionsFile: *connectionsFile,
		VelocitiesFile:  *velocitiesFile,
		SpeedKmh:        *speed,
		TransferPenalty: *transferPenalty,
	}, store)
	if err != nil {
		log.Fatal(err)
	}

	svc := service.NewRoutingService(network, nil)
	var res service.RouteResult
	if fromCoordinate {
		res, err = svc.SearchFromCoordinate(ctx, *x, *y, int32(*to), *mode)
	} else {
		res, err = svc.SearchRoute(ctx, *alg, *mode, int32(*from), int32(*to))
	}
	if err != nil {
		log.Fatal(err)
	}

	if !res.Found {
		fmt.Printf("%s (%s): no route to station %d\n", res.Algorithm, res.Mode, *to)
		os.Exit(1)
	}
	fmt.Printf("%s (%s): %s\n", res.Algorithm, res.Mode, res.Path)
	for i, s := range res.Stations {
		fmt.Printf("%3d. [%d] %s (line %s)\n", i+1, s.ID, s.Name, lineLabel(svc, s.Line))
	}
	fmt.Printf("cost: %v, hops: %d\npolyline: %s\n", util.RoundFloat(res.Path.G, 4), res.Path.Hops(), res.Polyline)
}

func lineLabel(svc *service.RoutingService, line int32) string {
	if name := svc.LineName(line); name != "" {
		return name
	}
	return fmt.Sprint(line)
}
