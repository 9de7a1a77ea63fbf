package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	_ "lintang/metronav/docs"
	"lintang/metronav/pkg/kv"
	"lintang/metronav/pkg/networkloader"
	"lintang/metronav/pkg/server/rest"
	"lintang/metronav/pkg/server/rest/service"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	listenAddr      = flag.String("listenaddr", ":5000", "server listen address")
	mapFile         = flag.String("f", "", "openstreetmap .osm.pbf file buat import transit network")
	stationsFile    = flag.String("stations", "", "tabel stasiun (id name line x y)")
	connectionsFile = flag.String("connections", "", "tabel connection (from to weight)")
	velocitiesFile  = flag.String("velocities", "", "tabel velocity line (line velocity [name])")
	dbDir           = flag.String("db", "metronavDB", "direktori pebble db buat snapshot network & route cache")
	speed           = flag.Float64("speed", 35, "kecepatan rata-rata kereta (km/jam) untuk import osm")
	transferPenalty = flag.Float64("transfer", 4, "weight (menit) connection transfer antar line untuk import osm")
	swaggerURL      = flag.String("swaggerurl", "http://localhost:5000/swagger/doc.json", "url swagger doc.json")
)

//	@title			metronav API
//	@version		1.0
//	@description	transit network route search engine in go. dfs, bfs, uniform cost search dan A* dengan cost mode adjacency, time, distance, transfers

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	db, err := pebble.Open(*dbDir, &pebble.Options{})
	if err != nil {
		log.Fatal(err)
	}
	kvDB := kv.NewKVDB(db, true)
	defer kvDB.Close()

	network, src, err := networkloader.Load(context.Background(), networkloader.Options{
		OSMFile:         *mapFile,
		StationsFile:    *stationsFile,
		ConnectionsFile: *connectionsFile,
		VelocitiesFile:  *velocitiesFile,
		SpeedKmh:        *speed,
		TransferPenalty: *transferPenalty,
		ShowProgress:    true,
	}, kvDB)
	if err != nil {
		log.Fatal(err)
	}
	if src != networkloader.SourceSnapshot {
		// key route lama pakai fingerprint network sebelumnya, tidak akan kebaca lagi
		if err := kvDB.ClearRoutes(); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("transit network loaded from %s: %d stations, %d lines", src, network.NumStations(), len(network.Lines()))

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(*swaggerURL), //The url pointing to API definition
	))

	routingSvc := service.NewRoutingService(network, kvDB)
	rest.RoutingRouter(r, routingSvc, m)

	fmt.Printf("\nserver started at %s\n", *listenAddr)
	log.Fatal(http.ListenAndServe(*listenAddr, r))
}
