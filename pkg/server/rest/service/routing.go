package service

import (
	"context"
	"errors"
	"log"

	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/engine/search"
	"lintang/metronav/pkg/kv"
	"lintang/metronav/pkg/server"
)

type RouteCache interface {
	GetRoute(key string) (*datastructure.Path, bool, error)
	SaveRoute(key string, p *datastructure.Path) error
}

// RouteResult hasil satu query rute. Found=false kalau destination tidak bisa dicapai.
type RouteResult struct {
	Path      *datastructure.Path
	Stations  []datastructure.Station
	Coords    []datastructure.Coordinate
	Polyline  string
	Found     bool
	Cached    bool
	Algorithm search.Algorithm
	Mode      search.CostMode
}

type RoutingService struct {
	network     *datastructure.Network
	fingerprint string
	cache       RouteCache
}

// NewRoutingService cache boleh nil. network tidak boleh diubah setelah service dibuat.
func NewRoutingService(network *datastructure.Network, cache RouteCache) *RoutingService {
	return &RoutingService{network: network, fingerprint: kv.NetworkFingerprint(network), cache: cache}
}

func (s *RoutingService) parseParams(algorithm, mode string) (search.Algorithm, search.CostMode, error) {
	alg, err := search.ParseAlgorithm(algorithm)
	if err != nil {
		return "", 0, server.WrapErrorf(err, server.ErrBadParamInput, "algorithm %q is not one of dfs, bfs, ucs, astar", algorithm)
	}
	m, err := search.ParseCostMode(mode)
	if err != nil {
		return "", 0, server.WrapErrorf(err, server.ErrBadParamInput, "mode %q is not one of adjacency, time, distance, transfers", mode)
	}
	return alg, m, nil
}

// SearchRoute cari rute origin -> destination. hasil dfs/bfs diberi cost sesuai mode supaya bisa dibandingkan.
func (s *RoutingService) SearchRoute(ctx context.Context, algorithm, mode string, origin, destination int32) (RouteResult, error) {
	alg, m, err := s.parseParams(algorithm, mode)
	if err != nil {
		return RouteResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return RouteResult{}, err
	}
	res := RouteResult{Algorithm: alg, Mode: m}

	key := kv.RouteKey(s.fingerprint, string(alg), m.String(), origin, destination)
	if s.cache != nil {
		p, ok, err := s.cache.GetRoute(key)
		if err != nil {
			log.Printf("route cache get %s: %v", key, err)
		} else if ok {
			res.Cached = true
			return s.describe(res, p), nil
		}
	}

	p, err := search.Search(alg, s.network, origin, destination, m)
	if err != nil {
		return s.searchError(res, err, origin, destination)
	}
	if alg == search.DepthFirst || alg == search.BreadthFirst {
		c, _ := search.CriterionFor(m)
		p.G = search.RouteCost(p.Route, s.network, c)
		p.H = 0
		p.F = p.G
	}

	if s.cache != nil {
		if err := s.cache.SaveRoute(key, p); err != nil {
			log.Printf("route cache save %s: %v", key, err)
		}
	}
	return s.describe(res, p), nil
}

// SearchFromCoordinate A* dari semua stasiun terdekat ke titik (x, y).
func (s *RoutingService) SearchFromCoordinate(ctx context.Context, x, y float64, destination int32, mode string) (RouteResult, error) {
	m, err := search.ParseCostMode(mode)
	if err != nil {
		return RouteResult{}, server.WrapErrorf(err, server.ErrBadParamInput, "mode %q is not one of adjacency, time, distance, transfers", mode)
	}
	if err := ctx.Err(); err != nil {
		return RouteResult{}, err
	}
	res := RouteResult{Algorithm: search.AStarSearch, Mode: m}
	p, err := search.AStarMultipleOrigins(s.network, x, y, destination, m)
	if err != nil {
		return s.searchError(res, err, -1, destination)
	}
	return s.describe(res, p), nil
}

func (s *RoutingService) searchError(res RouteResult, err error, origin, destination int32) (RouteResult, error) {
	switch {
	case errors.Is(err, search.ErrRouteNotFound):
		return res, nil
	case errors.Is(err, search.ErrUnknownStation):
		return res, server.WrapErrorf(err, server.ErrNotFound, "station not found: %v", err)
	case errors.Is(err, search.ErrEmptyNetwork):
		return res, server.WrapErrorf(err, server.ErrInternalServerError, "transit network is not loaded")
	case errors.Is(err, search.ErrInvalidMode), errors.Is(err, search.ErrInvalidAlgorithm):
		return res, server.WrapErrorf(err, server.ErrBadParamInput, "%v", err)
	}
	log.Printf("search %d -> %d: %v", origin, destination, err)
	return res, server.WrapErrorf(err, server.ErrInternalServerError, "%s", server.MessageInternalServerError)
}

func (s *RoutingService) describe(res RouteResult, p *datastructure.Path) RouteResult {
	res.Path = p
	res.Found = true
	res.Stations = make([]datastructure.Station, 0, len(p.Route))
	for _, id := range p.Route {
		st, _ := s.network.Station(id)
		res.Stations = append(res.Stations, st)
	}
	res.Coords = datastructure.RouteCoordinates(s.network, p)
	res.Polyline = datastructure.RenderPath(s.network, p)
	return res
}

// NearestStations semua stasiun dengan jarak minimum ke (x, y).
func (s *RoutingService) NearestStations(ctx context.Context, x, y float64) ([]datastructure.Station, error) {
	ids, err := search.NearestStations(s.network, x, y)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "transit network is not loaded")
	}
	stations := make([]datastructure.Station, 0, len(ids))
	for _, id := range ids {
		st, _ := s.network.Station(id)
		stations = append(stations, st)
	}
	return stations, nil
}

func (s *RoutingService) Station(ctx context.Context, id int32) (datastructure.Station, []datastructure.Connection, error) {
	st, ok := s.network.Station(id)
	if !ok {
		return datastructure.Station{}, nil, server.WrapErrorf(nil, server.ErrNotFound, "station %d not found", id)
	}
	return st, s.network.Connections(id), nil
}

func (s *RoutingService) LineName(line int32) string {
	return s.network.LineName(line)
}
