package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"lintang/metronav/pkg/datastructure"
	"lintang/metronav/pkg/server"
	"lintang/metronav/pkg/server/rest/service"
	"lintang/metronav/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type RoutingService interface {
	SearchRoute(ctx context.Context, algorithm, mode string, origin, destination int32) (service.RouteResult, error)
	SearchFromCoordinate(ctx context.Context, x, y float64, destination int32, mode string) (service.RouteResult, error)
	NearestStations(ctx context.Context, x, y float64) ([]datastructure.Station, error)
	Station(ctx context.Context, id int32) (datastructure.Station, []datastructure.Connection, error)
	LineName(line int32) string
}

type RoutingHandler struct {
	svc          RoutingService
	promeMetrics *metrics
}

func RoutingRouter(r *chi.Mux, svc RoutingService, m *metrics) {
	handler := &RoutingHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/routes", func(r chi.Router) {
			r.Post("/search", handler.searchRoute)
			r.Post("/search-from-coordinate", handler.searchFromCoordinate)
		})
		r.Route("/api/stations", func(r chi.Router) {
			r.Post("/nearest", handler.nearestStations)
			r.Get("/{id}", handler.station)
		})
	})
}

// SearchRouteRequest model info
//
//	@Description	request body untuk route search antara 2 stasiun
type SearchRouteRequest struct {
	Origin      int32  `json:"origin" validate:"gte=0"`
	Destination int32  `json:"destination" validate:"gte=0"`
	Algorithm   string `json:"algorithm" validate:"required,oneof=dfs bfs ucs astar"`
	Mode        string `json:"mode" validate:"required,oneof=adjacency time distance transfers 0 1 2 3"`
}

func (s *SearchRouteRequest) Bind(r *http.Request) error {
	s.Algorithm = strings.ToLower(strings.TrimSpace(s.Algorithm))
	s.Mode = strings.ToLower(strings.TrimSpace(s.Mode))
	if s.Algorithm == "" {
		s.Algorithm = "astar"
	}
	if s.Mode == "" {
		s.Mode = "time"
	}
	return nil
}

// SearchFromCoordinateRequest model info
//
//	@Description	request body untuk route search dari titik koordinat ke stasiun tujuan. origin = semua stasiun terdekat
type SearchFromCoordinateRequest struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Destination int32   `json:"destination" validate:"gte=0"`
	Mode        string  `json:"mode" validate:"required,oneof=adjacency time distance transfers 0 1 2 3"`
}

func (s *SearchFromCoordinateRequest) Bind(r *http.Request) error {
	s.Mode = strings.ToLower(strings.TrimSpace(s.Mode))
	if s.Mode == "" {
		s.Mode = "time"
	}
	return nil
}

// NearestStationsRequest model info
//
//	@Description	request body untuk query stasiun terdekat dari titik koordinat
type NearestStationsRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *NearestStationsRequest) Bind(r *http.Request) error {
	return nil
}

// StationRes model info
//
//	@Description	model untuk stasiun
type StationRes struct {
	ID       int32   `json:"id"`
	Name     string  `json:"name"`
	Line     int32   `json:"line"`
	LineName string  `json:"line_name,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

func (h *RoutingHandler) stationRes(s datastructure.Station) StationRes {
	return StationRes{ID: s.ID, Name: s.Name, Line: s.Line, LineName: h.svc.LineName(s.Line), X: s.X, Y: s.Y}
}

// RouteResponse	model info
//
//	@Description	response body untuk route search
type RouteResponse struct {
	Found       bool                       `json:"found"`
	Algorithm   string                     `json:"algorithm"`
	Mode        string                     `json:"mode"`
	Route       []StationRes               `json:"route,omitempty"`
	Hops        int                        `json:"hops"`
	G           float64                    `json:"g"`
	H           float64                    `json:"h"`
	F           float64                    `json:"f"`
	Coordinates []datastructure.Coordinate `json:"coordinates,omitempty"`
	Polyline    string                     `json:"polyline,omitempty"`
	Cached      bool                       `json:"cached"`
}

func (h *RoutingHandler) NewRouteResponse(res service.RouteResult) *RouteResponse {
	resp := &RouteResponse{
		Found:     res.Found,
		Algorithm: string(res.Algorithm),
		Mode:      res.Mode.String(),
		Cached:    res.Cached,
	}
	if !res.Found {
		return resp
	}
	resp.Route = make([]StationRes, 0, len(res.Stations))
	for _, s := range res.Stations {
		resp.Route = append(resp.Route, h.stationRes(s))
	}
	resp.Hops = res.Path.Hops()
	resp.G = util.RoundFloat(res.Path.G, 4)
	resp.H = util.RoundFloat(res.Path.H, 4)
	resp.F = util.RoundFloat(res.Path.F, 4)
	resp.Coordinates = res.Coords
	resp.Polyline = res.Polyline
	return resp
}

// searchRoute
//
//	@Summary		route search antara 2 stasiun di transit network.
//	@Description	route search antara 2 stasiun pakai dfs, bfs, ucs, atau astar dengan cost mode adjacency, time, distance, atau transfers.
//	@Tags			routes
//	@Param			body	body	SearchRouteRequest	true	"request body route search antara 2 stasiun"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/search [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoutingHandler) searchRoute(w http.ResponseWriter, r *http.Request) {
	data := &SearchRouteRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	start := time.Now()
	res, err := h.svc.SearchRoute(r.Context(), data.Algorithm, data.Mode, data.Origin, data.Destination)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.observeSearch(res, time.Since(start))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.NewRouteResponse(res))
}

// searchFromCoordinate
//
//	@Summary		route search dari titik koordinat ke stasiun tujuan.
//	@Description	A* dari setiap stasiun dengan jarak euclidean minimum ke titik (x, y). rute dengan cost terkecil yang dipilih.
//	@Tags			routes
//	@Param			body	body	SearchFromCoordinateRequest	true	"request body route search dari titik koordinat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/search-from-coordinate [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoutingHandler) searchFromCoordinate(w http.ResponseWriter, r *http.Request) {
	data := &SearchFromCoordinateRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	start := time.Now()
	res, err := h.svc.SearchFromCoordinate(r.Context(), data.X, data.Y, data.Destination, data.Mode)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.observeSearch(res, time.Since(start))

	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.NewRouteResponse(res))
}

// NearestStationsResponse model info
//
//	@Description	response body untuk query stasiun terdekat
type NearestStationsResponse struct {
	Stations []StationRes `json:"stations"`
}

// nearestStations
//
//	@Summary		stasiun terdekat dari titik koordinat.
//	@Description	semua stasiun dengan jarak euclidean minimum ke titik (x, y), termasuk yang jaraknya sama.
//	@Tags			stations
//	@Param			body	body	NearestStationsRequest	true	"request body query stasiun terdekat"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/stations/nearest [post]
//	@Success		200	{object}	NearestStationsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *RoutingHandler) nearestStations(w http.ResponseWriter, r *http.Request) {
	data := &NearestStationsRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	stations, err := h.svc.NearestStations(r.Context(), data.X, data.Y)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	resp := &NearestStationsResponse{Stations: make([]StationRes, 0, len(stations))}
	for _, s := range stations {
		resp.Stations = append(resp.Stations, h.stationRes(s))
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// ConnectionRes model info
//
//	@Description	model untuk connection keluar dari stasiun
type ConnectionRes struct {
	To     int32   `json:"to"`
	Weight float64 `json:"weight"`
}

// StationResponse model info
//
//	@Description	response body untuk detail stasiun
type StationResponse struct {
	Station     StationRes      `json:"station"`
	Connections []ConnectionRes `json:"connections"`
}

// station
//
//	@Summary		detail stasiun.
//	@Description	detail stasiun dan connection keluar nya sesuai urutan adjacency.
//	@Tags			stations
//	@Param			id	path	int	true	"station id"
//	@Produce		application/json
//	@Router			/stations/{id} [get]
//	@Success		200	{object}	StationResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *RoutingHandler) station(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("invalid station id %q", chi.URLParam(r, "id"))))
		return
	}

	st, conns, err := h.svc.Station(r.Context(), int32(id))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	resp := &StationResponse{Station: h.stationRes(st), Connections: make([]ConnectionRes, 0, len(conns))}
	for _, c := range conns {
		resp.Connections = append(resp.Connections, ConnectionRes{To: c.To, Weight: c.Weight})
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// bindAndValidate decode body json lalu validasi tag validate. false kalau response error sudah ditulis.
func bindAndValidate(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}

	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrInternalServerError:
		return http.StatusInternalServerError
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
