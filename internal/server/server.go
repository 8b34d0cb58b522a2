// Package server exposes the station board over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/httprate"

	"github.com/rubiojr/gasprices/internal/board"
	"github.com/rubiojr/gasprices/internal/translations"
	"github.com/rubiojr/gasprices/internal/view"
	"github.com/rubiojr/gasprices/pkg/api"
)

const (
	requestsPerMinute = 60
	refreshesPerMin   = 6
)

// Options sets the fuel and language used when a request names none.
type Options struct {
	DefaultFuel api.FuelKey
	DefaultLang string
}

// Server serves the station page and API from a Board.
type Server struct {
	board  *board.Board
	logger *httplog.Logger
	opts   Options
}

// New builds the router. Templates must be loaded before serving.
func New(b *board.Board, logger *httplog.Logger, opts Options) http.Handler {
	if opts.DefaultFuel == "" {
		opts.DefaultFuel = api.DefaultFuel
	}
	if opts.DefaultLang == "" {
		opts.DefaultLang = "en"
	}
	s := &Server{board: b, logger: logger, opts: opts}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(requestsPerMinute, time.Minute))
		r.Get("/", s.handleIndex)
		r.Get("/api/stations", s.handleStations)
	})

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(refreshesPerMin, time.Minute))
		r.Post("/refresh", s.handleRefresh)
	})

	return r
}

// fuelFromQuery returns the selected fuel, or the default when the
// parameter is absent. ok is false for unknown fuels.
func (s *Server) fuelFromQuery(v string) (api.FuelKey, bool) {
	if v == "" {
		return s.opts.DefaultFuel, true
	}
	key, err := api.ParseFuelKey(v)
	if err != nil {
		return "", false
	}
	return key, true
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	key, ok := s.fuelFromQuery(query.Get("fuel"))
	if !ok {
		http.Error(w, "Invalid fuel type", http.StatusBadRequest)
		return
	}
	lang := translations.GetLanguageFromQuery(query.Get("lang"), s.opts.DefaultLang)

	page := view.NewPage(s.board.Snapshot(key), translations.GetTranslations(lang))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderPage(w, page); err != nil {
		s.logger.Error("Error rendering page", "error", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	// A client that goes away must not abort the fetch; the result is
	// stored regardless.
	ctx := context.WithoutCancel(r.Context())
	if err := s.board.Refresh(ctx); err != nil {
		s.logger.Warn("Refresh failed, keeping previous stations", "error", err)
	}

	q := url.Values{}
	if fuel := r.FormValue("fuel"); fuel != "" {
		q.Set("fuel", fuel)
	}
	if lang := r.FormValue("lang"); lang != "" {
		q.Set("lang", lang)
	}
	target := "/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

type stationJSON struct {
	api.Station
	Highlight bool          `json:"highlight"`
	Cheapest  []api.FuelKey `json:"cheapest_for"`
	MapsURL   string        `json:"maps_url"`
	HomeKm    *float64      `json:"home_km,omitempty"`
}

type stationsJSON struct {
	Postcode  string                  `json:"postcode"`
	Selected  api.FuelKey             `json:"selected"`
	Cheapest  map[api.FuelKey]float64 `json:"cheapest"`
	Stations  []stationJSON           `json:"stations"`
	UpdatedAt *time.Time              `json:"updated_at,omitempty"`
	Error     string                  `json:"error,omitempty"`
}

func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	key, ok := s.fuelFromQuery(r.URL.Query().Get("fuel"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid fuel type"})
		return
	}

	snap := s.board.Snapshot(key)
	resp := stationsJSON{
		Postcode: snap.Postcode,
		Selected: snap.Selected,
		Cheapest: snap.Cheapest,
		Stations: make([]stationJSON, 0, len(snap.Rows)),
	}
	if snap.Loaded() {
		resp.UpdatedAt = &snap.UpdatedAt
	}
	if snap.LastError != nil {
		resp.Error = snap.LastError.Error()
	}
	for _, row := range snap.Rows {
		sj := stationJSON{
			Station:   row.Station,
			Highlight: row.Highlight,
			Cheapest:  []api.FuelKey{},
			MapsURL:   view.GoogleMapsLink(row.Station),
		}
		for _, fk := range api.FuelKeys() {
			if row.Cheapest[fk] {
				sj.Cheapest = append(sj.Cheapest, fk)
			}
		}
		if row.HasHome {
			km := row.HomeKm
			sj.HomeKm = &km
		}
		resp.Stations = append(resp.Stations, sj)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
