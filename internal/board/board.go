// Package board owns the loaded station list and the aggregates derived from
// it, and builds the per-selection snapshot the renderers consume.
package board

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/rubiojr/gasprices/internal/geo"
	"github.com/rubiojr/gasprices/internal/prices"
	"github.com/rubiojr/gasprices/pkg/api"
)

// Loader fetches the stations around a postcode.
type Loader interface {
	FetchStations(ctx context.Context, postcode string, radius float64) ([]api.Station, error)
}

// Row is one station as displayed for the selected fuel.
type Row struct {
	Station api.Station
	// Highlight is set when the station is cheapest for the selected fuel.
	Highlight bool
	// Cheapest marks every fuel for which this station is cheapest.
	Cheapest map[api.FuelKey]bool
	HomeKm   float64
	HasHome  bool
}

// Snapshot is the derived, render-ready state for one fuel selection.
type Snapshot struct {
	Postcode  string
	Selected  api.FuelKey
	Cheapest  prices.CheapestPrices
	Rows      []Row
	UpdatedAt time.Time
	LastError error
}

// Loaded reports whether at least one refresh succeeded.
func (s Snapshot) Loaded() bool {
	return !s.UpdatedAt.IsZero()
}

// Board owns the loaded stations and the cheapest prices derived from them.
type Board struct {
	loader   Loader
	postcode string
	radius   float64
	home     *geo.Point
	log      *slog.Logger
	now      func() time.Time

	mu        sync.RWMutex
	stations  []api.Station
	cheapest  prices.CheapestPrices
	updatedAt time.Time
	lastErr   error
}

// Option configures a Board.
type Option func(*Board)

// WithRadius overrides the search radius in km.
func WithRadius(km float64) Option {
	return func(b *Board) {
		b.radius = km
	}
}

// WithHome enables per-station distances from p.
func WithHome(p geo.Point) Option {
	return func(b *Board) {
		b.home = &p
	}
}

// WithClock replaces time.Now for the refresh timestamp.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// New creates an empty board. Nothing is fetched until Refresh is called.
func New(loader Loader, postcode string, logger *slog.Logger, opts ...Option) *Board {
	b := &Board{
		loader:   loader,
		postcode: postcode,
		radius:   api.DefaultRadius,
		log:      logger,
		now:      time.Now,
		cheapest: prices.Cheapest(nil, api.FuelKeys()),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Refresh fetches the station list and replaces the current one. On failure
// the previous list and aggregates are kept and the error is recorded and
// returned. Concurrent refreshes are not ordered: the last one to complete
// wins.
func (b *Board) Refresh(ctx context.Context) error {
	b.log.Debug("Fetching stations", "postcode", b.postcode, "radius", b.radius)

	stations, err := b.loader.FetchStations(ctx, b.postcode, b.radius)
	if err != nil {
		b.mu.Lock()
		b.lastErr = err
		b.mu.Unlock()
		b.log.Error("Error refreshing stations", "postcode", b.postcode, "error", err)
		return err
	}

	cheapest := prices.Cheapest(stations, api.FuelKeys())

	b.mu.Lock()
	b.stations = stations
	b.cheapest = cheapest
	b.updatedAt = b.now()
	b.lastErr = nil
	b.mu.Unlock()

	b.log.Info("Stations refreshed", "postcode", b.postcode, "stations", len(stations))
	return nil
}

// Run refreshes every interval until ctx is done.
func (b *Board) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Errors are logged and recorded by Refresh.
			_ = b.Refresh(ctx)
		}
	}
}

// Stations returns a copy of the current station list.
func (b *Board) Stations() []api.Station {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.stations)
}

// Cheapest returns a copy of the current cheapest prices.
func (b *Board) Cheapest() prices.CheapestPrices {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(prices.CheapestPrices, len(b.cheapest))
	for k, v := range b.cheapest {
		out[k] = v
	}
	return out
}

// Snapshot derives the display order and highlights for key from the
// current state. It never triggers a fetch.
func (b *Board) Snapshot(key api.FuelKey) Snapshot {
	b.mu.RLock()
	stations := b.stations
	cheapest := b.cheapest
	updatedAt := b.updatedAt
	lastErr := b.lastErr
	b.mu.RUnlock()

	sorted := prices.SortByFuel(stations, key)
	rows := make([]Row, 0, len(sorted))
	for _, st := range sorted {
		row := Row{
			Station:   st,
			Highlight: prices.IsCheapest(st, key, cheapest),
			Cheapest:  make(map[api.FuelKey]bool, len(api.FuelTypes)),
		}
		for _, fk := range api.FuelKeys() {
			row.Cheapest[fk] = prices.IsCheapest(st, fk, cheapest)
		}
		if b.home != nil {
			row.HomeKm = geo.DistanceKm(*b.home, geo.Point{Lat: st.Lat, Lng: st.Lng})
			row.HasHome = true
		}
		rows = append(rows, row)
	}

	return Snapshot{
		Postcode:  b.postcode,
		Selected:  key,
		Cheapest:  cheapest,
		Rows:      rows,
		UpdatedAt: updatedAt,
		LastError: lastErr,
	}
}
