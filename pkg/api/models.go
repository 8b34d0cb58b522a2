package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFuel is returned when a fuel key outside the fixed set is parsed.
var ErrUnknownFuel = errors.New("unknown fuel type")

// FuelKey identifies one of the fuel categories a station may report.
type FuelKey string

const (
	Diesel FuelKey = "diesel"
	E5     FuelKey = "e5"
	E10    FuelKey = "e10"
)

// DefaultFuel is the fuel key selected when none is given.
const DefaultFuel = E5

// FuelType pairs a fuel key with its display label.
type FuelType struct {
	Key   FuelKey
	Label string
}

// FuelTypes lists every fuel key in display order.
var FuelTypes = []FuelType{
	{Key: Diesel, Label: "Diesel"},
	{Key: E5, Label: "Super"},
	{Key: E10, Label: "E10"},
}

// FuelKeys returns the keys of FuelTypes in display order.
func FuelKeys() []FuelKey {
	keys := make([]FuelKey, 0, len(FuelTypes))
	for _, ft := range FuelTypes {
		keys = append(keys, ft.Key)
	}
	return keys
}

// ParseFuelKey converts a case-insensitive string into a FuelKey.
func ParseFuelKey(s string) (FuelKey, error) {
	key := FuelKey(strings.ToLower(strings.TrimSpace(s)))
	for _, ft := range FuelTypes {
		if ft.Key == key {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFuel, s)
}

// Prices holds the per-fuel prices of a station. A nil field means the
// station does not sell or did not report that fuel.
type Prices struct {
	Diesel *float64 `json:"diesel"`
	E5     *float64 `json:"e5"`
	E10    *float64 `json:"e10"`
}

// Get returns the price for key and whether the station reports one.
func (p Prices) Get(key FuelKey) (float64, bool) {
	var v *float64
	switch key {
	case Diesel:
		v = p.Diesel
	case E5:
		v = p.E5
	case E10:
		v = p.E10
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Station is a validated fuel station record.
type Station struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Street      string  `json:"street"`
	HouseNumber string  `json:"house_number"`
	PostCode    *int    `json:"post_code"`
	Place       string  `json:"place"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Dist        float64 `json:"dist"`
	Prices      Prices  `json:"prices"`
}

// stationsResponse mirrors the wire envelope returned by the price service.
// Pointer fields let the validator tell a missing field from a zero value.
type stationsResponse struct {
	Data *stationsData `json:"data" validate:"required"`
}

type stationsData struct {
	Stations []stationRecord `json:"stations" validate:"required,dive"`
}

type stationRecord struct {
	ID          *string      `json:"id" validate:"required"`
	Name        *string      `json:"name" validate:"required"`
	Brand       *string      `json:"brand" validate:"required"`
	Street      *string      `json:"street" validate:"required"`
	HouseNumber *string      `json:"house_number" validate:"required"`
	PostCode    *int         `json:"post_code"`
	Place       *string      `json:"place" validate:"required"`
	Lat         *float64     `json:"lat" validate:"required"`
	Lng         *float64     `json:"lng" validate:"required"`
	Dist        *float64     `json:"dist" validate:"required"`
	Prices      *priceRecord `json:"prices" validate:"required"`
}

type priceRecord struct {
	Diesel *float64 `json:"diesel"`
	E5     *float64 `json:"e5"`
	E10    *float64 `json:"e10"`
}

func (r *stationRecord) station() Station {
	return Station{
		ID:          *r.ID,
		Name:        *r.Name,
		Brand:       *r.Brand,
		Street:      *r.Street,
		HouseNumber: *r.HouseNumber,
		PostCode:    r.PostCode,
		Place:       *r.Place,
		Lat:         *r.Lat,
		Lng:         *r.Lng,
		Dist:        *r.Dist,
		Prices: Prices{
			Diesel: r.Prices.Diesel,
			E5:     r.Prices.E5,
			E10:    r.Prices.E10,
		},
	}
}
