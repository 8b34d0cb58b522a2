// Package geo resolves a home location and measures distances to stations.
package geo

import (
	"fmt"
	"strconv"

	"github.com/muesli/gominatim"
	"github.com/tkrajina/gpxgo/gpx"
)

const (
	NominatimServer = "https://nominatim.openstreetmap.org/"
	metersPerKm     = 1000.0
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lng float64
}

// IsZero reports whether p is the unset point.
func (p Point) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}

// Place is a geocoded location.
type Place struct {
	Point
	DisplayName string
}

// Geocode resolves a free-form location through Nominatim and returns the
// best match.
func Geocode(location string) (Place, error) {
	gominatim.SetServer(NominatimServer)
	qry := gominatim.SearchQuery{
		Q: location,
	}

	results, err := qry.Get()
	if err != nil {
		return Place{}, fmt.Errorf("geocoding error: %w", err)
	}
	if len(results) == 0 {
		return Place{}, fmt.Errorf("no results found for location: %s", location)
	}

	return placeFromResult(results[0])
}

func placeFromResult(result gominatim.SearchResult) (Place, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("error parsing latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("error parsing longitude: %w", err)
	}

	return Place{Point: Point{Lat: lat, Lng: lng}, DisplayName: result.DisplayName}, nil
}

// DistanceKm returns the great-circle distance between two points in km.
func DistanceKm(a, b Point) float64 {
	return gpx.Distance2D(a.Lat, a.Lng, b.Lat, b.Lng, true) / metersPerKm
}
