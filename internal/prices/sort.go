package prices

import (
	"slices"

	"github.com/rubiojr/gasprices/pkg/api"
)

// SortByFuel returns a copy of stations ordered by ascending price for key.
// Stations without a price for key come last. Equal prices keep their input
// order. The input slice is not modified.
func SortByFuel(stations []api.Station, key api.FuelKey) []api.Station {
	sorted := slices.Clone(stations)
	slices.SortStableFunc(sorted, func(a, b api.Station) int {
		return comparePrice(a, b, key)
	})
	return sorted
}

func comparePrice(a, b api.Station, key api.FuelKey) int {
	pa, okA := a.Prices.Get(key)
	pb, okB := b.Prices.Get(key)
	switch {
	case okA && okB:
		if pa < pb {
			return -1
		}
		if pa > pb {
			return 1
		}
		return 0
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
