// Package prices derives the cheapest price per fuel type from a station
// list and orders stations by the price of a selected fuel.
package prices

import "github.com/rubiojr/gasprices/pkg/api"

// CheapestPrices maps a fuel key to the lowest price reported for it. A key
// is absent when no station reports a price for that fuel.
type CheapestPrices map[api.FuelKey]float64

// Get returns the minimum for key and whether one exists.
func (c CheapestPrices) Get(key api.FuelKey) (float64, bool) {
	v, ok := c[key]
	return v, ok
}

// Cheapest computes the minimum reported price for each key. Stations that
// do not report a fuel are skipped for that fuel.
func Cheapest(stations []api.Station, keys []api.FuelKey) CheapestPrices {
	cheapest := make(CheapestPrices, len(keys))
	for _, key := range keys {
		for i := range stations {
			price, ok := stations[i].Prices.Get(key)
			if !ok {
				continue
			}
			if current, found := cheapest[key]; !found || price < current {
				cheapest[key] = price
			}
		}
	}
	return cheapest
}

// IsCheapest reports whether the station's price for key equals the
// minimum for key. A station without a price, or a key without a minimum,
// is never cheapest.
func IsCheapest(station api.Station, key api.FuelKey, cheapest CheapestPrices) bool {
	price, ok := station.Prices.Get(key)
	if !ok {
		return false
	}
	lowest, ok := cheapest.Get(key)
	return ok && price == lowest
}

// Highlighted returns the IDs of stations that are cheapest for key, in
// input order.
func Highlighted(stations []api.Station, key api.FuelKey, cheapest CheapestPrices) []string {
	var ids []string
	for i := range stations {
		if IsCheapest(stations[i], key, cheapest) {
			ids = append(ids, stations[i].ID)
		}
	}
	return ids
}
