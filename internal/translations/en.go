package translations

import "github.com/rubiojr/gasprices/pkg/api"

// GetEnglishTranslations returns all English text strings
func GetEnglishTranslations() Translations {
	return Translations{
		Lang: "en",

		PageTitle: "Gas Prices",
		Heading:   "⛽ GAS PRICES 🚘",

		UpdatedAt:    "Prices fetched at",
		NeverUpdated: "Prices not fetched yet.",
		RefreshError: "Last refresh failed, showing previous prices:",
		RefreshLabel: "Refresh",

		NoStations:   "No stations found.",
		StationsNear: "stations near",
		KmAway:       "km away",
		KmFromHome:   "km from home",
		GoogleMaps:   "📍 Google Maps",
		NotAvailable: "-",

		Fuels: map[api.FuelKey]string{
			api.Diesel: "Diesel",
			api.E5:     "Super",
			api.E10:    "E10",
		},
	}
}
