package translations

import "github.com/rubiojr/gasprices/pkg/api"

// GetGermanTranslations returns all German text strings
func GetGermanTranslations() Translations {
	return Translations{
		Lang: "de",

		PageTitle: "Spritpreise",
		Heading:   "⛽ SPRITPREISE 🚘",

		UpdatedAt:    "Preise abgerufen um",
		NeverUpdated: "Noch keine Preise abgerufen.",
		RefreshError: "Letzte Aktualisierung fehlgeschlagen, es werden die vorherigen Preise angezeigt:",
		RefreshLabel: "Aktualisieren",

		NoStations:   "Keine Tankstellen gefunden.",
		StationsNear: "Tankstellen bei",
		KmAway:       "km entfernt",
		KmFromHome:   "km von zu Hause",
		GoogleMaps:   "📍 Google Maps",
		NotAvailable: "-",

		Fuels: map[api.FuelKey]string{
			api.Diesel: "Diesel",
			api.E5:     "Super",
			api.E10:    "E10",
		},
	}
}
