package translations

import "github.com/rubiojr/gasprices/pkg/api"

// Translations contains all text strings for the application
type Translations struct {
	Lang string

	// Page
	PageTitle string
	Heading   string

	// Status
	UpdatedAt    string
	NeverUpdated string
	RefreshError string
	RefreshLabel string

	// Station list
	NoStations   string
	StationsNear string
	KmAway       string
	KmFromHome   string
	GoogleMaps   string
	NotAvailable string

	// Fuel labels, keyed by fuel
	Fuels map[api.FuelKey]string
}

// FuelLabel returns the label for key, falling back to the built-in one.
func (t Translations) FuelLabel(key api.FuelKey) string {
	if label, ok := t.Fuels[key]; ok {
		return label
	}
	for _, ft := range api.FuelTypes {
		if ft.Key == key {
			return ft.Label
		}
	}
	return string(key)
}

// GetTranslations returns translations for the specified language
func GetTranslations(lang string) Translations {
	switch lang {
	case "de", "deutsch", "german":
		return GetGermanTranslations()
	default:
		return GetEnglishTranslations()
	}
}

// GetLanguageFromQuery extracts language from query parameter, falling back to def
func GetLanguageFromQuery(langParam, def string) string {
	switch langParam {
	case "en", "english":
		return "en"
	case "de", "deutsch", "german":
		return "de"
	default:
		return def
	}
}
