package view

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rubiojr/gasprices/pkg/api"
)

const googleMapsSearch = "https://www.google.com/maps/search/?api=1&query="

// GoogleMapsLink builds a map search URL from the station's name and
// address. Values are concatenated as-is; callers that need strict URLs must
// escape them.
func GoogleMapsLink(s api.Station) string {
	return googleMapsSearch + s.Name + "+" + s.Street + "+" + s.HouseNumber + "+" + s.Place
}

// FormatPrice renders a price in euros, or notAvailable when unreported.
func FormatPrice(price float64, ok bool, notAvailable string) string {
	if !ok {
		return notAvailable
	}
	return strconv.FormatFloat(price, 'f', -1, 64) + " €"
}

// Address formats street, house number and place the way the station list
// shows them: title-cased street and place.
func Address(s api.Station) string {
	// Casers carry state and must not be shared across goroutines.
	caser := cases.Title(language.German)
	street := caser.String(strings.ToLower(s.Street))
	place := caser.String(strings.ToLower(s.Place))
	return strings.TrimSpace(street+" "+s.HouseNumber) + ", " + place
}
