package view

import (
	"fmt"
	"net/url"

	"github.com/rubiojr/gasprices/internal/board"
	"github.com/rubiojr/gasprices/internal/translations"
	"github.com/rubiojr/gasprices/pkg/api"
)

const (
	markerCheapest = "🌟"
	markerStation  = "⛽"
	timeLayout     = "2006-01-02 15:04"
)

// FuelTab is one entry of the fuel selector.
type FuelTab struct {
	Key      api.FuelKey
	Label    string
	Selected bool
	Href     string
}

// PriceCell is one fuel column of a station card.
type PriceCell struct {
	Label    string
	Value    string
	Cheapest bool
}

// StationView is the view model of one station card.
type StationView struct {
	ID           string
	Name         string
	Brand        string
	Address      string
	MapsURL      string
	Marker       string
	Highlight    bool
	Distance     string
	HomeDistance string
	Prices       []PriceCell
}

// Page is the view model shared by the HTML and text renderers.
type Page struct {
	T        translations.Translations
	Postcode string
	Selected api.FuelKey
	Tabs     []FuelTab
	Stations []StationView
	Loaded   bool
	Updated  string
	Error    string
}

// NewPage converts a board snapshot into a page in the given language.
func NewPage(snap board.Snapshot, t translations.Translations) *Page {
	page := &Page{
		T:        t,
		Postcode: snap.Postcode,
		Selected: snap.Selected,
		Loaded:   snap.Loaded(),
		Stations: make([]StationView, 0, len(snap.Rows)),
	}
	if page.Loaded {
		page.Updated = snap.UpdatedAt.Format(timeLayout)
	}
	if snap.LastError != nil {
		page.Error = snap.LastError.Error()
	}

	for _, ft := range api.FuelTypes {
		q := url.Values{}
		q.Set("fuel", string(ft.Key))
		q.Set("lang", t.Lang)
		page.Tabs = append(page.Tabs, FuelTab{
			Key:      ft.Key,
			Label:    t.FuelLabel(ft.Key),
			Selected: ft.Key == snap.Selected,
			Href:     "?" + q.Encode(),
		})
	}

	for _, row := range snap.Rows {
		page.Stations = append(page.Stations, newStationView(row, t))
	}
	return page
}

func newStationView(row board.Row, t translations.Translations) StationView {
	st := row.Station
	sv := StationView{
		ID:        st.ID,
		Name:      st.Name,
		Brand:     st.Brand,
		Address:   Address(st),
		MapsURL:   GoogleMapsLink(st),
		Marker:    markerStation,
		Highlight: row.Highlight,
		Distance:  fmt.Sprintf("%.1f %s", st.Dist, t.KmAway),
	}
	if row.Highlight {
		sv.Marker = markerCheapest
	}
	if row.HasHome {
		sv.HomeDistance = fmt.Sprintf("%.1f %s", row.HomeKm, t.KmFromHome)
	}
	for _, ft := range api.FuelTypes {
		p, ok := st.Prices.Get(ft.Key)
		sv.Prices = append(sv.Prices, PriceCell{
			Label:    t.FuelLabel(ft.Key),
			Value:    FormatPrice(p, ok, t.NotAvailable),
			Cheapest: row.Cheapest[ft.Key],
		})
	}
	return sv
}
