package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const validBody = `{
  "status": "ok",
  "data": {
    "stations": [
      {
        "id": "51d4b5a3-a095-1aa0-e100-80009459e03a",
        "name": "JET BERLIN FRANKFURTER ALLEE 71",
        "brand": "JET",
        "street": "FRANKFURTER ALLEE",
        "house_number": "71",
        "post_code": 10247,
        "place": "BERLIN",
        "lat": 52.5141,
        "lng": 13.4755,
        "dist": 0.4,
        "isOpen": true,
        "prices": {"diesel": 1.609, "e5": 1.759, "e10": null}
      },
      {
        "id": "e1a15081-25ee-9107-e040-0b0a3dfe563c",
        "name": "ARAL Tankstelle",
        "brand": "ARAL",
        "street": "Holzmarktstraße",
        "house_number": "12",
        "post_code": null,
        "place": "Berlin",
        "lat": 52.5126,
        "lng": 13.4220,
        "dist": 0.9,
        "prices": {"diesel": null, "e5": 1.799, "e10": 1.739}
      }
    ]
  }
}`

func newTestAPI(t *testing.T, handler http.HandlerFunc) *FuelPriceAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewFuelPriceAPI(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestFuelPriceAPI_FetchStations(t *testing.T) {
	var gotPath, gotPostcode, gotRadius string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPostcode = r.URL.Query().Get("postcode")
		gotRadius = r.URL.Query().Get("radius")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(validBody))
	})

	stations, err := api.FetchStations(context.Background(), "10247", DefaultRadius)
	if err != nil {
		t.Fatalf("FetchStations() failed: %v", err)
	}

	if gotPath != "/get_stations_near_postcode.php" {
		t.Errorf("Expected path /get_stations_near_postcode.php, got %q", gotPath)
	}
	if gotPostcode != "10247" {
		t.Errorf("Expected postcode 10247, got %q", gotPostcode)
	}
	if gotRadius != "1" {
		t.Errorf("Expected radius 1, got %q", gotRadius)
	}

	if len(stations) != 2 {
		t.Fatalf("Expected 2 stations, got %d", len(stations))
	}

	first := stations[0]
	if first.Brand != "JET" || first.HouseNumber != "71" {
		t.Errorf("Unexpected first station: %+v", first)
	}
	if first.PostCode == nil || *first.PostCode != 10247 {
		t.Errorf("Expected post code 10247, got %v", first.PostCode)
	}
	if p, ok := first.Prices.Get(Diesel); !ok || p != 1.609 {
		t.Errorf("Expected diesel 1.609, got %v (ok=%v)", p, ok)
	}
	if _, ok := first.Prices.Get(E10); ok {
		t.Error("Expected e10 to be unreported for first station")
	}

	if stations[1].PostCode != nil {
		t.Errorf("Expected nil post code, got %v", *stations[1].PostCode)
	}
}

func TestFuelPriceAPI_NullAndZeroValuesAccepted(t *testing.T) {
	body := `{"data":{"stations":[{"id":"A","name":"n","brand":"b","street":"s","house_number":"","post_code":null,"place":"p","lat":0,"lng":0,"dist":0,"prices":{"diesel":null,"e5":null,"e10":null}}]}}`
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	stations, err := api.FetchStations(context.Background(), "10247", DefaultRadius)
	if err != nil {
		t.Fatalf("FetchStations() failed: %v", err)
	}
	if len(stations) != 1 {
		t.Fatalf("Expected 1 station, got %d", len(stations))
	}
	for _, key := range FuelKeys() {
		if _, ok := stations[0].Prices.Get(key); ok {
			t.Errorf("Expected %s to be unreported", key)
		}
	}
}

func TestFuelPriceAPI_FetchStationsEmpty(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"stations":[]}}`))
	})

	stations, err := api.FetchStations(context.Background(), "10247", DefaultRadius)
	if err != nil {
		t.Fatalf("FetchStations() failed: %v", err)
	}
	if len(stations) != 0 {
		t.Errorf("Expected no stations, got %d", len(stations))
	}
}

func TestFuelPriceAPI_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{
			name:     "price is a string",
			body:     `{"data":{"stations":[{"id":"A","name":"n","brand":"b","street":"s","house_number":"1","post_code":null,"place":"p","lat":1,"lng":2,"dist":0.1,"prices":{"diesel":null,"e5":"1.80","e10":null}}]}}`,
			contains: "e5",
		},
		{
			name:     "missing id",
			body:     `{"data":{"stations":[{"name":"n","brand":"b","street":"s","house_number":"1","post_code":null,"place":"p","lat":1,"lng":2,"dist":0.1,"prices":{"diesel":null,"e5":null,"e10":null}}]}}`,
			contains: "stations[0].id",
		},
		{
			name:     "missing prices",
			body:     `{"data":{"stations":[{"id":"A","name":"n","brand":"b","street":"s","house_number":"1","post_code":null,"place":"p","lat":1,"lng":2,"dist":0.1}]}}`,
			contains: "stations[0].prices",
		},
		{
			name:     "missing e5 key",
			body:     `{"data":{"stations":[{"id":"A","name":"n","brand":"b","street":"s","house_number":"1","post_code":null,"place":"p","lat":1,"lng":2,"dist":0.1,"prices":{"diesel":1.5,"e10":null}}]}}`,
			contains: "stations[0].prices.e5: missing",
		},
		{
			name:     "missing post_code key",
			body:     `{"data":{"stations":[{"id":"A","name":"n","brand":"b","street":"s","house_number":"1","place":"p","lat":1,"lng":2,"dist":0.1,"prices":{"diesel":null,"e5":null,"e10":null}}]}}`,
			contains: "stations[0].post_code: missing",
		},
		{
			name:     "upper-case id key",
			body:     `{"data":{"stations":[{"ID":"A","name":"n","brand":"b","street":"s","house_number":"1","post_code":null,"place":"p","lat":1,"lng":2,"dist":0.1,"prices":{"diesel":null,"e5":null,"e10":null}}]}}`,
			contains: "stations[0].ID",
		},
		{
			name:     "mixed-case price key",
			body:     `{"data":{"stations":[{"id":"A","name":"n","brand":"b","street":"s","house_number":"1","post_code":null,"place":"p","lat":1,"lng":2,"dist":0.1,"prices":{"diesel":null,"E5":1.7,"e10":null}}]}}`,
			contains: "stations[0].prices.E5",
		},
		{
			name:     "prices null",
			body:     `{"data":{"stations":[{"id":"A","name":"n","brand":"b","street":"s","house_number":"1","post_code":null,"place":"p","lat":1,"lng":2,"dist":0.1,"prices":null}]}}`,
			contains: "stations[0].prices",
		},
		{
			name:     "missing stations",
			body:     `{"data":{}}`,
			contains: "data.stations",
		},
		{
			name:     "missing data",
			body:     `{"status":"error"}`,
			contains: "data",
		},
		{
			name:     "malformed JSON",
			body:     `{"data":`,
			contains: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(test.body))
			})

			stations, err := api.FetchStations(context.Background(), "10247", DefaultRadius)
			if err == nil {
				t.Fatal("FetchStations() expected error but got none")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
			if errors.Is(err, ErrNetwork) {
				t.Errorf("Validation error must not be reported as network failure: %v", err)
			}
			if stations != nil {
				t.Errorf("Expected no stations on failure, got %d", len(stations))
			}
			if !strings.Contains(err.Error(), test.contains) {
				t.Errorf("Expected error to mention %q, got %q", test.contains, err.Error())
			}
		})
	}
}

func TestFuelPriceAPI_NetworkFailures(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		})

		_, err := api.FetchStations(context.Background(), "10247", DefaultRadius)
		if !errors.Is(err, ErrNetwork) {
			t.Errorf("Expected ErrNetwork, got %v", err)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		baseURL := srv.URL
		srv.Close()

		api := NewFuelPriceAPI(WithBaseURL(baseURL))
		_, err := api.FetchStations(context.Background(), "10247", DefaultRadius)
		if !errors.Is(err, ErrNetwork) {
			t.Errorf("Expected ErrNetwork, got %v", err)
		}
	})
}

func TestFuelPriceAPI_StationsURL(t *testing.T) {
	api := NewFuelPriceAPI()

	got := api.StationsURL("01067", 1)
	want := "https://tankerkoenig.de/ajax_v3_public/get_stations_near_postcode.php?postcode=01067&radius=1"
	if got != want {
		t.Errorf("StationsURL() = %q, expected %q", got, want)
	}
}

func TestParseFuelKey(t *testing.T) {
	tests := []struct {
		input    string
		expected FuelKey
		hasError bool
	}{
		{"e5", E5, false},
		{"E10", E10, false},
		{" diesel ", Diesel, false},
		{"lpg", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseFuelKey(test.input)

		if test.hasError {
			if !errors.Is(err, ErrUnknownFuel) {
				t.Errorf("ParseFuelKey(%q) expected ErrUnknownFuel but got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFuelKey(%q) unexpected error: %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("ParseFuelKey(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}
