// Package api provides types and functions to fetch nearby fuel stations and
// their current prices from the Tankerkönig public endpoint.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://tankerkoenig.de/ajax_v3_public"
	DefaultRadius  = 1.0 // km
	DefaultTimeout = 30 * time.Second

	stationsPath = "get_stations_near_postcode.php"
)

var (
	// ErrNetwork wraps failures to complete the request: transport errors
	// and non-2xx responses.
	ErrNetwork = errors.New("network failure")
	// ErrValidation wraps responses that do not match the station schema.
	ErrValidation = errors.New("validation failure")
)

// FuelPriceAPI fetches station data from the price service.
type FuelPriceAPI struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a FuelPriceAPI.
type Option func(*FuelPriceAPI)

// WithBaseURL points the client at a different service root.
func WithBaseURL(u string) Option {
	return func(api *FuelPriceAPI) {
		api.baseURL = u
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(api *FuelPriceAPI) {
		api.httpClient = c
	}
}

// NewFuelPriceAPI creates a new FuelPriceAPI client with default settings.
func NewFuelPriceAPI(opts ...Option) *FuelPriceAPI {
	api := &FuelPriceAPI{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// StationsURL returns the request URL for a postcode and radius.
func (api *FuelPriceAPI) StationsURL(postcode string, radius float64) string {
	q := url.Values{}
	q.Set("postcode", postcode)
	q.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))
	return fmt.Sprintf("%s/%s?%s", api.baseURL, stationsPath, q.Encode())
}

// FetchStations fetches and validates the stations around a postcode.
// Either every station validates or none is returned.
func (api *FuelPriceAPI) FetchStations(ctx context.Context, postcode string, radius float64) ([]Station, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, api.StationsURL(postcode, radius), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error fetching data: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response body: %w", ErrNetwork, err)
	}

	return decodeStations(body)
}
