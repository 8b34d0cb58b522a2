package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field paths with their JSON names so errors match the payload.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeStations parses and validates a response body. Any decoding or
// schema problem is reported as ErrValidation and no stations are returned.
func decodeStations(body []byte) ([]Station, error) {
	var resp stationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, describeDecodeError(err))
	}

	if err := checkStationKeys(body); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if err := validate.Struct(&resp); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, describeValidationError(err))
	}

	stations := make([]Station, 0, len(resp.Data.Stations))
	for i := range resp.Data.Stations {
		stations = append(stations, resp.Data.Stations[i].station())
	}
	return stations, nil
}

var (
	stationKeys = []string{"id", "name", "brand", "street", "house_number", "post_code", "place", "lat", "lng", "dist", "prices"}
	priceKeys   = []string{"diesel", "e5", "e10"}
)

// rawStations holds the station objects undecoded, so key presence can be
// checked exactly. encoding/json matches keys case-insensitively and treats
// a missing key like null.
type rawStations struct {
	Data *struct {
		Stations []map[string]json.RawMessage `json:"stations"`
	} `json:"data"`
}

// checkStationKeys requires every station and price key to be present with
// its exact lower-case name. null values are left to the struct validation.
func checkStationKeys(body []byte) error {
	var raw rawStations
	if err := json.Unmarshal(body, &raw); err != nil {
		return err
	}
	if raw.Data == nil {
		return nil
	}

	for i, st := range raw.Data.Stations {
		if st == nil {
			continue
		}
		path := fmt.Sprintf("data.stations[%d]", i)
		if err := requireKeys(st, stationKeys, path); err != nil {
			return err
		}

		if bytes.Equal(bytes.TrimSpace(st["prices"]), []byte("null")) {
			continue
		}
		var p map[string]json.RawMessage
		if err := json.Unmarshal(st["prices"], &p); err != nil {
			return fmt.Errorf("field %s.prices: expected object", path)
		}
		if err := requireKeys(p, priceKeys, path+".prices"); err != nil {
			return err
		}
	}
	return nil
}

func requireKeys(obj map[string]json.RawMessage, keys []string, path string) error {
	for k := range obj {
		for _, want := range keys {
			if k != want && strings.EqualFold(k, want) {
				return fmt.Errorf("field %s.%s: unexpected key, expected %q", path, k, want)
			}
		}
	}
	for _, want := range keys {
		if _, ok := obj[want]; !ok {
			return fmt.Errorf("field %s.%s: missing", path, want)
		}
	}
	return nil
}

func describeDecodeError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field %s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("malformed JSON at offset %d: %v", syntaxErr.Offset, err)
	}
	return err.Error()
}

func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	issues := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Drop the envelope type name from the namespace.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		issues = append(issues, fmt.Sprintf("field %s: %s", path, fe.Tag()))
	}
	return strings.Join(issues, "; ")
}
