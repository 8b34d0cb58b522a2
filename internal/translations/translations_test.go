package translations

import (
	"testing"

	"github.com/rubiojr/gasprices/pkg/api"
)

func TestGetTranslations(t *testing.T) {
	if got := GetTranslations("de").Lang; got != "de" {
		t.Errorf("GetTranslations(de).Lang = %q, expected de", got)
	}
	if got := GetTranslations("xx").Lang; got != "en" {
		t.Errorf("GetTranslations(xx).Lang = %q, expected en", got)
	}
}

func TestGetLanguageFromQuery(t *testing.T) {
	tests := []struct {
		param, def, expected string
	}{
		{"de", "en", "de"},
		{"english", "de", "en"},
		{"", "de", "de"},
		{"fr", "en", "en"},
	}

	for _, test := range tests {
		if got := GetLanguageFromQuery(test.param, test.def); got != test.expected {
			t.Errorf("GetLanguageFromQuery(%q, %q) = %q, expected %q", test.param, test.def, got, test.expected)
		}
	}
}

func TestFuelLabel(t *testing.T) {
	tr := GetEnglishTranslations()
	if got := tr.FuelLabel(api.E5); got != "Super" {
		t.Errorf("FuelLabel(e5) = %q, expected Super", got)
	}

	empty := Translations{}
	if got := empty.FuelLabel(api.Diesel); got != "Diesel" {
		t.Errorf("FuelLabel(diesel) without table = %q, expected Diesel", got)
	}
	if got := empty.FuelLabel("lpg"); got != "lpg" {
		t.Errorf("FuelLabel(lpg) = %q, expected lpg", got)
	}
}
