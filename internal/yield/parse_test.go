package yield

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    FormInput
		expected Request
	}{
		{
			name:     "Dashboard labels",
			input:    FormInput{Area: "5.5", Variety: "Castillo", Climate: "Óptimo", Altitude: "1800"},
			expected: Request{AreaHectares: 5.5, Variety: Castillo, Climate: Optimal, AltitudeMeters: 1800},
		},
		{
			name:     "English names and padding",
			input:    FormInput{Area: " 2 ", Variety: "tipica", Climate: "poor", Altitude: " 900 "},
			expected: Request{AreaHectares: 2, Variety: Tipica, Climate: Poor, AltitudeMeters: 900},
		},
		{
			name:     "Accented variety and unaccented climate",
			input:    FormInput{Area: "1", Variety: "Típica", Climate: "optimo", Altitude: "1500"},
			expected: Request{AreaHectares: 1, Variety: Tipica, Climate: Optimal, AltitudeMeters: 1500},
		},
		{
			name:     "Fractional altitude truncates",
			input:    FormInput{Area: "3", Variety: "BOURBON", Climate: "Malo", Altitude: "1499.9"},
			expected: Request{AreaHectares: 3, Variety: Bourbon, Climate: Poor, AltitudeMeters: 1499},
		},
		{
			name:     "Zero altitude is allowed",
			input:    FormInput{Area: "1", Variety: "Colombia", Climate: "Regular", Altitude: "0"},
			expected: Request{AreaHectares: 1, Variety: Colombia, Climate: Regular, AltitudeMeters: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.input)
			if err != nil {
				t.Fatalf("ParseRequest() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseRequest() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestParseRequestRejects(t *testing.T) {
	valid := FormInput{Area: "1", Variety: "Caturra", Climate: "Bueno", Altitude: "1200"}

	tests := []struct {
		name     string
		mutate   func(in *FormInput)
		expected []string
	}{
		{"Blank area", func(in *FormInput) { in.Area = "" }, []string{"area"}},
		{"Whitespace area", func(in *FormInput) { in.Area = "   " }, []string{"area"}},
		{"Zero area", func(in *FormInput) { in.Area = "0" }, []string{"area"}},
		{"Non-numeric area", func(in *FormInput) { in.Area = "five" }, []string{"area"}},
		{"NaN area", func(in *FormInput) { in.Area = "NaN" }, []string{"area"}},
		{"Infinite area", func(in *FormInput) { in.Area = "Inf" }, []string{"area"}},
		{"Blank variety", func(in *FormInput) { in.Variety = "" }, []string{"variety"}},
		{"Unknown variety", func(in *FormInput) { in.Variety = "Geisha" }, []string{"variety"}},
		{"Blank climate", func(in *FormInput) { in.Climate = "" }, []string{"climate"}},
		{"Unknown climate", func(in *FormInput) { in.Climate = "Tropical" }, []string{"climate"}},
		{"Blank altitude", func(in *FormInput) { in.Altitude = "" }, []string{"altitude"}},
		{"Non-numeric altitude", func(in *FormInput) { in.Altitude = "12abc" }, []string{"altitude"}},
		{"Negative altitude", func(in *FormInput) { in.Altitude = "-10" }, []string{"altitude"}},
		{"Everything blank", func(in *FormInput) { *in = FormInput{} }, []string{"area", "variety", "climate", "altitude"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			req, err := ParseRequest(in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ParseRequest() error = %v, expected *ValidationError", err)
			}
			if !reflect.DeepEqual(verr.Fields(), tt.expected) {
				t.Errorf("Fields() = %v, expected %v", verr.Fields(), tt.expected)
			}
			if req != (Request{}) {
				t.Errorf("expected zero Request on error, got %+v", req)
			}
		})
	}
}

func TestVarietyAndClimateText(t *testing.T) {
	text, err := Tipica.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "Típica" {
		t.Errorf("MarshalText() = %q, expected %q", text, "Típica")
	}

	if _, err := VarietyUnset.MarshalText(); err == nil {
		t.Error("expected error marshalling unset variety")
	}

	if got := Optimal.String(); got != "Óptimo" {
		t.Errorf("Optimal.String() = %q, expected %q", got, "Óptimo")
	}

	for _, v := range Varieties {
		parsed, err := ParseVariety(v.String())
		if err != nil || parsed != v {
			t.Errorf("ParseVariety(%q) = %v, %v", v.String(), parsed, err)
		}
	}
	for _, c := range Climates {
		parsed, err := ParseClimate(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseClimate(%q) = %v, %v", c.String(), parsed, err)
		}
	}
}

func TestRequestJSONRoundTrip(t *testing.T) {
	req := Request{AreaHectares: 2, Variety: Tipica, Climate: Poor, AltitudeMeters: 900}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"area":2,"variety":"Típica","climate":"Malo","altitude":900}`; string(data) != want {
		t.Fatalf("json.Marshal() = %s, expected %s", data, want)
	}

	var decoded Request
	if err := json.Unmarshal([]byte(`{"area":2,"variety":"tipica","climate":"poor","altitude":900}`), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded != req {
		t.Errorf("json.Unmarshal() = %+v, expected %+v", decoded, req)
	}

	if err := json.Unmarshal([]byte(`{"variety":"Geisha"}`), &decoded); err == nil {
		t.Error("expected error decoding unknown variety")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := ParseRequest(FormInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	expected := "invalid yield request: area: is required; variety: is required; climate: is required; altitude: is required"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}
