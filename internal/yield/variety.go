package yield

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Variety is a coffee plant variety offered by the calculator.
type Variety int

// Supported varieties. VarietyUnset is the zero value and is never valid input.
const (
	VarietyUnset Variety = iota
	Caturra
	Colombia
	Castillo
	Tipica
	Bourbon
)

// Varieties lists the valid varieties in display order.
var Varieties = []Variety{Caturra, Colombia, Castillo, Tipica, Bourbon}

var varietyNames = map[Variety]string{
	Caturra:  "Caturra",
	Colombia: "Colombia",
	Castillo: "Castillo",
	Tipica:   "Típica",
	Bourbon:  "Bourbon",
}

func (v Variety) String() string {
	if name, ok := varietyNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variety(%d)", int(v))
}

// MarshalText renders the display name.
func (v Variety) MarshalText() ([]byte, error) {
	if _, ok := varietyNames[v]; !ok {
		return nil, fmt.Errorf("unknown variety %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText accepts any spelling ParseVariety does.
func (v *Variety) UnmarshalText(text []byte) error {
	parsed, err := ParseVariety(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVariety resolves a user-entered variety name. Matching ignores case,
// surrounding whitespace and accents, so "Típica", "tipica" and "TIPICA" agree.
func ParseVariety(s string) (Variety, error) {
	key := foldName(s)
	if key == "" {
		return VarietyUnset, fmt.Errorf("variety is required")
	}
	for v, name := range varietyNames {
		if foldName(name) == key {
			return v, nil
		}
	}
	return VarietyUnset, fmt.Errorf("unknown variety %q", s)
}

// Climate is the user's rating of the growing conditions.
type Climate int

// Supported climate ratings. ClimateUnset is the zero value and is never valid input.
const (
	ClimateUnset Climate = iota
	Optimal
	Good
	Regular
	Poor
)

// Climates lists the valid ratings from best to worst.
var Climates = []Climate{Optimal, Good, Regular, Poor}

var climateNames = map[Climate]string{
	Optimal: "Óptimo",
	Good:    "Bueno",
	Regular: "Regular",
	Poor:    "Malo",
}

// English aliases accepted on input next to the dashboard labels.
var climateAliases = map[string]Climate{
	"optimal": Optimal,
	"good":    Good,
	"poor":    Poor,
}

func (c Climate) String() string {
	if name, ok := climateNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Climate(%d)", int(c))
}

// MarshalText renders the display name.
func (c Climate) MarshalText() ([]byte, error) {
	if _, ok := climateNames[c]; !ok {
		return nil, fmt.Errorf("unknown climate %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts any spelling ParseClimate does.
func (c *Climate) UnmarshalText(text []byte) error {
	parsed, err := ParseClimate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClimate resolves a user-entered climate rating, accepting the dashboard
// labels (Óptimo, Bueno, Regular, Malo) and their English names.
func ParseClimate(s string) (Climate, error) {
	key := foldName(s)
	if key == "" {
		return ClimateUnset, fmt.Errorf("climate is required")
	}
	if c, ok := climateAliases[key]; ok {
		return c, nil
	}
	for c, name := range climateNames {
		if foldName(name) == key {
			return c, nil
		}
	}
	return ClimateUnset, fmt.Errorf("unknown climate %q", s)
}

func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = strings.TrimSpace(s)
	}
	return strings.ToLower(folded)
}
