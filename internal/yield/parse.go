package yield

import (
	"math"
	"strconv"
	"strings"

	"github.com/aromadata/aromadata/pkg/mathutil"
)

// FormInput carries the calculator fields exactly as the user typed them.
type FormInput struct {
	Area     string `json:"area" yaml:"area"`
	Variety  string `json:"variety" yaml:"variety"`
	Climate  string `json:"climate" yaml:"climate"`
	Altitude string `json:"altitude" yaml:"altitude"`
}

// ParseRequest converts form strings into a Request. Blank, non-numeric or
// out-of-range values are all reported together in a single ValidationError.
// A fractional altitude is truncated to whole meters.
func ParseRequest(in FormInput) (Request, error) {
	verr := &ValidationError{}
	var req Request

	area, ok := parseNumber(in.Area)
	switch {
	case strings.TrimSpace(in.Area) == "":
		verr.add("area", "is required")
	case !ok:
		verr.add("area", "must be a number")
	case area <= 0:
		verr.add("area", "must be a positive number of hectares")
	default:
		req.AreaHectares = area
	}

	if strings.TrimSpace(in.Variety) == "" {
		verr.add("variety", "is required")
	} else if v, err := ParseVariety(in.Variety); err != nil {
		verr.add("variety", err.Error())
	} else {
		req.Variety = v
	}

	if strings.TrimSpace(in.Climate) == "" {
		verr.add("climate", "is required")
	} else if c, err := ParseClimate(in.Climate); err != nil {
		verr.add("climate", err.Error())
	} else {
		req.Climate = c
	}

	altitude, ok := parseNumber(in.Altitude)
	switch {
	case strings.TrimSpace(in.Altitude) == "":
		verr.add("altitude", "is required")
	case !ok:
		verr.add("altitude", "must be a number")
	case altitude < 0:
		verr.add("altitude", "must not be negative")
	case altitude > math.MaxInt32:
		verr.add("altitude", "is out of range")
	default:
		req.AltitudeMeters = int(math.Trunc(altitude))
	}

	if err := verr.orNil(); err != nil {
		return Request{}, err
	}
	return req, nil
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !mathutil.IsFinite(v) {
		return 0, false
	}
	return v, true
}
