// Package yield estimates coffee harvest volume and revenue for a plot from its
// area, variety, climate rating and altitude.
package yield

import (
	"github.com/aromadata/aromadata/pkg/constants"
	"github.com/aromadata/aromadata/pkg/mathutil"
	"go.uber.org/zap"
)

// Request holds the calculator inputs for one estimate.
type Request struct {
	AreaHectares   float64 `json:"area"`
	Variety        Variety `json:"variety"`
	Climate        Climate `json:"climate"`
	AltitudeMeters int     `json:"altitude"`
}

// Result holds an estimate. YieldPerHectare * area equals TotalYieldSacks.
type Result struct {
	TotalYieldSacks     float64  `json:"totalYield"`
	YieldPerHectare     float64  `json:"yieldPerHectare"`
	EstimatedRevenueUSD float64  `json:"estimatedRevenue"`
	PriceUSDPerPound    float64  `json:"price"`
	Recommendations     []string `json:"recommendations"`
}

// Factors exposes the multipliers that produced an estimate.
type Factors struct {
	Variety  float64 `json:"variety"`
	Climate  float64 `json:"climate"`
	Altitude float64 `json:"altitude"`
}

var varietyFactors = map[Variety]float64{
	Caturra:  1.00,
	Colombia: 1.15,
	Castillo: 1.25,
	Tipica:   0.90,
	Bourbon:  0.95,
}

var climateFactors = map[Climate]float64{
	Optimal: 1.20,
	Good:    1.00,
	Regular: 0.80,
	Poor:    0.60,
}

// Altitude bands, highest first. Each minimum is inclusive.
var altitudeBands = []struct {
	min    int
	factor float64
}{
	{1800, 1.30},
	{1500, 1.20},
	{1200, 1.10},
	{1000, 1.00},
}

const lowAltitudeFactor = 0.80

// VarietyFactor returns the yield multiplier for v. Values outside the table
// count as 1.0.
func VarietyFactor(v Variety) float64 {
	if f, ok := varietyFactors[v]; ok {
		return f
	}
	return 1.0
}

// ClimateFactor returns the yield multiplier for c. Values outside the table
// count as 1.0.
func ClimateFactor(c Climate) float64 {
	if f, ok := climateFactors[c]; ok {
		return f
	}
	return 1.0
}

// AltitudeFactor returns the banded multiplier for an altitude in meters.
func AltitudeFactor(meters int) float64 {
	for _, band := range altitudeBands {
		if meters >= band.min {
			return band.factor
		}
	}
	return lowAltitudeFactor
}

// FactorsFor returns the three multipliers applied to req.
func FactorsFor(req Request) Factors {
	return Factors{
		Variety:  VarietyFactor(req.Variety),
		Climate:  ClimateFactor(req.Climate),
		Altitude: AltitudeFactor(req.AltitudeMeters),
	}
}

// Validate reports every missing or out-of-range field of req.
func (req Request) Validate() error {
	verr := &ValidationError{}
	req.check(verr)
	return verr.orNil()
}

func (req Request) check(verr *ValidationError) {
	if !mathutil.IsFinite(req.AreaHectares) || req.AreaHectares <= 0 {
		verr.add("area", "must be a positive number of hectares")
	}
	if _, ok := varietyFactors[req.Variety]; !ok {
		verr.add("variety", "is required")
	}
	if _, ok := climateFactors[req.Climate]; !ok {
		verr.add("climate", "is required")
	}
	if req.AltitudeMeters < 0 {
		verr.add("altitude", "must not be negative")
	}
}

// Estimate computes the harvest estimate for req at the given price in USD/lb.
func Estimate(req Request, price float64) (Result, error) {
	verr := &ValidationError{}
	req.check(verr)
	if !mathutil.IsFinite(price) || price < 0 {
		verr.add("price", "must be a non-negative number")
	}
	if err := verr.orNil(); err != nil {
		return Result{}, err
	}

	f := FactorsFor(req)
	total := req.AreaHectares * constants.BaseYieldPerHectare * f.Variety * f.Climate * f.Altitude
	// The price is quoted per pound while the multiplier is kilograms per
	// sack; the dashboard has always reported revenue this way.
	revenue := total * price * constants.KilogramsPerSack
	if !mathutil.IsFinite(total) || !mathutil.IsFinite(revenue) {
		verr.add("area", "is too large")
		return Result{}, verr
	}

	return Result{
		TotalYieldSacks:     total,
		YieldPerHectare:     total / req.AreaHectares,
		EstimatedRevenueUSD: revenue,
		PriceUSDPerPound:    price,
		Recommendations:     Recommendations(req),
	}, nil
}

// Recommendations returns the three advisory sentences for req, in order:
// altitude, climate, variety.
func Recommendations(req Request) []string {
	recs := make([]string, 0, 3)
	if req.AltitudeMeters >= constants.SpecialtyAltitudeMeters {
		recs = append(recs, "Excelente altitud para café especial")
	} else {
		recs = append(recs, "Considere variedades resistentes")
	}
	if req.Climate == Optimal {
		recs = append(recs, "Condiciones ideales para máximo rendimiento")
	} else {
		recs = append(recs, "Implemente sistemas de riego")
	}
	if req.Variety == Castillo {
		recs = append(recs, "Variedad resistente con buen rendimiento")
	} else {
		recs = append(recs, "Evalúe cambio de variedad")
	}
	return recs
}

// Rounded returns a copy with figures rounded the way the dashboard displays
// them: one decimal for sacks, whole dollars for revenue.
func (r Result) Rounded() Result {
	out := r
	out.TotalYieldSacks = mathutil.RoundTo(r.TotalYieldSacks, 1)
	out.YieldPerHectare = mathutil.RoundTo(r.YieldPerHectare, 1)
	out.EstimatedRevenueUSD = mathutil.RoundTo(r.EstimatedRevenueUSD, 0)
	out.Recommendations = append([]string(nil), r.Recommendations...)
	return out
}

// PriceReader supplies the current market price in USD/lb.
type PriceReader interface {
	Price() float64
}

// Estimator estimates yields against a live price source.
type Estimator struct {
	logger *zap.Logger
	prices PriceReader
}

// NewEstimator returns an Estimator reading prices from prices.
func NewEstimator(logger *zap.Logger, prices PriceReader) *Estimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{logger: logger, prices: prices}
}

// Estimate computes the estimate for req using the price current at call time.
func (e *Estimator) Estimate(req Request) (Result, error) {
	price := e.prices.Price()
	result, err := Estimate(req, price)
	if err != nil {
		e.logger.Debug("rejected yield request",
			zap.String("op", "yield.Estimate"),
			zap.Error(err),
		)
		return Result{}, err
	}

	e.logger.Debug("estimated yield",
		zap.String("op", "yield.Estimate"),
		zap.Float64("area", req.AreaHectares),
		zap.Stringer("variety", req.Variety),
		zap.Stringer("climate", req.Climate),
		zap.Int("altitude", req.AltitudeMeters),
		zap.Float64("price", price),
		zap.Float64("totalYield", result.TotalYieldSacks),
	)
	return result, nil
}
