package dataset

import (
	"fmt"
	"math"
)

// Summary aggregates a production table for the analysis cards.
type Summary struct {
	TotalProduction   int `json:"totalProduction"`
	TotalExports      int `json:"totalExports"`
	PeakProduction    int `json:"peakProduction"`
	AverageProduction int `json:"averageProduction"`
}

// Summarize totals records. The average is rounded to the nearest sack.
func Summarize(records []MonthlyRecord) (Summary, error) {
	if len(records) == 0 {
		return Summary{}, fmt.Errorf("cannot summarize an empty production table")
	}

	var s Summary
	for i, r := range records {
		s.TotalProduction += r.Production
		s.TotalExports += r.Exports
		if i == 0 || r.Production > s.PeakProduction {
			s.PeakProduction = r.Production
		}
	}
	s.AverageProduction = int(math.Round(float64(s.TotalProduction) / float64(len(records))))
	return s, nil
}

// Table names accepted by Lookup.
const (
	TableProduction  = "production"
	TableRegions     = "regions"
	TableQuality     = "quality"
	TableProjections = "projections"
	TableWeather     = "weather"

	TableRisks              = "risks"
	TableOpportunities      = "opportunities"
	TableMarketTrend        = "market-trend"
	TableClimateFactors     = "climate-factors"
	TableHarvestProjections = "harvest-projections"
	TablePriceProjections   = "price-projections"
)

// Tables lists the names accepted by Lookup.
var Tables = []string{
	TableProduction, TableRegions, TableQuality, TableProjections, TableWeather,
	TableRisks, TableOpportunities, TableMarketTrend,
	TableClimateFactors, TableHarvestProjections, TablePriceProjections,
}

// Lookup returns the named table.
func Lookup(name string) (interface{}, error) {
	switch name {
	case TableProduction:
		return Production(), nil
	case TableRegions:
		return Regions(), nil
	case TableQuality:
		return Quality(), nil
	case TableProjections:
		return Projections(), nil
	case TableWeather:
		return Weather(), nil
	case TableRisks:
		return Risks(), nil
	case TableOpportunities:
		return Opportunities(), nil
	case TableMarketTrend:
		return MarketTrend(), nil
	case TableClimateFactors:
		return Climate(), nil
	case TableHarvestProjections:
		return HarvestProjections(), nil
	case TablePriceProjections:
		return PriceProjections(), nil
	}
	return nil, fmt.Errorf("unknown dataset %q", name)
}
