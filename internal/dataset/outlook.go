package dataset

// Risk is a threat to the season's projections.
type Risk struct {
	Factor      string  `json:"factor"`
	Impact      string  `json:"impact"`
	Probability float64 `json:"probability"`
	Description string  `json:"description,omitempty"`
}

// Opportunity is a market opening for the sector.
type Opportunity struct {
	Name            string `json:"opportunity"`
	GrowthPotential string `json:"growthPotential"`
	MarketSize      string `json:"marketSize"`
	Description     string `json:"description"`
}

// MarketTrendPoint is one month of the international price outlook, in USD/lb.
type MarketTrendPoint struct {
	Month string  `json:"month"`
	Price float64 `json:"price"`
	Trend float64 `json:"trend"`
}

// Range is an inclusive interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ClimateFactors are the agronomic conditions the crop does best in and the
// effect of the ENSO phases on national output, in percent.
type ClimateFactors struct {
	TemperatureC Range   `json:"temperatureC"`
	RainfallMM   Range   `json:"rainfallMm"`
	AltitudeM    Range   `json:"altitudeM"`
	ElNinoImpact float64 `json:"elNinoImpact"`
	LaNinaImpact float64 `json:"laNinaImpact"`
}

// HarvestProjection is the expected volume of one harvest, in thousands of sacks.
type HarvestProjection struct {
	Harvest    string `json:"harvest"`
	Period     string `json:"period"`
	Sacks      int    `json:"sacks"`
	Confidence int    `json:"confidence"`
}

// PriceProjection is the expected price band for a quarter, in USD/lb.
type PriceProjection struct {
	Quarter string `json:"quarter"`
	Range
	Trend string `json:"trend"`
	Note  string `json:"note"`
}

var risks = []Risk{
	{Factor: "Cambio climático", Impact: "Alto", Probability: 0.8, Description: "Fenómeno El Niño y variabilidad climática"},
	{Factor: "Volatilidad precios internacionales", Impact: "Medio", Probability: 0.7, Description: "Volatilidad en mercados internacionales"},
	{Factor: "Costos de producción", Impact: "Medio", Probability: 0.6, Description: "Incremento en costos de producción"},
	{Factor: "Plagas y enfermedades", Impact: "Medio", Probability: 0.5, Description: "Plagas y enfermedades del cultivo"},
	{Factor: "Disponibilidad mano de obra", Impact: "Alto", Probability: 0.7},
}

var opportunities = []Opportunity{
	{Name: "Cafés especiales", GrowthPotential: "Alto", MarketSize: "Creciente", Description: "Creciente demanda de cafés especiales"},
	{Name: "Mercados emergentes", GrowthPotential: "Medio", MarketSize: "Grande", Description: "Nuevos mercados emergentes"},
	{Name: "Innovación en procesos", GrowthPotential: "Medio", MarketSize: "Medio", Description: "Innovación en procesos de beneficiado"},
	{Name: "Certificaciones sostenibles", GrowthPotential: "Alto", MarketSize: "Creciente", Description: "Certificaciones de sostenibilidad"},
}

var marketTrend = []MarketTrendPoint{
	{Month: "Ene", Price: 2.45, Trend: 2.40},
	{Month: "Feb", Price: 2.52, Trend: 2.48},
	{Month: "Mar", Price: 2.38, Trend: 2.42},
	{Month: "Abr", Price: 2.65, Trend: 2.58},
	{Month: "May", Price: 2.72, Trend: 2.68},
	{Month: "Jun", Price: 2.58, Trend: 2.62},
	{Month: "Jul", Price: 2.48, Trend: 2.52},
	{Month: "Ago", Price: 2.55, Trend: 2.58},
	{Month: "Sep", Price: 2.62, Trend: 2.65},
	{Month: "Oct", Price: 2.78, Trend: 2.75},
	{Month: "Nov", Price: 2.85, Trend: 2.82},
	{Month: "Dic", Price: 2.92, Trend: 2.88},
}

var climate = ClimateFactors{
	TemperatureC: Range{Min: 18, Max: 24},
	RainfallMM:   Range{Min: 1200, Max: 1800},
	AltitudeM:    Range{Min: 1200, Max: 2000},
	ElNinoImpact: -15,
	LaNinaImpact: 10,
}

var harvests = []HarvestProjection{
	{Harvest: "Cosecha Principal 2025", Period: "Abril - Junio", Sacks: 9200, Confidence: 85},
	{Harvest: "Mitaca 2025", Period: "Octubre - Diciembre", Sacks: 6800, Confidence: 78},
}

var priceProjections = []PriceProjection{
	{Quarter: "Q1 2025", Range: Range{Min: 185, Max: 195}, Trend: "alcista", Note: "Tendencia alcista por menor oferta global"},
	{Quarter: "Q2 2025", Range: Range{Min: 180, Max: 190}, Trend: "estable", Note: "Estabilización con nueva cosecha"},
	{Quarter: "Q3 2025", Range: Range{Min: 175, Max: 185}, Trend: "bajista", Note: "Normalización con mayor oferta"},
	{Quarter: "Q4 2025", Range: Range{Min: 175, Max: 185}, Trend: "estable", Note: "Normalización con mayor oferta"},
}

// Risks returns a copy of the risk factors, in the order the dashboard lists them.
func Risks() []Risk {
	return append([]Risk(nil), risks...)
}

// Opportunities returns a copy of the market opportunities.
func Opportunities() []Opportunity {
	return append([]Opportunity(nil), opportunities...)
}

// MarketTrend returns a copy of the twelve-month international price outlook.
func MarketTrend() []MarketTrendPoint {
	return append([]MarketTrendPoint(nil), marketTrend...)
}

// Climate returns the optimal growing conditions.
func Climate() ClimateFactors {
	return climate
}

// HarvestProjections returns a copy of the 2025 harvest projections.
func HarvestProjections() []HarvestProjection {
	return append([]HarvestProjection(nil), harvests...)
}

// ProjectedTotal is the sum of the harvest projections in thousands of sacks.
func ProjectedTotal() int {
	total := 0
	for _, h := range harvests {
		total += h.Sacks
	}
	return total
}

// PriceProjections returns a copy of the quarterly price bands.
func PriceProjections() []PriceProjection {
	return append([]PriceProjection(nil), priceProjections...)
}
