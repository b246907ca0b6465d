// Package dataset holds the fixed coffee-sector tables the dashboard renders
// and the summaries derived from them.
package dataset

// MonthlyRecord is one month of the production table. Volumes are in
// thousands of 60 kg sacks, prices in USD/lb.
type MonthlyRecord struct {
	Month      string  `json:"month"`
	Production int     `json:"production"`
	Exports    int     `json:"exports"`
	Price      float64 `json:"price"`
}

// RegionShare is a department's share of national production.
type RegionShare struct {
	Name  string  `json:"name"`
	Share float64 `json:"value"`
	Color string  `json:"color"`
}

// QualityGrade is the share of the harvest graded into a category and the
// premium, in percent, the grade earns over the reference price.
type QualityGrade struct {
	Category     string `json:"category"`
	Percentage   int    `json:"percentage"`
	Bags         int    `json:"bags"`
	PricePremium int    `json:"pricePremium"`
}

// ProjectionPoint compares the projected and historical volume of a month.
type ProjectionPoint struct {
	Month      string `json:"month"`
	Projected  int    `json:"projected"`
	Historical int    `json:"historical"`
}

// WeatherDay is one day of the growing-region outlook.
type WeatherDay struct {
	Day         string `json:"day"`
	Temperature string `json:"temp"`
	Rain        string `json:"rain"`
	Condition   string `json:"condition"`
}

// WeatherOutlook is the seven-day outlook with an agronomic recommendation.
type WeatherOutlook struct {
	Forecast       []WeatherDay `json:"forecast"`
	Recommendation string       `json:"recommendation"`
}

// Headline holds the figures on the dashboard's summary cards.
type Headline struct {
	ProjectedSacks  string `json:"projectedSacks"`
	ProjectedLabel  string `json:"projectedLabel"`
	CoffeeFamilies  string `json:"coffeeFamilies"`
	ArabicaShare    string `json:"arabicaShare"`
	PriceLabel      string `json:"priceLabel"`
	FamiliesLabel   string `json:"familiesLabel"`
	ArabicaLabel    string `json:"arabicaLabel"`
	ProductionTitle string `json:"productionTitle"`
}

var production = []MonthlyRecord{
	{Month: "Ene", Production: 1200, Exports: 1100, Price: 178.5},
	{Month: "Feb", Production: 1150, Exports: 1080, Price: 182.3},
	{Month: "Mar", Production: 1300, Exports: 1250, Price: 175.8},
	{Month: "Apr", Production: 1180, Exports: 1120, Price: 179.2},
	{Month: "May", Production: 1250, Exports: 1200, Price: 185.4},
	{Month: "Jun", Production: 1100, Exports: 1050, Price: 188.9},
	{Month: "Jul", Production: 1350, Exports: 1300, Price: 192.1},
	{Month: "Ago", Production: 1280, Exports: 1220, Price: 189.5},
}

var regions = []RegionShare{
	{Name: "Huila", Share: 18.5, Color: "#8B4513"},
	{Name: "Nariño", Share: 16.2, Color: "#A0522D"},
	{Name: "Tolima", Share: 14.8, Color: "#CD853F"},
	{Name: "Cauca", Share: 12.3, Color: "#DEB887"},
	{Name: "Otros", Share: 38.2, Color: "#F4A460"},
}

var quality = []QualityGrade{
	{Category: "Supremo", Percentage: 45, Bags: 6750, PricePremium: 12},
	{Category: "Extra", Percentage: 35, Bags: 5250, PricePremium: 8},
	{Category: "UGQ", Percentage: 15, Bags: 2250, PricePremium: 0},
	{Category: "Otros", Percentage: 5, Bags: 750, PricePremium: -5},
}

var projections = []ProjectionPoint{
	{Month: "Ene", Projected: 850, Historical: 820},
	{Month: "Feb", Projected: 920, Historical: 890},
	{Month: "Mar", Projected: 1100, Historical: 1050},
	{Month: "Abr", Projected: 1850, Historical: 1780},
	{Month: "May", Projected: 2200, Historical: 2100},
	{Month: "Jun", Projected: 1950, Historical: 1850},
	{Month: "Jul", Projected: 1200, Historical: 1150},
	{Month: "Ago", Projected: 980, Historical: 950},
	{Month: "Sep", Projected: 1050, Historical: 1000},
	{Month: "Oct", Projected: 1400, Historical: 1350},
	{Month: "Nov", Projected: 1650, Historical: 1580},
	{Month: "Dic", Projected: 1500, Historical: 1450},
}

var weather = WeatherOutlook{
	Forecast: []WeatherDay{
		{Day: "Hoy", Temperature: "22°C", Rain: "15%", Condition: "Parcialmente nublado"},
		{Day: "Mañana", Temperature: "24°C", Rain: "30%", Condition: "Lluvias ligeras"},
		{Day: "Pasado mañana", Temperature: "21°C", Rain: "60%", Condition: "Lluvioso"},
		{Day: "3 días", Temperature: "23°C", Rain: "20%", Condition: "Soleado"},
		{Day: "4 días", Temperature: "25°C", Rain: "10%", Condition: "Despejado"},
		{Day: "5 días", Temperature: "22°C", Rain: "40%", Condition: "Nublado"},
		{Day: "6 días", Temperature: "20°C", Rain: "70%", Condition: "Tormentas"},
	},
	Recommendation: "Condiciones favorables para el crecimiento. Se recomienda aplicar fertilizante antes de las lluvias del día 3.",
}

var headline = Headline{
	ProjectedSacks:  "15.0M",
	ProjectedLabel:  "Sacos Proyectados 2024-25",
	CoffeeFamilies:  "540K",
	ArabicaShare:    "95%",
	PriceLabel:      "Precio Actual USD/lb",
	FamiliesLabel:   "Familias Cafeteras",
	ArabicaLabel:    "Café Arábica",
	ProductionTitle: "Producción Mensual 2024",
}

// Production returns a copy of the monthly production table.
func Production() []MonthlyRecord {
	return append([]MonthlyRecord(nil), production...)
}

// Regions returns a copy of the regional distribution.
func Regions() []RegionShare {
	return append([]RegionShare(nil), regions...)
}

// Quality returns a copy of the quality grade table.
func Quality() []QualityGrade {
	return append([]QualityGrade(nil), quality...)
}

// Projections returns a copy of the 2025 projection table.
func Projections() []ProjectionPoint {
	return append([]ProjectionPoint(nil), projections...)
}

// Weather returns a copy of the weather outlook.
func Weather() WeatherOutlook {
	return WeatherOutlook{
		Forecast:       append([]WeatherDay(nil), weather.Forecast...),
		Recommendation: weather.Recommendation,
	}
}

// Headlines returns the summary card figures.
func Headlines() Headline {
	return headline
}
