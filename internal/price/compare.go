package price

// PeriodPrice is the price quoted for a past period.
type PeriodPrice struct {
	Period string  `json:"period"`
	Price  float64 `json:"price"`
}

// MarketPrice is the price quoted on an exchange.
type MarketPrice struct {
	Market string  `json:"market"`
	Price  float64 `json:"price"`
}

// Comparison relates the current price to past periods and other markets.
type Comparison struct {
	Current    float64       `json:"current"`
	Historical []PeriodPrice `json:"historical"`
	Markets    []MarketPrice `json:"markets"`
}

var periodOffsets = []struct {
	label  string
	offset float64
}{
	{"Hace 1 mes", -0.15},
	{"Hace 3 meses", -0.32},
	{"Hace 6 meses", 0.28},
	{"Hace 1 año", -0.45},
}

var marketOffsets = []struct {
	label  string
	offset float64
}{
	{"Nueva York", 0},
	{"Londres", 0.12},
	{"Tokio", -0.08},
}

// Compare builds the price comparator view around current.
func Compare(current float64) Comparison {
	cmp := Comparison{
		Current:    current,
		Historical: make([]PeriodPrice, 0, len(periodOffsets)),
		Markets:    make([]MarketPrice, 0, len(marketOffsets)),
	}
	for _, p := range periodOffsets {
		cmp.Historical = append(cmp.Historical, PeriodPrice{Period: p.label, Price: current + p.offset})
	}
	for _, m := range marketOffsets {
		cmp.Markets = append(cmp.Markets, MarketPrice{Market: m.label, Price: current + m.offset})
	}
	return cmp
}
