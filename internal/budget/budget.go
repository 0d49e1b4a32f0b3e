// Package budget prices prospective freight jobs from fixed internal rate
// tables. It is a standalone estimator and never touches the trip ledger.
package budget

import "math"

// Internal cost tables in BRL. Vehicle rates are per km, crane prices per
// mobilization. Updated by hand when the commercial team renegotiates.
var vehicleRates = map[string]float64{
	"Carreta":        7.00,
	"Truck":          6.00,
	"Toco":           4.00,
	"Vuc":            3.00,
	"Carro de Apoio": 2.40,
	"Van":            2.00,
	"Fiorino":        1.90,
}

var cranePrices = map[string]float64{
	"30 ton":  8100,
	"50 ton":  9150,
	"70 ton":  10350,
	"90 ton":  12520,
	"110 ton": 24900,
	"120 ton": 26500,
	"160 ton": 27800,
	"200 ton": 37000,
	"220 ton": 47320,
	"250 ton": 63000,
	"300 ton": 86100,
	"500 ton": 170000,
}

const (
	HelperPrice = 350
	MunkPrice   = 2500
)

// VehicleTypes returns the priceable vehicle types with their per-km rates.
func VehicleTypes() map[string]float64 {
	out := make(map[string]float64, len(vehicleRates))
	for k, v := range vehicleRates {
		out[k] = v
	}
	return out
}

// CraneTypes returns the crane capacities with their mobilization prices.
func CraneTypes() map[string]float64 {
	out := make(map[string]float64, len(cranePrices))
	for k, v := range cranePrices {
		out[k] = v
	}
	return out
}

// VehicleItem is one vehicle line: quantity × km × per-km table rate.
// Unknown types price at 0.
type VehicleItem struct {
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Km       float64 `json:"km"`
}

// CraneItem is one crane line: quantity × fixed table price.
type CraneItem struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// Input is one quote request. All fields optional; zero values price at 0.
type Input struct {
	Vehicles         []VehicleItem `json:"vehicles"`
	HelpersQty       int           `json:"helpersQty"`
	MerchandiseValue float64       `json:"merchandiseValue"`
	InsurancePercent float64       `json:"insurancePercent"`
	MunkQty          int           `json:"munkQty"`
	Cranes           []CraneItem   `json:"cranes"`
	OthersValue      float64       `json:"othersValue"`
	TaxPercent       float64       `json:"taxPercent"`
	MarginPercent    float64       `json:"marginPercent"`
}

// Quote is the itemized estimate. SalePrice is SalePriceExact rounded UP to
// the next whole real; the exact figure is kept for the printout.
type Quote struct {
	Vehicles       float64 `json:"vehicles"`
	Helpers        float64 `json:"helpers"`
	Insurance      float64 `json:"insurance"`
	Munk           float64 `json:"munk"`
	Cranes         float64 `json:"cranes"`
	Others         float64 `json:"others"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	TotalCost      float64 `json:"totalCost"`
	SalePriceExact float64 `json:"salePriceExact"`
	SalePrice      float64 `json:"salePrice"`
}

// Estimate prices an Input against the rate tables.
func Estimate(in Input) Quote {
	var q Quote

	for _, v := range in.Vehicles {
		q.Vehicles += float64(v.Quantity) * v.Km * vehicleRates[v.Type]
	}
	q.Helpers = float64(in.HelpersQty) * HelperPrice
	q.Insurance = in.MerchandiseValue * (in.InsurancePercent / 100)
	q.Munk = float64(in.MunkQty) * MunkPrice
	for _, c := range in.Cranes {
		q.Cranes += float64(c.Quantity) * cranePrices[c.Type]
	}
	q.Others = in.OthersValue

	q.Subtotal = q.Vehicles + q.Helpers + q.Insurance + q.Munk + q.Cranes + q.Others
	q.Tax = q.Subtotal * (in.TaxPercent / 100)
	q.TotalCost = q.Subtotal + q.Tax
	q.SalePriceExact = q.TotalCost * (1 + in.MarginPercent/100)
	q.SalePrice = math.Ceil(q.SalePriceExact)

	return q
}
