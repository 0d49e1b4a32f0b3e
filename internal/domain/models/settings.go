package models

// Settings holds the tunable monetary parameters read by the costing engine
// and the ledger. Singleton: one row, loaded once per request path.
type Settings struct {
	MriRate        float64 `json:"mriRate"`
	CtRate         float64 `json:"ctRate"`
	HelperBonusMRI float64 `json:"helperBonusMRI"`
	HelperBonusCT  float64 `json:"helperBonusCT"`
	FuelCostPerKm  float64 `json:"fuelCostPerKm"` // informational only, not part of totals
	Logo           string  `json:"logo,omitempty"`
}

// DefaultSettings are merged under stored values so fields added after a
// deployment are never missing when read.
func DefaultSettings() Settings {
	return Settings{
		MriRate:        150,
		CtRate:         100,
		HelperBonusMRI: 60,
		HelperBonusCT:  40,
		FuelCostPerKm:  2.50,
	}
}
