// Package costing turns a trip's raw facts into monetary figures. All
// functions are pure: inputs are never mutated and there is no hidden state.
package costing

import (
	"time"

	"slift/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Breakdown is the monetary result of quoting one trip. The service layer
// freezes these values onto the Trip at save time.
type Breakdown struct {
	Base    float64 `json:"base"`
	Freight float64 `json:"freight"`
	Bonus   float64 `json:"bonus"`
	Total   float64 `json:"total"`
}

// IsWeekend reports whether a YYYY-MM-DD calendar date falls on Saturday or
// Sunday. The date is parsed as local midnight on purpose: parsing as UTC
// can shift the day across the date line and flag the wrong weekday.
func IsWeekend(date string) bool {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// BaseRate returns the company's job base value. Only MRI and CT jobs earn a
// base, and only on weekends.
func BaseRate(weekend bool, job models.JobType, rates models.Settings) float64 {
	if !weekend {
		return 0
	}
	switch job {
	case models.JobMRI:
		return rates.MriRate
	case models.JobCT:
		return rates.CtRate
	default:
		return 0
	}
}

// HelperBonusRate returns the flat per-helper weekend bonus for a job type.
// Every assigned helper receives the same amount; there is no per-helper
// differentiation. The ledger reuses this against live rates.
func HelperBonusRate(weekend bool, job models.JobType, rates models.Settings) float64 {
	if !weekend {
		return 0
	}
	switch job {
	case models.JobMRI:
		return rates.HelperBonusMRI
	case models.JobCT:
		return rates.HelperBonusCT
	default:
		return 0
	}
}

// Freight sums distance × kmRate across the assigned drivers. A driver
// missing from the directory, or one without a negotiated rate, contributes
// 0 rather than failing: staff references are weak by design.
func Freight(driverIDs []string, distanceKm float64, dir models.Directory) float64 {
	var total float64
	for _, id := range driverIDs {
		d, ok := dir[id]
		if !ok {
			continue
		}
		total += distanceKm * d.KmRate
	}
	return total
}

// Quote computes the full cost breakdown for a trip. Callers must validate
// that driverIDs is non-empty before submitting; Quote itself does not
// reject an empty set because live form previews quote incomplete input.
func Quote(date string, job models.JobType, driverIDs, helperIDs []string, distanceKm float64, dir models.Directory, rates models.Settings) Breakdown {
	weekend := IsWeekend(date)

	base := BaseRate(weekend, job, rates)
	freight := Freight(driverIDs, distanceKm, dir)
	bonus := float64(len(helperIDs)) * HelperBonusRate(weekend, job, rates)

	return Breakdown{
		Base:    base,
		Freight: freight,
		Bonus:   bonus,
		Total:   base + freight + bonus,
	}
}
