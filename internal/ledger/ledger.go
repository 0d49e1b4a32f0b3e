// Package ledger nets accumulated earnings against recorded payments per
// staff member. Computation is pure; callers pass in the collections.
package ledger

import (
	"sort"
	"strings"

	"slift/internal/costing"
	"slift/internal/domain/models"
)

// Window restricts which trips count toward earnings. Zero value means
// all-time. Bounds are inclusive YYYY-MM-DD calendar dates; ISO dates
// compare correctly as strings, which is how the dashboard filters too.
type Window struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

func (w Window) IsZero() bool { return w.From == "" && w.To == "" }

func (w Window) contains(date string) bool {
	if w.From != "" && date < w.From {
		return false
	}
	if w.To != "" && date > w.To {
		return false
	}
	return true
}

// TripLine is one earning entry in a statement: the trip plus the amount
// this staff member earned on it.
type TripLine struct {
	Trip   models.Trip `json:"trip"`
	Amount float64     `json:"amount"`
}

// Statement is the reconciled balance for one staff member. Positive
// Balance means money still owed to them.
type Statement struct {
	StaffID  string           `json:"staffId"`
	Earned   float64          `json:"earned"`
	Paid     float64          `json:"paid"`
	Balance  float64          `json:"balance"`
	Trips    []TripLine       `json:"trips"`
	Payments []models.Payment `json:"payments"`
}

// Compute reconciles one staff member's earnings against their payments.
//
// Only Finished trips count. Helpers earn the weekend bonus recomputed from
// the rates passed in (live rates, not the trip's frozen snapshot); drivers
// earn distance × their current kmRate. This live-vs-snapshot asymmetry
// mirrors how balances have always been settled and is kept on purpose.
func Compute(staff models.Staff, trips []models.Trip, payments []models.Payment, rates models.Settings, win Window) Statement {
	st := Statement{StaffID: staff.ID}

	for _, t := range trips {
		if t.Status != models.StatusFinished {
			continue
		}
		if !win.contains(t.Date) {
			continue
		}

		var amount float64
		switch staff.Role {
		case models.RoleDriver:
			if !t.HasDriver(staff.ID) {
				continue
			}
			amount = t.DistanceKm * staff.KmRate
		case models.RoleHelper:
			if !t.IsWeekend || !t.HasHelper(staff.ID) {
				continue
			}
			amount = costing.HelperBonusRate(true, t.JobType, rates)
		default:
			continue
		}

		st.Earned += amount
		st.Trips = append(st.Trips, TripLine{Trip: t, Amount: amount})
	}

	for _, p := range payments {
		if p.StaffID != staff.ID {
			continue
		}
		st.Paid += p.Amount
		st.Payments = append(st.Payments, p)
	}

	// Newest first for display; the arithmetic above doesn't depend on it.
	sort.SliceStable(st.Trips, func(i, j int) bool {
		return st.Trips[i].Trip.Date > st.Trips[j].Trip.Date
	})
	sort.SliceStable(st.Payments, func(i, j int) bool {
		return paymentSortKey(st.Payments[i].Date) > paymentSortKey(st.Payments[j].Date)
	})

	st.Balance = st.Earned - st.Paid
	return st
}

// paymentSortKey makes RFC3339 dates comparable with older rows stored as
// "YYYY-MM-DD HH:MM:SS"; a raw compare would rank ' ' below 'T'.
func paymentSortKey(date string) string {
	return strings.Replace(date, " ", "T", 1)
}
