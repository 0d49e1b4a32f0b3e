package costing

import (
	"math"
	"testing"

	"slift/internal/domain/models"
)

var testRates = models.Settings{
	MriRate:        150,
	CtRate:         100,
	HelperBonusMRI: 60,
	HelperBonusCT:  40,
	FuelCostPerKm:  2.50,
}

func testDirectory() models.Directory {
	return models.BuildDirectory([]models.Staff{
		{ID: "d1", Name: "Carlos", Role: models.RoleDriver, Active: true, KmRate: 2.50},
		{ID: "d2", Name: "Roberto", Role: models.RoleDriver, Active: true, KmRate: 3.20},
		{ID: "d3", Name: "Sem Taxa", Role: models.RoleDriver, Active: true},
		{ID: "h1", Name: "João", Role: models.RoleHelper, Active: true},
	})
}

func approx(a, b float64) bool { return math.Abs(a-b) < 0.001 }

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2025-01-04", true},  // Saturday
		{"2025-01-05", true},  // Sunday
		{"2025-01-06", false}, // Monday
		{"2025-01-10", false}, // Friday
		{"not-a-date", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsWeekend(tt.date); got != tt.want {
			t.Errorf("IsWeekend(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	dir := testDirectory()

	tests := []struct {
		name      string
		date      string
		job       models.JobType
		drivers   []string
		helpers   []string
		distance  float64
		wantBase  float64
		wantFre   float64
		wantBonus float64
	}{
		{
			name: "weekday MRI pays freight only",
			date: "2025-01-06", job: models.JobMRI,
			drivers: []string{"d1"}, distance: 100,
			wantBase: 0, wantFre: 250, wantBonus: 0,
		},
		{
			name: "weekend MRI pays base and helper bonus",
			date: "2025-01-04", job: models.JobMRI,
			drivers: []string{"d1"}, helpers: []string{"h1"}, distance: 100,
			wantBase: 150, wantFre: 250, wantBonus: 60,
		},
		{
			name: "weekend CT with two helpers",
			date: "2025-01-05", job: models.JobCT,
			drivers: []string{"d1"}, helpers: []string{"h1", "h1"}, distance: 40,
			wantBase: 100, wantFre: 100, wantBonus: 80,
		},
		{
			name: "other job earns no base or bonus even on weekend",
			date: "2025-01-04", job: models.JobOther,
			drivers: []string{"d2"}, helpers: []string{"h1"}, distance: 50,
			wantBase: 0, wantFre: 160, wantBonus: 0,
		},
		{
			name: "multiple drivers sum their freight",
			date: "2025-01-06", job: models.JobCT,
			drivers: []string{"d1", "d2"}, distance: 10,
			wantBase: 0, wantFre: 57, wantBonus: 0,
		},
		{
			name: "unknown driver contributes zero",
			date: "2025-01-06", job: models.JobMRI,
			drivers: []string{"d1", "ghost"}, distance: 100,
			wantBase: 0, wantFre: 250, wantBonus: 0,
		},
		{
			name: "driver without rate contributes zero",
			date: "2025-01-06", job: models.JobMRI,
			drivers: []string{"d3"}, distance: 100,
			wantBase: 0, wantFre: 0, wantBonus: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.date, tt.job, tt.drivers, tt.helpers, tt.distance, dir, testRates)
			if !approx(got.Base, tt.wantBase) {
				t.Errorf("Base = %v, want %v", got.Base, tt.wantBase)
			}
			if !approx(got.Freight, tt.wantFre) {
				t.Errorf("Freight = %v, want %v", got.Freight, tt.wantFre)
			}
			if !approx(got.Bonus, tt.wantBonus) {
				t.Errorf("Bonus = %v, want %v", got.Bonus, tt.wantBonus)
			}
			wantTotal := tt.wantBase + tt.wantFre + tt.wantBonus
			if !approx(got.Total, wantTotal) {
				t.Errorf("Total = %v, want %v", got.Total, wantTotal)
			}
		})
	}
}

func TestQuoteIsPure(t *testing.T) {
	dir := testDirectory()
	first := Quote("2025-01-04", models.JobMRI, []string{"d1", "d2"}, []string{"h1"}, 80, dir, testRates)
	second := Quote("2025-01-04", models.JobMRI, []string{"d1", "d2"}, []string{"h1"}, 80, dir, testRates)
	if first != second {
		t.Fatalf("identical inputs produced different quotes: %+v vs %+v", first, second)
	}
}

func TestHelperBonusRateMissingConfigIsZero(t *testing.T) {
	if got := HelperBonusRate(true, models.JobMRI, models.Settings{}); got != 0 {
		t.Fatalf("unset bonus rate should be 0, got %v", got)
	}
	if got := HelperBonusRate(false, models.JobMRI, testRates); got != 0 {
		t.Fatalf("weekday bonus should be 0, got %v", got)
	}
}
