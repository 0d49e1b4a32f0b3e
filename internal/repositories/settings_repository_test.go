package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"slift/internal/domain/models"
)

func TestSettingsLoadMissingTableYieldsDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("settings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	got, err := SettingsRepository{DB: db}.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != models.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestSettingsLoadMissingRowYieldsDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("settings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("settings"))
	mock.ExpectQuery("SELECT (.+) FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"mri_rate", "ct_rate", "helper_bonus_mri", "helper_bonus_ct", "fuel_cost_per_km", "logo"}))

	got, err := SettingsRepository{DB: db}.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.MriRate != 150 || got.HelperBonusCT != 40 {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestSettingsLoadStoredRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("settings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("settings"))
	mock.ExpectQuery("SELECT (.+) FROM settings").
		WillReturnRows(sqlmock.NewRows([]string{"mri_rate", "ct_rate", "helper_bonus_mri", "helper_bonus_ct", "fuel_cost_per_km", "logo"}).
			AddRow(200, 120, 70, 50, 3.10, ""))

	got, err := SettingsRepository{DB: db}.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.MriRate != 200 || got.FuelCostPerKm != 3.10 {
		t.Fatalf("stored values not returned: %+v", got)
	}
}

func TestStaffSeedIfEmptySkipsPopulatedTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("staff").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("staff"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM staff").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	if err := (StaffRepository{DB: db}).SeedIfEmpty(); err != nil {
		t.Fatalf("SeedIfEmpty error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStaffSeedIfEmptyInsertsStarterRoster(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("staff").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("staff"))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM staff").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for range starterStaff() {
		mock.ExpectExec("INSERT INTO staff").WillReturnResult(sqlmock.NewResult(0, 1))
	}

	if err := (StaffRepository{DB: db}).SeedIfEmpty(); err != nil {
		t.Fatalf("SeedIfEmpty error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
