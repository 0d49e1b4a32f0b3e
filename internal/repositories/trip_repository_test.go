package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"slift/internal/domain/models"
)

func expectTripsTable(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("trips"))
}

func tripRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "date", "client_name", "origin", "destination", "distance_km",
		"job_type", "status", "driver_ids", "driver_id", "helper_ids",
		"is_weekend", "base_value", "driver_km_cost", "total_cost", "notes",
	})
}

func TestTripListDecodesIDColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectTripsTable(mock)
	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(tripRows().
			AddRow("t1", "2025-01-04", "Hospital Central", "SP", "Campinas", 100,
				"MRI", "FINISHED", `["d1","d2"]`, "", `["h1"]`, true, 150, 570, 780, "").
			AddRow("t2", "2024-11-02", "Clínica Sul", "SP", "Santos", 70,
				"Tomografia", "Finalizado", "", "d1", "", true, 100, 175, 275, "antiga"))

	trips, err := TripRepository{DB: db}.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}

	modern := trips[0]
	if len(modern.DriverIDs) != 2 || modern.DriverIDs[0] != "d1" {
		t.Fatalf("driver_ids not decoded: %+v", modern.DriverIDs)
	}
	if !modern.HasHelper("h1") {
		t.Fatalf("helper_ids not decoded: %+v", modern.HelperIDs)
	}

	legacy := trips[1]
	if legacy.JobType != models.JobCT || legacy.Status != models.StatusFinished {
		t.Fatalf("legacy labels not normalized: %s / %s", legacy.JobType, legacy.Status)
	}
	if got := legacy.DriverSet(); len(got) != 1 || got[0] != "d1" {
		t.Fatalf("legacy driver_id fallback broken: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripInsertStoresJSONArrays(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO trips").
		WithArgs("t1", "2025-01-04", "Hospital Central", "SP", "Campinas", 100.0,
			"MRI", "OPEN", `["d1"]`, `["h1"]`, true, 150.0, 250.0, 460.0, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	trip := models.Trip{
		ID: "t1", Date: "2025-01-04", ClientName: "Hospital Central",
		Origin: "SP", Destination: "Campinas", DistanceKm: 100,
		JobType: models.JobMRI, Status: models.StatusOpen,
		DriverIDs: []string{"d1"}, HelperIDs: []string{"h1"},
		IsWeekend: true, BaseValue: 150, DriverKmCost: 250, TotalCost: 460,
	}
	if err := (TripRepository{DB: db}).Insert(trip); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripListMissingTableReturnsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("trips").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	trips, err := TripRepository{DB: db}.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected empty list, got %d", len(trips))
	}
}

func TestDecodeIDList(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`["a","b"]`, 2},
		{`[]`, 0},
		{"", 0},
		{"null", 0},
		{"bare-id", 1},
	}
	for _, tt := range tests {
		if got := decodeIDList(tt.raw); len(got) != tt.want {
			t.Errorf("decodeIDList(%q) = %v, want %d ids", tt.raw, got, tt.want)
		}
	}
}
