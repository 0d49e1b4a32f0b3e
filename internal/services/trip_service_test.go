package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"slift/internal/domain"
	"slift/internal/domain/models"
	"slift/internal/repositories"
)

func newTripService(t *testing.T) (TripService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)

	svc := TripService{
		TripRepo:     repositories.TripRepository{DB: db},
		StaffRepo:    repositories.StaffRepository{DB: db},
		SettingsRepo: repositories.SettingsRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func expectQuoteContext(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("staff").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("staff"))
	mock.ExpectQuery("SELECT (.+) FROM staff").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "active", "phone", "vehicle_type", "plate", "km_rate"}).
			AddRow("d1", "Carlos Silva", "DRIVER", true, "", "Fiat Fiorino", "ABC-1234", 2.50).
			AddRow("h1", "João Souza", "HELPER", true, "", "", "", 0))

	mock.ExpectQuery("information_schema\\.tables").WithArgs("settings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
}

func TestTripCreateFreezesQuote(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	expectQuoteContext(mock)
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(0, 1))

	trip, err := svc.Create(TripInput{
		Date:       "2025-01-04", // Saturday
		ClientName: "Hospital Central",
		DistanceKm: 100,
		JobType:    "MRI",
		Status:     "OPEN",
		DriverIDs:  []string{"d1"},
		HelperIDs:  []string{"h1"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if trip.ID == "" {
		t.Fatal("created trip must receive an id")
	}
	if !trip.IsWeekend {
		t.Fatal("Saturday trip must be flagged weekend")
	}
	// base 150 + freight 250 + helper bonus 60, from the default rates
	if trip.BaseValue != 150 || trip.DriverKmCost != 250 || trip.TotalCost != 460 {
		t.Fatalf("snapshot wrong: base=%v freight=%v total=%v", trip.BaseValue, trip.DriverKmCost, trip.TotalCost)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripCreateRequiresDriver(t *testing.T) {
	svc, _, done := newTripService(t)
	defer done()

	_, err := svc.Create(TripInput{
		Date:    "2025-01-06",
		JobType: "CT",
		Status:  "OPEN",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTripCreateRejectsBadDate(t *testing.T) {
	svc, _, done := newTripService(t)
	defer done()

	_, err := svc.Create(TripInput{
		Date:      "04/01/2025",
		JobType:   "MRI",
		Status:    "OPEN",
		DriverIDs: []string{"d1"},
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTripPreviewAllowsMissingDriver(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	expectQuoteContext(mock)

	q, err := svc.Preview(TripInput{
		Date:       "2025-01-04",
		DistanceKm: 50,
		JobType:    "CT",
		Status:     "OPEN",
		HelperIDs:  []string{"h1"},
	})
	if err != nil {
		t.Fatalf("Preview error: %v", err)
	}
	// no driver yet: base 100 + bonus 40, freight 0
	if q.Base != 100 || q.Freight != 0 || q.Bonus != 40 {
		t.Fatalf("unexpected preview: %+v", q)
	}
}

func TestTripUpdateReplacesRow(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	existing := sqlmock.NewRows([]string{
		"id", "date", "client_name", "origin", "destination", "distance_km",
		"job_type", "status", "driver_ids", "driver_id", "helper_ids",
		"is_weekend", "base_value", "driver_km_cost", "total_cost", "notes",
	}).AddRow("t1", "2025-01-04", "Hospital Central", "", "", 100,
		"MRI", "OPEN", `["d1"]`, "", "[]", true, 150, 250, 400, "")

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id=").WillReturnRows(existing)
	expectQuoteContext(mock)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM trips").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trip, err := svc.Update("t1", TripInput{
		Date:       "2025-01-06", // moved to Monday
		ClientName: "Hospital Central",
		DistanceKm: 100,
		JobType:    "MRI",
		Status:     "FINISHED",
		DriverIDs:  []string{"d1"},
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if trip.ID != "t1" {
		t.Fatalf("id must survive the edit, got %q", trip.ID)
	}
	if trip.IsWeekend || trip.BaseValue != 0 || trip.TotalCost != 250 {
		t.Fatalf("requote wrong: %+v", trip)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripUpdateRollsBackOnFailedInsert(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	existing := sqlmock.NewRows([]string{
		"id", "date", "client_name", "origin", "destination", "distance_km",
		"job_type", "status", "driver_ids", "driver_id", "helper_ids",
		"is_weekend", "base_value", "driver_km_cost", "total_cost", "notes",
	}).AddRow("t1", "2025-01-04", "Hospital Central", "", "", 100,
		"MRI", "OPEN", `["d1"]`, "", "[]", true, 150, 250, 400, "")

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id=").WillReturnRows(existing)
	expectQuoteContext(mock)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM trips").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO trips").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err := svc.Update("t1", TripInput{
		Date:      "2025-01-06",
		JobType:   "MRI",
		Status:    "OPEN",
		DriverIDs: []string{"d1"},
	})
	if err == nil {
		t.Fatal("failed insert must surface an error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations (rollback missing?): %v", err)
	}
}

func TestPaymentCreateValidatesAmount(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		StaffRepo:   repositories.StaffRepository{DB: db},
	}

	if _, err := svc.Create(PaymentInput{StaffID: "d1", Amount: 0}); !domain.IsValidation(err) {
		t.Fatalf("zero amount must be rejected, got %v", err)
	}
	if _, err := svc.Create(PaymentInput{StaffID: "d1", Amount: -10}); !domain.IsValidation(err) {
		t.Fatalf("negative amount must be rejected, got %v", err)
	}
	if _, err := svc.Create(PaymentInput{StaffID: "", Amount: 50}); !domain.IsValidation(err) {
		t.Fatalf("missing staff must be rejected, got %v", err)
	}
}

func TestPaymentCreateDefaultsToSortableTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT (.+) FROM staff WHERE id=").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role", "active", "phone", "vehicle_type", "plate", "km_rate"}).
			AddRow("d1", "Carlos Silva", "DRIVER", true, "", "", "", 2.50))
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(0, 1))

	svc := PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		StaffRepo:   repositories.StaffRepository{DB: db},
	}

	p, err := svc.Create(PaymentInput{StaffID: "d1", Amount: 50})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	// Clients send RFC3339; the server default must match so stored dates
	// stay comparable as strings.
	if _, err := time.Parse(time.RFC3339, p.Date); err != nil {
		t.Fatalf("default date %q is not RFC3339: %v", p.Date, err)
	}
}

func TestStaffBuildValidation(t *testing.T) {
	svc := StaffService{}

	if _, err := svc.buildStaff(StaffInput{Name: "", Role: "DRIVER"}); !domain.IsValidation(err) {
		t.Fatalf("empty name must be rejected, got %v", err)
	}
	if _, err := svc.buildStaff(StaffInput{Name: "X", Role: "pilot"}); !domain.IsValidation(err) {
		t.Fatalf("unknown role must be rejected, got %v", err)
	}

	st, err := svc.buildStaff(StaffInput{Name: "Maria", Role: "Ajudante", KmRate: 9})
	if err != nil {
		t.Fatalf("legacy role label must parse: %v", err)
	}
	if st.Role != models.RoleHelper {
		t.Fatalf("role = %s, want HELPER", st.Role)
	}
	if st.KmRate != 0 {
		t.Fatal("helper must not keep a km rate")
	}
}
