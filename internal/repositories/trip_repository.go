package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	intconfig "slift/internal/config"
	intdb "slift/internal/db"
	"slift/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripsTable = "trips"

const tripColumns = `id,
	       COALESCE(date,''),
	       COALESCE(client_name,''),
	       COALESCE(origin,''),
	       COALESCE(destination,''),
	       COALESCE(distance_km,0),
	       COALESCE(job_type,''),
	       COALESCE(status,''),
	       COALESCE(driver_ids,''),
	       COALESCE(driver_id,''),
	       COALESCE(helper_ids,''),
	       COALESCE(is_weekend,0),
	       COALESCE(base_value,0),
	       COALESCE(driver_km_cost,0),
	       COALESCE(total_cost,0),
	       COALESCE(notes,'')`

// List returns all trips newest-date first.
func (r TripRepository) List() ([]models.Trip, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, tripsTable) {
		return []models.Trip{}, nil
	}

	rows, err := db.Query(`SELECT ` + tripColumns + ` FROM ` + tripsTable + ` ORDER BY date DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListBetween returns trips with date inside [from, to], either bound
// optional. ISO dates order correctly under plain string comparison.
func (r TripRepository) ListBetween(from, to string) ([]models.Trip, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, tripsTable) {
		return []models.Trip{}, nil
	}

	where := []string{"1=1"}
	args := []any{}
	if strings.TrimSpace(from) != "" {
		where = append(where, "date>=?")
		args = append(args, strings.TrimSpace(from))
	}
	if strings.TrimSpace(to) != "" {
		where = append(where, "date<=?")
		args = append(args, strings.TrimSpace(to))
	}

	rows, err := db.Query(`SELECT `+tripColumns+` FROM `+tripsTable+` WHERE `+strings.Join(where, " AND ")+` ORDER BY date DESC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id string) (models.Trip, error) {
	db := r.db()
	if db == nil || strings.TrimSpace(id) == "" {
		return models.Trip{}, sql.ErrNoRows
	}

	row := db.QueryRow(`SELECT `+tripColumns+` FROM `+tripsTable+` WHERE id=? LIMIT 1`, id)
	return scanTrip(row)
}

// Insert writes a complete trip. driver_ids and helper_ids are stored as
// JSON arrays in text columns; the legacy driver_id column is never written
// for new rows.
func (r TripRepository) Insert(t models.Trip) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	stmt, args, err := tripInsert(t)
	if err != nil {
		return err
	}
	_, err = db.Exec(stmt, args...)
	return err
}

// Replace rewrites a trip under its existing id inside one transaction, so
// a failed insert cannot leave the row deleted.
func (r TripRepository) Replace(t models.Trip) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	stmt, args, err := tripInsert(t)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM `+tripsTable+` WHERE id=?`, t.ID)
	if err != nil {
		tx.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		tx.Rollback()
		return sql.ErrNoRows
	}
	if _, err := tx.Exec(stmt, args...); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func tripInsert(t models.Trip) (string, []any, error) {
	driverIDs, err := json.Marshal(t.DriverIDs)
	if err != nil {
		return "", nil, err
	}
	helperIDs, err := json.Marshal(t.HelperIDs)
	if err != nil {
		return "", nil, err
	}

	stmt := `
		INSERT INTO ` + tripsTable + `
		(id, date, client_name, origin, destination, distance_km, job_type, status,
		 driver_ids, helper_ids, is_weekend, base_value, driver_km_cost, total_cost, notes)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	args := []any{
		t.ID,
		t.Date,
		strings.TrimSpace(t.ClientName),
		strings.TrimSpace(t.Origin),
		strings.TrimSpace(t.Destination),
		t.DistanceKm,
		string(t.JobType),
		string(t.Status),
		string(driverIDs),
		string(helperIDs),
		t.IsWeekend,
		t.BaseValue,
		t.DriverKmCost,
		t.TotalCost,
		intdb.NullIfEmpty(strings.TrimSpace(t.Notes)),
	}
	return stmt, args, nil
}

func (r TripRepository) Delete(id string) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	res, err := db.Exec(`DELETE FROM `+tripsTable+` WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanTrip(row rowScanner) (models.Trip, error) {
	var t models.Trip
	var jobType, status, driverIDs, helperIDs string
	if err := row.Scan(
		&t.ID,
		&t.Date,
		&t.ClientName,
		&t.Origin,
		&t.Destination,
		&t.DistanceKm,
		&jobType,
		&status,
		&driverIDs,
		&t.LegacyDriverID,
		&helperIDs,
		&t.IsWeekend,
		&t.BaseValue,
		&t.DriverKmCost,
		&t.TotalCost,
		&t.Notes,
	); err != nil {
		return models.Trip{}, err
	}

	if parsed, ok := models.ParseJobType(jobType); ok {
		t.JobType = parsed
	} else {
		t.JobType = models.JobType(jobType)
	}
	if parsed, ok := models.ParseTripStatus(status); ok {
		t.Status = parsed
	} else {
		t.Status = models.TripStatus(status)
	}

	t.DriverIDs = decodeIDList(driverIDs)
	t.HelperIDs = decodeIDList(helperIDs)
	return t, nil
}

// decodeIDList tolerates empty columns and pre-JSON rows that stored one
// bare id.
func decodeIDList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{raw}
	}
	return ids
}
