package repositories

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"

	intconfig "slift/internal/config"
	intdb "slift/internal/db"
	"slift/internal/domain/models"
)

type StaffRepository struct {
	DB *sql.DB
}

func (r StaffRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const staffTable = "staff"

// List returns every staff member ordered by name. A missing table is not an
// error; the caller sees an empty roster.
func (r StaffRepository) List() ([]models.Staff, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, staffTable) {
		return []models.Staff{}, nil
	}

	rows, err := db.Query(`
		SELECT id,
		       COALESCE(name,''),
		       COALESCE(role,''),
		       COALESCE(active,1),
		       COALESCE(phone,''),
		       COALESCE(vehicle_type,''),
		       COALESCE(plate,''),
		       COALESCE(km_rate,0)
		FROM ` + staffTable + `
		ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r StaffRepository) GetByID(id string) (models.Staff, error) {
	db := r.db()
	if db == nil || strings.TrimSpace(id) == "" {
		return models.Staff{}, sql.ErrNoRows
	}

	row := db.QueryRow(`
		SELECT id,
		       COALESCE(name,''),
		       COALESCE(role,''),
		       COALESCE(active,1),
		       COALESCE(phone,''),
		       COALESCE(vehicle_type,''),
		       COALESCE(plate,''),
		       COALESCE(km_rate,0)
		FROM `+staffTable+`
		WHERE id=? LIMIT 1`, id)
	return scanStaff(row)
}

func (r StaffRepository) Insert(s models.Staff) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	_, err := db.Exec(`
		INSERT INTO `+staffTable+` (id, name, role, active, phone, vehicle_type, plate, km_rate)
		VALUES (?,?,?,?,?,?,?,?)`,
		s.ID,
		strings.TrimSpace(s.Name),
		string(s.Role),
		s.Active,
		intdb.NullIfEmpty(strings.TrimSpace(s.Phone)),
		intdb.NullIfEmpty(strings.TrimSpace(s.VehicleType)),
		intdb.NullIfEmpty(strings.TrimSpace(s.Plate)),
		s.KmRate,
	)
	return err
}

func (r StaffRepository) Update(s models.Staff) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	res, err := db.Exec(`
		UPDATE `+staffTable+`
		SET name=?, role=?, active=?, phone=?, vehicle_type=?, plate=?, km_rate=?
		WHERE id=?`,
		strings.TrimSpace(s.Name),
		string(s.Role),
		s.Active,
		intdb.NullIfEmpty(strings.TrimSpace(s.Phone)),
		intdb.NullIfEmpty(strings.TrimSpace(s.VehicleType)),
		intdb.NullIfEmpty(strings.TrimSpace(s.Plate)),
		s.KmRate,
		s.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r StaffRepository) Delete(id string) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	res, err := db.Exec(`DELETE FROM `+staffTable+` WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SeedIfEmpty inserts the starter roster on a fresh database so the app is
// usable before anyone registers staff.
func (r StaffRepository) SeedIfEmpty() error {
	db := r.db()
	if db == nil || !intdb.HasTable(db, staffTable) {
		return nil
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + staffTable).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, s := range starterStaff() {
		if err := (StaffRepository{DB: db}).Insert(s); err != nil {
			return err
		}
	}
	return nil
}

func starterStaff() []models.Staff {
	return []models.Staff{
		{ID: uuid.NewString(), Name: "Carlos Silva", Role: models.RoleDriver, Active: true, Phone: "(11) 99999-1234", VehicleType: "Fiat Fiorino", Plate: "ABC-1234", KmRate: 2.50},
		{ID: uuid.NewString(), Name: "Roberto Santos", Role: models.RoleDriver, Active: true, Phone: "(11) 98888-5678", VehicleType: "Renault Master", Plate: "XYZ-9876", KmRate: 3.20},
		{ID: uuid.NewString(), Name: "João Souza", Role: models.RoleHelper, Active: true, Phone: "(11) 97777-1111"},
		{ID: uuid.NewString(), Name: "Pedro Alves", Role: models.RoleHelper, Active: true, Phone: "(11) 96666-2222"},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStaff(row rowScanner) (models.Staff, error) {
	var s models.Staff
	var role string
	if err := row.Scan(&s.ID, &s.Name, &role, &s.Active, &s.Phone, &s.VehicleType, &s.Plate, &s.KmRate); err != nil {
		return models.Staff{}, err
	}
	if parsed, ok := models.ParseStaffRole(role); ok {
		s.Role = parsed
	} else {
		s.Role = models.StaffRole(role)
	}
	s.Name = strings.TrimSpace(s.Name)
	return s, nil
}
