package repositories

import (
	"database/sql"
	"strings"

	intconfig "slift/internal/config"
	intdb "slift/internal/db"
	"slift/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const paymentsTable = "payments"

// List returns every payment newest first.
func (r PaymentRepository) List() ([]models.Payment, error) {
	return r.list("", nil)
}

// ListByStaff returns one staff member's payments newest first.
func (r PaymentRepository) ListByStaff(staffID string) ([]models.Payment, error) {
	if strings.TrimSpace(staffID) == "" {
		return []models.Payment{}, nil
	}
	return r.list("staff_id=?", []any{staffID})
}

func (r PaymentRepository) list(where string, args []any) ([]models.Payment, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, paymentsTable) {
		return []models.Payment{}, nil
	}

	query := `
		SELECT id,
		       COALESCE(staff_id,''),
		       COALESCE(amount,0),
		       COALESCE(date,''),
		       COALESCE(notes,'')
		FROM ` + paymentsTable
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY date DESC, id ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.StaffID, &p.Amount, &p.Date, &p.Notes); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PaymentRepository) Insert(p models.Payment) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	_, err := db.Exec(`
		INSERT INTO `+paymentsTable+` (id, staff_id, amount, date, notes)
		VALUES (?,?,?,?,?)`,
		p.ID,
		p.StaffID,
		p.Amount,
		p.Date,
		intdb.NullIfEmpty(strings.TrimSpace(p.Notes)),
	)
	return err
}

func (r PaymentRepository) Delete(id string) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	res, err := db.Exec(`DELETE FROM `+paymentsTable+` WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
