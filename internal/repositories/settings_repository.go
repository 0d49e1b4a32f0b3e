package repositories

import (
	"database/sql"

	intconfig "slift/internal/config"
	intdb "slift/internal/db"
	"slift/internal/domain/models"
)

type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const settingsTable = "settings"

// Load reads the single settings row, filling any NULL column with its
// default so fields added after a deployment never come back zeroed. A
// missing row or table yields the defaults outright.
func (r SettingsRepository) Load() (models.Settings, error) {
	def := models.DefaultSettings()

	db := r.db()
	if db == nil || !intdb.HasTable(db, settingsTable) {
		return def, nil
	}

	var s models.Settings
	err := db.QueryRow(`
		SELECT COALESCE(mri_rate,?),
		       COALESCE(ct_rate,?),
		       COALESCE(helper_bonus_mri,?),
		       COALESCE(helper_bonus_ct,?),
		       COALESCE(fuel_cost_per_km,?),
		       COALESCE(logo,'')
		FROM `+settingsTable+`
		WHERE id=1 LIMIT 1`,
		def.MriRate, def.CtRate, def.HelperBonusMRI, def.HelperBonusCT, def.FuelCostPerKm,
	).Scan(&s.MriRate, &s.CtRate, &s.HelperBonusMRI, &s.HelperBonusCT, &s.FuelCostPerKm, &s.Logo)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	return s, nil
}

// Save upserts the single settings row.
func (r SettingsRepository) Save(s models.Settings) error {
	db := r.db()
	if db == nil {
		return sql.ErrConnDone
	}
	_, err := db.Exec(`
		INSERT INTO `+settingsTable+`
		(id, mri_rate, ct_rate, helper_bonus_mri, helper_bonus_ct, fuel_cost_per_km, logo)
		VALUES (1,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
		mri_rate=VALUES(mri_rate),
		ct_rate=VALUES(ct_rate),
		helper_bonus_mri=VALUES(helper_bonus_mri),
		helper_bonus_ct=VALUES(helper_bonus_ct),
		fuel_cost_per_km=VALUES(fuel_cost_per_km),
		logo=VALUES(logo)`,
		s.MriRate, s.CtRate, s.HelperBonusMRI, s.HelperBonusCT, s.FuelCostPerKm,
		intdb.NullIfEmpty(s.Logo),
	)
	return err
}
