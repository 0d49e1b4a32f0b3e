package services

import (
	"slift/internal/domain"
	"slift/internal/domain/models"
	"slift/internal/repositories"
	"slift/internal/utils"
)

// SettingsService guards the tunable rates. Changes only affect trips saved
// afterwards; existing snapshots keep their frozen figures.
type SettingsService struct {
	Repo      repositories.SettingsRepository
	RequestID string
}

func (s SettingsService) Get() (models.Settings, error) {
	return s.Repo.Load()
}

func (s SettingsService) Update(in models.Settings) (models.Settings, error) {
	for field, v := range map[string]float64{
		"mriRate":        in.MriRate,
		"ctRate":         in.CtRate,
		"helperBonusMRI": in.HelperBonusMRI,
		"helperBonusCT":  in.HelperBonusCT,
		"fuelCostPerKm":  in.FuelCostPerKm,
	} {
		if v < 0 {
			return models.Settings{}, domain.ValidationError{Field: field, Msg: "valor não pode ser negativo"}
		}
	}

	if err := s.Repo.Save(in); err != nil {
		return models.Settings{}, domain.InternalError{Msg: "falha ao salvar configurações", Err: err}
	}
	utils.LogEvent(s.RequestID, "settings", "update", "rates saved")
	return in, nil
}
