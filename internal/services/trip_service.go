package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"slift/internal/costing"
	"slift/internal/domain"
	"slift/internal/domain/models"
	"slift/internal/repositories"
	"slift/internal/utils"
)

// TripService owns the trip lifecycle. Cost figures are quoted at save time
// and frozen on the row; editing replaces the row under the same id so the
// snapshot is requoted against the rates in force at edit time.
type TripService struct {
	TripRepo     repositories.TripRepository
	StaffRepo    repositories.StaffRepository
	SettingsRepo repositories.SettingsRepository
	RequestID    string
}

// TripInput is the write payload. Job type and status accept both the stable
// keys and the legacy display labels.
type TripInput struct {
	Date        string   `json:"date"`
	ClientName  string   `json:"clientName"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	DistanceKm  float64  `json:"distanceKm"`
	JobType     string   `json:"jobType"`
	Status      string   `json:"status"`
	DriverIDs   []string `json:"driverIds"`
	HelperIDs   []string `json:"helperIds"`
	Notes       string   `json:"notes"`
}

func (s TripService) List() ([]models.Trip, error) {
	return s.TripRepo.List()
}

func (s TripService) Get(id string) (models.Trip, error) {
	t, err := s.TripRepo.GetByID(id)
	if err != nil {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
	}
	return t, nil
}

// Preview quotes an input without persisting anything. Used by the form's
// live cost display, so it skips the driver-required check.
func (s TripService) Preview(in TripInput) (costing.Breakdown, error) {
	trip, err := s.normalize(in, false)
	if err != nil {
		return costing.Breakdown{}, err
	}
	dir, rates, err := s.loadQuoteContext()
	if err != nil {
		return costing.Breakdown{}, err
	}
	return costing.Quote(trip.Date, trip.JobType, trip.DriverIDs, trip.HelperIDs, trip.DistanceKm, dir, rates), nil
}

func (s TripService) Create(in TripInput) (models.Trip, error) {
	trip, err := s.quoteAndFreeze(in)
	if err != nil {
		return models.Trip{}, err
	}
	trip.ID = uuid.NewString()

	if err := s.TripRepo.Insert(trip); err != nil {
		return models.Trip{}, domain.InternalError{Msg: "falha ao salvar viagem", Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "create", fmt.Sprintf("id=%s total=%s", trip.ID, utils.FormatMoney(trip.TotalCost)))
	return trip, nil
}

// Update replaces the stored trip with a freshly quoted one under the same
// id. Replacing the whole row keeps the snapshot rule simple: a row always
// holds the figures quoted the moment it was written.
func (s TripService) Update(id string, in TripInput) (models.Trip, error) {
	if _, err := s.TripRepo.GetByID(id); err != nil {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", Err: err}
	}

	trip, err := s.quoteAndFreeze(in)
	if err != nil {
		return models.Trip{}, err
	}
	trip.ID = id

	if err := s.TripRepo.Replace(trip); err != nil {
		return models.Trip{}, domain.InternalError{Msg: "falha ao substituir viagem", Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "update", "id="+id)
	return trip, nil
}

func (s TripService) Delete(id string) error {
	if err := s.TripRepo.Delete(id); err != nil {
		return domain.NotFoundError{Resource: "trip", Err: err}
	}
	utils.LogEvent(s.RequestID, "trips", "delete", "id="+id)
	return nil
}

func (s TripService) quoteAndFreeze(in TripInput) (models.Trip, error) {
	trip, err := s.normalize(in, true)
	if err != nil {
		return models.Trip{}, err
	}

	dir, rates, err := s.loadQuoteContext()
	if err != nil {
		return models.Trip{}, err
	}

	q := costing.Quote(trip.Date, trip.JobType, trip.DriverIDs, trip.HelperIDs, trip.DistanceKm, dir, rates)
	trip.IsWeekend = costing.IsWeekend(trip.Date)
	trip.BaseValue = q.Base
	trip.DriverKmCost = q.Freight
	trip.TotalCost = q.Total
	return trip, nil
}

func (s TripService) normalize(in TripInput, requireDriver bool) (models.Trip, error) {
	date := strings.TrimSpace(in.Date)
	if _, err := utils.ParseDate(date); err != nil {
		return models.Trip{}, domain.ValidationError{Field: "date", Msg: "data deve estar no formato AAAA-MM-DD"}
	}

	job, ok := models.ParseJobType(in.JobType)
	if !ok {
		return models.Trip{}, domain.ValidationError{Field: "jobType", Msg: "tipo de serviço inválido"}
	}
	status, ok := models.ParseTripStatus(in.Status)
	if !ok {
		return models.Trip{}, domain.ValidationError{Field: "status", Msg: "status inválido"}
	}

	if in.DistanceKm < 0 {
		return models.Trip{}, domain.ValidationError{Field: "distanceKm", Msg: "distância não pode ser negativa"}
	}

	drivers := cleanIDList(in.DriverIDs)
	if requireDriver && len(drivers) == 0 {
		return models.Trip{}, domain.ValidationError{Field: "driverIds", Msg: "selecione ao menos um motorista"}
	}

	return models.Trip{
		Date:        date,
		ClientName:  strings.TrimSpace(in.ClientName),
		Origin:      strings.TrimSpace(in.Origin),
		Destination: strings.TrimSpace(in.Destination),
		DistanceKm:  in.DistanceKm,
		JobType:     job,
		Status:      status,
		DriverIDs:   drivers,
		HelperIDs:   cleanIDList(in.HelperIDs),
		Notes:       strings.TrimSpace(in.Notes),
	}, nil
}

func (s TripService) loadQuoteContext() (models.Directory, models.Settings, error) {
	staff, err := s.StaffRepo.List()
	if err != nil {
		return nil, models.Settings{}, domain.InternalError{Msg: "falha ao carregar equipe", Err: err}
	}
	rates, err := s.SettingsRepo.Load()
	if err != nil {
		return nil, models.Settings{}, domain.InternalError{Msg: "falha ao carregar configurações", Err: err}
	}
	return models.BuildDirectory(staff), rates, nil
}

func cleanIDList(ids []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
