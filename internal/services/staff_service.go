package services

import (
	"strings"

	"github.com/google/uuid"

	"slift/internal/domain"
	"slift/internal/domain/models"
	"slift/internal/repositories"
	"slift/internal/utils"
)

// StaffService manages the driver/helper roster.
type StaffService struct {
	Repo      repositories.StaffRepository
	RequestID string
}

// StaffInput is the write payload for creating or updating a staff member.
type StaffInput struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Active      *bool   `json:"active"`
	Phone       string  `json:"phone"`
	VehicleType string  `json:"vehicleType"`
	Plate       string  `json:"plate"`
	KmRate      float64 `json:"kmRate"`
}

func (s StaffService) List() ([]models.Staff, error) {
	return s.Repo.List()
}

func (s StaffService) Get(id string) (models.Staff, error) {
	st, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Staff{}, domain.NotFoundError{Resource: "staff", Err: err}
	}
	return st, nil
}

func (s StaffService) Create(in StaffInput) (models.Staff, error) {
	st, err := s.buildStaff(in)
	if err != nil {
		return models.Staff{}, err
	}
	st.ID = uuid.NewString()

	if err := s.Repo.Insert(st); err != nil {
		return models.Staff{}, domain.InternalError{Msg: "falha ao salvar colaborador", Err: err}
	}
	utils.LogEvent(s.RequestID, "staff", "create", "id="+st.ID+" role="+string(st.Role))
	return st, nil
}

func (s StaffService) Update(id string, in StaffInput) (models.Staff, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return models.Staff{}, domain.NotFoundError{Resource: "staff", Err: err}
	}

	st, err := s.buildStaff(in)
	if err != nil {
		return models.Staff{}, err
	}
	st.ID = id

	if err := s.Repo.Update(st); err != nil {
		return models.Staff{}, domain.InternalError{Msg: "falha ao atualizar colaborador", Err: err}
	}
	utils.LogEvent(s.RequestID, "staff", "update", "id="+id)
	return st, nil
}

// Delete removes the member; trips and payments referencing the id stay in
// place and degrade to weak references.
func (s StaffService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return domain.NotFoundError{Resource: "staff", Err: err}
	}
	utils.LogEvent(s.RequestID, "staff", "delete", "id="+id)
	return nil
}

func (s StaffService) buildStaff(in StaffInput) (models.Staff, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Staff{}, domain.ValidationError{Field: "name", Msg: "nome é obrigatório"}
	}

	role, ok := models.ParseStaffRole(in.Role)
	if !ok {
		return models.Staff{}, domain.ValidationError{Field: "role", Msg: "função inválida"}
	}

	if in.KmRate < 0 {
		return models.Staff{}, domain.ValidationError{Field: "kmRate", Msg: "taxa por km não pode ser negativa"}
	}

	st := models.Staff{
		Name:   name,
		Role:   role,
		Active: true,
		Phone:  strings.TrimSpace(in.Phone),
	}
	if in.Active != nil {
		st.Active = *in.Active
	}
	if role == models.RoleDriver {
		st.VehicleType = strings.TrimSpace(in.VehicleType)
		st.Plate = strings.TrimSpace(in.Plate)
		st.KmRate = in.KmRate
	}
	return st, nil
}
