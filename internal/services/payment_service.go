package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"slift/internal/domain"
	"slift/internal/domain/models"
	"slift/internal/repositories"
	"slift/internal/utils"
)

// PaymentService records money handed to staff against their balances.
type PaymentService struct {
	PaymentRepo repositories.PaymentRepository
	StaffRepo   repositories.StaffRepository
	RequestID   string
}

type PaymentInput struct {
	StaffID string  `json:"staffId"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
	Notes   string  `json:"notes"`
}

func (s PaymentService) List() ([]models.Payment, error) {
	return s.PaymentRepo.List()
}

func (s PaymentService) ListByStaff(staffID string) ([]models.Payment, error) {
	return s.PaymentRepo.ListByStaff(staffID)
}

// Create validates and records one payment. The referenced staff member must
// exist at recording time; afterwards the reference is weak.
func (s PaymentService) Create(in PaymentInput) (models.Payment, error) {
	staffID := strings.TrimSpace(in.StaffID)
	if staffID == "" {
		return models.Payment{}, domain.ValidationError{Field: "staffId", Msg: "colaborador é obrigatório"}
	}
	if in.Amount <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "amount", Msg: "valor deve ser maior que zero"}
	}
	if _, err := s.StaffRepo.GetByID(staffID); err != nil {
		return models.Payment{}, domain.NotFoundError{Resource: "staff", Err: err}
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = utils.FormatDateTime(time.Now())
	}

	p := models.Payment{
		ID:      uuid.NewString(),
		StaffID: staffID,
		Amount:  in.Amount,
		Date:    date,
		Notes:   strings.TrimSpace(in.Notes),
	}
	if err := s.PaymentRepo.Insert(p); err != nil {
		return models.Payment{}, domain.InternalError{Msg: "falha ao registrar pagamento", Err: err}
	}
	utils.LogEvent(s.RequestID, "payments", "create", "id="+p.ID+" staff="+staffID+" amount="+utils.FormatMoney(p.Amount))
	return p, nil
}

// Delete removes a payment; the staff balance recomputes on the next read.
func (s PaymentService) Delete(id string) error {
	if err := s.PaymentRepo.Delete(id); err != nil {
		return domain.NotFoundError{Resource: "payment", Err: err}
	}
	utils.LogEvent(s.RequestID, "payments", "delete", "id="+id)
	return nil
}
