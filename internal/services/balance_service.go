package services

import (
	"slift/internal/domain"
	"slift/internal/ledger"
	"slift/internal/repositories"
)

// BalanceService assembles ledger statements from the stored collections.
type BalanceService struct {
	StaffRepo    repositories.StaffRepository
	TripRepo     repositories.TripRepository
	PaymentRepo  repositories.PaymentRepository
	SettingsRepo repositories.SettingsRepository
}

// StatementFor computes one staff member's statement, optionally windowed.
func (s BalanceService) StatementFor(staffID string, win ledger.Window) (ledger.Statement, error) {
	staff, err := s.StaffRepo.GetByID(staffID)
	if err != nil {
		return ledger.Statement{}, domain.NotFoundError{Resource: "staff", Err: err}
	}

	trips, err := s.TripRepo.List()
	if err != nil {
		return ledger.Statement{}, domain.InternalError{Msg: "falha ao carregar viagens", Err: err}
	}
	payments, err := s.PaymentRepo.ListByStaff(staffID)
	if err != nil {
		return ledger.Statement{}, domain.InternalError{Msg: "falha ao carregar pagamentos", Err: err}
	}
	rates, err := s.SettingsRepo.Load()
	if err != nil {
		return ledger.Statement{}, domain.InternalError{Msg: "falha ao carregar configurações", Err: err}
	}

	return ledger.Compute(staff, trips, payments, rates, win), nil
}

// All computes statements for every staff member in one pass over the data.
func (s BalanceService) All(win ledger.Window) ([]ledger.Statement, error) {
	staff, err := s.StaffRepo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "falha ao carregar equipe", Err: err}
	}
	trips, err := s.TripRepo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "falha ao carregar viagens", Err: err}
	}
	payments, err := s.PaymentRepo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "falha ao carregar pagamentos", Err: err}
	}
	rates, err := s.SettingsRepo.Load()
	if err != nil {
		return nil, domain.InternalError{Msg: "falha ao carregar configurações", Err: err}
	}

	out := make([]ledger.Statement, 0, len(staff))
	for _, member := range staff {
		out = append(out, ledger.Compute(member, trips, payments, rates, win))
	}
	return out, nil
}
