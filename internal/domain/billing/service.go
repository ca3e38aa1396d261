package billing

import (
	"context"
	"errors"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/kv"
)

// Appointments answers existence checks against the schedule.
type Appointments interface {
	AppointmentExists(ctx context.Context, id string) (bool, error)
}

// Patients answers existence checks against the patient registry.
type Patients interface {
	PatientExists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	payments     PaymentRepository
	appointments Appointments
	patients     Patients
}

func NewService(payments PaymentRepository, appointments Appointments, patients Patients) *Service {
	return &Service{payments: payments, appointments: appointments, patients: patients}
}

func (s *Service) CreatePayment(ctx context.Context, p *Payment) (*Payment, error) {
	if p.PaymentMethod == "" || p.AppointmentID == "" || p.PatientID == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	if p.Amount <= 0 {
		return nil, apperr.InvalidPayload("amount must be positive")
	}
	ok, err := s.patients.PatientExists(ctx, p.PatientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("patient %s does not exist", p.PatientID)
	}
	ok, err = s.appointments.AppointmentExists(ctx, p.AppointmentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("appointment %s does not exist", p.AppointmentID)
	}
	p.ID = ""
	p.Status = StatusPending
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *Service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *Service) ListPaymentsByPatient(ctx context.Context, patientID string) ([]*Payment, error) {
	items, err := s.payments.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	matched := make([]*Payment, 0, len(items))
	for _, p := range items {
		if p.PatientID == patientID {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no payments found")
	}
	return matched, nil
}

// UpdatePaymentStatus moves a payment to the given status and reports
// the payment outcome kind of the transition. Pending carries none.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id, status string) (*Payment, apperr.Kind, error) {
	if !ValidStatus(status) {
		return nil, "", apperr.InvalidPayload("invalid status: %s", status)
	}
	p, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, "", err
	}
	p.Status = status
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, "", apperr.Internal(err)
	}
	return p, Outcome(status), nil
}
