package pharmacy

import (
	"context"
	"errors"
	"time"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/kv"
)

// Directory answers existence checks against the clinic directory.
type Directory interface {
	DoctorExists(ctx context.Context, id string) (bool, error)
}

// Patients answers existence checks against the patient registry.
type Patients interface {
	PatientExists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	prescriptions PrescriptionRepository
	directory     Directory
	patients      Patients
}

func NewService(prescriptions PrescriptionRepository, directory Directory, patients Patients) *Service {
	return &Service{prescriptions: prescriptions, directory: directory, patients: patients}
}

func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) (*Prescription, error) {
	if len(p.Medications) == 0 || p.Instructions == "" || p.PatientID == "" || p.DoctorID == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	ok, err := s.patients.PatientExists(ctx, p.PatientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("patient %s does not exist", p.PatientID)
	}
	ok, err = s.directory.DoctorExists(ctx, p.DoctorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("doctor %s does not exist", p.DoctorID)
	}
	p.ID = ""
	p.IssuedAt = time.Now().UTC()
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *Service) GetPrescription(ctx context.Context, id string) (*Prescription, error) {
	p, err := s.prescriptions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("prescription not found")
		}
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *Service) ListPrescriptionsByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	items, err := s.prescriptions.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	matched := make([]*Prescription, 0, len(items))
	for _, p := range items {
		if p.PatientID == patientID {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no prescriptions found")
	}
	return matched, nil
}
