package patient

import (
	"context"
	"errors"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/kv"
)

type Service struct {
	patients PatientRepository
	records  MedicalRecordRepository
}

func NewService(patients PatientRepository, records MedicalRecordRepository) *Service {
	return &Service{patients: patients, records: records}
}

func (s *Service) CreatePatient(ctx context.Context, owner string, p *Patient) (*Patient, error) {
	if p.Name == "" || p.Gender == "" || p.Phone == "" || p.Email == "" || p.Address == "" || p.Age <= 0 {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	ec := p.EmergencyContact
	if ec.Name == "" || ec.Phone == "" || ec.Relationship == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	p.ID = ""
	p.Owner = owner
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("patient not found")
		}
		return nil, apperr.Internal(err)
	}
	return p, nil
}

// GetPatientByOwner returns the first patient record created by the
// caller, in insertion order.
func (s *Service) GetPatientByOwner(ctx context.Context, owner string) (*Patient, error) {
	items, err := s.patients.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	for _, p := range items {
		if p.Owner == owner {
			return p, nil
		}
	}
	return nil, apperr.NotFound("patient not found")
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	items, err := s.patients.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("no patients found")
	}
	return items, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id string, patch Patch) (*Patient, error) {
	p, err := s.GetPatient(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(patch)
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, apperr.Internal(err)
	}
	return p, nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if _, err := s.GetPatient(ctx, id); err != nil {
		return err
	}
	if err := s.patients.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// PatientExists answers referential checks from other domains.
func (s *Service) PatientExists(ctx context.Context, id string) (bool, error) {
	_, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// -- Medical records --

// UpsertMedicalRecord replaces the patient's record wholesale. There is
// no merge for medical records.
func (s *Service) UpsertMedicalRecord(ctx context.Context, rec *MedicalRecord) (*MedicalRecord, error) {
	if rec.PatientID == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	ok, err := s.PatientExists(ctx, rec.PatientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("patient %s does not exist", rec.PatientID)
	}
	if err := s.records.Put(ctx, rec); err != nil {
		return nil, apperr.Internal(err)
	}
	return rec, nil
}

func (s *Service) GetMedicalRecord(ctx context.Context, patientID string) (*MedicalRecord, error) {
	rec, err := s.records.GetByPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("medical record not found")
		}
		return nil, apperr.Internal(err)
	}
	return rec, nil
}
