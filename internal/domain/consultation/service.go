package consultation

import (
	"context"
	"errors"
	"time"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/kv"
)

// Directory answers existence checks against the clinic directory.
type Directory interface {
	DepartmentExists(ctx context.Context, id string) (bool, error)
	DoctorExists(ctx context.Context, id string) (bool, error)
}

// Patients answers existence checks against the patient registry.
type Patients interface {
	PatientExists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	consultations ConsultationRepository
	chats         ChatRepository
	directory     Directory
	patients      Patients
}

func NewService(consultations ConsultationRepository, chats ChatRepository, directory Directory, patients Patients) *Service {
	return &Service{consultations: consultations, chats: chats, directory: directory, patients: patients}
}

func (s *Service) CreateConsultation(ctx context.Context, c *Consultation) (*Consultation, error) {
	if c.Problem == "" || c.PatientID == "" || c.DepartmentID == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	ok, err := s.patients.PatientExists(ctx, c.PatientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("patient %s does not exist", c.PatientID)
	}
	ok, err = s.directory.DepartmentExists(ctx, c.DepartmentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("department %s does not exist", c.DepartmentID)
	}
	c.ID = ""
	if err := s.consultations.Create(ctx, c); err != nil {
		return nil, apperr.Internal(err)
	}
	return c, nil
}

func (s *Service) GetConsultation(ctx context.Context, id string) (*Consultation, error) {
	c, err := s.consultations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("consultation not found")
		}
		return nil, apperr.Internal(err)
	}
	return c, nil
}

func (s *Service) ListConsultationsByPatient(ctx context.Context, patientID string) ([]*Consultation, error) {
	items, err := s.consultations.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	matched := make([]*Consultation, 0, len(items))
	for _, c := range items {
		if c.PatientID == patientID {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no consultations found")
	}
	return matched, nil
}

// -- Chats --

func (s *Service) CreateChat(ctx context.Context, c *Chat) (*Chat, error) {
	if c.Message == "" || c.PatientID == "" || c.DoctorID == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	ok, err := s.patients.PatientExists(ctx, c.PatientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("patient %s does not exist", c.PatientID)
	}
	ok, err = s.directory.DoctorExists(ctx, c.DoctorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("doctor %s does not exist", c.DoctorID)
	}
	c.ID = ""
	c.Timestamp = time.Now().UTC()
	if err := s.chats.Create(ctx, c); err != nil {
		return nil, apperr.Internal(err)
	}
	return c, nil
}

func (s *Service) GetChat(ctx context.Context, id string) (*Chat, error) {
	c, err := s.chats.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("chat not found")
		}
		return nil, apperr.Internal(err)
	}
	return c, nil
}

// ChatHistory returns every message between one patient and one doctor
// in the order sent.
func (s *Service) ChatHistory(ctx context.Context, patientID, doctorID string) ([]*Chat, error) {
	items, err := s.chats.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	matched := make([]*Chat, 0, len(items))
	for _, c := range items {
		if c.PatientID == patientID && c.DoctorID == doctorID {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no chats found")
	}
	return matched, nil
}
