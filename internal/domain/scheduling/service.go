package scheduling

import (
	"context"
	"errors"

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
	appointments AppointmentRepository
	directory    Directory
	patients     Patients
}

func NewService(appointments AppointmentRepository, directory Directory, patients Patients) *Service {
	return &Service{appointments: appointments, directory: directory, patients: patients}
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) (*Appointment, error) {
	if a.Reason == "" || a.AppointmentTime == "" || a.PatientID == "" || a.DoctorID == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	ok, err := s.patients.PatientExists(ctx, a.PatientID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("patient %s does not exist", a.PatientID)
	}
	ok, err = s.directory.DoctorExists(ctx, a.DoctorID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("doctor %s does not exist", a.DoctorID)
	}
	a.ID = ""
	a.Status = StatusScheduled
	a.VideoLink = ""
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, apperr.Internal(err)
	}
	return a, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("appointment not found")
		}
		return nil, apperr.Internal(err)
	}
	return a, nil
}

func (s *Service) ListAppointmentsByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return s.list(ctx, func(a *Appointment) bool { return a.PatientID == patientID })
}

func (s *Service) ListAppointmentsByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error) {
	return s.list(ctx, func(a *Appointment) bool { return a.DoctorID == doctorID })
}

func (s *Service) list(ctx context.Context, match func(*Appointment) bool) ([]*Appointment, error) {
	items, err := s.appointments.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	matched := make([]*Appointment, 0, len(items))
	for _, a := range items {
		if match(a) {
			matched = append(matched, a)
		}
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no appointments found")
	}
	return matched, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, p Patch) (*Appointment, error) {
	if p.Status != nil && !ValidStatus(*p.Status) {
		return nil, apperr.InvalidPayload("invalid status: %s", *p.Status)
	}
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Apply(p)
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, apperr.Internal(err)
	}
	return a, nil
}

// AttachVideoLink sets the call URL for an appointment. The link must
// be non-empty.
func (s *Service) AttachVideoLink(ctx context.Context, id, link string) (*Appointment, error) {
	if link == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	a.VideoLink = link
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, apperr.Internal(err)
	}
	return a, nil
}

// AppointmentExists answers referential checks from other domains.
func (s *Service) AppointmentExists(ctx context.Context, id string) (bool, error) {
	_, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
