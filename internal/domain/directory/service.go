package directory

import (
	"context"
	"errors"
	"strings"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/kv"
)

type Service struct {
	departments DepartmentRepository
	doctors     DoctorRepository
}

func NewService(departments DepartmentRepository, doctors DoctorRepository) *Service {
	return &Service{departments: departments, doctors: doctors}
}

// -- Departments --

func (s *Service) CreateDepartment(ctx context.Context, d *Department) (*Department, error) {
	if d.Name == "" || d.Description == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	existing, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	for _, other := range existing {
		if other.Name == d.Name {
			return nil, apperr.InvalidPayload("department %s already exists", d.Name)
		}
	}
	d.ID = ""
	if err := s.departments.Create(ctx, d); err != nil {
		return nil, apperr.Internal(err)
	}
	return d, nil
}

func (s *Service) GetDepartment(ctx context.Context, id string) (*Department, error) {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("department not found")
		}
		return nil, apperr.Internal(err)
	}
	return d, nil
}

func (s *Service) ListDepartments(ctx context.Context) ([]*Department, error) {
	items, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("no departments found")
	}
	return items, nil
}

func (s *Service) UpdateDepartment(ctx context.Context, id string, p DepartmentPatch) (*Department, error) {
	d, err := s.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Apply(p)
	if err := s.departments.Update(ctx, d); err != nil {
		return nil, apperr.Internal(err)
	}
	return d, nil
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := s.GetDepartment(ctx, id); err != nil {
		return err
	}
	if err := s.departments.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// DepartmentExists answers referential checks from other domains.
func (s *Service) DepartmentExists(ctx context.Context, id string) (bool, error) {
	_, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// -- Doctors --

func (s *Service) CreateDoctor(ctx context.Context, owner string, d *Doctor) (*Doctor, error) {
	if d.Name == "" || d.DepartmentID == "" || d.Image == "" {
		return nil, apperr.InvalidPayload("missing required fields")
	}
	ok, err := s.DepartmentExists(ctx, d.DepartmentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, apperr.InvalidPayload("department %s does not exist", d.DepartmentID)
	}
	d.ID = ""
	d.Owner = owner
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, apperr.Internal(err)
	}
	return d, nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apperr.NotFound("doctor not found")
		}
		return nil, apperr.Internal(err)
	}
	return d, nil
}

// GetDoctorByOwner returns the first doctor record created by the
// caller, in insertion order.
func (s *Service) GetDoctorByOwner(ctx context.Context, owner string) (*Doctor, error) {
	items, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	for _, d := range items {
		if d.Owner == owner {
			return d, nil
		}
	}
	return nil, apperr.NotFound("doctor not found")
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	items, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound("no doctors found")
	}
	return items, nil
}

func (s *Service) ListDoctorsByDepartment(ctx context.Context, departmentID string) ([]*Doctor, error) {
	items, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	matched := make([]*Doctor, 0, len(items))
	for _, d := range items {
		if d.DepartmentID == departmentID {
			matched = append(matched, d)
		}
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no doctors found")
	}
	return matched, nil
}

func (s *Service) SearchDoctorsByName(ctx context.Context, name string) ([]*Doctor, error) {
	items, err := s.doctors.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	matched := make([]*Doctor, 0, len(items))
	for _, d := range items {
		if strings.Contains(d.Name, name) {
			matched = append(matched, d)
		}
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("no doctors found")
	}
	return matched, nil
}

func (s *Service) UpdateDoctor(ctx context.Context, id string, p DoctorPatch) (*Doctor, error) {
	d, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Apply(p)
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, apperr.Internal(err)
	}
	return d, nil
}

func (s *Service) SetDoctorAvailability(ctx context.Context, id string, available bool) (*Doctor, error) {
	d, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Available = available
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, apperr.Internal(err)
	}
	return d, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id string) error {
	if _, err := s.GetDoctor(ctx, id); err != nil {
		return err
	}
	if err := s.doctors.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// DoctorExists answers referential checks from other domains.
func (s *Service) DoctorExists(ctx context.Context, id string) (bool, error) {
	_, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
