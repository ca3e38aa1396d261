package patient

import "context"

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Patient, error)
}

// MedicalRecordRepository keys records by patient id. Put replaces the
// whole document.
type MedicalRecordRepository interface {
	Put(ctx context.Context, r *MedicalRecord) error
	GetByPatient(ctx context.Context, patientID string) (*MedicalRecord, error)
}
