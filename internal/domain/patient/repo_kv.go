package patient

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/telecare/telecare/internal/platform/kv"
)

const (
	patientBucket       = "patients"
	medicalRecordBucket = "medical_records"
)

type KVPatientRepo struct {
	bucket kv.Bucket
}

func NewKVPatientRepo(store kv.Store) *KVPatientRepo {
	return &KVPatientRepo{bucket: store.Bucket(patientBucket)}
}

func (r *KVPatientRepo) Create(ctx context.Context, p *Patient) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, p.ID, doc)
}

func (r *KVPatientRepo) GetByID(ctx context.Context, id string) (*Patient, error) {
	doc, err := r.bucket.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var p Patient
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *KVPatientRepo) Update(ctx context.Context, p *Patient) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, p.ID, doc)
}

func (r *KVPatientRepo) Delete(ctx context.Context, id string) error {
	return r.bucket.Delete(ctx, id)
}

func (r *KVPatientRepo) List(ctx context.Context) ([]*Patient, error) {
	entries, err := r.bucket.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Patient, 0, len(entries))
	for _, e := range entries {
		var p Patient
		if err := json.Unmarshal(e.Doc, &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, nil
}

type KVMedicalRecordRepo struct {
	bucket kv.Bucket
}

func NewKVMedicalRecordRepo(store kv.Store) *KVMedicalRecordRepo {
	return &KVMedicalRecordRepo{bucket: store.Bucket(medicalRecordBucket)}
}

func (r *KVMedicalRecordRepo) Put(ctx context.Context, rec *MedicalRecord) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, rec.PatientID, doc)
}

func (r *KVMedicalRecordRepo) GetByPatient(ctx context.Context, patientID string) (*MedicalRecord, error) {
	doc, err := r.bucket.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	var rec MedicalRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
