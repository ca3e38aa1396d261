package pharmacy

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/telecare/telecare/internal/platform/kv"
)

const prescriptionBucket = "prescriptions"

type KVPrescriptionRepo struct {
	bucket kv.Bucket
}

func NewKVPrescriptionRepo(store kv.Store) *KVPrescriptionRepo {
	return &KVPrescriptionRepo{bucket: store.Bucket(prescriptionBucket)}
}

func (r *KVPrescriptionRepo) Create(ctx context.Context, p *Prescription) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, p.ID, doc)
}

func (r *KVPrescriptionRepo) GetByID(ctx context.Context, id string) (*Prescription, error) {
	doc, err := r.bucket.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var p Prescription
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *KVPrescriptionRepo) List(ctx context.Context) ([]*Prescription, error) {
	entries, err := r.bucket.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Prescription, 0, len(entries))
	for _, e := range entries {
		var p Prescription
		if err := json.Unmarshal(e.Doc, &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, nil
}
