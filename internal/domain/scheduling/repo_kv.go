package scheduling

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/telecare/telecare/internal/platform/kv"
)

const appointmentBucket = "appointments"

type KVAppointmentRepo struct {
	bucket kv.Bucket
}

func NewKVAppointmentRepo(store kv.Store) *KVAppointmentRepo {
	return &KVAppointmentRepo{bucket: store.Bucket(appointmentBucket)}
}

func (r *KVAppointmentRepo) Create(ctx context.Context, a *Appointment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	doc, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, a.ID, doc)
}

func (r *KVAppointmentRepo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	doc, err := r.bucket.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var a Appointment
	if err := json.Unmarshal(doc, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *KVAppointmentRepo) Update(ctx context.Context, a *Appointment) error {
	doc, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, a.ID, doc)
}

func (r *KVAppointmentRepo) List(ctx context.Context) ([]*Appointment, error) {
	entries, err := r.bucket.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Appointment, 0, len(entries))
	for _, e := range entries {
		var a Appointment
		if err := json.Unmarshal(e.Doc, &a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, nil
}
