package directory

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/telecare/telecare/internal/platform/kv"
)

const (
	departmentBucket = "departments"
	doctorBucket     = "doctors"
)

type KVDepartmentRepo struct {
	bucket kv.Bucket
}

func NewKVDepartmentRepo(store kv.Store) *KVDepartmentRepo {
	return &KVDepartmentRepo{bucket: store.Bucket(departmentBucket)}
}

func (r *KVDepartmentRepo) Create(ctx context.Context, d *Department) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	doc, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, d.ID, doc)
}

func (r *KVDepartmentRepo) GetByID(ctx context.Context, id string) (*Department, error) {
	doc, err := r.bucket.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var d Department
	if err := json.Unmarshal(doc, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *KVDepartmentRepo) Update(ctx context.Context, d *Department) error {
	doc, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, d.ID, doc)
}

func (r *KVDepartmentRepo) Delete(ctx context.Context, id string) error {
	return r.bucket.Delete(ctx, id)
}

func (r *KVDepartmentRepo) List(ctx context.Context) ([]*Department, error) {
	entries, err := r.bucket.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Department, 0, len(entries))
	for _, e := range entries {
		var d Department
		if err := json.Unmarshal(e.Doc, &d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, nil
}

type KVDoctorRepo struct {
	bucket kv.Bucket
}

func NewKVDoctorRepo(store kv.Store) *KVDoctorRepo {
	return &KVDoctorRepo{bucket: store.Bucket(doctorBucket)}
}

func (r *KVDoctorRepo) Create(ctx context.Context, d *Doctor) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	doc, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, d.ID, doc)
}

func (r *KVDoctorRepo) GetByID(ctx context.Context, id string) (*Doctor, error) {
	doc, err := r.bucket.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var d Doctor
	if err := json.Unmarshal(doc, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *KVDoctorRepo) Update(ctx context.Context, d *Doctor) error {
	doc, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, d.ID, doc)
}

func (r *KVDoctorRepo) Delete(ctx context.Context, id string) error {
	return r.bucket.Delete(ctx, id)
}

func (r *KVDoctorRepo) List(ctx context.Context) ([]*Doctor, error) {
	entries, err := r.bucket.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Doctor, 0, len(entries))
	for _, e := range entries {
		var d Doctor
		if err := json.Unmarshal(e.Doc, &d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, nil
}
