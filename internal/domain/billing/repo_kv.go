package billing

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/telecare/telecare/internal/platform/kv"
)

const paymentBucket = "payments"

type KVPaymentRepo struct {
	bucket kv.Bucket
}

func NewKVPaymentRepo(store kv.Store) *KVPaymentRepo {
	return &KVPaymentRepo{bucket: store.Bucket(paymentBucket)}
}

func (r *KVPaymentRepo) Create(ctx context.Context, p *Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, p.ID, doc)
}

func (r *KVPaymentRepo) GetByID(ctx context.Context, id string) (*Payment, error) {
	doc, err := r.bucket.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var p Payment
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *KVPaymentRepo) Update(ctx context.Context, p *Payment) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, p.ID, doc)
}

func (r *KVPaymentRepo) List(ctx context.Context) ([]*Payment, error) {
	entries, err := r.bucket.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Payment, 0, len(entries))
	for _, e := range entries {
		var p Payment
		if err := json.Unmarshal(e.Doc, &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, nil
}
