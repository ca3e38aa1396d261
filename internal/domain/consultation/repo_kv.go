package consultation

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/telecare/telecare/internal/platform/kv"
)

const (
	consultationBucket = "consultations"
	chatBucket         = "chats"
)

type KVConsultationRepo struct {
	bucket kv.Bucket
}

func NewKVConsultationRepo(store kv.Store) *KVConsultationRepo {
	return &KVConsultationRepo{bucket: store.Bucket(consultationBucket)}
}

func (r *KVConsultationRepo) Create(ctx context.Context, c *Consultation) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	doc, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, c.ID, doc)
}

func (r *KVConsultationRepo) GetByID(ctx context.Context, id string) (*Consultation, error) {
	doc, err := r.bucket.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var c Consultation
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *KVConsultationRepo) List(ctx context.Context) ([]*Consultation, error) {
	entries, err := r.bucket.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Consultation, 0, len(entries))
	for _, e := range entries {
		var c Consultation
		if err := json.Unmarshal(e.Doc, &c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, nil
}

type KVChatRepo struct {
	bucket kv.Bucket
}

func NewKVChatRepo(store kv.Store) *KVChatRepo {
	return &KVChatRepo{bucket: store.Bucket(chatBucket)}
}

func (r *KVChatRepo) Create(ctx context.Context, c *Chat) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	doc, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.bucket.Put(ctx, c.ID, doc)
}

func (r *KVChatRepo) GetByID(ctx context.Context, id string) (*Chat, error) {
	doc, err := r.bucket.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var c Chat
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *KVChatRepo) List(ctx context.Context) ([]*Chat, error) {
	entries, err := r.bucket.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Chat, 0, len(entries))
	for _, e := range entries {
		var c Chat
		if err := json.Unmarshal(e.Doc, &c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, nil
}
