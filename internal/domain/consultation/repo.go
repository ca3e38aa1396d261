package consultation

import "context"

type ConsultationRepository interface {
	Create(ctx context.Context, c *Consultation) error
	GetByID(ctx context.Context, id string) (*Consultation, error)
	List(ctx context.Context) ([]*Consultation, error)
}

type ChatRepository interface {
	Create(ctx context.Context, c *Chat) error
	GetByID(ctx context.Context, id string) (*Chat, error)
	List(ctx context.Context) ([]*Chat, error)
}
