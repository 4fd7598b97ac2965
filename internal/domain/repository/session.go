package repository

import (
	"context"

	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// SessionRepository persists session snapshots keyed by customer id. It backs
// the optional durable variant of the session store; the in-memory store works
// without one.
type SessionRepository interface {
	Load(ctx context.Context, customerID string) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
	Delete(ctx context.Context, customerID string) error
}
