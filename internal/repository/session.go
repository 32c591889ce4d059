package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
	"github.com/Nazarious-ucu/weatherbot-agent/internal/services/cache"
)

type sessionStore interface {
	Set(ctx context.Context, id string, value models.Session) error
	Get(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

// SessionRepository loads and saves UI state by session id.
type SessionRepository struct {
	store sessionStore
}

func NewSessionRepository(store sessionStore) *SessionRepository {
	return &SessionRepository{store: store}
}

// Load returns the stored session, or an empty one when id is unknown or expired.
func (r *SessionRepository) Load(ctx context.Context, id string) (models.Session, error) {
	if id == "" {
		return models.Session{}, nil
	}
	s, err := r.store.Get(ctx, id)
	if errors.Is(err, cache.ErrNotFound) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

func (r *SessionRepository) Save(ctx context.Context, id string, s models.Session) error {
	if err := r.store.Set(ctx, id, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
