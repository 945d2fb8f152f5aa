package session

import (
	"context"

	"github.com/neonmart/neonmart-backend/internal/team"
	"github.com/neonmart/neonmart-backend/pkg/kv"
)

// Repository persists the single active session: the authenticated member, or
// nothing. The session survives restarts until an explicit logout.
type Repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Current returns the persisted session member, or nil when no session exists.
func (r *Repository) Current(ctx context.Context) (*team.Member, error) {
	var member team.Member
	found, err := kv.Read(ctx, r.store, kv.CollectionCurrentUser, &member)
	if err != nil {
		return nil, err
	}
	if !found || member.Username == "" {
		return nil, nil
	}
	return &member, nil
}

// SaveCurrent persists the session member.
func (r *Repository) SaveCurrent(ctx context.Context, member *team.Member) error {
	return kv.Write(ctx, r.store, kv.CollectionCurrentUser, member)
}

// ClearCurrent removes the persisted session; credentials are untouched.
func (r *Repository) ClearCurrent(ctx context.Context) error {
	return r.store.Delete(ctx, kv.CollectionCurrentUser)
}
