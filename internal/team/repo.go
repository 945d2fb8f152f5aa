package team

import (
	"context"

	"github.com/neonmart/neonmart-backend/pkg/kv"
)

// Repository reads and replaces the team snapshot and the host-provisioned flag.
type Repository struct {
	store kv.Store
}

func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Members returns the current team snapshot; an empty team is the default.
func (r *Repository) Members(ctx context.Context) ([]Member, error) {
	var members []Member
	found, err := kv.Read(ctx, r.store, kv.CollectionTeam, &members)
	if err != nil {
		return nil, err
	}
	if !found || members == nil {
		return []Member{}, nil
	}
	return members, nil
}

// SaveMembers replaces the whole team snapshot.
func (r *Repository) SaveMembers(ctx context.Context, members []Member) error {
	return kv.Write(ctx, r.store, kv.CollectionTeam, members)
}

// HostProvisioned reports whether first-run provisioning already happened.
func (r *Repository) HostProvisioned(ctx context.Context) (bool, error) {
	var provisioned bool
	found, err := kv.Read(ctx, r.store, kv.CollectionHostSet, &provisioned)
	if err != nil {
		return false, err
	}
	return found && provisioned, nil
}

// SetHostProvisioned persists the first-run flag.
func (r *Repository) SetHostProvisioned(ctx context.Context, provisioned bool) error {
	return kv.Write(ctx, r.store, kv.CollectionHostSet, provisioned)
}
