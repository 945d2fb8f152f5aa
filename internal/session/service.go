package session

import (
	"context"
	"fmt"
	"time"

	"github.com/neonmart/neonmart-backend/internal/team"
	"github.com/neonmart/neonmart-backend/pkg/config"
	"github.com/neonmart/neonmart-backend/pkg/enums"
	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
	"github.com/neonmart/neonmart-backend/pkg/ids"
)

const invalidCredentialsMessage = "invalid credentials"

// State is the identity resolver's position in its three-state machine.
type State string

const (
	// StateUninitialized means no host account exists yet (first run).
	StateUninitialized State = "uninitialized"
	// StateAnonymous means the host exists but no session is active.
	StateAnonymous State = "anonymous"
	// StateAuthenticated means a persisted session is bound to one member.
	StateAuthenticated State = "authenticated"
)

// Status reports the resolved state and, when authenticated, the member.
type Status struct {
	State  State        `json:"state"`
	Member *team.Member `json:"member,omitempty"`
}

// Service resolves and transitions the identity state machine.
type Service interface {
	// Resolve reports the current state from store contents alone.
	Resolve(ctx context.Context) (*Status, error)
	// EnsureHost runs first-run provisioning: when no host exists it creates
	// one with the bootstrap credential, marks the store provisioned and
	// persists a session for the new host. Reports whether it provisioned.
	EnsureHost(ctx context.Context) (*team.Member, bool, error)
	// Login matches the credential exactly (case-sensitive, no hashing) and
	// persists the session on success. Failures leave the store untouched.
	Login(ctx context.Context, username, password string) (*team.Member, error)
	// Logout clears the persisted session only.
	Logout(ctx context.Context) error
	// Current returns the active session member, or nil.
	Current(ctx context.Context) (*team.Member, error)
}

type teamRepository interface {
	Members(ctx context.Context) ([]team.Member, error)
	SaveMembers(ctx context.Context, members []team.Member) error
	HostProvisioned(ctx context.Context) (bool, error)
	SetHostProvisioned(ctx context.Context, provisioned bool) error
}

type sessionRepository interface {
	Current(ctx context.Context) (*team.Member, error)
	SaveCurrent(ctx context.Context, member *team.Member) error
	ClearCurrent(ctx context.Context) error
}

// ServiceParams bundles the dependencies required to build a session service.
type ServiceParams struct {
	TeamRepo    teamRepository
	SessionRepo sessionRepository
	IDs         *ids.Generator
	Bootstrap   config.BootstrapConfig
}

type service struct {
	team      teamRepository
	sessions  sessionRepository
	ids       *ids.Generator
	bootstrap config.BootstrapConfig
	now       func() time.Time
}

// NewService constructs a session service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.TeamRepo == nil {
		return nil, fmt.Errorf("team repository is required")
	}
	if params.SessionRepo == nil {
		return nil, fmt.Errorf("session repository is required")
	}
	if params.IDs == nil {
		return nil, fmt.Errorf("id generator is required")
	}
	return &service{
		team:      params.TeamRepo,
		sessions:  params.SessionRepo,
		ids:       params.IDs,
		bootstrap: params.Bootstrap,
		now:       time.Now,
	}, nil
}

func (s *service) Resolve(ctx context.Context) (*Status, error) {
	provisioned, err := s.team.HostProvisioned(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read provisioning flag")
	}
	if !provisioned {
		return &Status{State: StateUninitialized}, nil
	}

	current, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read session")
	}
	if current == nil {
		return &Status{State: StateAnonymous}, nil
	}
	return &Status{State: StateAuthenticated, Member: current}, nil
}

func (s *service) EnsureHost(ctx context.Context) (*team.Member, bool, error) {
	provisioned, err := s.team.HostProvisioned(ctx)
	if err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read provisioning flag")
	}
	if provisioned {
		return nil, false, nil
	}

	host := team.Member{
		ID:        s.ids.Next(),
		Username:  s.bootstrap.HostUsername,
		Password:  s.bootstrap.HostPassword,
		Role:      enums.TeamRoleHost,
		CreatedAt: s.now().UTC(),
	}

	members, err := s.team.Members(ctx)
	if err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}
	members = append(members, host)

	if err := s.team.SaveMembers(ctx, members); err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save team")
	}
	if err := s.team.SetHostProvisioned(ctx, true); err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set provisioning flag")
	}
	if err := s.sessions.SaveCurrent(ctx, &host); err != nil {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session")
	}
	return &host, true, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*team.Member, error) {
	members, err := s.team.Members(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}

	for i := range members {
		if members[i].Username == username && members[i].Password == password {
			match := members[i]
			if err := s.sessions.SaveCurrent(ctx, &match); err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save session")
			}
			return &match, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
}

func (s *service) Logout(ctx context.Context) error {
	if err := s.sessions.ClearCurrent(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear session")
	}
	return nil
}

func (s *service) Current(ctx context.Context) (*team.Member, error) {
	current, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read session")
	}
	return current, nil
}
