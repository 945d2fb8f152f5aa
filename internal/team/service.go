package team

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neonmart/neonmart-backend/pkg/enums"
	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
	"github.com/neonmart/neonmart-backend/pkg/ids"
)

// Service exposes team membership queries and mutators. Authorization is
// enforced here at the mutator boundary, not in the HTTP layer: only the host
// may change membership, and the host itself can never be removed.
type Service interface {
	List(ctx context.Context) ([]Member, error)
	Add(ctx context.Context, actor *Member, input AddMemberInput) (*Member, error)
	Delete(ctx context.Context, actor *Member, id int64) error
}

type repository interface {
	Members(ctx context.Context) ([]Member, error)
	SaveMembers(ctx context.Context, members []Member) error
}

type service struct {
	repo repository
	ids  *ids.Generator
	now  func() time.Time
}

// NewService builds a team service backed by the provided snapshot repository.
func NewService(repo repository, gen *ids.Generator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("team repository is required")
	}
	if gen == nil {
		return nil, fmt.Errorf("id generator is required")
	}
	return &service{repo: repo, ids: gen, now: time.Now}, nil
}

// AddMemberInput carries the new member's credential and role.
type AddMemberInput struct {
	Username string
	Password string
	Role     string
}

func (s *service) List(ctx context.Context) ([]Member, error) {
	members, err := s.repo.Members(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}
	return members, nil
}

func (s *service) Add(ctx context.Context, actor *Member, input AddMemberInput) (*Member, error) {
	if err := requireHost(actor); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	role, err := enums.ParseTeamRole(input.Role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
	}
	// The host is created once by first-run provisioning; membership mutators
	// can only hand out the lesser roles, keeping the host unique.
	if role == enums.TeamRoleHost {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "host role cannot be assigned")
	}

	members, err := s.repo.Members(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}
	for _, existing := range members {
		if existing.Username == username {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already exists")
		}
	}

	member := Member{
		ID:        s.ids.Next(),
		Username:  username,
		Password:  input.Password,
		Role:      role,
		CreatedAt: s.now().UTC(),
		CreatedBy: actor.Username,
	}

	members = append(members, member)
	if err := s.repo.SaveMembers(ctx, members); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save team")
	}
	return &member, nil
}

func (s *service) Delete(ctx context.Context, actor *Member, id int64) error {
	if err := requireHost(actor); err != nil {
		return err
	}

	members, err := s.repo.Members(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load team")
	}

	remaining := make([]Member, 0, len(members))
	for _, m := range members {
		if m.ID == id && m.IsHost() {
			return pkgerrors.New(pkgerrors.CodeForbidden, "the host account cannot be removed")
		}
		if m.ID != id {
			remaining = append(remaining, m)
		}
	}

	// Absent ids fall through to a plain rewrite: idempotent success.
	if err := s.repo.SaveMembers(ctx, remaining); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save team")
	}
	return nil
}

func requireHost(actor *Member) error {
	if actor == nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if !actor.IsHost() {
		return pkgerrors.New(pkgerrors.CodeForbidden, "only the host can manage the team")
	}
	return nil
}
