package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neonmart/neonmart-backend/internal/team"
	"github.com/neonmart/neonmart-backend/pkg/enums"
	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
	"github.com/neonmart/neonmart-backend/pkg/types"
)

type stubSessions struct {
	member *team.Member
	err    error
}

func (s *stubSessions) Current(context.Context) (*team.Member, error) {
	return s.member, s.err
}

func TestRequireActorRejectsAnonymous(t *testing.T) {
	handler := RequireActor(&stubSessions{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without an actor")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeUnauthorized) {
		t.Fatalf("unexpected code %q", envelope.Error.Code)
	}
}

func TestRequireActorInjectsMember(t *testing.T) {
	member := &team.Member{ID: 1, Username: "admin", Role: enums.TeamRoleHost}

	var seen *team.Member
	handler := RequireActor(&stubSessions{member: member}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if seen == nil || seen.Username != "admin" {
		t.Fatalf("expected actor in context, got %+v", seen)
	}
}
