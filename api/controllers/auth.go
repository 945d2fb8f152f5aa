package controllers

import (
	"net/http"

	"github.com/neonmart/neonmart-backend/api/responses"
	"github.com/neonmart/neonmart-backend/api/validators"
	"github.com/neonmart/neonmart-backend/internal/session"
	"github.com/neonmart/neonmart-backend/pkg/logger"
)

type sessionView struct {
	State  string      `json:"state"`
	Member *memberView `json:"member,omitempty"`
}

func toSessionView(status *session.Status) sessionView {
	view := sessionView{State: string(status.State)}
	if status.Member != nil {
		m := toMemberView(*status.Member)
		view.Member = &m
	}
	return view
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func AuthLogin(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		member, err := svc.Login(r.Context(), payload.Username, payload.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithActor(r.Context(), member.Username)
			logg.Info(ctx, "auth.login")
		}

		view := toMemberView(*member)
		responses.WriteSuccess(w, view)
	}
}

func AuthLogout(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// AuthSession reports the resolver's current state without mutating anything.
func AuthSession(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.Resolve(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, toSessionView(status))
	}
}
