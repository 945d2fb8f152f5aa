package controllers

import (
	"net/http"

	"github.com/neonmart/neonmart-backend/api/middleware"
	"github.com/neonmart/neonmart-backend/api/responses"
	"github.com/neonmart/neonmart-backend/api/validators"
	"github.com/neonmart/neonmart-backend/internal/team"
	"github.com/neonmart/neonmart-backend/pkg/logger"
)

type memberView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// Passwords never leave the service through this surface.
func toMemberView(m team.Member) memberView {
	return memberView{
		ID:        m.ID,
		Username:  m.Username,
		Role:      m.Role.String(),
		CreatedAt: m.CreatedAt.Format("1/2/2006, 3:04:05 PM"),
		CreatedBy: m.CreatedBy,
	}
}

func ListTeam(svc team.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		views := make([]memberView, 0, len(members))
		for _, m := range members {
			views = append(views, toMemberView(m))
		}

		responses.WriteSuccess(w, views)
	}
}

type addMemberRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

func AddTeamMember(svc team.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addMemberRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		member, err := svc.Add(r.Context(), actor, team.AddMemberInput{
			Username: payload.Username,
			Password: payload.Password,
			Role:     payload.Role,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, toMemberView(*member))
	}
}

func DeleteTeamMember(svc team.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "memberId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		if err := svc.Delete(r.Context(), actor, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
