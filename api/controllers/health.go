package controllers

import (
	"net/http"

	"github.com/neonmart/neonmart-backend/api/responses"
	"github.com/neonmart/neonmart-backend/pkg/config"
	pkgerrors "github.com/neonmart/neonmart-backend/pkg/errors"
	"github.com/neonmart/neonmart-backend/pkg/kv"
	"github.com/neonmart/neonmart-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-NeonMart-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness once the snapshot store answers a ping.
func HealthReady(cfg *config.Config, logg *logger.Logger, store kv.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-NeonMart-Env", cfg.App.Env)

		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "snapshot store unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
