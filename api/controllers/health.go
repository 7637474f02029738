package controllers

import (
	"net/http"

	"github.com/angelmondragon/opsboard-backend/api/responses"
	"github.com/angelmondragon/opsboard-backend/pkg/config"
	"github.com/angelmondragon/opsboard-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
	"github.com/angelmondragon/opsboard-backend/pkg/logger"
	"github.com/angelmondragon/opsboard-backend/pkg/redis"
)

const envHeader = "X-Opsboard-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the database and, when configured, redis.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		if dbP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "database unavailable"))
			return
		}
		if err := dbP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
			return
		}

		checks := map[string]string{"status": "ready", "database": "ok"}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
			checks["redis"] = "ok"
		}
		responses.WriteSuccess(w, checks)
	}
}
