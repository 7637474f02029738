package controllers

import (
	"net/http"

	"github.com/angelmondragon/opsboard-backend/api/responses"
	"github.com/angelmondragon/opsboard-backend/internal/seed"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
	"github.com/angelmondragon/opsboard-backend/pkg/logger"
)

// AdminClearData wipes every business table. Users are kept.
func AdminClearData(svc seed.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seed service unavailable"))
			return
		}
		if err := svc.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, seed.ClearedMessage)
	}
}

func AdminSeedData(svc seed.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "seed service unavailable"))
			return
		}
		result, err := svc.Seed(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}
