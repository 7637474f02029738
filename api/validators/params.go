package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

// ParseIDParam reads a positive integer path parameter.
func ParseIDParam(r *http.Request, key string) (uint, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, pkgerrors.Validation("invalid path parameter", []pkgerrors.FieldError{
			{Field: key, Message: "must be a positive integer"},
		})
	}
	return uint(value), nil
}

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Validation("invalid query parameter", []pkgerrors.FieldError{
			{Field: key, Message: "must be numeric"},
		})
	}
	if value < min || value > max {
		return 0, pkgerrors.Validation("invalid query parameter", []pkgerrors.FieldError{
			{Field: key, Message: "must be between " + strconv.Itoa(min) + " and " + strconv.Itoa(max)},
		})
	}
	return value, nil
}
