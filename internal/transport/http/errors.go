package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"accounts/internal/domain"
	"accounts/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{
		"error": "cannot authenticate account, check credentials",
	})
}

// writeError maps pipeline outcomes to status codes: validation failures to
// 422 with the full field error list, opaque auth failures to 401, owner-
// scoped misses to 404, anything else to a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var vf *validation.Failure
	switch {
	case errors.As(err, &vf):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": vf.Errors})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeUnauthorized(w)
	case errors.Is(err, domain.ErrDeviceNotFound), errors.Is(err, domain.ErrAccountNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
