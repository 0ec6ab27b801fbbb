package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/taskhub-server/internal/logger"
	"github.com/dtroode/taskhub-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, errorResponse{Error: msg})
}

// handleError is the single translator from domain failures to HTTP status
// codes. Unclassified failures are logged in full and reported with a
// generic message so backend detail never reaches the caller.
func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, model.ErrConflict):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		log.Error("handler: unclassified failure",
			"error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
