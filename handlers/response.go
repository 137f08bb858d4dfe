package handlers

import (
	"csrfdemo/simulator"
	"encoding/json"
	"errors"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// errorStatus maps simulator errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, simulator.ErrNotLoggedIn),
		errors.Is(err, simulator.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, simulator.ErrInvalidAmount),
		errors.Is(err, simulator.ErrUnknownMode),
		errors.Is(err, simulator.ErrUnknownOrigin):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
