package handlers

import "net/http"

// StateHandler renders the observable simulation state
func (h *Handler) StateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sim.State())
}
