package handlers

import (
	"csrfdemo/metrics"
	"net/http"
)

// LoginHandler opens a simulated session under the active mode
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	state := h.sim.Login()

	metrics.Logins.WithLabelValues(string(state.Mode)).Inc()
	h.logger.Infow("login", "mode", state.Mode, "token_issued", state.CSRFToken != "")
	writeJSON(w, http.StatusOK, state)
}

// LogOutHandler resets the simulated session
func (h *Handler) LogOutHandler(w http.ResponseWriter, r *http.Request) {
	h.sim.Logout()
	h.logger.Infow("logout")
	writeJSON(w, http.StatusOK, h.sim.State())
}
