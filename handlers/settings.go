package handlers

import (
	"csrfdemo/metrics"
	"csrfdemo/models"
	"csrfdemo/utils"
	"net/http"
)

// ModeHandler switches between the vulnerable and the protected site.
// A real switch logs the session out.
func (h *Handler) ModeHandler(w http.ResponseWriter, r *http.Request) {
	var in utils.ModeInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, changed, err := h.sim.SwitchMode(models.Mode(in.Mode))
	if err != nil {
		writeError(w, h.refused("set_mode", err), err.Error())
		return
	}
	if changed {
		metrics.ModeSwitches.WithLabelValues(string(state.Mode)).Inc()
		h.logger.Infow("mode switched", "mode", state.Mode)
	}

	writeJSON(w, http.StatusOK, state)
}
