package handlers

import (
	"csrfdemo/metrics"
	"csrfdemo/models"
	"csrfdemo/utils"
	"net/http"
)

type transferResponse struct {
	Result models.TransferResult `json:"result"`
	State  models.State          `json:"state"`
}

// TransferHandler simulates a transfer sent from the bank's page or from
// the attacker's page. Omitting amount uses the origin's demo amount.
func (h *Handler) TransferHandler(w http.ResponseWriter, r *http.Request) {
	var in utils.TransferInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := in.Request()
	res, err := h.sim.SimulateTransfer(req.Origin, req.Amount)
	if err != nil {
		writeError(w, h.refused("transfer", err), err.Error())
		return
	}

	metrics.ObserveTransfer(res)
	h.logger.Infow("transfer simulated",
		"mode", res.Mode, "origin", res.Origin, "amount", res.Amount, "outcome", res.Outcome())
	writeJSON(w, http.StatusOK, transferResponse{Result: res, State: h.sim.State()})
}
