// Package handlers is the HTTP presentation layer of the demo. It only
// dispatches user actions into the simulator and renders its state; the
// simulated bank traffic never leaves the process.
package handlers

import (
	"csrfdemo/metrics"
	"csrfdemo/simulator"
	"errors"

	"go.uber.org/zap"
)

type Handler struct {
	sim    *simulator.Simulator
	logger *zap.SugaredLogger
}

func New(sim *simulator.Simulator, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{sim: sim, logger: logger}
}

// refused records a failed precondition and reports the matching status
func (h *Handler) refused(op string, err error) int {
	var perr *simulator.PreconditionError
	if errors.As(err, &perr) {
		metrics.PreconditionFailures.WithLabelValues(op).Inc()
		h.logger.Infow("operation refused", "op", op, "reason", perr.Err)
	} else {
		h.logger.Errorw("operation failed", "op", op, "error", err)
	}
	return errorStatus(err)
}
