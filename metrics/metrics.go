// Package metrics exposes Prometheus counters for the demo server.
package metrics

import (
	"csrfdemo/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Transfers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csrfdemo_transfers_total",
			Help: "Total number of simulated transfers by outcome",
		},
		[]string{"mode", "origin", "outcome"},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csrfdemo_logins_total",
			Help: "Total number of simulated logins",
		},
		[]string{"mode"},
	)

	ModeSwitches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csrfdemo_mode_switches_total",
			Help: "Total number of mode switches by target mode",
		},
		[]string{"mode"},
	)

	PreconditionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "csrfdemo_precondition_failures_total",
			Help: "Total number of operations refused because a precondition failed",
		},
		[]string{"op"},
	)
)

// ObserveTransfer records the outcome of one simulated transfer
func ObserveTransfer(res models.TransferResult) {
	Transfers.WithLabelValues(string(res.Mode), string(res.Origin), res.Outcome()).Inc()
}
