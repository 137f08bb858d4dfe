package metrics

import (
	"testing"

	"csrfdemo/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveTransfer(t *testing.T) {
	blocked := Transfers.WithLabelValues("protected", "malicious", "blocked")
	allowed := Transfers.WithLabelValues("vulnerable", "malicious", "allowed")
	beforeBlocked := testutil.ToFloat64(blocked)
	beforeAllowed := testutil.ToFloat64(allowed)

	ObserveTransfer(models.TransferResult{Mode: models.ModeProtected, Origin: models.OriginMalicious, Allowed: false})
	ObserveTransfer(models.TransferResult{Mode: models.ModeVulnerable, Origin: models.OriginMalicious, Allowed: true})
	ObserveTransfer(models.TransferResult{Mode: models.ModeVulnerable, Origin: models.OriginMalicious, Allowed: true})

	assert.Equal(t, beforeBlocked+1, testutil.ToFloat64(blocked))
	assert.Equal(t, beforeAllowed+2, testutil.ToFloat64(allowed))
}
