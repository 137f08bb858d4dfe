package simulator

import (
	"testing"

	"csrfdemo/models"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	const token = "csrf-ab12cd34e"

	tests := []struct {
		name    string
		mode    models.Mode
		origin  models.Origin
		token   string
		amount  int64
		allowed bool
		steps   []Step
	}{
		{
			name:    "Vulnerable legitimate transfer goes through",
			mode:    models.ModeVulnerable,
			origin:  models.OriginLegitimate,
			amount:  100,
			allowed: true,
			steps: []Step{
				{"Legitimate request from YourBank.com", models.SeverityInfo},
				{"Cookie: session=abc123 (sent automatically)", models.SeverityInfo},
				{"Transfer successful! $100 sent", models.SeveritySuccess},
			},
		},
		{
			name:    "Vulnerable malicious transfer goes through",
			mode:    models.ModeVulnerable,
			origin:  models.OriginMalicious,
			amount:  500,
			allowed: true,
			steps: []Step{
				{"Malicious request from EvilSite.com", models.SeverityDanger},
				{"Cookie: session=abc123 (browser sends automatically!)", models.SeverityWarning},
				{"No CSRF protection - request looks legitimate!", models.SeverityWarning},
				{"Transfer successful! You just got hacked!", models.SeverityDanger},
			},
		},
		{
			name:    "Protected legitimate transfer is validated",
			mode:    models.ModeProtected,
			origin:  models.OriginLegitimate,
			token:   token,
			amount:  100,
			allowed: true,
			steps: []Step{
				{"Legitimate request from YourBank.com", models.SeverityInfo},
				{"Cookie: session=abc123 (sent automatically)", models.SeverityInfo},
				{"Header: X-CSRF-TOKEN=csrf-ab12cd34e (added by your JS)", models.SeverityInfo},
				{"Server validated: Cookie token matches header token", models.SeveritySuccess},
				{"Transfer successful! $100 sent", models.SeveritySuccess},
			},
		},
		{
			name:    "Protected malicious transfer is blocked",
			mode:    models.ModeProtected,
			origin:  models.OriginMalicious,
			token:   token,
			amount:  500,
			allowed: false,
			steps: []Step{
				{"Malicious request from EvilSite.com", models.SeverityDanger},
				{"Cookie: session=abc123 (browser sends automatically!)", models.SeverityWarning},
				{"Header: X-CSRF-TOKEN=missing (attacker can't read cookie!)", models.SeverityDanger},
				{"Server rejected: No CSRF token in header", models.SeverityDanger},
				{"Transfer blocked!", models.SeveritySuccess},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.mode, tt.origin, tt.token, tt.amount)
			assert.Equal(t, tt.allowed, got.Allowed)
			assert.Equal(t, tt.steps, got.Steps)
		})
	}
}

func TestDecideProtectedWithoutSessionTokenRejects(t *testing.T) {
	got := Decide(models.ModeProtected, models.OriginLegitimate, "", 100)

	assert.False(t, got.Allowed)
	assert.Equal(t, "Transfer blocked!", got.Steps[len(got.Steps)-1].Message)
}

func TestForgeOnlyLegitimateOriginCarriesToken(t *testing.T) {
	legit := forge(models.OriginLegitimate, "csrf-x")
	evil := forge(models.OriginMalicious, "csrf-x")

	assert.Equal(t, "session=abc123", legit.cookie)
	assert.Equal(t, "session=abc123", evil.cookie)
	assert.Equal(t, "csrf-x", legit.headerToken)
	assert.Empty(t, evil.headerToken)
}
