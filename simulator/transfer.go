package simulator

import (
	"csrfdemo/models"
	"csrfdemo/utils"
	"errors"
	"fmt"
)

// Step is one narrated event of a simulated transfer
type Step struct {
	Message  string
	Severity models.Severity
}

// Decision is the full narrative of a transfer and whether the bank
// executed it.
type Decision struct {
	Steps   []Step
	Allowed bool
}

func (d *Decision) add(severity models.Severity, format string, args ...any) {
	d.Steps = append(d.Steps, Step{Message: fmt.Sprintf(format, args...), Severity: severity})
}

// bankRequest is what the simulated bank server receives
type bankRequest struct {
	cookie      string
	headerToken string
}

// forge builds the request a page on origin is able to send. The browser
// attaches the session cookie no matter who asks; only the bank's own
// script can read the token and put it in the header.
func forge(origin models.Origin, sessionToken string) bankRequest {
	req := bankRequest{cookie: utils.SessionCookie}
	if origin == models.OriginLegitimate {
		req.headerToken = sessionToken
	}
	return req
}

// Decide maps (mode, origin) to the narrated outcome of a transfer of
// amount. sessionToken is the token issued at login, empty in vulnerable
// mode. Decide is pure.
func Decide(mode models.Mode, origin models.Origin, sessionToken string, amount int64) Decision {
	var d Decision
	req := forge(origin, sessionToken)

	if origin == models.OriginMalicious {
		d.add(models.SeverityDanger, "Malicious request from EvilSite.com")
		d.add(models.SeverityWarning, "Cookie: %s (browser sends automatically!)", req.cookie)
	} else {
		d.add(models.SeverityInfo, "Legitimate request from YourBank.com")
		d.add(models.SeverityInfo, "Cookie: %s (sent automatically)", req.cookie)
	}

	if mode != models.ModeProtected {
		d.Allowed = true
		if origin == models.OriginMalicious {
			d.add(models.SeverityWarning, "No CSRF protection - request looks legitimate!")
			d.add(models.SeverityDanger, "Transfer successful! You just got hacked!")
		} else {
			d.add(models.SeveritySuccess, "Transfer successful! $%d sent", amount)
		}
		return d
	}

	if req.headerToken == "" {
		d.add(models.SeverityDanger, "Header: %s=missing (attacker can't read cookie!)", utils.CSRFHeader)
	} else {
		d.add(models.SeverityInfo, "Header: %s=%s (added by your JS)", utils.CSRFHeader, req.headerToken)
	}

	if err := utils.AuthorizeCSRF(req.headerToken, sessionToken); err != nil {
		if errors.Is(err, utils.ErrMissingCSRFToken) {
			d.add(models.SeverityDanger, "Server rejected: No CSRF token in header")
		} else {
			d.add(models.SeverityDanger, "Server rejected: CSRF token does not match")
		}
		d.add(models.SeveritySuccess, "Transfer blocked!")
		return d
	}

	d.Allowed = true
	d.add(models.SeveritySuccess, "Server validated: Cookie token matches header token")
	d.add(models.SeveritySuccess, "Transfer successful! $%d sent", amount)
	return d
}
