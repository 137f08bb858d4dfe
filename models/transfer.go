package models

import "fmt"

// Origin tags the site a transfer request was sent from
type Origin string

const (
	OriginLegitimate Origin = "legitimate"
	OriginMalicious  Origin = "malicious"
)

// Amounts sent by the demo transfer buttons
const (
	DefaultLegitimateAmount int64 = 100
	DefaultMaliciousAmount  int64 = 500
)

func (o Origin) Valid() bool {
	return o == OriginLegitimate || o == OriginMalicious
}

func (o Origin) String() string {
	return string(o)
}

// DefaultAmount is the amount a presenter sends when none is given
func (o Origin) DefaultAmount() int64 {
	if o == OriginMalicious {
		return DefaultMaliciousAmount
	}
	return DefaultLegitimateAmount
}

// ParseOrigin converts user input into an Origin
func ParseOrigin(s string) (Origin, error) {
	o := Origin(s)
	if !o.Valid() {
		return "", fmt.Errorf("unknown origin %q", s)
	}
	return o, nil
}

// TransferRequest is the ephemeral request handed to the transfer simulator
type TransferRequest struct {
	Origin Origin `json:"origin"`
	Amount int64  `json:"amount"`
}

// TransferResult describes how a simulated transfer resolved
type TransferResult struct {
	Mode    Mode       `json:"mode"`
	Origin  Origin     `json:"origin"`
	Amount  int64      `json:"amount"`
	Allowed bool       `json:"allowed"`
	Balance int64      `json:"balance"`
	Entries []LogEntry `json:"entries"`
}

// Outcome is the metrics label for the result
func (r TransferResult) Outcome() string {
	if r.Allowed {
		return "allowed"
	}
	return "blocked"
}
