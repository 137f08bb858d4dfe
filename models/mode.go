package models

import "fmt"

// Mode selects which defense narrative the simulation runs
type Mode string

const (
	ModeVulnerable Mode = "vulnerable"
	ModeProtected  Mode = "protected"
)

func (m Mode) Valid() bool {
	return m == ModeVulnerable || m == ModeProtected
}

func (m Mode) String() string {
	return string(m)
}

// ParseMode converts user input into a Mode
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode %q", s)
	}
	return m, nil
}
