package simulator

import "csrfdemo/models"

// ModeSelector holds the active simulation mode
type ModeSelector struct {
	mode models.Mode
}

func NewModeSelector(initial models.Mode) *ModeSelector {
	if !initial.Valid() {
		initial = models.ModeVulnerable
	}
	return &ModeSelector{mode: initial}
}

func (s *ModeSelector) Mode() models.Mode {
	return s.mode
}

// Select switches to mode and reports whether anything changed
func (s *ModeSelector) Select(mode models.Mode) (bool, error) {
	if !mode.Valid() {
		return false, ErrUnknownMode
	}
	if mode == s.mode {
		return false, nil
	}
	s.mode = mode
	return true, nil
}
