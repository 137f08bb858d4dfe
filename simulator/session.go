package simulator

import (
	"csrfdemo/models"
	"csrfdemo/utils"
)

// SessionManager tracks login state, balance and the CSRF token.
// The token exists only for a logged-in session opened in protected mode.
type SessionManager struct {
	session        models.Session
	initialBalance int64
	newToken       func() string
	log            *Recorder
}

func NewSessionManager(initialBalance int64, newToken func() string, log *Recorder) *SessionManager {
	if newToken == nil {
		newToken = utils.GenerateCSRFToken
	}
	m := &SessionManager{
		initialBalance: initialBalance,
		newToken:       newToken,
		log:            log,
	}
	m.Logout()
	return m
}

// Login opens a fresh session. Calling it on a live session starts over.
func (m *SessionManager) Login(mode models.Mode) {
	m.session = models.Session{LoggedIn: true, Balance: m.initialBalance}
	m.log.Clear()

	if mode != models.ModeProtected {
		m.log.Append("Login successful! (No CSRF protection)", models.SeveritySuccess)
		return
	}

	token := m.newToken()
	if token == "" {
		token = utils.GenerateCSRFToken()
	}
	m.session.CSRFToken = token
	m.log.Append("Login successful! CSRF token generated: "+token, models.SeveritySuccess)
}

// Logout resets the session to its defaults and clears the log
func (m *SessionManager) Logout() {
	m.session = models.Session{Balance: m.initialBalance}
	m.log.Clear()
}

func (m *SessionManager) Session() models.Session {
	return m.session
}

// debit is only called after the transfer decision allowed the request
func (m *SessionManager) debit(amount int64) {
	m.session.Balance -= amount
}
