package models

// Session struct for the simulated bank session
type Session struct {
	LoggedIn  bool   `json:"logged_in"`
	Balance   int64  `json:"balance"`
	CSRFToken string `json:"csrf_token,omitempty"`
}

// HasToken reports whether a CSRF token is currently issued
func (s Session) HasToken() bool {
	return s.CSRFToken != ""
}
