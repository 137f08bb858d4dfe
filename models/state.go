package models

// State is the observable surface of the simulation
type State struct {
	LoggedIn  bool       `json:"logged_in"`
	Balance   int64      `json:"balance"`
	Mode      Mode       `json:"mode"`
	CSRFToken string     `json:"csrf_token,omitempty"`
	Log       []LogEntry `json:"log"`
}
