package models

// Severity classifies a log entry
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityDanger, SeverityWarning:
		return true
	}
	return false
}

func (s Severity) String() string {
	return string(s)
}

// LogEntry is one simulated event shown in the request log
type LogEntry struct {
	Message  string   `json:"message"`
	Severity Severity `json:"type"`
	Time     string   `json:"time"`
}
