package simulator

import (
	"csrfdemo/models"
	"time"
)

// TimeLayout is the wall-clock format stamped on every entry
const TimeLayout = "15:04:05"

// Recorder is the append-only request log of one session. It is not safe
// for concurrent use; Simulator serialises access to it.
type Recorder struct {
	entries []models.LogEntry
	now     func() time.Time
}

func NewRecorder(now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{now: now}
}

// Append records message with severity and returns the stored entry
func (r *Recorder) Append(message string, severity models.Severity) models.LogEntry {
	entry := models.LogEntry{
		Message:  message,
		Severity: severity,
		Time:     r.now().Format(TimeLayout),
	}
	r.entries = append(r.entries, entry)
	return entry
}

// Entries returns a copy of the log in recording order
func (r *Recorder) Entries() []models.LogEntry {
	out := make([]models.LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Recorder) Len() int {
	return len(r.entries)
}

func (r *Recorder) Clear() {
	r.entries = nil
}
