package simulator

import (
	"testing"
	"time"

	"csrfdemo/models"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	ticks := []time.Time{
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 9, 0, 1, 0, time.UTC),
	}
	i := 0
	rec := NewRecorder(func() time.Time {
		tt := ticks[i]
		i++
		return tt
	})

	rec.Append("first", models.SeverityInfo)
	got := rec.Append("second", models.SeverityWarning)

	assert.Equal(t, models.LogEntry{Message: "second", Severity: models.SeverityWarning, Time: "09:00:01"}, got)
	assert.Equal(t, 2, rec.Len())
	entries := rec.Entries()
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "09:00:00", entries[0].Time)

	entries[0].Message = "changed"
	assert.Equal(t, "first", rec.Entries()[0].Message, "Entries must return a copy")

	rec.Clear()
	assert.Zero(t, rec.Len())
	assert.NotNil(t, rec.Entries())
}

func TestModeSelector(t *testing.T) {
	s := NewModeSelector(models.Mode(""))
	assert.Equal(t, models.ModeVulnerable, s.Mode())

	changed, err := s.Select(models.ModeVulnerable)
	assert.NoError(t, err)
	assert.False(t, changed)

	changed, err = s.Select(models.ModeProtected)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, models.ModeProtected, s.Mode())

	_, err = s.Select(models.Mode("x"))
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, models.ModeProtected, s.Mode())
}
