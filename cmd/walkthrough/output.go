package main

import (
	"csrfdemo/models"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	dangerColor  = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeveritySuccess:
		return successColor
	case models.SeverityDanger:
		return dangerColor
	case models.SeverityWarning:
		return warningColor
	default:
		return infoColor
	}
}

// outcomeColor is red when an attack got through and green when the bank
// did the right thing.
func outcomeColor(res models.TransferResult) *color.Color {
	malicious := res.Origin == models.OriginMalicious
	switch {
	case res.Allowed && malicious:
		return dangerColor
	case res.Allowed, malicious:
		return successColor
	default:
		return warningColor
	}
}

func printHeader(w io.Writer, title string) {
	headerColor.Fprintln(w, title)
	headerColor.Fprintln(w, strings.Repeat("=", len(title)))
}

func printEntries(w io.Writer, entries []models.LogEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "[%s] ", e.Time)
		severityColor(e.Severity).Fprintln(w, e.Message)
	}
}

func printState(w io.Writer, state models.State) {
	status := "logged out"
	if state.LoggedIn {
		status = "logged in"
	}
	fmt.Fprintf(w, "mode=%s session=%s balance=$%d", state.Mode, status, state.Balance)
	if state.CSRFToken != "" {
		fmt.Fprintf(w, " token=%s", state.CSRFToken)
	}
	fmt.Fprintln(w)
}
