package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/mvnwrap/internal/domain"
	"github.com/runoshun/mvnwrap/internal/usecase"
)

// Colors for the status line.
var (
	colorSuccess = lipgloss.Color("#00B894") // Green
	colorError   = lipgloss.Color("#D63031") // Red
	colorMuted   = lipgloss.Color("#636E72") // Gray
)

// Styles for the status line.
var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderStatus renders the line printed after a build.
func renderStatus(out *usecase.RunBuildOutput, err error) string {
	detail := mutedStyle.Render(fmt.Sprintf("(%s, run %s)", out.Duration.Round(time.Millisecond), domain.ShortRunID(out.RunID)))

	var failure *domain.Failure
	switch {
	case err == nil:
		return successStyle.Render("✓ BUILD OK") + " " + detail
	case errors.As(err, &failure):
		return errorStyle.Render("✗ "+failure.Error()) + " " + detail
	default:
		return errorStyle.Render("✗ could not start "+out.Invocation.Program) + " " + detail
	}
}
