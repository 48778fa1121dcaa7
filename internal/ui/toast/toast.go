// Package toast renders short-lived notifications.
package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/dragboard/internal/types"
	"github.com/riordanpawley/dragboard/internal/ui/styles"
)

// MaxVisible caps how many toasts are stacked at once
const MaxVisible = 3

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render renders the newest toasts stacked vertically, right aligned.
// Returns empty string if no toasts to display.
func (r *ToastRenderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	if len(toasts) > MaxVisible {
		toasts = toasts[len(toasts)-MaxVisible:]
	}

	toastWidth := min(width/3, 40)
	if toastWidth < 10 {
		toastWidth = 10
	}

	var rendered []string
	for _, t := range toasts {
		rendered = append(rendered, r.styleForLevel(t.Level).Width(toastWidth).Render(t.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
