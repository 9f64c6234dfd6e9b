package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/editor"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}

	appTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2)

	headerStyle      = lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1)
	labelStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	paramStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	placeholderStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	rowStyle       = lipgloss.NewStyle().PaddingLeft(2)
	cursorRowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(colorPrimary)

	pathStyle = lipgloss.NewStyle().Foreground(colorInfo).Underline(true)
)

var findingStyles = map[domain.Severity]lipgloss.Style{
	domain.SeverityTitle:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
	domain.SeveritySection: lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1),
	domain.SeverityPass:    lipgloss.NewStyle().Foreground(colorSuccess),
	domain.SeverityFail:    lipgloss.NewStyle().Bold(true).Foreground(colorError),
	domain.SeverityInfo:    lipgloss.NewStyle().Foreground(colorInfo),
	domain.SeverityPlain:   lipgloss.NewStyle(),
}

var findingPrefix = map[domain.Severity]string{
	domain.SeverityPass: "✓ ",
	domain.SeverityFail: "✗ ",
	domain.SeverityInfo: "ℹ ",
}

func renderFinding(f domain.Finding) string {
	return findingStyles[f.Severity].Render(findingPrefix[f.Severity] + f.Text)
}

func toastStyle(kind editor.NoticeKind) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1).MarginTop(1)
	switch kind {
	case editor.NoticeSuccess:
		return base.Foreground(colorSuccess)
	case editor.NoticeWarning:
		return base.Foreground(colorWarning)
	case editor.NoticeError:
		return base.Foreground(colorError)
	default:
		return base.Foreground(colorInfo)
	}
}

var toastIcon = map[editor.NoticeKind]string{
	editor.NoticeSuccess: "✅ ",
	editor.NoticeWarning: "⚠️ ",
	editor.NoticeError:   "❌ ",
	editor.NoticeInfo:    "ℹ ",
}
