package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model. It only reads the current snapshot.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{appTitleStyle.Render("Water Quality Suite"), m.tabsView()}
	if m.tab == tabProposal {
		parts = append(parts, m.proposalView())
	} else {
		parts = append(parts, m.analysisView())
	}
	if !m.notice.Empty() {
		parts = append(parts, toastStyle(m.notice.Kind).Render(toastIcon[m.notice.Kind]+m.notice.Text))
	}
	parts = append(parts, "", m.help.View(m.helpKeys()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) helpKeys() help.KeyMap {
	switch {
	case m.tab == tabProposal:
		return proposalKeys(m.keys)
	case m.focus == focusList:
		return listKeys(m.keys)
	default:
		return inputKeys(m.keys)
	}
}

func (m *Model) tabsView() string {
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = inactiveTabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) analysisView() string {
	left := lipgloss.JoinVertical(lipgloss.Left, m.inputView(), m.listView())
	right := m.resultsView()
	if m.width >= minSplitWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, left, right)
}

func (m *Model) inputView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("1. Add Parameters"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  ‹ %s ›\n", labelStyle.Render("Parameter"), paramStyle.Render(m.snap.Selected.String()))
	fmt.Fprintf(&b, "%s  %s", labelStyle.Render("Lab Value"), m.value.View())

	style := paneStyle
	if m.focus == focusInput {
		style = focusedPaneStyle
	}
	return style.Render(b.String())
}

func (m *Model) listView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Current List (%d)", m.snap.Len())))
	b.WriteString("\n")
	if m.snap.Empty() {
		b.WriteString(placeholderStyle.Render("No parameters added yet."))
	} else {
		for i, entry := range m.snap.Entries {
			mark := "[ ]"
			if m.marked[i] {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s", mark, entry.String())
			if m.focus == focusList && i == m.cursor {
				b.WriteString(cursorRowStyle.Render("> " + line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render("[ Clear All List ] ctrl+x"))
	}

	style := paneStyle
	if m.focus == focusList {
		style = focusedPaneStyle
	}
	return style.Render(b.String())
}

func (m *Model) resultsView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("2. Analysis Results"))
	b.WriteString("\n")
	if len(m.findings) == 0 {
		b.WriteString(placeholderStyle.Render("Add parameters, then press ctrl+r to run analysis."))
	} else {
		b.WriteString(m.results.View())
		if m.reportPath != "" {
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Report: ") + pathStyle.Render(m.reportPath))
		}
	}
	return paneStyle.Render(b.String())
}

func (m *Model) proposalView() string {
	parts := []string{headerStyle.Render("Water Supply Proposal"), m.form.View()}
	if m.proposalPath != "" {
		parts = append(parts, labelStyle.Render("Proposal: ")+pathStyle.Render(m.proposalPath))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
