package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielpatrickdp/soulscan/internal/report"
)

// #region styles

var (
	eliteColor = lipgloss.Color("#5FAF87")
	passColor  = lipgloss.Color("#D7AF5F")
	failColor  = lipgloss.Color("#D75F5F")
	mutedColor = lipgloss.Color("#8A8A8A")

	titleStyle    = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Bold(true).Width(10)
	scoreStyle    = lipgloss.NewStyle().Width(4).Align(lipgloss.Right)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	majorStyle    = lipgloss.NewStyle().Foreground(failColor).Width(6)
	minorStyle    = lipgloss.NewStyle().Foreground(passColor).Width(6)
	infoStyle     = lipgloss.NewStyle().Foreground(eliteColor).Width(6)
)

func verdictStyle(v string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch report.Verdict(v) {
	case report.VerdictElite:
		return s.Foreground(eliteColor)
	case report.VerdictPass:
		return s.Foreground(passColor)
	}
	return s.Foreground(failColor)
}

func severityStyle(sev string) lipgloss.Style {
	switch sev {
	case "major":
		return majorStyle
	case "minor":
		return minorStyle
	}
	return infoStyle
}

// #endregion styles

// #region render

// renderReport formats a report for the terminal, categories in fixed order.
func renderReport(r report.Report) string {
	e := r.Export()
	var b strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("soulscan %d", e.OverallScore)),
		verdictStyle(e.Verdict).Render(e.Verdict),
		mutedStyle.Render(fmt.Sprintf("%d files · run %s", e.Files, r.RunID)),
	)
	b.WriteString(header + "\n\n")

	for _, c := range e.Categories {
		fmt.Fprintf(&b, "  %s%s  %s\n",
			categoryStyle.Render(c.Name),
			scoreStyle.Render(fmt.Sprintf("%d", c.RawScore)),
			mutedStyle.Render(fmt.Sprintf("weight %.2f", c.Weight)),
		)
		for _, s := range c.Signals {
			line := fmt.Sprintf("    %s%+4d  %s", severityStyle(s.Severity).Render(s.Severity), s.Delta, s.Message)
			if s.Location != "" {
				line += "  " + mutedStyle.Render(s.Location)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// #endregion render
