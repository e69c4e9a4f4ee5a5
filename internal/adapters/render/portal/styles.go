package portal

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

const accentColor = lipgloss.Color("69")

type styles struct {
	title     lipgloss.Style
	tagline   lipgloss.Style
	button    lipgloss.Style
	input     lipgloss.Style
	connected lipgloss.Style
	heading   lipgloss.Style
	loading   lipgloss.Style
	message   lipgloss.Style
	label     lipgloss.Style
	empty     lipgloss.Style
	alert     lipgloss.Style
	help      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		tagline:   lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("252")),
		button:    lipgloss.NewStyle().MarginTop(1).Padding(0, 2).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")),
		input:     lipgloss.NewStyle().MarginTop(1).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("244")).Padding(0, 1),
		connected: lipgloss.NewStyle().MarginTop(1).Padding(0, 1).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("189")),
		heading:   lipgloss.NewStyle().MarginTop(1).Bold(true),
		loading:   lipgloss.NewStyle().MarginTop(1).Foreground(accentColor),
		message:   lipgloss.NewStyle().MarginTop(1).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("238")).PaddingLeft(1),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:     lipgloss.NewStyle().Faint(true),
		alert:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		help:      lipgloss.NewStyle().MarginTop(1).Faint(true),
	}
}

func newMiningSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(accentColor)),
	)
}
