package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorAmber     = lipgloss.Color("#D9A441")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginTop(1).
			MarginBottom(1)

	resultTitleStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	resultSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAmber).
				Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	dateStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ████████╗██╗███╗   ███╗███████╗ █████╗ ██████╗  ██████╗██╗  ██╗██╗██╗   ██╗███████╗
  ╚══██╔══╝██║████╗ ████║██╔════╝██╔══██╗██╔══██╗██╔════╝██║  ██║██║██║   ██║██╔════╝
     ██║   ██║██╔████╔██║█████╗  ███████║██████╔╝██║     ███████║██║██║   ██║█████╗
     ██║   ██║██║╚██╔╝██║██╔══╝  ██╔══██║██╔══██╗██║     ██╔══██║██║╚██╗ ██╔╝██╔══╝
     ██║   ██║██║ ╚═╝ ██║███████╗██║  ██║██║  ██║╚██████╗██║  ██║██║ ╚████╔╝ ███████╗
     ╚═╝   ╚═╝╚═╝     ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═══╝  ╚══════╝
`
