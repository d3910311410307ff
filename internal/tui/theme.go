package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
const (
	colorPink lipgloss.Color = "#f5c2e7"
	colorRed  lipgloss.Color = "#f38ba8"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorBrand = colorPink
	colorError = colorRed
	colorMuted = colorOverlay0
)

var (
	titleStyle        = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	urlStyle          = lipgloss.NewStyle().Foreground(colorSubtext0)
	modeStyle         = lipgloss.NewStyle().Foreground(colorBase).Background(colorBrand).Bold(true).Padding(0, 1)
	emptyStyle        = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	statusBarStyle    = lipgloss.NewStyle().Foreground(colorText)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	footerStyle       = lipgloss.NewStyle().Foreground(colorSubtext0)
)
