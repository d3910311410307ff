package tile

import "github.com/charmbracelet/lipgloss"

const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface0 lipgloss.Color = "#313244"
	colorCrust    lipgloss.Color = "#11111b"
	colorWhite    lipgloss.Color = "#ffffff"
)

const (
	glyphStar     = "★"
	glyphEye      = "◉"
	glyphEyeSlash = "⊘"
	glyphKeyboard = "⌨"
)

var (
	nameStyle     = lipgloss.NewStyle().Foreground(colorText)
	kbdStyle      = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	hoverStyle    = lipgloss.NewStyle().Background(colorSurface0)
	overlayStyle  = lipgloss.NewStyle().Background(colorCrust)
	keyboardStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Faint(true)
	inputStyle    = lipgloss.NewStyle().Foreground(colorWhite).Background(colorCrust)
)
