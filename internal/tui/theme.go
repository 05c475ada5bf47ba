package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	MedGreen    = lipgloss.Color("#00C832")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	MidGray     = lipgloss.Color("#3a3a4e")
	White       = lipgloss.Color("#e0e0e0")

	// Banner / titles
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true).
			MarginLeft(2)

	// Record listing
	IndexStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	NameStyle = lipgloss.NewStyle().
			Foreground(White)

	OrgStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	PhoneStyle = lipgloss.NewStyle().
			Foreground(MedGreen)

	// Form
	LabelStyle = lipgloss.NewStyle().
			Foreground(DarkGreen)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(BrightGreen).
				Bold(true)

	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DarkGreen).
				Padding(0, 1)

	// Status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4136")).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DimGreen)

	DimStyle = lipgloss.NewStyle().
			Foreground(MidGray)
)

const Banner = `
  ██████╗  ██████╗ ██╗      ██████╗ ██████╗ ███████╗██╗  ██╗
  ██╔══██╗██╔═══██╗██║     ██╔═══██╗██╔══██╗██╔════╝╚██╗██╔╝
  ██████╔╝██║   ██║██║     ██║   ██║██║  ██║█████╗   ╚███╔╝
  ██╔══██╗██║   ██║██║     ██║   ██║██║  ██║██╔══╝   ██╔██╗
  ██║  ██║╚██████╔╝███████╗╚██████╔╝██████╔╝███████╗██╔╝ ██╗
  ╚═╝  ╚═╝ ╚═════╝ ╚══════╝ ╚═════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝
`
