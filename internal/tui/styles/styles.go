package styles

import (
	"github.com/charmbracelet/lipgloss"

	"ludex/internal/domain"
)

// Palette is the color set for one theme.
type Palette struct {
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Subtle  lipgloss.Color
	Dim     lipgloss.Color
	Surface lipgloss.Color
	Green   lipgloss.Color
	Red     lipgloss.Color
	Yellow  lipgloss.Color
	Blue    lipgloss.Color
}

// DarkPalette is the palette for the dark theme
var DarkPalette = Palette{
	Accent:  lipgloss.Color("#E5A00D"),
	Text:    lipgloss.Color("#F9FAFB"),
	Subtle:  lipgloss.Color("#9CA3AF"),
	Dim:     lipgloss.Color("#6B7280"),
	Surface: lipgloss.Color("#374151"),
	Green:   lipgloss.Color("#10B981"),
	Red:     lipgloss.Color("#EF4444"),
	Yellow:  lipgloss.Color("#F59E0B"),
	Blue:    lipgloss.Color("#3B82F6"),
}

// LightPalette is the palette for the light theme
var LightPalette = Palette{
	Accent:  lipgloss.Color("#B45309"),
	Text:    lipgloss.Color("#111827"),
	Subtle:  lipgloss.Color("#4B5563"),
	Dim:     lipgloss.Color("#9CA3AF"),
	Surface: lipgloss.Color("#E5E7EB"),
	Green:   lipgloss.Color("#047857"),
	Red:     lipgloss.Color("#B91C1C"),
	Yellow:  lipgloss.Color("#B45309"),
	Blue:    lipgloss.Color("#1D4ED8"),
}

// Raw status indicator characters (unstyled)
const (
	UnplayedChar  = "●"
	PlayingChar   = "◐"
	CompletedChar = "✓"
	OnHoldChar    = "◌"
)

// Styles holds every rendered style for the active theme.
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style

	SelectedItem lipgloss.Style
	NormalItem   lipgloss.Style

	FilterLabel lipgloss.Style
	FilterValue lipgloss.Style
	StatusBar   lipgloss.Style
	ModalBorder lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	FormLabel   lipgloss.Style
	FormFocused lipgloss.Style
	MatchedChar lipgloss.Style
	StatusDots  map[domain.Status]string
}

// New builds the style set for the given theme.
func New(theme domain.Theme) Styles {
	p := LightPalette
	if theme == domain.ThemeDark {
		p = DarkPalette
	}

	s := Styles{Palette: p}

	s.Title = lipgloss.NewStyle().Foreground(p.Text).Bold(true)
	s.Subtitle = lipgloss.NewStyle().Foreground(p.Subtle)
	s.Dim = lipgloss.NewStyle().Foreground(p.Dim)
	s.Accent = lipgloss.NewStyle().Foreground(p.Accent)
	s.Error = lipgloss.NewStyle().Foreground(p.Red)
	s.Success = lipgloss.NewStyle().Foreground(p.Green)

	s.SelectedItem = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		Padding(0, 1)
	s.NormalItem = lipgloss.NewStyle().
		Foreground(p.Subtle).
		Padding(0, 1)

	s.FilterLabel = lipgloss.NewStyle().Foreground(p.Dim)
	s.FilterValue = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	s.StatusBar = lipgloss.NewStyle().Foreground(p.Subtle)
	s.ModalBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)
	s.HelpKey = lipgloss.NewStyle().Foreground(p.Accent)
	s.HelpDesc = lipgloss.NewStyle().Foreground(p.Subtle)
	s.FormLabel = lipgloss.NewStyle().Foreground(p.Subtle)
	s.FormFocused = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	s.MatchedChar = lipgloss.NewStyle().Foreground(p.Accent).Bold(true).Underline(true)

	s.StatusDots = map[domain.Status]string{
		domain.StatusUnplayed:  lipgloss.NewStyle().Foreground(p.Dim).Render(UnplayedChar),
		domain.StatusPlaying:   lipgloss.NewStyle().Foreground(p.Blue).Render(PlayingChar),
		domain.StatusCompleted: lipgloss.NewStyle().Foreground(p.Green).Render(CompletedChar),
		domain.StatusOnHold:    lipgloss.NewStyle().Foreground(p.Yellow).Render(OnHoldChar),
	}

	return s
}
