package domain

// Status represents the play status of a catalog entry
type Status string

const (
	// StatusUnplayed means the game has not been started
	StatusUnplayed Status = "unplayed"

	// StatusPlaying means the game is currently being played
	StatusPlaying Status = "playing"

	// StatusCompleted means the game has been finished
	StatusCompleted Status = "completed"

	// StatusOnHold means the game was started and set aside
	StatusOnHold Status = "on-hold"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusUnplayed, StatusPlaying, StatusCompleted, StatusOnHold}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// Valid returns true if the status is one of the four known values
func (s Status) Valid() bool {
	switch s {
	case StatusUnplayed, StatusPlaying, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Label returns a human-readable display label for the status
func (s Status) Label() string {
	switch s {
	case StatusUnplayed:
		return "Unplayed"
	case StatusPlaying:
		return "Playing"
	case StatusCompleted:
		return "Completed"
	case StatusOnHold:
		return "On Hold"
	default:
		return "Unplayed"
	}
}

// ParseStatus coerces an arbitrary stored value to a valid Status.
// Unrecognized values map to StatusUnplayed rather than erroring, so
// malformed stored data degrades instead of crashing a load.
func ParseStatus(raw string) Status {
	s := Status(raw)
	if s.Valid() {
		return s
	}
	return StatusUnplayed
}

// Theme is the UI color scheme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a stored value to a theme. Anything other than the
// literal "dark" is treated as light.
func ParseTheme(raw string) Theme {
	if Theme(raw) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// String returns the string representation of Theme
func (t Theme) String() string {
	return string(t)
}
