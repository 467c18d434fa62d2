package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ludex/internal/domain"
	"ludex/internal/tui/styles"
)

// Form field indexes. statusField is selected with left/right rather than
// typed, so it sits after the text inputs.
const (
	fieldTitle = iota
	fieldPlatform
	fieldGenre
	fieldPurchaseDate
	fieldNotes
	statusField
	fieldCount
)

var formLabels = []string{"Title", "Platform", "Genre", "Purchased", "Notes", "Status"}

// AddForm is the modal form for adding a catalog entry.
type AddForm struct {
	visible bool
	inputs  []textinput.Model
	focus   int
	status  int // Index into domain.Statuses
	errMsg  string
}

// NewAddForm creates the add-entry form.
func NewAddForm() AddForm {
	inputs := make([]textinput.Model, statusField)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 80
		ti.Width = 32
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "required"
	inputs[fieldPlatform].Placeholder = "required"
	inputs[fieldPurchaseDate].Placeholder = "YYYY-MM-DD"

	return AddForm{inputs: inputs}
}

// Show resets and displays the form.
func (f *AddForm) Show() {
	f.visible = true
	f.focus = fieldTitle
	f.status = 0
	f.errMsg = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.inputs[fieldTitle].Focus()
}

// Hide dismisses the form.
func (f *AddForm) Hide() {
	f.visible = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// IsVisible returns whether the form is shown.
func (f AddForm) IsVisible() bool {
	return f.visible
}

// SetError displays a validation message inside the form.
func (f *AddForm) SetError(msg string) {
	f.errMsg = msg
}

// Draft builds a domain draft from the current field values.
func (f AddForm) Draft() domain.Draft {
	return domain.Draft{
		Title:        strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Platform:     strings.TrimSpace(f.inputs[fieldPlatform].Value()),
		Genre:        strings.TrimSpace(f.inputs[fieldGenre].Value()),
		Status:       domain.Statuses[f.status],
		PurchaseDate: strings.TrimSpace(f.inputs[fieldPurchaseDate].Value()),
		Notes:        strings.TrimSpace(f.inputs[fieldNotes].Value()),
	}
}

// Update handles input events, returns (form, cmd, submitted).
func (f AddForm) Update(msg tea.Msg) (AddForm, tea.Cmd, bool) {
	if !f.visible {
		return f, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return f, nil, true
		case "esc":
			f.Hide()
			return f, nil, false
		case "tab", "down":
			f.setFocus((f.focus + 1) % fieldCount)
			return f, nil, false
		case "shift+tab", "up":
			f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, nil, false
		case "left":
			if f.focus == statusField {
				f.status = (f.status + len(domain.Statuses) - 1) % len(domain.Statuses)
				return f, nil, false
			}
		case "right":
			if f.focus == statusField {
				f.status = (f.status + 1) % len(domain.Statuses)
				return f, nil, false
			}
		}
	}

	if f.focus < statusField {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd, false
	}
	return f, nil, false
}

func (f *AddForm) setFocus(idx int) {
	if f.focus < statusField {
		f.inputs[f.focus].Blur()
	}
	f.focus = idx
	if f.focus < statusField {
		f.inputs[f.focus].Focus()
	}
}

// View renders the form modal.
func (f AddForm) View(st styles.Styles) string {
	if !f.visible {
		return ""
	}

	var rows []string
	rows = append(rows, st.Title.Render("Add Game"), "")

	for i := 0; i < statusField; i++ {
		label := formLabels[i]
		labelStyle := st.FormLabel
		if f.focus == i {
			labelStyle = st.FormFocused
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Width(11).Render(label),
			f.inputs[i].View(),
		))
	}

	// Status picker row
	statusStyle := st.FormLabel
	if f.focus == statusField {
		statusStyle = st.FormFocused
	}
	picker := "◂ " + domain.Statuses[f.status].Label() + " ▸"
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		statusStyle.Width(11).Render(formLabels[statusField]),
		st.Accent.Render(picker),
	))

	if f.errMsg != "" {
		rows = append(rows, "", st.Error.Render(f.errMsg))
	}
	rows = append(rows, "", st.Dim.Render("enter save · esc cancel · tab next field"))

	return st.ModalBorder.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
