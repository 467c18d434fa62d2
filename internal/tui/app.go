package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ludex/internal/collection"
	"ludex/internal/domain"
	"ludex/internal/search"
	"ludex/internal/tui/styles"
	"ludex/internal/view"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateAdding
	StateConfirmDelete
	StateSearching
	StateQuickJump
	StateHelp
)

// ChromeHeight is the number of lines used by header, filter bar and footer
const ChromeHeight = 5

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState

	col    *collection.Store
	keys   KeyMap
	styles styles.Styles

	// Transient filter inputs; these feed the view engine and are
	// deliberately never persisted
	searchTerm     string
	platformFilter string
	statusFilter   string

	searchInput textinput.Model

	// Quick-jump overlay
	jumpInput   textinput.Model
	jumpResults []search.Result
	jumpCursor  int

	form     AddForm
	deleteID int64

	// List state
	cursor int

	// Dimensions
	width  int
	height int

	// UI state
	statusMsg   string
	statusIsErr bool
}

// NewModel creates the main TUI model over a loaded collection store.
func NewModel(col *collection.Store) Model {
	si := textinput.New()
	si.Prompt = "/ "
	si.Placeholder = "title or genre..."
	si.CharLimit = 60

	ji := textinput.New()
	ji.Prompt = "» "
	ji.Placeholder = "jump to game..."
	ji.CharLimit = 60

	return Model{
		col:            col,
		keys:           DefaultKeyMap(),
		styles:         styles.New(col.Theme()),
		platformFilter: view.All,
		statusFilter:   view.All,
		searchInput:    si,
		jumpInput:      ji,
		form:           NewAddForm(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// visible returns the current filtered projection in insertion order.
func (m Model) visible() []domain.Entry {
	return view.Filter(m.col.Entries(), m.searchTerm, m.platformFilter, m.statusFilter)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.State {
		case StateAdding:
			return m.updateAdding(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		case StateSearching:
			return m.updateSearching(msg)
		case StateQuickJump:
			return m.updateQuickJump(msg)
		case StateHelp:
			m.State = StateBrowsing
			return m, nil
		default:
			return m.updateBrowsing(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(entries)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0

	case key.Matches(msg, m.keys.End):
		if len(entries) > 0 {
			m.cursor = len(entries) - 1
		}

	case key.Matches(msg, m.keys.Add):
		m.form.Show()
		m.State = StateAdding

	case key.Matches(msg, m.keys.Delete):
		if e, ok := m.selected(entries); ok {
			m.deleteID = e.ID
			m.State = StateConfirmDelete
		}

	case key.Matches(msg, m.keys.CycleStatus):
		if e, ok := m.selected(entries); ok {
			next := nextStatus(e.Status)
			if err := m.col.UpdateStatus(e.ID, next); err != nil {
				m.setError(err)
			} else {
				m.setStatus(fmt.Sprintf("%s → %s", e.Title, next.Label()))
			}
		}

	case key.Matches(msg, m.keys.Search):
		m.searchInput.SetValue(m.searchTerm)
		m.searchInput.Focus()
		m.State = StateSearching
		return m, textinput.Blink

	case key.Matches(msg, m.keys.QuickJump):
		m.jumpInput.SetValue("")
		m.jumpInput.Focus()
		m.jumpResults = nil
		m.jumpCursor = 0
		m.State = StateQuickJump
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Platform):
		m.platformFilter = cycleFilter(m.platformFilter, view.Platforms(m.col.Entries()))
		m.clampCursor()

	case key.Matches(msg, m.keys.Status):
		m.statusFilter = cycleFilter(m.statusFilter, statusFilterValues())
		m.clampCursor()

	case key.Matches(msg, m.keys.ClearFilter):
		m.searchTerm = ""
		m.platformFilter = view.All
		m.statusFilter = view.All
		m.statusMsg = ""

	case key.Matches(msg, m.keys.Theme):
		theme := domain.ThemeDark
		if m.col.Theme() == domain.ThemeDark {
			theme = domain.ThemeLight
		}
		if err := m.col.SetTheme(theme); err != nil {
			// Optimistic: the flag already changed in memory, so restyle
			// anyway and surface the write failure
			m.setError(err)
		} else {
			m.setStatus(fmt.Sprintf("%s theme", theme))
		}
		m.styles = styles.New(m.col.Theme())

	case key.Matches(msg, m.keys.Help):
		m.State = StateHelp
	}

	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.form, cmd, submitted = m.form.Update(msg)

	if !m.form.IsVisible() {
		m.State = StateBrowsing
		return m, cmd
	}
	if !submitted {
		return m, cmd
	}

	entry, err := m.col.Add(m.form.Draft())
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		// Recoverable, nothing was changed; keep the form open
		m.form.SetError(verr.Error())
		return m, cmd
	}

	m.form.Hide()
	m.State = StateBrowsing
	if err != nil {
		// Entry was added in memory but the write failed
		m.setError(err)
		return m, cmd
	}
	m.setStatus(fmt.Sprintf("added %s", entry.Title))
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if err := m.col.Remove(m.deleteID); err != nil {
			m.setError(err)
		} else {
			m.setStatus("deleted")
		}
		m.State = StateBrowsing
		m.clampCursor()
	case "n", "N", "esc":
		m.State = StateBrowsing
	}
	return m, nil
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchTerm = m.searchInput.Value()
		m.searchInput.Blur()
		m.State = StateBrowsing
		m.cursor = 0
		return m, nil
	case "esc":
		m.searchInput.Blur()
		m.State = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateQuickJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumpInput.Blur()
		m.State = StateBrowsing
		return m, nil
	case "up", "ctrl+k":
		if m.jumpCursor > 0 {
			m.jumpCursor--
		}
		return m, nil
	case "down", "ctrl+j":
		if m.jumpCursor < len(m.jumpResults)-1 {
			m.jumpCursor++
		}
		return m, nil
	case "enter":
		if m.jumpCursor < len(m.jumpResults) {
			target := m.jumpResults[m.jumpCursor].Entry
			// Jumping clears filters so the target is always visible
			m.searchTerm = ""
			m.platformFilter = view.All
			m.statusFilter = view.All
			for i, e := range m.col.Entries() {
				if e.ID == target.ID {
					m.cursor = i
					break
				}
			}
		}
		m.jumpInput.Blur()
		m.State = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	m.jumpResults = search.NewIndex(m.col.Entries()).Search(m.jumpInput.Value())
	m.jumpCursor = 0
	return m, cmd
}

// --- Helpers ---

func (m Model) selected(entries []domain.Entry) (domain.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(entries) {
		return domain.Entry{}, false
	}
	return entries[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
}

func (m *Model) setError(err error) {
	m.statusMsg = err.Error()
	m.statusIsErr = true
}

// nextStatus cycles through the status ring in display order.
func nextStatus(s domain.Status) domain.Status {
	for i, st := range domain.Statuses {
		if st == s {
			return domain.Statuses[(i+1)%len(domain.Statuses)]
		}
	}
	return domain.StatusUnplayed
}

// cycleFilter advances filter through all -> values... -> all.
func cycleFilter(current string, values []string) string {
	if len(values) == 0 {
		return view.All
	}
	if current == view.All {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i == len(values)-1 {
				return view.All
			}
			return values[i+1]
		}
	}
	return view.All
}

func statusFilterValues() []string {
	out := make([]string, len(domain.Statuses))
	for i, s := range domain.Statuses {
		out[i] = string(s)
	}
	return out
}

// --- View ---

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	switch m.State {
	case StateHelp:
		return m.viewHelp()
	case StateAdding:
		return m.overlay(m.form.View(m.styles))
	case StateConfirmDelete:
		return m.overlay(m.viewConfirmDelete())
	case StateQuickJump:
		return m.overlay(m.viewQuickJump())
	}

	return m.viewBrowse()
}

func (m Model) viewBrowse() string {
	st := m.styles
	entries := m.visible()

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewFilterBar())
	b.WriteString("\n\n")

	if len(entries) == 0 {
		if m.col.Len() == 0 {
			b.WriteString(st.Dim.Render("  No games yet. Press 'a' to add one."))
		} else {
			b.WriteString(st.Dim.Render("  Nothing matches the current filters."))
		}
		b.WriteString("\n")
	} else {
		maxVisible := m.height - ChromeHeight
		if maxVisible < 1 {
			maxVisible = 1
		}
		offset := listOffset(m.cursor, len(entries), maxVisible)
		end := offset + maxVisible
		if end > len(entries) {
			end = len(entries)
		}
		for i := offset; i < end; i++ {
			b.WriteString(m.viewRow(entries[i], i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

// listOffset keeps the cursor inside the visible window.
func listOffset(cursor, total, maxVisible int) int {
	offset := 0
	if cursor >= maxVisible {
		offset = cursor - maxVisible + 1
	}
	if offset > total-maxVisible {
		offset = total - maxVisible
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m Model) viewHeader() string {
	st := m.styles
	counts := view.StatusCounts(m.col.Entries())

	title := st.Title.Render("Ludex")
	summary := st.Subtitle.Render(fmt.Sprintf(
		"%d games · %d playing · %d completed · %d on hold",
		m.col.Len(),
		counts[domain.StatusPlaying],
		counts[domain.StatusCompleted],
		counts[domain.StatusOnHold],
	))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", summary)
}

func (m Model) viewFilterBar() string {
	st := m.styles

	if m.State == StateSearching {
		return m.searchInput.View()
	}

	term := m.searchTerm
	if term == "" {
		term = "—"
	}
	parts := []string{
		st.FilterLabel.Render("search ") + st.FilterValue.Render(term),
		st.FilterLabel.Render("platform ") + st.FilterValue.Render(m.platformFilter),
		st.FilterLabel.Render("status ") + st.FilterValue.Render(m.statusFilter),
	}
	return strings.Join(parts, st.Dim.Render("  │  "))
}

func (m Model) viewRow(e domain.Entry, selected bool) string {
	st := m.styles

	dot := st.StatusDots[domain.ParseStatus(string(e.Status))]
	line := fmt.Sprintf("%s %s", dot, e.Title)

	meta := e.Platform
	if e.Genre != "" {
		meta += " · " + e.Genre
	}

	if selected {
		return st.SelectedItem.Render(line) + "  " + st.Accent.Render(meta)
	}
	return st.NormalItem.Render(line) + "  " + st.Dim.Render(meta)
}

func (m Model) viewFooter() string {
	st := m.styles
	if m.statusMsg != "" {
		if m.statusIsErr {
			return st.Error.Render(m.statusMsg)
		}
		return st.Success.Render(m.statusMsg)
	}
	return st.StatusBar.Render("a add · d delete · space status · / search · f jump · p/s filter · t theme · ? help · q quit")
}

func (m Model) viewConfirmDelete() string {
	st := m.styles
	content := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render("Delete game?"),
		"",
		st.Subtitle.Render("y confirm · n cancel"),
	)
	return st.ModalBorder.Render(content)
}

func (m Model) viewQuickJump() string {
	st := m.styles

	rows := []string{m.jumpInput.View(), ""}
	if len(m.jumpResults) == 0 && m.jumpInput.Value() != "" {
		rows = append(rows, st.Dim.Render("no matches"))
	}
	max := len(m.jumpResults)
	if max > 8 {
		max = 8
	}
	for i := 0; i < max; i++ {
		r := m.jumpResults[i]
		line := highlightMatches(r.Entry.Title, r.MatchedIndexes, st)
		if i == m.jumpCursor {
			line = st.SelectedItem.Render(line)
		} else {
			line = st.NormalItem.Render(line)
		}
		rows = append(rows, line)
	}

	return st.ModalBorder.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// highlightMatches emphasizes the runes that matched the fuzzy query.
// Indexes are byte offsets into the title, as reported by the matcher.
func highlightMatches(title string, indexes []int, st styles.Styles) string {
	matched := make(map[int]bool, len(indexes))
	for _, idx := range indexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range title {
		if matched[i] {
			b.WriteString(st.MatchedChar.Render(string(r)))
		} else {
			b.WriteString(string(r))
		}
	}
	return b.String()
}

func (m Model) viewHelp() string {
	st := m.styles

	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Home, m.keys.End,
		m.keys.Add, m.keys.Delete, m.keys.CycleStatus,
		m.keys.Search, m.keys.QuickJump, m.keys.Platform, m.keys.Status,
		m.keys.ClearFilter, m.keys.Theme, m.keys.Quit,
	}

	rows := []string{st.Title.Render("Keys"), ""}
	for _, b := range bindings {
		h := b.Help()
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			st.HelpKey.Width(10).Render(h.Key),
			st.HelpDesc.Render(h.Desc),
		))
	}
	rows = append(rows, "", st.Dim.Render("press any key to return"))

	return m.overlay(st.ModalBorder.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

// overlay centers a modal over the full terminal area.
func (m Model) overlay(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
