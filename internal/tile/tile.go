// Package tile renders one app-launcher tile and turns raw terminal input on
// it into intents.
//
// A tile owns no application state. Everything it draws is a function of the
// app, the isFav flag, an optional extra style and the Snapshot (URL, mode,
// theme) the host delivers from the store. The only local state is what the
// terminal toolkit needs anyway: keyboard focus, hover, the hotkey input's
// editing buffer and the wiggle frame.
//
// Rows, top to bottom:
//
//	0  overlay buttons (edit mode) or blank
//	1  blank
//	2  icon
//	3  name
//	4  footer: hotkey label (normal) or hotkey input (edit)
package tile

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/browserpick/internal/catalog"
	"github.com/jask/browserpick/internal/domain"
	"github.com/jask/browserpick/internal/intent"
)

const (
	// Height is the number of rows every tile occupies in either mode.
	Height = 5
	// DefaultWidth is used when no width option is given.
	DefaultWidth = 14
	// MinWidth fits both overlay buttons with a gap between them.
	MinWidth = 10

	overlayRow = 0
	footerRow  = Height - 1
	buttonW    = 3
)

// Snapshot is the slice of store state a tile reads.
type Snapshot struct {
	URL   string
	Mode  domain.Mode
	Theme domain.Theme
}

// WiggleMsg advances the edit-mode wiggle animation.
type WiggleMsg struct {
	Frame int
}

// Option customises a tile.
type Option func(*Model)

// WithFav marks the tile as the favourite one; its label row shows a star.
func WithFav(isFav bool) Option {
	return func(m *Model) { m.isFav = isFav }
}

// WithStyle wraps the root container in s, for margins or borders from the
// host grid.
func WithStyle(s lipgloss.Style) Option {
	return func(m *Model) {
		m.extra = s
		m.hasExtra = true
	}
}

func WithWidth(w int) Option {
	return func(m *Model) {
		if w < MinWidth {
			w = MinWidth
		}
		m.width = w
	}
}

// WithSnapshot sets the initial snapshot.
func WithSnapshot(s Snapshot) Option {
	return func(m *Model) { m.snap = s }
}

// Model is a single tile.
type Model struct {
	app      domain.App
	isFav    bool
	extra    lipgloss.Style
	hasExtra bool
	width    int
	snap     Snapshot
	sink     intent.Sink

	input     textinput.Model
	selectAll bool
	focused   bool
	hovered   bool
	frame     int
}

// New builds a tile for app that sends intents to sink.
func New(app domain.App, sink intent.Sink, opts ...Option) Model {
	if sink == nil {
		sink = intent.Discard
	}
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = ""
	in.CharLimit = 1
	in.TextStyle = inputStyle
	in.SetValue(app.Hotkey)

	m := Model{app: app, sink: sink, width: DefaultWidth, input: in, snap: Snapshot{Theme: domain.DefaultTheme()}}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) App() domain.App { return m.app }
func (m Model) Width() int      { return m.width }
func (m Model) Focused() bool   { return m.focused }
func (m Model) IsFav() bool     { return m.isFav }

// HotkeyFocused reports whether the hotkey input has keyboard focus.
func (m Model) HotkeyFocused() bool { return m.input.Focused() }

// HotkeyValue is the hotkey input's current text.
func (m Model) HotkeyValue() string { return m.input.Value() }

// SetApp re-renders the tile for a new version of its app. The hotkey input
// is bound to app.Hotkey, so any text the store did not accept is replaced.
func (m Model) SetApp(app domain.App) Model {
	m.app = app
	if m.input.Value() != app.Hotkey {
		m.input.SetValue(app.Hotkey)
		m.input.CursorEnd()
	}
	return m
}

// SetFav updates the isFav flag.
func (m Model) SetFav(isFav bool) Model {
	m.isFav = isFav
	return m
}

// SetSnapshot applies a new store snapshot. Leaving edit mode drops the
// hotkey input's focus.
func (m Model) SetSnapshot(s Snapshot) Model {
	if s.Mode != domain.ModeEdit && m.input.Focused() {
		m.input.Blur()
		m.selectAll = false
	}
	m.snap = s
	return m
}

func (m Model) SetHovered(h bool) Model {
	m.hovered = h
	return m
}

// Focus gives the tile keyboard focus. In edit mode the hotkey input is
// focused as well, with its content selected.
func (m Model) Focus() (Model, tea.Cmd) {
	m.focused = true
	if m.snap.Mode == domain.ModeEdit {
		return m.focusHotkey()
	}
	return m, nil
}

func (m Model) Blur() Model {
	m.focused = false
	m.input.Blur()
	m.selectAll = false
	return m
}

func (m Model) focusHotkey() (Model, tea.Cmd) {
	cmd := m.input.Focus()
	m.input.CursorEnd()
	m.selectAll = m.input.Value() != ""
	return m, cmd
}

// Activate emits TileActivated with the current URL and mods. It does
// nothing in edit mode and reports whether an intent was emitted.
func (m Model) Activate(mods domain.Modifiers) bool {
	if m.snap.Mode == domain.ModeEdit {
		return false
	}
	m.sink(intent.TileActivated{
		URL:     m.snap.URL,
		AppID:   m.app.ID,
		IsAlt:   mods.Alt,
		IsShift: mods.Shift,
	})
	return true
}

// ToggleFavorite presses the favourite overlay button. Only edit mode shows
// the button.
func (m Model) ToggleFavorite() bool {
	if m.snap.Mode != domain.ModeEdit {
		return false
	}
	m.sink(intent.FavoriteToggled{AppID: m.app.ID})
	return true
}

// ToggleVisibility presses the visibility overlay button.
func (m Model) ToggleVisibility() bool {
	if m.snap.Mode != domain.ModeEdit {
		return false
	}
	m.sink(intent.VisibilityToggled{AppID: m.app.ID})
	return true
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles keys (when focused), tile-relative mouse events and wiggle
// frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.snap.Mode == domain.ModeEdit {
			return m.updateHotkey(msg)
		}
		if msg.Type == tea.KeyEnter {
			m.Activate(domain.Modifiers{Alt: msg.Alt})
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case WiggleMsg:
		m.frame = msg.Frame
		return m, nil
	}
	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateHotkey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}
	prev := m.input.Value()
	if m.selectAll {
		m.selectAll = false
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			m.input.SetValue("")
		case tea.KeyBackspace, tea.KeyDelete:
			m.input.SetValue("")
			m.emitHotkey(prev)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.emitHotkey(prev)
	return m, cmd
}

func (m Model) emitHotkey(prev string) {
	if v := m.input.Value(); v != prev {
		m.sink(intent.HotkeyChanged{AppID: m.app.ID, Value: v})
	}
}

// handleMouse expects coordinates relative to the tile's top-left cell.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	inside := msg.X >= 0 && msg.X < m.width && msg.Y >= 0 && msg.Y < Height
	if msg.Action == tea.MouseActionMotion {
		m.hovered = inside
		return m, nil
	}
	if !inside || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.snap.Mode != domain.ModeEdit {
		m.Activate(domain.Modifiers{Alt: msg.Alt, Shift: msg.Shift})
		return m, nil
	}
	switch {
	case msg.Y == overlayRow && msg.X < buttonW:
		m.ToggleFavorite()
	case msg.Y == overlayRow && msg.X >= m.width-buttonW:
		m.ToggleVisibility()
	case msg.Y == footerRow:
		m.focused = true
		return m.focusHotkey()
	}
	return m, nil
}

// Layout describes what View draws for the current inputs.
type Layout struct {
	Mode              domain.Mode
	ActivationEnabled bool
	Highlighted       bool
	IconFaint         bool
	Wiggling          bool
	WiggleOffset      int
	// edit mode
	Overlays       bool
	FavButtonLit   bool
	EyeOpen        bool
	HotkeyEditable bool
	// normal mode
	ShowStar    bool
	HotkeyText  string
	Placeholder bool
}

var wiggleOffsets = [...]int{0, 1, 0, -1}

// Layout computes the visual state. Normal and edit are rendered by separate
// functions; nothing in one depends on the other.
func (m Model) Layout() Layout {
	if m.snap.Mode == domain.ModeEdit {
		return m.editLayout()
	}
	return m.normalLayout()
}

func (m Model) normalLayout() Layout {
	return Layout{
		Mode:              domain.ModeNormal,
		ActivationEnabled: true,
		Highlighted:       m.hovered || m.focused,
		IconFaint:         !m.app.IsVisible,
		ShowStar:          m.isFav,
		HotkeyText:        m.app.Hotkey,
		Placeholder:       m.app.Hotkey == "",
	}
}

func (m Model) editLayout() Layout {
	return Layout{
		Mode:           domain.ModeEdit,
		IconFaint:      !m.app.IsVisible,
		Wiggling:       true,
		WiggleOffset:   wiggleOffsets[m.frame%len(wiggleOffsets)],
		Overlays:       true,
		FavButtonLit:   m.app.IsFav,
		EyeOpen:        m.app.IsVisible,
		HotkeyEditable: true,
	}
}

func (m Model) View() string {
	l := m.Layout()
	var rows []string
	if l.Mode == domain.ModeEdit {
		rows = m.renderEdit(l)
	} else {
		rows = m.renderNormal(l)
	}
	block := lipgloss.NewStyle().Width(m.width).Height(Height).MaxHeight(Height).
		Render(strings.Join(rows, "\n"))
	if l.Highlighted {
		block = hoverStyle.Width(m.width).Render(block)
	}
	if m.hasExtra {
		block = m.extra.Render(block)
	}
	return block
}

func (m Model) renderNormal(l Layout) []string {
	return []string{
		blank(m.width),
		blank(m.width),
		m.renderIcon(l),
		m.renderName(l),
		m.renderLabelRow(l),
	}
}

func (m Model) renderEdit(l Layout) []string {
	return []string{
		m.renderOverlays(l),
		blank(m.width),
		m.renderIcon(l),
		m.renderName(l),
		m.renderHotkeyInput(),
	}
}

func (m Model) renderIcon(l Layout) string {
	style := lipgloss.NewStyle()
	if l.IconFaint {
		style = style.Faint(true)
	}
	glyph := style.Render(catalog.Glyph(m.app.ID))
	inner := lipgloss.PlaceHorizontal(m.width-2, lipgloss.Center, glyph)
	left, right := 1, 1
	if l.Wiggling {
		left += l.WiggleOffset
		right -= l.WiggleOffset
	}
	return strings.Repeat(" ", left) + inner + strings.Repeat(" ", right)
}

func (m Model) renderName(l Layout) string {
	style := nameStyle
	if l.IconFaint {
		style = style.Faint(true)
	}
	if m.focused && l.Mode == domain.ModeEdit {
		style = style.Bold(true).Foreground(m.snap.Theme.Accent)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(truncate(m.app.Name, m.width)))
}

// renderLabelRow draws the favourite star and hotkey. An unset hotkey is
// replaced by a blank placeholder so the row never collapses.
func (m Model) renderLabelRow(l Layout) string {
	var parts []string
	if l.ShowStar {
		parts = append(parts, lipgloss.NewStyle().Foreground(m.snap.Theme.Accent).Render(glyphStar))
	}
	if l.HotkeyText != "" {
		parts = append(parts, kbdStyle.Render(l.HotkeyText))
	} else {
		parts = append(parts, " ")
	}
	row := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(parts, " "))
	return lipgloss.NewStyle().Height(1).MaxHeight(1).Render(row)
}

func (m Model) renderHotkeyInput() string {
	field := "[" + m.input.View() + "]"
	row := keyboardStyle.Render(glyphKeyboard) + " " + field
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row)
}

func (m Model) renderOverlays(l Layout) string {
	starStyle := overlayStyle.Foreground(colorWhite)
	if l.FavButtonLit {
		starStyle = overlayStyle.Foreground(m.snap.Theme.Accent)
	} else {
		starStyle = starStyle.Faint(true)
	}
	eyeGlyph := glyphEye
	eyeStyle := overlayStyle.Foreground(colorWhite)
	if !l.EyeOpen {
		eyeGlyph = glyphEyeSlash
		eyeStyle = eyeStyle.Faint(true)
	}
	fav := starStyle.Render("[" + glyphStar + "]")
	eye := eyeStyle.Render("[" + eyeGlyph + "]")
	return fav + strings.Repeat(" ", m.width-2*buttonW) + eye
}

func blank(w int) string { return strings.Repeat(" ", w) }

// truncate shortens s to at most w cells, marking the cut with an ellipsis.
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		cand := string(runes[:i]) + "…"
		if lipgloss.Width(cand) <= w {
			return cand
		}
	}
	return ""
}
