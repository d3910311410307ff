package tui

import (
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/browserpick/internal/domain"
	"github.com/jask/browserpick/internal/store"
	"github.com/jask/browserpick/internal/tile"
)

const (
	appName      = "browserpick"
	headerHeight = 2
	columnGap    = 1
	rowGap       = 1
	wiggleEvery  = 120 * time.Millisecond
)

type stateMsg store.State

type wiggleTickMsg struct{}

// Options configures the picker grid.
type Options struct {
	TileWidth int
	// Columns fixes the grid width; zero fits as many tiles as the terminal allows.
	Columns int
	Keys    []KeyBinding
}

// App hosts the tile grid. It mirrors the store through a subscription and
// hands every tile the store's Dispatch as its intent sink.
type App struct {
	store       *store.Store
	keys        *KeyRegistry
	tileWidth   int
	columns     int
	state       store.State
	tiles       []tile.Model
	focus       int
	width       int
	height      int
	frame       int
	ticking     bool
	updates     chan store.State
	unsubscribe func()
	// initCmd holds what the first apply produced until Init hands it over.
	initCmd tea.Cmd
}

func New(s *store.Store, opts Options) *App {
	bindings := opts.Keys
	if len(bindings) == 0 {
		bindings = DefaultKeyBindings()
	}
	tw := opts.TileWidth
	if tw <= 0 {
		tw = tile.DefaultWidth
	}
	a := &App{
		store:     s,
		keys:      NewKeyRegistry(bindings),
		tileWidth: max(tw, tile.MinWidth),
		columns:   opts.Columns,
		updates:   make(chan store.State, 1),
	}
	a.unsubscribe = s.Subscribe(a.push)
	a.initCmd = a.apply(s.Snapshot())
	return a
}

// Close drops the store subscription. It is safe to call more than once.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
}

// push keeps only the newest snapshot; older ones are superseded anyway.
func (a *App) push(st store.State) {
	select {
	case <-a.updates:
	default:
	}
	select {
	case a.updates <- st:
	default:
	}
}

func (a *App) listen() tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-a.updates)
	}
}

func (a *App) Init() tea.Cmd {
	cmd := a.initCmd
	a.initCmd = nil
	return tea.Batch(cmd, a.listen(), tea.SetWindowTitle(appName))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		cmd := a.apply(store.State(msg))
		if a.state.Dismissed {
			a.Close()
			return a, tea.Quit
		}
		return a, tea.Batch(cmd, a.listen())
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case wiggleTickMsg:
		if a.state.Mode != domain.ModeEdit {
			a.ticking = false
			return a, nil
		}
		a.frame++
		for i := range a.tiles {
			a.tiles[i], _ = a.tiles[i].Update(tile.WiggleMsg{Frame: a.frame})
		}
		return a, a.tick()
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	if len(a.tiles) > 0 {
		var cmd tea.Cmd
		a.tiles[a.focus], cmd = a.tiles[a.focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) scope() string {
	if a.state.Mode == domain.ModeEdit {
		return scopeEdit
	}
	return scopeNormal
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, ok := a.keys.Action(msg, a.scope())
	if ok {
		switch action {
		case actionQuit:
			a.Close()
			return a, tea.Quit
		case actionToggleEdit, actionLeaveEdit:
			a.store.ToggleEditMode()
			return a, nil
		case actionLeft:
			return a, a.moveFocus(-1)
		case actionRight, actionNext:
			return a, a.moveFocus(1)
		case actionPrev:
			return a, a.moveFocus(-1)
		case actionUp:
			return a, a.moveFocus(-a.cols())
		case actionDown:
			return a, a.moveFocus(a.cols())
		case actionActivate:
			if len(a.tiles) > 0 {
				a.tiles[a.focus].Activate(domain.Modifiers{Alt: msg.Alt})
			}
			return a, nil
		case actionFavorite:
			if len(a.tiles) > 0 {
				a.tiles[a.focus].ToggleFavorite()
			}
			return a, nil
		case actionVisibility:
			if len(a.tiles) > 0 {
				a.tiles[a.focus].ToggleVisibility()
			}
			return a, nil
		}
	}

	if a.state.Mode == domain.ModeNormal {
		a.activateByHotkey(msg)
		return a, nil
	}
	if len(a.tiles) == 0 {
		return a, nil
	}
	var cmd tea.Cmd
	a.tiles[a.focus], cmd = a.tiles[a.focus].Update(msg)
	return a, cmd
}

// activateByHotkey opens the visible app whose hotkey matches the typed rune.
// An upper-case rune counts as shift-activation.
func (a *App) activateByHotkey(msg tea.KeyMsg) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Paste {
		return
	}
	r := msg.Runes[0]
	key := string(unicode.ToLower(r))
	for _, t := range a.tiles {
		if t.App().Hotkey == key {
			t.Activate(domain.Modifiers{Alt: msg.Alt, Shift: unicode.IsUpper(r)})
			return
		}
	}
}

func (a *App) moveFocus(delta int) tea.Cmd {
	if len(a.tiles) == 0 {
		return nil
	}
	next := a.focus + delta
	if next < 0 || next >= len(a.tiles) {
		if delta == 1 || delta == -1 {
			next = (next + len(a.tiles)) % len(a.tiles)
		} else {
			return nil
		}
	}
	return a.setFocus(next)
}

func (a *App) setFocus(idx int) tea.Cmd {
	if idx == a.focus && a.tiles[idx].Focused() {
		return nil
	}
	if a.focus < len(a.tiles) {
		a.tiles[a.focus] = a.tiles[a.focus].Blur()
	}
	a.focus = idx
	var cmd tea.Cmd
	a.tiles[idx], cmd = a.tiles[idx].Focus()
	return cmd
}

// handleMouse translates screen coordinates into tile-relative ones. Motion
// goes to every tile so hover can clear; a press goes to the tile under it.
func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	for i := range a.tiles {
		x, y := a.origin(i)
		rel := msg
		rel.X -= x
		rel.Y -= y
		if msg.Action == tea.MouseActionMotion {
			a.tiles[i], _ = a.tiles[i].Update(rel)
			continue
		}
		if rel.X < 0 || rel.X >= a.tiles[i].Width() || rel.Y < 0 || rel.Y >= tile.Height {
			continue
		}
		var cmds []tea.Cmd
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			cmds = append(cmds, a.setFocus(i))
		}
		var cmd tea.Cmd
		a.tiles[i], cmd = a.tiles[i].Update(rel)
		return tea.Batch(append(cmds, cmd)...)
	}
	return nil
}

// apply mirrors a store snapshot into the tiles, reusing tiles by app id so
// focus and in-progress input survive.
func (a *App) apply(st store.State) tea.Cmd {
	prevMode := a.state.Mode
	focusedID := ""
	if a.focus < len(a.tiles) {
		focusedID = a.tiles[a.focus].App().ID
	}
	a.state = st

	snap := tile.Snapshot{URL: st.URL, Mode: st.Mode, Theme: st.Theme}
	existing := make(map[string]tile.Model, len(a.tiles))
	for _, t := range a.tiles {
		existing[t.App().ID] = t
	}
	apps := gridApps(st.Apps, st.Mode)
	tiles := make([]tile.Model, 0, len(apps))
	focus := -1
	for i, app := range apps {
		t, ok := existing[app.ID]
		if !ok {
			t = tile.New(app, a.store.Dispatch,
				tile.WithWidth(a.tileWidth),
				tile.WithStyle(lipgloss.NewStyle().MarginRight(columnGap)),
				tile.WithSnapshot(snap),
			)
		}
		t = t.SetApp(app).SetFav(app.IsFav).SetSnapshot(snap)
		if app.ID == focusedID {
			focus = i
		}
		tiles = append(tiles, t)
	}
	a.tiles = tiles
	if len(tiles) == 0 {
		a.focus = 0
		return nil
	}
	if focus < 0 {
		focus = min(a.focus, len(tiles)-1)
	}
	a.focus = focus

	var cmds []tea.Cmd
	for i := range a.tiles {
		if i != a.focus && a.tiles[i].Focused() {
			a.tiles[i] = a.tiles[i].Blur()
		}
	}
	if !a.tiles[a.focus].Focused() || (st.Mode == domain.ModeEdit && prevMode != domain.ModeEdit) {
		var cmd tea.Cmd
		a.tiles[a.focus], cmd = a.tiles[a.focus].Focus()
		cmds = append(cmds, cmd)
	}
	if st.Mode == domain.ModeEdit && !a.ticking {
		cmds = append(cmds, a.startWiggle())
	}
	return tea.Batch(cmds...)
}

func (a *App) startWiggle() tea.Cmd {
	a.ticking = true
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(wiggleEvery, func(time.Time) tea.Msg { return wiggleTickMsg{} })
}

// gridApps orders apps for display: the favourite first, then the rest in
// stored order. Hidden apps only appear in edit mode.
func gridApps(apps []domain.App, mode domain.Mode) []domain.App {
	out := make([]domain.App, 0, len(apps))
	if fav, ok := domain.Favorite(apps); ok && (fav.IsVisible || mode == domain.ModeEdit) {
		out = append(out, fav)
	}
	for _, app := range apps {
		if app.IsFav {
			continue
		}
		if !app.IsVisible && mode != domain.ModeEdit {
			continue
		}
		out = append(out, app)
	}
	return out
}

func (a *App) cols() int {
	if a.columns > 0 {
		return a.columns
	}
	if a.width <= 0 {
		return 4
	}
	return max(1, (a.width+columnGap)/(a.tileWidth+columnGap))
}

// origin is the screen position of tile i's top-left cell.
func (a *App) origin(i int) (int, int) {
	cols := a.cols()
	row, col := i/cols, i%cols
	return col * (a.tileWidth + columnGap), headerHeight + row*(tile.Height+rowGap)
}

func (a *App) View() string {
	body := a.renderHeader() + "\n\n" + a.renderGrid()
	bars := a.renderStatusBar() + "\n" + a.renderFooter()
	if a.height > 0 {
		if pad := a.height - lipgloss.Height(body) - 2; pad > 0 {
			body += strings.Repeat("\n", pad)
		}
	}
	return body + "\n" + bars
}

func (a *App) renderHeader() string {
	title := titleStyle.Render(appName)
	right := ""
	if a.state.Mode == domain.ModeEdit {
		right = modeStyle.Render("EDIT")
	}
	url := a.state.URL
	if url == "" {
		url = "no url"
	}
	avail := a.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if a.width > 0 && avail > 0 {
		url = ansi.Truncate(url, avail, "…")
	}
	line := title + " " + urlStyle.Render(url)
	if right == "" {
		return line
	}
	if gap := a.width - lipgloss.Width(line) - lipgloss.Width(right); gap > 0 {
		return line + strings.Repeat(" ", gap) + right
	}
	return line + " " + right
}

func (a *App) renderGrid() string {
	if len(a.tiles) == 0 {
		return emptyStyle.Render("no apps to show, ctrl+e to unhide some")
	}
	cols := a.cols()
	rows := make([]string, 0, len(a.tiles)/cols+1)
	for start := 0; start < len(a.tiles); start += cols {
		end := min(start+cols, len(a.tiles))
		cells := make([]string, 0, end-start)
		for _, t := range a.tiles[start:end] {
			cells = append(cells, t.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, strings.Repeat("\n", rowGap+1))
}
