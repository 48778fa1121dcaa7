// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/dragboard/internal/config"
	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/riordanpawley/dragboard/internal/core/drag"
	"github.com/riordanpawley/dragboard/internal/domain"
	"github.com/riordanpawley/dragboard/internal/services/navigation"
	"github.com/riordanpawley/dragboard/internal/services/sensor"
	"github.com/riordanpawley/dragboard/internal/types"
	"github.com/riordanpawley/dragboard/internal/ui/board"
	"github.com/riordanpawley/dragboard/internal/ui/statusbar"
	"github.com/riordanpawley/dragboard/internal/ui/styles"
	"github.com/riordanpawley/dragboard/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeMove   = types.ModeMove
	ModeDrag   = types.ModeDrag
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast

const toastTTL = 3 * time.Second

// touchHoldMsg fires when a touch press may have been held long enough
type touchHoldMsg struct {
	at time.Time
}

// toastTickMsg expires old toasts
type toastTickMsg struct {
	at time.Time
}

// press is the mouse press behind a pending or running drag
type press struct {
	item   drag.Item
	rect   collision.Rect
	origin collision.Point
	// from is where the item sat when the drag started
	from string
}

// Model is the main application state
type Model struct {
	// Core state
	machine *drag.Machine
	sensor  *sensor.Activator
	nav     *navigation.Service

	// Pending press and last pointer position, in cells
	pressed *press
	pointer collision.Point

	mode     Mode
	keys     KeyMap
	help     help.Model
	showHelp bool

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	styles  *styles.Styles
	config  *config.Config
	metrics board.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a model showing b
func New(cfg *config.Config, b domain.Board, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		machine: drag.NewMachine(b, logger),
		sensor: sensor.NewActivator(
			sensor.PointerConstraint{Distance: float64(cfg.Sensors.Pointer.Distance)},
			sensor.TouchConstraint{
				Delay:     cfg.Sensors.Touch.Delay(),
				Tolerance: float64(cfg.Sensors.Touch.Tolerance),
			},
		),
		nav:    navigation.NewService(),
		mode:   ModeNormal,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: styles.New(),
		config: cfg,
		metrics: board.Metrics{
			MinColumnWidth: cfg.UI.MinColumnWidth,
			CardHeight:     cfg.UI.CardHeight,
		},
		logger: logger,
		now:    time.Now,
	}
}

// Board returns the board currently shown
func (m Model) Board() domain.Board {
	return m.machine.Board()
}

// Mode returns the current interaction mode
func (m Model) Mode() Mode {
	return m.mode
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	title := m.Board().Title
	if title == "" {
		title = "dragboard"
	}
	return tea.SetWindowTitle(title)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case touchHoldMsg:
		if m.pressed != nil && m.sensor.Tick(msg.at) {
			return m.startDrag()
		}
		return m, nil

	case toastTickMsg:
		m.toasts = types.Live(m.toasts, msg.at)
		if len(m.toasts) > 0 {
			return m, toastTick()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Cancel) {
		switch m.mode {
		case ModeDrag:
			return m.cancelDrag()
		case ModeMove:
			m.mode = ModeNormal
		}
		return m, nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeMove:
		return m.handleMoveMode(msg)
	default:
		// Keys other than Esc are ignored while the mouse drags
		return m, nil
	}
}

// handleNormalMode moves the cursor
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.Board()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.nav.MoveDown(b)
	case key.Matches(msg, m.keys.Up):
		m.nav.MoveUp(b)
	case key.Matches(msg, m.keys.Left):
		m.nav.MoveLeft(b)
	case key.Matches(msg, m.keys.Right):
		m.nav.MoveRight(b)
	case key.Matches(msg, m.keys.Top):
		m.nav.GotoTop(b)
	case key.Matches(msg, m.keys.Bottom):
		m.nav.GotoBottom(b)
	case key.Matches(msg, m.keys.FirstColumn):
		m.nav.GotoFirstColumn(b)
	case key.Matches(msg, m.keys.LastColumn):
		m.nav.GotoLastColumn(b)
	case key.Matches(msg, m.keys.Move):
		if _, ok := m.nav.CurrentCard(b); ok {
			m.mode = ModeMove
		}
	case key.Matches(msg, m.keys.ColumnLeft):
		m.applyKeyboardMove(m.nav.ShiftColumn(b, -1))
	case key.Matches(msg, m.keys.ColumnRight):
		m.applyKeyboardMove(m.nav.ShiftColumn(b, 1))
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

// handleMoveMode carries the selected card with the cursor keys
func (m Model) handleMoveMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := m.Board()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.applyKeyboardMove(m.nav.ShiftCard(b, 1))
	case key.Matches(msg, m.keys.Up):
		m.applyKeyboardMove(m.nav.ShiftCard(b, -1))
	case key.Matches(msg, m.keys.Left):
		m.applyKeyboardMove(m.nav.ShiftCardColumn(b, -1))
	case key.Matches(msg, m.keys.Right):
		m.applyKeyboardMove(m.nav.ShiftCardColumn(b, 1))
	case key.Matches(msg, m.keys.ColumnLeft):
		m.applyKeyboardMove(m.nav.ShiftColumn(b, -1))
	case key.Matches(msg, m.keys.ColumnRight):
		m.applyKeyboardMove(m.nav.ShiftColumn(b, 1))
	case key.Matches(msg, m.keys.Move), key.Matches(msg, m.keys.Done):
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *Model) applyKeyboardMove(next domain.Board, moved bool) {
	if !moved {
		return
	}
	if !m.machine.SetBoard(next) {
		m.logger.Warn("keyboard move dropped, drag in progress")
	}
}

// handleMouse feeds mouse events to the sensor and the drag machine
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	m.pointer = collision.Point{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.machine.Dragging() {
			return m, nil
		}
		return m.pressAt(msg, now)

	case tea.MouseActionMotion:
		if m.machine.Dragging() {
			m.machine.Over(m.dragEvent())
			return m, nil
		}
		if m.pressed == nil {
			return m, nil
		}
		if m.sensor.Move(m.pointer, now) {
			return m.startDrag()
		}
		if m.sensor.State() == sensor.StateIdle {
			// Touch press drifted past tolerance
			m.pressed = nil
		}
		return m, nil

	case tea.MouseActionRelease:
		m.sensor.Release()
		if m.machine.Dragging() {
			return m.drop()
		}
		m.pressed = nil
		return m, nil
	}
	return m, nil
}

func (m Model) pressAt(msg tea.MouseMsg, now time.Time) (tea.Model, tea.Cmd) {
	l := m.layout()
	item, ok := l.HitTest(msg.X, msg.Y)
	if !ok {
		if id, ok := l.ColumnAt(msg.X, msg.Y); ok {
			m.nav.SelectColumn(m.Board(), id)
		}
		return m, nil
	}

	b := m.Board()
	if item.Kind == collision.KindCard {
		m.nav.SelectCard(b, item.ID)
	} else {
		m.nav.SelectColumn(b, item.ID)
	}

	rect, _ := l.ItemRect(item)
	m.pressed = &press{item: item, rect: rect, origin: m.pointer}

	// Ctrl+press stands in for a touch long-press
	if msg.Ctrl {
		m.sensor.Press(sensor.InputTouch, m.pointer, now)
		delay := m.config.Sensors.Touch.Delay()
		return m, tea.Tick(delay, func(t time.Time) tea.Msg {
			return touchHoldMsg{at: t}
		})
	}
	m.sensor.Press(sensor.InputPointer, m.pointer, now)
	return m, nil
}

func (m Model) startDrag() (tea.Model, tea.Cmd) {
	if m.pressed == nil || !m.machine.Start(m.pressed.item) {
		m.pressed = nil
		m.sensor.Reset()
		return m, nil
	}
	m.pressed.from = position(m.Board(), m.pressed.item)
	m.mode = ModeDrag
	m.machine.Over(m.dragEvent())
	return m, nil
}

func (m Model) drop() (tea.Model, tea.Cmd) {
	item, _ := m.machine.Active()
	after := m.machine.End(m.dragEvent())
	from := ""
	if m.pressed != nil {
		from = m.pressed.from
	}
	m.pressed = nil
	m.mode = ModeNormal

	if item.Kind == collision.KindCard {
		m.nav.SelectCard(after, item.ID)
	} else {
		m.nav.SelectColumn(after, item.ID)
	}

	if position(after, drag.Item{ID: item.ID, Kind: item.Kind}) == from {
		return m, nil
	}
	return m, m.addToast(types.ToastSuccess, dropMessage(item, after))
}

func (m Model) cancelDrag() (tea.Model, tea.Cmd) {
	item, _ := m.machine.Active()
	b := m.machine.Cancel()
	m.sensor.Reset()
	m.pressed = nil
	m.mode = ModeNormal
	if item.Kind == collision.KindCard {
		m.nav.SelectCard(b, item.ID)
	}
	return m, m.addToast(types.ToastInfo, "Drag cancelled")
}

// position identifies where item sits in b
func position(b domain.Board, item drag.Item) string {
	if item.Kind == collision.KindColumn {
		return fmt.Sprintf("%d", b.ColumnIndex(item.ID))
	}
	col, _ := b.ColumnOfCard(item.ID)
	return fmt.Sprintf("%s/%d", col.ID, col.CardIndex(item.ID))
}

func dropMessage(item drag.ActiveItem, b domain.Board) string {
	if item.Kind == collision.KindColumn {
		title := item.ID
		if item.Column != nil && item.Column.Title != "" {
			title = item.Column.Title
		}
		return fmt.Sprintf("Moved column %s to position %d", title, b.ColumnIndex(item.ID)+1)
	}
	title := item.ID
	if item.Card != nil && item.Card.Title != "" {
		title = item.Card.Title
	}
	col, _ := b.ColumnOfCard(item.ID)
	return fmt.Sprintf("Moved %s to %s", title, col.Title)
}

// dragEvent builds the event for the pointer's current position. The active
// rect is the pressed item's rect shifted by the pointer travel.
func (m Model) dragEvent() drag.Event {
	pointer := m.pointer
	rect, origin := collision.Rect{}, pointer
	if m.pressed != nil {
		rect, origin = m.pressed.rect, m.pressed.origin
	}

	return drag.Event{
		Active:     rect.Translate(pointer.X-origin.X, pointer.Y-origin.Y),
		Pointer:    &pointer,
		Droppables: m.layout().Droppables(),
	}
}

func (m *Model) addToast(level types.ToastLevel, message string) tea.Cmd {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now(), toastTTL))
	if len(m.toasts) == 1 {
		return toastTick()
	}
	return nil
}

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg{at: t}
	})
}

// boardHeight is the terminal height left for the board
func (m Model) boardHeight() int {
	h := m.height - 1 // status bar
	if m.showHelp {
		h -= lipgloss.Height(m.help.View(m.keys))
	}
	return h
}

func (m Model) layout() board.Layout {
	return board.Compute(m.Board(), m.width, m.boardHeight(), m.metrics)
}

// View renders the board, the drag overlay, toasts and the status bar
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	b := m.Board()
	l := m.layout()

	h := board.Highlight{SelectedID: m.nav.SelectedID(b)}
	item, dragging := m.machine.Active()
	if dragging {
		h.ActiveID = item.ID
		h.ActiveKind = item.Kind
		h.OverID = m.machine.LastResolvedID()
	}

	view := board.Render(b, l, h, m.styles, m.width)

	if dragging {
		ev := m.dragEvent()
		overlay := board.RenderOverlay(item, l, m.styles)
		view = board.PlaceOverlay(round(ev.Active.Left), round(ev.Active.Top), overlay, view)
	}

	if toasts := types.Live(m.toasts, m.now()); len(toasts) > 0 {
		toastView := toast.New(m.styles).Render(toasts, m.width)
		x := m.width - lipgloss.Width(toastView)
		y := lipgloss.Height(view) - lipgloss.Height(toastView)
		view = board.PlaceOverlay(x, y, toastView, view)
	}

	sb := statusbar.New(m.mode, m.width, m.styles).WithInfo(m.statusInfo(b))
	parts := []string{view}
	if m.showHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	parts = append(parts, sb.Render())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// statusInfo describes the dragged item or the cursor position
func (m Model) statusInfo(b domain.Board) string {
	if item, ok := m.machine.Active(); ok {
		if over := m.machine.LastResolvedID(); over != "" {
			return fmt.Sprintf("%s %s → %s", item.Kind, item.ID, over)
		}
		return fmt.Sprintf("%s %s", item.Kind, item.ID)
	}
	if pos := m.nav.GetPosition(b); pos.Valid {
		col := b.Columns[pos.Column]
		return fmt.Sprintf("%s %d/%d", col.Cards[pos.Card].ID, pos.Card+1, len(col.Cards))
	}
	return fmt.Sprintf("%d cards", b.CardCount())
}

func round(f float64) int {
	return int(math.Round(f))
}
