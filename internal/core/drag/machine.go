package drag

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/riordanpawley/dragboard/internal/core/collision"
	"github.com/riordanpawley/dragboard/internal/core/reorder"
	"github.com/riordanpawley/dragboard/internal/domain"
)

// Machine owns the current board snapshot and the drag session acting on it.
//
// Handlers run to completion on the caller's goroutine and expect events in
// order: Start, any number of Over, then End or Cancel. A Machine is not safe
// for concurrent use.
type Machine struct {
	board   domain.Board
	session Session

	// origin is the board when the session started, restored by Cancel.
	origin domain.Board
	// lastResolvedID survives between events of one session only.
	lastResolvedID string
	sessionID      string

	logger *slog.Logger
}

// NewMachine creates an idle machine holding board.
func NewMachine(board domain.Board, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{
		board:   board,
		session: Idle{},
		logger:  logger,
	}
}

// Board returns the current snapshot.
func (m *Machine) Board() domain.Board {
	return m.board
}

// Session returns the current session state.
func (m *Machine) Session() Session {
	return m.session
}

// Dragging reports whether a session is in progress.
func (m *Machine) Dragging() bool {
	switch m.session.(type) {
	case DraggingCard, DraggingColumn:
		return true
	default:
		return false
	}
}

// LastResolvedID returns the most recent fresh target of the current session.
func (m *Machine) LastResolvedID() string {
	return m.lastResolvedID
}

// SetBoard replaces the snapshot with one supplied from outside. It is
// refused while a drag is in progress.
func (m *Machine) SetBoard(b domain.Board) bool {
	if m.Dragging() {
		m.logger.Warn("board replacement refused during drag", "session_id", m.sessionID)
		return false
	}
	m.board = b
	return true
}

// Active returns the dragged item for overlay rendering.
func (m *Machine) Active() (ActiveItem, bool) {
	switch s := m.session.(type) {
	case DraggingCard:
		card := s.ActiveCard
		return ActiveItem{ID: s.ActiveCardID, Kind: collision.KindCard, Card: &card}, true
	case DraggingColumn:
		col := s.ActiveColumn
		return ActiveItem{ID: s.ActiveColumnID, Kind: collision.KindColumn, Column: &col}, true
	default:
		return ActiveItem{}, false
	}
}

// Start begins a session for item. It returns false, leaving the machine
// unchanged, when a session is already running or item is not on the board.
func (m *Machine) Start(item Item) bool {
	if m.Dragging() {
		m.logger.Warn("drag start ignored, session already active",
			"session_id", m.sessionID, "item_id", item.ID)
		return false
	}

	switch item.Kind {
	case collision.KindCard:
		col, ok := m.board.ColumnOfCard(item.ID)
		if !ok {
			m.logger.Debug("drag start ignored, card not on board", "card_id", item.ID)
			return false
		}
		m.session = DraggingCard{
			ActiveCardID: item.ID,
			ActiveCard:   col.Cards[col.CardIndex(item.ID)],
			SourceColumn: col,
		}
	case collision.KindColumn:
		col, ok := m.board.Column(item.ID)
		if !ok {
			m.logger.Debug("drag start ignored, column not on board", "column_id", item.ID)
			return false
		}
		m.session = DraggingColumn{ActiveColumnID: item.ID, ActiveColumn: col}
	default:
		return false
	}

	m.origin = m.board
	m.lastResolvedID = ""
	m.sessionID = uuid.NewString()
	m.logger.Debug("drag started", "session_id", m.sessionID, "kind", item.Kind.String(), "active_id", item.ID)
	return true
}

// Over handles a move event. Column drags ignore it. A card hovering a
// column other than the one it sits in is moved there immediately so the
// board shows where it would land.
func (m *Machine) Over(ev Event) domain.Board {
	s, ok := m.session.(DraggingCard)
	if !ok {
		return m.board
	}

	target := m.resolve(collision.KindCard, ev)
	if !target.Found() {
		return m.board
	}
	current, ok := m.board.ColumnOfCard(s.ActiveCardID)
	if !ok {
		return m.board
	}
	move, ok := m.cardMove(s.ActiveCardID, current.ID, target.ID, ev)
	if !ok || move.DestColumnID == current.ID {
		return m.board
	}

	m.board = reorder.MoveCardAcrossColumns(m.board, move)
	m.logger.Debug("card moved across columns",
		"session_id", m.sessionID, "card_id", s.ActiveCardID,
		"from", move.SourceColumnID, "to", move.DestColumnID, "target_id", target.ID)
	return m.board
}

// End finishes the session with a drop and returns the resulting board. The
// session returns to Idle whatever happens.
func (m *Machine) End(ev Event) domain.Board {
	defer m.reset()

	switch s := m.session.(type) {
	case DraggingCard:
		m.dropCard(s, ev)
	case DraggingColumn:
		target := m.resolve(collision.KindColumn, ev)
		if target.Found() && target.ID != s.ActiveColumnID {
			m.board = reorder.ReorderColumns(m.board, s.ActiveColumnID, target.ID)
			m.logger.Debug("columns reordered",
				"session_id", m.sessionID, "column_id", s.ActiveColumnID, "target_id", target.ID)
		}
	}
	return m.board
}

// Cancel abandons the session and restores the board captured at Start,
// undoing any moves made by Over.
func (m *Machine) Cancel() domain.Board {
	if m.Dragging() {
		m.board = m.origin
		m.logger.Debug("drag cancelled", "session_id", m.sessionID)
	}
	m.reset()
	return m.board
}

func (m *Machine) dropCard(s DraggingCard, ev Event) {
	target := m.resolve(collision.KindCard, ev)
	if !target.Found() {
		return
	}
	current, ok := m.board.ColumnOfCard(s.ActiveCardID)
	if !ok {
		return
	}
	move, ok := m.cardMove(s.ActiveCardID, current.ID, target.ID, ev)
	if !ok {
		return
	}

	if move.DestColumnID != s.SourceColumn.ID {
		// Dropping onto itself after Over already moved it: nothing left to do.
		if move.DestColumnID == current.ID && move.HoveredCardID == s.ActiveCardID {
			return
		}
		m.board = reorder.MoveCardAcrossColumns(m.board, move)
		m.logger.Debug("card dropped in new column",
			"session_id", m.sessionID, "card_id", s.ActiveCardID,
			"from", s.SourceColumn.ID, "to", move.DestColumnID)
		return
	}

	if current.ID != s.SourceColumn.ID {
		m.board = reorder.MoveCardAcrossColumns(m.board, move)
	}
	m.board = reorder.ReorderFromSnapshot(m.board, s.SourceColumn, s.ActiveCardID, move.HoveredCardID)
	m.logger.Debug("card reordered in column",
		"session_id", m.sessionID, "card_id", s.ActiveCardID,
		"column_id", s.SourceColumn.ID, "target_id", target.ID)
}

// cardMove builds the move that would place cardID at targetID. targetID is
// either a card or a column; a column means the end of that column.
func (m *Machine) cardMove(cardID, currentColumnID, targetID string, ev Event) (reorder.CardMove, bool) {
	move := reorder.CardMove{CardID: cardID, SourceColumnID: currentColumnID}

	if col, ok := m.board.Column(targetID); ok {
		move.DestColumnID = col.ID
		return move, true
	}

	col, ok := m.board.ColumnOfCard(targetID)
	if !ok {
		return move, false
	}
	move.DestColumnID = col.ID
	move.HoveredCardID = targetID
	if d, ok := collision.Lookup(ev.Droppables, targetID); ok {
		move.BelowHovered = ev.Active.Top > d.Rect.Bottom()
	}
	return move, true
}

func (m *Machine) resolve(kind collision.Kind, ev Event) collision.Result {
	res := collision.Resolve(collision.Request{
		Dragging:       kind,
		Args:           ev.args(),
		LastResolvedID: m.lastResolvedID,
	})
	if res.Fresh {
		m.lastResolvedID = res.ID
	}
	return res
}

func (m *Machine) reset() {
	m.session = Idle{}
	m.origin = domain.Board{}
	m.lastResolvedID = ""
	m.sessionID = ""
}
