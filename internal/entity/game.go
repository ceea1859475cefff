package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusEnded   Status = "ended"
)

// MoveResult describes an accepted move. Winner is nil unless the move won the game.
type MoveResult struct {
	Cell   int     `json:"cell"`
	Player Player  `json:"player"`
	Winner *Player `json:"winner,omitempty"`
	Ended  bool    `json:"ended"`
}

func (that MoveResult) IsDraw() bool {
	return that.Ended && that.Winner == nil
}

// Game binds a Board to two named players and tracks whether the match is over.
type Game struct {
	board   *Board
	players [2]Player
	winner  *Player
	status  Status
	moves   int
}

// NewGame needs two distinct non-blank names: the scoreboard tallies by name.
func NewGame(size int, first, second string) (*Game, error) {
	first, second = strings.TrimSpace(first), strings.TrimSpace(second)
	if first == "" || second == "" {
		return nil, apperror.ErrInvalidPlayerName
	}
	if first == second {
		return nil, fmt.Errorf("%w: %q", apperror.ErrDuplicatePlayerName, first)
	}

	board, err := NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		board: board,
		players: [2]Player{
			{Name: first, Mark: PlayerA},
			{Name: second, Mark: PlayerB},
		},
		status: StatusOngoing,
	}, nil
}

// SubmitMove places the current player's mark on the cell. A rejected move
// leaves the game untouched and still ongoing.
func (that *Game) SubmitMove(cell int) (MoveResult, error) {
	if that.IsEnded() {
		return MoveResult{}, apperror.ErrGameFinished
	}

	player := that.CurrentPlayer()

	outcome, err := that.board.Place(cell)
	if err != nil {
		return MoveResult{}, err
	}

	that.moves++
	result := MoveResult{Cell: cell, Player: player}

	switch {
	case outcome.HasWinner():
		winner := that.playerFor(outcome.Winner)
		that.winner = &winner
		that.status = StatusEnded
		result.Winner = &Player{Name: winner.Name, Mark: winner.Mark}
	case that.board.IsFull():
		that.status = StatusEnded
	}

	result.Ended = that.IsEnded()

	return result, nil
}

func (that *Game) IsEnded() bool {
	return that.status == StatusEnded
}

func (that *Game) IsDraw() bool {
	return that.IsEnded() && that.winner == nil
}

func (that *Game) Winner() (Player, bool) {
	if that.winner == nil {
		return Player{}, false
	}
	return *that.winner, true
}

func (that *Game) CurrentPlayer() Player {
	return that.playerFor(that.board.CurrentPlayer())
}

func (that *Game) Players() [2]Player {
	return that.players
}

func (that *Game) Status() Status {
	return that.status
}

func (that *Game) Size() int {
	return that.board.Size()
}

func (that *Game) MoveCount() int {
	return that.moves
}

func (that *Game) playerFor(mark Mark) Player {
	if mark == PlayerB {
		return that.players[1]
	}
	return that.players[0]
}

// SnapshotCell is one rendered cell; Label is the player signature or the
// cell's own number while it is still empty.
type SnapshotCell struct {
	Index int    `json:"index"`
	Mark  Mark   `json:"mark"`
	Label string `json:"label"`
}

// Snapshot is a read-only view of a game for renderers.
type Snapshot struct {
	Size   int            `json:"size"`
	Cells  []SnapshotCell `json:"cells"`
	Turn   Player         `json:"turn"`
	Winner *Player        `json:"winner,omitempty"`
	Status Status         `json:"status"`
	Draw   bool           `json:"draw"`
}

func (that *Game) Snapshot() Snapshot {
	marks := that.board.Cells()
	cells := make([]SnapshotCell, len(marks))

	for i, mark := range marks {
		label := mark.Signature()
		if mark == Empty {
			label = strconv.Itoa(i + 1)
		}
		cells[i] = SnapshotCell{Index: i + 1, Mark: mark, Label: label}
	}

	snapshot := Snapshot{
		Size:   that.board.Size(),
		Cells:  cells,
		Turn:   that.CurrentPlayer(),
		Status: that.status,
		Draw:   that.IsDraw(),
	}

	if winner, ok := that.Winner(); ok {
		snapshot.Winner = &winner
	}

	return snapshot
}

// Row returns the cells of the given 0-based row.
func (that Snapshot) Row(row int) []SnapshotCell {
	if row < 0 || row >= that.Size {
		return nil
	}
	return that.Cells[row*that.Size : (row+1)*that.Size]
}
