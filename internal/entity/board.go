package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
)

const (
	MinBoardSize = 3
	// MaxBoardSize keeps the grid allocation bounded for sizes read from user input.
	MaxBoardSize = 99
	LengthToWin  = 3
)

// Outcome is the result of a successful placement. Winner is Empty unless the
// placement completed a line through the placed cell.
type Outcome struct {
	Winner Mark
}

func (that Outcome) HasWinner() bool {
	return that.Winner != Empty
}

// Board is an N×N grid addressed by 1-based row-major cell numbers.
type Board struct {
	size       int
	grid       [][]Mark
	turn       Mark
	emptyCells int
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidSize, size)
	}

	grid := make([][]Mark, size)
	for row := range grid {
		grid[row] = make([]Mark, size)
	}

	return &Board{
		size:       size,
		grid:       grid,
		turn:       PlayerA,
		emptyCells: size * size,
	}, nil
}

// Place marks the cell for the player in turn and passes the turn on.
func (that *Board) Place(cell int) (Outcome, error) {
	if cell < 1 || cell > that.size*that.size {
		return Outcome{}, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	}

	row, col := that.position(cell)
	if that.grid[row][col] != Empty {
		return Outcome{}, fmt.Errorf("%w: %d", apperror.ErrCellOccupied, cell)
	}

	that.grid[row][col] = that.turn
	that.turn = that.turn.Opponent()
	that.emptyCells--

	if that.completesLine(row, col) {
		return Outcome{Winner: that.grid[row][col]}, nil
	}

	return Outcome{}, nil
}

func (that *Board) IsFull() bool {
	return that.emptyCells == 0
}

func (that *Board) CurrentPlayer() Mark {
	return that.turn
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) EmptyCells() int {
	return that.emptyCells
}

// At returns Empty for positions outside the grid.
func (that *Board) At(row, col int) Mark {
	if !that.inBounds(row, col) {
		return Empty
	}
	return that.grid[row][col]
}

// Cells returns a row-major copy of the grid.
func (that *Board) Cells() []Mark {
	cells := make([]Mark, 0, that.size*that.size)
	for _, row := range that.grid {
		cells = append(cells, row...)
	}
	return cells
}

func (that *Board) position(cell int) (int, int) {
	return (cell - 1) / that.size, (cell - 1) % that.size
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// completesLine only looks at lines passing through (row, col).
func (that *Board) completesLine(row, col int) bool {
	return that.rowRun(row, col) ||
		that.colRun(row, col) ||
		that.diagonalRun(row, col, 1) ||
		that.diagonalRun(row, col, -1)
}

func (that *Board) rowRun(row, col int) bool {
	mark := that.grid[row][col]
	run := 0

	for c := max(col-LengthToWin+1, 0); c < min(col+LengthToWin, that.size) && run < LengthToWin; c++ {
		if that.grid[row][c] == mark {
			run++
		} else {
			run = 0
		}
	}

	return run == LengthToWin
}

func (that *Board) colRun(row, col int) bool {
	mark := that.grid[row][col]
	run := 0

	for r := max(row-LengthToWin+1, 0); r < min(row+LengthToWin, that.size) && run < LengthToWin; r++ {
		if that.grid[r][col] == mark {
			run++
		} else {
			run = 0
		}
	}

	return run == LengthToWin
}

// diagonalRun checks the segments of LengthToWin cells containing (row, col)
// that go down-right (colStep 1) or down-left (colStep -1).
func (that *Board) diagonalRun(row, col, colStep int) bool {
	mark := that.grid[row][col]

	for offset := 0; offset < LengthToWin; offset++ {
		fromRow, fromCol := row-offset, col-offset*colStep
		toRow, toCol := fromRow+LengthToWin-1, fromCol+(LengthToWin-1)*colStep

		if !that.inBounds(fromRow, fromCol) || !that.inBounds(toRow, toCol) {
			continue
		}

		matched := true
		for step := 0; step < LengthToWin && matched; step++ {
			matched = that.grid[fromRow+step][fromCol+step*colStep] == mark
		}

		if matched {
			return true
		}
	}

	return false
}
