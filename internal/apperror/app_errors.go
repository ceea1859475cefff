package apperror

import "errors"

var (
	ErrInvalidSize         = errors.New("board size out of range")
	ErrInvalidPlayerName   = errors.New("player name must not be empty")
	ErrDuplicatePlayerName = errors.New("players must have different names")
	ErrInvalidCell         = errors.New("invalid cell")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrGameFinished        = errors.New("game is already finished")
	ErrNotFound            = errors.New("not found")
	ErrScoreboardDisabled  = errors.New("scoreboard is disabled")
)
