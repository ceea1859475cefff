package entity

import "time"

// Result is the outcome of a finished match as kept on the scoreboard. It holds
// no board state, so a match cannot be resumed or replayed from it.
type Result struct {
	ID         string    `json:"id"`
	BoardSize  int       `json:"board_size"`
	Players    [2]string `json:"players"`
	Winner     string    `json:"winner,omitempty"`
	Draw       bool      `json:"draw"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewResult(id string, game *Game, finishedAt time.Time) *Result {
	players := game.Players()

	result := &Result{
		ID:         id,
		BoardSize:  game.Size(),
		Players:    [2]string{players[0].Name, players[1].Name},
		Moves:      game.MoveCount(),
		Draw:       game.IsDraw(),
		FinishedAt: finishedAt,
	}

	if winner, ok := game.Winner(); ok {
		result.Winner = winner.Name
	}

	return result
}

func (that *Result) IsDraw() bool {
	return that.Draw
}

type Standing struct {
	Player string `json:"player"`
	Wins   int64  `json:"wins"`
	Losses int64  `json:"losses"`
	Draws  int64  `json:"draws"`
}

func (that *Standing) Played() int64 {
	return that.Wins + that.Losses + that.Draws
}
