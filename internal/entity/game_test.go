package entity

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, size int) *Game {
	t.Helper()

	game, err := NewGame(size, "Alice", "Bob")
	require.NoError(t, err)

	return game
}

func playMoves(t *testing.T, game *Game, cells ...int) MoveResult {
	t.Helper()

	var result MoveResult
	for _, cell := range cells {
		var err error
		result, err = game.SubmitMove(cell)
		require.NoError(t, err, "move at cell %d", cell)
	}

	return result
}

func TestNewGame(t *testing.T) {
	t.Run("Starts ongoing with player one in turn", func(t *testing.T) {
		// When: a new game is created
		game := newGame(t, 3)

		// Then: it is ongoing, has no winner and Alice plays x
		assert.Equal(t, StatusOngoing, game.Status())
		assert.False(t, game.IsEnded())
		assert.False(t, game.IsDraw())
		_, ok := game.Winner()
		assert.False(t, ok)
		assert.Equal(t, Player{Name: "Alice", Mark: PlayerA}, game.CurrentPlayer())
		assert.Equal(t, "x", game.CurrentPlayer().Signature())
		assert.Equal(t, [2]Player{{Name: "Alice", Mark: PlayerA}, {Name: "Bob", Mark: PlayerB}}, game.Players())
		assert.Equal(t, 0, game.MoveCount())
	})

	t.Run("Rejects a degenerate board", func(t *testing.T) {
		// When: a game with a 2x2 board is requested
		game, err := NewGame(2, "Alice", "Bob")

		// Then: ErrInvalidSize is returned
		require.ErrorIs(t, err, apperror.ErrInvalidSize)
		assert.Nil(t, game)
	})

	t.Run("Rejects blank names", func(t *testing.T) {
		for _, names := range [][2]string{{"", "Carol"}, {"Alice", "  "}} {
			// When: one of the players has no name
			game, err := NewGame(3, names[0], names[1])

			// Then: ErrInvalidPlayerName is returned
			require.ErrorIs(t, err, apperror.ErrInvalidPlayerName)
			assert.Nil(t, game)
		}
	})

	t.Run("Rejects the same name twice", func(t *testing.T) {
		// When: both players are called Bob, once with padding
		game, err := NewGame(3, "Bob", " Bob ")

		// Then: ErrDuplicatePlayerName is returned
		require.ErrorIs(t, err, apperror.ErrDuplicatePlayerName)
		assert.Nil(t, game)
	})

	t.Run("Names are trimmed", func(t *testing.T) {
		// When: names carry surrounding spaces
		game, err := NewGame(3, " Alice", "Bob\t")

		// Then: the stored names are trimmed
		require.NoError(t, err)
		players := game.Players()
		assert.Equal(t, "Alice", players[0].Name)
		assert.Equal(t, "Bob", players[1].Name)
	})
}

func TestGame_SubmitMove(t *testing.T) {
	t.Run("Column win on a 3x3 board", func(t *testing.T) {
		// Given: a new 3x3 game
		game := newGame(t, 3)

		// When: Alice takes 1, 4, 7 while Bob takes 2, 3
		result := playMoves(t, game, 1, 2, 4, 3, 7)

		// Then: Alice wins after the fifth move
		require.True(t, result.Ended)
		require.NotNil(t, result.Winner)
		assert.Equal(t, "Alice", result.Winner.Name)
		assert.Equal(t, 7, result.Cell)
		assert.Equal(t, "Alice", result.Player.Name)
		assert.False(t, result.IsDraw())

		winner, ok := game.Winner()
		require.True(t, ok)
		assert.Equal(t, "Alice", winner.Name)
		assert.Equal(t, StatusEnded, game.Status())
		assert.True(t, game.IsEnded())
		assert.False(t, game.IsDraw())
		assert.Equal(t, 5, game.MoveCount())
	})

	t.Run("Ongoing move keeps the game going", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)

		// When: Alice plays the centre
		result := playMoves(t, game, 5)

		// Then: the game continues with Bob in turn
		assert.False(t, result.Ended)
		assert.Nil(t, result.Winner)
		assert.Equal(t, StatusOngoing, game.Status())
		assert.Equal(t, "Bob", game.CurrentPlayer().Name)
	})

	t.Run("Failed move leaves the game ongoing and unchanged", func(t *testing.T) {
		// Given: a game where Alice has taken cell 1
		game := newGame(t, 3)
		playMoves(t, game, 1)
		before := game.Snapshot()

		// When: Bob picks an occupied and then an invalid cell
		_, err := game.SubmitMove(1)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		_, err = game.SubmitMove(10)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		// Then: nothing changed and it is still Bob's turn
		assert.Equal(t, before, game.Snapshot())
		assert.Equal(t, 1, game.MoveCount())
		assert.Equal(t, "Bob", game.CurrentPlayer().Name)
	})

	t.Run("Draw on a full 3x3 board", func(t *testing.T) {
		// Given: a new 3x3 game
		game := newGame(t, 3)

		// When: the board is filled without any line of three
		result := playMoves(t, game, 1, 2, 3, 5, 4, 6, 8, 7, 9)

		// Then: the game ends with no winner
		assert.True(t, result.Ended)
		assert.Nil(t, result.Winner)
		assert.True(t, result.IsDraw())
		assert.True(t, game.IsEnded())
		assert.True(t, game.IsDraw())
		_, ok := game.Winner()
		assert.False(t, ok)
	})

	t.Run("Draw on a full 4x4 board", func(t *testing.T) {
		// Given: a new 4x4 game
		game := newGame(t, 4)

		// When: the board is filled in a pattern with no line of three
		//  x x o o
		//  o o x x
		//  x x o o
		//  o o x x
		result := playMoves(t, game, 1, 3, 2, 4, 7, 5, 8, 6, 9, 11, 10, 12, 15, 13, 16, 14)

		// Then: the game ends in a draw
		assert.True(t, result.IsDraw())
		assert.True(t, game.IsDraw())
		assert.Equal(t, 16, game.MoveCount())
	})

	t.Run("Moves after the end are rejected", func(t *testing.T) {
		// Given: a game Alice has already won
		game := newGame(t, 3)
		playMoves(t, game, 1, 2, 4, 3, 7)
		before := game.Snapshot()

		// When: another move is submitted
		_, err := game.SubmitMove(9)

		// Then: ErrGameFinished is returned and the board is untouched
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, before, game.Snapshot())
	})
}

func TestGame_Snapshot(t *testing.T) {
	t.Run("Labels empty cells with their number", func(t *testing.T) {
		// Given: a game with two moves
		game := newGame(t, 3)
		playMoves(t, game, 1, 5)

		// When: a snapshot is taken
		snapshot := game.Snapshot()

		// Then: marks show signatures and empty cells show their index
		require.Len(t, snapshot.Cells, 9)
		assert.Equal(t, 3, snapshot.Size)
		assert.Equal(t, SnapshotCell{Index: 1, Mark: PlayerA, Label: "x"}, snapshot.Cells[0])
		assert.Equal(t, SnapshotCell{Index: 2, Mark: Empty, Label: "2"}, snapshot.Cells[1])
		assert.Equal(t, SnapshotCell{Index: 5, Mark: PlayerB, Label: "o"}, snapshot.Cells[4])
		assert.Equal(t, "Alice", snapshot.Turn.Name)
		assert.Equal(t, StatusOngoing, snapshot.Status)
		assert.Nil(t, snapshot.Winner)
		assert.False(t, snapshot.Draw)
	})

	t.Run("Row slices the grid", func(t *testing.T) {
		// Given: a snapshot of a 3x3 game
		snapshot := newGame(t, 3).Snapshot()

		// Then: each row holds its own three cells
		row := snapshot.Row(1)
		require.Len(t, row, 3)
		assert.Equal(t, 4, row[0].Index)
		assert.Equal(t, 6, row[2].Index)
		assert.Nil(t, snapshot.Row(3))
	})

	t.Run("Carries the winner", func(t *testing.T) {
		// Given: a finished game
		game := newGame(t, 3)
		playMoves(t, game, 1, 2, 4, 3, 7)

		// When: a snapshot is taken
		snapshot := game.Snapshot()

		// Then: winner and status are set
		require.NotNil(t, snapshot.Winner)
		assert.Equal(t, "Alice", snapshot.Winner.Name)
		assert.Equal(t, StatusEnded, snapshot.Status)
		assert.False(t, snapshot.Draw)
	})
}

func TestNewResult(t *testing.T) {
	finishedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Win", func(t *testing.T) {
		// Given: a game Alice won
		game := newGame(t, 3)
		playMoves(t, game, 1, 2, 4, 3, 7)

		// When: the result is built
		result := NewResult("r-1", game, finishedAt)

		// Then: it names the winner
		assert.Equal(t, &Result{
			ID:         "r-1",
			BoardSize:  3,
			Players:    [2]string{"Alice", "Bob"},
			Winner:     "Alice",
			Moves:      5,
			FinishedAt: finishedAt,
		}, result)
		assert.False(t, result.IsDraw())
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a drawn game
		game := newGame(t, 3)
		playMoves(t, game, 1, 2, 3, 5, 4, 6, 8, 7, 9)

		// When: the result is built
		result := NewResult("r-2", game, finishedAt)

		// Then: there is no winner
		assert.True(t, result.Draw)
		assert.True(t, result.IsDraw())
		assert.Empty(t, result.Winner)
		assert.Equal(t, 9, result.Moves)
	})
}

func TestStanding_Played(t *testing.T) {
	standing := &Standing{Player: "Alice", Wins: 2, Losses: 1, Draws: 3}
	assert.Equal(t, int64(6), standing.Played())
}
