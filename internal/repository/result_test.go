package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
	"github.com/rocketscienceinc/tictactoe-nxn/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResult(id, first, second, winner string) *entity.Result {
	return &entity.Result{
		ID:         id,
		BoardSize:  3,
		Players:    [2]string{first, second},
		Winner:     winner,
		Draw:       winner == "",
		Moves:      7,
		FinishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestResultRepository_Save(t *testing.T) {
	t.Run("Stores the result and updates both standings", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, 0)

		// Given: a result Alice won against Bob
		result := newResult("r-1", "Alice", "Bob", "Alice")

		// When: Save is called
		err := resultRepo.Save(ctx, result)

		// Then: the result can be read back and the tallies moved
		require.NoError(t, err)

		stored, err := resultRepo.GetByID(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, result, stored)

		alice, err := resultRepo.Standing(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, &entity.Standing{Player: "Alice", Wins: 1}, alice)

		bob, err := resultRepo.Standing(ctx, "Bob")
		require.NoError(t, err)
		assert.Equal(t, &entity.Standing{Player: "Bob", Losses: 1}, bob)
	})

	t.Run("Draw counts for both players", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, 0)

		// Given: a drawn result
		result := newResult("r-2", "Alice", "Bob", "")

		// When: Save is called
		require.NoError(t, resultRepo.Save(ctx, result))

		// Then: both players have one draw
		for _, player := range []string{"Alice", "Bob"} {
			standing, err := resultRepo.Standing(ctx, player)
			require.NoError(t, err)
			assert.Equal(t, int64(1), standing.Draws)
			assert.Equal(t, int64(1), standing.Played())
		}
	})

	t.Run("Players sharing a name are rejected", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, 0)

		// Given: a result where both players are called Bob
		result := newResult("r-4", "Bob", "Bob", "Bob")

		// When: Save is called
		err := resultRepo.Save(ctx, result)

		// Then: nothing is stored and no tally moves
		require.ErrorIs(t, err, apperror.ErrDuplicatePlayerName)

		_, err = resultRepo.GetByID(ctx, "r-4")
		require.ErrorIs(t, err, apperror.ErrNotFound)

		bob, err := resultRepo.Standing(ctx, "Bob")
		require.NoError(t, err)
		assert.Zero(t, bob.Played())
	})

	t.Run("Draw flag decides the tally", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, 0)

		// Given: a won result and a drawn one
		won := newResult("r-5", "Alice", "Bob", "Alice")
		drawn := newResult("r-6", "Alice", "Bob", "")

		// When: both are saved
		require.NoError(t, resultRepo.Save(ctx, won))
		require.NoError(t, resultRepo.Save(ctx, drawn))

		// Then: each counts once in the right column
		alice, err := resultRepo.Standing(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, &entity.Standing{Player: "Alice", Wins: 1, Draws: 1}, alice)

		stored, err := resultRepo.GetByID(ctx, "r-6")
		require.NoError(t, err)
		assert.True(t, stored.IsDraw())
	})

	t.Run("Results expire after the configured ttl", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, time.Hour)

		// When: a result is saved with a ttl
		require.NoError(t, resultRepo.Save(ctx, newResult("r-3", "Alice", "Bob", "Bob")))

		// Then: the result key carries it
		ttl, err := st.Storage.TTL(ctx, resultKey("r-3")).Result()
		require.NoError(t, err)
		assert.Equal(t, time.Hour, ttl)
	})
}

func TestResultRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, 0)

		// When: GetByID is called with a non-existent ID
		result, err := resultRepo.GetByID(ctx, "9999999")

		// Then: ErrNotFound is returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, result)
	})
}

func TestResultRepository_Standings(t *testing.T) {
	t.Run("Unknown player has an empty standing", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, 0)

		// When: a player with no results is looked up
		standing, err := resultRepo.Standing(ctx, "Nobody")

		// Then: the standing is all zeros
		require.NoError(t, err)
		assert.Equal(t, &entity.Standing{Player: "Nobody"}, standing)
	})

	t.Run("Ordered by wins, then losses, then name", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, 0)

		// Given: a few finished matches
		require.NoError(t, resultRepo.Save(ctx, newResult("1", "Alice", "Bob", "Alice")))
		require.NoError(t, resultRepo.Save(ctx, newResult("2", "Alice", "Carol", "Alice")))
		require.NoError(t, resultRepo.Save(ctx, newResult("3", "Carol", "Dave", "Carol")))
		require.NoError(t, resultRepo.Save(ctx, newResult("4", "Bob", "Dave", "")))

		// When: the standings are listed
		standings, err := resultRepo.Standings(ctx)

		// Then: Alice leads, Carol follows, Bob and Dave tie and sort by name
		require.NoError(t, err)
		require.Len(t, standings, 4)
		assert.Equal(t, &entity.Standing{Player: "Alice", Wins: 2}, standings[0])
		assert.Equal(t, &entity.Standing{Player: "Carol", Wins: 1, Losses: 1}, standings[1])
		assert.Equal(t, &entity.Standing{Player: "Bob", Losses: 1, Draws: 1}, standings[2])
		assert.Equal(t, &entity.Standing{Player: "Dave", Losses: 1, Draws: 1}, standings[3])
	})

	t.Run("Empty scoreboard", func(t *testing.T) {
		ctx, st := suite.New(t)
		resultRepo := NewResultRepository(st.Storage, 0)

		// When: nothing was saved yet
		standings, err := resultRepo.Standings(ctx)

		// Then: the list is empty
		require.NoError(t, err)
		assert.Empty(t, standings)
	})
}
