package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Standing(ctx context.Context, player string) (*entity.Standing, error)
	Standings(ctx context.Context) ([]*entity.Standing, error)
}

// Match is one hosted game. All access to the game goes through the match lock.
type Match struct {
	ID string

	mu   sync.Mutex
	game *entity.Game
}

func (that *Match) Snapshot() entity.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Snapshot()
}

func (that *Match) IsEnded() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.IsEnded()
}

type MatchManager struct {
	logger     *slog.Logger
	resultRepo resultRepo

	now func() time.Time
}

// NewMatchManager builds a manager; a nil resultRepo disables the scoreboard.
func NewMatchManager(logger *slog.Logger, resultRepo resultRepo) *MatchManager {
	return &MatchManager{
		logger:     logger.With("component", "match-manager"),
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

func (that *MatchManager) ScoreboardEnabled() bool {
	return that.resultRepo != nil
}

func (that *MatchManager) Start(size int, first, second string) (*Match, error) {
	game, err := entity.NewGame(size, first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}

	match := &Match{
		ID:   uuid.NewString(),
		game: game,
	}

	that.logger.Info("match started", "matchID", match.ID, "size", size, "playerOne", first, "playerTwo", second)

	return match, nil
}

func (that *MatchManager) Play(ctx context.Context, match *Match, cell int) (entity.MoveResult, error) {
	log := that.logger.With("method", "Play", "matchID", match.ID)

	match.mu.Lock()
	defer match.mu.Unlock()

	result, err := match.game.SubmitMove(cell)
	if err != nil {
		log.Debug("move rejected", "cell", cell, "error", err)
		return result, fmt.Errorf("failed to make move: %w", err)
	}

	log.Debug("move accepted", "cell", cell, "player", result.Player.Name)

	if result.Ended {
		if result.Winner != nil {
			log.Info("match won", "winner", result.Winner.Name, "moves", match.game.MoveCount())
		} else {
			log.Info("match drawn", "moves", match.game.MoveCount())
		}

		that.recordResult(ctx, match)
	}

	return result, nil
}

// recordResult never fails the move: the game is over whether or not the scoreboard took it.
func (that *MatchManager) recordResult(ctx context.Context, match *Match) {
	if that.resultRepo == nil {
		return
	}

	log := that.logger.With("method", "recordResult", "matchID", match.ID)

	result := entity.NewResult(match.ID, match.game, that.now().UTC())
	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to record result", "error", err)
		return
	}

	log.Info("result recorded")
}

func (that *MatchManager) GetResult(ctx context.Context, id string) (*entity.Result, error) {
	if that.resultRepo == nil {
		return nil, apperror.ErrScoreboardDisabled
	}

	result, err := that.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return result, nil
}

func (that *MatchManager) Standing(ctx context.Context, player string) (*entity.Standing, error) {
	if that.resultRepo == nil {
		return nil, apperror.ErrScoreboardDisabled
	}

	standing, err := that.resultRepo.Standing(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to get standing: %w", err)
	}

	return standing, nil
}

func (that *MatchManager) Standings(ctx context.Context) ([]*entity.Standing, error) {
	if that.resultRepo == nil {
		return nil, apperror.ErrScoreboardDisabled
	}

	standings, err := that.resultRepo.Standings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings: %w", err)
	}

	return standings, nil
}
