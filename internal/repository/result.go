package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

const (
	standingsKey = "standings"

	fieldWins   = "wins"
	fieldLosses = "losses"
	fieldDraws  = "draws"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByID(ctx context.Context, id string) (*entity.Result, error)
	Standing(ctx context.Context, player string) (*entity.Standing, error)
	Standings(ctx context.Context) ([]*entity.Standing, error)
}

type dbResult struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultRepository keeps results for ttl; zero keeps them forever. Standings never expire.
func NewResultRepository(client *redis.Client, ttl time.Duration) ResultRepository {
	return &dbResult{
		client: client,
		ttl:    ttl,
	}
}

func resultKey(id string) string {
	return "result:" + id
}

func standingKey(player string) string {
	return "standing:" + player
}

// Save rejects results whose players share a name, since standings are keyed by name.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	if result.Players[0] == result.Players[1] {
		return fmt.Errorf("could not save result %s: %w", result.ID, apperror.ErrDuplicatePlayerName)
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(result.ID), resultJSON, that.ttl)

		for _, player := range result.Players {
			field := fieldLosses
			switch {
			case result.IsDraw():
				field = fieldDraws
			case player == result.Winner:
				field = fieldWins
			}

			pipe.HIncrBy(ctx, standingKey(player), field, 1)
			pipe.SAdd(ctx, standingsKey, player)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("result %s: %w", id, apperror.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// Standing returns a zero standing for players that never finished a match.
func (that *dbResult) Standing(ctx context.Context, player string) (*entity.Standing, error) {
	fields, err := that.client.HGetAll(ctx, standingKey(player)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get standing: %w", err)
	}

	return parseStanding(player, fields)
}

func parseStanding(player string, fields map[string]string) (*entity.Standing, error) {
	var err error

	standing := &entity.Standing{Player: player}
	for field, dest := range map[string]*int64{
		fieldWins:   &standing.Wins,
		fieldLosses: &standing.Losses,
		fieldDraws:  &standing.Draws,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *dest, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse %s for %s: %w", field, player, err)
		}
	}

	return standing, nil
}

// Standings are ordered by wins, then by fewest losses, then by name.
func (that *dbResult) Standings(ctx context.Context) ([]*entity.Standing, error) {
	players, err := that.client.SMembers(ctx, standingsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	cmds := make([]*redis.MapStringStringCmd, len(players))
	_, err = that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, player := range players {
			cmds[i] = pipe.HGetAll(ctx, standingKey(player))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	standings := make([]*entity.Standing, 0, len(players))
	for i, player := range players {
		standing, err := parseStanding(player, cmds[i].Val())
		if err != nil {
			return nil, err
		}
		standings = append(standings, standing)
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.Losses != b.Losses {
			return a.Losses < b.Losses
		}
		return a.Player < b.Player
	})

	return standings, nil
}
