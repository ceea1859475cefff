package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/config"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/repository"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-nxn/transport/console"
	"github.com/rocketscienceinc/tictactoe-nxn/transport/rest"
)

// App holds the wired dependencies shared by every command.
type App struct {
	logger *slog.Logger
	conf   *config.Config

	redisStorage *redis.Client
	matches      *usecase.MatchManager
}

// New wires the application. The scoreboard is only connected when redis is enabled.
func New(ctx context.Context, logger *slog.Logger, conf *config.Config) (*App, error) {
	app := &App{
		logger: logger,
		conf:   conf,
	}

	var resultRepo repository.ResultRepository

	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr(), conf.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		app.redisStorage = redisStorage
		resultRepo = repository.NewResultRepository(redisStorage, conf.Redis.ResultTTL)
	}

	app.matches = usecase.NewMatchManager(logger, resultRepo)

	return app, nil
}

func (that *App) Matches() *usecase.MatchManager {
	return that.matches
}

func (that *App) Close() error {
	if that.redisStorage == nil {
		return nil
	}

	if err := that.redisStorage.Close(); err != nil {
		return fmt.Errorf("could not close redis storage: %w", err)
	}

	return nil
}

// RunConsole plays one match on the given streams. Unset setup fields fall back to the config.
func (that *App) RunConsole(ctx context.Context, in io.Reader, out io.Writer, setup console.Setup) (*usecase.Match, error) {
	if setup.BoardSize == 0 {
		setup.BoardSize = that.conf.Game.BoardSize
	}
	if setup.PlayerOne == "" {
		setup.PlayerOne = that.conf.Game.PlayerOne
	}
	if setup.PlayerTwo == "" {
		setup.PlayerTwo = that.conf.Game.PlayerTwo
	}

	session := console.NewSession(that.logger, that.matches, in, out)

	match, err := session.Run(ctx, setup)
	if err != nil {
		return match, fmt.Errorf("console session failed: %w", err)
	}

	return match, nil
}

// RunHTTP serves the scoreboard API until ctx is cancelled.
func (that *App) RunHTTP(ctx context.Context) error {
	router := rest.NewRouter(that.logger, that.matches)

	if err := rest.Start(ctx, that.logger, that.conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// NewLogger builds the JSON logger for the configured level; unknown levels mean info.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
