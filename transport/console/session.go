package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/usecase"
)

var (
	ErrInputClosed = errors.New("input closed")

	errNotANumber = errors.New("not a number")
)

type matchPlayer interface {
	Start(size int, first, second string) (*usecase.Match, error)
	Play(ctx context.Context, match *usecase.Match, cell int) (entity.MoveResult, error)
}

// Setup holds what is already known before the session starts. Zero values are
// asked for on the input.
type Setup struct {
	BoardSize int
	PlayerOne string
	PlayerTwo string
}

// Session plays one hot-seat match over a line-based input and output.
type Session struct {
	logger  *slog.Logger
	matches matchPlayer

	in  *bufio.Scanner
	out io.Writer
}

func NewSession(logger *slog.Logger, matches matchPlayer, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger:  logger.With("component", "console"),
		matches: matches,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run asks for whatever Setup is missing and then loops on moves until the match ends.
func (that *Session) Run(ctx context.Context, setup Setup) (*usecase.Match, error) {
	match, err := that.start(setup)
	if err != nil {
		return nil, err
	}

	for !match.IsEnded() {
		if err = ctx.Err(); err != nil {
			return match, err
		}

		snapshot := match.Snapshot()
		if err = RenderBoard(that.out, snapshot); err != nil {
			return match, err
		}
		if err = RenderInstruction(that.out, snapshot); err != nil {
			return match, err
		}

		var cell int
		cell, err = that.readNumber()
		if errors.Is(err, ErrInputClosed) {
			return match, err
		}
		if err != nil {
			that.say("Oops, please enter a cell number.")
			continue
		}

		if _, err = that.matches.Play(ctx, match, cell); err != nil {
			that.say(that.describe(err))
		}
	}

	snapshot := match.Snapshot()
	if err = RenderBoard(that.out, snapshot); err != nil {
		return match, err
	}
	if err = RenderInstruction(that.out, snapshot); err != nil {
		return match, err
	}

	return match, nil
}

func (that *Session) start(setup Setup) (*usecase.Match, error) {
	size := setup.BoardSize
	for size == 0 {
		that.say("Enter game dimension:")

		number, err := that.readNumber()
		switch {
		case errors.Is(err, ErrInputClosed):
			return nil, err
		case err != nil:
			that.say("Oops, please enter a number.")
		case number < entity.MinBoardSize:
			that.say(fmt.Sprintf("Oops, the dimension must be at least %d.", entity.MinBoardSize))
		case number > entity.MaxBoardSize:
			that.say(fmt.Sprintf("Oops, the dimension must be at most %d.", entity.MaxBoardSize))
		default:
			size = number
		}
	}

	first, err := that.askName(setup.PlayerOne, "Enter name for Player 1:", "Player 1", "")
	if err != nil {
		return nil, err
	}

	second, err := that.askName(setup.PlayerTwo, "Enter name for Player 2:", "Player 2", first)
	if err != nil {
		return nil, err
	}

	match, err := that.matches.Start(size, first, second)
	if err != nil {
		return nil, fmt.Errorf("could not start session: %w", err)
	}

	return match, nil
}

// askName prompts until it gets a name other than taken. A blank line means fallback.
func (that *Session) askName(preset, prompt, fallback, taken string) (string, error) {
	if preset != "" {
		return preset, nil
	}

	for {
		that.say(prompt)

		name, err := that.readLine()
		if err != nil {
			return "", err
		}

		if name == "" {
			name = fallback
		}

		if name == taken {
			that.say(fmt.Sprintf("Oops, %s is already playing.", name))
			continue
		}

		return name, nil
	}
}

func (that *Session) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Session) readNumber() (int, error) {
	line, err := that.readLine()
	if err != nil {
		return 0, err
	}

	number, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, line)
	}

	return number, nil
}

func (that *Session) describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		return "Oops, invalid cell."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Oops, the cell is occupied."
	case errors.Is(err, apperror.ErrGameFinished):
		return "Oops, the game is already over."
	default:
		that.logger.Error("unexpected move error", "error", err)
		return "Oops, something went wrong."
	}
}

func (that *Session) say(line string) {
	if _, err := fmt.Fprintln(that.out, line); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
