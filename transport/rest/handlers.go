package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

type scoreboard interface {
	GetResult(ctx context.Context, id string) (*entity.Result, error)
	Standing(ctx context.Context, player string) (*entity.Standing, error)
	Standings(ctx context.Context) ([]*entity.Standing, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type standingsResponse struct {
	Standings []*entity.Standing `json:"standings"`
}

type ScoreboardHandler struct {
	logger     *slog.Logger
	scoreboard scoreboard
}

func NewScoreboardHandler(logger *slog.Logger, scoreboard scoreboard) *ScoreboardHandler {
	return &ScoreboardHandler{
		logger:     logger.With("component", "scoreboard-handler"),
		scoreboard: scoreboard,
	}
}

func (that *ScoreboardHandler) ListStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := that.scoreboard.Standings(r.Context())
	if err != nil {
		that.writeError(w, "ListStandings", err)
		return
	}

	if standings == nil {
		standings = []*entity.Standing{}
	}

	that.writeJSON(w, http.StatusOK, standingsResponse{Standings: standings})
}

func (that *ScoreboardHandler) GetStanding(w http.ResponseWriter, r *http.Request) {
	standing, err := that.scoreboard.Standing(r.Context(), mux.Vars(r)["player"])
	if err != nil {
		that.writeError(w, "GetStanding", err)
		return
	}

	that.writeJSON(w, http.StatusOK, standing)
}

func (that *ScoreboardHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	result, err := that.scoreboard.GetResult(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.writeError(w, "GetResult", err)
		return
	}

	that.writeJSON(w, http.StatusOK, result)
}

func (that *ScoreboardHandler) writeError(w http.ResponseWriter, method string, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: apperror.ErrNotFound.Error()})
	case errors.Is(err, apperror.ErrScoreboardDisabled):
		that.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: apperror.ErrScoreboardDisabled.Error()})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// writeJSON can only log an encode failure: the status line is already sent.
func (that *ScoreboardHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		that.logger.Error("failed to write response", "status", status, "error", err)
	}
}
