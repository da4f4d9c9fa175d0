package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrUnknownMark = errors.New("unknown player mark")

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1
)

// BotService picks moves for one mark. Applying them is left to the caller, so
// the computer's moves go through the same turn checks as a human's.
type BotService interface {
	BestMove(game entity.Game) (entity.Cell, error)
	Mark() entity.Mark
}

type botService struct {
	logger *slog.Logger
	mark   entity.Mark
}

// NewBotService - returns a bot that plays the given mark and is the maximizer of every search.
func NewBotService(logger *slog.Logger, mark entity.Mark) BotService {
	return &botService{
		logger: logger.With("component", "bot", "mark", mark),
		mark:   mark,
	}
}

func (that *botService) Mark() entity.Mark {
	return that.mark
}

func (that *botService) BestMove(game entity.Game) (entity.Cell, error) {
	start := time.Now()

	search := &minimax{maximizer: that.mark}
	cell, score, err := search.bestMove(game)
	if err != nil {
		return entity.Cell{}, err
	}

	that.logger.Debug("move chosen",
		"game_id", game.ID,
		"cell", cell.String(),
		"score", score,
		"nodes", search.nodes,
		"elapsed", time.Since(start),
	)

	return cell, nil
}

// BestMove - searches every continuation of the game to its end and returns the
// move that is best for maximizer: +1 for its win, -1 for its loss, 0 for a draw.
// Nodes where maximizer is to move take the highest child score, the others the
// lowest. Ties go to the first move in row-major order.
func BestMove(game entity.Game, maximizer entity.Mark) (entity.Cell, error) {
	search := &minimax{maximizer: maximizer}
	cell, _, err := search.bestMove(game)

	return cell, err
}

type minimax struct {
	maximizer entity.Mark
	nodes     int
}

func (that *minimax) bestMove(game entity.Game) (entity.Cell, int, error) {
	if that.maximizer != entity.PlayerX && that.maximizer != entity.PlayerO {
		return entity.Cell{}, 0, fmt.Errorf("%w: %q", ErrUnknownMark, that.maximizer)
	}

	available := game.Board.AvailableCells()
	if game.IsFinished() || len(available) == 0 {
		return entity.Cell{}, 0, fmt.Errorf("%w: game %s", apperror.ErrNoLegalMoves, game.Status)
	}

	maximizing := game.Turn == that.maximizer
	bestCell := available[0]
	bestScore := that.worst(maximizing)

	for _, cell := range available {
		next, err := game.ApplyMove(cell)
		if err != nil {
			return entity.Cell{}, 0, fmt.Errorf("failed to explore cell %s: %w", cell, err)
		}

		score := that.score(next)
		if that.better(score, bestScore, maximizing) {
			bestCell, bestScore = cell, score
		}

		if bestScore == that.bound(maximizing) {
			break
		}
	}

	return bestCell, bestScore, nil
}

func (that *minimax) score(game entity.Game) int {
	that.nodes++

	if game.IsFinished() {
		switch game.Winner() {
		case that.maximizer:
			return scoreWin
		case entity.EmptyCell:
			return scoreDraw
		default:
			return scoreLoss
		}
	}

	maximizing := game.Turn == that.maximizer
	best := that.worst(maximizing)

	for _, cell := range game.Board.AvailableCells() {
		next, err := game.ApplyMove(cell)
		if err != nil {
			// unreachable: cell is empty and the game is ongoing
			continue
		}

		if score := that.score(next); that.better(score, best, maximizing) {
			best = score
		}

		// the bound cannot be beaten by a later sibling
		if best == that.bound(maximizing) {
			break
		}
	}

	return best
}

func (that *minimax) better(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// worst is a score below every real outcome for the side to move.
func (that *minimax) worst(maximizing bool) int {
	if maximizing {
		return scoreLoss - 1
	}
	return scoreWin + 1
}

func (that *minimax) bound(maximizing bool) int {
	if maximizing {
		return scoreWin
	}
	return scoreLoss
}
