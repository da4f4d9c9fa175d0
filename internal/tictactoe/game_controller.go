package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// MakeTurn - applies the player's move and returns the next state. On error the
// given state is returned unchanged.
func MakeTurn(game entity.Game, player entity.Mark, cell entity.Cell) (entity.Game, error) {
	// a finished game rejects everybody, the player to move or not
	if err := game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err := validateMove(game, player); err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}

	next, err := game.ApplyMove(cell)
	if err != nil {
		return game, fmt.Errorf("invalid turn: %w", err)
	}

	return next, nil
}

// validateMove - checks that the player is the one to move.
func validateMove(game entity.Game, player entity.Mark) error {
	if player != entity.PlayerX && player != entity.PlayerO {
		return fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidMove, player)
	}

	if game.Turn != player {
		return apperror.ErrNotYourTurn
	}

	return nil
}
