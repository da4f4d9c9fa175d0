package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, size int) entity.Game {
	t.Helper()

	game, err := entity.NewGame("123", size)
	require.NoError(t, err)
	return game
}

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: create a new game
		game := newGame(t, 3)

		// When: player X makes a turn
		next, err := MakeTurn(game, entity.PlayerX, entity.Cell{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		assert.Equal(t, entity.PlayerX, next.Board.At(entity.Cell{Row: 0, Col: 0}))
		assert.Equal(t, entity.PlayerO, next.Turn)
		assert.Equal(t, entity.StatusOngoing, next.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: player X moved to (0,0)
		game := newGame(t, 3)
		game, err := MakeTurn(game, entity.PlayerX, entity.Cell{Row: 0, Col: 0})
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		next, err := MakeTurn(game, entity.PlayerO, entity.Cell{Row: 0, Col: 0})

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		// Then: the game state remains unchanged
		require.Equal(t, game, next)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)

		// When: player O tries to make a move when it is player X's turn
		next, err := MakeTurn(game, entity.PlayerO, entity.Cell{Row: 0, Col: 1})

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		// Then: the game state remains unchanged
		require.Equal(t, game, next)
	})

	t.Run("Same player twice in a row", func(t *testing.T) {
		// Given: player X has just moved
		game := newGame(t, 3)
		game, err := MakeTurn(game, entity.PlayerX, entity.Cell{Row: 0, Col: 0})
		require.NoError(t, err)

		// When: player X tries to move again
		_, err = MakeTurn(game, entity.PlayerX, entity.Cell{Row: 2, Col: 2})

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Unknown player", func(t *testing.T) {
		game := newGame(t, 3)

		_, err := MakeTurn(game, entity.EmptyCell, entity.Cell{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)

		// When: an invalid cell is passed (greater than the range)
		_, err := MakeTurn(game, entity.PlayerX, entity.Cell{Row: 3, Col: 7})

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		// Given: a new game
		game := newGame(t, 3)

		// When: negative cell is transmitted
		_, err := MakeTurn(game, entity.PlayerX, entity.Cell{Row: -1, Col: 0})

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player X has already won with the top row
		game := newGame(t, 3)
		moves := []struct {
			player entity.Mark
			cell   entity.Cell
		}{
			{entity.PlayerX, entity.Cell{Row: 0, Col: 0}},
			{entity.PlayerO, entity.Cell{Row: 1, Col: 1}},
			{entity.PlayerX, entity.Cell{Row: 0, Col: 1}},
			{entity.PlayerO, entity.Cell{Row: 2, Col: 2}},
			{entity.PlayerX, entity.Cell{Row: 0, Col: 2}},
		}
		for _, move := range moves {
			var err error
			game, err = MakeTurn(game, move.player, move.cell)
			require.NoError(t, err)
		}
		require.Equal(t, entity.StatusXWins, game.Status)

		// When: either player tries to make a move after the game is over
		for _, player := range []entity.Mark{entity.PlayerO, entity.PlayerX} {
			next, err := MakeTurn(game, player, entity.Cell{Row: 2, Col: 0})

			// Then: an error ErrGameOver should be returned and nothing changes
			require.ErrorIs(t, err, apperror.ErrGameOver)
			require.Equal(t, game, next)
		}
	})
}

// TestMakeTurn_RandomGames plays random legal games and checks the invariants
// that must hold on every step.
func TestMakeTurn_RandomGames(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for size := 1; size <= 5; size++ {
		for n := 0; n < 50; n++ {
			game := newGame(t, size)
			occupied := make(map[entity.Cell]entity.Mark)
			var last entity.Mark

			for game.IsOngoing() {
				available := game.Board.AvailableCells()
				require.NotEmpty(t, available)

				cell := available[rnd.Intn(len(available))]
				player := game.Turn
				require.NotEqual(t, last, player, "same player moved twice")

				next, err := MakeTurn(game, player, cell)
				require.NoError(t, err)

				// occupied cells keep their mark forever
				_, taken := occupied[cell]
				require.False(t, taken, "cell %s occupied twice", cell)
				occupied[cell] = player
				for c, mark := range occupied {
					require.Equal(t, mark, next.Board.At(c))
				}

				game, last = next, player
			}

			// terminal is absorbing
			for _, cell := range game.Board.AvailableCells() {
				_, err := MakeTurn(game, last.Opponent(), cell)
				require.ErrorIs(t, err, apperror.ErrGameOver)
				_, err = MakeTurn(game, last, cell)
				require.ErrorIs(t, err, apperror.ErrGameOver)
			}
		}
	}
}
