package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusXWins   Status = "x-wins"
	StatusOWins   Status = "o-wins"
	StatusDraw    Status = "draw"
)

func (that Status) IsTerminal() bool {
	return that != StatusOngoing
}

// Winner - returns the winning mark, EmptyCell for a draw or an ongoing game.
func (that Status) Winner() Mark {
	switch that {
	case StatusXWins:
		return PlayerX
	case StatusOWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

func winStatus(mark Mark) Status {
	if mark == PlayerX {
		return StatusXWins
	}
	return StatusOWins
}

// Game is the state of one match. It is a value: ApplyMove returns the next
// state and never touches the receiver, so a Game can be shared freely.
type Game struct {
	ID     string `json:"id"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Status Status `json:"status"`
	Moves  []Cell `json:"moves"`

	patterns []Pattern
}

// NewGame - creates an empty size×size game with X to move.
func NewGame(id string, size int) (Game, error) {
	if size < 1 {
		return Game{}, fmt.Errorf("%w: %d", apperror.ErrUnsupportedBoardSize, size)
	}

	return Game{
		ID:       id,
		Board:    NewBoard(size),
		Turn:     PlayerX,
		Status:   StatusOngoing,
		Moves:    []Cell{},
		patterns: GeneratePatterns(size),
	}, nil
}

// Patterns - returns a copy of the winning lines for the game's board size.
func (that Game) Patterns() []Pattern {
	patterns := that.winningLines()
	copied := make([]Pattern, 0, len(patterns))
	for _, pattern := range patterns {
		copied = append(copied, slices.Clone(pattern))
	}

	return copied
}

// winningLines is shared by every state of one game and must not be modified.
func (that Game) winningLines() []Pattern {
	if that.patterns == nil {
		return GeneratePatterns(that.Board.Size)
	}
	return that.patterns
}

func (that Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Game) Winner() Mark {
	return that.Status.Winner()
}

// ConfirmOngoingState - returns ErrGameOver once the game reached a terminal status.
func (that Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return fmt.Errorf("%w: %s", apperror.ErrGameOver, that.Status)
	}
	return nil
}

// ApplyMove - places the current player's mark on the cell and returns the next state.
func (that Game) ApplyMove(cell Cell) (Game, error) {
	if err := that.ConfirmOngoingState(); err != nil {
		return that, err
	}

	if !that.Board.InBounds(cell) {
		return that, fmt.Errorf("%w: cell %s", apperror.ErrInvalidCell, cell)
	}

	if that.Board.At(cell) != EmptyCell {
		return that, fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, cell)
	}

	next := that
	next.Board = that.Board.place(cell, that.Turn)
	next.Moves = append(slices.Clone(that.Moves), cell)
	next.Turn = that.Turn.Opponent()
	next.UpdateGameState()

	return next, nil
}

// UpdateGameState - recomputes the status from the board. A finished game has nobody to move.
func (that *Game) UpdateGameState() {
	that.Status = CheckTerminal(that.Board, that.winningLines())
	if that.Status.IsTerminal() {
		that.Turn = EmptyCell
	}
}

// CheckTerminal - reports a win for the owner of the first pattern fully occupied
// by one player, a draw for a full board without such a pattern, ongoing otherwise.
// When several patterns are complete at once the first one in generation order decides.
func CheckTerminal(board Board, patterns []Pattern) Status {
	for _, pattern := range patterns {
		if owner := patternOwner(board, pattern); owner != EmptyCell {
			return winStatus(owner)
		}
	}

	// the game will continue until all the squares are full
	if board.IsFull() {
		return StatusDraw
	}

	return StatusOngoing
}

func patternOwner(board Board, pattern Pattern) Mark {
	if len(pattern) == 0 {
		return EmptyCell
	}

	owner := board.At(pattern[0])
	for _, cell := range pattern[1:] {
		if board.At(cell) != owner {
			return EmptyCell
		}
	}

	return owner
}
