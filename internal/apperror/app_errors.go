package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameOver     = errors.New("game is already finished")
	ErrNoLegalMoves = errors.New("no legal moves")
)

// causes of ErrInvalidMove, errors.Is matches both the cause and the kind.
var (
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidCell  = fmt.Errorf("%w: cell is out of bounds", ErrInvalidMove)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrInvalidMove)
)

var (
	ErrGameIsNotStarted     = errors.New("game is not started")
	ErrBotDisabled          = errors.New("game is not played against the computer")
	ErrNotBotTurn           = errors.New("it's not the computer's turn")
	ErrUnsupportedBoardSize = errors.New("unsupported board size")
)
