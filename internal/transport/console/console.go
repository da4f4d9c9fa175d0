package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrInputClosed = errors.New("input closed before the game finished")

type gameManager interface {
	NewGame(size int, vsAI bool) (entity.Game, error)
	MakeTurn(player entity.Mark, cell entity.Cell) (entity.Game, error)
	BotTurn() (entity.Cell, entity.Game, error)
	CurrentPlayer() *entity.Player
	Player(mark entity.Mark) *entity.Player
	IsBotTurn() bool
}

// Console plays one game on a terminal: it prints the board, asks the player to
// move for a position and passes it to the game manager.
type Console struct {
	logger   *slog.Logger
	manager  gameManager
	input    io.Reader
	renderer *Renderer

	reading sync.Once
	lines   chan string
	readErr error
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		manager:  manager,
		input:    in,
		renderer: NewRenderer(out, color),
	}
}

// Play - runs one game until it finishes or ctx is cancelled, also while waiting
// for input. The input is read by a single goroutine that stops with the ctx of
// the first Play, so a Console plays one game.
func (that *Console) Play(ctx context.Context, size int, vsAI bool) (entity.Game, error) {
	that.reading.Do(func() { that.startReading(ctx) })

	game, err := that.manager.NewGame(size, vsAI)
	if err != nil {
		return game, fmt.Errorf("failed to start game: %w", err)
	}

	that.renderer.Board(game.Board)

	for !game.IsFinished() {
		if err = ctx.Err(); err != nil {
			return game, err
		}

		if that.manager.IsBotTurn() {
			var cell entity.Cell
			cell, game, err = that.manager.BotTurn()
			if err != nil {
				return game, fmt.Errorf("computer failed to move: %w", err)
			}

			that.renderer.Line("%s plays %d", that.manager.Player(game.Board.At(cell)).Name, cell.Index(game.Board.Size))
			that.renderer.Board(game.Board)
			continue
		}

		player := that.manager.CurrentPlayer()
		cell, err := that.readCell(ctx, game, player)
		if err != nil {
			return game, err
		}

		next, err := that.manager.MakeTurn(player.Mark, cell)
		if err != nil {
			if !errors.Is(err, apperror.ErrInvalidMove) {
				return game, err
			}

			that.logger.Debug("move rejected", "player", player.Name, "cell", cell.String(), "error", err)
			that.renderer.Line("%s", that.rejection(err, game.Board.Size))
			continue
		}

		game = next
		that.renderer.Board(game.Board)
	}

	that.announce(game)

	return game, nil
}

// startReading - feeds input lines into that.lines until the input ends or ctx is done.
func (that *Console) startReading(ctx context.Context) {
	that.lines = make(chan string)

	go func() {
		defer close(that.lines)

		scanner := bufio.NewScanner(that.input)
		for scanner.Scan() {
			select {
			case that.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		// read by the consumer only after lines is closed
		that.readErr = scanner.Err()
	}()
}

// readCell - prompts until the input can be read as a position.
func (that *Console) readCell(ctx context.Context, game entity.Game, player *entity.Player) (entity.Cell, error) {
	for {
		that.renderer.Prompt("Turn of %s, enter target position [%s]: ", player.Name, player.Mark)

		var line string
		select {
		case <-ctx.Done():
			return entity.Cell{}, ctx.Err()
		case next, ok := <-that.lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return entity.Cell{}, err
				}
				if that.readErr != nil {
					return entity.Cell{}, fmt.Errorf("failed to read input: %w", that.readErr)
				}
				return entity.Cell{}, ErrInputClosed
			}
			line = next
		}

		cell, err := ParseCell(line, game.Board.Size)
		if err == nil {
			return cell, nil
		}

		that.renderer.Line("%s", that.rangeHint(game.Board.Size))
	}
}

func (that *Console) rejection(err error, size int) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Position is taken!"
	case errors.Is(err, apperror.ErrInvalidCell):
		return that.rangeHint(size)
	default:
		return "Invalid move!"
	}
}

func (that *Console) rangeHint(size int) string {
	return fmt.Sprintf("Invalid position! It must be an integer between 0-%d or a row and a column between 0-%d.",
		size*size-1, size-1)
}

func (that *Console) announce(game entity.Game) {
	if winner := game.Winner(); winner != entity.EmptyCell {
		that.renderer.Result(fmt.Sprintf("%s wins!", that.manager.Player(winner).Name))
		return
	}

	that.renderer.Result("No winner! Play again.")
}
