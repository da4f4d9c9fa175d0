package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// MaxBotBoardSize is the largest board the exhaustive search is allowed on.
const MaxBotBoardSize = 3

type botService interface {
	BestMove(game entity.Game) (entity.Cell, error)
	Mark() entity.Mark
}

// GameManager owns the state of the current game and is the only thing that replaces it.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	game    entity.Game
	vsAI    bool
	players map[entity.Mark]*entity.Player
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
}

// NewGame - starts a fresh size×size game. With vsAI the computer takes the bot's mark.
func (that *GameManager) NewGame(size int, vsAI bool) (entity.Game, error) {
	if vsAI && that.bot == nil {
		return entity.Game{}, apperror.ErrBotDisabled
	}

	if vsAI && size > MaxBotBoardSize {
		return entity.Game{}, fmt.Errorf("%w: %d, the computer plays on boards up to %d",
			apperror.ErrUnsupportedBoardSize, size, MaxBotBoardSize)
	}

	game, err := entity.NewGame(pkg.GenerateGameID(), size)
	if err != nil {
		return entity.Game{}, fmt.Errorf("failed create game: %w", err)
	}

	that.game = game
	that.vsAI = vsAI
	that.players = that.seatPlayers(vsAI)

	that.logger.Info("game started", "game_id", game.ID, "size", size, "vs_ai", vsAI)

	return game, nil
}

func (that *GameManager) seatPlayers(vsAI bool) map[entity.Mark]*entity.Player {
	players := map[entity.Mark]*entity.Player{
		entity.PlayerX: {Name: "Player 1", Mark: entity.PlayerX},
		entity.PlayerO: {Name: "Player 2", Mark: entity.PlayerO},
	}

	if vsAI {
		players[that.bot.Mark()] = &entity.Player{Name: "Computer", Mark: that.bot.Mark(), Bot: true}
	}

	return players
}

// MakeTurn - applies a human player's move to the current game. The computer's
// mark is rejected with ErrNotYourTurn while the game is ongoing, it moves through BotTurn.
func (that *GameManager) MakeTurn(player entity.Mark, cell entity.Cell) (entity.Game, error) {
	if err := that.confirmStarted(); err != nil {
		return that.game, err
	}

	if that.game.IsOngoing() && that.isBotSeat(player) {
		return that.game, fmt.Errorf("failed make turn: %w: %s is played by the computer",
			apperror.ErrNotYourTurn, player)
	}

	return that.makeTurn(player, cell)
}

func (that *GameManager) makeTurn(player entity.Mark, cell entity.Cell) (entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", that.game.ID)

	next, err := tictactoe.MakeTurn(that.game, player, cell)
	if err != nil {
		log.Debug("move rejected", "player", player, "cell", cell.String(), "error", err)
		return that.game, fmt.Errorf("failed make turn: %w", err)
	}

	that.game = next
	log.Debug("move applied", "player", player, "cell", cell.String(), "status", next.Status)

	if next.IsFinished() {
		log.Info("game finished", "status", next.Status, "winner", next.Winner(), "moves", len(next.Moves))
	}

	return next, nil
}

// BestMove - returns the computer's choice for the current game without applying it.
func (that *GameManager) BestMove() (entity.Cell, error) {
	if err := that.confirmStarted(); err != nil {
		return entity.Cell{}, err
	}

	if !that.vsAI {
		return entity.Cell{}, apperror.ErrBotDisabled
	}

	if that.game.IsOngoing() && that.game.Turn != that.bot.Mark() {
		return entity.Cell{}, apperror.ErrNotBotTurn
	}

	cell, err := that.bot.BestMove(that.game)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed find best move: %w", err)
	}

	return cell, nil
}

// BotTurn - lets the computer play its move through the same turn checks as a human.
func (that *GameManager) BotTurn() (entity.Cell, entity.Game, error) {
	cell, err := that.BestMove()
	if err != nil {
		return entity.Cell{}, that.game, err
	}

	game, err := that.makeTurn(that.bot.Mark(), cell)
	if err != nil {
		return entity.Cell{}, that.game, err
	}

	return cell, game, nil
}

func (that *GameManager) isBotSeat(mark entity.Mark) bool {
	player := that.players[mark]
	return player != nil && player.IsBot()
}

func (that *GameManager) confirmStarted() error {
	if that.players == nil {
		return apperror.ErrGameIsNotStarted
	}
	return nil
}

func (that *GameManager) Game() entity.Game {
	return that.game
}

func (that *GameManager) Status() entity.Status {
	return that.game.Status
}

func (that *GameManager) VsAI() bool {
	return that.vsAI
}

// Player - returns who plays the mark, nil before the first game.
func (that *GameManager) Player(mark entity.Mark) *entity.Player {
	return that.players[mark]
}

// CurrentPlayer - returns the player to move, nil once the game is finished.
func (that *GameManager) CurrentPlayer() *entity.Player {
	return that.players[that.game.Turn]
}

// IsBotTurn - reports whether the computer is the one to move.
func (that *GameManager) IsBotTurn() bool {
	player := that.CurrentPlayer()
	return player != nil && player.IsBot()
}
