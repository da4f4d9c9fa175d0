package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs one game on the given terminal streams until it finishes, ctx is
// cancelled or SIGINT/SIGTERM arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// after the first signal the default handling is back, a second one kills the process
	go func() {
		<-ctx.Done()
		stop()
	}()

	bot := service.NewBotService(logger, entity.PlayerO)
	gameManager := usecase.NewGameManager(logger, bot)
	terminal := console.New(logger, gameManager, in, out, conf.Color)

	log.Info("starting game", "size", conf.BoardSize, "vs_ai", conf.VsAI)

	game, err := terminal.Play(ctx, conf.BoardSize, conf.VsAI)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, console.ErrInputClosed):
		log.Info("game abandoned", "game_id", game.ID, "reason", err)
		return nil
	case err != nil:
		return fmt.Errorf("game failed: %w", err)
	}

	log.Info("game over", "game_id", game.ID, "status", game.Status)

	return nil
}
