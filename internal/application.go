package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/transport/console"
	"github.com/rocketscienceinc/tictactoe-local/transport/window"
)

// RunApp - runs the game in the given mode until the player quits.
func RunApp(logger *slog.Logger, conf *config.Config, mode tictactoe.Mode) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	scoreRepo, closeRepo, err := newScoreRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	scoreKeeper := usecase.NewScoreKeeper(logger, scoreRepo)

	presenter, err := newPresenter(ctx, logger, conf, mode)
	if err != nil {
		return err
	}

	game, err := tictactoe.NewGame(logger, presenter,
		tictactoe.WithBoardSize(conf.BoardSize),
		tictactoe.WithRecorder(scoreKeeper),
	)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	log.Info("Starting game", "mode", mode, "board_size", conf.BoardSize)

	if err = game.Run(ctx); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}

	standings, err := scoreKeeper.Standings(context.WithoutCancel(ctx))
	if err != nil {
		log.Error("could not read standings", "error", err)
		return nil
	}

	log.Info("Game over", "standings", standings.String(), "rounds", standings.Rounds())

	return nil
}

func newPresenter(ctx context.Context, logger *slog.Logger, conf *config.Config, mode tictactoe.Mode) (tictactoe.Presenter, error) {
	switch mode {
	case tictactoe.ModeText:
		return console.New(ctx, logger, os.Stdin, os.Stdout), nil
	case tictactoe.ModeGraphical:
		return window.New(logger, conf.Window.Title, conf.Window.Width, conf.Window.Height), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}
}

// newScoreRepository picks redis when it is configured and memory otherwise.
func newScoreRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ScoreRepository, func(), error) {
	if !conf.Redis.UsesRedis() {
		log.Info("Keeping score in memory")
		return repository.NewMemoryScoreRepository(), func() {}, nil
	}

	addr := conf.Redis.GetRedisAddr()

	client, err := storage.New(ctx, addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	session := pkg.GenerateSessionID()

	log.Info("Keeping score in redis", "addr", addr, "prefix", conf.Redis.KeyPrefix, "session", session)

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewScoreRepository(client, conf.Redis.KeyPrefix, session), closeFn, nil
}
