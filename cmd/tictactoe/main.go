package main

import (
	"context"
	"ctchen222/tictactoe-minimax/internal/api/controller"
	"ctchen222/tictactoe-minimax/internal/api/service"
	"ctchen222/tictactoe-minimax/internal/bot"
	"ctchen222/tictactoe-minimax/internal/config"
	"ctchen222/tictactoe-minimax/internal/game"
	"ctchen222/tictactoe-minimax/internal/logger"
	"ctchen222/tictactoe-minimax/internal/match"
	"ctchen222/tictactoe-minimax/internal/server"
	"ctchen222/tictactoe-minimax/internal/telemetry"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
)

const usage = `usage: tictactoe [-config file] <command> [flags]

commands:
  serve              run the HTTP analysis API
  play [-human x|o]  play against the engine on this terminal
  selfplay           let the engine play both sides
`

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	flags := flag.NewFlagSet("tictactoe", flag.ExitOnError)
	flags.Usage = func() { fmt.Fprint(flags.Output(), usage) }
	configPath := flags.String("config", "", "path to a yaml config file")
	_ = flags.Parse(os.Args[1:])

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, flags.Arg(0), flags.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, command string, args []string) error {
	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}()

	// The terminal commands keep stdout for the board.
	logOutput := io.Writer(os.Stdout)
	if command != "serve" {
		logOutput = os.Stderr
	}
	log := logger.Init(logOutput, conf.LogLevel)

	engine, err := bot.NewEngine(log)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	switch command {
	case "serve":
		return serve(ctx, conf, log, engine)
	case "play":
		return play(ctx, log, engine, args)
	case "selfplay":
		return selfPlay(ctx, log, engine)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func serve(ctx context.Context, conf *config.Config, log *slog.Logger, engine *bot.Engine) error {
	gin.SetMode(gin.ReleaseMode)

	boardController := controller.NewBoardController(service.NewSolverService(engine))
	srv, err := server.NewServer(log, boardController)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:        conf.HTTP.Addr,
		Handler:     srv.Engine(),
		ReadTimeout: conf.HTTP.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server started", "addr", conf.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}

func play(ctx context.Context, log *slog.Logger, engine *bot.Engine, args []string) error {
	flags := flag.NewFlagSet("play", flag.ContinueOnError)
	side := flags.String("human", "x", "the side you play, x or o")
	if err := flags.Parse(args); err != nil {
		return err
	}

	human := match.NewHumanMover(os.Stdin, os.Stdout)
	computer := &match.BotMover{Engine: engine}

	m := &match.Match{Logger: log, OnMove: printMove}
	switch strings.ToLower(*side) {
	case "x":
		m.X, m.O = human, computer
	case "o":
		m.X, m.O = computer, human
	default:
		return fmt.Errorf("-human must be x or o, got %q", *side)
	}

	start := game.InitialState()
	fmt.Println(start)
	final, err := m.Run(ctx, start)
	if err != nil {
		return err
	}
	printResult(final)
	return nil
}

func selfPlay(ctx context.Context, log *slog.Logger, engine *bot.Engine) error {
	computer := &match.BotMover{Engine: engine}
	m := &match.Match{X: computer, O: computer, Logger: log, OnMove: printMove}

	final, err := m.Run(ctx, game.InitialState())
	if err != nil {
		return err
	}
	printResult(final)
	return nil
}

func printMove(board game.Board, player game.Player, action game.Action) {
	fmt.Printf("\n%s plays %v\n%s\n", player.Mark(), action, board)
}

func printResult(board game.Board) {
	switch game.Result(board) {
	case game.XWins:
		fmt.Println("\nX wins")
	case game.OWins:
		fmt.Println("\nO wins")
	default:
		fmt.Println("\ndraw")
	}
}
