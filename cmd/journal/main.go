package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/chzyer/readline"

	"github.com/limbo/mindful/internal/bootstrap"
	"github.com/limbo/mindful/internal/cli"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/cleanup"
	"github.com/limbo/mindful/pkg/config"
)

func main() {
	// The shell owns stdout; keep library logs out of the way.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg := config.New()
	ctx := context.Background()
	storage, err := bootstrap.OpenStorage(ctx, cfg, bootstrap.DriverSQLite)
	if err != nil {
		log.Fatal("opening storage: ", err)
	}
	defer cleanup.CleanUp()

	users := service.NewUserService(storage.Users)
	journal := service.NewJournalService(storage.Users, storage.Logs, bootstrap.JournalOptions(cfg))
	var assistant service.AssistantServiceI
	if as, err := bootstrap.NewAssistant(cfg, journal, nil); err != nil {
		fmt.Println("Chat is disabled:", err)
	} else {
		assistant = as
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mindful> ",
		HistoryFile:     cfg.GetStringOr("HISTORY_FILE", "/tmp/mindful_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal("failed to initialize readline: ", err)
	}
	defer rl.Close()

	shell := cli.New(users, journal, assistant, rl.Stdout())
	fmt.Println("Welcome to Mindful. Type 'help' for a list of commands or 'exit' to quit.")

	for {
		rl.SetPrompt(shell.Prompt())
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Println("Use 'exit' to exit the program.")
				continue
			}
			if errors.Is(err, io.EOF) {
				return
			}
			fmt.Println("Error:", err)
			return
		}
		if err = shell.Run(ctx, line); err != nil {
			if errors.Is(err, cli.ErrExit) {
				return
			}
			fmt.Println("Error:", err)
		}
	}
}
