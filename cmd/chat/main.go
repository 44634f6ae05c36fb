package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/fundsbot/fundsbot/internal/app"
	"github.com/fundsbot/fundsbot/internal/config"
	"github.com/fundsbot/fundsbot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("info")
		l.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.LogLevel == "info" {
		cfg.LogLevel = "warn"
	}
	log := logger.New(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	ctx := context.Background()
	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start")
	}
	defer a.Close(ctx)

	prompt := color.New(color.FgCyan, color.Bold)
	special := color.New(color.FgMagenta, color.Bold)

	color.Green("fundsbot: type a message, or 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		prompt.Print("you> ")
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "quit" || text == "exit" {
			break
		}
		if text == "" {
			continue
		}

		reply := a.Handlers.HandleMessage(ctx, text)
		if reply.Special != nil {
			special.Printf("bot> %s [%s]\n", reply.Special.Text, reply.Special.ImagePath)
			continue
		}
		fmt.Printf("%s %s\n", color.YellowString("bot>"), reply.Text)
	}

	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Failed to read input")
	}
}
