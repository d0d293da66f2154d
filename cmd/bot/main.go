package main

import (
	"log"

	"github.com/joho/godotenv"

	corecmd "github.com/mirrorsleep/customerbot/core/cmd"
	coreconfig "github.com/mirrorsleep/customerbot/core/config"
	"github.com/mirrorsleep/customerbot/internal/bot"
)

func main() {
	// Best effort: a missing .env is fine, env vars may come from the host.
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		Bootstrap: func(cfg *coreconfig.Config) (corecmd.TelegramApp, error) {
			return bot.New(cfg), nil
		},
	})
	if err != nil {
		log.Fatalf("bot: %v", err)
	}
}
