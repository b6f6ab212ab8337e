package main

import (
	"context"
	"log/slog"
	"os"

	"voiceskill/internal/adapters/discord"
	"voiceskill/internal/bootstrap"
	"voiceskill/internal/config"
	"voiceskill/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.ValidateForBot()
	}
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)

	skill, err := bootstrap.NewSkill(context.Background(), cfg, log)
	if err != nil {
		log.Error("skill initialization failed", "error", err)
		os.Exit(1)
	}
	defer skill.Close()

	bot, err := discord.NewBot(cfg, skill.Service, log)
	if err != nil {
		log.Error("bot initialization failed", "error", err)
		os.Exit(1)
	}
	if err := bot.Start(); err != nil {
		log.Error("bot stopped", "error", err)
		os.Exit(1)
	}
}
