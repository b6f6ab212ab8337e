// Package main is the entry point for the skill's Lambda function.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"voiceskill/internal/adapters/awslambda"
	"voiceskill/internal/bootstrap"
	"voiceskill/internal/config"
	"voiceskill/internal/logger"
)

func main() {
	cfg, err := config.Load()
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

	h := awslambda.NewHandler(skill.Service, awslambda.NewWarmer(log), log)
	lambda.Start(h.Invoke)
}
