package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dressify/internal/cli"
)

func main() {
	// Structured logger on stderr so command output stays clean on stdout
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("APP_ENV") == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cli.Execute()
}
