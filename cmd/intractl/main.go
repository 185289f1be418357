package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bumilsoft/intraclient/internal/config"
)

func main() {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	c := config.New()
	setupLogging(c)

	app, err := newApp(c)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise client")
	}

	rootCmd := SetupCommands(app)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(c config.Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if c.GetEnv() == "DEV" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
