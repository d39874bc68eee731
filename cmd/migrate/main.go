package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"fyyur/internal/config"
	"fyyur/internal/logging"
	"fyyur/internal/migrations"
)

const usage = "usage: migrate up | down | steps N | version"

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.Config{}).Fatal(err, "Invalid configuration")
	}

	logger := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	logging.SetGlobalLogger(logger)

	if err := run(os.Args[1:], cfg.Database.URL, logger); err != nil {
		logger.Fatal(err, "Migration failed")
	}
}

func run(args []string, databaseURL string, logger *logging.Logger) error {
	cmd, steps, err := parseArgs(args)
	if err != nil {
		return err
	}

	runner, err := migrations.Open(databaseURL)
	if err != nil {
		return err
	}
	defer runner.Close()

	switch cmd {
	case "up":
		if err := runner.Up(); err != nil {
			return err
		}
		logger.Info("Migrations applied successfully")
	case "down":
		if err := runner.Down(); err != nil {
			return err
		}
		logger.Info("Migrations rolled back successfully")
	case "steps":
		if err := runner.Steps(steps); err != nil {
			return err
		}
		logger.Zerolog().Info().Int("steps", steps).Msg("Migrations stepped")
	case "version":
		version, dirty, ok, err := runner.Version()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("no migrations applied")
			return nil
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	}
	return nil
}

func parseArgs(args []string) (string, int, error) {
	if len(args) == 0 {
		return "", 0, errors.New(usage)
	}

	switch args[0] {
	case "up", "down", "version":
		if len(args) != 1 {
			return "", 0, errors.New(usage)
		}
		return args[0], 0, nil
	case "steps":
		if len(args) != 2 {
			return "", 0, errors.New(usage)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n == 0 {
			return "", 0, fmt.Errorf("steps needs a non-zero number: %s", usage)
		}
		return "steps", n, nil
	default:
		return "", 0, errors.New(usage)
	}
}
