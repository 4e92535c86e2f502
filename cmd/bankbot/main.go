package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/pajbot/bankbot-discord/internal/config"
	"github.com/pajbot/bankbot-discord/internal/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type options struct {
	EnvFiles      []string `long:"env-file" description:"Load environment variables from this file before reading the config (can be repeated)"`
	MigrationsDir string   `long:"migrations-dir" default:"migrations" description:"Directory holding the SQL migrations"`
}

var opts options

// loadConfig reads the env files then the configuration, and sets up logging
func loadConfig() (*config.Config, error) {
	if len(opts.EnvFiles) > 0 {
		if err := godotenv.Load(opts.EnvFiles...); err != nil {
			return nil, errors.Wrap(err, "failed to load env files")
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, errors.Wrap(err, "failed to load .env")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.Init(cfg.LogLevel)

	return cfg, nil
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true

	if _, err := parser.AddCommand("run", "Run the bot", "Connect to Discord and serve economy commands until interrupted (default)", &runCommand{}); err != nil {
		logrus.Fatal(err)
	}
	if _, err := parser.AddCommand("migrate", "Run SQL migrations", "Apply the SQL migrations to the postgres store and exit", &migrateCommand{}); err != nil {
		logrus.Fatal(err)
	}

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if parser.Active == nil {
		if err := (&runCommand{}).Execute(nil); err != nil {
			logrus.Fatal(err)
		}
	}
}
