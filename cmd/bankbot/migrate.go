package main

import (
	"github.com/pajbot/bankbot-discord/internal/store"
	"github.com/sirupsen/logrus"
)

type migrateCommand struct{}

func (c *migrateCommand) Execute(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pg, err := store.OpenPostgres(cfg.DSN)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.Migrate(opts.MigrationsDir); err != nil {
		return err
	}

	logrus.Info("Migrations applied")

	return nil
}
