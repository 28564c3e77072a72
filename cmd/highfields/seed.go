package main

import (
	"context"
	"fmt"

	"highfields/internal/db"
	"highfields/internal/seed"
	"highfields/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create or update the database schema",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}

		logrus.Info("Schema applied")
		return nil
	},
}

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Sync life groups and sermons with the built-in lists",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		logrus.Info("Seeding life groups...")
		if err := seed.SeedLifeGroups(ctx, store.NewLifeGroupRepository(pool), c.App.Writer); err != nil {
			return fmt.Errorf("failed to seed life groups: %w", err)
		}

		logrus.Info("Seeding sermons...")
		if err := seed.SeedSermons(ctx, store.NewSermonRepository(pool), c.App.Writer); err != nil {
			return fmt.Errorf("failed to seed sermons: %w", err)
		}

		logrus.Info("Seed data synced successfully")

		return nil
	},
}
