package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "highfields",
		Usage: "Highfields Community Church app and API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-prefix",
				Aliases: []string{"p"},
				Usage:   "Environment variable prefix",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Dotenv file loaded before reading the environment",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "backend-url",
				Aliases: []string{"b"},
				Usage:   "Base URL of the API, overrides BACKEND_URL",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Dump request payloads and API responses",
			},
		},
		Before: loadEnvFile,
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			seedCommand,
			nanoidCommand,
			checkinCommand,
			prayCommand,
			askCommand,
			connectCommand,
			volunteerCommand,
			donateCommand,
			resourcesCommand,
			groupsCommand,
			ministriesCommand,
			sermonsCommand,
			scheduleCommand,
		},
	}
}
