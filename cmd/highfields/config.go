package main

import (
	"errors"
	"fmt"
	"io/fs"

	"highfields/pkg/types"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// loadEnvFile fills the environment from a dotenv file. Variables already set win.
func loadEnvFile(c *cli.Context) error {
	path := c.String("env-file")
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err != nil && !(errors.Is(err, fs.ErrNotExist) && !c.IsSet("env-file")) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

func loadConfig(c *cli.Context) (*types.Config, error) {
	config := new(types.Config)
	if err := envconfig.Process(c.String("env-prefix"), config); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL")
	}

	if config.ServerPort == 0 {
		config.ServerPort = 8080
	}

	if config.ReadTimeoutSec == 0 {
		config.ReadTimeoutSec = 10
	}

	if config.WriteTimeoutSec == 0 {
		config.WriteTimeoutSec = 15
	}

	return config, nil
}

func loadClientConfig(c *cli.Context) (*types.ClientConfig, error) {
	config := new(types.ClientConfig)
	if err := envconfig.Process(c.String("env-prefix"), config); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if url := c.String("backend-url"); url != "" {
		config.BackendURL = url
	}

	if config.BackendURL == "" {
		return nil, fmt.Errorf("set BACKEND_URL or pass --backend-url")
	}

	return config, nil
}

func newLogger(level string, json bool) (*logrus.Logger, error) {
	logger := logrus.New()
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(lvl)

	return logger, nil
}
