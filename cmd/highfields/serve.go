package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"highfields/internal/db"
	"highfields/internal/server"
	"highfields/internal/store"

	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP API server",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "migrate",
			Usage: "Apply the schema before serving",
		},
	},
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logger, err := newLogger(config.LogLevel, true)
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cCtx.Bool("migrate") {
		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}
		logger.Info("schema applied")
	}

	srv := server.New(config, logger, server.Stores{
		CheckIns:        store.NewCheckInRepository(pool),
		PrayerRequests:  store.NewPrayerRequestRepository(pool),
		Questions:       store.NewQuestionRepository(pool),
		Volunteers:      store.NewVolunteerRepository(pool),
		Donations:       store.NewDonationRepository(pool),
		ConnectRequests: store.NewConnectRequestRepository(pool),
		LifeGroups:      store.NewLifeGroupRepository(pool),
		Sermons:         store.NewSermonRepository(pool),
	})

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
