package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"highfields/internal/client"
	"highfields/internal/forms"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// session is what every app command needs: the API, a logger and somewhere to print.
type session struct {
	ctx    context.Context
	api    *client.Client
	logger *logrus.Logger
	out    io.Writer
	debug  *pp.PrettyPrinter
	errOut io.Writer
}

func newSession(c *cli.Context) (*session, context.CancelFunc, error) {
	config, err := loadClientConfig(c)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(config.LogLevel, false)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(c.App.ErrWriter)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)

	s := &session{
		ctx:    ctx,
		api:    client.New(config.BackendURL),
		logger: logger,
		out:    c.App.Writer,
		errOut: c.App.ErrWriter,
	}

	if c.Bool("debug") {
		s.debug = pp.New()
		s.debug.SetOutput(c.App.ErrWriter)
		logger.SetLevel(logrus.DebugLevel)
	}

	return s, stop, nil
}

func (s *session) dump(label string, v any) {
	if s.debug == nil {
		return
	}
	fmt.Fprintf(s.errOut, "%s: ", label)
	s.debug.Println(v)
}

// finish prints the dialog a submit produced and turns anything but success into a non-zero exit.
func (s *session) finish(out forms.Outcome) error {
	if out.Dialog.Title != "" {
		fmt.Fprintf(s.out, "%s\n%s\n", out.Dialog.Title, out.Dialog.Message)
	}

	switch out.Status {
	case forms.Succeeded:
		return nil
	case forms.Busy:
		return cli.Exit(out.Err.Error(), 1)
	}

	return cli.Exit("", 1)
}
