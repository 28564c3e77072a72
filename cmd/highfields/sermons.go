package main

import (
	"fmt"

	"highfields/internal/display"
	"highfields/internal/screens"

	"github.com/urfave/cli/v2"
)

var sermonsCommand = &cli.Command{
	Name:  "sermons",
	Usage: "List sermons, optionally for one series",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "series", Aliases: []string{"s"}, Usage: "Only show this series", Value: screens.AllSeries},
	},
	Action: func(c *cli.Context) error {
		s, stop, err := newSession(c)
		if err != nil {
			return err
		}
		defer stop()

		sermons := screens.NewSermons(s.api, s.logger)
		_ = sermons.Activate(s.ctx)
		sermons.SelectSeries(c.String("series"))

		s.dump("sermons", sermons.List.Items())
		if msg := sermons.EmptyMessage(); msg != "" {
			fmt.Fprintln(s.out, msg)
			if sermons.List.Err() != nil {
				return cli.Exit("", 1)
			}
			return nil
		}

		printSermons(s.out, sermons)
		return nil
	},
	Subcommands: []*cli.Command{
		{
			Name:  "links",
			Usage: "Print the YouTube channel links",
			Action: func(c *cli.Context) error {
				for _, link := range display.ChannelLinks() {
					fmt.Fprintf(c.App.Writer, "%-18s %s\n", link.Title(), link.URL())
				}
				return nil
			},
		},
	},
}
