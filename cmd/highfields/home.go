package main

import (
	"highfields/internal/screens"

	"github.com/urfave/cli/v2"
)

var nameFlag = &cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Your name"}
var emailFlag = &cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Your email address"}
var phoneFlag = &cli.StringFlag{Name: "phone", Usage: "Your phone number"}

var checkinCommand = &cli.Command{
	Name:  "checkin",
	Usage: "Check in to today's service",
	Flags: []cli.Flag{
		nameFlag,
		phoneFlag,
		&cli.BoolFlag{Name: "first-time", Usage: "This is your first visit"},
	},
	Action: func(c *cli.Context) error {
		s, stop, err := newSession(c)
		if err != nil {
			return err
		}
		defer stop()

		home := screens.NewHome(s.api, s.logger)
		home.CheckIn.Open()
		home.CheckIn.Name = c.String("name")
		home.CheckIn.Phone = c.String("phone")
		home.CheckIn.FirstTime = c.Bool("first-time")

		s.dump("checkin", home.CheckIn.Payload())
		return s.finish(home.Submit(s.ctx, home.CheckIn))
	},
}

var prayCommand = &cli.Command{
	Name:  "pray",
	Usage: "Send a prayer request",
	Flags: []cli.Flag{
		nameFlag,
		&cli.StringFlag{Name: "request", Aliases: []string{"r"}, Usage: "What we can pray for"},
		&cli.BoolFlag{Name: "anonymous", Usage: "Leave your name off the request"},
	},
	Action: func(c *cli.Context) error {
		s, stop, err := newSession(c)
		if err != nil {
			return err
		}
		defer stop()

		home := screens.NewHome(s.api, s.logger)
		home.Prayer.Open()
		home.Prayer.Name = c.String("name")
		home.Prayer.Request = c.String("request")
		home.Prayer.Anonymous = c.Bool("anonymous")

		s.dump("prayer request", home.Prayer.Payload())
		return s.finish(home.Submit(s.ctx, home.Prayer))
	},
}

var askCommand = &cli.Command{
	Name:  "ask",
	Usage: "Ask the church team a question",
	Flags: []cli.Flag{
		nameFlag,
		emailFlag,
		&cli.StringFlag{Name: "question", Aliases: []string{"q"}, Usage: "Your question"},
		&cli.BoolFlag{Name: "anonymous", Usage: "Leave your name and email off the question"},
	},
	Action: func(c *cli.Context) error {
		s, stop, err := newSession(c)
		if err != nil {
			return err
		}
		defer stop()

		home := screens.NewHome(s.api, s.logger)
		home.Question.Open()
		home.Question.Name = c.String("name")
		home.Question.Email = c.String("email")
		home.Question.Question = c.String("question")
		home.Question.Anonymous = c.Bool("anonymous")

		s.dump("question", home.Question.Payload())
		return s.finish(home.Submit(s.ctx, home.Question))
	},
}

var connectCommand = &cli.Command{
	Name:  "connect",
	Usage: "Ask to be connected with a life group",
	Flags: []cli.Flag{
		nameFlag,
		emailFlag,
		phoneFlag,
		&cli.StringFlag{Name: "interest", Usage: "What you are interested in (default \"Life Group\")"},
	},
	Action: func(c *cli.Context) error {
		s, stop, err := newSession(c)
		if err != nil {
			return err
		}
		defer stop()

		home := screens.NewHome(s.api, s.logger)
		home.Connect.Open()
		home.Connect.Name = c.String("name")
		home.Connect.Email = c.String("email")
		home.Connect.Phone = c.String("phone")
		home.Connect.Interest = c.String("interest")

		s.dump("connect request", home.Connect.Payload())
		return s.finish(home.Submit(s.ctx, home.Connect))
	},
}

var scheduleCommand = &cli.Command{
	Name:  "schedule",
	Usage: "Show the events for a day of the week",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "day", Aliases: []string{"d"}, Usage: "SUN, MON, TUE, WED, THU, FRI or SAT", Value: "SUN"},
	},
	Action: func(c *cli.Context) error {
		return printSchedule(c.App.Writer, c.String("day"))
	},
}
