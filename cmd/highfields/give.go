package main

import (
	"fmt"
	"slices"

	"highfields/internal/forms"
	"highfields/internal/screens"
	"highfields/pkg/types"

	"github.com/urfave/cli/v2"
)

var volunteerCommand = &cli.Command{
	Name:  "volunteer",
	Usage: "Apply to serve in one or more ministry areas",
	Flags: []cli.Flag{
		nameFlag,
		emailFlag,
		phoneFlag,
		&cli.StringSliceFlag{Name: "area", Aliases: []string{"a"}, Usage: "Ministry area, repeatable"},
		&cli.StringFlag{Name: "availability", Usage: "When you are available to serve"},
		&cli.StringFlag{Name: "notes", Usage: "Anything else we should know"},
		&cli.BoolFlag{Name: "list-areas", Usage: "Print the ministry areas and exit"},
	},
	Action: func(c *cli.Context) error {
		if c.Bool("list-areas") {
			for _, area := range types.MinistryAreas() {
				fmt.Fprintln(c.App.Writer, area)
			}
			return nil
		}

		s, stop, err := newSession(c)
		if err != nil {
			return err
		}
		defer stop()

		screen := screens.NewConnect(s.api, s.logger)
		form := screen.Volunteer
		form.Open()
		form.Name = c.String("name")
		form.Email = c.String("email")
		form.Phone = c.String("phone")
		form.Availability = c.String("availability")
		form.Notes = c.String("notes")

		for _, raw := range c.StringSlice("area") {
			area, err := types.ParseMinistryArea(raw)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if !form.Selected(area) {
				_ = form.ToggleArea(area)
			}
		}

		s.dump("volunteer", form.Payload())
		return s.finish(screen.Submit(s.ctx, form))
	},
}

var donateCommand = &cli.Command{
	Name:  "donate",
	Usage: "Record an intent to give; our team follows up with payment details",
	Flags: []cli.Flag{
		nameFlag,
		emailFlag,
		&cli.Float64Flag{Name: "preset", Usage: fmt.Sprintf("One of the preset amounts %v", forms.PresetAmounts)},
		&cli.StringFlag{Name: "amount", Usage: "A custom amount"},
		&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "one-time or recurring", Value: string(types.DonationTypeOneTime)},
		&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "An optional message"},
	},
	Action: func(c *cli.Context) error {
		donationType, err := types.ParseDonationType(c.String("type"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		s, stop, err := newSession(c)
		if err != nil {
			return err
		}
		defer stop()

		screen := screens.NewConnect(s.api, s.logger)
		form := screen.Donation
		form.Open()
		form.Name = c.String("name")
		form.Email = c.String("email")
		form.Type = donationType
		form.Message = c.String("message")

		if c.IsSet("preset") {
			preset := c.Float64("preset")
			if !slices.Contains(forms.PresetAmounts, preset) {
				return cli.Exit(fmt.Sprintf("preset must be one of %v", forms.PresetAmounts), 1)
			}
			form.SelectPreset(preset)
		}
		if c.IsSet("amount") {
			form.SetCustomAmount(c.String("amount"))
		}

		s.dump("donation", form.Payload())
		return s.finish(screen.Submit(s.ctx, form))
	},
}
