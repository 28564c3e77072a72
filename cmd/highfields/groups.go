package main

import (
	"fmt"

	"highfields/internal/display"
	"highfields/internal/screens"
	"highfields/pkg/types"

	"github.com/urfave/cli/v2"
)

var resourcesCommand = &cli.Command{
	Name:  "resources",
	Usage: "Show the ministries or life groups tab",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "tab", Aliases: []string{"t"}, Usage: "ministries or lifegroups", Value: screens.TabMinistries.String()},
	},
	Action: func(c *cli.Context) error {
		tab, err := screens.ParseTab(c.String("tab"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return showResources(c, tab)
	},
}

var groupsCommand = &cli.Command{
	Name:  "groups",
	Usage: "List life groups and their open spots",
	Action: func(c *cli.Context) error {
		return showResources(c, screens.TabLifeGroups)
	},
	Subcommands: []*cli.Command{
		{
			Name:  "join",
			Usage: "Sign up for a life group",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "group", Aliases: []string{"g"}, Usage: "Group ID as shown by `groups`", Required: true},
				nameFlag,
				emailFlag,
				phoneFlag,
			},
			Action: joinGroup,
		},
	},
}

func showResources(c *cli.Context, tab screens.Tab) error {
	s, stop, err := newSession(c)
	if err != nil {
		return err
	}
	defer stop()

	resources := screens.NewResources(s.api, s.logger)
	_ = resources.Activate(s.ctx)
	resources.SelectTab(tab)

	if tab == screens.TabMinistries {
		printMinistries(s.out, resources.Ministries())
		return nil
	}

	s.dump("life groups", resources.Groups())
	if msg := resources.EmptyMessage(); msg != "" {
		fmt.Fprintln(s.out, msg)
		if resources.List.Err() != nil {
			return cli.Exit("", 1)
		}
		return nil
	}

	return printGroups(s.out, resources.Groups())
}

func joinGroup(c *cli.Context) error {
	s, stop, err := newSession(c)
	if err != nil {
		return err
	}
	defer stop()

	resources := screens.NewResources(s.api, s.logger)
	resources.SelectTab(screens.TabLifeGroups)
	if err := resources.Activate(s.ctx); err != nil {
		fmt.Fprintln(s.out, screens.LoadFailedMessage)
		return cli.Exit("", 1)
	}

	var group *types.LifeGroup
	for _, g := range resources.Groups() {
		if g.ID == c.String("group") {
			group = g
			break
		}
	}
	if group == nil {
		return cli.Exit(fmt.Sprintf("no life group with id %q", c.String("group")), 1)
	}

	if !resources.OpenSignup(group) {
		return cli.Exit(fmt.Sprintf("%s is full; ask the leader about the waitlist", group.Name), 1)
	}

	resources.Signup.Name = c.String("name")
	resources.Signup.Email = c.String("email")
	resources.Signup.Phone = c.String("phone")

	s.dump("signup", resources.Signup.Payload())
	if err := s.finish(resources.SubmitSignup(s.ctx)); err != nil {
		return err
	}

	if updated := resources.Groups(); len(updated) > 0 {
		fmt.Fprintln(s.out)
		return printGroups(s.out, updated)
	}
	return nil
}

var ministriesCommand = &cli.Command{
	Name:  "ministries",
	Usage: "Describe the church's ministries",
	Action: func(c *cli.Context) error {
		printMinistries(c.App.Writer, display.Ministries())
		return nil
	},
}
