package main

import (
	"fmt"
	"io"
	"strings"

	"highfields/internal/display"
	"highfields/internal/screens"
	"highfields/pkg/types"
)

func printGroups(w io.Writer, groups []*types.LifeGroup) error {
	for i, g := range groups {
		icon, err := display.GroupIcon(g.Kind)
		if err != nil {
			return fmt.Errorf("group %s: %w", g.ID, err)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		avail := display.GroupAvailability(g.MaxMembers, g.CurrentMembers)

		fmt.Fprintf(w, "[%s] %s (%s)\n", icon, g.Name, g.ID)
		fmt.Fprintf(w, "  %s\n", g.Description)
		fmt.Fprintf(w, "  Leader: %s\n", g.Leader)
		fmt.Fprintf(w, "  When:   %s\n", g.Schedule)
		fmt.Fprintf(w, "  Where:  %s\n", g.Location)
		fmt.Fprintf(w, "  %s - %s\n", avail.Badge, avail.Button)
	}
	return nil
}

func printMinistries(w io.Writer, ministries []display.Ministry) {
	for i, m := range ministries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, m.Name)
		fmt.Fprintf(w, "  %s\n", m.Description)
	}
}

func printSermons(w io.Writer, s *screens.Sermons) {
	series := append([]string{screens.AllSeries}, s.Series()...)
	fmt.Fprintf(w, "Series: %s (showing %s)\n\n", strings.Join(series, ", "), s.SelectedSeries())

	for _, sermon := range s.Visible() {
		fmt.Fprintf(w, "%s  %s\n", sermon.Date.Format("2006-01-02"), sermon.Title)
		fmt.Fprintf(w, "  %s", sermon.Speaker)
		if sermon.Series != nil {
			fmt.Fprintf(w, " | %s", *sermon.Series)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", sermon.YoutubeURL)
	}
}

func printSchedule(w io.Writer, code string) error {
	day, err := display.ParseDay(code)
	if err != nil {
		return err
	}

	gradient := display.DayColors(day)
	fmt.Fprintf(w, "%s (%s -> %s)\n", day, gradient.From, gradient.To)

	events := display.Schedule(day)
	if len(events) == 0 {
		fmt.Fprintln(w, display.RestDayMessage)
		return nil
	}

	for _, e := range events {
		fmt.Fprintf(w, "  %-10s %s [%s]\n", e.Time, e.Name, e.Icon)
	}
	return nil
}
