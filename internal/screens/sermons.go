package screens

import (
	"context"

	"highfields/internal/display"
	"highfields/internal/loader"
	"highfields/pkg/types"

	"github.com/sirupsen/logrus"
)

// AllSeries selects every sermon.
const AllSeries = "All"

type Sermons struct {
	List *loader.Loader[*types.Sermon]

	series string
}

func NewSermons(api API, logger *logrus.Logger) *Sermons {
	return &Sermons{
		List:   loader.New[*types.Sermon]("sermons", api.Sermons, logger),
		series: AllSeries,
	}
}

func (s *Sermons) Activate(ctx context.Context) error {
	return s.List.Load(ctx)
}

// SelectSeries changes the local filter only; it never refetches.
func (s *Sermons) SelectSeries(series string) {
	if series == "" {
		series = AllSeries
	}
	s.series = series
}

func (s *Sermons) SelectedSeries() string {
	return s.series
}

// Visible returns the loaded sermons whose series equals the selection, or all of them.
func (s *Sermons) Visible() []*types.Sermon {
	items := s.List.Items()
	if s.series == AllSeries {
		return items
	}
	return loader.Filter(items, func(sermon *types.Sermon) bool {
		return sermon.Series != nil && *sermon.Series == s.series
	})
}

// Series lists the distinct series names in the order they first appear.
func (s *Sermons) Series() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, sermon := range s.List.Items() {
		if sermon.Series == nil || seen[*sermon.Series] {
			continue
		}
		seen[*sermon.Series] = true
		out = append(out, *sermon.Series)
	}
	return out
}

func (s *Sermons) EmptyMessage() string {
	switch s.List.State() {
	case loader.Failed:
		return LoadFailedMessage
	case loader.Loaded:
		if len(s.Visible()) == 0 {
			return "No sermons in this series yet."
		}
	}
	return ""
}

func (s *Sermons) Links() []display.ChannelLink {
	return display.ChannelLinks()
}
