package screens

import (
	"context"
	"fmt"

	"highfields/internal/display"
	"highfields/internal/forms"
	"highfields/internal/loader"
	"highfields/pkg/types"

	"github.com/sirupsen/logrus"
)

type Tab int

const (
	TabMinistries Tab = iota
	TabLifeGroups
)

func ParseTab(s string) (Tab, error) {
	switch s {
	case "ministries":
		return TabMinistries, nil
	case "lifegroups":
		return TabLifeGroups, nil
	}
	return 0, fmt.Errorf("unknown tab %q", s)
}

// LoadFailedMessage replaces an empty list when the last load failed.
const LoadFailedMessage = "We couldn't load this list. Please try again."

func (t Tab) String() string {
	if t == TabLifeGroups {
		return "lifegroups"
	}
	return "ministries"
}

// Resources lists ministries and life groups and runs life-group signups.
// Switching tabs only changes what is shown; the group list is fetched on
// activation and after a signup.
type Resources struct {
	controller *forms.Controller

	List   *loader.Loader[*types.LifeGroup]
	Signup *forms.SignupForm

	tab Tab
}

func NewResources(api API, logger *logrus.Logger) *Resources {
	return &Resources{
		controller: forms.NewController(api, logger),
		List:       loader.New[*types.LifeGroup]("life_groups", api.LifeGroups, logger),
		Signup:     &forms.SignupForm{},
		tab:        TabMinistries,
	}
}

// Activate performs the one load a screen activation gets.
func (r *Resources) Activate(ctx context.Context) error {
	return r.List.Load(ctx)
}

func (r *Resources) SelectTab(tab Tab) {
	r.tab = tab
}

func (r *Resources) Tab() Tab {
	return r.tab
}

// Ministries is the ministries tab's content, or nil on another tab.
func (r *Resources) Ministries() []display.Ministry {
	if r.tab != TabMinistries {
		return nil
	}
	return display.Ministries()
}

// Groups is the life groups tab's content, or nil on another tab.
func (r *Resources) Groups() []*types.LifeGroup {
	if r.tab != TabLifeGroups {
		return nil
	}
	return r.List.Items()
}

// OpenSignup binds the signup form to group unless the group is full.
func (r *Resources) OpenSignup(group *types.LifeGroup) bool {
	if !display.GroupAvailability(group.MaxMembers, group.CurrentMembers).CanJoin {
		return false
	}
	r.Signup.OpenFor(group)
	return true
}

// SubmitSignup sends the signup and refetches groups after a success so member counts are current.
func (r *Resources) SubmitSignup(ctx context.Context) forms.Outcome {
	out := r.controller.Submit(ctx, r.Signup)
	if out.Status == forms.Succeeded {
		_ = r.List.Load(ctx)
	}
	return out
}

// EmptyMessage is shown in place of the group list, or "" when there is something
// to show. The ministries tab is static and never empty.
func (r *Resources) EmptyMessage() string {
	if r.tab != TabLifeGroups {
		return ""
	}
	switch r.List.State() {
	case loader.Failed:
		return LoadFailedMessage
	case loader.Loaded:
		if len(r.List.Items()) == 0 {
			return "No life groups yet. Check back soon!"
		}
	}
	return ""
}
