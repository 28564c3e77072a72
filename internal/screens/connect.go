package screens

import (
	"context"

	"highfields/internal/forms"

	"github.com/sirupsen/logrus"
)

// Connect is the volunteer and giving screen.
type Connect struct {
	controller *forms.Controller

	Volunteer *forms.VolunteerForm
	Donation  *forms.DonationForm
}

func NewConnect(api API, logger *logrus.Logger) *Connect {
	return &Connect{
		controller: forms.NewController(api, logger),
		Volunteer:  &forms.VolunteerForm{},
		Donation:   forms.NewDonationForm(),
	}
}

func (c *Connect) Submit(ctx context.Context, f forms.Form) forms.Outcome {
	return c.controller.Submit(ctx, f)
}
