package screens

import (
	"context"

	"highfields/internal/display"
	"highfields/internal/forms"

	"github.com/sirupsen/logrus"
)

type Home struct {
	controller *forms.Controller

	CheckIn  *forms.CheckInForm
	Prayer   *forms.PrayerForm
	Question *forms.QuestionForm
	Connect  *forms.ConnectForm

	checkedIn bool
	day       display.Day
}

func NewHome(api API, logger *logrus.Logger) *Home {
	return &Home{
		controller: forms.NewController(api, logger),
		CheckIn:    &forms.CheckInForm{},
		Prayer:     &forms.PrayerForm{},
		Question:   &forms.QuestionForm{},
		Connect:    &forms.ConnectForm{},
		day:        display.Sunday,
	}
}

// Submit runs one of the home screen's forms. A successful check-in latches CheckedIn.
func (h *Home) Submit(ctx context.Context, f forms.Form) forms.Outcome {
	out := h.controller.Submit(ctx, f)
	if out.Status == forms.Succeeded && f == forms.Form(h.CheckIn) {
		h.checkedIn = true
	}
	return out
}

func (h *Home) CheckedIn() bool {
	return h.checkedIn
}

func (h *Home) SelectDay(day display.Day) {
	h.day = day
}

func (h *Home) SelectedDay() display.Day {
	return h.day
}

func (h *Home) Events() []display.Event {
	return display.Schedule(h.day)
}
