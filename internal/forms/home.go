package forms

import (
	"context"
	"strings"

	"highfields/internal/utils"
	"highfields/pkg/types"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type CheckInForm struct {
	base

	Name      string
	Phone     string
	FirstTime bool
}

func (f *CheckInForm) Validate() error {
	if isBlank(f.Name) {
		return invalid("name", "Please enter your name")
	}
	return nil
}

func (f *CheckInForm) Reset() {
	f.Name = ""
	f.Phone = ""
	f.FirstTime = false
}

// Payload builds the request body; a blank phone travels as null.
func (f *CheckInForm) Payload() *types.CheckInCreate {
	return &types.CheckInCreate{
		Name:        f.Name,
		Phone:       utils.OptionalString(f.Phone),
		IsFirstTime: f.FirstTime,
	}
}

func (f *CheckInForm) name() string { return "checkin" }

func (f *CheckInForm) send(ctx context.Context, api API) (Dialog, error) {
	if _, err := api.CreateCheckIn(ctx, f.Payload()); err != nil {
		return Dialog{}, err
	}
	return Dialog{Title: "Welcome!", Message: "You have successfully checked in. God bless you!"}, nil
}

func (f *CheckInForm) failure() Dialog {
	return errorDialog("Failed to check in. Please try again.")
}

type PrayerForm struct {
	base

	Name      string
	Request   string
	Anonymous bool
}

func (f *PrayerForm) Validate() error {
	if isBlank(f.Request) {
		return invalid("request", "Please enter your prayer request")
	}
	return nil
}

func (f *PrayerForm) Reset() {
	f.Name = ""
	f.Request = ""
	f.Anonymous = false
}

func (f *PrayerForm) Payload() *types.PrayerRequestCreate {
	p := &types.PrayerRequestCreate{
		Name:        utils.OptionalString(f.Name),
		Request:     f.Request,
		IsAnonymous: f.Anonymous,
	}
	if f.Anonymous {
		p.Name = nil
	}
	return p
}

func (f *PrayerForm) name() string { return "prayer" }

func (f *PrayerForm) send(ctx context.Context, api API) (Dialog, error) {
	if _, err := api.CreatePrayerRequest(ctx, f.Payload()); err != nil {
		return Dialog{}, err
	}
	return Dialog{Title: "Thank You", Message: "Your prayer request has been submitted. We are praying for you!"}, nil
}

func (f *PrayerForm) failure() Dialog {
	return errorDialog("Failed to submit prayer request. Please try again.")
}

type QuestionForm struct {
	base

	Name      string
	Email     string
	Question  string
	Anonymous bool
}

func (f *QuestionForm) Validate() error {
	if isBlank(f.Question) {
		return invalid("question", "Please enter your question")
	}
	return nil
}

func (f *QuestionForm) Reset() {
	f.Name = ""
	f.Email = ""
	f.Question = ""
	f.Anonymous = false
}

func (f *QuestionForm) Payload() *types.QuestionCreate {
	p := &types.QuestionCreate{
		Name:        utils.OptionalString(f.Name),
		Email:       utils.OptionalString(f.Email),
		Question:    f.Question,
		IsAnonymous: f.Anonymous,
	}
	if f.Anonymous {
		p.Name = nil
		p.Email = nil
	}
	return p
}

func (f *QuestionForm) name() string { return "question" }

func (f *QuestionForm) send(ctx context.Context, api API) (Dialog, error) {
	if _, err := api.CreateQuestion(ctx, f.Payload()); err != nil {
		return Dialog{}, err
	}
	return Dialog{Title: "Thank You", Message: "Your question has been submitted. Someone will reach out to you soon!"}, nil
}

func (f *QuestionForm) failure() Dialog {
	return errorDialog("Failed to submit question. Please try again.")
}

// ConnectForm is the general "connect me with a life group" request.
type ConnectForm struct {
	base

	Name     string
	Email    string
	Phone    string
	Interest string
}

func (f *ConnectForm) Validate() error {
	if blank(f.Name, f.Email, f.Phone) {
		return invalid("contact", "Please fill in all fields")
	}
	return nil
}

func (f *ConnectForm) Reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Interest = ""
}

func (f *ConnectForm) Payload() *types.ConnectRequestCreate {
	interest := f.Interest
	if isBlank(interest) {
		interest = types.DefaultConnectInterest
	}
	return &types.ConnectRequestCreate{
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Interest: interest,
	}
}

func (f *ConnectForm) name() string { return "connect" }

func (f *ConnectForm) send(ctx context.Context, api API) (Dialog, error) {
	if _, err := api.CreateConnectRequest(ctx, f.Payload()); err != nil {
		return Dialog{}, err
	}
	return Dialog{Title: "Thank You!", Message: "We received your request to connect! Someone from our team will reach out to you soon."}, nil
}

func (f *ConnectForm) failure() Dialog {
	return errorDialog("Failed to submit. Please try again.")
}
