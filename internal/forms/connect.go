package forms

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"highfields/internal/utils"
	"highfields/pkg/types"
)

type VolunteerForm struct {
	base

	Name         string
	Email        string
	Phone        string
	Availability string
	Notes        string

	areas []types.MinistryArea
}

// ToggleArea selects an area, or deselects it when already selected. Selection order is kept.
func (f *VolunteerForm) ToggleArea(area types.MinistryArea) error {
	if !area.Valid() {
		return fmt.Errorf("unknown ministry area %q", area)
	}

	if i := slices.Index(f.areas, area); i >= 0 {
		f.areas = slices.Delete(f.areas, i, i+1)
		return nil
	}

	f.areas = append(f.areas, area)
	return nil
}

func (f *VolunteerForm) Selected(area types.MinistryArea) bool {
	return slices.Contains(f.areas, area)
}

func (f *VolunteerForm) Areas() []types.MinistryArea {
	return slices.Clone(f.areas)
}

func (f *VolunteerForm) Validate() error {
	if blank(f.Name, f.Email, f.Phone) {
		return invalid("contact", "Please fill in all required fields")
	}
	if len(f.areas) == 0 {
		return invalid("ministry_areas", "Please select at least one ministry area")
	}
	if isBlank(f.Availability) {
		return invalid("availability", "Please enter your availability")
	}
	return nil
}

func (f *VolunteerForm) Reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.Availability = ""
	f.Notes = ""
	f.areas = nil
}

func (f *VolunteerForm) Payload() *types.VolunteerCreate {
	return &types.VolunteerCreate{
		Name:          f.Name,
		Email:         f.Email,
		Phone:         f.Phone,
		MinistryAreas: f.Areas(),
		Availability:  f.Availability,
		Notes:         utils.OptionalString(f.Notes),
	}
}

func (f *VolunteerForm) name() string { return "volunteer" }

func (f *VolunteerForm) send(ctx context.Context, api API) (Dialog, error) {
	if _, err := api.CreateVolunteer(ctx, f.Payload()); err != nil {
		return Dialog{}, err
	}
	return Dialog{Title: "Thank You!", Message: "Your volunteer application has been submitted. Our team will contact you soon!"}, nil
}

func (f *VolunteerForm) failure() Dialog {
	return errorDialog("Failed to submit. Please try again.")
}

// PresetAmounts are the quick-pick donation amounts, in dollars.
var PresetAmounts = []float64{25, 50, 100, 250, 500}

// DonationForm captures an intent to give. The amount comes from either a preset or a
// custom entry, never both.
type DonationForm struct {
	base

	Name    string
	Email   string
	Type    types.DonationType
	Message string

	preset float64
	custom string
}

func NewDonationForm() *DonationForm {
	return &DonationForm{Type: types.DonationTypeOneTime}
}

// SelectPreset picks a preset amount and clears any custom entry.
func (f *DonationForm) SelectPreset(amount float64) {
	f.preset = amount
	f.custom = ""
}

// SetCustomAmount records free-text input and clears the preset selection.
func (f *DonationForm) SetCustomAmount(s string) {
	f.custom = s
	f.preset = 0
}

func (f *DonationForm) Preset() float64 {
	return f.preset
}

func (f *DonationForm) CustomAmount() string {
	return f.custom
}

// Amount resolves the amount to submit. A custom entry wins when present.
func (f *DonationForm) Amount() (float64, error) {
	raw := strings.TrimSpace(f.custom)
	amount := f.preset
	if raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("parse amount %q: %w", raw, err)
		}
		amount = v
	}

	if !types.ValidDonationAmount(amount) {
		return 0, fmt.Errorf("amount %v is outside %.2f to %d", amount, types.MinDonationAmount, types.MaxDonationAmount)
	}
	return amount, nil
}

func (f *DonationForm) Validate() error {
	if blank(f.Name, f.Email) {
		return invalid("contact", "Please enter your name and email")
	}
	if _, err := f.Amount(); err != nil {
		return invalid("amount", "Please select or enter a donation amount")
	}
	if _, err := types.ParseDonationType(string(f.donationType())); err != nil {
		return invalid("donation_type", "Please choose one-time or recurring")
	}
	return nil
}

func (f *DonationForm) Reset() {
	f.Name = ""
	f.Email = ""
	f.Type = types.DonationTypeOneTime
	f.Message = ""
	f.preset = 0
	f.custom = ""
}

// Payload assumes Validate passed.
func (f *DonationForm) Payload() *types.DonationCreate {
	amount, _ := f.Amount()
	return &types.DonationCreate{
		Name:         f.Name,
		Email:        f.Email,
		Amount:       amount,
		DonationType: f.donationType(),
		Message:      utils.OptionalString(f.Message),
	}
}

func (f *DonationForm) donationType() types.DonationType {
	if f.Type == "" {
		return types.DonationTypeOneTime
	}
	return f.Type
}

func (f *DonationForm) name() string { return "donation" }

func (f *DonationForm) send(ctx context.Context, api API) (Dialog, error) {
	if _, err := api.CreateDonation(ctx, f.Payload()); err != nil {
		return Dialog{}, err
	}
	return Dialog{
		Title:   "Thank You!",
		Message: "Your donation intent has been recorded. Our team will reach out with payment instructions. God bless you!",
	}, nil
}

func (f *DonationForm) failure() Dialog {
	return errorDialog("Failed to submit. Please try again.")
}

// SignupForm joins the selected life group.
type SignupForm struct {
	base

	Name  string
	Email string
	Phone string

	group *types.LifeGroup
}

// OpenFor binds the form to group and opens its modal.
func (f *SignupForm) OpenFor(group *types.LifeGroup) {
	f.group = group
	f.Open()
}

func (f *SignupForm) Group() *types.LifeGroup {
	return f.group
}

func (f *SignupForm) Validate() error {
	if blank(f.Name, f.Email, f.Phone) {
		return invalid("contact", "Please fill in all fields")
	}
	if f.group == nil {
		return invalid("group_id", "Please choose a life group")
	}
	return nil
}

func (f *SignupForm) Reset() {
	f.Name = ""
	f.Email = ""
	f.Phone = ""
	f.group = nil
}

func (f *SignupForm) Payload() *types.LifeGroupSignupCreate {
	p := &types.LifeGroupSignupCreate{Name: f.Name, Email: f.Email, Phone: f.Phone}
	if f.group != nil {
		p.GroupID = f.group.ID
	}
	return p
}

func (f *SignupForm) name() string { return "lifegroup_signup" }

func (f *SignupForm) send(ctx context.Context, api API) (Dialog, error) {
	if _, err := api.SignupLifeGroup(ctx, f.Payload()); err != nil {
		return Dialog{}, err
	}
	return Dialog{
		Title:   "Welcome!",
		Message: fmt.Sprintf("You've signed up for %s. The group leader will contact you soon!", f.group.Name),
	}, nil
}

func (f *SignupForm) failure() Dialog {
	return errorDialog("Failed to sign up. Please try again.")
}
