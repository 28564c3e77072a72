package forms

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"highfields/internal/client"
	"highfields/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls int
	err   error
	block chan struct{}
	began chan struct{}

	checkIn   *types.CheckInCreate
	prayer    *types.PrayerRequestCreate
	question  *types.QuestionCreate
	volunteer *types.VolunteerCreate
	donation  *types.DonationCreate
	connect   *types.ConnectRequestCreate
	signup    *types.LifeGroupSignupCreate
}

func (f *fakeAPI) record() error {
	f.mu.Lock()
	f.calls++
	block, began := f.block, f.began
	f.mu.Unlock()

	if began != nil {
		close(began)
	}
	if block != nil {
		<-block
	}
	return f.err
}

func (f *fakeAPI) CreateCheckIn(_ context.Context, in *types.CheckInCreate) (*types.CheckIn, error) {
	f.checkIn = in
	return &types.CheckIn{}, f.record()
}

func (f *fakeAPI) CreatePrayerRequest(_ context.Context, in *types.PrayerRequestCreate) (*types.PrayerRequest, error) {
	f.prayer = in
	return &types.PrayerRequest{}, f.record()
}

func (f *fakeAPI) CreateQuestion(_ context.Context, in *types.QuestionCreate) (*types.Question, error) {
	f.question = in
	return &types.Question{}, f.record()
}

func (f *fakeAPI) CreateVolunteer(_ context.Context, in *types.VolunteerCreate) (*types.Volunteer, error) {
	f.volunteer = in
	return &types.Volunteer{}, f.record()
}

func (f *fakeAPI) CreateDonation(_ context.Context, in *types.DonationCreate) (*types.Donation, error) {
	f.donation = in
	return &types.Donation{}, f.record()
}

func (f *fakeAPI) CreateConnectRequest(_ context.Context, in *types.ConnectRequestCreate) (*types.ConnectRequest, error) {
	f.connect = in
	return &types.ConnectRequest{}, f.record()
}

func (f *fakeAPI) SignupLifeGroup(_ context.Context, in *types.LifeGroupSignupCreate) (*types.LifeGroupSignup, error) {
	f.signup = in
	return &types.LifeGroupSignup{}, f.record()
}

func newController(api API) *Controller {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewController(api, logger)
}

func TestRequiredFieldsBlockTheCall(t *testing.T) {
	group := &types.LifeGroup{ID: "g1", Name: "Faith Foundations"}
	signup := &SignupForm{Name: "Ana", Email: " ", Phone: "0400"}
	signup.OpenFor(group)

	tests := []struct {
		name    string
		form    Form
		message string
	}{
		{"checkin blank name", &CheckInForm{Name: "  \t"}, "Please enter your name"},
		{"prayer blank request", &PrayerForm{Name: "Hannah", Request: " "}, "Please enter your prayer request"},
		{"question blank", &QuestionForm{Question: ""}, "Please enter your question"},
		{"connect missing phone", &ConnectForm{Name: "Mara", Email: "m@example.com"}, "Please fill in all fields"},
		{"volunteer missing email", &VolunteerForm{Name: "Boaz", Phone: "0400", Availability: "Sundays"}, "Please fill in all required fields"},
		{"volunteer missing availability", func() Form {
			f := &VolunteerForm{Name: "Boaz", Email: "b@example.com", Phone: "0400"}
			require.NoError(t, f.ToggleArea(types.MinistryAreaWelcome))
			return f
		}(), "Please enter your availability"},
		{"donation missing email", &DonationForm{Name: "Lydia", preset: 50}, "Please enter your name and email"},
		{"signup blank email", signup, "Please fill in all fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			out := newController(api).Submit(context.Background(), tt.form)

			assert.Equal(t, Invalid, out.Status)
			assert.Equal(t, "Error", out.Dialog.Title)
			assert.Equal(t, tt.message, out.Dialog.Message)

			var verr *ValidationError
			assert.True(t, errors.As(out.Err, &verr))
			assert.Zero(t, api.calls)
		})
	}
}

func TestDonationAmountRules(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *DonationForm)
		want   float64
		wantOK bool
	}{
		{"no amount", func(f *DonationForm) {}, 0, false},
		{"preset", func(f *DonationForm) { f.SelectPreset(100) }, 100, true},
		{"custom", func(f *DonationForm) { f.SetCustomAmount("42.50") }, 42.5, true},
		{"custom not a number", func(f *DonationForm) { f.SetCustomAmount("lots") }, 0, false},
		{"custom zero", func(f *DonationForm) { f.SetCustomAmount("0") }, 0, false},
		{"custom negative", func(f *DonationForm) { f.SetCustomAmount("-10") }, 0, false},
		{"custom below one cent", func(f *DonationForm) { f.SetCustomAmount("0.001") }, 0, false},
		{"custom one cent", func(f *DonationForm) { f.SetCustomAmount("0.01") }, 0.01, true},
		{"custom at the cap", func(f *DonationForm) { f.SetCustomAmount("1000000") }, 1_000_000, true},
		{"custom above the cap", func(f *DonationForm) { f.SetCustomAmount("1e300") }, 0, false},
		{"custom infinite", func(f *DonationForm) { f.SetCustomAmount("Inf") }, 0, false},
		{"custom NaN", func(f *DonationForm) { f.SetCustomAmount("NaN") }, 0, false},
		{"preset then bad custom", func(f *DonationForm) { f.SelectPreset(50); f.SetCustomAmount("abc") }, 0, false},
		{"custom then preset", func(f *DonationForm) { f.SetCustomAmount("abc"); f.SelectPreset(250) }, 250, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDonationForm()
			f.Name, f.Email = "Lydia", "lydia@example.com"
			tt.setup(f)

			api := &fakeAPI{}
			out := newController(api).Submit(context.Background(), f)
			if !tt.wantOK {
				assert.Equal(t, Invalid, out.Status)
				assert.Equal(t, "Please select or enter a donation amount", out.Dialog.Message)
				assert.Zero(t, api.calls)
				return
			}

			require.Equal(t, Succeeded, out.Status)
			require.NotNil(t, api.donation)
			assert.Equal(t, tt.want, api.donation.Amount)
			assert.Equal(t, types.DonationTypeOneTime, api.donation.DonationType)
			assert.Nil(t, api.donation.Message)
		})
	}
}

func TestDonationPresetAndCustomAreExclusive(t *testing.T) {
	f := NewDonationForm()

	f.SetCustomAmount("75")
	f.SelectPreset(25)
	assert.Equal(t, "", f.CustomAmount())
	assert.Equal(t, 25.0, f.Preset())

	f.SetCustomAmount("80")
	assert.Equal(t, 0.0, f.Preset())
	assert.Equal(t, "80", f.CustomAmount())
}

func TestVolunteerAreas(t *testing.T) {
	f := &VolunteerForm{Name: "Boaz", Email: "b@example.com", Phone: "0400", Availability: "Sundays"}
	api := &fakeAPI{}
	c := newController(api)

	out := c.Submit(context.Background(), f)
	assert.Equal(t, Invalid, out.Status)
	assert.Equal(t, "Please select at least one ministry area", out.Dialog.Message)
	assert.Zero(t, api.calls)

	require.NoError(t, f.ToggleArea(types.MinistryAreaYouth))
	require.NoError(t, f.ToggleArea(types.MinistryAreaWorship))
	require.NoError(t, f.ToggleArea(types.MinistryAreaYouth))
	require.NoError(t, f.ToggleArea(types.MinistryAreaPrayer))
	assert.Error(t, f.ToggleArea("Parking"))
	assert.True(t, f.Selected(types.MinistryAreaWorship))
	assert.False(t, f.Selected(types.MinistryAreaYouth))

	out = c.Submit(context.Background(), f)
	require.Equal(t, Succeeded, out.Status)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, []types.MinistryArea{types.MinistryAreaWorship, types.MinistryAreaPrayer}, api.volunteer.MinistryAreas)
	assert.Nil(t, api.volunteer.Notes)
	assert.Empty(t, f.Areas())
}

func TestAnonymityDropsIdentity(t *testing.T) {
	api := &fakeAPI{}
	c := newController(api)

	prayer := &PrayerForm{Name: "Hannah", Request: "Healing for my mother", Anonymous: true}
	require.Equal(t, Succeeded, c.Submit(context.Background(), prayer).Status)
	assert.Nil(t, api.prayer.Name)
	assert.True(t, api.prayer.IsAnonymous)

	question := &QuestionForm{Name: "Eli", Email: "eli@example.com", Question: "When is baptism?", Anonymous: true}
	require.Equal(t, Succeeded, c.Submit(context.Background(), question).Status)
	assert.Nil(t, api.question.Name)
	assert.Nil(t, api.question.Email)

	named := &PrayerForm{Name: "Hannah", Request: "Wisdom"}
	require.Equal(t, Succeeded, c.Submit(context.Background(), named).Status)
	require.NotNil(t, api.prayer.Name)
	assert.Equal(t, "Hannah", *api.prayer.Name)
}

func TestCheckInSuccessResetsAndCloses(t *testing.T) {
	api := &fakeAPI{}
	f := &CheckInForm{Name: "Ruth", Phone: "", FirstTime: true}
	f.Open()

	out := newController(api).Submit(context.Background(), f)
	require.Equal(t, Succeeded, out.Status)
	assert.Equal(t, Dialog{Title: "Welcome!", Message: "You have successfully checked in. God bless you!"}, out.Dialog)

	assert.Equal(t, 1, api.calls)
	assert.Nil(t, api.checkIn.Phone)
	assert.True(t, api.checkIn.IsFirstTime)

	assert.Empty(t, f.Name)
	assert.Empty(t, f.Phone)
	assert.False(t, f.FirstTime)
	assert.False(t, f.IsOpen())
	assert.False(t, f.Submitting())
}

func TestEmptyReplyStillResetsAndCloses(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newController(client.New(srv.URL))

	checkIn := &CheckInForm{Name: "Ruth", Phone: "0400 111 222"}
	checkIn.Open()
	out := c.Submit(context.Background(), checkIn)
	require.Equal(t, Succeeded, out.Status, "%v", out.Err)
	assert.Empty(t, checkIn.Name)
	assert.Empty(t, checkIn.Phone)
	assert.False(t, checkIn.IsOpen())

	donation := NewDonationForm()
	donation.Name, donation.Email = "Lydia", "lydia@example.com"
	donation.SelectPreset(50)
	donation.Open()
	out = c.Submit(context.Background(), donation)
	require.Equal(t, Succeeded, out.Status, "%v", out.Err)
	assert.Equal(t, 0.0, donation.Preset())
	assert.False(t, donation.IsOpen())

	assert.Equal(t, int32(2), hits.Load())
}

func TestCheckInFailureKeepsFields(t *testing.T) {
	api := &fakeAPI{err: errors.New("connection refused")}
	f := &CheckInForm{Name: "Ruth", Phone: "0400 111 222", FirstTime: true}
	f.Open()

	out := newController(api).Submit(context.Background(), f)
	require.Equal(t, Failed, out.Status)
	assert.Equal(t, "Failed to check in. Please try again.", out.Dialog.Message)
	assert.ErrorContains(t, out.Err, "connection refused")

	assert.Equal(t, "Ruth", f.Name)
	assert.Equal(t, "0400 111 222", f.Phone)
	assert.True(t, f.FirstTime)
	assert.True(t, f.IsOpen())
	assert.False(t, f.Submitting())
}

func TestSecondSubmitWhileInFlightIsRejected(t *testing.T) {
	api := &fakeAPI{block: make(chan struct{}), began: make(chan struct{})}
	c := newController(api)
	f := &ConnectForm{Name: "Mara", Email: "m@example.com", Phone: "0400"}

	done := make(chan Outcome)
	go func() {
		done <- c.Submit(context.Background(), f)
	}()

	<-api.began
	assert.True(t, f.Submitting())

	out := c.Submit(context.Background(), f)
	assert.Equal(t, Busy, out.Status)
	assert.ErrorIs(t, out.Err, ErrSubmitting)

	close(api.block)
	first := <-done
	assert.Equal(t, Succeeded, first.Status)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, types.DefaultConnectInterest, api.connect.Interest)
}

func TestSignupNamesTheGroup(t *testing.T) {
	api := &fakeAPI{}
	f := &SignupForm{Name: "Ana", Email: "ana@example.com", Phone: "0400"}
	f.OpenFor(&types.LifeGroup{ID: "g2", Name: "Men's Breakfast"})

	out := newController(api).Submit(context.Background(), f)
	require.Equal(t, Succeeded, out.Status)
	assert.Equal(t, "You've signed up for Men's Breakfast. The group leader will contact you soon!", out.Dialog.Message)
	assert.Equal(t, "g2", api.signup.GroupID)
	assert.Nil(t, f.Group())
	assert.False(t, f.IsOpen())
}
