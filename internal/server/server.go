package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"highfields/internal/apperror"
	"highfields/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type CheckInStore interface {
	CreateCheckIn(ctx context.Context, checkIn *types.CheckIn) error
	CheckIns(ctx context.Context, limit uint64) ([]*types.CheckIn, error)
	CheckInsSince(ctx context.Context, since time.Time) ([]*types.CheckIn, error)
}

type PrayerRequestStore interface {
	CreatePrayerRequest(ctx context.Context, request *types.PrayerRequest) error
	LatestPrayerRequests(ctx context.Context, limit uint64) ([]*types.PrayerRequest, error)
}

type QuestionStore interface {
	CreateQuestion(ctx context.Context, question *types.Question) error
}

type VolunteerStore interface {
	CreateVolunteer(ctx context.Context, volunteer *types.Volunteer) error
	Volunteers(ctx context.Context, limit uint64) ([]*types.Volunteer, error)
}

type DonationStore interface {
	CreateDonation(ctx context.Context, donation *types.Donation) error
	Donations(ctx context.Context, limit uint64) ([]*types.Donation, error)
}

type ConnectRequestStore interface {
	CreateConnectRequest(ctx context.Context, request *types.ConnectRequest) error
	ConnectRequests(ctx context.Context, limit uint64) ([]*types.ConnectRequest, error)
}

type LifeGroupStore interface {
	LifeGroups(ctx context.Context, limit uint64) ([]*types.LifeGroup, error)
	Signup(ctx context.Context, signup *types.LifeGroupSignup) error
}

type SermonStore interface {
	Sermons(ctx context.Context, limit uint64) ([]*types.Sermon, error)
	Sermon(ctx context.Context, id string) (*types.Sermon, error)
}

// Stores groups the repositories the API reads and writes.
type Stores struct {
	CheckIns        CheckInStore
	PrayerRequests  PrayerRequestStore
	Questions       QuestionStore
	Volunteers      VolunteerStore
	Donations       DonationStore
	ConnectRequests ConnectRequestStore
	LifeGroups      LifeGroupStore
	Sermons         SermonStore
}

type Service struct {
	logger   *logrus.Logger
	config   *types.Config
	stores   Stores
	validate *validator.Validate
	limiter  *clientLimiter

	server *http.Server
}

func New(config *types.Config, logger *logrus.Logger, stores Stores) *Service {
	mux := flow.New()

	s := &Service{
		logger:   logger,
		config:   config,
		stores:   stores,
		validate: apperror.NewValidator(),
		limiter:  newClientLimiter(config.RateLimitPerSec, config.RateLimitBurst),
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)
	s.server.Handler = s.CORS(s.StripTrailingSlash(mux))

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.NotFound = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowed = http.HandlerFunc(s.handleMethodNotAllowed)

	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.HandleFunc("/api", s.handleRoot, http.MethodGet)

	r.HandleFunc("/api/checkins", s.handleListCheckIns, http.MethodGet)
	r.HandleFunc("/api/checkins/today", s.handleTodayCheckIns, http.MethodGet)
	r.HandleFunc("/api/prayer-requests", s.handleListPrayerRequests, http.MethodGet)
	r.HandleFunc("/api/volunteers", s.handleListVolunteers, http.MethodGet)
	r.HandleFunc("/api/donations", s.handleListDonations, http.MethodGet)
	r.HandleFunc("/api/life-groups", s.handleListLifeGroups, http.MethodGet)
	r.HandleFunc("/api/life-groups/connect", s.handleListConnectRequests, http.MethodGet)
	r.HandleFunc("/api/sermons", s.handleListSermons, http.MethodGet)
	r.HandleFunc("/api/sermons/:id", s.handleGetSermon, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RateLimit)

		r.HandleFunc("/api/checkins", s.handleCreateCheckIn, http.MethodPost)
		r.HandleFunc("/api/prayer-requests", s.handleCreatePrayerRequest, http.MethodPost)
		r.HandleFunc("/api/questions", s.handleCreateQuestion, http.MethodPost)
		r.HandleFunc("/api/volunteers", s.handleCreateVolunteer, http.MethodPost)
		r.HandleFunc("/api/donations", s.handleCreateDonation, http.MethodPost)
		r.HandleFunc("/api/life-groups/signup", s.handleLifeGroupSignup, http.MethodPost)
		r.HandleFunc("/api/life-groups/connect", s.handleCreateConnectRequest, http.MethodPost)
	})
}
