// Package client talks to the Highfields JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"highfields/pkg/types"
)

// Client calls the remote API. It never retries and has no timeout of its own;
// callers bound each call with their context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API rooted at baseURL, e.g. "https://app.example.org".
// The "/api" prefix is added per request.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Error is a non-2xx answer from the API.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (c *Client) CreateCheckIn(ctx context.Context, in *types.CheckInCreate) (*types.CheckIn, error) {
	var out types.CheckIn
	if err := c.do(ctx, http.MethodPost, "/api/checkins", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePrayerRequest(ctx context.Context, in *types.PrayerRequestCreate) (*types.PrayerRequest, error) {
	var out types.PrayerRequest
	if err := c.do(ctx, http.MethodPost, "/api/prayer-requests", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateQuestion(ctx context.Context, in *types.QuestionCreate) (*types.Question, error) {
	var out types.Question
	if err := c.do(ctx, http.MethodPost, "/api/questions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateVolunteer(ctx context.Context, in *types.VolunteerCreate) (*types.Volunteer, error) {
	var out types.Volunteer
	if err := c.do(ctx, http.MethodPost, "/api/volunteers", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDonation(ctx context.Context, in *types.DonationCreate) (*types.Donation, error) {
	var out types.Donation
	if err := c.do(ctx, http.MethodPost, "/api/donations", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateConnectRequest(ctx context.Context, in *types.ConnectRequestCreate) (*types.ConnectRequest, error) {
	var out types.ConnectRequest
	if err := c.do(ctx, http.MethodPost, "/api/life-groups/connect", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LifeGroups(ctx context.Context) ([]*types.LifeGroup, error) {
	out := make([]*types.LifeGroup, 0)
	if err := c.do(ctx, http.MethodGet, "/api/life-groups", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SignupLifeGroup(ctx context.Context, in *types.LifeGroupSignupCreate) (*types.LifeGroupSignup, error) {
	var out types.LifeGroupSignup
	if err := c.do(ctx, http.MethodPost, "/api/life-groups/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Sermons(ctx context.Context) ([]*types.Sermon, error) {
	out := make([]*types.Sermon, 0)
	if err := c.do(ctx, http.MethodGet, "/api/sermons", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Sermon(ctx context.Context, id string) (*types.Sermon, error) {
	var out types.Sermon
	if err := c.do(ctx, http.MethodGet, "/api/sermons/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &Error{Method: method, Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}

	// An empty body (204 or a bare 2xx) is a success with nothing to decode.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}
