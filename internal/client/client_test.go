package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"highfields/internal/utils"
	"highfields/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckInSendsNullForOptionalFields(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/checkins", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc","name":"Ruth","phone":null,"is_first_time":true,"notes":null,"timestamp":"2026-03-01T09:00:00Z"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	out, err := c.CreateCheckIn(context.Background(), &types.CheckInCreate{Name: "Ruth", IsFirstTime: true})
	require.NoError(t, err)

	assert.Equal(t, "abc", out.ID)
	assert.Nil(t, out.Phone)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), out.Timestamp)

	assert.Contains(t, got, "phone")
	assert.Nil(t, got["phone"])
	assert.Contains(t, got, "notes")
	assert.Nil(t, got["notes"])
}

func TestNon2xxBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Life group not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SignupLifeGroup(context.Background(), &types.LifeGroupSignupCreate{GroupID: "x", Name: "a", Email: "b", Phone: "c"})
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "/api/life-groups/signup", apiErr.Path)
	assert.Contains(t, apiErr.Body, "Life group not found")
}

func TestListsKeepServerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/life-groups":
			_, _ = w.Write([]byte(`[{"id":"b","name":"B","max_members":12,"current_members":3,"image_url":null,"kind":"men"},{"id":"a","name":"A","kind":""}]`))
		case "/api/sermons":
			_, _ = w.Write([]byte(`[{"id":"s2","title":"Two","series":"RISE"},{"id":"s1","title":"One","series":null}]`))
		case "/api/sermons/s2":
			_, _ = w.Write([]byte(`{"id":"s2","title":"Two","series":"RISE"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	groups, err := c.LifeGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "b", groups[0].ID)
	assert.Equal(t, types.LifeGroupKindMen, groups[0].Kind)
	assert.Equal(t, types.LifeGroupKindStudy, groups[1].Kind)

	sermons, err := c.Sermons(ctx)
	require.NoError(t, err)
	require.Len(t, sermons, 2)
	assert.Equal(t, "RISE", utils.PtrString(sermons[0].Series))
	assert.Nil(t, sermons[1].Series)

	sermon, err := c.Sermon(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "Two", sermon.Title)
}

func TestTransportFailureIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	_, err := c.Sermons(context.Background())
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
}

func TestCallerContextBoundsTheCall(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(srv.URL).LifeGroups(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestEmptySuccessBodyIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/checkins":
			w.WriteHeader(http.StatusNoContent)
		case "/api/donations":
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	checkIn, err := c.CreateCheckIn(ctx, &types.CheckInCreate{Name: "Ruth"})
	require.NoError(t, err)
	assert.NotNil(t, checkIn)

	_, err = c.CreateDonation(ctx, &types.DonationCreate{Name: "Ruth", Email: "ruth@example.com", Amount: 25})
	require.NoError(t, err)

	groups, err := c.LifeGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestTruncatedSuccessBodyIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"abc",`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateCheckIn(context.Background(), &types.CheckInCreate{Name: "Ruth"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}
