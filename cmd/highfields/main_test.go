package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"highfields/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"highfields", "--env-file", ""}, args...))
	return out.String(), err
}

func TestCheckinCommand(t *testing.T) {
	var calls atomic.Int32
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/api/checkins", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	out, err := runApp(t, "--backend-url", srv.URL, "checkin", "--name", "Ruth", "--first-time")
	require.NoError(t, err)
	assert.Contains(t, out, "You have successfully checked in. God bless you!")
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "Ruth", body["name"])
	assert.Nil(t, body["phone"])
	assert.Equal(t, true, body["is_first_time"])
}

func TestCheckinCommandValidation(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	out, err := runApp(t, "--backend-url", srv.URL, "checkin", "--name", "   ")
	require.Error(t, err)
	assert.Contains(t, out, "Please enter your name")
	assert.Zero(t, calls.Load())
}

func TestDonateCommandServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, err := runApp(t, "--backend-url", srv.URL, "donate", "--name", "Lydia", "--email", "l@example.com", "--preset", "50")
	require.Error(t, err)
	assert.Contains(t, out, "Failed to submit. Please try again.")
}

func TestGroupsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"g1","name":"Women's Bible Study","leader":"Mary","max_members":12,"current_members":9,"kind":"women"},
			{"id":"g2","name":"Men's Breakfast","leader":"Tom","max_members":20,"current_members":20,"kind":"men"}
		]`))
	}))
	defer srv.Close()

	out, err := runApp(t, "--backend-url", srv.URL, "groups")
	require.NoError(t, err)
	assert.Contains(t, out, "[woman] Women's Bible Study (g1)")
	assert.Contains(t, out, "3 spots left - Join Group")
	assert.Contains(t, out, "Group Full - Waitlist")
}

func TestResourcesCommandTabs(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[{"id":"g1","name":"Faith Foundations","max_members":12,"current_members":8,"kind":"study"}]`))
	}))
	defer srv.Close()

	out, err := runApp(t, "--backend-url", srv.URL, "resources")
	require.NoError(t, err)
	assert.Contains(t, out, "Meals Ministry")
	assert.NotContains(t, out, "Faith Foundations")

	out, err = runApp(t, "--backend-url", srv.URL, "resources", "--tab", "lifegroups")
	require.NoError(t, err)
	assert.Contains(t, out, "[book] Faith Foundations (g1)")
	assert.NotContains(t, out, "Meals Ministry")
	assert.Equal(t, int32(2), calls.Load())

	_, err = runApp(t, "--backend-url", srv.URL, "resources", "--tab", "sermons")
	assert.ErrorContains(t, err, `unknown tab "sermons"`)
}

func TestPrintGroupsRejectsUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := printGroups(&buf, []*types.LifeGroup{{ID: "g9", Name: "Choir", Kind: "choir"}})
	assert.ErrorContains(t, err, "group g9")
	assert.Empty(t, buf.String())
}

func TestMissingBackendURL(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	_, err := runApp(t, "pray", "--request", "peace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_URL")
}

func TestScheduleOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSchedule(&buf, "fri"))
	assert.Contains(t, buf.String(), "Youth Group")
	assert.True(t, strings.HasPrefix(buf.String(), "FRI (#FF6B9D -> #FF8EB3)"))

	buf.Reset()
	require.NoError(t, printSchedule(&buf, "SAT"))
	assert.Contains(t, buf.String(), "Enjoy your rest day!")

	assert.Error(t, printSchedule(&buf, "someday"))
}
