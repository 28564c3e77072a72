package loader

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLoadKeepsServerOrder(t *testing.T) {
	calls := 0
	l := New("numbers", func(context.Context) ([]int, error) {
		calls++
		return []int{3, 1, 2}, nil
	}, quietLogger())

	assert.Equal(t, Idle, l.State())
	require.NoError(t, l.Load(context.Background()))

	assert.Equal(t, Loaded, l.State())
	assert.Equal(t, []int{3, 1, 2}, l.Items())
	assert.NoError(t, l.Err())
	assert.Equal(t, 1, calls)

	items := l.Items()
	items[0] = 99
	assert.Equal(t, []int{3, 1, 2}, l.Items())
}

func TestLoadFailure(t *testing.T) {
	fail := true
	l := New("numbers", func(context.Context) ([]int, error) {
		if fail {
			return nil, errors.New("timeout")
		}
		return []int{1}, nil
	}, quietLogger())

	err := l.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, Failed, l.State())
	assert.Empty(t, l.Items())
	assert.EqualError(t, l.Err(), "timeout")

	fail = false
	require.NoError(t, l.Load(context.Background()))
	assert.Equal(t, Loaded, l.State())
	assert.Nil(t, l.Err())
	assert.Equal(t, []int{1}, l.Items())
}

func TestLoadWhileLoading(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	l := New("slow", func(context.Context) ([]string, error) {
		close(started)
		<-release
		return []string{"a"}, nil
	}, quietLogger())

	done := make(chan error)
	go func() { done <- l.Load(context.Background()) }()

	<-started
	assert.Equal(t, Loading, l.State())
	assert.ErrorIs(t, l.Load(context.Background()), ErrLoading)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"a"}, l.Items())
}

func TestFilter(t *testing.T) {
	items := []int{5, 2, 8, 1, 6}
	got := Filter(items, func(n int) bool { return n > 4 })
	assert.Equal(t, []int{5, 8, 6}, got)
	assert.Equal(t, []int{5, 2, 8, 1, 6}, items)
	assert.Empty(t, Filter(nil, func(int) bool { return true }))
}
