// Package loader fetches a remote collection once per screen activation.
package loader

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrLoading is returned by Load when a fetch is already in flight.
var ErrLoading = errors.New("a load is already in progress")

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// FetchFunc retrieves the full collection in server order.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

type Loader[T any] struct {
	name   string
	fetch  FetchFunc[T]
	logger *logrus.Logger

	mu    sync.RWMutex
	state State
	items []T
	err   error
}

func New[T any](name string, fetch FetchFunc[T], logger *logrus.Logger) *Loader[T] {
	return &Loader[T]{name: name, fetch: fetch, logger: logger}
}

// Load issues one fetch. On success the items replace the previous ones verbatim; on
// failure the previous items are dropped and the error is kept for Err.
func (l *Loader[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.state == Loading {
		l.mu.Unlock()
		return ErrLoading
	}
	l.state = Loading
	l.err = nil
	l.mu.Unlock()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.logger.WithError(err).WithField("list", l.name).Error("failed to load list")
		l.state = Failed
		l.items = nil
		l.err = err
		return err
	}

	l.state = Loaded
	l.items = items
	return nil
}

func (l *Loader[T]) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Items returns a copy of the loaded collection.
func (l *Loader[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

func (l *Loader[T]) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Filter keeps the items matching keep, in their original order. It never touches the network.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
