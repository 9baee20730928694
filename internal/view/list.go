// Package view holds the page-level state machines: the list fetch
// lifecycle, the product detail lookup, and form submission.
package view

import (
	"context"
	"sync"

	"github.com/selamsoft/selam-web/internal/api"
)

// Phase is the render state of a list view. Exactly one holds at a time.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// fallbackError is shown when a failure carries no message of its own.
const fallbackError = "Something went wrong while loading this page."

// Fetcher loads one list resource.
type Fetcher[T any] func(ctx context.Context) (*api.List[T], error)

// ListState is a snapshot of a list view.
type ListState[T any] struct {
	Phase Phase
	Items []T
	Err   string
	Shape api.Shape
}

// Empty reports whether the list loaded with zero items.
func (s ListState[T]) Empty() bool {
	return s.Phase == PhaseReady && len(s.Items) == 0
}

// ListView runs one fetch per mount and tracks its outcome. A completion
// that arrives after Unmount, or for an earlier mount, is discarded.
type ListView[T any] struct {
	fetch Fetcher[T]

	mu      sync.Mutex
	state   ListState[T]
	mounted bool
	gen     int
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewListView returns an unmounted view in the loading state.
func NewListView[T any](fetch Fetcher[T]) *ListView[T] {
	return &ListView[T]{fetch: fetch}
}

// Mount starts the fetch under ctx. Mounting an already mounted view is a
// no-op, so a view never has more than one fetch in flight.
func (v *ListView[T]) Mount(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted {
		return
	}
	v.mounted = true
	v.gen++
	gen := v.gen

	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state = ListState[T]{Phase: PhaseLoading}
	done := make(chan struct{})
	v.done = done

	go func() {
		defer close(done)
		list, err := v.fetch(ctx)
		if err != nil && ctx.Err() != nil {
			// Abandoned, not failed: the view stays loading.
			return
		}
		v.complete(gen, list, err)
	}()
}

func (v *ListView[T]) complete(gen int, list *api.List[T], err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted || gen != v.gen {
		return
	}

	switch {
	case err != nil:
		msg := err.Error()
		if msg == "" {
			msg = fallbackError
		}
		v.state = ListState[T]{Phase: PhaseError, Err: msg}
	case list == nil:
		v.state = ListState[T]{Phase: PhaseReady, Items: []T{}, Shape: api.ShapeUnrecognized}
	default:
		items := list.Items
		if items == nil {
			items = []T{}
		}
		v.state = ListState[T]{Phase: PhaseReady, Items: items, Shape: list.Shape}
	}
}

// Unmount cancels the in-flight fetch. The state stays where it was.
func (v *ListView[T]) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.mounted {
		return
	}
	v.mounted = false
	if v.cancel != nil {
		v.cancel()
	}
}

// Wait blocks until the current fetch settles or ctx ends, then returns
// the state. A view that was never mounted returns immediately.
func (v *ListView[T]) Wait(ctx context.Context) ListState[T] {
	v.mu.Lock()
	done := v.done
	v.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	return v.State()
}

// State returns a snapshot of the view.
func (v *ListView[T]) State() ListState[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load mounts a view under ctx, waits for it and unmounts it. It is the
// lifecycle of a single page render.
func Load[T any](ctx context.Context, fetch Fetcher[T]) ListState[T] {
	v := NewListView(fetch)
	v.Mount(ctx)
	defer v.Unmount()
	return v.Wait(ctx)
}
