// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gogpu/gdi/internal/glog"
)

// Registry errors. Open and OpenStrategy wrap them with the request.
var (
	ErrUnknownStrategy     = errors.New("surface: unknown strategy")
	ErrStrategyUnavailable = errors.New("surface: strategy unavailable")
	ErrNoSurface           = errors.New("surface: no strategy produced a surface")
)

// Request asks a strategy for a surface of Width×Height device pixels.
type Request struct {
	Width, Height int

	// Scale is the logical-to-device scale factor. Zero means 1.
	Scale float64
}

func (q Request) normalized() Request {
	if q.Scale <= 0 {
		q.Scale = 1
	}
	return q
}

// Strategy is a registered way of acquiring memory-backed surfaces. It
// declares the orientation and ownership of what it produces, so callers
// can pick one without acquiring a surface first.
type Strategy struct {
	Name     string
	Priority int // higher is tried first

	Orientation Orientation
	Ownership   Ownership

	// Acquire follows the surface contract: on failure it returns a
	// surface that is not ok rather than nil.
	Acquire func(Request) Surface

	// Ready reports whether Acquire can succeed right now. Nil means
	// always.
	Ready func() bool
}

func (st *Strategy) ready() bool {
	return st.Ready == nil || st.Ready()
}

// Registry holds acquisition strategies by name. It is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

var defaultRegistry = NewRegistry()

// Register adds st to the process-wide registry.
func Register(st Strategy) { defaultRegistry.Register(st) }

// Unregister removes a strategy from the process-wide registry.
func Unregister(name string) { defaultRegistry.Unregister(name) }

// Strategies lists the process-wide strategies, preferred first.
func Strategies() []Strategy { return defaultRegistry.Strategies() }

// Ready lists the names of the process-wide strategies that can acquire
// now, preferred first.
func Ready() []string { return defaultRegistry.Ready() }

// Open acquires a surface from the best ready process-wide strategy.
func Open(q Request) (Surface, error) { return defaultRegistry.Open(q) }

// OpenStrategy acquires a surface from the named process-wide strategy.
func OpenStrategy(name string, q Request) (Surface, error) {
	return defaultRegistry.OpenStrategy(name, q)
}

// Register adds st, replacing any strategy with the same name. A
// strategy without a name or an Acquire function is logged and ignored.
func (r *Registry) Register(st Strategy) {
	if st.Name == "" || st.Acquire == nil {
		glog.L().Error("surface: incomplete strategy ignored", "name", st.Name)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[st.Name] = st
}

// Unregister removes the named strategy.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.strategies, name)
}

// Strategies returns every strategy ordered by descending priority, then
// by name.
func (r *Registry) Strategies() []Strategy {
	r.mu.RLock()
	out := make([]Strategy, 0, len(r.strategies))
	for _, st := range r.strategies {
		out = append(out, st)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b Strategy) int {
		if a.Priority != b.Priority {
			return b.Priority - a.Priority
		}
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Ready returns the names of the strategies whose Ready reports true, in
// Strategies order.
func (r *Registry) Ready() []string {
	var names []string
	for _, st := range r.Strategies() {
		if st.ready() {
			names = append(names, st.Name)
		}
	}
	return names
}

// Open tries the ready strategies in order and returns the first surface
// that is ok. Surfaces that are not ok are closed and the next strategy is
// tried. When none succeeds Open returns a null surface and ErrNoSurface.
func (r *Registry) Open(q Request) (Surface, error) {
	q = q.normalized()
	for _, st := range r.Strategies() {
		if !st.ready() {
			continue
		}
		s := r.acquire(st, q)
		if s.IsOk() {
			return s, nil
		}
		glog.L().Debug("surface: strategy failed, trying next", "strategy", st.Name,
			"width", q.Width, "height", q.Height)
		_ = s.Close()
	}
	return Null("", q.Scale), fmt.Errorf("%w: %dx%d", ErrNoSurface, q.Width, q.Height)
}

// OpenStrategy acquires a surface from the named strategy. The returned
// surface is never nil; on error it is a null surface.
func (r *Registry) OpenStrategy(name string, q Request) (Surface, error) {
	q = q.normalized()
	r.mu.RLock()
	st, ok := r.strategies[name]
	r.mu.RUnlock()

	switch {
	case !ok:
		return Null(name, q.Scale), fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	case !st.ready():
		return Null(name, q.Scale), fmt.Errorf("%w: %q", ErrStrategyUnavailable, name)
	}
	s := r.acquire(st, q)
	if !s.IsOk() {
		return s, fmt.Errorf("%w: %q at %dx%d", ErrNoSurface, name, q.Width, q.Height)
	}
	return s, nil
}

func (r *Registry) acquire(st Strategy, q Request) Surface {
	s := st.Acquire(q)
	if s == nil {
		return Null(st.Name, q.Scale)
	}
	if s.IsOk() && (s.Orientation() != st.Orientation || s.Ownership() != st.Ownership) {
		glog.L().Warn("surface: strategy broke its declared layout", "strategy", st.Name,
			"orientation", s.Orientation(), "ownership", s.Ownership())
	}
	return s
}

// The built-in memory strategies. "dib" is preferred and reuses one
// native buffer across paint cycles; while that buffer is in use it is
// not ready and Open falls back to "software".
func init() {
	Register(Strategy{
		Name:        BackendSoftware,
		Priority:    10,
		Orientation: TopDown,
		Ownership:   Owned,
		Acquire: func(q Request) Surface {
			return NewSoftware(q.Width, q.Height, q.Scale)
		},
	})
	Register(Strategy{
		Name:        BackendDIB,
		Priority:    20,
		Orientation: TopDown,
		Ownership:   Owned,
		Acquire: func(q Request) Surface {
			return DefaultDIBCache().Acquire(q.Width, q.Height, q.Scale)
		},
		Ready: func() bool { return !DefaultDIBCache().Busy() },
	})
}
