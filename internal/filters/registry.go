// Package filters exposes every template filter through an explicit
// name-to-function registry, independent of any specific host engine.
package filters

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"osa-filters/internal/shared"
)

// Func is a single template filter: positional arguments in, one
// primitive value out.
type Func func(args Args) (any, error)

// Registry maps filter names to their implementations. It is built
// once at process start and read-only afterwards.
type Registry struct {
	byName map[string]Func
}

// Register adds a filter under the given name. Registering the same
// name twice is a wiring mistake and fails with an already-exists
// error.
func (r *Registry) Register(ctx context.Context, name string, fn Func) error {
	assert.NotEmpty(ctx, name, "filter name must be set")
	if _, exists := r.byName[name]; exists {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("filter %q is already registered", name))
	}
	r.byName[name] = fn
	return nil
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (Func, error) {
	fn, ok := r.byName[name]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("unknown filter %q", name))
	}
	return fn, nil
}

// Names returns every registered filter name in ascending order.
func (r *Registry) Names() []string {
	set := make(map[string]struct{}, len(r.byName))
	for name := range r.byName {
		set[name] = struct{}{}
	}
	return shared.SortedKeys(set)
}
