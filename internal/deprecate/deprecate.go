// Package deprecate implements the deprecated-variable filter: it
// prefers the old variable while warning that it is going away.
package deprecate

import (
	"fmt"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
)

const usage = `USAGE: {{ new_var | deprecated(old_var=old_var,` +
	` old_var_name="old_var_name", new_var_name="new_var_name",` +
	` removed_in="removed_in", fatal=false) }}`

// Options describes one deprecated-variable lookup. NewValue is the
// replacement variable's value; OldValue is the deprecated variable's
// value, empty when the host reports it undefined.
type Options struct {
	NewValue string
	OldValue string
	OldName  string
	NewName  string
	// RemovedIn names the release or date when the old variable
	// disappears.
	RemovedIn string
	Fatal     bool
}

// Checker resolves deprecated variables against their replacements,
// emitting at most one warning per deprecated variable name.
type Checker struct {
	logger zerolog.Logger

	mu     sync.Mutex
	warned map[string]struct{}
}

// NewChecker creates a Checker that writes warnings to the given
// logger.
func NewChecker(logger zerolog.Logger) *Checker {
	return &Checker{
		logger: logger,
		warned: map[string]struct{}{},
	}
}

// Resolve returns the deprecated value when it is still set, warning
// that it should no longer be used, and the new value otherwise. The
// three descriptive options are required; a fatal deprecation in use
// aborts with an error instead of warning.
func (c *Checker) Resolve(opts Options) (string, error) {
	if opts.OldName == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(`to use this filter you must provide the "old_var_name" option` +
				` with the string name of the old variable that will be replaced. ` + usage)
	}
	if opts.NewName == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(`to use this filter you must provide the "new_var_name" option` +
				` with the string name of the new variable that will replace the` +
				` deprecated one. ` + usage)
	}
	if opts.RemovedIn == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(`to use this filter you must provide the "removed_in" option` +
				` with the string name of the release where the old_var will be removed. ` + usage)
	}

	if opts.OldValue == "" {
		return opts.NewValue, nil
	}

	message := fmt.Sprintf(
		"Deprecated Option provided: Deprecated variable: %q, Removal timeframe: %q, Future usage: %q",
		opts.OldName, opts.RemovedIn, opts.NewName,
	)

	if opts.Fatal {
		c.logger.Error().Msg("Fatally " + message)
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("Fatally " + message)
	}

	c.warnOnce(opts.OldName, message)
	return opts.OldValue, nil
}

// warnOnce emits the warning the first time a given deprecated
// variable name is seen.
func (c *Checker) warnOnce(oldName string, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, seen := c.warned[oldName]; seen {
		return
	}
	c.warned[oldName] = struct{}{}
	c.logger.Warn().Str("variable", oldName).Msg(message)
}
