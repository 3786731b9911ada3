package deprecate

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker() (*Checker, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewChecker(zerolog.New(buf)), buf
}

func validOptions() Options {
	return Options{
		NewValue:  "new-value",
		OldValue:  "old-value",
		OldName:   "old_var",
		NewName:   "new_var",
		RemovedIn: "2026.1",
	}
}

func TestResolveRequiresDescriptiveOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"missing old name", func(o *Options) { o.OldName = "" }},
		{"missing new name", func(o *Options) { o.NewName = "" }},
		{"missing removal timeframe", func(o *Options) { o.RemovedIn = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker, _ := newTestChecker()
			opts := validOptions()
			tt.mutate(&opts)
			_, err := checker.Resolve(opts)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}

func TestResolveReturnsNewValueWhenOldUnset(t *testing.T) {
	checker, buf := newTestChecker()
	opts := validOptions()
	opts.OldValue = ""
	value, err := checker.Resolve(opts)
	require.NoError(t, err)
	assert.Equal(t, "new-value", value)
	assert.Empty(t, buf.String(), "no warning expected when the old variable is unset")
}

func TestResolveWarnsOncePerOldName(t *testing.T) {
	checker, buf := newTestChecker()

	value, err := checker.Resolve(validOptions())
	require.NoError(t, err)
	assert.Equal(t, "old-value", value)

	_, err = checker.Resolve(validOptions())
	require.NoError(t, err)

	warnings := strings.Count(buf.String(), "Deprecated Option provided")
	assert.Equal(t, 1, warnings, "warning should be emitted once per variable name")
	assert.Contains(t, buf.String(), "old_var")
	assert.Contains(t, buf.String(), "2026.1")
	assert.Contains(t, buf.String(), "new_var")
}

func TestResolveFatal(t *testing.T) {
	checker, _ := newTestChecker()
	opts := validOptions()
	opts.Fatal = true
	_, err := checker.Resolve(opts)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "Fatally")
}
