package filters

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osa-filters/internal/deprecate"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := New(context.Background(), deprecate.NewChecker(zerolog.Nop()))
	require.NoError(t, err)
	return registry
}

func TestRegistryNames(t *testing.T) {
	registry := newTestRegistry(t)
	expected := []string{
		"bit_length_power_of_2",
		"deprecated",
		"filtered_list",
		"git_link_parse",
		"git_link_parse_name",
		"netloc",
		"netloc_no_port",
		"netorigin",
		"pip_constraint_update",
		"pip_requirement_names",
		"splitlines",
		"string_2_int",
	}
	if diff := cmp.Diff(expected, registry.Names()); diff != "" {
		t.Fatalf("unexpected registry names (-want +got):\n%s", diff)
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	registry := newTestRegistry(t)
	_, err := registry.Lookup("no_such_filter")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	registry := newTestRegistry(t)
	err := registry.Register(context.Background(), "netloc", func(Args) (any, error) {
		return nil, nil
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
}
