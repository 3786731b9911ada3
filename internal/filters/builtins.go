package filters

import (
	"context"
	"strings"

	"osa-filters/internal/deprecate"
	"osa-filters/internal/gitlink"
	"osa-filters/internal/netutil"
	"osa-filters/internal/requirements"
)

// New builds the registry holding every builtin filter. The
// deprecation checker is injected so warning output stays under the
// caller's logging configuration.
func New(ctx context.Context, checker *deprecate.Checker) (*Registry, error) {
	registry := &Registry{byName: map[string]Func{}}
	builtins := []struct {
		name string
		fn   Func
	}{
		{"bit_length_power_of_2", bitLengthPowerOf2},
		{"netloc", netloc},
		{"netloc_no_port", netlocNoPort},
		{"netorigin", netOrigin},
		{"string_2_int", stringToInt},
		{"pip_requirement_names", pipRequirementNames},
		{"pip_constraint_update", pipConstraintUpdate},
		{"splitlines", splitlines},
		{"filtered_list", filteredList},
		{"git_link_parse", gitLinkParse},
		{"git_link_parse_name", gitLinkParseName},
		{"deprecated", deprecatedFilter(checker)},
	}
	for _, builtin := range builtins {
		if err := registry.Register(ctx, builtin.name, builtin.fn); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func bitLengthPowerOf2(args Args) (any, error) {
	value, err := args.Int(0, "value")
	if err != nil {
		return nil, err
	}
	return netutil.BitLengthPowerOf2(value), nil
}

func netloc(args Args) (any, error) {
	rawURL, err := args.String(0, "url")
	if err != nil {
		return nil, err
	}
	return netutil.Netloc(rawURL)
}

func netlocNoPort(args Args) (any, error) {
	rawURL, err := args.String(0, "url")
	if err != nil {
		return nil, err
	}
	return netutil.NetlocNoPort(rawURL)
}

func netOrigin(args Args) (any, error) {
	rawURL, err := args.String(0, "url")
	if err != nil {
		return nil, err
	}
	return netutil.NetOrigin(rawURL)
}

func stringToInt(args Args) (any, error) {
	value, err := args.String(0, "string")
	if err != nil {
		return nil, err
	}
	return netutil.StringToInt(value), nil
}

func pipRequirementNames(args Args) (any, error) {
	reqs, err := args.StringList(0, "requirements")
	if err != nil {
		return nil, err
	}
	return requirements.Names(reqs), nil
}

func pipConstraintUpdate(args Args) (any, error) {
	base, err := args.StringList(0, "list_one")
	if err != nil {
		return nil, err
	}
	overrides, err := args.StringList(1, "list_two")
	if err != nil {
		return nil, err
	}
	return requirements.Merge(base, overrides), nil
}

func splitlines(args Args) (any, error) {
	value, err := args.String(0, "string_with_lines")
	if err != nil {
		return nil, err
	}
	return splitLines(value), nil
}

func filteredList(args Args) (any, error) {
	listOne, err := args.StringList(0, "list_one")
	if err != nil {
		return nil, err
	}
	listTwo, err := args.StringList(1, "list_two")
	if err != nil {
		return nil, err
	}
	return requirements.FilteredList(listOne, listTwo), nil
}

func gitLinkParse(args Args) (any, error) {
	repo, err := args.String(0, "repo")
	if err != nil {
		return nil, err
	}
	return gitlink.Parse(repo), nil
}

func gitLinkParseName(args Args) (any, error) {
	repo, err := args.String(0, "repo")
	if err != nil {
		return nil, err
	}
	return gitlink.ParseName(repo), nil
}

func deprecatedFilter(checker *deprecate.Checker) Func {
	return func(args Args) (any, error) {
		newValue, err := args.String(0, "new_var")
		if err != nil {
			return nil, err
		}
		return checker.Resolve(deprecate.Options{
			NewValue:  newValue,
			OldValue:  args.OptionalString(1),
			OldName:   args.OptionalString(2),
			NewName:   args.OptionalString(3),
			RemovedIn: args.OptionalString(4),
			Fatal:     args.OptionalBool(5),
		})
	}
}

// splitLines mirrors the usual splitlines semantics: split on newline,
// tolerating CRLF, without a trailing empty entry.
func splitLines(value string) []string {
	if value == "" {
		return []string{}
	}
	normalized := strings.ReplaceAll(value, "\r\n", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	return strings.Split(normalized, "\n")
}
