package filters

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Args carries positional filter arguments as they arrive from the
// host template engine: untyped. The accessor methods coerce values
// the way the engine's loosely-typed variables require.
type Args []any

func (a Args) arg(index int, name string) (any, error) {
	if index >= len(a) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("missing required argument %q", name))
	}
	return a[index], nil
}

// String returns argument index as a string.
func (a Args) String(index int, name string) (string, error) {
	value, err := a.arg(index, name)
	if err != nil {
		return "", err
	}
	switch typed := value.(type) {
	case string:
		return typed, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprintf("%v", typed), nil
	}
}

// OptionalString returns argument index as a string, or the empty
// string when the argument was not provided.
func (a Args) OptionalString(index int) string {
	if index >= len(a) {
		return ""
	}
	value, _ := a.String(index, "")
	return value
}

// StringList returns argument index as a list of strings. Scalar list
// members are stringified; a bare string is not promoted to a list.
func (a Args) StringList(index int, name string) ([]string, error) {
	value, err := a.arg(index, name)
	if err != nil {
		return nil, err
	}
	switch typed := value.(type) {
	case []string:
		return typed, nil
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("argument %q must be a list, got %T", name, value))
	}
}

// Int returns argument index as an integer, accepting numeric strings.
func (a Args) Int(index int, name string) (int, error) {
	value, err := a.arg(index, name)
	if err != nil {
		return 0, err
	}
	switch typed := value.(type) {
	case int:
		return typed, nil
	case int64:
		return int(typed), nil
	case float64:
		return int(typed), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("argument %q must be an integer, got %q", name, typed)).
				WithCause(err)
		}
		return parsed, nil
	default:
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("argument %q must be an integer, got %T", name, value))
	}
}

// OptionalBool returns argument index as a bool. Template variables
// spell booleans in several ways; "yes" and "true" count as true.
func (a Args) OptionalBool(index int) bool {
	if index >= len(a) {
		return false
	}
	switch typed := a[index].(type) {
	case bool:
		return typed
	case string:
		folded := strings.ToLower(strings.TrimSpace(typed))
		return folded == "yes" || folded == "true"
	default:
		return false
	}
}
