package console

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// splitArgs splits a command line on whitespace. Double quotes group words,
// also inside key="value" pairs; the quotes themselves are dropped.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
		started bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if inQuote {
		return nil, errUnterminatedQuote
	}
	if started {
		args = append(args, current.String())
	}
	return args, nil
}

// parseFields turns key=value arguments into a map, rejecting keys not in allowed.
func parseFields(args []string, allowed ...string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		key = strings.ToLower(key)
		if !slices.Contains(allowed, key) {
			return nil, fmt.Errorf("unknown field %q (allowed: %s)", key, strings.Join(allowed, ", "))
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("field %q given twice", key)
		}
		fields[key] = value
	}
	return fields, nil
}
