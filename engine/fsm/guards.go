package fsm

import (
	"fmt"
	"time"
)

// RegisterStandardGuards installs the context-independent guards
// AlwaysTrue, and StateTimeExceeds with a required "ms" argument
func RegisterStandardGuards[T any](m *Machine[T]) {
	m.RegisterGuard("AlwaysTrue", func(T, *RegionState) bool {
		return true
	})

	m.RegisterGuardFactory("StateTimeExceeds", func(_ *Machine[T], args map[string]any) (GuardFunc[T], error) {
		ms, err := ArgInt(args, "ms")
		if err != nil {
			return nil, err
		}
		duration := time.Duration(ms) * time.Millisecond
		return func(_ T, region *RegionState) bool {
			return region.TimeInState >= duration
		}, nil
	})
}

// ArgInt reads an integer argument, TOML integers decode as int64
func ArgInt(args map[string]any, key string) (int64, error) {
	switch v := args[key].(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case nil:
		return 0, fmt.Errorf("missing argument '%s'", key)
	default:
		return 0, fmt.Errorf("argument '%s' has type %T, want integer", key, v)
	}
}

// ArgString reads a string argument
func ArgString(args map[string]any, key string) (string, error) {
	switch v := args[key].(type) {
	case string:
		return v, nil
	case nil:
		return "", fmt.Errorf("missing argument '%s'", key)
	default:
		return "", fmt.Errorf("argument '%s' has type %T, want string", key, v)
	}
}
