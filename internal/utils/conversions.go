package utils

import (
	"errors"
	"fmt"
	"strconv"
)

// ToIndex converts a request field into a non-negative list index.
// Requests that went through msgpack come back with whatever integer width
// the encoder picked, so every integer kind is accepted.
func ToIndex(v interface{}) (int, error) {
	var idx int64
	switch n := v.(type) {
	case int:
		idx = int64(n)
	case int8:
		idx = int64(n)
	case int16:
		idx = int64(n)
	case int32:
		idx = int64(n)
	case int64:
		idx = n
	case uint8:
		idx = int64(n)
	case uint16:
		idx = int64(n)
	case uint32:
		idx = int64(n)
	case uint64:
		if n > uint64(^uint(0)>>1) {
			return 0, fmt.Errorf("index %d out of range", n)
		}
		idx = int64(n)
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("bad index %q", n)
		}
		idx = parsed
	case nil:
		return 0, errors.New("missing index")
	default:
		return 0, fmt.Errorf("invalid type for index: %T", v)
	}
	if idx < 0 {
		return 0, fmt.Errorf("index %d is negative", idx)
	}
	return int(idx), nil
}

// IsIndex reports whether s is a plain decimal index.
func IsIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
