package utils

import (
	"fmt"
	"strconv"
)

// ParsePort parses a decimal TCP port in 1-65535.
func ParsePort(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	if v < 1 || v > 65535 {
		return 0, fmt.Errorf("port %d out of range 1-65535", v)
	}
	return v, nil
}
