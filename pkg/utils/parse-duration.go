package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDurationString accepts time.ParseDuration syntax plus whole days ("7d").
// An empty value yields def.
func ParseDurationString(value string, def time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}

	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time duration '%s'", value)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid time duration '%s' : %s", value, err.Error())
	}
	return d, nil
}
