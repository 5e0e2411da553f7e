package utils

import (
	"os"
	"strings"
)

// OverrideFromEnv replaces *target with the value of envName if that variable is set and not empty.
func OverrideFromEnv(target *string, envName string) {
	if v := os.Getenv(envName); v != "" {
		*target = v
	}
}

// ListFromEnv reads a comma separated list. Blank entries are dropped; nil if the variable is unset.
func ListFromEnv(envName string) []string {
	raw := os.Getenv(envName)
	if raw == "" {
		return nil
	}
	values := []string{}
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
