package jwt

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration handles the standard time.Duration syntax plus a "d" suffix
// for days, which config files use for refresh token expiry.
func ParseDuration(s string) time.Duration {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil {
			return time.Duration(n) * 24 * time.Hour
		}
	}

	d, _ := time.ParseDuration(s)

	return d
}
