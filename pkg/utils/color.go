package utils

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseColor parses a hex color such as #0099ff into the integer form discord embeds expect
func ParseColor(s string) (int, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, errors.Errorf("invalid embed color %q", s)
	}

	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid embed color %q", s)
	}

	return int(v), nil
}
