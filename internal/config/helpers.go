package config

import (
	"strings"
	"time"

	pb2utils "github.com/pajbot/utils"
	"github.com/pkg/errors"
)

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))

	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}

	return out
}

func parseCooldowns(overrides []string) (map[string]time.Duration, error) {
	cooldowns := map[string]time.Duration{}

	for _, override := range overrides {
		name, rawDuration, ok := strings.Cut(override, ":")
		if !ok {
			return nil, errors.Errorf("invalid cooldown override %q, expected name:duration", override)
		}

		name = strings.ToLower(strings.TrimSpace(name))
		d, err := pb2utils.ParseDuration(strings.TrimSpace(rawDuration))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid duration in cooldown override %q", override)
		}
		if d < 0 {
			return nil, errors.Errorf("cooldown for %s must not be negative", name)
		}

		cooldowns[name] = d
	}

	return cooldowns, nil
}
