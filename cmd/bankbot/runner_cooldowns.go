package main

import (
	"context"
	"time"

	"github.com/pajbot/bankbot-discord/internal/cooldown"
	"github.com/sirupsen/logrus"
)

func startCooldownSweeper(ctx context.Context, cooldowns *cooldown.Tracker) {
	const interval = 5 * time.Minute

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if removed := cooldowns.Prune(); removed > 0 {
				logrus.Debugf("Pruned %d expired cooldowns, %d remaining", removed, cooldowns.Len())
			}
		}
	}
}
