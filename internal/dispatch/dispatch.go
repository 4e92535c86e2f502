// Package dispatch runs command invocations coming from any transport.
//
// Every invocation goes through the same steps while holding the invoking
// user's lock: arguments are validated, the cooldown is checked and stamped,
// then the command executes. A rejection never changes the balance or the
// cooldown, and a failing command has its cooldown stamp reverted unless it
// already changed the balance.
package dispatch

import (
	"context"
	"fmt"

	"github.com/pajbot/bankbot-discord/internal/cooldown"
	"github.com/pajbot/bankbot-discord/internal/economy"
	"github.com/pajbot/bankbot-discord/internal/logging"
	"github.com/pajbot/bankbot-discord/pkg"
	"github.com/pajbot/bankbot-discord/pkg/commands"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Result int

const (
	ResultOK Result = iota
	// ResultIgnored means no reply should be sent, e.g. unknown text trigger
	ResultIgnored
	ResultUnknown
	// ResultThrottled means the user hit a spam guard, nothing is sent
	ResultThrottled
	ResultRejected
	ResultCooldown
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultIgnored:
		return "ignored"
	case ResultUnknown:
		return "unknown"
	case ResultThrottled:
		return "throttled"
	case ResultRejected:
		return "rejected"
	case ResultCooldown:
		return "cooldown"
	case ResultFailed:
		return "failed"
	}

	return fmt.Sprintf("Result(%d)", int(r))
}

const (
	FailureMessage         = "حدث خطأ أثناء تنفيذ الأمر!"
	UnknownCommandMessage  = "❌ الأمر غير موجود"
	cooldownMinutesMessage = "⏰ يجب الانتظار %d دقيقة قبل استخدام هذا الأمر مرة أخرى"
	cooldownSecondsMessage = "⏰ يجب الانتظار %d ثانية قبل استخدام هذا الأمر مرة أخرى"
)

// CooldownMessage formats the remaining wait, in minutes when more than a minute is left
func CooldownMessage(seconds int64) string {
	if seconds > 60 {
		return fmt.Sprintf(cooldownMinutesMessage, (seconds+59)/60)
	}

	return fmt.Sprintf(cooldownSecondsMessage, seconds)
}

type Dispatcher struct {
	registry  *commands.Registry
	bank      *economy.Bank
	cooldowns *cooldown.Tracker
}

func New(registry *commands.Registry, bank *economy.Bank, cooldowns *cooldown.Tracker) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		bank:      bank,
		cooldowns: cooldowns,
	}
}

func (d *Dispatcher) Registry() *commands.Registry {
	return d.registry
}

// Handle runs inv and returns the reply to send. A nil reply means nothing should be sent
func (d *Dispatcher) Handle(ctx context.Context, inv *pkg.Invocation) (*pkg.Reply, Result) {
	if logging.TrackingID(ctx) == "" {
		ctx = logging.WithTrackingID(ctx)
	}

	cmd := d.registry.Get(inv.Command)
	if cmd == nil {
		if inv.Structured {
			return pkg.TextReply(UnknownCommandMessage), ResultUnknown
		}
		return nil, ResultIgnored
	}

	log := logrus.WithContext(ctx).WithFields(logrus.Fields{
		"user":    inv.UserID,
		"command": cmd.Name(),
	})

	spamGuard, guarded := cmd.(pkg.SpamGuarded)
	if guarded && spamGuard.HasUserIDCooldown(inv.SpamKey()) {
		log.Debug("spam guard active")
		return nil, ResultThrottled
	}

	var (
		reply  *pkg.Reply
		result = ResultOK
	)

	err := d.bank.WithAccount(ctx, inv.UserID, func(account pkg.Account) error {
		if validator, ok := cmd.(pkg.Validator); ok {
			if err := validator.Validate(ctx, inv, account.Balance()); err != nil {
				return err
			}
		}

		remaining, allowed := d.cooldowns.CheckAndStamp(inv.UserID, cmd.Name(), cmd.Cooldown())
		if !allowed {
			reply = pkg.TextReply(CooldownMessage(cooldown.Seconds(remaining)))
			result = ResultCooldown
			return nil
		}

		var err error
		reply, err = execute(ctx, cmd, inv, account)
		if err != nil && !account.Mutated() {
			d.cooldowns.Revert(inv.UserID, cmd.Name())
		}

		return err
	})

	if err != nil {
		if validationError, ok := pkg.AsValidationError(err); ok {
			log.Debugf("rejected: %s", validationError.Message)
			return pkg.TextReply(validationError.Message), ResultRejected
		}

		log.WithError(err).Error("command failed")
		return pkg.TextReply(FailureMessage), ResultFailed
	}

	if result == ResultOK && guarded {
		spamGuard.AddUserIDCooldown(inv.SpamKey())
	}

	return reply, result
}

func execute(ctx context.Context, cmd pkg.Command, inv *pkg.Invocation, account pkg.Account) (reply *pkg.Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic in command %s: %v", cmd.Name(), r)
		}
	}()

	return cmd.Execute(ctx, inv, account)
}
