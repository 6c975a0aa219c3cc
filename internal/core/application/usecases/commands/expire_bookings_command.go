package commands

import (
	"errors"
	"time"

	"ratefinder/internal/pkg/errs"
	"ratefinder/internal/pkg/guard"
)

var (
	ErrExpireBookingsCommandIsNotConstructed = errors.New(
		"ExpireBookingsCommand must be created via NewExpireBookingsCommand constructor",
	)
)

// ExpireBookingsCommand cancels every booking still Created after ttl.
//
// Example:
//
//	cmd, err := NewExpireBookingsCommand(time.Now(), 24*time.Hour)
//	if err != nil {
//	    return err
//	}
//	expired, err := handler.Handle(ctx, cmd)
type ExpireBookingsCommand struct {
	now time.Time
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpireBookingsCommand requires a non-zero reference time and a
// positive ttl.
func NewExpireBookingsCommand(now time.Time, ttl time.Duration) (ExpireBookingsCommand, error) {
	var problems []error
	if now.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("now"))
	}
	if ttl <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("booking ttl", ttl, 0, "+Inf"))
	}
	if err := errors.Join(problems...); err != nil {
		return ExpireBookingsCommand{}, err
	}

	return ExpireBookingsCommand{now: now, ttl: ttl, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireBookingsCommand) Validate() error {
	return c.guard.Validate(ErrExpireBookingsCommandIsNotConstructed)
}

func (c ExpireBookingsCommand) Now() time.Time     { return c.now }
func (c ExpireBookingsCommand) TTL() time.Duration { return c.ttl }

// Cutoff is the creation time before which a Created booking expires.
func (c ExpireBookingsCommand) Cutoff() time.Time {
	return c.now.Add(-c.ttl)
}
