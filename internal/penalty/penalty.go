package penalty

import (
	"time"

	"github.com/mingleup/mingleup/internal/domain"
)

// Restriction is the outcome of evaluating a participant's no-show history
// against a session's penalty rules. It is computed on read and never stored.
type Restriction struct {
	Restricted    bool       `json:"restricted"`
	NoShowCount   int        `json:"no_show_count"`
	CooldownUntil *time.Time `json:"cooldown_until"`
}

// Evaluate counts no-shows across the workspace and, once the threshold is
// met, restricts the participant until cooldownDays after the latest no-show.
func Evaluate(rules domain.PenaltyRules, noShowTimes []time.Time) Restriction {
	r := Restriction{NoShowCount: len(noShowTimes)}

	if rules.NoShowThreshold < 1 || len(noShowTimes) < rules.NoShowThreshold {
		return r
	}

	last := noShowTimes[0]
	for _, ts := range noShowTimes[1:] {
		if ts.After(last) {
			last = ts
		}
	}

	until := last.AddDate(0, 0, rules.CooldownDays)
	r.Restricted = true
	r.CooldownUntil = &until
	return r
}

// CanRegister reports whether the participant may create a signup at now.
// The cooldown expires on read; nothing is written back.
func CanRegister(rules domain.PenaltyRules, noShowTimes []time.Time, now time.Time) bool {
	r := Evaluate(rules, noShowTimes)
	if !r.Restricted {
		return true
	}
	return !now.Before(*r.CooldownUntil)
}
