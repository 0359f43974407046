package types

import (
	"cosmossdk.io/math"
)

// VestingSchedule releases a job contract's escrow linearly over time,
// quantized into whole vest intervals. Amount and Withdrawn are cumulative;
// CancelEpoch, once set, freezes the calculation at that epoch.
type VestingSchedule struct {
	StartEpoch   int64  `json:"start_epoch"`
	CliffEpoch   *int64 `json:"cliff_epoch,omitempty"`
	EndEpoch     int64  `json:"end_epoch"`
	VestInterval int64  `json:"vest_interval"` // days per interval

	Amount    math.LegacyDec `json:"amount"`
	Withdrawn math.LegacyDec `json:"withdrawn"`

	CancelEpoch *int64 `json:"cancel_epoch,omitempty"`
	CheckJoin   bool   `json:"check_join"`
}

// NewVestingSchedule validates the date bounds and returns a zero-amount schedule.
func NewVestingSchedule(startEpoch int64, cliffEpoch *int64, endEpoch, vestInterval int64, checkJoin bool) (VestingSchedule, error) {
	s := VestingSchedule{
		StartEpoch:   startEpoch,
		CliffEpoch:   cliffEpoch,
		EndEpoch:     endEpoch,
		VestInterval: vestInterval,
		Amount:       math.LegacyZeroDec(),
		Withdrawn:    math.LegacyZeroDec(),
		CheckJoin:    checkJoin,
	}
	if err := s.Validate(); err != nil {
		return VestingSchedule{}, err
	}
	return s, nil
}

// Validate enforces end >= cliff >= start > 0 (cliff optional) and a positive interval.
func (s VestingSchedule) Validate() error {
	if s.CliffEpoch != nil {
		if !(s.EndEpoch >= *s.CliffEpoch && *s.CliffEpoch >= s.StartEpoch && s.StartEpoch > 0) {
			return ErrInvalidSchedule.Wrap("cliff must be after start and before end")
		}
	} else if !(s.EndEpoch >= s.StartEpoch && s.StartEpoch > 0) {
		return ErrInvalidSchedule.Wrap("end must be after start")
	}
	if s.VestInterval <= 0 {
		return ErrInvalidSchedule.Wrap("missing vest interval")
	}
	return nil
}

// VestedAt returns the amount vested when observed at the given epoch.
// Vesting is a step function: it advances once per whole elapsed interval.
// The per-interval quotient is computed divide-before-multiply with
// truncation; downstream golden values depend on this exact order.
func (s VestingSchedule) VestedAt(observationEpoch int64) math.LegacyDec {
	cutoff := s.StartEpoch
	if s.CliffEpoch != nil {
		cutoff = *s.CliffEpoch
	}
	if observationEpoch >= s.EndEpoch {
		return s.Amount
	}
	if observationEpoch <= cutoff {
		return math.LegacyZeroDec()
	}

	interval := s.VestInterval * SecondsPerDay
	elapsedIntervals := (observationEpoch - s.StartEpoch) / interval

	vestTime := s.EndEpoch - s.StartEpoch
	perInterval := s.Amount.QuoInt64(vestTime).MulInt64(interval)

	return perInterval.MulInt64(elapsedIntervals)
}

// Vested observes the schedule at now, or at the frozen cancel epoch if cancelled.
func (s VestingSchedule) Vested(now int64) math.LegacyDec {
	if s.CancelEpoch != nil {
		return s.VestedAt(*s.CancelEpoch)
	}
	return s.VestedAt(now)
}

// Unvested is the complement of Vested against the cumulative deposit amount.
func (s VestingSchedule) Unvested(now int64) math.LegacyDec {
	return s.Amount.Sub(s.Vested(now))
}

// CheckJoinWindow rejects joins after the schedule start when the contract
// was created with the join-before-start policy.
func (s VestingSchedule) CheckJoinWindow(now int64) error {
	if s.CheckJoin && s.StartEpoch < now {
		return ErrJoinWindowClosed.Wrapf("start epoch %d is in the past", s.StartEpoch)
	}
	return nil
}

// TruncateToPrecision rounds toward zero at the asset's declared decimal
// places, so custody never releases fractional dust the asset cannot carry.
func TruncateToPrecision(d math.LegacyDec, decimals uint32) math.LegacyDec {
	if int(decimals) >= math.LegacyPrecision {
		return d
	}
	factor := math.LegacyNewDec(10).Power(uint64(decimals))
	return d.MulTruncate(factor).TruncateDec().QuoTruncate(factor)
}
