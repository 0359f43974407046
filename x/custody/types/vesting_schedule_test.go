package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/teampay/chain/x/custody/types"
)

// Fixture dates: ~1 year cliff, ~2 year runway, 14-day vest interval.
const (
	fixtureStart int64 = 1662700716
	fixtureCliff int64 = 1694236716
	fixtureEnd   int64 = 1725859156
	fixtureNow   int64 = 1695236716
)

func fixtureSchedule(t *testing.T, amount int64) types.VestingSchedule {
	cliff := fixtureCliff
	s, err := types.NewVestingSchedule(fixtureStart, &cliff, fixtureEnd, 14, false)
	require.NoError(t, err)
	s.Amount = math.LegacyNewDec(amount)
	return s
}

func TestVestedAtGoldenValue(t *testing.T) {
	s := fixtureSchedule(t, 10000)

	vested := types.TruncateToPrecision(s.VestedAt(fixtureNow), 3)
	require.Equal(t, "4979.477000000000000000", vested.String())
}

func TestVestedIsStepFunction(t *testing.T) {
	s := fixtureSchedule(t, 10000)

	interval := int64(14) * types.SecondsPerDay
	base := s.VestedAt(fixtureNow)

	// two reads within the same interval give the same answer
	require.True(t, base.Equal(s.VestedAt(fixtureNow+1)))
	require.True(t, base.Equal(s.VestedAt(fixtureNow+100)))

	// the next interval boundary advances the step
	elapsed := (fixtureNow - fixtureStart) / interval
	nextBoundary := fixtureStart + (elapsed+1)*interval
	require.True(t, s.VestedAt(nextBoundary).GT(base))
}

func TestVestedMonotonicAndFullAtEnd(t *testing.T) {
	s := fixtureSchedule(t, 10000)

	prev := math.LegacyZeroDec()
	step := (fixtureEnd - fixtureStart) / 20
	for epoch := fixtureStart; epoch <= fixtureEnd; epoch += step {
		vested := s.VestedAt(epoch)
		require.True(t, vested.GTE(prev), "vested decreased at epoch %d", epoch)
		prev = vested
	}
	require.True(t, s.VestedAt(fixtureEnd).Equal(s.Amount))
	require.True(t, s.VestedAt(fixtureEnd+1).Equal(s.Amount))
}

func TestVestedZeroBeforeCliff(t *testing.T) {
	s := fixtureSchedule(t, 10000)

	require.True(t, s.VestedAt(fixtureStart).IsZero())
	require.True(t, s.VestedAt(fixtureCliff).IsZero())
	require.True(t, s.VestedAt(fixtureCliff-1).IsZero())
}

func TestCancellationFreezesVesting(t *testing.T) {
	s := fixtureSchedule(t, 10000)
	cancelEpoch := fixtureNow
	s.CancelEpoch = &cancelEpoch

	frozen := s.VestedAt(cancelEpoch)
	require.True(t, s.Vested(fixtureNow+types.SecondsPerDay*365).Equal(frozen))
	require.True(t, s.Unvested(fixtureEnd+1).Equal(s.Amount.Sub(frozen)))
}

func TestCheckJoinWindow(t *testing.T) {
	s := fixtureSchedule(t, 10000)
	require.NoError(t, s.CheckJoinWindow(fixtureNow))

	s.CheckJoin = true
	err := s.CheckJoinWindow(fixtureNow)
	require.ErrorIs(t, err, types.ErrJoinWindowClosed)

	require.NoError(t, s.CheckJoinWindow(fixtureStart))
}

func TestScheduleValidate(t *testing.T) {
	cliff := fixtureCliff

	_, err := types.NewVestingSchedule(fixtureEnd, &cliff, fixtureStart, 14, false)
	require.ErrorIs(t, err, types.ErrInvalidSchedule)

	_, err = types.NewVestingSchedule(fixtureStart, nil, fixtureEnd, 0, false)
	require.ErrorIs(t, err, types.ErrInvalidSchedule)

	badCliff := fixtureStart - 1
	_, err = types.NewVestingSchedule(fixtureStart, &badCliff, fixtureEnd, 14, false)
	require.ErrorIs(t, err, types.ErrInvalidSchedule)

	_, err = types.NewVestingSchedule(fixtureStart, nil, fixtureEnd, 14, true)
	require.NoError(t, err)
}

func TestTruncateToPrecision(t *testing.T) {
	d := math.LegacyMustNewDecFromStr("4979.4770105")

	require.Equal(t, "4979.477000000000000000", types.TruncateToPrecision(d, 3).String())
	require.Equal(t, "4979.000000000000000000", types.TruncateToPrecision(d, 0).String())
	// full precision passes through untouched
	require.Equal(t, d.String(), types.TruncateToPrecision(d, 18).String())

	negative := math.LegacyMustNewDecFromStr("-1.9999")
	require.Equal(t, "-1.999000000000000000", types.TruncateToPrecision(negative, 3).String())
}
