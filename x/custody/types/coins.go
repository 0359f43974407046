package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CoinFromDec converts a custody amount at the asset's declared precision
// into base units for a bank transfer. Custody amounts are always truncated
// to the asset precision first, so the conversion is exact.
func CoinFromDec(denom string, decimals uint32, amount math.LegacyDec) sdk.Coin {
	factor := math.LegacyNewDec(10).Power(uint64(decimals))
	return sdk.NewCoin(denom, amount.MulTruncate(factor).TruncateInt())
}

// ValidatePrecision rejects amounts carrying more fractional digits than the
// asset can represent.
func ValidatePrecision(amount math.LegacyDec, decimals uint32) error {
	if !TruncateToPrecision(amount, decimals).Equal(amount) {
		return ErrPrecondition.Wrapf("amount %s exceeds asset precision of %d decimal places", amount, decimals)
	}
	return nil
}
