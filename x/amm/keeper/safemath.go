package keeper

import (
	"math"
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// Checked arithmetic for the pool's uint64 reserve domain. Products of two
// reserves need up to 128 bits, so intermediates go through math/big and
// results are checked back into uint64 before they touch state.

// SafeAddUint64 adds two uint64 values with overflow checking
func SafeAddUint64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, types.ErrOverflow.Wrapf("uint64 addition overflow: %d + %d", a, b)
	}
	return a + b, nil
}

// SafeSubUint64 subtracts b from a with underflow checking
func SafeSubUint64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, types.ErrOverflow.Wrapf("uint64 underflow: %d - %d", a, b)
	}
	return a - b, nil
}

// MulDivUint64 computes floor(a * b / c) with a 128-bit intermediate.
// The result must fit in uint64.
func MulDivUint64(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, types.ErrOverflow.Wrap("division by zero")
	}
	product := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	quotient := product.Quo(product, new(big.Int).SetUint64(c))
	if !quotient.IsUint64() {
		return 0, types.ErrOverflow.Wrapf("quotient of %d * %d / %d exceeds uint64", a, b, c)
	}
	return quotient.Uint64(), nil
}

// IntegerSqrtUint64 computes floor(sqrt(a * b)). The result always fits in
// uint64 because both factors do.
func IntegerSqrtUint64(a, b uint64) uint64 {
	product := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return product.Sqrt(product).Uint64()
}

// MulUint64ToInt returns the exact product a * b as a math.Int.
func MulUint64ToInt(a, b uint64) sdkmath.Int {
	product := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return sdkmath.NewIntFromBigInt(product)
}
