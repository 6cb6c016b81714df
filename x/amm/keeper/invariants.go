package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// RegisterInvariants registers all amm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "constant-product", ConstantProductInvariant(k))
	ir.RegisterRoute(types.ModuleName, "lp-allotment", LPAllotmentInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-consistency", ReserveConsistencyInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ConstantProductInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = LPAllotmentInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return ReserveConsistencyInvariant(k)(ctx)
	}
}

// ConstantProductInvariant checks that the cached k matches the product of
// the current reserves
func ConstantProductInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		if k.HasPoolState(ctx) {
			pool, err := k.GetPoolState(ctx)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "constant-product",
					fmt.Sprintf("failed to load pool state: %v", err)), true
			}

			if pool.Initialized {
				product := pool.ComputeK()
				if !pool.KInvariant.Equal(product) {
					count++
					msg += fmt.Sprintf("cached k (%s) != reserve product (%s)\n",
						pool.KInvariant.String(), product.String())
				}
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "constant-product",
			fmt.Sprintf("found %d constant-product violations\n%s", count, msg),
		), broken
	}
}

// LPAllotmentInvariant checks that issued plus remaining LP units always sum
// to the fixed allotment
func LPAllotmentInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		if k.HasPoolState(ctx) {
			pool, err := k.GetPoolState(ctx)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "lp-allotment",
					fmt.Sprintf("failed to load pool state: %v", err)), true
			}

			if pool.LpSupplyRemaining > types.TotalLPSupply {
				count++
				msg += fmt.Sprintf("remaining LP supply (%d) exceeds total allotment (%d)\n",
					pool.LpSupplyRemaining, types.TotalLPSupply)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "lp-allotment",
			fmt.Sprintf("found %d LP allotment violations\n%s", count, msg),
		), broken
	}
}

// ReserveConsistencyInvariant checks that a pool with issued LP units holds
// both reserves. Reserves with zero issued units are legal: a deposit whose
// floored mint comes to zero is accepted and its amounts become donations.
func ReserveConsistencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		if k.HasPoolState(ctx) {
			pool, err := k.GetPoolState(ctx)
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "reserve-consistency",
					fmt.Sprintf("failed to load pool state: %v", err)), true
			}

			if pool.Initialized {
				issued := pool.IssuedLPUnits()
				if issued > 0 && (pool.PrimaryReserve == 0 || pool.SecondaryReserve == 0) {
					count++
					msg += fmt.Sprintf("issued LP units (%d) backed by an empty reserve: primary=%d secondary=%d\n",
						issued, pool.PrimaryReserve, pool.SecondaryReserve)
				}
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-consistency",
			fmt.Sprintf("found %d reserve consistency violations\n%s", count, msg),
		), broken
	}
}
