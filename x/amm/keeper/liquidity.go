package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// AddLiquidity deposits both pool assets and mints LP units against the
// allotment. The first deposit prices the pool at the geometric mean of
// the amounts; later deposits mint by the smaller of the two reserve
// ratios, so an imbalanced deposit donates its excess to the pool.
// A computed mint of zero is accepted and simply credits nothing.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, primaryAmount, secondaryAmount uint64, primaryProof, secondaryProof types.DepositProof) (uint64, error) {
	pool, err := k.activePool(ctx, true)
	if err != nil {
		return 0, err
	}

	if err := k.verifyDeposit(ctx, primaryProof, pool.PrimaryAsset, primaryAmount); err != nil {
		return 0, types.ErrPreconditionFailed.Wrapf("primary deposit: %s", err)
	}
	if err := k.verifyDeposit(ctx, secondaryProof, pool.SecondaryAsset, secondaryAmount); err != nil {
		return 0, types.ErrPreconditionFailed.Wrapf("secondary deposit: %s", err)
	}

	issued := pool.IssuedLPUnits()

	var minted uint64
	if issued == 0 {
		minted = IntegerSqrtUint64(primaryAmount, secondaryAmount)
	} else {
		if pool.PrimaryReserve == 0 || pool.SecondaryReserve == 0 {
			return 0, types.ErrInvalidPoolState.Wrap("pool has issued units but empty reserves")
		}
		mintFromPrimary, err := MulDivUint64(primaryAmount, issued, pool.PrimaryReserve)
		if err != nil {
			return 0, err
		}
		mintFromSecondary, err := MulDivUint64(secondaryAmount, issued, pool.SecondaryReserve)
		if err != nil {
			return 0, err
		}
		minted = min(mintFromPrimary, mintFromSecondary)
	}

	if minted > pool.LpSupplyRemaining {
		return 0, types.ErrInsufficientSupply.Wrapf("mint of %d exceeds undistributed allotment %d", minted, pool.LpSupplyRemaining)
	}

	newPrimary, err := SafeAddUint64(pool.PrimaryReserve, primaryAmount)
	if err != nil {
		return 0, err
	}
	newSecondary, err := SafeAddUint64(pool.SecondaryReserve, secondaryAmount)
	if err != nil {
		return 0, err
	}

	pool.PrimaryReserve = newPrimary
	pool.SecondaryReserve = newSecondary
	pool.LpSupplyRemaining -= minted
	pool.KInvariant = pool.ComputeK()

	if err := k.SetPoolState(ctx, pool); err != nil {
		return 0, err
	}

	if minted > 0 {
		if err := k.ledger.TransferAsset(ctx, pool.LpAsset, provider, minted); err != nil {
			return 0, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyPrimaryAmount, formatUint(primaryAmount)),
			sdk.NewAttribute(types.AttributeKeySecondaryAmount, formatUint(secondaryAmount)),
			sdk.NewAttribute(types.AttributeKeyLpUnits, formatUint(minted)),
			sdk.NewAttribute(types.AttributeKeyKInvariant, pool.KInvariant.String()),
		),
	)
	k.Logger(ctx).Info("liquidity added",
		"provider", provider.String(),
		"primary", primaryAmount,
		"secondary", secondaryAmount,
		"minted", minted,
	)

	metrics := GetAMMMetrics()
	metrics.LiquidityAdded.WithLabelValues("primary").Add(float64(primaryAmount))
	metrics.LiquidityAdded.WithLabelValues("secondary").Add(float64(secondaryAmount))
	metrics.recordPoolGauges(pool)

	return minted, nil
}

// RemoveLiquidity burns LP units returned to the pool and pays out the
// proportional share of both reserves, rounded down. Dust from the floor
// stays in the pool.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, lpUnits uint64, lpProof types.DepositProof) (primaryOut, secondaryOut uint64, err error) {
	pool, err := k.activePool(ctx, false)
	if err != nil {
		return 0, 0, err
	}

	if lpUnits == 0 {
		return 0, 0, types.ErrInvalidAmount.Wrap("lp units to burn must be positive")
	}

	issued := pool.IssuedLPUnits()
	if lpUnits > issued {
		return 0, 0, types.ErrInsufficientSupply.Wrapf("burn of %d exceeds issued units %d", lpUnits, issued)
	}

	if err := k.ledger.VerifyAssetDeposit(ctx, lpProof, k.ledger.PoolAddress(), pool.LpAsset, lpUnits); err != nil {
		return 0, 0, types.ErrPreconditionFailed.Wrapf("lp deposit: %s", err)
	}

	primaryOut, err = MulDivUint64(lpUnits, pool.PrimaryReserve, issued)
	if err != nil {
		return 0, 0, err
	}
	secondaryOut, err = MulDivUint64(lpUnits, pool.SecondaryReserve, issued)
	if err != nil {
		return 0, 0, err
	}

	newPrimary, err := SafeSubUint64(pool.PrimaryReserve, primaryOut)
	if err != nil {
		return 0, 0, err
	}
	newSecondary, err := SafeSubUint64(pool.SecondaryReserve, secondaryOut)
	if err != nil {
		return 0, 0, err
	}

	pool.PrimaryReserve = newPrimary
	pool.SecondaryReserve = newSecondary
	pool.LpSupplyRemaining += lpUnits
	pool.KInvariant = pool.ComputeK()

	if err := k.SetPoolState(ctx, pool); err != nil {
		return 0, 0, err
	}

	if primaryOut > 0 {
		if err := k.transferOut(ctx, pool.PrimaryAsset, provider, primaryOut); err != nil {
			return 0, 0, err
		}
	}
	if secondaryOut > 0 {
		if err := k.transferOut(ctx, pool.SecondaryAsset, provider, secondaryOut); err != nil {
			return 0, 0, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyLpUnits, formatUint(lpUnits)),
			sdk.NewAttribute(types.AttributeKeyPrimaryAmount, formatUint(primaryOut)),
			sdk.NewAttribute(types.AttributeKeySecondaryAmount, formatUint(secondaryOut)),
			sdk.NewAttribute(types.AttributeKeyKInvariant, pool.KInvariant.String()),
		),
	)
	k.Logger(ctx).Info("liquidity removed",
		"provider", provider.String(),
		"burned", lpUnits,
		"primary_out", primaryOut,
		"secondary_out", secondaryOut,
	)

	metrics := GetAMMMetrics()
	metrics.LiquidityRemoved.WithLabelValues("primary").Add(float64(primaryOut))
	metrics.LiquidityRemoved.WithLabelValues("secondary").Add(float64(secondaryOut))
	metrics.recordPoolGauges(pool)

	return primaryOut, secondaryOut, nil
}
