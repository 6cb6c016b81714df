package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// ComputeSwapFees splits an input amount into the fee components. The
// protocol fee is a sub-fraction of the total fee, not an additive on top;
// a zero swap fee short-circuits to a fee-free trade before the ratio
// division could divide by zero.
func ComputeSwapFees(inputAmount, swapFeeBps, protocolFeeBps uint64) (totalFee, lpFee, protocolFee uint64, err error) {
	if swapFeeBps == 0 {
		return 0, 0, 0, nil
	}
	totalFee, err = MulDivUint64(inputAmount, swapFeeBps, types.BpsDenominator)
	if err != nil {
		return 0, 0, 0, err
	}
	protocolFee, err = MulDivUint64(totalFee, protocolFeeBps, swapFeeBps)
	if err != nil {
		return 0, 0, 0, err
	}
	// A protocol fee share above the total fee would wrap the subtraction;
	// the module accepts protocolFeeBps > swapFeeBps as configuration, so
	// the check lives here where the amounts meet.
	lpFee, err = SafeSubUint64(totalFee, protocolFee)
	if err != nil {
		return 0, 0, 0, err
	}
	return totalFee, lpFee, protocolFee, nil
}

// QuotePoolSwap prices a swap against the given pool state without committing
// anything. Returns the quote and the post-trade reserves on both legs.
func QuotePoolSwap(pool types.PoolState, inputAmount uint64, direction types.SwapDirection) (res types.SwapResult, newReserveIn, newReserveOut uint64, err error) {
	if err := direction.Validate(); err != nil {
		return types.SwapResult{}, 0, 0, types.ErrInvalidSwapType.Wrap(err.Error())
	}
	if inputAmount == 0 {
		return types.SwapResult{}, 0, 0, types.ErrInvalidAmount.Wrap("input amount must be positive")
	}

	var reserveIn, reserveOut uint64
	switch direction {
	case types.PrimaryToSecondary:
		reserveIn, reserveOut = pool.PrimaryReserve, pool.SecondaryReserve
	case types.SecondaryToPrimary:
		reserveIn, reserveOut = pool.SecondaryReserve, pool.PrimaryReserve
	}

	if reserveIn == 0 || reserveOut == 0 {
		return types.SwapResult{}, 0, 0, types.ErrInsufficientSupply.Wrap("pool has no liquidity")
	}

	totalFee, lpFee, protocolFee, err := ComputeSwapFees(inputAmount, pool.SwapFeeBps, pool.ProtocolFeeBps)
	if err != nil {
		return types.SwapResult{}, 0, 0, err
	}
	inputAfterFee := inputAmount - totalFee

	denominator, err := SafeAddUint64(reserveIn, inputAfterFee)
	if err != nil {
		return types.SwapResult{}, 0, 0, err
	}
	outputAmount, err := MulDivUint64(reserveOut, inputAfterFee, denominator)
	if err != nil {
		return types.SwapResult{}, 0, 0, err
	}
	if outputAmount == 0 {
		return types.SwapResult{}, 0, 0, types.ErrSwapTooSmall.Wrapf("input %d quotes to zero output", inputAmount)
	}

	// The LP share of the fee stays in the input reserve, compounding the
	// invariant in the providers' favor.
	newReserveIn, err = SafeAddUint64(reserveIn, inputAfterFee)
	if err != nil {
		return types.SwapResult{}, 0, 0, err
	}
	newReserveIn, err = SafeAddUint64(newReserveIn, lpFee)
	if err != nil {
		return types.SwapResult{}, 0, 0, err
	}
	newReserveOut, err = SafeSubUint64(reserveOut, outputAmount)
	if err != nil {
		return types.SwapResult{}, 0, 0, err
	}

	res = types.SwapResult{
		OutputAmount: outputAmount,
		TotalFee:     totalFee,
		LpFee:        lpFee,
		ProtocolFee:  protocolFee,
	}
	return res, newReserveIn, newReserveOut, nil
}

// Swap executes a single-direction trade against the constant-product
// curve. The input deposit is guaranteed custodied by the host's atomic
// transaction group, so the keeper only prices, commits the new reserves
// and pays out the output and the treasury's fee share.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, inputAmount uint64, direction types.SwapDirection) (types.SwapResult, error) {
	pool, err := k.activePool(ctx, true)
	if err != nil {
		return types.SwapResult{}, err
	}

	res, newReserveIn, newReserveOut, err := QuotePoolSwap(pool, inputAmount, direction)
	if err != nil {
		return types.SwapResult{}, err
	}

	oldK := pool.KInvariant

	var inputAsset types.Asset
	switch direction {
	case types.PrimaryToSecondary:
		pool.PrimaryReserve = newReserveIn
		pool.SecondaryReserve = newReserveOut
		inputAsset = pool.PrimaryAsset
	case types.SecondaryToPrimary:
		pool.SecondaryReserve = newReserveIn
		pool.PrimaryReserve = newReserveOut
		inputAsset = pool.SecondaryAsset
	}
	pool.KInvariant = pool.ComputeK()

	// With a nonzero fee the product must never shrink; a decrease means
	// the arithmetic above is broken, not a bad trade.
	if pool.SwapFeeBps > 0 && pool.KInvariant.LT(oldK) {
		return types.SwapResult{}, types.ErrInvalidPoolState.Wrapf(
			"constant product decreased: %s -> %s", oldK, pool.KInvariant)
	}

	if err := k.SetPoolState(ctx, pool); err != nil {
		return types.SwapResult{}, err
	}

	if res.ProtocolFee > 0 {
		treasury, err := sdk.AccAddressFromBech32(pool.Treasury)
		if err != nil {
			return types.SwapResult{}, types.ErrInvalidAddress.Wrapf("treasury: %s", err)
		}
		if err := k.transferOut(ctx, inputAsset, treasury, res.ProtocolFee); err != nil {
			return types.SwapResult{}, err
		}
	}

	var outputAsset types.Asset
	if direction == types.PrimaryToSecondary {
		outputAsset = pool.SecondaryAsset
	} else {
		outputAsset = pool.PrimaryAsset
	}
	if err := k.transferOut(ctx, outputAsset, trader, res.OutputAmount); err != nil {
		return types.SwapResult{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
			sdk.NewAttribute(types.AttributeKeyInputAmount, formatUint(inputAmount)),
			sdk.NewAttribute(types.AttributeKeyOutputAmount, formatUint(res.OutputAmount)),
			sdk.NewAttribute(types.AttributeKeyTotalFee, formatUint(res.TotalFee)),
			sdk.NewAttribute(types.AttributeKeyLpFee, formatUint(res.LpFee)),
			sdk.NewAttribute(types.AttributeKeyProtocolFee, formatUint(res.ProtocolFee)),
			sdk.NewAttribute(types.AttributeKeyKInvariant, pool.KInvariant.String()),
		),
	)
	k.Logger(ctx).Info("swap executed",
		"trader", trader.String(),
		"direction", direction.String(),
		"input", inputAmount,
		"output", res.OutputAmount,
		"total_fee", res.TotalFee,
	)

	metrics := GetAMMMetrics()
	metrics.SwapsTotal.WithLabelValues(direction.String()).Inc()
	metrics.SwapVolume.WithLabelValues(direction.String()).Add(float64(inputAmount))
	metrics.SwapFeesCollected.WithLabelValues("lp").Add(float64(res.LpFee))
	metrics.SwapFeesCollected.WithLabelValues("protocol").Add(float64(res.ProtocolFee))
	metrics.recordPoolGauges(pool)

	return res, nil
}

// QuoteSwap simulates a swap without executing it.
func (k Keeper) QuoteSwap(ctx context.Context, inputAmount uint64, direction types.SwapDirection) (types.SwapResult, error) {
	pool, err := k.activePool(ctx, true)
	if err != nil {
		return types.SwapResult{}, err
	}
	res, _, _, err := QuotePoolSwap(pool, inputAmount, direction)
	return res, err
}
