package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// adminPool loads the pool and checks the caller against the stored admin.
// Config mutation requires an initialized pool; the lifecycle flag does not
// block it, so a pool scheduled for shutdown can still be administered.
func (k Keeper) adminPool(ctx context.Context, caller sdk.AccAddress) (types.PoolState, error) {
	pool, err := k.GetPoolState(ctx)
	if err != nil {
		return types.PoolState{}, err
	}
	if !pool.Initialized {
		return types.PoolState{}, types.ErrNotInitialized
	}
	if caller.String() != pool.Admin {
		return types.PoolState{}, types.ErrUnauthorized.Wrapf("caller %s is not admin %s", caller, pool.Admin)
	}
	return pool, nil
}

func (k Keeper) commitConfig(ctx context.Context, pool types.PoolState, field, value string) error {
	if err := k.SetPoolState(ctx, pool); err != nil {
		return err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConfigUpdated,
			sdk.NewAttribute(types.AttributeKeyField, field),
			sdk.NewAttribute(types.AttributeKeyValue, value),
		),
	)
	k.Logger(ctx).Info("pool config updated", "field", field, "value", value)
	return nil
}

// UpdateSwapFee overwrites the total swap fee. Admin only.
func (k Keeper) UpdateSwapFee(ctx context.Context, caller sdk.AccAddress, feeBps uint64) error {
	pool, err := k.adminPool(ctx, caller)
	if err != nil {
		return err
	}
	if feeBps > types.BpsDenominator {
		return types.ErrInvalidAmount.Wrapf("swap fee %d exceeds %d bps", feeBps, types.BpsDenominator)
	}
	pool.SwapFeeBps = feeBps
	return k.commitConfig(ctx, pool, "swap_fee_bps", formatUint(feeBps))
}

// UpdateProtocolFee overwrites the protocol share of the swap fee. Admin only.
func (k Keeper) UpdateProtocolFee(ctx context.Context, caller sdk.AccAddress, feeBps uint64) error {
	pool, err := k.adminPool(ctx, caller)
	if err != nil {
		return err
	}
	if feeBps > types.BpsDenominator {
		return types.ErrInvalidAmount.Wrapf("protocol fee %d exceeds %d bps", feeBps, types.BpsDenominator)
	}
	pool.ProtocolFeeBps = feeBps
	return k.commitConfig(ctx, pool, "protocol_fee_bps", formatUint(feeBps))
}

// UpdateAdmin rotates the administrator address. Admin only.
func (k Keeper) UpdateAdmin(ctx context.Context, caller, newAdmin sdk.AccAddress) error {
	pool, err := k.adminPool(ctx, caller)
	if err != nil {
		return err
	}
	pool.Admin = newAdmin.String()
	return k.commitConfig(ctx, pool, "admin", pool.Admin)
}

// UpdateTreasury overwrites the protocol fee receiver. Admin only.
func (k Keeper) UpdateTreasury(ctx context.Context, caller, newTreasury sdk.AccAddress) error {
	pool, err := k.adminPool(ctx, caller)
	if err != nil {
		return err
	}
	pool.Treasury = newTreasury.String()
	return k.commitConfig(ctx, pool, "treasury", pool.Treasury)
}

// UpdateMinimumBalance overwrites the recorded minimum-balance reserve.
// Admin only; the value is bookkeeping, not arithmetically enforced.
func (k Keeper) UpdateMinimumBalance(ctx context.Context, caller sdk.AccAddress, value uint64) error {
	pool, err := k.adminPool(ctx, caller)
	if err != nil {
		return err
	}
	pool.MinimumBalanceReserved = value
	return k.commitConfig(ctx, pool, "minimum_balance_reserved", formatUint(value))
}

// UpdateLifecycleFlag raises or clears the shutdown-scheduling flag. Admin
// only. While raised, the pool refuses new liquidity and swaps.
func (k Keeper) UpdateLifecycleFlag(ctx context.Context, caller sdk.AccAddress, flag bool) error {
	pool, err := k.adminPool(ctx, caller)
	if err != nil {
		return err
	}
	pool.LifecycleFlag = flag
	value := "false"
	if flag {
		value = "true"
	}
	return k.commitConfig(ctx, pool, "lifecycle_flag", value)
}
