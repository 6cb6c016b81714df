package keeper

import (
	"context"
	"fmt"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// GetParams returns the module parameters, falling back to defaults when unset
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := k.cdc.UnmarshalJSON(bz, &params); err != nil {
		k.Logger(ctx).Error("failed to unmarshal params, using defaults", "error", err)
		return types.DefaultParams()
	}
	return params
}

// SetParams validates and persists the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return fmt.Errorf("SetParams: %w", err)
	}

	bz, err := k.cdc.MarshalJSON(params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}

	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}
