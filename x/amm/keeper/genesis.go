package keeper

import (
	"context"
	"fmt"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// InitGenesis initializes the amm module state from a genesis record
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}

	if genState.Pool == nil {
		return nil
	}

	if err := genState.Pool.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: pool state: %w", err)
	}
	if err := k.SetPoolState(ctx, *genState.Pool); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}
	return nil
}

// ExportGenesis returns the amm module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.GenesisState{Params: k.GetParams(ctx)}

	if k.HasPoolState(ctx) {
		pool, err := k.GetPoolState(ctx)
		if err != nil {
			return nil, fmt.Errorf("ExportGenesis: %w", err)
		}
		genState.Pool = &pool
	}

	return &genState, nil
}
