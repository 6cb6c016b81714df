package keeper

import (
	"context"
	"fmt"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the amm QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// PoolState returns the full pool record with derived figures
func (qs queryServer) PoolState(ctx context.Context, req *types.QueryPoolStateRequest) (*types.QueryPoolStateResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("PoolState: empty request")
	}

	pool, err := qs.Keeper.GetPoolState(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryPoolStateResponse{
		Pool:          pool,
		IssuedLPUnits: pool.IssuedLPUnits(),
		KInvariant:    pool.KInvariant,
	}, nil
}

// Params returns the module parameters
func (qs queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("Params: empty request")
	}

	return &types.QueryParamsResponse{Params: qs.Keeper.GetParams(ctx)}, nil
}

// QuoteSwap prices a swap against current reserves without mutating state
func (qs queryServer) QuoteSwap(ctx context.Context, req *types.QueryQuoteSwapRequest) (*types.QueryQuoteSwapResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("QuoteSwap: empty request")
	}

	res, err := qs.Keeper.QuoteSwap(ctx, req.InputAmount, req.Direction)
	if err != nil {
		return nil, err
	}

	return &types.QueryQuoteSwapResponse{Result: res}, nil
}
