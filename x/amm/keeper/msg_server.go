package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Initialize handles the one-time pool activation
func (ms msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Initialize: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("Initialize: invalid admin address: %w", err)
	}

	lpAsset, err := ms.Keeper.Initialize(goCtx, admin, msg)
	if err != nil {
		return nil, err
	}

	return &types.MsgInitializeResponse{
		LpAsset: lpAsset,
		Version: types.PoolVersion,
	}, nil
}

// AddLiquidity handles paired deposits into the pool
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	minted, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.PrimaryAmount, msg.SecondaryAmount, msg.PrimaryProof, msg.SecondaryProof)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{LpUnitsMinted: minted}, nil
}

// RemoveLiquidity handles LP burns
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	primaryOut, secondaryOut, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.LpUnits, msg.LpProof)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{
		PrimaryAmount:   primaryOut,
		SecondaryAmount: secondaryOut,
	}, nil
}

// Swap handles single-direction trades
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	res, err := ms.Keeper.Swap(goCtx, trader, msg.InputAmount, msg.Direction)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapResponse{
		OutputAmount: res.OutputAmount,
		TotalFee:     res.TotalFee,
		LpFee:        res.LpFee,
		ProtocolFee:  res.ProtocolFee,
	}, nil
}

// UpdateSwapFee handles swap fee updates
func (ms msgServer) UpdateSwapFee(goCtx context.Context, msg *types.MsgUpdateSwapFee) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateSwapFee: validate: %w", err)
	}
	caller, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UpdateSwapFee: invalid admin address: %w", err)
	}
	if err := ms.Keeper.UpdateSwapFee(goCtx, caller, msg.SwapFeeBps); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

// UpdateProtocolFee handles protocol fee updates
func (ms msgServer) UpdateProtocolFee(goCtx context.Context, msg *types.MsgUpdateProtocolFee) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateProtocolFee: validate: %w", err)
	}
	caller, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UpdateProtocolFee: invalid admin address: %w", err)
	}
	if err := ms.Keeper.UpdateProtocolFee(goCtx, caller, msg.ProtocolFeeBps); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

// UpdateAdmin handles admin rotation
func (ms msgServer) UpdateAdmin(goCtx context.Context, msg *types.MsgUpdateAdmin) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateAdmin: validate: %w", err)
	}
	caller, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UpdateAdmin: invalid admin address: %w", err)
	}
	newAdmin, err := sdk.AccAddressFromBech32(msg.NewAdmin)
	if err != nil {
		return nil, fmt.Errorf("UpdateAdmin: invalid new admin address: %w", err)
	}
	if err := ms.Keeper.UpdateAdmin(goCtx, caller, newAdmin); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

// UpdateTreasury handles treasury rotation
func (ms msgServer) UpdateTreasury(goCtx context.Context, msg *types.MsgUpdateTreasury) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateTreasury: validate: %w", err)
	}
	caller, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UpdateTreasury: invalid admin address: %w", err)
	}
	newTreasury, err := sdk.AccAddressFromBech32(msg.NewTreasury)
	if err != nil {
		return nil, fmt.Errorf("UpdateTreasury: invalid treasury address: %w", err)
	}
	if err := ms.Keeper.UpdateTreasury(goCtx, caller, newTreasury); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

// UpdateMinimumBalance handles minimum-balance bookkeeping updates
func (ms msgServer) UpdateMinimumBalance(goCtx context.Context, msg *types.MsgUpdateMinimumBalance) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateMinimumBalance: validate: %w", err)
	}
	caller, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UpdateMinimumBalance: invalid admin address: %w", err)
	}
	if err := ms.Keeper.UpdateMinimumBalance(goCtx, caller, msg.MinimumBalance); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

// UpdateLifecycleFlag handles shutdown scheduling
func (ms msgServer) UpdateLifecycleFlag(goCtx context.Context, msg *types.MsgUpdateLifecycleFlag) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateLifecycleFlag: validate: %w", err)
	}
	caller, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UpdateLifecycleFlag: invalid admin address: %w", err)
	}
	if err := ms.Keeper.UpdateLifecycleFlag(goCtx, caller, msg.Flag); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}
