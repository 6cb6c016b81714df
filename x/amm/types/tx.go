package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	UpdateSwapFee(context.Context, *MsgUpdateSwapFee) (*MsgUpdateConfigResponse, error)
	UpdateProtocolFee(context.Context, *MsgUpdateProtocolFee) (*MsgUpdateConfigResponse, error)
	UpdateAdmin(context.Context, *MsgUpdateAdmin) (*MsgUpdateConfigResponse, error)
	UpdateTreasury(context.Context, *MsgUpdateTreasury) (*MsgUpdateConfigResponse, error)
	UpdateMinimumBalance(context.Context, *MsgUpdateMinimumBalance) (*MsgUpdateConfigResponse, error)
	UpdateLifecycleFlag(context.Context, *MsgUpdateLifecycleFlag) (*MsgUpdateConfigResponse, error)
}

// MsgInitializeResponse defines the response for Initialize
type MsgInitializeResponse struct {
	LpAsset Asset  `json:"lp_asset"`
	Version uint64 `json:"version"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	LpUnitsMinted uint64 `json:"lp_units_minted"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	PrimaryAmount   uint64 `json:"primary_amount"`
	SecondaryAmount uint64 `json:"secondary_amount"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	OutputAmount uint64 `json:"output_amount"`
	TotalFee     uint64 `json:"total_fee"`
	LpFee        uint64 `json:"lp_fee"`
	ProtocolFee  uint64 `json:"protocol_fee"`
}

// MsgUpdateConfigResponse is the shared empty response for the admin
// configuration updates.
type MsgUpdateConfigResponse struct{}

// QueryServer defines the read-only query interface
type QueryServer interface {
	PoolState(context.Context, *QueryPoolStateRequest) (*QueryPoolStateResponse, error)
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	QuoteSwap(context.Context, *QueryQuoteSwapRequest) (*QueryQuoteSwapResponse, error)
}

// QueryPoolStateRequest requests the full pool record.
type QueryPoolStateRequest struct{}

// QueryPoolStateResponse carries the pool record and derived figures.
type QueryPoolStateResponse struct {
	Pool          PoolState `json:"pool"`
	IssuedLPUnits uint64    `json:"issued_lp_units"`
	KInvariant    math.Int  `json:"k_invariant"`
}

// QueryParamsRequest requests the module params.
type QueryParamsRequest struct{}

// QueryParamsResponse carries the module params.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryQuoteSwapRequest prices a swap without executing it.
type QueryQuoteSwapRequest struct {
	InputAmount uint64        `json:"input_amount"`
	Direction   SwapDirection `json:"direction"`
}

// QueryQuoteSwapResponse carries the simulated swap outcome.
type QueryQuoteSwapResponse struct {
	Result SwapResult `json:"result"`
}
