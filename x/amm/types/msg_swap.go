package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to trade one pool asset for the other at the
// constant-product price. The input deposit is custodied by the same
// atomic transaction group; the keeper prices and pays out.
type MsgSwap struct {
	Trader      string        `json:"trader"`
	InputAmount uint64        `json:"input_amount"`
	Direction   SwapDirection `json:"direction"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader string, inputAmount uint64, direction SwapDirection) *MsgSwap {
	return &MsgSwap{
		Trader:      trader,
		InputAmount: inputAmount,
		Direction:   direction,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string { return "swap" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if err := msg.Direction.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidSwapType, err.Error())
	}
	if msg.InputAmount == 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "input amount must be positive")
	}
	return nil
}
