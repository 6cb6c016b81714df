package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to deposit both pool assets and receive
// LP units. The proofs reference the deposits the provider made into the
// pool's custody in the same transaction group.
type MsgAddLiquidity struct {
	Provider        string       `json:"provider"`
	PrimaryAmount   uint64       `json:"primary_amount"`
	SecondaryAmount uint64       `json:"secondary_amount"`
	PrimaryProof    DepositProof `json:"primary_proof"`
	SecondaryProof  DepositProof `json:"secondary_proof"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, primaryAmount, secondaryAmount uint64, primaryProof, secondaryProof DepositProof) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:        provider,
		PrimaryAmount:   primaryAmount,
		SecondaryAmount: secondaryAmount,
		PrimaryProof:    primaryProof,
		SecondaryProof:  secondaryProof,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if msg.PrimaryAmount == 0 && msg.SecondaryAmount == 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deposit amounts cannot both be zero")
	}
	return nil
}
