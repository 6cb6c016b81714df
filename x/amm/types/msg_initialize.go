package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgInitialize{}

// MsgInitialize activates an uninitialized pool: stores the asset pair and
// fee configuration, mints the LP allotment and opts the pool into both
// reserve assets. Admin-only, at most once per pool.
type MsgInitialize struct {
	Admin          string       `json:"admin"`
	PrimaryAsset   Asset        `json:"primary_asset"`
	SecondaryAsset Asset        `json:"secondary_asset"`
	LpName         string       `json:"lp_name"`
	LpURL          string       `json:"lp_url"`
	SwapFeeBps     uint64       `json:"swap_fee_bps"`
	ProtocolFeeBps uint64       `json:"protocol_fee_bps"`
	Treasury       string       `json:"treasury"`
	FundingProof   DepositProof `json:"funding_proof"`
}

// NewMsgInitialize creates a new MsgInitialize instance
func NewMsgInitialize(admin string, primary, secondary Asset, lpName, lpURL string, swapFeeBps, protocolFeeBps uint64, treasury string, funding DepositProof) *MsgInitialize {
	return &MsgInitialize{
		Admin:          admin,
		PrimaryAsset:   primary,
		SecondaryAsset: secondary,
		LpName:         lpName,
		LpURL:          lpURL,
		SwapFeeBps:     swapFeeBps,
		ProtocolFeeBps: protocolFeeBps,
		Treasury:       treasury,
		FundingProof:   funding,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgInitialize) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgInitialize) Type() string { return "initialize" }

// GetSigners implements the sdk.Msg interface
func (msg MsgInitialize) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgInitialize) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgInitialize) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Treasury); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid treasury address: %s", err)
	}
	if err := msg.PrimaryAsset.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAsset, "primary asset: %s", err)
	}
	if err := msg.SecondaryAsset.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAsset, "secondary asset: %s", err)
	}
	if msg.PrimaryAsset.Equal(msg.SecondaryAsset) {
		return sdkerrors.Wrap(ErrInvalidAsset, "primary and secondary assets must differ")
	}
	if msg.PrimaryAsset.Native && msg.SecondaryAsset.Native {
		return sdkerrors.Wrap(ErrInvalidAsset, "both assets cannot be native")
	}
	if msg.SwapFeeBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidAmount, "swap fee %d exceeds %d bps", msg.SwapFeeBps, BpsDenominator)
	}
	if msg.ProtocolFeeBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidAmount, "protocol fee %d exceeds %d bps", msg.ProtocolFeeBps, BpsDenominator)
	}
	if msg.LpName == "" {
		return sdkerrors.Wrap(ErrInvalidAmount, "lp token name cannot be empty")
	}
	return nil
}
