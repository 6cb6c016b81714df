package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgUpdateSwapFee{}
	_ sdk.Msg = &MsgUpdateProtocolFee{}
	_ sdk.Msg = &MsgUpdateAdmin{}
	_ sdk.Msg = &MsgUpdateTreasury{}
	_ sdk.Msg = &MsgUpdateMinimumBalance{}
	_ sdk.Msg = &MsgUpdateLifecycleFlag{}
)

func adminSigners(admin string) []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}

func validateAdmin(admin string) error {
	if _, err := sdk.AccAddressFromBech32(admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid admin address: %s", err)
	}
	return nil
}

// MsgUpdateSwapFee overwrites the pool's total swap fee, in basis points.
type MsgUpdateSwapFee struct {
	Admin      string `json:"admin"`
	SwapFeeBps uint64 `json:"swap_fee_bps"`
}

func (msg MsgUpdateSwapFee) Route() string                { return RouterKey }
func (msg MsgUpdateSwapFee) Type() string                 { return "update_swap_fee" }
func (msg MsgUpdateSwapFee) GetSigners() []sdk.AccAddress { return adminSigners(msg.Admin) }
func (msg MsgUpdateSwapFee) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgUpdateSwapFee) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if msg.SwapFeeBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidAmount, "swap fee %d exceeds %d bps", msg.SwapFeeBps, BpsDenominator)
	}
	return nil
}

// MsgUpdateProtocolFee overwrites the protocol's share of the total swap
// fee, in basis points.
type MsgUpdateProtocolFee struct {
	Admin          string `json:"admin"`
	ProtocolFeeBps uint64 `json:"protocol_fee_bps"`
}

func (msg MsgUpdateProtocolFee) Route() string                { return RouterKey }
func (msg MsgUpdateProtocolFee) Type() string                 { return "update_protocol_fee" }
func (msg MsgUpdateProtocolFee) GetSigners() []sdk.AccAddress { return adminSigners(msg.Admin) }
func (msg MsgUpdateProtocolFee) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgUpdateProtocolFee) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if msg.ProtocolFeeBps > BpsDenominator {
		return sdkerrors.Wrapf(ErrInvalidAmount, "protocol fee %d exceeds %d bps", msg.ProtocolFeeBps, BpsDenominator)
	}
	return nil
}

// MsgUpdateAdmin rotates the administrator address.
type MsgUpdateAdmin struct {
	Admin    string `json:"admin"`
	NewAdmin string `json:"new_admin"`
}

func (msg MsgUpdateAdmin) Route() string                { return RouterKey }
func (msg MsgUpdateAdmin) Type() string                 { return "update_admin" }
func (msg MsgUpdateAdmin) GetSigners() []sdk.AccAddress { return adminSigners(msg.Admin) }
func (msg MsgUpdateAdmin) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgUpdateAdmin) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewAdmin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid new admin address: %s", err)
	}
	return nil
}

// MsgUpdateTreasury overwrites the protocol fee receiver.
type MsgUpdateTreasury struct {
	Admin       string `json:"admin"`
	NewTreasury string `json:"new_treasury"`
}

func (msg MsgUpdateTreasury) Route() string                { return RouterKey }
func (msg MsgUpdateTreasury) Type() string                 { return "update_treasury" }
func (msg MsgUpdateTreasury) GetSigners() []sdk.AccAddress { return adminSigners(msg.Admin) }
func (msg MsgUpdateTreasury) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgUpdateTreasury) ValidateBasic() error {
	if err := validateAdmin(msg.Admin); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewTreasury); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid treasury address: %s", err)
	}
	return nil
}

// MsgUpdateMinimumBalance overwrites the recorded minimum-balance reserve.
type MsgUpdateMinimumBalance struct {
	Admin          string `json:"admin"`
	MinimumBalance uint64 `json:"minimum_balance"`
}

func (msg MsgUpdateMinimumBalance) Route() string                { return RouterKey }
func (msg MsgUpdateMinimumBalance) Type() string                 { return "update_minimum_balance" }
func (msg MsgUpdateMinimumBalance) GetSigners() []sdk.AccAddress { return adminSigners(msg.Admin) }
func (msg MsgUpdateMinimumBalance) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgUpdateMinimumBalance) ValidateBasic() error {
	return validateAdmin(msg.Admin)
}

// MsgUpdateLifecycleFlag raises or clears the shutdown-scheduling flag.
type MsgUpdateLifecycleFlag struct {
	Admin string `json:"admin"`
	Flag  bool   `json:"flag"`
}

func (msg MsgUpdateLifecycleFlag) Route() string                { return RouterKey }
func (msg MsgUpdateLifecycleFlag) Type() string                 { return "update_lifecycle_flag" }
func (msg MsgUpdateLifecycleFlag) GetSigners() []sdk.AccAddress { return adminSigners(msg.Admin) }
func (msg MsgUpdateLifecycleFlag) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}
func (msg MsgUpdateLifecycleFlag) ValidateBasic() error {
	return validateAdmin(msg.Admin)
}
