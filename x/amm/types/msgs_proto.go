package types

import "fmt"

// The messages are hand-written rather than generated, so the gogoproto
// interface methods sdk.Msg requires are provided here.

func (msg *MsgInitialize) Reset()        { *msg = MsgInitialize{} }
func (msg *MsgInitialize) ProtoMessage() {}
func (msg MsgInitialize) String() string {
	return fmt.Sprintf("MsgInitialize{%+v}", msg.PrimaryAsset)
}

func (msg *MsgAddLiquidity) Reset()        { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) ProtoMessage() {}
func (msg MsgAddLiquidity) String() string {
	return fmt.Sprintf("MsgAddLiquidity{%s: %d/%d}", msg.Provider, msg.PrimaryAmount, msg.SecondaryAmount)
}

func (msg *MsgRemoveLiquidity) Reset()        { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) ProtoMessage() {}
func (msg MsgRemoveLiquidity) String() string {
	return fmt.Sprintf("MsgRemoveLiquidity{%s: %d}", msg.Provider, msg.LpUnits)
}

func (msg *MsgSwap) Reset()        { *msg = MsgSwap{} }
func (msg *MsgSwap) ProtoMessage() {}
func (msg MsgSwap) String() string {
	return fmt.Sprintf("MsgSwap{%s: %d %s}", msg.Trader, msg.InputAmount, msg.Direction)
}

func (msg *MsgUpdateSwapFee) Reset()        { *msg = MsgUpdateSwapFee{} }
func (msg *MsgUpdateSwapFee) ProtoMessage() {}
func (msg MsgUpdateSwapFee) String() string {
	return fmt.Sprintf("MsgUpdateSwapFee{%d}", msg.SwapFeeBps)
}

func (msg *MsgUpdateProtocolFee) Reset()        { *msg = MsgUpdateProtocolFee{} }
func (msg *MsgUpdateProtocolFee) ProtoMessage() {}
func (msg MsgUpdateProtocolFee) String() string {
	return fmt.Sprintf("MsgUpdateProtocolFee{%d}", msg.ProtocolFeeBps)
}

func (msg *MsgUpdateAdmin) Reset()        { *msg = MsgUpdateAdmin{} }
func (msg *MsgUpdateAdmin) ProtoMessage() {}
func (msg MsgUpdateAdmin) String() string {
	return fmt.Sprintf("MsgUpdateAdmin{%s}", msg.NewAdmin)
}

func (msg *MsgUpdateTreasury) Reset()        { *msg = MsgUpdateTreasury{} }
func (msg *MsgUpdateTreasury) ProtoMessage() {}
func (msg MsgUpdateTreasury) String() string {
	return fmt.Sprintf("MsgUpdateTreasury{%s}", msg.NewTreasury)
}

func (msg *MsgUpdateMinimumBalance) Reset()        { *msg = MsgUpdateMinimumBalance{} }
func (msg *MsgUpdateMinimumBalance) ProtoMessage() {}
func (msg MsgUpdateMinimumBalance) String() string {
	return fmt.Sprintf("MsgUpdateMinimumBalance{%d}", msg.MinimumBalance)
}

func (msg *MsgUpdateLifecycleFlag) Reset()        { *msg = MsgUpdateLifecycleFlag{} }
func (msg *MsgUpdateLifecycleFlag) ProtoMessage() {}
func (msg MsgUpdateLifecycleFlag) String() string {
	return fmt.Sprintf("MsgUpdateLifecycleFlag{%t}", msg.Flag)
}
