package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitialize{}, "amm/MsgInitialize", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "amm/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgUpdateSwapFee{}, "amm/MsgUpdateSwapFee", nil)
	cdc.RegisterConcrete(&MsgUpdateProtocolFee{}, "amm/MsgUpdateProtocolFee", nil)
	cdc.RegisterConcrete(&MsgUpdateAdmin{}, "amm/MsgUpdateAdmin", nil)
	cdc.RegisterConcrete(&MsgUpdateTreasury{}, "amm/MsgUpdateTreasury", nil)
	cdc.RegisterConcrete(&MsgUpdateMinimumBalance{}, "amm/MsgUpdateMinimumBalance", nil)
	cdc.RegisterConcrete(&MsgUpdateLifecycleFlag{}, "amm/MsgUpdateLifecycleFlag", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitialize{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgSwap{},
		&MsgUpdateSwapFee{},
		&MsgUpdateProtocolFee{},
		&MsgUpdateAdmin{},
		&MsgUpdateTreasury{},
		&MsgUpdateMinimumBalance{},
		&MsgUpdateLifecycleFlag{},
	)
}

// ModuleCdc is the module's amino codec, used for sign bytes and for the
// keeper's JSON storage encoding.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
