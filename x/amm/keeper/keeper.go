package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// Keeper of the amm store. It owns the single pool record and routes every
// asset movement through the ledger boundary.
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      *codec.LegacyAmino
	ledger   types.LedgerKeeper
}

// NewKeeper creates a new amm Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	ledger types.LedgerKeeper,
) Keeper {
	return Keeper{
		storeKey: key,
		cdc:      cdc,
		ledger:   ledger,
	}
}

// Ledger exposes the ledger boundary, mainly for the query and test paths.
func (k Keeper) Ledger() types.LedgerKeeper {
	return k.ledger
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
