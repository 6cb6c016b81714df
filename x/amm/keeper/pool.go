package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// GetPoolState retrieves the pool record. Returns ErrNotInitialized if the
// application-creation step has not run yet.
func (k Keeper) GetPoolState(ctx context.Context) (types.PoolState, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolStateKey)
	if bz == nil {
		return types.PoolState{}, types.ErrNotInitialized.Wrap("pool record does not exist")
	}

	var pool types.PoolState
	if err := k.cdc.UnmarshalJSON(bz, &pool); err != nil {
		return types.PoolState{}, fmt.Errorf("GetPoolState: unmarshal: %w", err)
	}
	return pool, nil
}

// SetPoolState saves the pool record to the store
func (k Keeper) SetPoolState(ctx context.Context, pool types.PoolState) error {
	bz, err := k.cdc.MarshalJSON(&pool)
	if err != nil {
		return fmt.Errorf("SetPoolState: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.PoolStateKey, bz)
	return nil
}

// HasPoolState reports whether the pool record exists.
func (k Keeper) HasPoolState(ctx context.Context) bool {
	return k.getStore(ctx).Has(types.PoolStateKey)
}

// CreatePool is the application-creation step: it seeds the uninitialized
// pool record with the creator as admin. Nothing else is set.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress) error {
	if k.HasPoolState(ctx) {
		return types.ErrAlreadyInitialized.Wrap("pool record already exists")
	}

	pool := types.NewUninitializedPool(creator.String())
	if err := k.SetPoolState(ctx, pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyAdmin, creator.String()),
		),
	)
	return nil
}

// requiredFunding is the native deposit Initialize must be backed by: one
// minimum-balance increment for the pool account, one for the created LP
// asset, and one per non-native reserve asset the pool opts into.
func requiredFunding(primary, secondary types.Asset) uint64 {
	objects := uint64(2)
	if !primary.Native {
		objects++
	}
	if !secondary.Native {
		objects++
	}
	return types.MinBalancePerAsset * objects
}

// Initialize performs the one-time pool activation: verifies the
// minimum-balance funding deposit, creates the LP token with its fixed
// allotment, opts the pool into both reserve assets and stores the full
// configuration. Consumes the initialization right irreversibly.
func (k Keeper) Initialize(ctx context.Context, caller sdk.AccAddress, msg *types.MsgInitialize) (types.Asset, error) {
	pool, err := k.GetPoolState(ctx)
	if err != nil {
		return types.Asset{}, err
	}
	if pool.Initialized {
		return types.Asset{}, types.ErrAlreadyInitialized
	}
	if caller.String() != pool.Admin {
		return types.Asset{}, types.ErrUnauthorized.Wrapf("caller %s is not admin %s", caller, pool.Admin)
	}

	funding := requiredFunding(msg.PrimaryAsset, msg.SecondaryAsset)
	poolAddr := k.ledger.PoolAddress()
	if err := k.ledger.VerifyNativeDeposit(ctx, msg.FundingProof, poolAddr, funding); err != nil {
		return types.Asset{}, types.ErrPreconditionFailed.Wrapf("funding deposit of %d native units: %s", funding, err)
	}

	lpAsset, err := k.ledger.CreateFungibleAsset(ctx, types.TotalLPSupply, types.LPDecimals, msg.LpName, msg.LpName, msg.LpURL)
	if err != nil {
		return types.Asset{}, fmt.Errorf("Initialize: create lp asset: %w", err)
	}

	for _, asset := range []types.Asset{msg.PrimaryAsset, msg.SecondaryAsset} {
		if asset.Native {
			continue
		}
		if err := k.ledger.OptInAsset(ctx, asset); err != nil {
			return types.Asset{}, fmt.Errorf("Initialize: opt in %s: %w", asset, err)
		}
	}

	pool.PrimaryAsset = msg.PrimaryAsset
	pool.SecondaryAsset = msg.SecondaryAsset
	pool.LpAsset = lpAsset
	pool.PrimaryReserve = 0
	pool.SecondaryReserve = 0
	pool.LpSupplyRemaining = types.TotalLPSupply
	pool.KInvariant = sdkmath.ZeroInt()
	pool.SwapFeeBps = msg.SwapFeeBps
	pool.ProtocolFeeBps = msg.ProtocolFeeBps
	pool.Treasury = msg.Treasury
	pool.MinimumBalanceReserved = funding
	pool.Version = types.PoolVersion
	pool.Initialized = true

	if err := k.SetPoolState(ctx, pool); err != nil {
		return types.Asset{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolInitialized,
			sdk.NewAttribute(types.AttributeKeyAdmin, pool.Admin),
			sdk.NewAttribute(types.AttributeKeyTreasury, pool.Treasury),
			sdk.NewAttribute(types.AttributeKeyPrimaryAsset, pool.PrimaryAsset.String()),
			sdk.NewAttribute(types.AttributeKeySecondaryAsset, pool.SecondaryAsset.String()),
			sdk.NewAttribute(types.AttributeKeyLpAsset, lpAsset.String()),
		),
	)
	k.Logger(ctx).Info("pool initialized",
		"primary", pool.PrimaryAsset.String(),
		"secondary", pool.SecondaryAsset.String(),
		"lp_asset", lpAsset.String(),
		"swap_fee_bps", pool.SwapFeeBps,
		"protocol_fee_bps", pool.ProtocolFeeBps,
	)

	return lpAsset, nil
}

// activePool loads the pool and requires it to accept state-changing
// operations. When forTrading is set, the lifecycle flag also blocks the
// operation; withdrawals pass so providers can exit a pool scheduled for
// shutdown.
func (k Keeper) activePool(ctx context.Context, forTrading bool) (types.PoolState, error) {
	pool, err := k.GetPoolState(ctx)
	if err != nil {
		return types.PoolState{}, err
	}
	if !pool.Initialized {
		return types.PoolState{}, types.ErrNotInitialized
	}
	if forTrading && pool.LifecycleFlag {
		return types.PoolState{}, types.ErrPoolShutdown
	}
	return pool, nil
}

// transferOut pays amount of asset to receiver, choosing the native payment
// path or the token transfer path by the asset's tag.
func (k Keeper) transferOut(ctx context.Context, asset types.Asset, receiver sdk.AccAddress, amount uint64) error {
	if asset.Native {
		return k.ledger.TransferNative(ctx, receiver, amount)
	}
	return k.ledger.TransferAsset(ctx, asset, receiver, amount)
}

// verifyDeposit checks an inbound deposit proof against the expected asset
// and amount, by the asset's tag.
func (k Keeper) verifyDeposit(ctx context.Context, proof types.DepositProof, asset types.Asset, amount uint64) error {
	poolAddr := k.ledger.PoolAddress()
	if asset.Native {
		return k.ledger.VerifyNativeDeposit(ctx, proof, poolAddr, amount)
	}
	return k.ledger.VerifyAssetDeposit(ctx, proof, poolAddr, asset, amount)
}
