package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/DeFruit/micro-amm-contract/testutil/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// TestMsgServerFullFlow drives the whole lifecycle through the message
// surface: initialize, add, swap, config updates, remove
func TestMsgServerFullFlow(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	admin := keepertest.TestAddr(1)
	treasury := keepertest.TestAddr(2)
	provider := keepertest.TestAddr(3)
	trader := keepertest.TestAddr(4)

	require.NoError(t, k.CreatePool(ctx, admin))
	ms := keeper.NewMsgServerImpl(k)

	initRes, err := ms.Initialize(ctx, initializeMsg(admin.String(), treasury.String()))
	require.NoError(t, err)
	require.Equal(t, types.PoolVersion, initRes.Version)
	require.False(t, initRes.LpAsset.IsZero())

	addRes, err := ms.AddLiquidity(ctx, types.NewMsgAddLiquidity(
		provider.String(), 100_000, 100_000,
		types.DepositProof{Sender: provider.String(), TxID: "P"},
		types.DepositProof{Sender: provider.String(), TxID: "S"},
	))
	require.NoError(t, err)
	require.Equal(t, uint64(100_000), addRes.LpUnitsMinted)

	swapRes, err := ms.Swap(ctx, types.NewMsgSwap(trader.String(), 1000, types.PrimaryToSecondary))
	require.NoError(t, err)
	require.Equal(t, uint64(987), swapRes.OutputAmount)
	require.Equal(t, uint64(3), swapRes.TotalFee)

	_, err = ms.UpdateSwapFee(ctx, &types.MsgUpdateSwapFee{Admin: admin.String(), SwapFeeBps: 100})
	require.NoError(t, err)
	_, err = ms.UpdateProtocolFee(ctx, &types.MsgUpdateProtocolFee{Admin: admin.String(), ProtocolFeeBps: 50})
	require.NoError(t, err)
	_, err = ms.UpdateTreasury(ctx, &types.MsgUpdateTreasury{Admin: admin.String(), NewTreasury: keepertest.TestAddr(5).String()})
	require.NoError(t, err)
	_, err = ms.UpdateMinimumBalance(ctx, &types.MsgUpdateMinimumBalance{Admin: admin.String(), MinimumBalance: 400_000})
	require.NoError(t, err)
	_, err = ms.UpdateLifecycleFlag(ctx, &types.MsgUpdateLifecycleFlag{Admin: admin.String(), Flag: true})
	require.NoError(t, err)

	pool, err := k.GetPoolState(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(100), pool.SwapFeeBps)
	require.Equal(t, uint64(50), pool.ProtocolFeeBps)
	require.Equal(t, keepertest.TestAddr(5).String(), pool.Treasury)
	require.Equal(t, uint64(400_000), pool.MinimumBalanceReserved)
	require.True(t, pool.LifecycleFlag)

	// withdrawal still works on the shutdown-scheduled pool
	removeRes, err := ms.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		provider.String(), addRes.LpUnitsMinted,
		types.DepositProof{Sender: provider.String(), TxID: "BURN"},
	))
	require.NoError(t, err)
	require.NotZero(t, removeRes.PrimaryAmount)
	require.NotZero(t, removeRes.SecondaryAmount)
}

// TestMsgServerRejectsInvalidMessages verifies basic validation runs before
// any keeper logic
func TestMsgServerRejectsInvalidMessages(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	admin := keepertest.TestAddr(1)
	require.NoError(t, k.CreatePool(ctx, admin))
	ms := keeper.NewMsgServerImpl(k)

	// same asset on both sides
	bad := initializeMsg(admin.String(), keepertest.TestAddr(2).String())
	bad.SecondaryAsset = bad.PrimaryAsset
	_, err := ms.Initialize(ctx, bad)
	require.Error(t, err)

	// zero-unit burn
	_, err = ms.RemoveLiquidity(ctx, types.NewMsgRemoveLiquidity(
		admin.String(), 0, types.DepositProof{Sender: admin.String(), TxID: "X"}))
	require.Error(t, err)

	// malformed trader address
	_, err = ms.Swap(ctx, types.NewMsgSwap("not-an-address", 1000, types.PrimaryToSecondary))
	require.Error(t, err)

	// unknown direction
	_, err = ms.Swap(ctx, types.NewMsgSwap(admin.String(), 1000, types.SwapDirection(9)))
	require.Error(t, err)
}

// TestMsgServerUpdateAdmin verifies rotation through the message surface
func TestMsgServerUpdateAdmin(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	admin := keepertest.TestAddr(1)
	newAdmin := keepertest.TestAddr(7)

	require.NoError(t, k.CreatePool(ctx, admin))
	ms := keeper.NewMsgServerImpl(k)

	_, err := ms.Initialize(ctx, initializeMsg(admin.String(), keepertest.TestAddr(2).String()))
	require.NoError(t, err)

	_, err = ms.UpdateAdmin(ctx, &types.MsgUpdateAdmin{Admin: admin.String(), NewAdmin: newAdmin.String()})
	require.NoError(t, err)

	_, err = ms.UpdateSwapFee(ctx, &types.MsgUpdateSwapFee{Admin: admin.String(), SwapFeeBps: 1})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = ms.UpdateSwapFee(ctx, &types.MsgUpdateSwapFee{Admin: newAdmin.String(), SwapFeeBps: 1})
	require.NoError(t, err)
}
