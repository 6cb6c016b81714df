package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/DeFruit/micro-amm-contract/testutil/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

func testProof(sender string) types.DepositProof {
	return types.DepositProof{Sender: sender, TxID: "TX"}
}

func validInitialize() *types.MsgInitialize {
	admin := keepertest.TestAddr(1).String()
	return types.NewMsgInitialize(
		admin,
		types.NativeAsset(), types.TokenAsset(31566704),
		"TEST-LP", "https://pact.fi",
		30, 5,
		keepertest.TestAddr(2).String(),
		testProof(admin),
	)
}

func TestMsgInitializeValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgInitialize)
		wantErr bool
	}{
		{"valid", func(m *types.MsgInitialize) {}, false},
		{"token-token pair", func(m *types.MsgInitialize) {
			m.PrimaryAsset = types.TokenAsset(1)
			m.SecondaryAsset = types.TokenAsset(2)
		}, false},
		{"bad admin", func(m *types.MsgInitialize) { m.Admin = "nope" }, true},
		{"bad treasury", func(m *types.MsgInitialize) { m.Treasury = "nope" }, true},
		{"unset primary", func(m *types.MsgInitialize) { m.PrimaryAsset = types.Asset{} }, true},
		{"identical assets", func(m *types.MsgInitialize) { m.SecondaryAsset = m.PrimaryAsset }, true},
		{"both native", func(m *types.MsgInitialize) {
			m.PrimaryAsset = types.NativeAsset()
			m.SecondaryAsset = types.NativeAsset()
		}, true},
		{"swap fee above 10000", func(m *types.MsgInitialize) { m.SwapFeeBps = 10_001 }, true},
		{"protocol fee above 10000", func(m *types.MsgInitialize) { m.ProtocolFeeBps = 10_001 }, true},
		{"empty lp name", func(m *types.MsgInitialize) { m.LpName = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := validInitialize()
			tc.mutate(msg)
			err := msg.ValidateBasic()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	provider := keepertest.TestAddr(3).String()

	msg := types.NewMsgAddLiquidity(provider, 1000, 1000, testProof(provider), testProof(provider))
	require.NoError(t, msg.ValidateBasic())

	// one-sided deposits are allowed
	msg = types.NewMsgAddLiquidity(provider, 1000, 0, testProof(provider), testProof(provider))
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgAddLiquidity(provider, 0, 0, testProof(provider), testProof(provider))
	require.Error(t, msg.ValidateBasic())

	msg = types.NewMsgAddLiquidity("nope", 1000, 1000, testProof(provider), testProof(provider))
	require.Error(t, msg.ValidateBasic())
}

func TestMsgRemoveLiquidityValidateBasic(t *testing.T) {
	provider := keepertest.TestAddr(3).String()

	msg := types.NewMsgRemoveLiquidity(provider, 1000, testProof(provider))
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgRemoveLiquidity(provider, 0, testProof(provider))
	require.Error(t, msg.ValidateBasic())

	msg = types.NewMsgRemoveLiquidity("nope", 1000, testProof(provider))
	require.Error(t, msg.ValidateBasic())
}

func TestMsgSwapValidateBasic(t *testing.T) {
	trader := keepertest.TestAddr(4).String()

	require.NoError(t, types.NewMsgSwap(trader, 1000, types.PrimaryToSecondary).ValidateBasic())
	require.NoError(t, types.NewMsgSwap(trader, 1000, types.SecondaryToPrimary).ValidateBasic())

	require.Error(t, types.NewMsgSwap(trader, 0, types.PrimaryToSecondary).ValidateBasic())
	require.Error(t, types.NewMsgSwap(trader, 1000, types.SwapDirection(0)).ValidateBasic())
	require.Error(t, types.NewMsgSwap(trader, 1000, types.SwapDirection(3)).ValidateBasic())
	require.Error(t, types.NewMsgSwap("nope", 1000, types.PrimaryToSecondary).ValidateBasic())
}

func TestAdminMsgsValidateBasic(t *testing.T) {
	admin := keepertest.TestAddr(1).String()
	other := keepertest.TestAddr(2).String()

	require.NoError(t, (&types.MsgUpdateSwapFee{Admin: admin, SwapFeeBps: 30}).ValidateBasic())
	require.Error(t, (&types.MsgUpdateSwapFee{Admin: admin, SwapFeeBps: 10_001}).ValidateBasic())
	require.Error(t, (&types.MsgUpdateSwapFee{Admin: "nope", SwapFeeBps: 30}).ValidateBasic())

	require.NoError(t, (&types.MsgUpdateProtocolFee{Admin: admin, ProtocolFeeBps: 5}).ValidateBasic())
	require.Error(t, (&types.MsgUpdateProtocolFee{Admin: admin, ProtocolFeeBps: 10_001}).ValidateBasic())

	require.NoError(t, (&types.MsgUpdateAdmin{Admin: admin, NewAdmin: other}).ValidateBasic())
	require.Error(t, (&types.MsgUpdateAdmin{Admin: admin, NewAdmin: "nope"}).ValidateBasic())

	require.NoError(t, (&types.MsgUpdateTreasury{Admin: admin, NewTreasury: other}).ValidateBasic())
	require.Error(t, (&types.MsgUpdateTreasury{Admin: admin, NewTreasury: "nope"}).ValidateBasic())

	require.NoError(t, (&types.MsgUpdateMinimumBalance{Admin: admin, MinimumBalance: 0}).ValidateBasic())
	require.NoError(t, (&types.MsgUpdateLifecycleFlag{Admin: admin, Flag: true}).ValidateBasic())
	require.Error(t, (&types.MsgUpdateLifecycleFlag{Admin: "nope"}).ValidateBasic())
}

func TestMsgSigners(t *testing.T) {
	admin := keepertest.TestAddr(1)

	signers := validInitialize().GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, admin, signers[0])

	swap := types.NewMsgSwap(keepertest.TestAddr(4).String(), 1000, types.PrimaryToSecondary)
	require.Equal(t, keepertest.TestAddr(4), swap.GetSigners()[0])
}

func TestMsgSignBytesDeterministic(t *testing.T) {
	msg := validInitialize()
	require.Equal(t, msg.GetSignBytes(), msg.GetSignBytes())
	require.NotEmpty(t, msg.GetSignBytes())
}
