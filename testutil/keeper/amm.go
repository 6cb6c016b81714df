package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/DeFruit/micro-amm-contract/x/amm/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// LedgerCall records one invocation crossing the ledger boundary.
type LedgerCall struct {
	Method   string
	Asset    types.Asset
	Receiver string
	Amount   uint64
	Proof    types.DepositProof
}

// MockLedger implements types.LedgerKeeper in-memory. Every call is
// recorded; FailOn forces a named method to return an error so tests can
// exercise precondition failures.
type MockLedger struct {
	Calls       []LedgerCall
	FailOn      map[string]error
	NextAssetID uint64
	poolAddr    sdk.AccAddress
}

var _ types.LedgerKeeper = (*MockLedger)(nil)

// NewMockLedger creates a recording ledger custodied by poolAddr.
func NewMockLedger(poolAddr sdk.AccAddress) *MockLedger {
	return &MockLedger{
		FailOn:      make(map[string]error),
		NextAssetID: 1000,
		poolAddr:    poolAddr,
	}
}

func (m *MockLedger) record(call LedgerCall) error {
	m.Calls = append(m.Calls, call)
	if err, ok := m.FailOn[call.Method]; ok {
		return err
	}
	return nil
}

// CallsTo returns the recorded calls for one method.
func (m *MockLedger) CallsTo(method string) []LedgerCall {
	var out []LedgerCall
	for _, c := range m.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (m *MockLedger) VerifyNativeDeposit(ctx context.Context, proof types.DepositProof, receiver sdk.AccAddress, amount uint64) error {
	return m.record(LedgerCall{Method: "VerifyNativeDeposit", Asset: types.NativeAsset(), Receiver: receiver.String(), Amount: amount, Proof: proof})
}

func (m *MockLedger) VerifyAssetDeposit(ctx context.Context, proof types.DepositProof, receiver sdk.AccAddress, asset types.Asset, amount uint64) error {
	return m.record(LedgerCall{Method: "VerifyAssetDeposit", Asset: asset, Receiver: receiver.String(), Amount: amount, Proof: proof})
}

func (m *MockLedger) TransferNative(ctx context.Context, receiver sdk.AccAddress, amount uint64) error {
	return m.record(LedgerCall{Method: "TransferNative", Asset: types.NativeAsset(), Receiver: receiver.String(), Amount: amount})
}

func (m *MockLedger) TransferAsset(ctx context.Context, asset types.Asset, receiver sdk.AccAddress, amount uint64) error {
	return m.record(LedgerCall{Method: "TransferAsset", Asset: asset, Receiver: receiver.String(), Amount: amount})
}

func (m *MockLedger) CreateFungibleAsset(ctx context.Context, totalSupply uint64, decimals uint32, name, unitName, url string) (types.Asset, error) {
	asset := types.TokenAsset(m.NextAssetID)
	m.NextAssetID++
	if err := m.record(LedgerCall{Method: "CreateFungibleAsset", Asset: asset, Amount: totalSupply}); err != nil {
		return types.Asset{}, err
	}
	return asset, nil
}

func (m *MockLedger) OptInAsset(ctx context.Context, asset types.Asset) error {
	return m.record(LedgerCall{Method: "OptInAsset", Asset: asset})
}

func (m *MockLedger) PoolAddress() sdk.AccAddress {
	return m.poolAddr
}

// TestAddr returns a deterministic bech32 test address.
func TestAddr(index byte) sdk.AccAddress {
	return sdk.AccAddress(fmt.Appendf(nil, "amm-test-addr-%03d----", index))
}

// AmmKeeper creates a test keeper backed by an in-memory store and a
// recording mock ledger.
func AmmKeeper(t testing.TB) (keeper.Keeper, *MockLedger, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	types.RegisterCodec(cdc)

	ledger := NewMockLedger(TestAddr(0))
	k := keeper.NewKeeper(cdc, storeKey, ledger)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ledger, ctx
}
