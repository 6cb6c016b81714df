package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DepositProof references the ledger transaction a caller claims to have
// made into the pool's custody. The ledger boundary is responsible for
// authenticating it; the keeper only forwards the expectations.
type DepositProof struct {
	Sender string `json:"sender"`
	TxID   string `json:"tx_id"`
}

// LedgerKeeper is the module's single external collaborator: the host
// ledger layer that authenticates deposits and moves asset balances.
// Every method is a blocking precondition check or side effect; an error
// from any of them must abort the calling operation, which the host's
// transaction semantics translate into a full state revert.
type LedgerKeeper interface {
	// VerifyNativeDeposit fails unless proof shows a native-currency
	// payment of exactly amount to receiver.
	VerifyNativeDeposit(ctx context.Context, proof DepositProof, receiver sdk.AccAddress, amount uint64) error

	// VerifyAssetDeposit fails unless proof shows a transfer of exactly
	// amount of asset to receiver.
	VerifyAssetDeposit(ctx context.Context, proof DepositProof, receiver sdk.AccAddress, asset Asset, amount uint64) error

	// TransferNative pays amount of the native currency out of the pool.
	TransferNative(ctx context.Context, receiver sdk.AccAddress, amount uint64) error

	// TransferAsset moves amount of a ledger-issued token out of the pool.
	TransferAsset(ctx context.Context, asset Asset, receiver sdk.AccAddress, amount uint64) error

	// CreateFungibleAsset mints a new token with the given fixed total
	// supply under the pool's control and returns its identifier. Called
	// exactly once, during initialization, for the LP claim token.
	CreateFungibleAsset(ctx context.Context, totalSupply uint64, decimals uint32, name, unitName, url string) (Asset, error)

	// OptInAsset makes the pool capable of holding the given token.
	OptInAsset(ctx context.Context, asset Asset) error

	// PoolAddress returns the address custodying the pool's funds.
	PoolAddress() sdk.AccAddress
}
