// Package ledger adapts the host chain's bank module to the asset
// boundary the amm keeper expects. Deposits are settled as pull
// transfers inside the same transaction, so a deposit reference is
// authenticated by executing the transfer it describes rather than by
// looking up a prior ledger entry.
package ledger

import (
	"context"
	"fmt"
	"math"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// LPAssetID is the fixed asset id of the pool's claim token. The id and
// its denom are derived, never stored in the adapter, so a rebuilt
// adapter resolves the claim token from the pool record alone and a
// reverted initialization leaves nothing behind to undo.
const LPAssetID uint64 = math.MaxUint64

// BankKeeper is the subset of the host bank module the adapter needs.
type BankKeeper interface {
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SetDenomMetaData(ctx context.Context, denomMetaData banktypes.Metadata)
}

// BankLedger implements types.LedgerKeeper on top of the bank module.
// Token asset identifiers map to bank denoms through a table the host
// supplies at wiring time. The adapter itself is stateless after
// construction: every balance and the claim token's metadata live in
// the bank store, which reverts atomically with the pool record.
type BankLedger struct {
	bank        BankKeeper
	moduleName  string
	moduleAddr  sdk.AccAddress
	nativeDenom string
	assetDenoms map[uint64]string
}

var _ types.LedgerKeeper = (*BankLedger)(nil)

// NewBankLedger creates a bank-backed ledger boundary. assetDenoms maps
// every token asset id the pool may hold to its bank denom; the id
// LPAssetID is reserved for the claim token.
func NewBankLedger(
	bank BankKeeper,
	moduleName string,
	moduleAddr sdk.AccAddress,
	nativeDenom string,
	assetDenoms map[uint64]string,
) *BankLedger {
	denoms := make(map[uint64]string, len(assetDenoms))
	for id, denom := range assetDenoms {
		denoms[id] = denom
	}
	return &BankLedger{
		bank:        bank,
		moduleName:  moduleName,
		moduleAddr:  moduleAddr,
		nativeDenom: nativeDenom,
		assetDenoms: denoms,
	}
}

// lpDenom derives the claim token's bank denom from the module name, so
// any adapter instance resolves it without prior state.
func (bl *BankLedger) lpDenom() string {
	return bl.moduleName + "/lp"
}

func (bl *BankLedger) denomFor(asset types.Asset) (string, error) {
	if asset.Native {
		return bl.nativeDenom, nil
	}
	if asset.ID == LPAssetID {
		return bl.lpDenom(), nil
	}
	denom, ok := bl.assetDenoms[asset.ID]
	if !ok {
		return "", types.ErrInvalidAsset.Wrapf("no denom registered for asset %d", asset.ID)
	}
	return denom, nil
}

func coin(denom string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
}

// VerifyNativeDeposit settles the claimed native payment by pulling it
// from the sender. A sender without the funds fails the precondition.
func (bl *BankLedger) VerifyNativeDeposit(ctx context.Context, proof types.DepositProof, receiver sdk.AccAddress, amount uint64) error {
	return bl.pullDeposit(ctx, proof, receiver, bl.nativeDenom, amount)
}

// VerifyAssetDeposit settles the claimed token transfer by pulling it
// from the sender.
func (bl *BankLedger) VerifyAssetDeposit(ctx context.Context, proof types.DepositProof, receiver sdk.AccAddress, asset types.Asset, amount uint64) error {
	denom, err := bl.denomFor(asset)
	if err != nil {
		return err
	}
	return bl.pullDeposit(ctx, proof, receiver, denom, amount)
}

func (bl *BankLedger) pullDeposit(ctx context.Context, proof types.DepositProof, receiver sdk.AccAddress, denom string, amount uint64) error {
	if !receiver.Equals(bl.moduleAddr) {
		return types.ErrPreconditionFailed.Wrap("deposit receiver is not the pool account")
	}

	sender, err := sdk.AccAddressFromBech32(proof.Sender)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("deposit sender: %v", err)
	}
	if amount == 0 {
		return nil
	}

	if err := bl.bank.SendCoinsFromAccountToModule(ctx, sender, bl.moduleName, coin(denom, amount)); err != nil {
		return types.ErrPreconditionFailed.Wrapf("deposit of %d%s from %s: %v", amount, denom, proof.Sender, err)
	}
	return nil
}

// TransferNative pays native currency out of the pool account.
func (bl *BankLedger) TransferNative(ctx context.Context, receiver sdk.AccAddress, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if err := bl.bank.SendCoinsFromModuleToAccount(ctx, bl.moduleName, receiver, coin(bl.nativeDenom, amount)); err != nil {
		return fmt.Errorf("native payout of %d to %s: %w", amount, receiver.String(), err)
	}
	return nil
}

// TransferAsset pays a token out of the pool account.
func (bl *BankLedger) TransferAsset(ctx context.Context, asset types.Asset, receiver sdk.AccAddress, amount uint64) error {
	denom, err := bl.denomFor(asset)
	if err != nil {
		return err
	}
	if amount == 0 {
		return nil
	}
	if err := bl.bank.SendCoinsFromModuleToAccount(ctx, bl.moduleName, receiver, coin(denom, amount)); err != nil {
		return fmt.Errorf("payout of %d%s to %s: %w", amount, denom, receiver.String(), err)
	}
	return nil
}

// CreateFungibleAsset mints the pool's claim token as a bank denom held
// entirely by the pool account. One-shot use is enforced by the caller's
// initialization gate on the pool record, which shares the claim token's
// transactional fate; the adapter keeps no record of its own.
func (bl *BankLedger) CreateFungibleAsset(ctx context.Context, totalSupply uint64, decimals uint32, name, unitName, url string) (types.Asset, error) {
	if _, ok := bl.assetDenoms[LPAssetID]; ok {
		return types.Asset{}, types.ErrInvalidAsset.Wrapf("asset id %d is reserved for the claim token", LPAssetID)
	}

	denom := bl.lpDenom()
	if err := bl.bank.MintCoins(ctx, bl.moduleName, coin(denom, totalSupply)); err != nil {
		return types.Asset{}, fmt.Errorf("mint %d%s: %w", totalSupply, denom, err)
	}

	meta := banktypes.Metadata{
		Description: name,
		DenomUnits:  []*banktypes.DenomUnit{{Denom: denom, Exponent: 0}},
		Base:        denom,
		Display:     denom,
		Name:        name,
		Symbol:      unitName,
		URI:         url,
	}
	if decimals > 0 {
		meta.DenomUnits = append(meta.DenomUnits, &banktypes.DenomUnit{Denom: unitName, Exponent: decimals})
		meta.Display = unitName
	}
	bl.bank.SetDenomMetaData(ctx, meta)

	return types.TokenAsset(LPAssetID), nil
}

// OptInAsset is a no-op under the bank module: accounts hold any denom
// without prior registration. It still rejects assets the adapter has
// no denom for, so a bad wiring fails at initialization.
func (bl *BankLedger) OptInAsset(ctx context.Context, asset types.Asset) error {
	if asset.Native {
		return nil
	}
	_, err := bl.denomFor(asset)
	return err
}

// PoolAddress returns the module account custodying the pool's funds.
func (bl *BankLedger) PoolAddress() sdk.AccAddress {
	return bl.moduleAddr
}
