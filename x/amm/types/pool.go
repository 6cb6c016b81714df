package types

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PoolStatus is the lifecycle state of the pool.
type PoolStatus uint8

const (
	// StatusUninitialized is the state between application creation and
	// Initialize: only the admin address is set.
	StatusUninitialized PoolStatus = iota
	// StatusActive accepts liquidity, swaps and config updates.
	StatusActive
	// StatusEnding is Active with the lifecycle flag raised: no new
	// liquidity or swaps, providers may still withdraw.
	StatusEnding
)

func (s PoolStatus) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusActive:
		return "active"
	case StatusEnding:
		return "ending"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// PoolState is the authoritative record of the pool: reserves, LP supply
// accounting, asset identifiers, fee configuration and the derived k
// invariant. There is a single instance per deployed module and it is
// mutated only by the keeper's liquidity, swap and admin operations.
type PoolState struct {
	PrimaryAsset   Asset `json:"primary_asset"`
	SecondaryAsset Asset `json:"secondary_asset"`
	LpAsset        Asset `json:"lp_asset"`

	PrimaryReserve   uint64 `json:"primary_reserve"`
	SecondaryReserve uint64 `json:"secondary_reserve"`

	// LpSupplyRemaining counts how many units of the fixed TotalLPSupply
	// allotment are still undistributed.
	LpSupplyRemaining uint64 `json:"lp_supply_remaining"`

	// KInvariant caches primary_reserve * secondary_reserve. It is a
	// derived audit field, recomputed on every reserve change, never an
	// independent source of truth.
	KInvariant math.Int `json:"k_invariant"`

	SwapFeeBps     uint64 `json:"swap_fee_bps"`
	ProtocolFeeBps uint64 `json:"protocol_fee_bps"`

	Admin    string `json:"admin"`
	Treasury string `json:"treasury"`

	// MinimumBalanceReserved records native funds the pool must retain
	// against ledger minimum-balance requirements. Advisory bookkeeping.
	MinimumBalanceReserved uint64 `json:"minimum_balance_reserved"`

	LifecycleFlag bool   `json:"lifecycle_flag"`
	Initialized   bool   `json:"initialized"`
	Version       uint64 `json:"version"`
}

// NewUninitializedPool returns the pool record created at application
// creation: admin set, everything else zero.
func NewUninitializedPool(admin string) PoolState {
	return PoolState{
		Admin:      admin,
		KInvariant: math.ZeroInt(),
	}
}

// Status derives the lifecycle state from the stored fields.
func (p PoolState) Status() PoolStatus {
	switch {
	case !p.Initialized:
		return StatusUninitialized
	case p.LifecycleFlag:
		return StatusEnding
	default:
		return StatusActive
	}
}

// IssuedLPUnits is the number of LP units currently in providers' hands.
func (p PoolState) IssuedLPUnits() uint64 {
	return TotalLPSupply - p.LpSupplyRemaining
}

// ComputeK returns the exact product of the two reserves.
func (p PoolState) ComputeK() math.Int {
	product := new(big.Int).Mul(
		new(big.Int).SetUint64(p.PrimaryReserve),
		new(big.Int).SetUint64(p.SecondaryReserve),
	)
	return math.NewIntFromBigInt(product)
}

// Validate checks the internal consistency of a committed pool record.
func (p PoolState) Validate() error {
	if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
		return fmt.Errorf("invalid admin address %q: %w", p.Admin, err)
	}
	if !p.Initialized {
		if p.PrimaryReserve != 0 || p.SecondaryReserve != 0 || p.LpSupplyRemaining != 0 {
			return fmt.Errorf("uninitialized pool carries reserves or supply")
		}
		return nil
	}
	if err := p.PrimaryAsset.Validate(); err != nil {
		return fmt.Errorf("primary asset: %w", err)
	}
	if err := p.SecondaryAsset.Validate(); err != nil {
		return fmt.Errorf("secondary asset: %w", err)
	}
	if p.PrimaryAsset.Equal(p.SecondaryAsset) {
		return fmt.Errorf("primary and secondary assets are identical")
	}
	if err := p.LpAsset.Validate(); err != nil {
		return fmt.Errorf("lp asset: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.Treasury); err != nil {
		return fmt.Errorf("invalid treasury address %q: %w", p.Treasury, err)
	}
	if p.SwapFeeBps > BpsDenominator {
		return fmt.Errorf("swap fee %d exceeds %d bps", p.SwapFeeBps, BpsDenominator)
	}
	if p.ProtocolFeeBps > BpsDenominator {
		return fmt.Errorf("protocol fee %d exceeds %d bps", p.ProtocolFeeBps, BpsDenominator)
	}
	if p.LpSupplyRemaining > TotalLPSupply {
		return fmt.Errorf("lp supply remaining %d exceeds allotment %d", p.LpSupplyRemaining, TotalLPSupply)
	}
	if !p.KInvariant.Equal(p.ComputeK()) {
		return fmt.Errorf("cached k %s does not match reserves product %s", p.KInvariant, p.ComputeK())
	}
	return nil
}
