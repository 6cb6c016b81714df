package types

import "fmt"

// SwapDirection selects which reserve is the input side of a swap.
type SwapDirection uint8

const (
	// PrimaryToSecondary sells the primary asset for the secondary.
	PrimaryToSecondary SwapDirection = 1
	// SecondaryToPrimary sells the secondary asset for the primary.
	SecondaryToPrimary SwapDirection = 2
)

// Validate rejects direction values outside the two known legs.
func (d SwapDirection) Validate() error {
	switch d {
	case PrimaryToSecondary, SecondaryToPrimary:
		return nil
	default:
		return fmt.Errorf("unknown swap direction %d", uint8(d))
	}
}

func (d SwapDirection) String() string {
	switch d {
	case PrimaryToSecondary:
		return "primary_to_secondary"
	case SecondaryToPrimary:
		return "secondary_to_primary"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(d))
	}
}

// SwapResult is the committed outcome of a swap: the quoted output and the
// fee split between liquidity providers and the protocol treasury.
type SwapResult struct {
	OutputAmount uint64 `json:"output_amount"`
	TotalFee     uint64 `json:"total_fee"`
	LpFee        uint64 `json:"lp_fee"`
	ProtocolFee  uint64 `json:"protocol_fee"`
}
