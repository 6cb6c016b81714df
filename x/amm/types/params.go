package types

import "fmt"

// Params holds the module-level defaults applied when Initialize is called
// without explicit fee arguments (CLI convenience) and validated against
// the basis-point domain.
type Params struct {
	DefaultSwapFeeBps     uint64 `json:"default_swap_fee_bps"`
	DefaultProtocolFeeBps uint64 `json:"default_protocol_fee_bps"`
}

// DefaultParams returns default parameters for the amm module.
func DefaultParams() Params {
	return Params{
		DefaultSwapFeeBps:     30, // 0.3%
		DefaultProtocolFeeBps: 5,  // 0.05% of the input, as a share of the total fee
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if p.DefaultSwapFeeBps > BpsDenominator {
		return fmt.Errorf("default swap fee %d exceeds %d bps", p.DefaultSwapFeeBps, BpsDenominator)
	}
	if p.DefaultProtocolFeeBps > BpsDenominator {
		return fmt.Errorf("default protocol fee %d exceeds %d bps", p.DefaultProtocolFeeBps, BpsDenominator)
	}
	return nil
}
