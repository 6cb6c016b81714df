package types

import "fmt"

// GenesisState defines the amm module's genesis state. Pool is nil before
// the application-creation step has run; a genesis carrying a pool record
// restores a previously exported deployment.
type GenesisState struct {
	Params Params     `json:"params"`
	Pool   *PoolState `json:"pool,omitempty"`
}

// NewGenesisState creates a new genesis state instance
func NewGenesisState(params Params, pool *PoolState) *GenesisState {
	return &GenesisState{Params: params, Pool: pool}
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.Pool != nil {
		if err := gs.Pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool state: %w", err)
		}
	}
	return nil
}
