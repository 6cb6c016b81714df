package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Nil(t, gs.Pool)
	require.Equal(t, types.DefaultParams(), gs.Params)
}

func TestGenesisValidate(t *testing.T) {
	pool := validPool()
	gs := types.NewGenesisState(types.DefaultParams(), &pool)
	require.NoError(t, gs.Validate())

	broken := validPool()
	broken.Admin = "nope"
	gs = types.NewGenesisState(types.DefaultParams(), &broken)
	require.Error(t, gs.Validate())

	badParams := types.GenesisState{
		Params: types.Params{DefaultSwapFeeBps: types.BpsDenominator + 1},
	}
	require.Error(t, badParams.Validate())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.Params{DefaultSwapFeeBps: 30, DefaultProtocolFeeBps: 5}
	require.NoError(t, p.Validate())

	p.DefaultSwapFeeBps = types.BpsDenominator + 1
	require.Error(t, p.Validate())

	p = types.Params{DefaultSwapFeeBps: 30, DefaultProtocolFeeBps: types.BpsDenominator + 1}
	require.Error(t, p.Validate())
}
