package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/DeFruit/micro-amm-contract/x/amm/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// TestInvariantsHealthyPool verifies a pool under normal use passes every
// registered invariant
func (s *KeeperTestSuite) TestInvariantsHealthyPool() {
	msg, broken := keeper.AllInvariants(s.keeper)(s.ctx)
	s.False(broken, msg)

	s.addLiquidity(100_000, 100_000)
	_, err := s.keeper.Swap(s.ctx, s.trader, 1000, types.PrimaryToSecondary)
	s.Require().NoError(err)

	msg, broken = keeper.AllInvariants(s.keeper)(s.ctx)
	s.False(broken, msg)
}

// TestConstantProductInvariantDetectsDrift verifies a tampered cached k is
// reported
func (s *KeeperTestSuite) TestConstantProductInvariantDetectsDrift() {
	s.addLiquidity(100_000, 100_000)

	pool := s.pool()
	pool.KInvariant = math.NewInt(123)
	s.Require().NoError(s.keeper.SetPoolState(s.ctx, pool))

	_, broken := keeper.ConstantProductInvariant(s.keeper)(s.ctx)
	s.True(broken)
}

// TestReserveConsistencyInvariantDetectsOneSidedDrain verifies an empty
// reserve backing issued LP units is reported
func (s *KeeperTestSuite) TestReserveConsistencyInvariantDetectsOneSidedDrain() {
	s.addLiquidity(100_000, 100_000)

	pool := s.pool()
	pool.SecondaryReserve = 0
	pool.KInvariant = pool.ComputeK()
	s.Require().NoError(s.keeper.SetPoolState(s.ctx, pool))

	_, broken := keeper.ReserveConsistencyInvariant(s.keeper)(s.ctx)
	s.True(broken)
}

// TestInvariantsAcceptZeroMintDeposit verifies the donated-reserves state a
// zero-mint deposit leaves behind passes every registered invariant
func (s *KeeperTestSuite) TestInvariantsAcceptZeroMintDeposit() {
	minted, err := s.keeper.AddLiquidity(s.ctx, s.provider, 5, 0,
		types.DepositProof{Sender: s.provider.String(), TxID: "A"},
		types.DepositProof{Sender: s.provider.String(), TxID: "B"})
	s.Require().NoError(err)
	s.Equal(uint64(0), minted)

	pool := s.pool()
	s.Equal(uint64(5), pool.PrimaryReserve)
	s.Equal(uint64(0), pool.IssuedLPUnits())

	msg, broken := keeper.AllInvariants(s.keeper)(s.ctx)
	s.False(broken, msg)
}

// TestLPAllotmentInvariantDetectsExcessSupply verifies a remaining supply
// above the allotment is reported
func (s *KeeperTestSuite) TestLPAllotmentInvariantDetectsExcessSupply() {
	s.addLiquidity(100_000, 100_000)

	pool := s.pool()
	pool.LpSupplyRemaining = pool.LpSupplyRemaining + 200_001
	s.Require().NoError(s.keeper.SetPoolState(s.ctx, pool))

	_, broken := keeper.LPAllotmentInvariant(s.keeper)(s.ctx)
	s.True(broken)
}
