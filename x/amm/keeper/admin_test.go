package keeper_test

import (
	keepertest "github.com/DeFruit/micro-amm-contract/testutil/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// TestUpdateFees verifies fee updates apply and enforce the bps bound
func (s *KeeperTestSuite) TestUpdateFees() {
	s.Require().NoError(s.keeper.UpdateSwapFee(s.ctx, s.admin, 100))
	s.Require().NoError(s.keeper.UpdateProtocolFee(s.ctx, s.admin, 40))

	pool := s.pool()
	s.Equal(uint64(100), pool.SwapFeeBps)
	s.Equal(uint64(40), pool.ProtocolFeeBps)

	err := s.keeper.UpdateSwapFee(s.ctx, s.admin, types.BpsDenominator+1)
	s.Require().ErrorIs(err, types.ErrInvalidAmount)
	err = s.keeper.UpdateProtocolFee(s.ctx, s.admin, types.BpsDenominator+1)
	s.Require().ErrorIs(err, types.ErrInvalidAmount)
}

// TestUpdateAdminRotation verifies handover: the old admin loses control,
// the new one gains it
func (s *KeeperTestSuite) TestUpdateAdminRotation() {
	newAdmin := keepertest.TestAddr(7)

	s.Require().NoError(s.keeper.UpdateAdmin(s.ctx, s.admin, newAdmin))
	s.Equal(newAdmin.String(), s.pool().Admin)

	err := s.keeper.UpdateSwapFee(s.ctx, s.admin, 50)
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	s.Require().NoError(s.keeper.UpdateSwapFee(s.ctx, newAdmin, 50))
	s.Equal(uint64(50), s.pool().SwapFeeBps)
}

// TestUpdateTreasury verifies the protocol fee receiver can be redirected
func (s *KeeperTestSuite) TestUpdateTreasury() {
	newTreasury := keepertest.TestAddr(8)

	s.Require().NoError(s.keeper.UpdateTreasury(s.ctx, s.admin, newTreasury))
	s.Equal(newTreasury.String(), s.pool().Treasury)
}

// TestUpdateMinimumBalance verifies the bookkeeping field is writable
func (s *KeeperTestSuite) TestUpdateMinimumBalance() {
	s.Require().NoError(s.keeper.UpdateMinimumBalance(s.ctx, s.admin, 777_000))
	s.Equal(uint64(777_000), s.pool().MinimumBalanceReserved)
}

// TestUpdateLifecycleFlagRoundTrip verifies the flag can be raised and
// cleared, restoring trading
func (s *KeeperTestSuite) TestUpdateLifecycleFlagRoundTrip() {
	s.addLiquidity(100_000, 100_000)

	s.Require().NoError(s.keeper.UpdateLifecycleFlag(s.ctx, s.admin, true))
	s.Equal(types.StatusEnding, s.pool().Status())

	s.Require().NoError(s.keeper.UpdateLifecycleFlag(s.ctx, s.admin, false))
	s.Equal(types.StatusActive, s.pool().Status())

	_, err := s.keeper.Swap(s.ctx, s.trader, 1000, types.PrimaryToSecondary)
	s.Require().NoError(err)
}

// TestConfigSurvivesLifecycleFlag verifies administration stays open on a
// shutdown-scheduled pool
func (s *KeeperTestSuite) TestConfigSurvivesLifecycleFlag() {
	s.Require().NoError(s.keeper.UpdateLifecycleFlag(s.ctx, s.admin, true))

	s.Require().NoError(s.keeper.UpdateSwapFee(s.ctx, s.admin, 10))
	s.Equal(uint64(10), s.pool().SwapFeeBps)
}

// TestUnauthorizedConfigLeavesStateUnchanged verifies every admin operation
// rejects a non-admin caller without mutating the record
func (s *KeeperTestSuite) TestUnauthorizedConfigLeavesStateUnchanged() {
	stranger := keepertest.TestAddr(9)
	before := s.pool()

	ops := []func() error{
		func() error { return s.keeper.UpdateSwapFee(s.ctx, stranger, 1) },
		func() error { return s.keeper.UpdateProtocolFee(s.ctx, stranger, 1) },
		func() error { return s.keeper.UpdateAdmin(s.ctx, stranger, stranger) },
		func() error { return s.keeper.UpdateTreasury(s.ctx, stranger, stranger) },
		func() error { return s.keeper.UpdateMinimumBalance(s.ctx, stranger, 1) },
		func() error { return s.keeper.UpdateLifecycleFlag(s.ctx, stranger, true) },
	}
	for _, op := range ops {
		s.Require().ErrorIs(op(), types.ErrUnauthorized)
	}

	s.Equal(before, s.pool())
}
