package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// TestFirstDepositGeometricMean verifies the bootstrap mint is the floored
// geometric mean of the two amounts
func (s *KeeperTestSuite) TestFirstDepositGeometricMean() {
	minted := s.addLiquidity(100_000, 100_000)
	s.Equal(uint64(100_000), minted)

	pool := s.pool()
	s.Equal(uint64(100_000), pool.PrimaryReserve)
	s.Equal(uint64(100_000), pool.SecondaryReserve)
	s.Equal(uint64(100_000), pool.IssuedLPUnits())
	s.Equal(math.NewInt(10_000_000_000), pool.KInvariant)

	// provider received the minted units from the pre-minted allotment
	transfers := s.ledger.CallsTo("TransferAsset")
	s.Require().Len(transfers, 1)
	s.Equal(pool.LpAsset, transfers[0].Asset)
	s.Equal(s.provider.String(), transfers[0].Receiver)
	s.Equal(uint64(100_000), transfers[0].Amount)
}

// TestFirstDepositImbalanced verifies the geometric mean floors
func (s *KeeperTestSuite) TestFirstDepositImbalanced() {
	// floor(sqrt(1000 * 500)) = floor(707.1...) = 707
	minted := s.addLiquidity(1000, 500)
	s.Equal(uint64(707), minted)
}

// TestSubsequentDepositProportional verifies later deposits mint by the
// reserve ratio
func (s *KeeperTestSuite) TestSubsequentDepositProportional() {
	s.addLiquidity(100_000, 100_000)

	minted := s.addLiquidity(50_000, 50_000)
	s.Equal(uint64(50_000), minted)

	pool := s.pool()
	s.Equal(uint64(150_000), pool.PrimaryReserve)
	s.Equal(uint64(150_000), pool.SecondaryReserve)
	s.Equal(uint64(150_000), pool.IssuedLPUnits())
}

// TestSubsequentDepositOffRatio verifies an imbalanced deposit mints by the
// smaller side and donates the excess
func (s *KeeperTestSuite) TestSubsequentDepositOffRatio() {
	s.addLiquidity(100_000, 100_000)

	// secondary side supports 10_000 units, primary 50_000: mint 10_000
	minted := s.addLiquidity(50_000, 10_000)
	s.Equal(uint64(10_000), minted)

	pool := s.pool()
	s.Equal(uint64(150_000), pool.PrimaryReserve)
	s.Equal(uint64(110_000), pool.SecondaryReserve)
	s.Equal(uint64(110_000), pool.IssuedLPUnits())
}

// TestZeroMintAccepted verifies a dust deposit that computes to zero units
// is accepted without an LP transfer
func (s *KeeperTestSuite) TestZeroMintAccepted() {
	s.addLiquidity(100_000, 100_000)
	before := len(s.ledger.CallsTo("TransferAsset"))

	// 0-secondary deposit mints min(primary-side, 0) = 0
	minted := s.addLiquidity(5, 0)
	s.Equal(uint64(0), minted)

	pool := s.pool()
	s.Equal(uint64(100_005), pool.PrimaryReserve)
	s.Equal(uint64(100_000), pool.IssuedLPUnits())
	s.Len(s.ledger.CallsTo("TransferAsset"), before)
}

// TestAllotmentConserved verifies issued + remaining always equals the
// fixed allotment across mints and burns
func (s *KeeperTestSuite) TestAllotmentConserved() {
	check := func() {
		pool := s.pool()
		s.Equal(types.TotalLPSupply, pool.IssuedLPUnits()+pool.LpSupplyRemaining)
	}

	check()
	s.addLiquidity(100_000, 100_000)
	check()
	s.addLiquidity(33_333, 77_777)
	check()

	_, _, err := s.keeper.RemoveLiquidity(s.ctx, s.provider, 40_000,
		types.DepositProof{Sender: s.provider.String(), TxID: "BURN"})
	s.Require().NoError(err)
	check()
}

// TestDepositRejectedOnFailedProof verifies a failed deposit verification
// leaves the pool untouched
func (s *KeeperTestSuite) TestDepositRejectedOnFailedProof() {
	s.addLiquidity(100_000, 100_000)

	s.ledger.FailOn["VerifyAssetDeposit"] = types.ErrPreconditionFailed.Wrap("no matching transfer")
	_, err := s.keeper.AddLiquidity(s.ctx, s.provider, 1000, 1000,
		types.DepositProof{Sender: s.provider.String(), TxID: "P"},
		types.DepositProof{Sender: s.provider.String(), TxID: "S"},
	)
	s.Require().ErrorIs(err, types.ErrPreconditionFailed)

	pool := s.pool()
	s.Equal(uint64(100_000), pool.PrimaryReserve)
	s.Equal(uint64(100_000), pool.SecondaryReserve)
}

// TestRemoveLiquidityProportional verifies burns pay out the floored
// proportional share of both reserves
func (s *KeeperTestSuite) TestRemoveLiquidityProportional() {
	s.addLiquidity(100_000, 100_000)

	primaryOut, secondaryOut, err := s.keeper.RemoveLiquidity(s.ctx, s.provider, 25_000,
		types.DepositProof{Sender: s.provider.String(), TxID: "BURN"})
	s.Require().NoError(err)
	s.Equal(uint64(25_000), primaryOut)
	s.Equal(uint64(25_000), secondaryOut)

	pool := s.pool()
	s.Equal(uint64(75_000), pool.PrimaryReserve)
	s.Equal(uint64(75_000), pool.SecondaryReserve)
	s.Equal(uint64(75_000), pool.IssuedLPUnits())
}

// TestRemoveAllLiquidity verifies a full burn drains both reserves and
// restores the whole allotment
func (s *KeeperTestSuite) TestRemoveAllLiquidity() {
	minted := s.addLiquidity(100_000, 100_000)

	primaryOut, secondaryOut, err := s.keeper.RemoveLiquidity(s.ctx, s.provider, minted,
		types.DepositProof{Sender: s.provider.String(), TxID: "BURN"})
	s.Require().NoError(err)
	s.Equal(uint64(100_000), primaryOut)
	s.Equal(uint64(100_000), secondaryOut)

	pool := s.pool()
	s.Equal(uint64(0), pool.PrimaryReserve)
	s.Equal(uint64(0), pool.SecondaryReserve)
	s.Equal(types.TotalLPSupply, pool.LpSupplyRemaining)
	s.True(pool.KInvariant.IsZero())
}

// TestRemoveLiquidityZeroUnits verifies a zero burn is rejected
func (s *KeeperTestSuite) TestRemoveLiquidityZeroUnits() {
	s.addLiquidity(100_000, 100_000)

	_, _, err := s.keeper.RemoveLiquidity(s.ctx, s.provider, 0,
		types.DepositProof{Sender: s.provider.String(), TxID: "BURN"})
	s.Require().ErrorIs(err, types.ErrInvalidAmount)
}

// TestRemoveLiquidityExceedsIssued verifies burning more than was ever
// minted is rejected
func (s *KeeperTestSuite) TestRemoveLiquidityExceedsIssued() {
	minted := s.addLiquidity(100_000, 100_000)

	_, _, err := s.keeper.RemoveLiquidity(s.ctx, s.provider, minted+1,
		types.DepositProof{Sender: s.provider.String(), TxID: "BURN"})
	s.Require().ErrorIs(err, types.ErrInsufficientSupply)
}

// TestRoundTripNeverProfits verifies an add followed by a full burn of the
// minted units never pays out more than was deposited
func (s *KeeperTestSuite) TestRoundTripNeverProfits() {
	s.addLiquidity(100_000, 100_000)

	cases := []struct{ primary, secondary uint64 }{
		{1000, 1000},
		{777, 333},
		{1, 99_999},
		{12_345, 6789},
	}
	for _, tc := range cases {
		minted := s.addLiquidity(tc.primary, tc.secondary)
		if minted == 0 {
			continue
		}
		primaryOut, secondaryOut, err := s.keeper.RemoveLiquidity(s.ctx, s.provider, minted,
			types.DepositProof{Sender: s.provider.String(), TxID: "BURN"})
		s.Require().NoError(err)
		s.LessOrEqual(primaryOut, tc.primary)
		s.LessOrEqual(secondaryOut, tc.secondary)
	}
}

// TestLifecycleFlagBlocksDeposits verifies a shutdown-scheduled pool
// refuses new liquidity but still honors withdrawals
func (s *KeeperTestSuite) TestLifecycleFlagBlocksDeposits() {
	minted := s.addLiquidity(100_000, 100_000)

	s.Require().NoError(s.keeper.UpdateLifecycleFlag(s.ctx, s.admin, true))

	_, err := s.keeper.AddLiquidity(s.ctx, s.provider, 1000, 1000,
		types.DepositProof{Sender: s.provider.String(), TxID: "P"},
		types.DepositProof{Sender: s.provider.String(), TxID: "S"},
	)
	s.Require().ErrorIs(err, types.ErrPoolShutdown)

	_, _, err = s.keeper.RemoveLiquidity(s.ctx, s.provider, minted,
		types.DepositProof{Sender: s.provider.String(), TxID: "BURN"})
	s.Require().NoError(err)
}
