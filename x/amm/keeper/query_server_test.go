package keeper_test

import (
	"github.com/DeFruit/micro-amm-contract/x/amm/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// TestQueryPoolState verifies the pool query returns the record with
// derived figures
func (s *KeeperTestSuite) TestQueryPoolState() {
	s.addLiquidity(100_000, 100_000)
	qs := keeper.NewQueryServerImpl(s.keeper)

	res, err := qs.PoolState(s.ctx, &types.QueryPoolStateRequest{})
	s.Require().NoError(err)
	s.Equal(s.pool(), res.Pool)
	s.Equal(uint64(100_000), res.IssuedLPUnits)
	s.Equal(res.Pool.ComputeK(), res.KInvariant)
}

// TestQueryParams verifies the params query
func (s *KeeperTestSuite) TestQueryParams() {
	qs := keeper.NewQueryServerImpl(s.keeper)

	res, err := qs.Params(s.ctx, &types.QueryParamsRequest{})
	s.Require().NoError(err)
	s.Equal(types.DefaultParams(), res.Params)
}

// TestQueryQuoteSwap verifies the quote query prices without mutating
func (s *KeeperTestSuite) TestQueryQuoteSwap() {
	s.addLiquidity(100_000, 100_000)
	qs := keeper.NewQueryServerImpl(s.keeper)

	res, err := qs.QuoteSwap(s.ctx, &types.QueryQuoteSwapRequest{
		InputAmount: 1000,
		Direction:   types.PrimaryToSecondary,
	})
	s.Require().NoError(err)
	s.Equal(uint64(987), res.Result.OutputAmount)
	s.Equal(uint64(3), res.Result.TotalFee)

	// nothing committed
	s.Equal(uint64(100_000), s.pool().PrimaryReserve)
}

// TestQueryNilRequests verifies nil requests are rejected
func (s *KeeperTestSuite) TestQueryNilRequests() {
	qs := keeper.NewQueryServerImpl(s.keeper)

	_, err := qs.PoolState(s.ctx, nil)
	s.Require().Error(err)
	_, err = qs.Params(s.ctx, nil)
	s.Require().Error(err)
	_, err = qs.QuoteSwap(s.ctx, nil)
	s.Require().Error(err)
}
