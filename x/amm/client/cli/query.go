package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/DeFruit/micro-amm-contract/x/amm/keeper"
	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryPoolState(),
		GetCmdQueryParams(),
		GetCmdQueryQuoteSwap(),
	)

	return ammQueryCmd
}

// queryPoolState fetches and decodes the raw pool record. The module has no
// generated query service, so the commands read the store directly.
func queryPoolState(clientCtx client.Context) (types.PoolState, error) {
	bz, _, err := clientCtx.QueryStore(types.PoolStateKey, types.StoreKey)
	if err != nil {
		return types.PoolState{}, err
	}
	if bz == nil {
		return types.PoolState{}, types.ErrNotInitialized.Wrap("no pool record on chain")
	}

	var pool types.PoolState
	if err := clientCtx.LegacyAmino.UnmarshalJSON(bz, &pool); err != nil {
		return types.PoolState{}, fmt.Errorf("decode pool state: %w", err)
	}
	return pool, nil
}

func printJSON(clientCtx client.Context, v interface{}) error {
	bz, err := clientCtx.LegacyAmino.MarshalJSONIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return clientCtx.PrintString(string(bz) + "\n")
}

// GetCmdQueryPoolState returns the command to query the pool record
func GetCmdQueryPoolState() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-state",
		Short: "Query the pool record with derived figures",
		Long: `Query the full pool record: asset pair, reserves, fee configuration,
issued LP units and the cached constant-product invariant.

Example:
  $ ammd query amm pool-state`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pool, err := queryPoolState(clientCtx)
			if err != nil {
				return err
			}

			return printJSON(clientCtx, types.QueryPoolStateResponse{
				Pool:          pool,
				IssuedLPUnits: pool.IssuedLPUnits(),
				KInvariant:    pool.KInvariant,
			})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ParamsKey, types.StoreKey)
			if err != nil {
				return err
			}

			params := types.DefaultParams()
			if bz != nil {
				if err := clientCtx.LegacyAmino.UnmarshalJSON(bz, &params); err != nil {
					return fmt.Errorf("decode params: %w", err)
				}
			}

			return printJSON(clientCtx, types.QueryParamsResponse{Params: params})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryQuoteSwap returns the command to price a swap without executing
func GetCmdQueryQuoteSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote-swap [direction] [input-amount]",
		Short: "Price a swap against current reserves without executing it",
		Long: `Simulate a swap. Direction is "primary-to-secondary" or
"secondary-to-primary". The quote applies the current fee configuration
and floor arithmetic, so it matches what an executed swap would pay.

Example:
  $ ammd query amm quote-swap primary-to-secondary 1000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			direction, err := parseDirection(args[0])
			if err != nil {
				return err
			}
			inputAmount, err := parseUint(args[1], "input-amount")
			if err != nil {
				return err
			}

			pool, err := queryPoolState(clientCtx)
			if err != nil {
				return err
			}

			res, _, _, err := keeper.QuotePoolSwap(pool, inputAmount, direction)
			if err != nil {
				return err
			}

			return printJSON(clientCtx, types.QueryQuoteSwapResponse{Result: res})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
