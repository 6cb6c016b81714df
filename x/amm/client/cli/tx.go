package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/DeFruit/micro-amm-contract/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdInitialize(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwap(),
		CmdUpdateSwapFee(),
		CmdUpdateProtocolFee(),
		CmdUpdateAdmin(),
		CmdUpdateTreasury(),
		CmdUpdateMinimumBalance(),
		CmdUpdateLifecycleFlag(),
	)

	return ammTxCmd
}

// parseAsset accepts "native" or a numeric token identifier
func parseAsset(arg string) (types.Asset, error) {
	if arg == "native" {
		return types.NativeAsset(), nil
	}
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return types.Asset{}, fmt.Errorf("invalid asset %q: expected \"native\" or a token id", arg)
	}
	return types.TokenAsset(id), nil
}

func parseUint(arg, name string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s (must be a non-negative integer)", name, arg)
	}
	return v, nil
}

// proof builds a deposit reference with the broadcasting account as sender
func proof(clientCtx client.Context, txID string) types.DepositProof {
	return types.DepositProof{
		Sender: clientCtx.GetFromAddress().String(),
		TxID:   txID,
	}
}

// CmdInitialize returns a CLI command handler for activating the pool
func CmdInitialize() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize [primary-asset] [secondary-asset] [lp-name] [swap-fee-bps] [protocol-fee-bps] [treasury] [funding-tx-id]",
		Short: "Activate the pool with its asset pair and fee configuration",
		Long: `Activate the pool. Assets are "native" or a numeric token id; the pair
must contain at most one native side. The funding tx id references the native
deposit covering the pool's minimum balance requirements.

Example:
  $ ammd tx amm initialize native 31566704 "PACT-LP" 30 5 paw1treasury... FUND123 --from admin`,
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			primary, err := parseAsset(args[0])
			if err != nil {
				return err
			}
			secondary, err := parseAsset(args[1])
			if err != nil {
				return err
			}
			swapFee, err := parseUint(args[3], "swap-fee-bps")
			if err != nil {
				return err
			}
			protocolFee, err := parseUint(args[4], "protocol-fee-bps")
			if err != nil {
				return err
			}

			lpURL, err := cmd.Flags().GetString(flagLpURL)
			if err != nil {
				return err
			}

			msg := types.NewMsgInitialize(
				clientCtx.GetFromAddress().String(),
				primary, secondary,
				args[2], lpURL,
				swapFee, protocolFee,
				args[5],
				proof(clientCtx, args[6]),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagLpURL, "https://pact.fi", "metadata URL stamped on the LP claim token")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for paired deposits
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [primary-amount] [secondary-amount] [primary-tx-id] [secondary-tx-id]",
		Short: "Deposit both assets and mint LP units",
		Long: `Deposit both pool assets. LP units minted follow the current reserve
ratio; deposits off-ratio mint by the smaller side.

Example:
  $ ammd tx amm add-liquidity 100000 100000 TXA TXB --from provider`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			primaryAmount, err := parseUint(args[0], "primary-amount")
			if err != nil {
				return err
			}
			secondaryAmount, err := parseUint(args[1], "secondary-amount")
			if err != nil {
				return err
			}

			msg := types.NewMsgAddLiquidity(
				clientCtx.GetFromAddress().String(),
				primaryAmount, secondaryAmount,
				proof(clientCtx, args[2]),
				proof(clientCtx, args[3]),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for LP burns
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [lp-units] [lp-tx-id]",
		Short: "Burn LP units for a proportional share of both reserves",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			lpUnits, err := parseUint(args[0], "lp-units")
			if err != nil {
				return err
			}
			if lpUnits == 0 {
				return fmt.Errorf("lp-units must be positive")
			}

			msg := types.NewMsgRemoveLiquidity(
				clientCtx.GetFromAddress().String(),
				lpUnits,
				proof(clientCtx, args[1]),
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwap returns a CLI command handler for trades
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [direction] [input-amount]",
		Short: "Trade one pool asset for the other",
		Long: `Trade against the pool. Direction is "primary-to-secondary" or
"secondary-to-primary".

Example:
  $ ammd tx amm swap primary-to-secondary 1000 --from trader`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
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
			if inputAmount == 0 {
				return fmt.Errorf("input-amount must be positive")
			}

			msg := types.NewMsgSwap(clientCtx.GetFromAddress().String(), inputAmount, direction)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func parseDirection(arg string) (types.SwapDirection, error) {
	switch arg {
	case "primary-to-secondary":
		return types.PrimaryToSecondary, nil
	case "secondary-to-primary":
		return types.SecondaryToPrimary, nil
	default:
		return 0, fmt.Errorf("invalid direction %q: expected primary-to-secondary or secondary-to-primary", arg)
	}
}

// CmdUpdateSwapFee returns a CLI command handler for swap fee updates
func CmdUpdateSwapFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-swap-fee [fee-bps]",
		Short: "Set the total swap fee in basis points (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeBps, err := parseUint(args[0], "fee-bps")
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateSwapFee{
				Admin:      clientCtx.GetFromAddress().String(),
				SwapFeeBps: feeBps,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateProtocolFee returns a CLI command handler for protocol fee updates
func CmdUpdateProtocolFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-protocol-fee [fee-bps]",
		Short: "Set the protocol's share of the swap fee in basis points (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			feeBps, err := parseUint(args[0], "fee-bps")
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateProtocolFee{
				Admin:          clientCtx.GetFromAddress().String(),
				ProtocolFeeBps: feeBps,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateAdmin returns a CLI command handler for admin rotation
func CmdUpdateAdmin() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-admin [new-admin]",
		Short: "Hand pool administration to another account (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateAdmin{
				Admin:    clientCtx.GetFromAddress().String(),
				NewAdmin: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateTreasury returns a CLI command handler for treasury rotation
func CmdUpdateTreasury() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-treasury [new-treasury]",
		Short: "Redirect protocol fees to another account (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateTreasury{
				Admin:       clientCtx.GetFromAddress().String(),
				NewTreasury: args[0],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateMinimumBalance returns a CLI command handler for the minimum
// balance bookkeeping field
func CmdUpdateMinimumBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-minimum-balance [amount]",
		Short: "Record the native amount reserved for minimum balances (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, err := parseUint(args[0], "amount")
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateMinimumBalance{
				Admin:          clientCtx.GetFromAddress().String(),
				MinimumBalance: amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateLifecycleFlag returns a CLI command handler for shutdown scheduling
func CmdUpdateLifecycleFlag() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-lifecycle-flag [true|false]",
		Short: "Schedule or cancel pool shutdown (admin only)",
		Long: `Set the pool's lifecycle flag. While the flag is raised, deposits and
swaps are refused; liquidity removal stays open so providers can exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			flag, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid flag %q: expected true or false", args[0])
			}

			msg := &types.MsgUpdateLifecycleFlag{
				Admin: clientCtx.GetFromAddress().String(),
				Flag:  flag,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
