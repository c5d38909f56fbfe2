package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// GetTxCmd returns the transaction commands for the limit order module
func GetTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Limit order transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		CmdSubmitOrder(),
		CmdCancelOrder(),
		CmdExecuteOrder(),
	)

	return txCmd
}

// CmdSubmitOrder returns a CLI command handler for submitting a new limit order
func CmdSubmitOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-order [offer-amount] [offer-asset] [ask-amount] [ask-asset] [fee-amount]",
		Short: "Submit a new limit order",
		Long: `Submit a limit order that escrows the offer asset and the execution fee.

Assets are given either as a native denom or as a bech32 token address.
Native offers must be attached with --funds; token offers require a prior
allowance for the module account.

Examples:
  $ pawd tx limitorder submit-order 500 uusd 480 paw1tokenaddr... 100 --funds 500uusd --from mykey
  $ pawd tx limitorder submit-order 1000 paw1tokenaddr... 2000 uusd 100 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			offerAmount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid offer-amount: %s (must be integer)", args[0])
			}

			offerInfo, err := parseAssetInfo(args[1])
			if err != nil {
				return fmt.Errorf("invalid offer-asset: %w", err)
			}

			askAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid ask-amount: %s (must be integer)", args[2])
			}

			askInfo, err := parseAssetInfo(args[3])
			if err != nil {
				return fmt.Errorf("invalid ask-asset: %w", err)
			}

			feeAmount, ok := math.NewIntFromString(args[4])
			if !ok {
				return fmt.Errorf("invalid fee-amount: %s (must be integer)", args[4])
			}

			fundsStr, err := cmd.Flags().GetString(FlagFunds)
			if err != nil {
				return err
			}

			funds := sdk.NewCoins()
			if fundsStr != "" {
				funds, err = sdk.ParseCoinsNormalized(fundsStr)
				if err != nil {
					return fmt.Errorf("invalid funds: %w", err)
				}
			}

			msg := types.NewMsgSubmitOrder(
				clientCtx.GetFromAddress().String(),
				types.NewAsset(offerInfo, offerAmount),
				types.NewAsset(askInfo, askAmount),
				feeAmount,
				funds,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagFunds, "", "Coins attached to back a native offer asset (e.g. 500uusd)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCancelOrder returns a CLI command handler for cancelling an open order
func CmdCancelOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-order [order-id]",
		Short: "Cancel an open limit order",
		Long: `Cancel a limit order that you previously submitted.

Only the order owner can cancel. The escrowed offer asset and fee are
refunded in full.

Example:
  $ pawd tx limitorder cancel-order 123 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			orderID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order ID: %w", err)
			}

			msg := types.NewMsgCancelOrder(clientCtx.GetFromAddress().String(), orderID)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdExecuteOrder returns a CLI command handler for executing an open order
func CmdExecuteOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute-order [order-id]",
		Short: "Execute an open limit order against its venue",
		Long: `Execute an open limit order by routing its offer through the pinned
exchange pair. Anyone may execute; the executor keeps the fee and any
return above the ask amount. Execution fails if the venue would return
less than the ask amount.

Example:
  $ pawd tx limitorder execute-order 123 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			orderID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order ID: %w", err)
			}

			msg := types.NewMsgExecuteOrder(clientCtx.GetFromAddress().String(), orderID)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// parseAssetInfo reads an asset reference given either as a bech32 token
// address or as a native denom.
func parseAssetInfo(s string) (types.AssetInfo, error) {
	if _, err := sdk.AccAddressFromBech32(s); err == nil {
		return types.TokenInfo(s), nil
	}

	if err := sdk.ValidateDenom(s); err != nil {
		return types.AssetInfo{}, fmt.Errorf("%q is neither a token address nor a denom: %w", s, err)
	}

	return types.NativeInfo(s), nil
}
