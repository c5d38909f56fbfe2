package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// GetQueryCmd returns the cli query commands for the limit order module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the limit order module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		GetCmdQueryConfig(),
		GetCmdQueryOrder(),
		GetCmdQueryOrders(),
		GetCmdQueryLastOrderID(),
	)

	return queryCmd
}

// GetCmdQueryConfig returns the command to query the module configuration
func GetCmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Query the limit order module configuration",
		Long: `Query the fee token, minimum fee, and exchange registry used by the
limit order module.

Example:
  $ pawd query limitorder config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Config(context.Background(), &types.QueryConfigRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOrder returns the command to query a single order by id
func GetCmdQueryOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [order-id]",
		Short: "Query an open limit order by ID",
		Long: `Query an open limit order by its ID.

Example:
  $ pawd query limitorder order 123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			orderID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order ID: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Order(context.Background(), &types.QueryOrderRequest{
				OrderID: orderID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryOrders returns the command to list open orders
func GetCmdQueryOrders() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Query open limit orders",
		Long: `Query open limit orders, newest first by default.

The listing can be scoped to one bidder and paged with an exclusive
start-after cursor. The limit defaults to 10 and is capped at 30.

Examples:
  $ pawd query limitorder orders
  $ pawd query limitorder orders --bidder paw1... --limit 30
  $ pawd query limitorder orders --order-by asc --start-after 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			req := &types.QueryOrdersRequest{}

			bidder, err := cmd.Flags().GetString(FlagBidder)
			if err != nil {
				return err
			}
			if bidder != "" {
				if _, err := sdk.AccAddressFromBech32(bidder); err != nil {
					return fmt.Errorf("invalid bidder address: %w", err)
				}
				req.BidderAddr = bidder
			}

			if cmd.Flags().Changed(FlagStartAfter) {
				startAfter, err := cmd.Flags().GetUint64(FlagStartAfter)
				if err != nil {
					return err
				}
				req.StartAfter = &startAfter
			}

			if cmd.Flags().Changed(FlagLimit) {
				limit, err := cmd.Flags().GetUint32(FlagLimit)
				if err != nil {
					return err
				}
				req.Limit = &limit
			}

			orderBy, err := cmd.Flags().GetString(FlagOrderBy)
			if err != nil {
				return err
			}
			switch orderBy {
			case "", string(types.OrderByDesc):
				req.OrderBy = types.OrderByDesc
			case string(types.OrderByAsc):
				req.OrderBy = types.OrderByAsc
			default:
				return fmt.Errorf("invalid order-by: %s (must be asc or desc)", orderBy)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Orders(context.Background(), req)
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	cmd.Flags().String(FlagBidder, "", "List only orders owned by this address")
	cmd.Flags().Uint64(FlagStartAfter, 0, "Exclusive order ID cursor to resume a listing")
	cmd.Flags().Uint32(FlagLimit, 0, "Maximum number of orders to return (default 10, max 30)")
	cmd.Flags().String(FlagOrderBy, "", "Listing direction: asc or desc (default desc)")
	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryLastOrderID returns the command to query the last assigned order id
func GetCmdQueryLastOrderID() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last-order-id",
		Short: "Query the last assigned order ID",
		Long: `Query the last order ID handed out by the module. IDs are assigned
sequentially and never reused.

Example:
  $ pawd query limitorder last-order-id`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.LastOrderID(context.Background(), &types.QueryLastOrderIDRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
