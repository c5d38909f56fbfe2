package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the subset of the bank keeper the module needs for native
// coin custody: escrow in and out of the module account plus the balance
// reads backing the escrow invariant.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// TokenKeeper is the expected interface of the contract-token transfer
// primitives. Transfer moves a token balance held by sender; TransferFrom
// spends an allowance the owner granted in advance. Both fail on
// insufficient balance or allowance.
type TokenKeeper interface {
	Transfer(ctx context.Context, token string, sender, recipient sdk.AccAddress, amount sdkmath.Int) error
	TransferFrom(ctx context.Context, token string, owner, recipient sdk.AccAddress, amount sdkmath.Int) error
	GetBalance(ctx context.Context, token string, addr sdk.AccAddress) sdkmath.Int
}

// ExchangeKeeper is the expected interface of the external exchange venue.
// ResolvePair consults the registry for the pair trading the two assets,
// Simulate prices a swap without executing it, and Swap executes one with
// the proceeds credited to the trader.
type ExchangeKeeper interface {
	ResolvePair(ctx context.Context, registry string, a, b AssetInfo) (string, error)
	Simulate(ctx context.Context, pairAddr string, offer Asset) (sdkmath.Int, error)
	Swap(ctx context.Context, pairAddr string, trader sdk.AccAddress, offer Asset) error
}
