package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// Keeper of the limit order store
type Keeper struct {
	storeKey       storetypes.StoreKey
	cdc            codec.BinaryCodec
	bankKeeper     types.BankKeeper
	tokenKeeper    types.TokenKeeper
	exchangeKeeper types.ExchangeKeeper
	metrics        *OrderMetrics
}

// NewKeeper creates a new limit order Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	tokenKeeper types.TokenKeeper,
	exchangeKeeper types.ExchangeKeeper,
) *Keeper {
	return &Keeper{
		storeKey:       key,
		cdc:            cdc,
		bankKeeper:     bankKeeper,
		tokenKeeper:    tokenKeeper,
		exchangeKeeper: exchangeKeeper,
		metrics:        NewOrderMetrics(),
	}
}

// getStore returns the KVStore for the limit order module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// ModuleAddress returns the module's escrow account address. It uses the
// auth module derivation so the address matches the account the bank keeper
// credits on SendCoinsFromAccountToModule.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetParams returns the module configuration from the store
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(types.ConfigKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := unmarshalRecord(bz, &params); err != nil {
		// a config record that does not decode is corrupted state; the
		// store is exclusively owned by this module, so this cannot happen
		// short of an incompatible upgrade
		panic(err)
	}
	return params
}

// SetParams writes the module configuration to the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	bz, err := marshalRecord(&params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ConfigKey, bz)
	return nil
}
