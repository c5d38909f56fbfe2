package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "limitorder"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes. The layout mirrors the ledger namespaces the module
// owns: a config singleton, the id counter, the primary order table keyed by
// big-endian order id, and a per-owner presence index.
var (
	ConfigKey             = []byte("config")
	LastOrderIDKey        = []byte("last_order_id")
	OrderKeyPrefix        = []byte("orders/")
	OrderByOwnerPrefix    = []byte("orders_by_user/")
	orderByOwnerSeparator = []byte("/")
)

// OrderKey returns the primary store key for an order
func OrderKey(orderID uint64) []byte {
	return append(OrderKeyPrefix, sdk.Uint64ToBigEndian(orderID)...)
}

// OrderByOwnerIndexPrefix returns the index prefix covering a single owner's orders
func OrderByOwnerIndexPrefix(owner sdk.AccAddress) []byte {
	key := append(OrderByOwnerPrefix, owner.Bytes()...)
	return append(key, orderByOwnerSeparator...)
}

// OrderByOwnerKey returns the secondary index key for an order
func OrderByOwnerKey(owner sdk.AccAddress, orderID uint64) []byte {
	return append(OrderByOwnerIndexPrefix(owner), sdk.Uint64ToBigEndian(orderID)...)
}
