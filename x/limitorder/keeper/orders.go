package keeper

import (
	"context"
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// Listing limits. A request above the maximum is clamped, not rejected.
const (
	defaultOrdersLimit = 10
	maxOrdersLimit     = 30
)

func marshalRecord(v any) ([]byte, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return nil, types.ErrInvalidOrder.Wrapf("marshal record: %v", err)
	}
	return bz, nil
}

func unmarshalRecord(bz []byte, v any) error {
	if err := json.Unmarshal(bz, v); err != nil {
		return types.ErrInvalidOrder.Wrapf("unmarshal record: %v", err)
	}
	return nil
}

// GetLastOrderID returns the id assigned to the most recent order, zero if
// none was ever assigned
func (k Keeper) GetLastOrderID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.LastOrderIDKey)
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

// SetLastOrderID writes the order id counter
func (k Keeper) SetLastOrderID(ctx context.Context, id uint64) {
	k.getStore(ctx).Set(types.LastOrderIDKey, sdk.Uint64ToBigEndian(id))
}

// StoreNewOrder assigns the next order id to the order and persists it under
// the primary key and the owner index. The counter only ever moves forward,
// so ids are never reused even after orders are removed.
func (k Keeper) StoreNewOrder(ctx context.Context, order *types.Order) error {
	newID := k.GetLastOrderID(ctx) + 1
	order.OrderID = newID

	if err := k.SetOrder(ctx, *order); err != nil {
		return err
	}
	k.SetLastOrderID(ctx, newID)
	return nil
}

// SetOrder stores an order record and its owner index entry
func (k Keeper) SetOrder(ctx context.Context, order types.Order) error {
	bidder, err := sdk.AccAddressFromBech32(order.Bidder)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("invalid bidder address: %v", err)
	}

	bz, err := marshalRecord(&order)
	if err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Set(types.OrderKey(order.OrderID), bz)
	store.Set(types.OrderByOwnerKey(bidder, order.OrderID), []byte{1})
	return nil
}

// GetOrder retrieves an order by id
func (k Keeper) GetOrder(ctx context.Context, orderID uint64) (types.Order, error) {
	bz := k.getStore(ctx).Get(types.OrderKey(orderID))
	if bz == nil {
		return types.Order{}, types.ErrOrderNotFound.Wrapf("order %d", orderID)
	}

	var order types.Order
	if err := unmarshalRecord(bz, &order); err != nil {
		return types.Order{}, err
	}
	return order, nil
}

// DeleteOrder removes an order from the primary table and the owner index.
// Presence is the only open/closed state, so both entries go together.
func (k Keeper) DeleteOrder(ctx context.Context, order types.Order) {
	store := k.getStore(ctx)
	store.Delete(types.OrderByOwnerKey(order.BidderAddr(), order.OrderID))
	store.Delete(types.OrderKey(order.OrderID))
}

// HasOrder reports whether an order with the given id is open
func (k Keeper) HasOrder(ctx context.Context, orderID uint64) bool {
	return k.getStore(ctx).Has(types.OrderKey(orderID))
}

// IterateOrders walks the whole order table in ascending id order, stopping
// early when cb returns true
func (k Keeper) IterateOrders(ctx context.Context, cb func(order types.Order) bool) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.OrderKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var order types.Order
		if err := unmarshalRecord(iterator.Value(), &order); err != nil {
			return err
		}
		if cb(order) {
			break
		}
	}
	return nil
}

// GetAllOrders returns every open order, ascending by id
func (k Keeper) GetAllOrders(ctx context.Context) ([]types.Order, error) {
	var orders []types.Order
	err := k.IterateOrders(ctx, func(order types.Order) bool {
		orders = append(orders, order)
		return false
	})
	return orders, err
}

// Orders lists open orders ordered by id. startAfter is an exclusive
// cursor: ascending listings return ids strictly greater than it,
// descending listings ids strictly less. A nil cursor starts from the
// beginning of the requested direction.
func (k Keeper) Orders(ctx context.Context, startAfter *uint64, limit *uint32, ascending bool) ([]types.Order, error) {
	iterator := rangeIterator(k.getStore(ctx), types.OrderKeyPrefix, startAfter, ascending)
	defer iterator.Close()

	max := clampOrdersLimit(limit)
	orders := make([]types.Order, 0, max)
	for ; iterator.Valid() && len(orders) < max; iterator.Next() {
		var order types.Order
		if err := unmarshalRecord(iterator.Value(), &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// OrdersByOwner lists one owner's open orders with the same cursor contract
// as Orders. The index stores presence only, so records are re-fetched from
// the primary table.
func (k Keeper) OrdersByOwner(ctx context.Context, owner sdk.AccAddress, startAfter *uint64, limit *uint32, ascending bool) ([]types.Order, error) {
	prefix := types.OrderByOwnerIndexPrefix(owner)
	iterator := rangeIterator(k.getStore(ctx), prefix, startAfter, ascending)
	defer iterator.Close()

	max := clampOrdersLimit(limit)
	orders := make([]types.Order, 0, max)
	for ; iterator.Valid() && len(orders) < max; iterator.Next() {
		orderID := sdk.BigEndianToUint64(iterator.Key()[len(prefix):])
		order, err := k.GetOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func clampOrdersLimit(limit *uint32) int {
	if limit == nil {
		return defaultOrdersLimit
	}
	if *limit > maxOrdersLimit {
		return maxOrdersLimit
	}
	return int(*limit)
}

// rangeIterator opens an iterator over the fixed-width big-endian id keys
// under prefix, bounded by the exclusive startAfter cursor in the requested
// direction.
func rangeIterator(store storetypes.KVStore, prefix []byte, startAfter *uint64, ascending bool) storetypes.Iterator {
	start := prefix
	end := storetypes.PrefixEndBytes(prefix)

	if startAfter != nil {
		cursor := append(append([]byte{}, prefix...), sdk.Uint64ToBigEndian(*startAfter)...)
		if ascending {
			// the smallest key strictly greater than the cursor
			start = append(cursor, 0)
		} else {
			// Iterator bounds are [start, end), so the cursor itself is
			// already excluded when used as the end.
			end = cursor
		}
	}

	if ascending {
		return store.Iterator(start, end)
	}
	return store.ReverseIterator(start, end)
}
