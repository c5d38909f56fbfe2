package types

// GenesisState defines the limit order module's genesis state
type GenesisState struct {
	Params      Params  `json:"params"`
	LastOrderID uint64  `json:"last_order_id"`
	Orders      []Order `json:"orders"`
}

// NewGenesisState creates a new GenesisState instance
func NewGenesisState(params Params, lastOrderID uint64, orders []Order) *GenesisState {
	return &GenesisState{
		Params:      params,
		LastOrderID: lastOrderID,
		Orders:      orders,
	}
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		LastOrderID: 0,
		Orders:      nil,
	}
}

// Validate performs basic genesis state validation: every order must be
// internally consistent, ids must be unique and no id may exceed the
// counter (ids are never reused, so the counter bounds them all).
func (gs GenesisState) Validate() error {
	if len(gs.Orders) > 0 {
		// params are only required valid once orders exist; a default
		// genesis carries zero values until initialization
		if err := gs.Params.Validate(); err != nil {
			return err
		}
	}

	seen := make(map[uint64]struct{}, len(gs.Orders))
	for _, order := range gs.Orders {
		if err := order.Validate(); err != nil {
			return err
		}
		if _, ok := seen[order.OrderID]; ok {
			return ErrInvalidOrder.Wrapf("duplicate order id %d", order.OrderID)
		}
		if order.OrderID > gs.LastOrderID {
			return ErrInvalidOrder.Wrapf(
				"order id %d exceeds last order id %d", order.OrderID, gs.LastOrderID,
			)
		}
		seen[order.OrderID] = struct{}{}
	}
	return nil
}
