package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

func testOrder(id uint64) types.Order {
	return types.Order{
		OrderID:    id,
		Bidder:     testAddr("bidder"),
		PairAddr:   testAddr("pair"),
		OfferAsset: types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500)),
		AskAsset:   types.NewAsset(types.TokenInfo(testAddr("ask_token")), math.NewInt(480)),
		FeeAmount:  math.NewInt(100),
	}
}

func testParams() types.Params {
	return types.NewParams(testAddr("fee_token"), math.NewInt(10), testAddr("registry"))
}

func TestGenesisStateValidate(t *testing.T) {
	tests := []struct {
		name     string
		genState *types.GenesisState
		wantErr  bool
	}{
		{
			name:     "default is valid",
			genState: types.DefaultGenesis(),
		},
		{
			name:     "valid with orders",
			genState: types.NewGenesisState(testParams(), 2, []types.Order{testOrder(1), testOrder(2)}),
		},
		{
			name:     "duplicate order id",
			genState: types.NewGenesisState(testParams(), 2, []types.Order{testOrder(1), testOrder(1)}),
			wantErr:  true,
		},
		{
			name:     "order id above counter",
			genState: types.NewGenesisState(testParams(), 2, []types.Order{testOrder(3)}),
			wantErr:  true,
		},
		{
			name: "orders require valid params",
			genState: types.NewGenesisState(
				types.NewParams("", math.ZeroInt(), ""), 1, []types.Order{testOrder(1)},
			),
			wantErr: true,
		},
		{
			name: "invalid order record",
			genState: func() *types.GenesisState {
				order := testOrder(1)
				order.Bidder = "notanaddress"
				return types.NewGenesisState(testParams(), 1, []types.Order{order})
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.genState.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, testParams().Validate())

	badFeeToken := types.NewParams("notanaddress", math.NewInt(10), testAddr("registry"))
	require.Error(t, badFeeToken.Validate())

	badRegistry := types.NewParams(testAddr("fee_token"), math.NewInt(10), "notanaddress")
	require.Error(t, badRegistry.Validate())

	negativeMinFee := types.NewParams(testAddr("fee_token"), math.NewInt(-1), testAddr("registry"))
	require.Error(t, negativeMinFee.Validate())
}
