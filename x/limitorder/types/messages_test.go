package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

func validSubmitOrder() *types.MsgSubmitOrder {
	return types.NewMsgSubmitOrder(
		testAddr("bidder"),
		types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500)),
		types.NewAsset(types.TokenInfo(testAddr("ask_token")), math.NewInt(480)),
		math.NewInt(100),
		sdk.NewCoins(sdk.NewInt64Coin("uusd", 500)),
	)
}

func TestMsgSubmitOrderValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(msg *types.MsgSubmitOrder)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(msg *types.MsgSubmitOrder) {},
		},
		{
			name:    "invalid sender",
			mutate:  func(msg *types.MsgSubmitOrder) { msg.Sender = "notanaddress" },
			wantErr: true,
		},
		{
			name: "zero offer amount",
			mutate: func(msg *types.MsgSubmitOrder) {
				msg.OfferAsset.Amount = math.ZeroInt()
			},
			wantErr: true,
		},
		{
			name: "zero ask amount",
			mutate: func(msg *types.MsgSubmitOrder) {
				msg.AskAsset.Amount = math.ZeroInt()
			},
			wantErr: true,
		},
		{
			name: "same asset on both sides",
			mutate: func(msg *types.MsgSubmitOrder) {
				msg.AskAsset.Info = msg.OfferAsset.Info
			},
			wantErr: true,
		},
		{
			name: "negative fee",
			mutate: func(msg *types.MsgSubmitOrder) {
				msg.FeeAmount = math.NewInt(-1)
			},
			wantErr: true,
		},
		{
			name: "zero fee is allowed",
			mutate: func(msg *types.MsgSubmitOrder) {
				msg.FeeAmount = math.ZeroInt()
			},
		},
		{
			name: "invalid offer info",
			mutate: func(msg *types.MsgSubmitOrder) {
				msg.OfferAsset.Info = types.AssetInfo{}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validSubmitOrder()
			tt.mutate(msg)
			err := msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgSubmitOrderSigners(t *testing.T) {
	msg := validSubmitOrder()
	signers := msg.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, msg.Sender, signers[0].String())

	require.Equal(t, types.RouterKey, msg.Route())
	require.Equal(t, "submit_order", msg.Type())
	require.NotEmpty(t, msg.GetSignBytes())
}

func TestMsgCancelOrderValidateBasic(t *testing.T) {
	valid := types.NewMsgCancelOrder(testAddr("bidder"), 1)
	require.NoError(t, valid.ValidateBasic())
	require.Equal(t, "cancel_order", valid.Type())

	badSender := types.NewMsgCancelOrder("notanaddress", 1)
	require.Error(t, badSender.ValidateBasic())

	zeroID := types.NewMsgCancelOrder(testAddr("bidder"), 0)
	require.Error(t, zeroID.ValidateBasic())
}

func TestMsgExecuteOrderValidateBasic(t *testing.T) {
	valid := types.NewMsgExecuteOrder(testAddr("executor"), 1)
	require.NoError(t, valid.ValidateBasic())
	require.Equal(t, "execute_order", valid.Type())

	badSender := types.NewMsgExecuteOrder("notanaddress", 1)
	require.Error(t, badSender.ValidateBasic())

	zeroID := types.NewMsgExecuteOrder(testAddr("executor"), 0)
	require.Error(t, zeroID.ValidateBasic())
}
