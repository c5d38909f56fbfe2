package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

func testAddr(name string) string {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz).String()
}

func TestAssetInfoValidate(t *testing.T) {
	tokenAddr := testAddr("token_contract")

	tests := []struct {
		name    string
		info    types.AssetInfo
		wantErr bool
	}{
		{
			name: "valid native",
			info: types.NativeInfo("uusd"),
		},
		{
			name: "valid token",
			info: types.TokenInfo(tokenAddr),
		},
		{
			name:    "empty",
			info:    types.AssetInfo{},
			wantErr: true,
		},
		{
			name:    "both set",
			info:    types.AssetInfo{Denom: "uusd", Token: tokenAddr},
			wantErr: true,
		},
		{
			name:    "bad denom",
			info:    types.NativeInfo("1!"),
			wantErr: true,
		},
		{
			name:    "token not bech32",
			info:    types.TokenInfo("notanaddress"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAssetInfoEqual(t *testing.T) {
	tokenAddr := testAddr("token_contract")

	require.True(t, types.NativeInfo("uusd").Equal(types.NativeInfo("uusd")))
	require.False(t, types.NativeInfo("uusd").Equal(types.NativeInfo("upaw")))
	require.True(t, types.TokenInfo(tokenAddr).Equal(types.TokenInfo(tokenAddr)))
	require.False(t, types.NativeInfo("uusd").Equal(types.TokenInfo(tokenAddr)))
}

func TestAssetValidate(t *testing.T) {
	valid := types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500))
	require.NoError(t, valid.Validate())

	negative := types.NewAsset(types.NativeInfo("uusd"), math.NewInt(-1))
	require.Error(t, negative.Validate())

	badInfo := types.NewAsset(types.AssetInfo{}, math.NewInt(500))
	require.Error(t, badInfo.Validate())
}

func TestAssetAssertAttached(t *testing.T) {
	tokenAddr := testAddr("token_contract")

	tests := []struct {
		name    string
		asset   types.Asset
		funds   sdk.Coins
		wantErr bool
	}{
		{
			name:  "native exact match",
			asset: types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500)),
			funds: sdk.NewCoins(sdk.NewInt64Coin("uusd", 500)),
		},
		{
			name:    "native nothing attached",
			asset:   types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500)),
			funds:   sdk.NewCoins(),
			wantErr: true,
		},
		{
			name:    "native too little",
			asset:   types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500)),
			funds:   sdk.NewCoins(sdk.NewInt64Coin("uusd", 499)),
			wantErr: true,
		},
		{
			name:    "native too much",
			asset:   types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500)),
			funds:   sdk.NewCoins(sdk.NewInt64Coin("uusd", 501)),
			wantErr: true,
		},
		{
			name:    "native wrong denom",
			asset:   types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500)),
			funds:   sdk.NewCoins(sdk.NewInt64Coin("upaw", 500)),
			wantErr: true,
		},
		{
			name:  "token ignores funds",
			asset: types.NewAsset(types.TokenInfo(tokenAddr), math.NewInt(500)),
			funds: sdk.NewCoins(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.asset.AssertAttached(tt.funds)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, types.ErrPaymentMismatch)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAssetString(t *testing.T) {
	tokenAddr := testAddr("token_contract")

	require.Equal(t, "500uusd", types.NewAsset(types.NativeInfo("uusd"), math.NewInt(500)).String())
	require.Equal(t, "42"+tokenAddr, types.NewAsset(types.TokenInfo(tokenAddr), math.NewInt(42)).String())
}
