package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's concrete message types on the legacy
// amino codec
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitOrder{}, "limitorder/MsgSubmitOrder", nil)
	cdc.RegisterConcrete(&MsgCancelOrder{}, "limitorder/MsgCancelOrder", nil)
	cdc.RegisterConcrete(&MsgExecuteOrder{}, "limitorder/MsgExecuteOrder", nil)
}

// RegisterInterfaces registers the module's message implementations with the
// interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSubmitOrder{},
		&MsgCancelOrder{},
		&MsgExecuteOrder{},
	)
}

var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
