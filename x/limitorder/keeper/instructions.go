package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// dispatch executes the instruction list in order. The first failure aborts
// the whole call, and with it every state write and asset movement of the
// call, so a payout sequence either lands completely or not at all.
func (k Keeper) dispatch(ctx sdk.Context, instrs []types.Instruction) error {
	for _, instr := range instrs {
		if err := k.execInstruction(ctx, instr); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) execInstruction(ctx sdk.Context, instr types.Instruction) error {
	switch in := instr.(type) {
	case types.PullInstruction:
		if in.Asset.Info.IsNative() {
			// native escrow: the attached coins move from the sender into
			// the module account
			coins := sdk.NewCoins(sdk.NewCoin(in.Asset.Info.Denom, in.Asset.Amount))
			return k.bankKeeper.SendCoinsFromAccountToModule(ctx, in.Owner, types.ModuleName, coins)
		}
		return k.tokenKeeper.TransferFrom(ctx, in.Asset.Info.Token, in.Owner, k.ModuleAddress(), in.Asset.Amount)

	case types.TransferInstruction:
		if in.Asset.Info.IsNative() {
			coins := sdk.NewCoins(sdk.NewCoin(in.Asset.Info.Denom, in.Asset.Amount))
			return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, in.Recipient, coins)
		}
		return k.tokenKeeper.Transfer(ctx, in.Asset.Info.Token, k.ModuleAddress(), in.Recipient, in.Asset.Amount)

	case types.SwapInstruction:
		// the module trades its own escrow; proceeds come back to the
		// module account and are redistributed by the instructions that
		// follow the swap
		return k.exchangeKeeper.Swap(ctx, in.PairAddr, k.ModuleAddress(), in.Offer)

	default:
		return types.ErrInvalidOrder.Wrapf("unknown instruction type %T", instr)
	}
}
