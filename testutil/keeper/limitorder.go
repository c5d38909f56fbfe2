package keeper

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/limitorder/x/limitorder/keeper"
	"github.com/paw-chain/limitorder/x/limitorder/types"
)

// TestAddress derives a deterministic bech32 account address from a label.
func TestAddress(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}

// Fakes bundles the stand-in dependency keepers a test fixture wires into
// the limit order keeper.
type Fakes struct {
	Bank     *FakeBankKeeper
	Token    *FakeTokenKeeper
	Exchange *FakeExchangeKeeper
}

// LimitOrderKeeper creates a test keeper for the limit order module backed
// by an in-memory store and fake dependency keepers. The fakes keep their
// balances in dedicated stores of the same multistore, so a branched
// context discards their writes together with the module's own, the way a
// real bank keeper's would be.
func LimitOrderKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *Fakes) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	bankKey := storetypes.NewKVStoreKey("testbank")
	tokenKey := storetypes.NewKVStoreKey("testtoken")

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(tokenKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := &FakeBankKeeper{key: bankKey}
	token := &FakeTokenKeeper{key: tokenKey}
	exchange := NewFakeExchangeKeeper(bank, token)

	k := keeper.NewKeeper(cdc, storeKey, bank, token, exchange)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return k, ctx, &Fakes{Bank: bank, Token: token, Exchange: exchange}
}

func getAmount(store storetypes.KVStore, key string) math.Int {
	bz := store.Get([]byte(key))
	if bz == nil {
		return math.ZeroInt()
	}
	amount, ok := math.NewIntFromString(string(bz))
	if !ok {
		panic(fmt.Sprintf("corrupt test balance %q at %s", bz, key))
	}
	return amount
}

func setAmount(store storetypes.KVStore, key string, amount math.Int) {
	store.Set([]byte(key), []byte(amount.String()))
}

// FakeBankKeeper keeps native coin balances in its own store. Module names
// resolve to their auth module address, the way the real bank keeper
// credits them.
type FakeBankKeeper struct {
	key *storetypes.KVStoreKey
}

func (f *FakeBankKeeper) store(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(f.key)
}

func balanceKey(addr sdk.AccAddress, denom string) string {
	return addr.String() + "/" + denom
}

// SetBalance overwrites an account's balance of one denom.
func (f *FakeBankKeeper) SetBalance(ctx context.Context, addr sdk.AccAddress, coin sdk.Coin) {
	setAmount(f.store(ctx), balanceKey(addr, coin.Denom), coin.Amount)
}

func (f *FakeBankKeeper) move(ctx context.Context, sender, recipient sdk.AccAddress, amt sdk.Coins) error {
	store := f.store(ctx)
	for _, coin := range amt {
		senderBal := getAmount(store, balanceKey(sender, coin.Denom))
		if senderBal.LT(coin.Amount) {
			return fmt.Errorf("insufficient funds: %s has %s%s, needs %s", sender, senderBal, coin.Denom, coin)
		}
		setAmount(store, balanceKey(sender, coin.Denom), senderBal.Sub(coin.Amount))
		recipientBal := getAmount(store, balanceKey(recipient, coin.Denom))
		setAmount(store, balanceKey(recipient, coin.Denom), recipientBal.Add(coin.Amount))
	}
	return nil
}

func (f *FakeBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return f.move(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (f *FakeBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return f.move(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

func (f *FakeBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, getAmount(f.store(ctx), balanceKey(addr, denom)))
}

// FakeTokenKeeper keeps contract-token balances and module allowances in
// its own store. TransferFrom spends an allowance granted with SetAllowance.
type FakeTokenKeeper struct {
	key *storetypes.KVStoreKey
}

func (f *FakeTokenKeeper) store(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(f.key)
}

func tokenBalanceKey(token string, addr sdk.AccAddress) string {
	return "balance/" + token + "/" + addr.String()
}

func tokenAllowanceKey(token string, owner sdk.AccAddress) string {
	return "allowance/" + token + "/" + owner.String()
}

// SetBalance overwrites an account's balance of one token.
func (f *FakeTokenKeeper) SetBalance(ctx context.Context, token string, addr sdk.AccAddress, amount math.Int) {
	setAmount(f.store(ctx), tokenBalanceKey(token, addr), amount)
}

// SetAllowance grants a spend allowance on the owner's token balance.
func (f *FakeTokenKeeper) SetAllowance(ctx context.Context, token string, owner sdk.AccAddress, amount math.Int) {
	setAmount(f.store(ctx), tokenAllowanceKey(token, owner), amount)
}

func (f *FakeTokenKeeper) move(ctx context.Context, token string, sender, recipient sdk.AccAddress, amount math.Int) error {
	store := f.store(ctx)
	bal := getAmount(store, tokenBalanceKey(token, sender))
	if bal.LT(amount) {
		return fmt.Errorf("insufficient %s balance: %s has %s, needs %s", token, sender, bal, amount)
	}
	setAmount(store, tokenBalanceKey(token, sender), bal.Sub(amount))
	recipientBal := getAmount(store, tokenBalanceKey(token, recipient))
	setAmount(store, tokenBalanceKey(token, recipient), recipientBal.Add(amount))
	return nil
}

func (f *FakeTokenKeeper) Transfer(ctx context.Context, token string, sender, recipient sdk.AccAddress, amount math.Int) error {
	return f.move(ctx, token, sender, recipient, amount)
}

func (f *FakeTokenKeeper) TransferFrom(ctx context.Context, token string, owner, recipient sdk.AccAddress, amount math.Int) error {
	store := f.store(ctx)
	allowance := getAmount(store, tokenAllowanceKey(token, owner))
	if allowance.LT(amount) {
		return fmt.Errorf("insufficient %s allowance for %s", token, owner)
	}
	if err := f.move(ctx, token, owner, recipient, amount); err != nil {
		return err
	}
	setAmount(store, tokenAllowanceKey(token, owner), allowance.Sub(amount))
	return nil
}

func (f *FakeTokenKeeper) GetBalance(ctx context.Context, token string, addr sdk.AccAddress) math.Int {
	return getAmount(f.store(ctx), tokenBalanceKey(token, addr))
}

// pairQuote is the scripted outcome of routing through one pair: the asset
// credited back to the trader.
type pairQuote struct {
	returnInfo types.AssetInfo
	returnAmt  math.Int
}

// FakeExchangeKeeper scripts an exchange venue. Pairs are registered per
// registry with SetPair, and each pair returns a fixed amount set with
// SetReturn. Swap settles against the fake bank and token keepers so the
// trader's balances move the way a real venue's would.
type FakeExchangeKeeper struct {
	bank  *FakeBankKeeper
	token *FakeTokenKeeper

	pairs  map[string]string // registry+assets -> pair address
	quotes map[string]pairQuote

	SimulateErr error
	SwapErr     error
}

func NewFakeExchangeKeeper(bank *FakeBankKeeper, token *FakeTokenKeeper) *FakeExchangeKeeper {
	return &FakeExchangeKeeper{
		bank:   bank,
		token:  token,
		pairs:  make(map[string]string),
		quotes: make(map[string]pairQuote),
	}
}

func pairKey(registry string, a, b types.AssetInfo) string {
	infos := []string{a.String(), b.String()}
	sort.Strings(infos)
	return registry + "|" + infos[0] + "|" + infos[1]
}

// SetPair registers a pair for an unordered asset pair under a registry.
func (f *FakeExchangeKeeper) SetPair(registry string, a, b types.AssetInfo, pairAddr string) {
	f.pairs[pairKey(registry, a, b)] = pairAddr
}

// SetReturn scripts the amount and asset a swap through pairAddr yields.
func (f *FakeExchangeKeeper) SetReturn(pairAddr string, returnInfo types.AssetInfo, amount math.Int) {
	f.quotes[pairAddr] = pairQuote{returnInfo: returnInfo, returnAmt: amount}
}

func (f *FakeExchangeKeeper) ResolvePair(_ context.Context, registry string, a, b types.AssetInfo) (string, error) {
	pairAddr, ok := f.pairs[pairKey(registry, a, b)]
	if !ok {
		return "", fmt.Errorf("no pair for %s/%s in registry %s", a, b, registry)
	}
	return pairAddr, nil
}

func (f *FakeExchangeKeeper) Simulate(_ context.Context, pairAddr string, _ types.Asset) (math.Int, error) {
	if f.SimulateErr != nil {
		return math.Int{}, f.SimulateErr
	}
	quote, ok := f.quotes[pairAddr]
	if !ok {
		return math.Int{}, fmt.Errorf("no quote for pair %s", pairAddr)
	}
	return quote.returnAmt, nil
}

func (f *FakeExchangeKeeper) Swap(ctx context.Context, pairAddr string, trader sdk.AccAddress, offer types.Asset) error {
	if f.SwapErr != nil {
		return f.SwapErr
	}
	quote, ok := f.quotes[pairAddr]
	if !ok {
		return fmt.Errorf("no quote for pair %s", pairAddr)
	}

	pairAccount := TestAddress(pairAddr)

	// take the offer from the trader
	if offer.Info.IsNative() {
		coins := sdk.NewCoins(sdk.NewCoin(offer.Info.Denom, offer.Amount))
		if err := f.bank.move(ctx, trader, pairAccount, coins); err != nil {
			return err
		}
	} else {
		if err := f.token.move(ctx, offer.Info.Token, trader, pairAccount, offer.Amount); err != nil {
			return err
		}
	}

	// credit the scripted return
	if quote.returnInfo.IsNative() {
		current := f.bank.GetBalance(ctx, trader, quote.returnInfo.Denom).Amount
		f.bank.SetBalance(ctx, trader, sdk.NewCoin(quote.returnInfo.Denom, current.Add(quote.returnAmt)))
	} else {
		current := f.token.GetBalance(ctx, quote.returnInfo.Token, trader)
		f.token.SetBalance(ctx, quote.returnInfo.Token, trader, current.Add(quote.returnAmt))
	}
	return nil
}
