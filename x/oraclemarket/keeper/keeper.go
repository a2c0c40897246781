package keeper

import (
	"context"
	"errors"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"cosmossdk.io/collections"
	storetypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollchains/oraclemarket/x/oraclemarket/types"
)

type Keeper struct {
	logger log.Logger

	// state management
	Config    collections.Item[types.MarketConfig]
	Balances  collections.Map[string, types.BalanceRecord]
	Counters  collections.Map[collections.Pair[string, string], uint64]
	Proposals collections.Map[collections.Triple[string, string, uint64], types.Proposal]
	Instances collections.Map[collections.Triple[string, string, uint64], common.Address]

	// keepers
	ledgerKeeper types.LedgerKeeper
	factory      types.OracleFactory

	authority string
}

var slotKeyCodec = collections.TripleKeyCodec(collections.StringKey, collections.StringKey, collections.Uint64Key)

// NewKeeper creates a new Keeper instance
func NewKeeper(
	storeService storetypes.KVStoreService,
	logger log.Logger,
	authority string,
	ledgerKeeper types.LedgerKeeper,
	factory types.OracleFactory,
) Keeper {
	logger = logger.With(log.ModuleKey, "x/"+types.ModuleName)

	sb := collections.NewSchemaBuilder(storeService)

	if authority == "" {
		authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	}

	k := Keeper{
		logger: logger,

		Config:    collections.NewItem(sb, types.ConfigKey, types.ConfigName, types.JSONValue[types.MarketConfig](types.ConfigName)),
		Balances:  collections.NewMap(sb, types.BalancesKey, types.BalancesName, collections.StringKey, types.JSONValue[types.BalanceRecord](types.BalancesName)),
		Counters:  collections.NewMap(sb, types.CountersKey, types.CountersName, collections.PairKeyCodec(collections.StringKey, collections.StringKey), collections.Uint64Value),
		Proposals: collections.NewMap(sb, types.ProposalsKey, types.ProposalsName, slotKeyCodec, types.JSONValue[types.Proposal](types.ProposalsName)),
		Instances: collections.NewMap(sb, types.InstancesKey, types.InstancesName, slotKeyCodec, types.JSONValue[common.Address](types.InstancesName)),

		ledgerKeeper: ledgerKeeper,
		factory:      factory,

		authority: authority,
	}

	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetConfig returns the current market configuration.
func (k Keeper) GetConfig(ctx context.Context) (types.MarketConfig, error) {
	return k.Config.Get(ctx)
}

// CurrentIndex returns the next slot index to be used for the pair,
// starting at 0.
func (k Keeper) CurrentIndex(ctx context.Context, maker, taker string) (uint64, error) {
	index, err := k.Counters.Get(ctx, collections.Join(maker, taker))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return index, nil
}

// advanceIndex retires the pair's current slot index. Called exactly once per
// successful deployment.
func (k Keeper) advanceIndex(ctx context.Context, maker, taker string) error {
	index, err := k.CurrentIndex(ctx, maker, taker)
	if err != nil {
		return err
	}
	return k.Counters.Set(ctx, collections.Join(maker, taker), index+1)
}

// GetProposal returns the proposal stored at the slot, if any.
func (k Keeper) GetProposal(ctx context.Context, maker, taker string, index uint64) (types.Proposal, error) {
	return k.Proposals.Get(ctx, collections.Join3(maker, taker, index))
}

// GetInstance returns the deployed instance reference at the slot.
func (k Keeper) GetInstance(ctx context.Context, maker, taker string, index uint64) (common.Address, error) {
	return k.Instances.Get(ctx, collections.Join3(maker, taker, index))
}

// HasInstance reports whether an instance has been deployed at the slot.
func (k Keeper) HasInstance(ctx context.Context, maker, taker string, index uint64) (bool, error) {
	return k.Instances.Has(ctx, collections.Join3(maker, taker, index))
}
