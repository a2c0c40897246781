package keeper

import (
	"context"

	"cosmossdk.io/collections"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollchains/oraclemarket/x/oraclemarket/types"
)

// InitGenesis initializes the module's state from a genesis state.
func (k *Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return err
	}

	if err := k.Config.Set(ctx, data.Config); err != nil {
		return err
	}

	for _, b := range data.Balances {
		if err := k.Balances.Set(ctx, b.Account, b.Record); err != nil {
			return err
		}
	}

	for _, c := range data.Counters {
		if err := k.Counters.Set(ctx, collections.Join(c.Maker, c.Taker), c.NextIndex); err != nil {
			return err
		}
	}

	for _, p := range data.Proposals {
		if err := k.Proposals.Set(ctx, collections.Join3(p.Maker, p.Taker, p.Index), p.Proposal); err != nil {
			return err
		}
	}

	for _, i := range data.Instances {
		if err := k.Instances.Set(ctx, collections.Join3(i.Maker, i.Taker, i.Index), i.Instance); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis exports the module's state to a genesis state.
func (k *Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	config, err := k.Config.Get(ctx)
	if err != nil {
		panic(err)
	}

	genesis := types.NewGenesisState(config)

	err = k.Balances.Walk(ctx, nil, func(account string, record types.BalanceRecord) (bool, error) {
		genesis.Balances = append(genesis.Balances, types.BalanceEntry{Account: account, Record: record})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.Counters.Walk(ctx, nil, func(pair collections.Pair[string, string], next uint64) (bool, error) {
		genesis.Counters = append(genesis.Counters, types.CounterEntry{Maker: pair.K1(), Taker: pair.K2(), NextIndex: next})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.Proposals.Walk(ctx, nil, func(slot collections.Triple[string, string, uint64], proposal types.Proposal) (bool, error) {
		genesis.Proposals = append(genesis.Proposals, types.ProposalEntry{Maker: slot.K1(), Taker: slot.K2(), Index: slot.K3(), Proposal: proposal})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	err = k.Instances.Walk(ctx, nil, func(slot collections.Triple[string, string, uint64], instance common.Address) (bool, error) {
		genesis.Instances = append(genesis.Instances, types.InstanceEntry{Maker: slot.K1(), Taker: slot.K2(), Index: slot.K3(), Instance: instance})
		return false, nil
	})
	if err != nil {
		panic(err)
	}

	return genesis
}
