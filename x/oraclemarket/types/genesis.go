package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// BalanceEntry is a genesis entry of the balance cache.
type BalanceEntry struct {
	Account string        `json:"account"`
	Record  BalanceRecord `json:"record"`
}

// CounterEntry is a genesis entry of a per-pair slot counter.
type CounterEntry struct {
	Maker     string `json:"maker"`
	Taker     string `json:"taker"`
	NextIndex uint64 `json:"next_index"`
}

// ProposalEntry is a genesis entry of a pending proposal slot.
type ProposalEntry struct {
	Maker    string   `json:"maker"`
	Taker    string   `json:"taker"`
	Index    uint64   `json:"index"`
	Proposal Proposal `json:"proposal"`
}

// InstanceEntry is a genesis entry of a deployed oracle instance.
type InstanceEntry struct {
	Maker    string         `json:"maker"`
	Taker    string         `json:"taker"`
	Index    uint64         `json:"index"`
	Instance common.Address `json:"instance"`
}

// GenesisState is the module's complete state.
type GenesisState struct {
	Config    MarketConfig    `json:"config"`
	Balances  []BalanceEntry  `json:"balances"`
	Counters  []CounterEntry  `json:"counters"`
	Proposals []ProposalEntry `json:"proposals"`
	Instances []InstanceEntry `json:"instances"`
}

// NewGenesisState returns a genesis state holding only the given config.
func NewGenesisState(config MarketConfig) *GenesisState {
	return &GenesisState{
		Config: config,
	}
}

// DefaultGenesisState returns an empty market administered by admin.
func DefaultGenesisState(admin string) *GenesisState {
	return NewGenesisState(DefaultMarketConfig(admin))
}

// Validate does the sanity check on the genesis state.
func (gs *GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return fmt.Errorf("invalid market config: %w", err)
	}

	seenAccounts := make(map[string]bool)
	for _, b := range gs.Balances {
		if b.Account == "" {
			return fmt.Errorf("balance account cannot be empty")
		}
		if seenAccounts[b.Account] {
			return fmt.Errorf("duplicate balance entry for %s", b.Account)
		}
		seenAccounts[b.Account] = true
		if b.Record.Credit.IsNil() || b.Record.Credit.IsNegative() {
			return fmt.Errorf("invalid credit for %s", b.Account)
		}
	}

	seenPairs := make(map[string]bool)
	for _, c := range gs.Counters {
		key := c.Maker + "/" + c.Taker
		if seenPairs[key] {
			return fmt.Errorf("duplicate counter entry for %s", key)
		}
		seenPairs[key] = true
	}

	seenSlots := make(map[string]bool)
	for _, p := range gs.Proposals {
		key := fmt.Sprintf("%s/%s/%d", p.Maker, p.Taker, p.Index)
		if seenSlots[key] {
			return fmt.Errorf("duplicate proposal entry for %s", key)
		}
		seenSlots[key] = true
		if p.Proposal.Fee.IsNil() || p.Proposal.Fee.IsNegative() {
			return fmt.Errorf("invalid proposal fee at %s", key)
		}
	}

	seenInstances := make(map[string]bool)
	for _, i := range gs.Instances {
		key := fmt.Sprintf("%s/%s/%d", i.Maker, i.Taker, i.Index)
		if seenInstances[key] {
			return fmt.Errorf("duplicate instance entry for %s", key)
		}
		seenInstances[key] = true
		if i.Instance == (common.Address{}) {
			return fmt.Errorf("instance reference at %s cannot be the zero address", key)
		}
	}

	return nil
}
