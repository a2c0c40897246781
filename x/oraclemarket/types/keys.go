package types

import (
	"cosmossdk.io/collections"
)

var (
	// ConfigKey saves the current market configuration.
	ConfigKey = collections.NewPrefix(0)

	// ConfigName is the name of the config collection.
	ConfigName = "config"

	// BalancesKey saves the synced credit balances collection prefix.
	BalancesKey = collections.NewPrefix(1)

	// BalancesName is the name of the balances collection.
	BalancesName = "balances"

	// CountersKey saves the per-pair slot counters collection prefix.
	CountersKey = collections.NewPrefix(2)

	// CountersName is the name of the counters collection.
	CountersName = "counters"

	// ProposalsKey saves the pending proposals collection prefix.
	ProposalsKey = collections.NewPrefix(3)

	// ProposalsName is the name of the proposals collection.
	ProposalsName = "proposals"

	// InstancesKey saves the deployed oracle instances collection prefix.
	InstancesKey = collections.NewPrefix(4)

	// InstancesName is the name of the instances collection.
	InstancesName = "instances"
)

const (
	ModuleName = "oraclemarket"

	StoreKey = ModuleName

	QuerierRoute = ModuleName
)
