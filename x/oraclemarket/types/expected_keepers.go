package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// LedgerKeeper defines the expected interface of the external token ledger.
// BalanceOf is consulted at most once per account: the first observed balance
// becomes the account's session credit and later ledger changes are ignored.
type LedgerKeeper interface {
	BalanceOf(ctx context.Context, ledger common.Address, account string) (math.Int, error)
}

// OracleFactory defines the expected interface of the template factory that
// turns a proposal into a running oracle instance. A failed Instantiate call
// aborts the enclosing deployment with no state change.
type OracleFactory interface {
	Instantiate(
		ctx context.Context,
		template common.Address,
		admin string,
		content common.Hash,
		maker, taker string,
	) (common.Address, error)
}
