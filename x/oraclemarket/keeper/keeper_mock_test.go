package keeper_test

import (
	"context"
	"math/big"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// mockLedger is a mock implementation of types.LedgerKeeper that counts how
// often each account is read.
type mockLedger struct {
	balances map[string]math.Int
	reads    map[string]int
}

func newMockLedger() *mockLedger {
	return &mockLedger{
		balances: make(map[string]math.Int),
		reads:    make(map[string]int),
	}
}

// SetBalance sets the balance the external ledger reports for account.
func (m *mockLedger) SetBalance(account string, balance math.Int) {
	m.balances[account] = balance
}

// Reads returns how many times the account's balance was read.
func (m *mockLedger) Reads(account string) int {
	return m.reads[account]
}

func (m *mockLedger) BalanceOf(_ context.Context, _ common.Address, account string) (math.Int, error) {
	m.reads[account]++
	balance, ok := m.balances[account]
	if !ok {
		return math.ZeroInt(), nil
	}
	return balance, nil
}

// mockFactory is a mock implementation of types.OracleFactory handing out
// deterministic instance addresses.
type mockFactory struct {
	calls int
	err   error

	lastTemplate common.Address
	lastAdmin    string
	lastContent  common.Hash
}

func newMockFactory() *mockFactory {
	return &mockFactory{}
}

// FailWith makes every subsequent Instantiate call return err.
func (m *mockFactory) FailWith(err error) {
	m.err = err
}

// Calls returns the number of successful instantiations.
func (m *mockFactory) Calls() int {
	return m.calls
}

func (m *mockFactory) Instantiate(
	_ context.Context,
	template common.Address,
	admin string,
	content common.Hash,
	_, _ string,
) (common.Address, error) {
	if m.err != nil {
		return common.Address{}, m.err
	}

	m.calls++
	m.lastTemplate = template
	m.lastAdmin = admin
	m.lastContent = content

	return common.BigToAddress(big.NewInt(int64(0x1000 + m.calls))), nil
}
