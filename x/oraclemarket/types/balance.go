package types

import (
	"cosmossdk.io/math"
)

// BalanceRecord is an account's local credit balance. Credit is imported from
// the external ledger exactly once; after that it is an independent counter,
// decreased by proposal and confirmation fees and increased only by revocation
// refunds. Synced never reverts to false once set.
type BalanceRecord struct {
	Credit math.Int `json:"credit"`
	Synced bool     `json:"synced"`
}

// NewBalanceRecord returns a synced record holding the imported credit.
func NewBalanceRecord(credit math.Int) BalanceRecord {
	return BalanceRecord{
		Credit: credit,
		Synced: true,
	}
}
