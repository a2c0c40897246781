package types

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// MarketConfig is the administrator-owned configuration of the marketplace.
// It is mutated only through the gated keeper setters; pending proposals keep
// the fee and template they snapshotted at proposal time.
type MarketConfig struct {
	// Admin is the bech32 account allowed to mutate the configuration and to
	// invoke the sponsored purchase fast path.
	Admin string `json:"admin"`
	// Fee is the credit amount debited per proposal leg.
	Fee math.Int `json:"fee"`
	// TemplateRef is the oracle template used for new instances.
	TemplateRef common.Address `json:"template_ref"`
	// LedgerRef is the external token ledger consulted for first-time balance
	// imports.
	LedgerRef common.Address `json:"ledger_ref"`
	// Open gates proposal creation and sponsored purchases.
	Open bool `json:"open"`
}

// NewMarketConfig builds a market configuration with the market open.
func NewMarketConfig(admin string, fee math.Int, template, ledger common.Address) MarketConfig {
	return MarketConfig{
		Admin:       admin,
		Fee:         fee,
		TemplateRef: template,
		LedgerRef:   ledger,
		Open:        true,
	}
}

// DefaultMarketConfig returns an open market with a zero fee and unset
// references.
func DefaultMarketConfig(admin string) MarketConfig {
	return MarketConfig{
		Admin: admin,
		Fee:   math.ZeroInt(),
		Open:  true,
	}
}

// Stringer method for MarketConfig.
func (c MarketConfig) String() string {
	bz, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}

	return string(bz)
}

// Validate does the sanity check on the market config.
func (c MarketConfig) Validate() error {
	if c.Admin == "" {
		return fmt.Errorf("admin cannot be empty")
	}
	if c.Fee.IsNil() {
		return fmt.Errorf("fee cannot be nil")
	}
	if c.Fee.IsNegative() {
		return fmt.Errorf("fee cannot be negative: %s", c.Fee)
	}
	return nil
}
