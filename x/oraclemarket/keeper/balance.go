package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/rollchains/oraclemarket/x/oraclemarket/types"
)

// EnsureSynced imports the account's balance from the external ledger the
// first time the account is seen. It is idempotent: once a record exists the
// ledger is never consulted again for this account.
func (k Keeper) EnsureSynced(ctx context.Context, account string) error {
	has, err := k.Balances.Has(ctx, account)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	record, err := k.importBalance(ctx, account)
	if err != nil {
		return err
	}

	k.logger.Info("credit balance synced", "account", account, "credit", record.Credit.String())
	return k.Balances.Set(ctx, account, record)
}

// IsSynced reports whether the account's balance has been imported.
func (k Keeper) IsSynced(ctx context.Context, account string) (bool, error) {
	return k.Balances.Has(ctx, account)
}

// GetCreditBalance returns the account's local credit balance, zero if the
// account has never been synced.
func (k Keeper) GetCreditBalance(ctx context.Context, account string) (math.Int, error) {
	record, err := k.Balances.Get(ctx, account)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.Int{}, err
	}
	return record.Credit, nil
}

// importBalance reads the account's balance from the external ledger and
// builds its synced record without persisting it.
func (k Keeper) importBalance(ctx context.Context, account string) (types.BalanceRecord, error) {
	config, err := k.Config.Get(ctx)
	if err != nil {
		return types.BalanceRecord{}, err
	}

	credit, err := k.ledgerKeeper.BalanceOf(ctx, config.LedgerRef, account)
	if err != nil {
		return types.BalanceRecord{}, sdkerrors.Wrapf(err, "failed to read ledger balance of %s", account)
	}

	return types.NewBalanceRecord(credit), nil
}

// syncedRecord returns the account's record, importing it from the ledger if
// the account has never been seen. The caller decides whether the record is
// persisted; a failed operation must leave no trace of the import.
func (k Keeper) syncedRecord(ctx context.Context, account string) (types.BalanceRecord, error) {
	record, err := k.Balances.Get(ctx, account)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, collections.ErrNotFound) {
		return types.BalanceRecord{}, err
	}
	return k.importBalance(ctx, account)
}

// debit syncs the account if needed and subtracts amount from its credit in a
// single write, so an insufficient balance leaves no state behind.
func (k Keeper) debit(ctx context.Context, account string, amount math.Int) error {
	record, err := k.syncedRecord(ctx, account)
	if err != nil {
		return err
	}

	if record.Credit.LT(amount) {
		return sdkerrors.Wrapf(types.ErrInsufficientBalance, "account %s holds %s, needs %s", account, record.Credit, amount)
	}

	record.Credit = record.Credit.Sub(amount)
	return k.Balances.Set(ctx, account, record)
}

// credit adds amount to the account's credit unconditionally. Refund path
// only; the account was synced when its fee was debited.
func (k Keeper) credit(ctx context.Context, account string, amount math.Int) error {
	record, err := k.syncedRecord(ctx, account)
	if err != nil {
		return err
	}

	record.Credit = record.Credit.Add(amount)
	return k.Balances.Set(ctx, account, record)
}
