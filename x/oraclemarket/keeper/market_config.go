package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	legacyerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollchains/oraclemarket/x/oraclemarket/types"
)

// adminConfig loads the config and checks that caller is the administrator.
func (k Keeper) adminConfig(ctx context.Context, caller string) (types.MarketConfig, error) {
	config, err := k.Config.Get(ctx)
	if err != nil {
		return types.MarketConfig{}, err
	}
	if config.Admin != caller {
		return types.MarketConfig{}, sdkerrors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", config.Admin, caller)
	}
	return config, nil
}

// SetFee updates the per-leg fee - Admin restricted. Pending proposals keep
// their snapshotted fee.
func (k Keeper) SetFee(ctx context.Context, caller string, fee math.Int) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	config, err := k.adminConfig(ctx, caller)
	if err != nil {
		return err
	}

	if fee.IsNil() || fee.IsNegative() {
		return sdkerrors.Wrap(legacyerrors.ErrInvalidRequest, "fee must be a non-negative integer")
	}

	config.Fee = fee
	if err := k.Config.Set(ctx, config); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(types.NewFeeUpdatedEvent(fee))
	k.logger.Info("market fee updated", "fee", fee.String())
	return nil
}

// SetTemplate upgrades the oracle template reference - Admin restricted.
func (k Keeper) SetTemplate(ctx context.Context, caller string, template common.Address) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	config, err := k.adminConfig(ctx, caller)
	if err != nil {
		return err
	}

	if template == (common.Address{}) {
		return sdkerrors.Wrap(types.ErrInvalidReference, "template reference")
	}

	config.TemplateRef = template
	if err := k.Config.Set(ctx, config); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(types.NewTemplateUpgradedEvent(template))
	k.logger.Info("oracle template upgraded", "template", template.Hex())
	return nil
}

// SetLedger updates the external ledger reference - Admin restricted. Already
// synced balances are unaffected; the ledger is only read on first sync.
func (k Keeper) SetLedger(ctx context.Context, caller string, ledger common.Address) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	config, err := k.adminConfig(ctx, caller)
	if err != nil {
		return err
	}

	if ledger == (common.Address{}) {
		return sdkerrors.Wrap(types.ErrInvalidReference, "ledger reference")
	}

	config.LedgerRef = ledger
	if err := k.Config.Set(ctx, config); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(types.NewLedgerUpdatedEvent(ledger))
	k.logger.Info("ledger reference updated", "ledger", ledger.Hex())
	return nil
}

// SetOpenStatus opens or closes the market for new proposals and sponsored
// purchases - Admin restricted. Confirmation and revocation of existing
// proposals are not gated.
func (k Keeper) SetOpenStatus(ctx context.Context, caller string, open bool) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	config, err := k.adminConfig(ctx, caller)
	if err != nil {
		return err
	}

	config.Open = open
	if err := k.Config.Set(ctx, config); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(types.NewStatusUpdatedEvent(open))
	k.logger.Info("market status updated", "open", open)
	return nil
}
