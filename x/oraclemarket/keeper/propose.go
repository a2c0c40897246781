package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollchains/oraclemarket/x/oraclemarket/types"
)

// Propose opens a proposal towards taker at the pair's current slot index,
// debiting the maker by the current fee. The slot snapshots the template and
// fee in effect now; later configuration changes do not touch it. Any
// previous (revoked) content at the slot is overwritten. Returns the slot
// index used.
func (k Keeper) Propose(ctx context.Context, maker, taker string, content common.Hash) (uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	config, err := k.Config.Get(ctx)
	if err != nil {
		return 0, err
	}
	if !config.Open {
		return 0, sdkerrors.Wrap(types.ErrClosed, "market is not accepting proposals")
	}

	index, err := k.CurrentIndex(ctx, maker, taker)
	if err != nil {
		return 0, err
	}

	if err := k.debit(ctx, maker, config.Fee); err != nil {
		return 0, err
	}

	proposal := types.NewProposal(content, config.TemplateRef, config.Fee)
	if err := k.Proposals.Set(ctx, collections.Join3(maker, taker, index), proposal); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(types.NewProposalCreatedEvent(maker, taker, index, content, config.Fee))
	k.logger.Info("oracle proposed", "maker", maker, "taker", taker, "slot", index)
	return index, nil
}

// Revoke clears an undeployed proposal and refunds its snapshot fee to the
// maker. The slot index stays valid for a future Propose as long as the pair
// counter has not advanced past it.
func (k Keeper) Revoke(ctx context.Context, maker, taker string, index uint64) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	slot := collections.Join3(maker, taker, index)

	proposal, err := k.Proposals.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkerrors.Wrapf(types.ErrNoSuchProposal, "%s/%s slot %d", maker, taker, index)
		}
		return err
	}
	if !proposal.Active() {
		return sdkerrors.Wrapf(types.ErrNoSuchProposal, "%s/%s slot %d", maker, taker, index)
	}

	if deployed, err := k.Instances.Has(ctx, slot); err != nil {
		return err
	} else if deployed {
		return sdkerrors.Wrapf(types.ErrAlreadyDeployed, "%s/%s slot %d", maker, taker, index)
	}

	if err := k.Proposals.Remove(ctx, slot); err != nil {
		return err
	}
	if err := k.credit(ctx, maker, proposal.Fee); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(types.NewProposalRevokedEvent(maker, taker, index, proposal.Fee))
	k.logger.Info("oracle proposal revoked", "maker", maker, "taker", taker, "slot", index)
	return nil
}
