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

// Confirm accepts the proposal at (maker, taker, index) on behalf of taker,
// debiting the taker by the fee in effect now (not the proposal's snapshot),
// deploying the oracle instance and retiring the slot index. The whole
// operation runs on a branched store: a factory failure rolls back the debit
// and any first-time balance sync.
func (k Keeper) Confirm(ctx context.Context, taker, maker string, index uint64) (common.Address, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	slot := collections.Join3(maker, taker, index)

	proposal, err := k.Proposals.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return common.Address{}, sdkerrors.Wrapf(types.ErrNoSuchProposal, "%s/%s slot %d", maker, taker, index)
		}
		return common.Address{}, err
	}
	if !proposal.Active() {
		return common.Address{}, sdkerrors.Wrapf(types.ErrNoSuchProposal, "%s/%s slot %d", maker, taker, index)
	}

	config, err := k.Config.Get(ctx)
	if err != nil {
		return common.Address{}, err
	}

	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.debit(cacheCtx, taker, config.Fee); err != nil {
		return common.Address{}, err
	}

	instance, err := k.deploy(cacheCtx, proposal, maker, taker, index)
	if err != nil {
		return common.Address{}, err
	}

	if err := k.advanceIndex(cacheCtx, maker, taker); err != nil {
		return common.Address{}, err
	}

	cacheCtx.EventManager().EmitEvent(types.NewProposalConfirmedEvent(taker, maker, index, config.Fee))
	write()

	k.logger.Info("oracle proposal confirmed", "taker", taker, "maker", maker, "slot", index, "instance", instance.Hex())
	return instance, nil
}

// BuyFor is the administrator's combined propose+confirm fast path: both
// parties are debited the current fee in one atomic step and the content
// reference is taken from the caller rather than a stored proposal. The
// in-memory proposal is never persisted; only the deployed instance is.
func (k Keeper) BuyFor(ctx context.Context, caller string, content common.Hash, maker, taker string) (common.Address, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	config, err := k.adminConfig(ctx, caller)
	if err != nil {
		return common.Address{}, err
	}
	if !config.Open {
		return common.Address{}, sdkerrors.Wrap(types.ErrClosed, "market is not accepting purchases")
	}

	index, err := k.CurrentIndex(ctx, maker, taker)
	if err != nil {
		return common.Address{}, err
	}

	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.debit(cacheCtx, maker, config.Fee); err != nil {
		return common.Address{}, err
	}
	if err := k.debit(cacheCtx, taker, config.Fee); err != nil {
		return common.Address{}, err
	}

	proposal := types.NewProposal(content, config.TemplateRef, config.Fee)
	instance, err := k.deploy(cacheCtx, proposal, maker, taker, index)
	if err != nil {
		return common.Address{}, err
	}

	if err := k.advanceIndex(cacheCtx, maker, taker); err != nil {
		return common.Address{}, err
	}

	cacheCtx.EventManager().EmitEvent(types.NewOracleBoughtForEvent(caller, maker, taker, index, content))
	write()

	k.logger.Info("oracle bought for", "buyer", caller, "maker", maker, "taker", taker, "slot", index, "instance", instance.Hex())
	return instance, nil
}

// deploy instantiates the oracle described by the proposal and records the
// instance reference at the slot. The record is write-once: a slot that
// already holds an instance is never overwritten.
func (k Keeper) deploy(ctx context.Context, proposal types.Proposal, maker, taker string, index uint64) (common.Address, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	slot := collections.Join3(maker, taker, index)

	if deployed, err := k.Instances.Has(ctx, slot); err != nil {
		return common.Address{}, err
	} else if deployed {
		return common.Address{}, sdkerrors.Wrapf(types.ErrAlreadyDeployed, "%s/%s slot %d", maker, taker, index)
	}

	config, err := k.Config.Get(ctx)
	if err != nil {
		return common.Address{}, err
	}

	instance, err := k.factory.Instantiate(ctx, proposal.TemplateRef, config.Admin, proposal.ContentRef, maker, taker)
	if err != nil {
		return common.Address{}, sdkerrors.Wrap(err, "failed to instantiate oracle")
	}

	if err := k.Instances.Set(ctx, slot, instance); err != nil {
		return common.Address{}, err
	}

	sdkCtx.EventManager().EmitEvent(types.NewOracleDeployedEvent(maker, taker, index, proposal.ContentRef, instance))
	return instance, nil
}
