package types

import (
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	EventTypeProposalCreated   = "propose_oracle"
	EventTypeProposalConfirmed = "confirm_oracle"
	EventTypeOracleDeployed    = "oracle_deployed"
	EventTypeProposalRevoked   = "revoke_oracle"
	EventTypeOracleBoughtFor   = "oracle_bought_for"
	EventTypeFeeUpdated        = "fee_updated"
	EventTypeTemplateUpgraded  = "template_upgraded"
	EventTypeLedgerUpdated     = "ledger_updated"
	EventTypeStatusUpdated     = "market_status_updated"
)

const (
	AttributeKeyMaker       = "maker"
	AttributeKeyTaker       = "taker"
	AttributeKeySlotIndex   = "slot_index"
	AttributeKeyContentRef  = "content_ref"
	AttributeKeyInstanceRef = "instance_ref"
	AttributeKeyFee         = "fee"
	AttributeKeyTemplateRef = "template_ref"
	AttributeKeyLedgerRef   = "ledger_ref"
	AttributeKeyOpen        = "open"
	AttributeKeyBuyer       = "buyer"
)

// NewProposalCreatedEvent is emitted when a maker opens a proposal slot.
func NewProposalCreatedEvent(maker, taker string, index uint64, content common.Hash, fee math.Int) sdk.Event {
	return sdk.NewEvent(
		EventTypeProposalCreated,
		sdk.NewAttribute(AttributeKeyMaker, maker),
		sdk.NewAttribute(AttributeKeyTaker, taker),
		sdk.NewAttribute(AttributeKeySlotIndex, strconv.FormatUint(index, 10)),
		sdk.NewAttribute(AttributeKeyContentRef, content.Hex()),
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
	)
}

// NewProposalConfirmedEvent is emitted when the taker accepts a proposal.
func NewProposalConfirmedEvent(taker, maker string, index uint64, fee math.Int) sdk.Event {
	return sdk.NewEvent(
		EventTypeProposalConfirmed,
		sdk.NewAttribute(AttributeKeyTaker, taker),
		sdk.NewAttribute(AttributeKeyMaker, maker),
		sdk.NewAttribute(AttributeKeySlotIndex, strconv.FormatUint(index, 10)),
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
	)
}

// NewOracleDeployedEvent is emitted once per slot when the instance reference
// is recorded.
func NewOracleDeployedEvent(maker, taker string, index uint64, content common.Hash, instance common.Address) sdk.Event {
	return sdk.NewEvent(
		EventTypeOracleDeployed,
		sdk.NewAttribute(AttributeKeyMaker, maker),
		sdk.NewAttribute(AttributeKeyTaker, taker),
		sdk.NewAttribute(AttributeKeySlotIndex, strconv.FormatUint(index, 10)),
		sdk.NewAttribute(AttributeKeyContentRef, content.Hex()),
		sdk.NewAttribute(AttributeKeyInstanceRef, instance.Hex()),
	)
}

// NewProposalRevokedEvent is emitted when a maker revokes an undeployed
// proposal and is refunded its snapshot fee.
func NewProposalRevokedEvent(maker, taker string, index uint64, refund math.Int) sdk.Event {
	return sdk.NewEvent(
		EventTypeProposalRevoked,
		sdk.NewAttribute(AttributeKeyMaker, maker),
		sdk.NewAttribute(AttributeKeyTaker, taker),
		sdk.NewAttribute(AttributeKeySlotIndex, strconv.FormatUint(index, 10)),
		sdk.NewAttribute(AttributeKeyFee, refund.String()),
	)
}

// NewOracleBoughtForEvent is emitted when the administrator performs the
// combined propose+confirm purchase on behalf of both parties.
func NewOracleBoughtForEvent(buyer, maker, taker string, index uint64, content common.Hash) sdk.Event {
	return sdk.NewEvent(
		EventTypeOracleBoughtFor,
		sdk.NewAttribute(AttributeKeyBuyer, buyer),
		sdk.NewAttribute(AttributeKeyMaker, maker),
		sdk.NewAttribute(AttributeKeyTaker, taker),
		sdk.NewAttribute(AttributeKeySlotIndex, strconv.FormatUint(index, 10)),
		sdk.NewAttribute(AttributeKeyContentRef, content.Hex()),
	)
}

// NewFeeUpdatedEvent is emitted on a successful fee change.
func NewFeeUpdatedEvent(fee math.Int) sdk.Event {
	return sdk.NewEvent(
		EventTypeFeeUpdated,
		sdk.NewAttribute(AttributeKeyFee, fee.String()),
	)
}

// NewTemplateUpgradedEvent is emitted on a successful template change.
func NewTemplateUpgradedEvent(template common.Address) sdk.Event {
	return sdk.NewEvent(
		EventTypeTemplateUpgraded,
		sdk.NewAttribute(AttributeKeyTemplateRef, template.Hex()),
	)
}

// NewLedgerUpdatedEvent is emitted on a successful ledger reference change.
func NewLedgerUpdatedEvent(ledger common.Address) sdk.Event {
	return sdk.NewEvent(
		EventTypeLedgerUpdated,
		sdk.NewAttribute(AttributeKeyLedgerRef, ledger.Hex()),
	)
}

// NewStatusUpdatedEvent is emitted when the open/closed flag changes.
func NewStatusUpdatedEvent(open bool) sdk.Event {
	return sdk.NewEvent(
		EventTypeStatusUpdated,
		sdk.NewAttribute(AttributeKeyOpen, strconv.FormatBool(open)),
	)
}
