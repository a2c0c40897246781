package types

import (
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// Proposal is the content of a slot keyed by (maker, taker, index). The
// template reference and fee are snapshots taken at proposal time; later
// configuration changes do not touch them. A proposal with a zero fee is
// treated as an empty slot.
type Proposal struct {
	ContentRef  common.Hash    `json:"content_ref"`
	TemplateRef common.Address `json:"template_ref"`
	Fee         math.Int       `json:"fee"`
}

// NewProposal snapshots the given template and fee for a slot.
func NewProposal(content common.Hash, template common.Address, fee math.Int) Proposal {
	return Proposal{
		ContentRef:  content,
		TemplateRef: template,
		Fee:         fee,
	}
}

// Active reports whether the slot holds a live proposal.
func (p Proposal) Active() bool {
	return !p.Fee.IsNil() && p.Fee.IsPositive()
}
