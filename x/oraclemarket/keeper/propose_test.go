package keeper_test

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/rollchains/oraclemarket/x/oraclemarket/types"
)

func (suite *KeeperTestSuite) TestProposeDebitsMakerAndFillsSlot() {
	f := suite.fixture
	f.ledger.SetBalance(f.maker, math.NewInt(100))

	index, err := f.k.Propose(f.ctx, f.maker, f.taker, testContent)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(0), index)

	credit, err := f.k.GetCreditBalance(f.ctx, f.maker)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(90), credit)

	proposal, err := f.k.GetProposal(f.ctx, f.maker, f.taker, index)
	suite.Require().NoError(err)
	suite.Require().Equal(testContent, proposal.ContentRef)
	suite.Require().Equal(testTemplate, proposal.TemplateRef)
	suite.Require().Equal(math.NewInt(10), proposal.Fee)
	suite.Require().True(proposal.Active())

	// proposal creation never advances the pair counter
	next, err := f.k.CurrentIndex(f.ctx, f.maker, f.taker)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(0), next)
}

func (suite *KeeperTestSuite) TestProposeInsufficientBalance() {
	f := suite.fixture
	f.ledger.SetBalance(f.maker, math.NewInt(5))

	_, err := f.k.Propose(f.ctx, f.maker, f.taker, testContent)
	suite.Require().ErrorIs(err, types.ErrInsufficientBalance)

	// no slot, and no trace of the balance import either
	_, err = f.k.GetProposal(f.ctx, f.maker, f.taker, 0)
	suite.Require().True(errors.Is(err, collections.ErrNotFound))

	synced, err := f.k.IsSynced(f.ctx, f.maker)
	suite.Require().NoError(err)
	suite.Require().False(synced)
}

func (suite *KeeperTestSuite) TestProposeClosedMarket() {
	f := suite.fixture
	f.ledger.SetBalance(f.maker, math.NewInt(100))

	suite.Require().NoError(f.k.SetOpenStatus(f.ctx, f.admin, false))

	_, err := f.k.Propose(f.ctx, f.maker, f.taker, testContent)
	suite.Require().ErrorIs(err, types.ErrClosed)
}

func (suite *KeeperTestSuite) TestProposeRevokeRoundTrip() {
	f := suite.fixture
	f.ledger.SetBalance(f.maker, math.NewInt(100))

	index, err := f.k.Propose(f.ctx, f.maker, f.taker, testContent)
	suite.Require().NoError(err)

	err = f.k.Revoke(f.ctx, f.maker, f.taker, index)
	suite.Require().NoError(err)

	credit, err := f.k.GetCreditBalance(f.ctx, f.maker)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(100), credit, "revocation must refund the snapshot fee")

	_, err = f.k.GetProposal(f.ctx, f.maker, f.taker, index)
	suite.Require().True(errors.Is(err, collections.ErrNotFound))

	// the vacated index is reusable until a deployment retires it
	again, err := f.k.Propose(f.ctx, f.maker, f.taker, testContent)
	suite.Require().NoError(err)
	suite.Require().Equal(index, again)
}

func (suite *KeeperTestSuite) TestRevokeWithoutProposal() {
	f := suite.fixture

	err := f.k.Revoke(f.ctx, f.maker, f.taker, 0)
	suite.Require().ErrorIs(err, types.ErrNoSuchProposal)
}

func (suite *KeeperTestSuite) TestRevokeNotGatedByClosedMarket() {
	f := suite.fixture
	f.ledger.SetBalance(f.maker, math.NewInt(100))

	index, err := f.k.Propose(f.ctx, f.maker, f.taker, testContent)
	suite.Require().NoError(err)

	suite.Require().NoError(f.k.SetOpenStatus(f.ctx, f.admin, false))

	err = f.k.Revoke(f.ctx, f.maker, f.taker, index)
	suite.Require().NoError(err)
}

func (suite *KeeperTestSuite) TestProposalFeeSnapshotSurvivesFeeChange() {
	f := suite.fixture
	f.ledger.SetBalance(f.maker, math.NewInt(100))

	index, err := f.k.Propose(f.ctx, f.maker, f.taker, testContent)
	suite.Require().NoError(err)

	suite.Require().NoError(f.k.SetFee(f.ctx, f.admin, math.NewInt(25)))

	proposal, err := f.k.GetProposal(f.ctx, f.maker, f.taker, index)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(10), proposal.Fee)

	// the refund is the snapshot, not the new fee
	err = f.k.Revoke(f.ctx, f.maker, f.taker, index)
	suite.Require().NoError(err)

	credit, err := f.k.GetCreditBalance(f.ctx, f.maker)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(100), credit)
}
