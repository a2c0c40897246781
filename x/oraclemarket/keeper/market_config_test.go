package keeper_test

import (
	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rollchains/oraclemarket/x/oraclemarket/types"
)

func (suite *KeeperTestSuite) TestSettersRequireAdmin() {
	f := suite.fixture

	err := f.k.SetFee(f.ctx, f.maker, math.NewInt(20))
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	err = f.k.SetTemplate(f.ctx, f.maker, testTemplate)
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	err = f.k.SetLedger(f.ctx, f.maker, testLedger)
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	err = f.k.SetOpenStatus(f.ctx, f.maker, false)
	suite.Require().ErrorIs(err, types.ErrUnauthorized)

	config, err := f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(10), config.Fee)
	suite.Require().True(config.Open)
}

func (suite *KeeperTestSuite) TestSettersRejectZeroReference() {
	f := suite.fixture

	err := f.k.SetTemplate(f.ctx, f.admin, common.Address{})
	suite.Require().ErrorIs(err, types.ErrInvalidReference)

	err = f.k.SetLedger(f.ctx, f.admin, common.Address{})
	suite.Require().ErrorIs(err, types.ErrInvalidReference)
}

func (suite *KeeperTestSuite) TestAdminUpdatesConfig() {
	f := suite.fixture

	newTemplate := common.HexToAddress("0x3333333333333333333333333333333333333333")
	newLedger := common.HexToAddress("0x4444444444444444444444444444444444444444")

	suite.Require().NoError(f.k.SetFee(f.ctx, f.admin, math.NewInt(25)))
	suite.Require().NoError(f.k.SetTemplate(f.ctx, f.admin, newTemplate))
	suite.Require().NoError(f.k.SetLedger(f.ctx, f.admin, newLedger))
	suite.Require().NoError(f.k.SetOpenStatus(f.ctx, f.admin, false))

	config, err := f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(math.NewInt(25), config.Fee)
	suite.Require().Equal(newTemplate, config.TemplateRef)
	suite.Require().Equal(newLedger, config.LedgerRef)
	suite.Require().False(config.Open)

	suite.Require().NoError(f.k.SetOpenStatus(f.ctx, f.admin, true))

	config, err = f.k.GetConfig(f.ctx)
	suite.Require().NoError(err)
	suite.Require().True(config.Open)
}

func (suite *KeeperTestSuite) TestConfigEventsEmitted() {
	f := suite.fixture

	suite.Require().NoError(f.k.SetFee(f.ctx, f.admin, math.NewInt(42)))

	events := f.ctx.EventManager().Events()
	suite.Require().NotEmpty(events)
	suite.Require().Equal(types.EventTypeFeeUpdated, events[len(events)-1].Type)
}
