package types

import (
	"cosmossdk.io/errors"
)

var (
	ErrUnauthorized        = errors.Register(ModuleName, 2, "caller is not the market administrator")
	ErrClosed              = errors.Register(ModuleName, 3, "market is closed")
	ErrInvalidReference    = errors.Register(ModuleName, 4, "zero reference is not allowed")
	ErrInsufficientBalance = errors.Register(ModuleName, 5, "insufficient credit balance")
	ErrNoSuchProposal      = errors.Register(ModuleName, 6, "no active proposal at slot")
	ErrAlreadyDeployed     = errors.Register(ModuleName, 7, "oracle instance already deployed at slot")
)
