package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrUnauthorized       = errors.Register(ModuleName, 2, "caller is not the pool admin")
	ErrAlreadyInitialized = errors.Register(ModuleName, 3, "pool already initialized")
	ErrNotInitialized     = errors.Register(ModuleName, 4, "pool not initialized")
	ErrPreconditionFailed = errors.Register(ModuleName, 5, "ledger deposit verification failed")
	ErrInvalidAmount      = errors.Register(ModuleName, 6, "invalid amount")
	ErrInvalidSwapType    = errors.Register(ModuleName, 7, "invalid swap direction")
	ErrInsufficientSupply = errors.Register(ModuleName, 8, "insufficient issued supply")
	ErrSwapTooSmall       = errors.Register(ModuleName, 9, "swap output rounds to zero")
	ErrOverflow           = errors.Register(ModuleName, 10, "arithmetic overflow")
	ErrInvalidAsset       = errors.Register(ModuleName, 11, "invalid asset")
	ErrInvalidAddress     = errors.Register(ModuleName, 12, "invalid address")
	ErrPoolShutdown       = errors.Register(ModuleName, 13, "pool is scheduled for shutdown")
	ErrInvalidPoolState   = errors.Register(ModuleName, 14, "invalid pool state")
)
