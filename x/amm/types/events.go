package types

// Event types for the AMM module
const (
	EventTypePoolCreated     = "amm_pool_created"
	EventTypePoolInitialized = "amm_pool_initialized"
	EventTypeAddLiquidity    = "amm_add_liquidity"
	EventTypeRemoveLiquidity = "amm_remove_liquidity"
	EventTypeSwap            = "amm_swap"
	EventTypeConfigUpdated   = "amm_config_updated"
)

// Event attribute keys
const (
	AttributeKeyAdmin           = "admin"
	AttributeKeyTreasury        = "treasury"
	AttributeKeyPrimaryAsset    = "primary_asset"
	AttributeKeySecondaryAsset  = "secondary_asset"
	AttributeKeyLpAsset         = "lp_asset"
	AttributeKeyProvider        = "provider"
	AttributeKeyTrader          = "trader"
	AttributeKeyPrimaryAmount   = "primary_amount"
	AttributeKeySecondaryAmount = "secondary_amount"
	AttributeKeyLpUnits         = "lp_units"
	AttributeKeyDirection       = "direction"
	AttributeKeyInputAmount     = "input_amount"
	AttributeKeyOutputAmount    = "output_amount"
	AttributeKeyTotalFee        = "total_fee"
	AttributeKeyLpFee           = "lp_fee"
	AttributeKeyProtocolFee     = "protocol_fee"
	AttributeKeyKInvariant      = "k_invariant"
	AttributeKeyField           = "field"
	AttributeKeyValue           = "value"
)
