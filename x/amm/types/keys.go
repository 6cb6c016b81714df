package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes. The module manages a single pool, so the pool record
// and the params each live under a fixed key.
var (
	PoolStateKey = []byte{0x01} // key for the pool state record
	ParamsKey    = []byte{0x02} // key for module params
)

const (
	// TotalLPSupply is the fixed LP token allotment minted once during
	// initialization. Units are handed out to providers and returned on
	// burns; the pool never mints more.
	TotalLPSupply uint64 = 99_999_999_999_999

	// LPDecimals is the decimal precision of the LP claim token.
	LPDecimals uint32 = 6

	// MinBalancePerAsset is the native-currency amount the pool must retain
	// per ledger object it holds (account, created asset, opt-ins).
	MinBalancePerAsset uint64 = 100_000

	// PoolVersion is stamped into the pool state at initialization so
	// clients can check compatibility.
	PoolVersion uint64 = 2

	// BpsDenominator converts basis points to a fraction.
	BpsDenominator uint64 = 10_000
)
