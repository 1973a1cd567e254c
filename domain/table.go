package domain

// Table is a mongo collection name
type Table string

const (
	TableCounters          Table = "counters"
	TableListings          Table = "listings"
	TableAuctions          Table = "auctions"
	TableEscrowEntries     Table = "escrow_entries"
	TablePriceFeedBindings Table = "price_feed_bindings"
	TableFeeConfigs        Table = "fee_configs"
	TableEvents            Table = "marketplace_events"
	TableAssetHoldings     Table = "asset_holdings"
	TableOperatorApprovals Table = "operator_approvals"
	TableBalances          Table = "balances"
	TableAllowances        Table = "allowances"
)
