package request

// --- listing queries ---
type ExchangeFlowQuery struct {
	SortBy     string `form:"sort_by"`     // volume / price / netflow
	FilterType string `form:"filter_type"` // CEX+DEX / MARKET CAP / VOLUME
	Limit      int    `form:"limit,default=10" binding:"min=1,max=50"`
}

type TransferQuery struct {
	Limit  int      `form:"limit,default=15" binding:"min=1,max=50"`
	MinUSD *float64 `form:"min_usd"`
	Token  string   `form:"token"`
	SortBy string   `form:"sort_by,default=time"` // time / value / usd
	Page   int      `form:"page,default=1" binding:"min=1"`
}

type BalanceChangeQuery struct {
	FilterType string `form:"filter_type"`         // CEX / DEX / ALL
	SortBy     string `form:"sort_by,default=usd"` // value / usd / change
}

type HolderQuery struct {
	ViewType string `form:"view_type,default=addresses"` // addresses / entities
}

type TokenTransferQuery struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
	Page  int `form:"page,default=1" binding:"min=1"`
}

// --- chart queries ---
type PriceHistoryQuery struct {
	Period string `form:"period,default=ALL"` // 1W / 1M / 3M / 1Y / ALL
}

type OpenInterestQuery struct {
	Period   string `form:"period,default=1M"`
	Exchange string `form:"exchange"` // binance / bybit
}

type CEXVolumeQuery struct {
	Period     string `form:"period,default=24H"`       // 24H / 7D / 30D
	VolumeType string `form:"volume_type,default=spot"` // spot / perp
	Exchange   string `form:"exchange"`
}
