package entity

// Entity categories.
const (
	TypeCEX = "CEX"
	TypeDEX = "DEX"
)

// TopEntity is a carousel entry. Its figures are pre-rendered.
type TopEntity struct {
	Name       string `yaml:"name" json:"name"`
	Price      string `yaml:"price" json:"price"`
	Change     string `yaml:"change" json:"change"`
	IsPositive bool   `yaml:"is_positive" json:"is_positive"`
	Logo       string `yaml:"logo" json:"logo"`
}

// EntityBalance is an entity's holding of a token and its recent change.
type EntityBalance struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Logo        string  `yaml:"logo"`
	Value       float64 `yaml:"value"`
	ValueChange float64 `yaml:"value_change"`
	USD         float64 `yaml:"usd"`
	USDChange   float64 `yaml:"usd_change"`
}

type BalanceChangeView struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Logo        string `json:"logo"`
	Value       string `json:"value"`
	ValueChange string `json:"value_change"`
	USD         string `json:"usd"`
	USDChange   string `json:"usd_change"`
}

// Holder is a top holder of a token. Logo is nil for unlabelled wallets.
type Holder struct {
	Name     string  `yaml:"name"`
	Address  string  `yaml:"address"`
	IsEntity bool    `yaml:"is_entity"`
	Logo     *string `yaml:"logo"`
	Value    float64 `yaml:"value"`
	Pct      float64 `yaml:"pct"`
	USD      float64 `yaml:"usd"`
}

type HolderView struct {
	Name     string  `json:"name"`
	IsEntity bool    `json:"is_entity"`
	Logo     *string `json:"logo"`
	Value    string  `json:"value"`
	Pct      string  `json:"pct"`
	USD      string  `json:"usd"`
}

// MarketStats is the static global-market summary.
type MarketStats struct {
	TotalMarketCap  string `yaml:"total_market_cap" json:"total_market_cap"`
	MarketCapChange string `yaml:"market_cap_change" json:"market_cap_change"`
	BTCDominance    string `yaml:"btc_dominance" json:"btc_dominance"`
	BTCChange       string `yaml:"btc_change" json:"btc_change"`
	ETHDominance    string `yaml:"eth_dominance" json:"eth_dominance"`
	ETHChange       string `yaml:"eth_change" json:"eth_change"`
	Volume24h       string `yaml:"volume_24h" json:"volume_24h"`
	VolumeChange    string `yaml:"volume_change" json:"volume_change"`
	FearGreed       int    `yaml:"fear_greed" json:"fear_greed"`
}
