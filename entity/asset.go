package entity

// Asset is a featured token snapshot.
type Asset struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Symbol        string  `yaml:"symbol" json:"symbol"`
	Price         float64 `yaml:"price" json:"price"`
	Change24h     float64 `yaml:"change_24h" json:"change_24h"`
	Volume24h     float64 `yaml:"volume_24h" json:"volume_24h"`
	MarketCap     float64 `yaml:"market_cap" json:"market_cap"`
	FDV           float64 `yaml:"fdv" json:"fdv"`
	CurrentSupply string  `yaml:"current_supply" json:"current_supply"`
	MaxSupply     string  `yaml:"max_supply" json:"max_supply"`
	ATH           float64 `yaml:"ath" json:"ath"`
	ATL           float64 `yaml:"atl" json:"atl"`
	Logo          string  `yaml:"logo" json:"logo"`
	Color         string  `yaml:"color" json:"color"`
}

// ExchangeFlow is an asset's aggregate exchange activity. Netflow is signed:
// inflow positive, outflow negative.
type ExchangeFlow struct {
	Asset         string  `yaml:"asset"`
	Logo          string  `yaml:"logo"`
	Color         string  `yaml:"color"`
	Price         float64 `yaml:"price"`
	PriceChange   float64 `yaml:"price_change"`
	Volume        float64 `yaml:"volume"`
	VolumeChange  float64 `yaml:"volume_change"`
	Netflow       float64 `yaml:"netflow"`
	NetflowChange float64 `yaml:"netflow_change"`
}

// FlowView is the display shape of an ExchangeFlow.
type FlowView struct {
	Asset         string  `json:"asset"`
	Logo          string  `json:"logo"`
	Color         string  `json:"color"`
	Price         string  `json:"price"`
	PriceChange   float64 `json:"price_change"`
	Volume        string  `json:"volume"`
	VolumeChange  float64 `json:"volume_change"`
	Netflow       string  `json:"netflow"`
	NetflowChange float64 `json:"netflow_change"`
}
