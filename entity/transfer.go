package entity

// Chain is display metadata for a network.
type Chain struct {
	ID    string `yaml:"id" json:"id"`
	Color string `yaml:"color" json:"color"`
	Icon  string `yaml:"icon" json:"icon"`
	Name  string `yaml:"name" json:"name"`
}

// Transfer is a synthetic on-chain transfer. Labels and their logos are nil
// when the counterparty is not a known entity.
type Transfer struct {
	ID          string  `json:"id"`
	Chain       string  `json:"chain"`
	ChainColor  string  `json:"chain_color"`
	ChainIcon   string  `json:"chain_icon"`
	Time        string  `json:"time"`
	FromAddress string  `json:"from_address"`
	FromLabel   *string `json:"from_label"`
	FromLogo    *string `json:"from_logo"`
	ToAddress   string  `json:"to_address"`
	ToLabel     *string `json:"to_label"`
	ToLogo      *string `json:"to_logo"`
	Value       string  `json:"value"`
	ValueRaw    int64   `json:"value_raw"`
	Token       string  `json:"token"`
	TokenLogo   string  `json:"token_logo"`
	TokenColor  string  `json:"token_color"`
	USD         string  `json:"usd"`
	USDRaw      float64 `json:"usd_raw"`
}

// CounterpartyLabel names the deposit and hot wallet of an exchange.
type CounterpartyLabel struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Logo string `yaml:"logo"`
}
