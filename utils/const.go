package utils

// Scale thresholds for display formatting.
const (
	Thousand = 1_000
	Million  = 1_000_000
	Billion  = 1_000_000_000
)

// Period codes accepted by the chart endpoints.
const (
	PeriodWeek    = "1W"
	PeriodMonth   = "1M"
	PeriodQuarter = "3M"
	PeriodYear    = "1Y"
	PeriodAll     = "ALL"

	Period24H = "24H"
	Period7D  = "7D"
	Period30D = "30D"
)

// first year of the synthetic all-time price series
const seriesBaseYear = 2023
