package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linlinbupt123-crypto/flow_intel/entity"
	"github.com/linlinbupt123-crypto/flow_intel/repository"
	"github.com/linlinbupt123-crypto/flow_intel/utils"
)

var (
	uuidPattern    = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	addressPattern = regexp.MustCompile(`^0x[0-9a-f]{23}\.\.\.$`)
)

func newTestGenerator(t *testing.T, seed int64) (*Generator, *repository.Reference) {
	t.Helper()
	ref, err := repository.Default()
	require.NoError(t, err)
	return NewGenerator(utils.NewRand(seed), ref), ref
}

func TestTransferShape(t *testing.T) {
	g, ref := newTestGenerator(t, 1)

	chains := map[string]bool{}
	for _, c := range ref.Chains() {
		chains[c.ID] = true
	}
	symbols := map[string]bool{}
	for _, a := range ref.Assets() {
		symbols[a.Symbol] = true
	}

	for i := 0; i < 200; i++ {
		tr, err := g.Transfer("")
		require.NoError(t, err)

		assert.Regexp(t, uuidPattern, tr.ID)
		assert.True(t, chains[tr.Chain], tr.Chain)
		assert.True(t, symbols[tr.Token], tr.Token)
		assert.Contains(t, ref.TimeLabels(), tr.Time)
		assert.Regexp(t, addressPattern, tr.FromAddress)
		assert.Regexp(t, addressPattern, tr.ToAddress)

		assert.GreaterOrEqual(t, tr.ValueRaw, int64(minTransferQuantity))
		assert.LessOrEqual(t, tr.ValueRaw, int64(maxTransferQuantity))
		assert.Equal(t, utils.FormatThousands(tr.ValueRaw), tr.Value)
		assert.GreaterOrEqual(t, tr.USDRaw, float64(tr.ValueRaw)*minUnitPrice)
		assert.Less(t, tr.USDRaw, float64(tr.ValueRaw)*maxUnitPrice)
		assert.Equal(t, utils.ScaleFormat(tr.USDRaw), tr.USD)

		// labels come in pairs
		assert.Equal(t, tr.FromLabel == nil, tr.ToLabel == nil)
		assert.Equal(t, tr.FromLabel == nil, tr.FromLogo == nil)
		if tr.FromLabel != nil {
			assert.True(t, strings.HasSuffix(*tr.FromLabel, "Deposit"))
			assert.Contains(t, *tr.ToLabel, "Hot Wallet")
		}
	}
}

func TestTransferLabelOutcomes(t *testing.T) {
	g, _ := newTestGenerator(t, 2)
	seen := map[string]int{}
	for i := 0; i < 500; i++ {
		tr, err := g.Transfer("")
		require.NoError(t, err)
		if tr.FromLabel == nil {
			seen["none"]++
		} else {
			seen[*tr.FromLabel]++
		}
	}
	assert.Len(t, seen, 5)
}

func TestTransferTokenFilter(t *testing.T) {
	g, ref := newTestGenerator(t, 3)

	tr, err := g.Transfer("sol")
	require.NoError(t, err)
	assert.Equal(t, "SOL", tr.Token)
	assert.Equal(t, ref.TokenLogo("sol"), tr.TokenLogo)
	assert.Equal(t, "#14F195", tr.TokenColor)

	tr, err = g.Transfer("pepe")
	require.NoError(t, err)
	assert.Equal(t, "PEPE", tr.Token)
	assert.Equal(t, ref.TokenLogo("eth"), tr.TokenLogo)
	assert.Equal(t, "#627EEA", tr.TokenColor)
}

func TestTransfersSeededReproducible(t *testing.T) {
	a, _ := newTestGenerator(t, 99)
	b, _ := newTestGenerator(t, 99)

	ta, err := a.Transfers(5, "")
	require.NoError(t, err)
	tb, err := b.Transfers(5, "")
	require.NoError(t, err)
	assert.Equal(t, ta, tb)

	ids := map[string]bool{}
	for _, tr := range ta {
		ids[tr.ID] = true
	}
	assert.Len(t, ids, 5)
}

func TestPriceSeries(t *testing.T) {
	g, ref := newTestGenerator(t, 4)
	btc := ref.AssetOrDefault("btc")

	week := g.PriceSeries(btc, utils.PeriodWeek)
	require.Len(t, week, 7)
	for i, p := range week {
		assert.Equal(t, utils.PeriodToSeriesSpec(utils.PeriodWeek).Label(i), p.Date)
		bound := btc.Price * maxPriceVariation * float64(7-i) / 7
		assert.InDelta(t, btc.Price, p.Price, bound+0.01)
	}
	assert.Equal(t, "Day 7", week[6].Date)

	assert.Len(t, g.PriceSeries(btc, "bogus"), 1095)
	assert.Equal(t, "2023-01", g.PriceSeries(btc, "bogus")[0].Date)
}

func TestPriceSeriesConvergesOnCurrentPrice(t *testing.T) {
	g, ref := newTestGenerator(t, 5)
	eth := ref.AssetOrDefault("eth")

	series := g.PriceSeries(eth, utils.PeriodYear)
	last := series[len(series)-1]
	// the last step is weighted 1/n
	assert.InDelta(t, eth.Price, last.Price, eth.Price*maxPriceVariation/365+0.01)
}

func TestOpenInterestSeries(t *testing.T) {
	g, _ := newTestGenerator(t, 6)

	month := g.OpenInterestSeries(utils.PeriodMonth, "")
	require.Len(t, month, 30)
	for i, p := range month {
		assert.Equal(t, "date", p.LabelKey)
		assert.Equal(t, i, mustAtoi(t, p.Label))
		require.Len(t, p.Readings, 2)
		binance, _ := p.Reading("binance")
		bybit, _ := p.Reading("bybit")
		assert.True(t, binance >= 1.5 && binance <= 3.5, binance)
		assert.True(t, bybit >= 0.5 && bybit <= 1.5, bybit)
	}

	assert.Len(t, g.OpenInterestSeries("3M", ""), 90)

	only := g.OpenInterestSeries(utils.PeriodMonth, "Bybit")
	for _, p := range only {
		require.Len(t, p.Readings, 1)
		assert.Equal(t, "bybit", p.Readings[0].Venue)
	}
	assert.Len(t, g.OpenInterestSeries(utils.PeriodMonth, "okx")[0].Readings, 2)
}

func TestVolumeSeries(t *testing.T) {
	g, _ := newTestGenerator(t, 7)

	for _, period := range []string{utils.Period24H, utils.Period7D, utils.Period30D, "junk"} {
		series := g.VolumeSeries(period, "")
		require.Len(t, series, 24, period)
		assert.Equal(t, "00:00", series[0].Label)
		assert.Equal(t, "23:00", series[23].Label)
		for _, p := range series {
			assert.Equal(t, "time", p.LabelKey)
			binance, _ := p.Reading("binance")
			bybit, _ := p.Reading("bybit")
			assert.True(t, binance >= 100 && binance <= 800, binance)
			assert.True(t, bybit >= 50 && bybit <= 200, bybit)
			assert.Equal(t, float64(int(binance)), binance)
		}
	}

	binanceOnly := g.VolumeSeries(utils.Period24H, "binance")
	assert.Equal(t, "binance", binanceOnly[0].Readings[0].Venue)
	assert.Len(t, binanceOnly[0].Readings, 1)
}

func TestGeneratorObserver(t *testing.T) {
	g, _ := newTestGenerator(t, 8)
	counts := map[string]int{}
	g.Observe(func(kind string, n int) { counts[kind] += n })

	_, err := g.Transfers(4, "")
	require.NoError(t, err)
	g.PriceSeries(entity.Asset{Price: 10}, utils.PeriodWeek)
	g.OpenInterestSeries(utils.PeriodMonth, "")
	g.VolumeSeries(utils.Period24H, "")

	assert.Equal(t, map[string]int{
		"transfer":            4,
		"price_point":         7,
		"open_interest_point": 30,
		"volume_point":        24,
	}, counts)
}
