package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/linlinbupt123-crypto/flow_intel/chain"
	"github.com/linlinbupt123-crypto/flow_intel/entity"
	"github.com/linlinbupt123-crypto/flow_intel/repository"
	"github.com/linlinbupt123-crypto/flow_intel/utils"
)

const (
	minTransferQuantity = 1
	maxTransferQuantity = 100_000
	minUnitPrice        = 0.5
	maxUnitPrice        = 10_000

	// price series points deviate at most this fraction from the current price
	maxPriceVariation = 0.05
)

type venueRange struct {
	name     string
	min, max float64
}

var (
	openInterestVenues = []venueRange{
		{name: "binance", min: 1.5, max: 3.5},
		{name: "bybit", min: 0.5, max: 1.5},
	}
	volumeVenues = []venueRange{
		{name: "binance", min: 100, max: 800},
		{name: "bybit", min: 50, max: 200},
	}
)

// Generator synthesizes mock analytics records from the reference tables.
// Output depends only on the injected random source, so a seeded source
// gives reproducible records.
type Generator struct {
	rng     *rand.Rand
	ref     *repository.Reference
	observe func(kind string, n int)
}

func NewGenerator(rng *rand.Rand, ref *repository.Reference) *Generator {
	return &Generator{rng: rng, ref: ref, observe: func(string, int) {}}
}

// Observe registers fn to be told how many records of each kind are generated.
func (g *Generator) Observe(fn func(kind string, n int)) {
	if fn != nil {
		g.observe = fn
	}
}

// Transfer synthesizes one transfer. An empty tokenFilter picks a featured asset.
func (g *Generator) Transfer(tokenFilter string) (entity.Transfer, error) {
	chains := g.ref.Chains()
	ch := chains[g.rng.Intn(len(chains))]

	var token, tokenLogo string
	if tokenFilter != "" {
		token = strings.ToUpper(tokenFilter)
		tokenLogo = g.ref.TokenLogo(token)
	} else {
		assets := g.ref.Assets()
		a := assets[g.rng.Intn(len(assets))]
		token, tokenLogo = a.Symbol, a.Logo
	}

	times := g.ref.TimeLabels()
	t := entity.Transfer{
		Chain:      ch.ID,
		ChainColor: ch.Color,
		ChainIcon:  ch.Icon,
		Time:       times[g.rng.Intn(len(times))],
		Token:      token,
		TokenLogo:  tokenLogo,
		TokenColor: g.ref.TokenColor(token),
	}

	// one extra outcome leaves both sides unlabelled
	cps := g.ref.Counterparties()
	if pick := g.rng.Intn(len(cps) + 1); pick < len(cps) {
		cp := cps[pick]
		t.FromLabel, t.ToLabel = &cp.From, &cp.To
		t.FromLogo, t.ToLogo = &cp.Logo, &cp.Logo
	}

	id, err := uuid.NewRandomFromReader(utils.Reader(g.rng))
	if err != nil {
		return entity.Transfer{}, fmt.Errorf("transfer id: %w", err)
	}
	t.ID = id.String()

	from, err := chain.RandomAddress(utils.Reader(g.rng))
	if err != nil {
		return entity.Transfer{}, fmt.Errorf("from address: %w", err)
	}
	to, err := chain.RandomAddress(utils.Reader(g.rng))
	if err != nil {
		return entity.Transfer{}, fmt.Errorf("to address: %w", err)
	}
	t.FromAddress, t.ToAddress = chain.Truncate(from), chain.Truncate(to)

	qty := int64(minTransferQuantity + g.rng.Intn(maxTransferQuantity-minTransferQuantity+1))
	usd := float64(qty) * g.uniform(minUnitPrice, maxUnitPrice)
	t.ValueRaw, t.Value = qty, utils.FormatThousands(qty)
	t.USDRaw, t.USD = usd, utils.ScaleFormat(usd)
	g.observe("transfer", 1)
	return t, nil
}

// Transfers synthesizes n transfers.
func (g *Generator) Transfers(n int, tokenFilter string) ([]entity.Transfer, error) {
	out := make([]entity.Transfer, 0, n)
	for i := 0; i < n; i++ {
		t, err := g.Transfer(tokenFilter)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// PriceSeries walks back from the asset's current price. Perturbation shrinks
// linearly towards the last point, so the series converges on the current price.
func (g *Generator) PriceSeries(asset entity.Asset, period string) []entity.PricePoint {
	spec := utils.PeriodToSeriesSpec(period)
	n := spec.Points
	out := make([]entity.PricePoint, n)
	for i := 0; i < n; i++ {
		variation := g.uniform(-maxPriceVariation, maxPriceVariation)
		price := asset.Price * (1 + variation*float64(n-i)/float64(n))
		out[i] = entity.PricePoint{Date: spec.Label(i), Price: utils.Round2(price)}
	}
	g.observe("price_point", n)
	return out
}

// OpenInterestSeries samples per-venue open interest (in billions).
func (g *Generator) OpenInterestSeries(period, exchange string) []entity.VenuePoint {
	venues := selectVenues(openInterestVenues, exchange)
	n := utils.OpenInterestPoints(period)
	out := make([]entity.VenuePoint, n)
	for i := range out {
		p := entity.VenuePoint{LabelKey: "date", Label: strconv.Itoa(i)}
		for _, v := range venues {
			p.Readings = append(p.Readings, entity.VenueReading{
				Venue: v.name,
				Value: utils.Round2(g.uniform(v.min, v.max)),
			})
		}
		out[i] = p
	}
	g.observe("open_interest_point", n)
	return out
}

// VolumeSeries samples hourly per-venue CEX volume.
func (g *Generator) VolumeSeries(period, exchange string) []entity.VenuePoint {
	venues := selectVenues(volumeVenues, exchange)
	n := utils.VolumePoints(period)
	out := make([]entity.VenuePoint, n)
	for i := range out {
		p := entity.VenuePoint{LabelKey: "time", Label: fmt.Sprintf("%02d:00", i)}
		for _, v := range venues {
			p.Readings = append(p.Readings, entity.VenueReading{
				Venue: v.name,
				Value: float64(g.intBetween(int(v.min), int(v.max))),
			})
		}
		out[i] = p
	}
	g.observe("volume_point", n)
	return out
}

// selectVenues narrows venues to the named exchange; unknown names keep all.
func selectVenues(venues []venueRange, exchange string) []venueRange {
	name := strings.ToLower(strings.TrimSpace(exchange))
	for _, v := range venues {
		if v.name == name {
			return []venueRange{v}
		}
	}
	return venues
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// intBetween draws from [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}
