package service

import (
	"math"
	"strings"

	"github.com/linlinbupt123-crypto/flow_intel/chain"
	"github.com/linlinbupt123-crypto/flow_intel/entity"
	"github.com/linlinbupt123-crypto/flow_intel/repository"
	"github.com/linlinbupt123-crypto/flow_intel/request"
	"github.com/linlinbupt123-crypto/flow_intel/utils"
)

const (
	APIName    = "Flow Intel Analytics API"
	APIVersion = "2.0.0"

	// canned size of a token's transfer history
	tokenTransferTotal = 625

	// transfers are generated in excess so min_usd filtering leaves pages to fill
	transferOversample = 3
)

type HealthStatus struct {
	Message  string   `json:"message"`
	Version  string   `json:"version"`
	Status   string   `json:"status"`
	Features []string `json:"features"`
}

var (
	flowSortKeys = map[string]func(entity.ExchangeFlow) float64{
		"volume":  func(f entity.ExchangeFlow) float64 { return f.Volume },
		"price":   func(f entity.ExchangeFlow) float64 { return f.Price },
		"netflow": func(f entity.ExchangeFlow) float64 { return math.Abs(f.Netflow) },
	}
	transferSortKeys = map[string]func(entity.Transfer) float64{
		"value": func(t entity.Transfer) float64 { return float64(t.ValueRaw) },
		"usd":   func(t entity.Transfer) float64 { return t.USDRaw },
	}
	balanceSortKeys = map[string]func(entity.EntityBalance) float64{
		"value":  func(b entity.EntityBalance) float64 { return b.Value },
		"usd":    func(b entity.EntityBalance) float64 { return b.USD },
		"change": func(b entity.EntityBalance) float64 { return math.Abs(b.ValueChange) },
	}
)

// AnalyticsService shapes reference tables and generated records into the
// listings the dashboard renders.
type AnalyticsService struct {
	Reference *repository.Reference
	Generator *Generator
}

func NewAnalyticsService(ref *repository.Reference, gen *Generator) *AnalyticsService {
	return &AnalyticsService{Reference: ref, Generator: gen}
}

func (s *AnalyticsService) Health() HealthStatus {
	return HealthStatus{
		Message:  APIName,
		Version:  APIVersion,
		Status:   "healthy",
		Features: []string{"filtering", "sorting", "pagination", "real_logos"},
	}
}

func (s *AnalyticsService) Entities() []entity.TopEntity {
	return s.Reference.TopEntities()
}

// ExchangeFlows sorts and truncates the flow table. Flows carry no category,
// so FilterType has nothing to select on.
func (s *AnalyticsService) ExchangeFlows(q *request.ExchangeFlowQuery) []entity.FlowView {
	flows := s.Reference.ExchangeFlows()
	SortDesc(flows, flowSortKeys[q.SortBy])
	flows = Paginate(flows, 1, q.Limit).Items
	return Map(flows, func(f entity.ExchangeFlow) entity.FlowView {
		return entity.FlowView{
			Asset:         f.Asset,
			Logo:          f.Logo,
			Color:         f.Color,
			Price:         utils.FormatPrice(f.Price),
			PriceChange:   f.PriceChange,
			Volume:        utils.ScaleFormat(f.Volume),
			VolumeChange:  f.VolumeChange,
			Netflow:       utils.ScaleFormat(f.Netflow),
			NetflowChange: f.NetflowChange,
		}
	})
}

func (s *AnalyticsService) Transfers(q *request.TransferQuery) (Page[entity.Transfer], error) {
	transfers, err := s.Generator.Transfers(q.Limit*transferOversample, q.Token)
	if err != nil {
		return Page[entity.Transfer]{}, err
	}
	if q.MinUSD != nil {
		minUSD := *q.MinUSD
		transfers = Filter(transfers, func(t entity.Transfer) bool { return t.USDRaw >= minUSD })
	}
	SortDesc(transfers, transferSortKeys[q.SortBy])
	return Paginate(transfers, q.Page, q.Limit), nil
}

func (s *AnalyticsService) Tokens() []entity.Asset {
	return s.Reference.Assets()
}

// Token returns the asset for id, or the default asset when id is unknown.
func (s *AnalyticsService) Token(id string) entity.Asset {
	return s.Reference.AssetOrDefault(id)
}

func (s *AnalyticsService) BalanceChanges(q *request.BalanceChangeQuery) []entity.BalanceChangeView {
	changes := s.Reference.BalanceChanges()
	switch typ := strings.ToUpper(q.FilterType); typ {
	case entity.TypeCEX, entity.TypeDEX:
		changes = Filter(changes, func(b entity.EntityBalance) bool { return b.Type == typ })
	}
	SortDesc(changes, balanceSortKeys[q.SortBy])
	return Map(changes, func(b entity.EntityBalance) entity.BalanceChangeView {
		return entity.BalanceChangeView{
			Name:        b.Name,
			Type:        b.Type,
			Logo:        b.Logo,
			Value:       utils.ScaleFormat(b.Value),
			ValueChange: utils.SignedPercent(b.ValueChange),
			USD:         utils.ScaleFormat(b.USD),
			USDChange:   utils.SignedPercent(b.USDChange),
		}
	})
}

func (s *AnalyticsService) Holders(q *request.HolderQuery) []entity.HolderView {
	holders := s.Reference.Holders()
	if q.ViewType == "entities" {
		holders = Filter(holders, func(h entity.Holder) bool { return h.IsEntity })
	}
	return Map(holders, func(h entity.Holder) entity.HolderView {
		name := h.Name
		if !h.IsEntity {
			name = chain.Checksum(h.Address)
		}
		return entity.HolderView{
			Name:     name,
			IsEntity: h.IsEntity,
			Logo:     h.Logo,
			Value:    utils.FormatDecimalThousands(h.Value),
			Pct:      utils.Percent(h.Pct),
			USD:      utils.ScaleFormat(h.USD),
		}
	})
}

// TokenTransfers pages through a token's canned transfer history, generating
// only the rows of the requested page.
func (s *AnalyticsService) TokenTransfers(id string, q *request.TokenTransferQuery) (Page[entity.Transfer], error) {
	asset := s.Reference.AssetOrDefault(id)
	_, n := pageWindow(tokenTransferTotal, q.Page, q.Limit)
	transfers, err := s.Generator.Transfers(n, asset.Symbol)
	if err != nil {
		return Page[entity.Transfer]{}, err
	}
	return Page[entity.Transfer]{
		Items:      transfers,
		Total:      tokenTransferTotal,
		Page:       q.Page,
		TotalPages: totalPages(tokenTransferTotal, q.Limit),
	}, nil
}

func (s *AnalyticsService) PriceHistory(id string, q *request.PriceHistoryQuery) []entity.PricePoint {
	return s.Generator.PriceSeries(s.Reference.AssetOrDefault(id), q.Period)
}

func (s *AnalyticsService) OpenInterest(q *request.OpenInterestQuery) []entity.VenuePoint {
	return s.Generator.OpenInterestSeries(q.Period, q.Exchange)
}

func (s *AnalyticsService) CEXVolume(q *request.CEXVolumeQuery) []entity.VenuePoint {
	return s.Generator.VolumeSeries(q.Period, q.Exchange)
}

func (s *AnalyticsService) MarketStats() entity.MarketStats {
	return s.Reference.MarketStats()
}
