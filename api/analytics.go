package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	wrapErrors "github.com/linlinbupt123-crypto/flow_intel/errors"
	"github.com/linlinbupt123-crypto/flow_intel/request"
	"github.com/linlinbupt123-crypto/flow_intel/service"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	log       logrus.FieldLogger
}

func NewAnalyticsHandler(as *service.AnalyticsService, log logrus.FieldLogger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: as, log: log}
}

// fail answers with the status mapped from err's code.
func (h *AnalyticsHandler) fail(c *gin.Context, err error) {
	status := wrapErrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.WithError(err).Error("analytics handler failed")
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}

// bind parses query parameters into req, answering 400 on violations.
func (h *AnalyticsHandler) bind(c *gin.Context, op string, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		h.fail(c, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidQuery, op, err))
		return false
	}
	return true
}

func pageBody[T any](key string, p service.Page[T]) gin.H {
	return gin.H{
		key:           p.Items,
		"total":       p.Total,
		"page":        p.Page,
		"total_pages": p.TotalPages,
	}
}

func (h *AnalyticsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Health())
}

func (h *AnalyticsHandler) Entities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entities": h.analytics.Entities()})
}

func (h *AnalyticsHandler) ExchangeFlows(c *gin.Context) {
	var req request.ExchangeFlowQuery
	if !h.bind(c, "bind exchange flows query", &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"flows": h.analytics.ExchangeFlows(&req)})
}

func (h *AnalyticsHandler) Transfers(c *gin.Context) {
	var req request.TransferQuery
	if !h.bind(c, "bind transfers query", &req) {
		return
	}
	page, err := h.analytics.Transfers(&req)
	if err != nil {
		h.fail(c, wrapErrors.WrapWithCode(wrapErrors.CodeInternal, "generate transfers", err))
		return
	}
	c.JSON(http.StatusOK, pageBody("transfers", page))
}

func (h *AnalyticsHandler) Tokens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tokens": h.analytics.Tokens()})
}

// Token answers with the default asset for unknown ids rather than 404.
func (h *AnalyticsHandler) Token(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Token(c.Param("id")))
}

func (h *AnalyticsHandler) BalanceChanges(c *gin.Context) {
	var req request.BalanceChangeQuery
	if !h.bind(c, "bind balance changes query", &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"changes": h.analytics.BalanceChanges(&req)})
}

func (h *AnalyticsHandler) Holders(c *gin.Context) {
	var req request.HolderQuery
	if !h.bind(c, "bind holders query", &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"holders": h.analytics.Holders(&req)})
}

func (h *AnalyticsHandler) TokenTransfers(c *gin.Context) {
	var req request.TokenTransferQuery
	if !h.bind(c, "bind token transfers query", &req) {
		return
	}
	page, err := h.analytics.TokenTransfers(c.Param("id"), &req)
	if err != nil {
		h.fail(c, wrapErrors.WrapWithCode(wrapErrors.CodeInternal, "generate token transfers", err))
		return
	}
	c.JSON(http.StatusOK, pageBody("transfers", page))
}

func (h *AnalyticsHandler) PriceHistory(c *gin.Context) {
	var req request.PriceHistoryQuery
	if !h.bind(c, "bind price history query", &req) {
		return
	}
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"token_id": id,
		"period":   req.Period,
		"data":     h.analytics.PriceHistory(id, &req),
	})
}

func (h *AnalyticsHandler) OpenInterest(c *gin.Context) {
	var req request.OpenInterestQuery
	if !h.bind(c, "bind open interest query", &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":   h.analytics.OpenInterest(&req),
		"period": req.Period,
	})
}

func (h *AnalyticsHandler) CEXVolume(c *gin.Context) {
	var req request.CEXVolumeQuery
	if !h.bind(c, "bind cex volume query", &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":   h.analytics.CEXVolume(&req),
		"period": req.Period,
		"type":   req.VolumeType,
	})
}

func (h *AnalyticsHandler) MarketStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.MarketStats())
}
