package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rateserve/fx_rates_app/internal/apperrors"
	portssvc "github.com/rateserve/fx_rates_app/internal/core/ports/services"
	"github.com/rateserve/fx_rates_app/internal/dto"
	"github.com/rateserve/fx_rates_app/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	pageSize            int
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, pageSize int) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		pageSize:            pageSize,
	}
}

// RegisterExchangeRateRoutes registers routes related to exchange rates on an
// already-authenticated group. Callers wanting a stricter authorization
// policy can attach middleware to rg before calling this.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade, pageSize int) {
	h := newExchangeRateHandler(exchangeRateService, pageSize)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/:rateID", h.getExchangeRate)
		exchangeRates.POST("/fetch", h.fetchExchangeRates)
	}
}

// listExchangeRates serves the filterable, sortable, paginated rate listing.
// Filters arrive in the bracketed form, e.g. ?filter[currencyTo][]=USD, plus
// a plain ?page= parameter.
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := dto.ParseRateFilter(c.Request.URL.Query())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid rate filter", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to parse rate filter", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process filter parameters"})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	rates, total, err := h.exchangeRateService.ListRates(c.Request.Context(), filter, page, h.pageSize)
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	logger.Info("Exchange rates listed", slog.Int("count", len(rates)), slog.Int("total", total))
	c.JSON(http.StatusOK, dto.NewListRatesResponse(rates, page, h.pageSize, total, c.Request.URL.Path))
}

// getExchangeRate serves the single-item detail view.
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	rate, err := h.exchangeRateService.GetRateByID(c.Request.Context(), rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Exchange rate not found", slog.String("rate_id", rateID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
			return
		}
		logger.Error("Failed to get exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateDetailResponse(rate))
}

// fetchExchangeRates is the on-demand ingestion trigger. The run is
// all-or-nothing: any failure leaves the store unchanged.
func (h *exchangeRateHandler) fetchExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received on-demand rate fetch request")

	stored, err := h.exchangeRateService.FetchAndStoreRates(c.Request.Context(), portssvc.FetchOptions{Force: true})
	if err != nil {
		var fetchErr *apperrors.FetchError
		var connErr *apperrors.ConnectionError
		var parseErr *apperrors.ParseError
		switch {
		case errors.As(err, &fetchErr), errors.As(err, &connErr):
			logger.Error("Feed unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate feed is unavailable"})
		case errors.As(err, &parseErr):
			logger.Error("Feed document malformed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate feed returned a malformed document"})
		default:
			logger.Error("Failed to store fetched rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store exchange rates"})
		}
		return
	}

	logger.Info("Exchange rates fetched and stored", slog.Int("stored", len(stored)))
	c.JSON(http.StatusCreated, dto.NewFetchRatesResponse(stored))
}
