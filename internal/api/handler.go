package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/etfpulse/internal/domain/dto"
	"github.com/guttosm/etfpulse/internal/service"
	"github.com/guttosm/etfpulse/internal/stats"
	"github.com/guttosm/etfpulse/internal/storage"
)

// currencyUSD is reported for every price series; the data set is USD-only.
const currencyUSD = "USD"

// Handler provides HTTP handlers for the ETF catalog, prices and statistics.
//
// Responsibilities:
//   - Validate path and query parameters
//   - Delegate to the catalog service
//   - Translate domain errors into status codes and response bodies
type Handler struct {
	svc service.CatalogService
}

// NewHandler constructs a Handler backed by svc.
func NewHandler(svc service.CatalogService) *Handler {
	return &Handler{svc: svc}
}

// ListETFs handles GET /v1/etfs.
//
// ListETFs godoc
// @Summary      List ETFs
// @Description  Returns the whole ETF catalog
// @Tags         etfs
// @Produce      json
// @Success      200  {object}  dto.ETFListResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /v1/etfs [get]
func (h *Handler) ListETFs(c *gin.Context) {
	etfs, err := h.svc.ListETFs(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to list etfs", err)
		return
	}
	c.JSON(http.StatusOK, dto.ETFListResponse{Items: etfs, Count: len(etfs)})
}

// GetETF handles GET /v1/etfs/{symbol}.
//
// GetETF godoc
// @Summary      Get ETF
// @Description  Returns the catalog entry of one ETF; the symbol is case-insensitive
// @Tags         etfs
// @Produce      json
// @Param        symbol  path      string  true  "ETF symbol" example(SPY)
// @Success      200     {object}  models.ETF           "Success"
// @Failure      404     {object}  dto.ProblemResponse  "Not Found"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Router       /v1/etfs/{symbol} [get]
func (h *Handler) GetETF(c *gin.Context) {
	etf, err := h.svc.GetETF(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundProblem("ETF not found", err.Error(), c.Request.URL.Path))
			return
		}
		h.internalError(c, "failed to fetch etf", err)
		return
	}
	c.JSON(http.StatusOK, etf)
}

// GetPrices handles GET /v1/prices/{symbol}.
//
// Query Parameters:
//   - from (string, optional): first date (inclusive), YYYY-MM-DD. Defaults to the first available date.
//   - to   (string, optional): last date (inclusive), YYYY-MM-DD. Defaults to the last available date.
//
// GetPrices godoc
// @Summary      Get daily closes
// @Description  Returns the daily closes of a symbol within an optional inclusive date window
// @Tags         prices
// @Produce      json
// @Param        symbol  path      string  true   "ETF symbol" example(VT)
// @Param        from    query     string  false  "Start date in YYYY-MM-DD" example(2024-01-05)
// @Param        to      query     string  false  "End date in YYYY-MM-DD" example(2024-01-10)
// @Success      200     {object}  dto.PricesResponse   "Success"
// @Failure      404     {object}  dto.ProblemResponse  "Not Found"
// @Failure      422     {object}  dto.ErrorResponse    "Invalid window"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Router       /v1/prices/{symbol} [get]
func (h *Handler) GetPrices(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	window, err := h.svc.GetPrices(c.Request.Context(), c.Param("symbol"), from, to)
	if err != nil {
		h.windowError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PricesResponse{
		Symbol:   window.Symbol,
		Currency: currencyUSD,
		From:     window.From.Format(dto.DateLayout),
		To:       window.To.Format(dto.DateLayout),
		Count:    len(window.Points),
		Items:    dto.NewPriceItems(window.Points),
	})
}

// GetStats handles GET /v1/stats/{symbol}.
//
// GetStats godoc
// @Summary      Get risk statistics
// @Description  Returns annualized volatility (sample stdev of daily returns) and max drawdown over an optional inclusive date window
// @Tags         stats
// @Produce      json
// @Param        symbol  path      string  true   "ETF symbol" example(SPY)
// @Param        from    query     string  false  "Start date in YYYY-MM-DD" example(2024-01-02)
// @Param        to      query     string  false  "End date in YYYY-MM-DD" example(2024-01-31)
// @Success      200     {object}  dto.StatsResponse    "Success"
// @Failure      404     {object}  dto.ProblemResponse  "Not Found"
// @Failure      422     {object}  dto.ErrorResponse    "Invalid window or price data"
// @Failure      500     {object}  dto.ErrorResponse    "Internal Error"
// @Router       /v1/stats/{symbol} [get]
func (h *Handler) GetStats(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	st, err := h.svc.GetStats(c.Request.Context(), c.Param("symbol"), from, to)
	if err != nil {
		h.windowError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatsResponse(*st))
}

// parseWindow reads the optional from/to query dates. On failure it writes a
// 422 response and returns ok=false.
func parseWindow(c *gin.Context) (from, to *time.Time, ok bool) {
	parse := func(name string) (*time.Time, bool) {
		s := c.Query(name)
		if s == "" {
			return nil, true
		}
		d, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity,
				dto.NewErrorResponse("invalid "+name+" format, expected YYYY-MM-DD", err))
			return nil, false
		}
		return &d, true
	}

	if from, ok = parse("from"); !ok {
		return nil, nil, false
	}
	if to, ok = parse("to"); !ok {
		return nil, nil, false
	}
	return from, to, true
}

// windowError maps errors from the price window and statistics paths.
func (h *Handler) windowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundProblem("Prices not found", err.Error(), c.Request.URL.Path))
	case errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrRangeTooLarge),
		errors.Is(err, stats.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(err.Error(), nil))
	default:
		h.internalError(c, "failed to fetch prices", err)
	}
}

// internalError records err on the context for ErrorHandler to log and answers 500.
func (h *Handler) internalError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message, err))
}
