package api

import (
	"strings"

	"ExchangeScout/internal/domain/models"
	domrepo "ExchangeScout/internal/domain/repository"
	"ExchangeScout/internal/usecase"
	xhttp "ExchangeScout/pkg/http"
	xlogger "ExchangeScout/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ExchangeHandler exposes the exchange and symbol search operations over
// HTTP. It validates input and delegates; no business logic lives here.
type ExchangeHandler struct {
	logger    *xlogger.Logger
	search    *usecase.SearchService
	registry  domrepo.ExchangeRegistry
	selection domrepo.SelectionStore
}

func NewExchangeHandler(
	logger *xlogger.Logger,
	search *usecase.SearchService,
	registry domrepo.ExchangeRegistry,
	selection domrepo.SelectionStore,
) *ExchangeHandler {
	return &ExchangeHandler{
		logger:    logger,
		search:    search,
		registry:  registry,
		selection: selection,
	}
}

func (h *ExchangeHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/exchanges", h.ListExchanges)
	g.GET("/exchanges/search", h.SearchExchanges)
	g.GET("/exchanges/selected", h.GetSelected)
	g.POST("/exchanges/selected", h.SaveSelected)
	g.GET("/exchanges/:code", h.GetExchange)
	g.GET("/search", h.SearchSymbols)
	g.GET("/providers", h.Providers)
}

func (h *ExchangeHandler) ListExchanges(c echo.Context) error {
	exchanges, err := h.search.ListExchanges(c.Request().Context(), c.QueryParam("provider"))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, exchanges)
}

func (h *ExchangeHandler) GetExchange(c echo.Context) error {
	ex, err := h.search.GetExchange(c.Request().Context(), c.QueryParam("provider"), c.Param("code"))
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, ex)
}

func (h *ExchangeHandler) SearchExchanges(c echo.Context) error {
	req := &models.ExchangeSearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	exchanges, err := h.search.SearchExchanges(c.Request().Context(), req.Provider, req.Q)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, exchanges)
}

func (h *ExchangeHandler) GetSelected(c echo.Context) error {
	codes, err := h.selection.Load()
	if err != nil {
		h.logger.Error("selection load failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("could not load selected exchanges").WithError(err))
	}
	return xhttp.SuccessResponse(c, codes)
}

func (h *ExchangeHandler) SaveSelected(c echo.Context) error {
	req := &models.SelectedExchangesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	codes := make([]string, 0, len(req.Exchanges))
	for _, code := range req.Exchanges {
		ex, ok := h.registry.Get(code)
		if !ok {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("unknown exchange code: %s", code))
		}
		codes = append(codes, ex.Code)
	}

	if err := h.selection.Save(codes); err != nil {
		h.logger.Error("selection save failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("could not save selected exchanges").WithError(err))
	}
	return xhttp.SuccessResponse(c, xhttp.AckResponse{Status: "ok", Selected: codes})
}

func (h *ExchangeHandler) SearchSymbols(c echo.Context) error {
	req := &models.SymbolSearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	query := models.SearchQuery{
		Text:           strings.TrimSpace(req.Query),
		ExchangeFilter: req.Exchange,
		Type:           models.SearchType(req.Type),
		Provider:       req.Provider,
		Limit:          req.Limit,
	}
	if query.Text == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("query parameter is required"))
	}

	results, err := h.search.SearchSymbols(c.Request().Context(), query)
	if err != nil {
		h.logger.Warn("symbol search failed",
			xlogger.String("query", query.Text),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, results)
}

func (h *ExchangeHandler) Providers(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.search.Providers())
}
