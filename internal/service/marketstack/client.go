package marketstack

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ExchangeScout/internal/domain/models"
	"ExchangeScout/internal/domain/repository"
	"ExchangeScout/internal/service/provider"
	xhttp "ExchangeScout/pkg/http"
	applogger "ExchangeScout/pkg/logger"
)

const (
	providerCode = "marketstack"
	providerName = "Marketstack"
)

// Config holds the Marketstack endpoint settings. An access key is required;
// calls without one fail before any network traffic.
type Config struct {
	APIKey  string
	BaseURL string
}

// Client implements the MarketData provider backed by the Marketstack ticker
// list API. Exchange operations delegate to the static registry.
type Client struct {
	provider.RegistryExchanges

	cfg     Config
	httpc   *xhttp.Client
	metrics repository.Metrics
	logger  *applogger.Logger
}

// New creates a new Marketstack provider.
func New(cfg Config, reg repository.ExchangeRegistry, httpc *xhttp.Client, m repository.Metrics, l *applogger.Logger) *Client {
	return &Client{
		RegistryExchanges: provider.RegistryExchanges{Registry: reg},
		cfg:               cfg,
		httpc:             httpc,
		metrics:           m,
		logger:            l,
	}
}

func (c *Client) Code() string { return providerCode }
func (c *Client) Name() string { return providerName }

type tickerEntry struct {
	Ticker        string `json:"ticker"`
	Name          string `json:"name"`
	StockExchange struct {
		MIC     string `json:"mic"`
		Acronym string `json:"acronym"`
	} `json:"stock_exchange"`
}

type tickerListResponse struct {
	Data []tickerEntry `json:"data"`
}

// SearchSymbols issues one ticker list call and maps the entries into raw
// symbol results. Exchanges resolve via MIC, falling back to the acronym.
func (c *Client) SearchSymbols(ctx context.Context, query models.SearchQuery) ([]models.SymbolResult, error) {
	if c.cfg.APIKey == "" {
		c.metrics.RecordError("configuration")
		return nil, xhttp.ConfigurationError(providerCode)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	start := time.Now()
	var resp tickerListResponse
	err := c.httpc.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: http.MethodGet,
		URL:    c.cfg.BaseURL + "/tickerslist",
		QueryParams: map[string][]string{
			"search":     {query.Text},
			"limit":      {strconv.Itoa(limit)},
			"access_key": {c.cfg.APIKey},
		},
	}, &resp)
	c.metrics.RecordUpstreamLatency(providerCode, time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordUpstreamRequest(providerCode, "search_symbols", "error")
		c.logger.Warn("marketstack search failed", applogger.Error(err))
		return nil, xhttp.MapUpstreamError(providerCode, err)
	}
	c.metrics.RecordUpstreamRequest(providerCode, "search_symbols", "ok")

	out := make([]models.SymbolResult, 0, len(resp.Data))
	for _, e := range resp.Data {
		if e.Ticker == "" {
			continue
		}

		res := models.SymbolResult{
			Symbol:        e.Ticker,
			DisplaySymbol: e.Ticker,
			Description:   e.Name,
			Type:          "equity",
		}
		if ex, ok := c.RegistryExchanges.Registry.Resolve(e.StockExchange.MIC); ok {
			res.Exchange = ex.Code
		} else if ex, ok := c.RegistryExchanges.Registry.Resolve(e.StockExchange.Acronym); ok {
			res.Exchange = ex.Code
		} else {
			res.Exchange = strings.ToUpper(e.StockExchange.Acronym)
			res.ExchangeUnknown = true
		}
		out = append(out, res)
	}

	c.logger.Debug("marketstack search",
		applogger.String("query", query.Text),
		applogger.Int("mapped", len(out)),
	)
	return out, nil
}
