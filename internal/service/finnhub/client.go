package finnhub

import (
	"context"
	"net/http"
	"strings"
	"time"

	"ExchangeScout/internal/domain/models"
	"ExchangeScout/internal/domain/repository"
	"ExchangeScout/internal/service/provider"
	xhttp "ExchangeScout/pkg/http"
	applogger "ExchangeScout/pkg/logger"
)

const (
	providerCode = "finnhub"
	providerName = "Finnhub"
)

// Config holds the Finnhub endpoint settings. An API key is required; calls
// without one fail before any network traffic.
type Config struct {
	APIKey  string
	BaseURL string
}

// Client implements the MarketData provider backed by the Finnhub symbol
// search API. Exchange operations delegate to the static registry.
type Client struct {
	provider.RegistryExchanges

	cfg     Config
	httpc   *xhttp.Client
	metrics repository.Metrics
	logger  *applogger.Logger
}

// New creates a new Finnhub provider.
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

type searchEntry struct {
	Symbol        string `json:"symbol"`
	DisplaySymbol string `json:"displaySymbol"`
	Description   string `json:"description"`
	Type          string `json:"type"`
}

type searchResponse struct {
	Count  int           `json:"count"`
	Result []searchEntry `json:"result"`
}

// SearchSymbols issues one search call and maps the entries into raw symbol
// results. Finnhub does not return an exchange field; listings outside the US
// carry a ticker suffix (BHP.AX), which the registry resolves back to an
// exchange code.
func (c *Client) SearchSymbols(ctx context.Context, query models.SearchQuery) ([]models.SymbolResult, error) {
	if c.cfg.APIKey == "" {
		c.metrics.RecordError("configuration")
		return nil, xhttp.ConfigurationError(providerCode)
	}

	start := time.Now()
	var resp searchResponse
	err := c.httpc.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: http.MethodGet,
		URL:    c.cfg.BaseURL + "/search",
		QueryParams: map[string][]string{
			"q":     {query.Text},
			"token": {c.cfg.APIKey},
		},
	}, &resp)
	c.metrics.RecordUpstreamLatency(providerCode, time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordUpstreamRequest(providerCode, "search_symbols", "error")
		c.logger.Warn("finnhub search failed", applogger.Error(err))
		return nil, xhttp.MapUpstreamError(providerCode, err)
	}
	c.metrics.RecordUpstreamRequest(providerCode, "search_symbols", "ok")

	out := make([]models.SymbolResult, 0, len(resp.Result))
	for _, e := range resp.Result {
		if e.Symbol == "" {
			continue
		}

		display := e.DisplaySymbol
		if display == "" {
			display = e.Symbol
		}
		res := models.SymbolResult{
			Symbol:        e.Symbol,
			DisplaySymbol: display,
			Description:   e.Description,
			Type:          strings.ToLower(e.Type),
		}
		if dot := strings.LastIndex(e.Symbol, "."); dot > 0 {
			if ex, ok := c.RegistryExchanges.Registry.ResolveSuffix(e.Symbol[dot:]); ok {
				res.Exchange = ex.Code
			}
		}
		if res.Exchange == "" {
			res.ExchangeUnknown = true
		}
		out = append(out, res)
	}

	c.logger.Debug("finnhub search",
		applogger.String("query", query.Text),
		applogger.Int("count", resp.Count),
		applogger.Int("mapped", len(out)),
	)
	return out, nil
}
