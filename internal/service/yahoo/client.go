package yahoo

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
	providerCode = "yahoo"
	providerName = "Yahoo Finance"
)

// Config holds the Yahoo Finance endpoint settings. Yahoo's lookup API needs
// no credentials, only a browser-like User-Agent.
type Config struct {
	BaseURL   string
	UserAgent string
}

// Client implements the MarketData provider backed by the Yahoo Finance
// lookup API. Exchange operations delegate to the static registry.
type Client struct {
	provider.RegistryExchanges

	cfg     Config
	httpc   *xhttp.Client
	metrics repository.Metrics
	logger  *applogger.Logger
}

// New creates a new Yahoo Finance provider.
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

type lookupDocument struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortName"`
	Exchange  string `json:"exchange"`
	QuoteType string `json:"quoteType"`
}

type lookupResponse struct {
	Finance struct {
		Result []struct {
			Documents []lookupDocument `json:"documents"`
		} `json:"result"`
	} `json:"finance"`
}

// SearchSymbols issues one lookup call and maps the documents into raw
// symbol results. Filtering, ordering and dedup happen in the normalizer.
func (c *Client) SearchSymbols(ctx context.Context, query models.SearchQuery) ([]models.SymbolResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = 50
	}

	start := time.Now()
	var resp lookupResponse
	err := c.httpc.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: http.MethodGet,
		URL:    c.cfg.BaseURL + "/v1/finance/lookup",
		Headers: map[string]string{
			"User-Agent": c.cfg.UserAgent,
		},
		QueryParams: map[string][]string{
			"query":     {query.Text},
			"type":      {"equity,etf"},
			"count":     {strconv.Itoa(limit)},
			"formatted": {"true"},
		},
	}, &resp)
	c.metrics.RecordUpstreamLatency(providerCode, time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordUpstreamRequest(providerCode, "search_symbols", "error")
		c.logger.Warn("yahoo lookup failed", applogger.Error(err))
		return nil, xhttp.MapUpstreamError(providerCode, err)
	}
	c.metrics.RecordUpstreamRequest(providerCode, "search_symbols", "ok")

	var docs []lookupDocument
	if len(resp.Finance.Result) > 0 {
		docs = resp.Finance.Result[0].Documents
	}

	out := make([]models.SymbolResult, 0, len(docs))
	for _, d := range docs {
		qt := strings.ToLower(d.QuoteType)
		if qt != "equity" && qt != "etf" {
			continue
		}
		if d.Symbol == "" || d.ShortName == "" {
			continue
		}

		res := models.SymbolResult{
			Symbol:        d.Symbol,
			DisplaySymbol: d.Symbol,
			Description:   d.ShortName,
			Type:          qt,
		}
		if ex, ok := c.RegistryExchanges.Registry.Resolve(d.Exchange); ok {
			res.Exchange = ex.Code
		} else {
			res.Exchange = d.Exchange
			res.ExchangeUnknown = true
		}
		out = append(out, res)
	}

	c.logger.Debug("yahoo lookup",
		applogger.String("query", query.Text),
		applogger.Int("documents", len(docs)),
		applogger.Int("mapped", len(out)),
	)
	return out, nil
}
