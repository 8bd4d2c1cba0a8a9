package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"ExchangeScout/internal/domain/models"
	"ExchangeScout/internal/domain/repository"
	"ExchangeScout/internal/service/provider"
	xhttp "ExchangeScout/pkg/http"
	applogger "ExchangeScout/pkg/logger"
)

// SearchService translates generic search requests into provider calls and
// normalizes the responses: suffix handling, match ordering, exchange
// filtering and dedup.
type SearchService struct {
	providers *provider.Set
	registry  repository.ExchangeRegistry
	metrics   repository.Metrics
	logger    *applogger.Logger
	timeout   time.Duration
}

// NewSearchService creates the search service. The timeout bounds every
// upstream provider call.
func NewSearchService(
	providers *provider.Set,
	registry repository.ExchangeRegistry,
	metrics repository.Metrics,
	logger *applogger.Logger,
	timeout time.Duration,
) *SearchService {
	return &SearchService{
		providers: providers,
		registry:  registry,
		metrics:   metrics,
		logger:    logger,
		timeout:   timeout,
	}
}

// Providers lists the registered provider identities.
func (s *SearchService) Providers() []models.ProviderInfo {
	return s.providers.List()
}

// ListExchanges lists exchanges through the selected provider.
func (s *SearchService) ListExchanges(ctx context.Context, providerCode string) ([]models.Exchange, error) {
	p, err := s.providers.Get(providerCode)
	if err != nil {
		return nil, err
	}
	return p.ListExchanges(ctx)
}

// GetExchange fetches one exchange by code through the selected provider.
func (s *SearchService) GetExchange(ctx context.Context, providerCode, code string) (models.Exchange, error) {
	p, err := s.providers.Get(providerCode)
	if err != nil {
		return models.Exchange{}, err
	}
	return p.GetExchange(ctx, code)
}

// SearchExchanges searches exchange metadata through the selected provider.
func (s *SearchService) SearchExchanges(ctx context.Context, providerCode, query string) ([]models.Exchange, error) {
	p, err := s.providers.Get(providerCode)
	if err != nil {
		return nil, err
	}
	return p.SearchExchanges(ctx, query)
}

// SearchSymbols runs a full symbol search: provider resolution, outbound
// suffix application, one bounded upstream call, then normalization.
func (s *SearchService) SearchSymbols(ctx context.Context, query models.SearchQuery) ([]models.SymbolResult, error) {
	p, err := s.providers.Get(query.Provider)
	if err != nil {
		s.metrics.RecordError("not_found")
		return nil, err
	}

	var filter *models.Exchange
	if query.ExchangeFilter != "" {
		ex, ok := s.registry.Get(query.ExchangeFilter)
		if !ok {
			s.metrics.RecordError("not_found")
			return nil, xhttp.NotFoundErrorf("exchange %s not found", query.ExchangeFilter)
		}
		filter = &ex
	}

	outbound := query
	outbound.Text = s.outboundText(query.Text, filter)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := p.SearchSymbols(callCtx, outbound)
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	results := s.normalize(raw, query, filter)
	s.metrics.RecordSearchResults(p.Code(), len(results))
	s.logger.Debug("symbol search",
		applogger.String("provider", p.Code()),
		applogger.String("query", query.Text),
		applogger.Int("raw", len(raw)),
		applogger.Int("results", len(results)),
	)
	return results, nil
}

// outboundText appends the exchange suffix to the raw query when the filter
// targets a suffixed exchange and the text does not already carry a known
// suffix. A filter without a suffix rule passes the query unmodified.
func (s *SearchService) outboundText(text string, filter *models.Exchange) string {
	if filter == nil || filter.Suffix == "" {
		return text
	}
	if dot := strings.LastIndex(text, "."); dot > 0 {
		if _, known := s.registry.ResolveSuffix(text[dot:]); known {
			return text
		}
	}
	return text + filter.Suffix
}

func (s *SearchService) normalize(raw []models.SymbolResult, query models.SearchQuery, filter *models.Exchange) []models.SymbolResult {
	type seenKey struct {
		symbol   string
		exchange string
	}
	seen := make(map[seenKey]struct{}, len(raw))

	results := make([]models.SymbolResult, 0, len(raw))
	for _, r := range raw {
		r.DisplaySymbol = s.stripSuffix(r.DisplaySymbol)

		kind, ok := matchKind(r, query)
		if !ok {
			continue
		}
		r.MatchKind = kind

		if filter != nil {
			// Unresolvable exchange codes are dropped under a filter.
			if r.ExchangeUnknown || !strings.EqualFold(r.Exchange, filter.Code) {
				continue
			}
		}

		key := seenKey{symbol: strings.ToUpper(r.Symbol), exchange: strings.ToUpper(r.Exchange)}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		results = append(results, r)
	}

	// Stronger matches first, provider order preserved within a rank.
	sort.SliceStable(results, func(i, j int) bool {
		return matchRank(results[i].MatchKind) < matchRank(results[j].MatchKind)
	})

	if query.Limit > 0 && len(results) > query.Limit {
		results = results[:query.Limit]
	}
	return results
}

// stripSuffix removes a registry-known ticker suffix for display.
func (s *SearchService) stripSuffix(symbol string) string {
	dot := strings.LastIndex(symbol, ".")
	if dot <= 0 {
		return symbol
	}
	if _, known := s.registry.ResolveSuffix(symbol[dot:]); known {
		return symbol[:dot]
	}
	return symbol
}

// matchKind classifies how a result matches the query text under the given
// search type, or reports that it does not match at all.
func matchKind(r models.SymbolResult, query models.SearchQuery) (string, bool) {
	text := strings.ToUpper(strings.TrimSpace(query.Text))
	if text == "" {
		return "", false
	}

	target := strings.ToUpper(r.DisplaySymbol)
	if query.Type == models.SearchTypeCompany {
		target = strings.ToUpper(r.Description)
	}

	switch {
	case target == text:
		return models.MatchExact, true
	case strings.HasPrefix(target, text):
		return models.MatchPrefix, true
	case strings.Contains(target, text):
		return models.MatchSubstring, true
	}

	// Symbol searches also accept the full upstream ticker, so a suffixed
	// query like BHP.AX still matches.
	if query.Type == models.SearchTypeSymbol && strings.Contains(strings.ToUpper(r.Symbol), text) {
		return models.MatchSubstring, true
	}
	return "", false
}

func matchRank(kind string) int {
	switch kind {
	case models.MatchExact:
		return 0
	case models.MatchPrefix:
		return 1
	default:
		return 2
	}
}

func (s *SearchService) recordFailure(err error) {
	var appErr *xhttp.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case xhttp.CodeTimeout:
			s.metrics.RecordError("timeout")
		case xhttp.CodeConfiguration:
			s.metrics.RecordError("configuration")
		default:
			s.metrics.RecordError("upstream")
		}
		return
	}
	s.metrics.RecordError("upstream")
}
