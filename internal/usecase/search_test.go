package usecase

import (
	"context"
	"testing"
	"time"

	"ExchangeScout/internal/domain/models"
	"ExchangeScout/internal/registry"
	"ExchangeScout/internal/service/provider"
	xhttp "ExchangeScout/pkg/http"
	applogger "ExchangeScout/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMetrics struct {
	errors []string
}

func (m *fakeMetrics) RecordUpstreamRequest(provider, op, outcome string) {}
func (m *fakeMetrics) RecordUpstreamLatency(provider string, seconds float64) {
}
func (m *fakeMetrics) RecordSearchResults(provider string, count int) {}
func (m *fakeMetrics) RecordError(kind string)                       { m.errors = append(m.errors, kind) }

type fakeProvider struct {
	provider.RegistryExchanges

	code    string
	results []models.SymbolResult
	err     error

	calls     int
	lastQuery models.SearchQuery
}

func (p *fakeProvider) Code() string { return p.code }
func (p *fakeProvider) Name() string { return "Fake " + p.code }

func (p *fakeProvider) SearchSymbols(_ context.Context, query models.SearchQuery) ([]models.SymbolResult, error) {
	p.calls++
	p.lastQuery = query
	if p.err != nil {
		return nil, p.err
	}
	return p.results, nil
}

func newService(t *testing.T, fake *fakeProvider) (*SearchService, *fakeMetrics) {
	t.Helper()

	reg, err := registry.New()
	require.NoError(t, err)
	fake.RegistryExchanges = provider.RegistryExchanges{Registry: reg}

	set, err := provider.NewSet(fake.code, fake)
	require.NoError(t, err)

	m := &fakeMetrics{}
	return NewSearchService(set, reg, m, applogger.Nop(), time.Second), m
}

func symbolQuery(text string) models.SearchQuery {
	return models.SearchQuery{Text: text, Type: models.SearchTypeSymbol, Provider: "fake", Limit: 50}
}

func TestSearchSymbolsDeduplicates(t *testing.T) {
	fake := &fakeProvider{code: "fake", results: []models.SymbolResult{
		{Symbol: "AAPL", DisplaySymbol: "AAPL", Description: "Apple Inc", Exchange: "NASDAQ", Type: "equity"},
		{Symbol: "AAPL", DisplaySymbol: "AAPL", Description: "Apple Inc duplicate", Exchange: "NASDAQ", Type: "equity"},
		{Symbol: "AAPL", DisplaySymbol: "AAPL", Description: "Apple on NYSE", Exchange: "NYSE", Type: "equity"},
	}}
	svc, _ := newService(t, fake)

	out, err := svc.SearchSymbols(context.Background(), symbolQuery("AAPL"))
	require.NoError(t, err)
	require.Len(t, out, 2)

	// First occurrence wins for the duplicated pair.
	assert.Equal(t, "Apple Inc", out[0].Description)
}

func TestSearchSymbolsSuffixRoundTrip(t *testing.T) {
	fake := &fakeProvider{code: "fake", results: []models.SymbolResult{
		{Symbol: "BHP.AX", DisplaySymbol: "BHP.AX", Description: "BHP Group", Exchange: "ASX", Type: "equity"},
	}}
	svc, _ := newService(t, fake)

	q := symbolQuery("BHP")
	q.ExchangeFilter = "ASX"

	out, err := svc.SearchSymbols(context.Background(), q)
	require.NoError(t, err)

	// Outbound query carries the provider-required suffix.
	assert.Equal(t, "BHP.AX", fake.lastQuery.Text)

	// Inbound display symbol has the suffix stripped.
	require.Len(t, out, 1)
	assert.Equal(t, "BHP", out[0].DisplaySymbol)
	assert.Equal(t, "BHP.AX", out[0].Symbol)
	assert.Equal(t, "ASX", out[0].Exchange)
	assert.Equal(t, models.MatchExact, out[0].MatchKind)
}

func TestSearchSymbolsAlreadySuffixedQuery(t *testing.T) {
	fake := &fakeProvider{code: "fake"}
	svc, _ := newService(t, fake)

	q := symbolQuery("BHP.AX")
	q.ExchangeFilter = "ASX"

	_, err := svc.SearchSymbols(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, "BHP.AX", fake.lastQuery.Text)
}

func TestSearchSymbolsUnknownProviderNoNetworkCall(t *testing.T) {
	fake := &fakeProvider{code: "fake"}
	svc, _ := newService(t, fake)

	q := symbolQuery("AAPL")
	q.Provider = "bogus"

	_, err := svc.SearchSymbols(context.Background(), q)
	require.Error(t, err)

	var appErr *xhttp.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Zero(t, fake.calls)
}

func TestSearchSymbolsUnknownExchangeFilter(t *testing.T) {
	fake := &fakeProvider{code: "fake"}
	svc, _ := newService(t, fake)

	q := symbolQuery("AAPL")
	q.ExchangeFilter = "NOPE"

	_, err := svc.SearchSymbols(context.Background(), q)
	require.Error(t, err)

	var appErr *xhttp.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	assert.Zero(t, fake.calls)
}

func TestSearchSymbolsFilterDropsUnresolvedExchanges(t *testing.T) {
	fake := &fakeProvider{code: "fake", results: []models.SymbolResult{
		{Symbol: "BHP.AX", DisplaySymbol: "BHP.AX", Description: "BHP Group", Exchange: "ASX"},
		{Symbol: "BHPX", DisplaySymbol: "BHPX", Description: "BHP lookalike", Exchange: "???", ExchangeUnknown: true},
		{Symbol: "BHPL", DisplaySymbol: "BHPL", Description: "BHP London", Exchange: "LSE"},
	}}
	svc, _ := newService(t, fake)

	q := symbolQuery("BHP")
	q.ExchangeFilter = "ASX"

	out, err := svc.SearchSymbols(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ASX", out[0].Exchange)
}

func TestSearchSymbolsMatchOrdering(t *testing.T) {
	fake := &fakeProvider{code: "fake", results: []models.SymbolResult{
		{Symbol: "XGLD", DisplaySymbol: "XGLD", Description: "Gold ETF", Exchange: "NYSE"},
		{Symbol: "GLDX", DisplaySymbol: "GLDX", Description: "Gold Explorers", Exchange: "NYSE"},
		{Symbol: "GLD", DisplaySymbol: "GLD", Description: "Gold Trust", Exchange: "NYSE"},
	}}
	svc, _ := newService(t, fake)

	out, err := svc.SearchSymbols(context.Background(), symbolQuery("GLD"))
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, models.MatchExact, out[0].MatchKind)
	assert.Equal(t, "GLD", out[0].Symbol)
	assert.Equal(t, models.MatchPrefix, out[1].MatchKind)
	assert.Equal(t, "GLDX", out[1].Symbol)
	assert.Equal(t, models.MatchSubstring, out[2].MatchKind)
}

func TestSearchSymbolsCompanyType(t *testing.T) {
	fake := &fakeProvider{code: "fake", results: []models.SymbolResult{
		{Symbol: "AAPL", DisplaySymbol: "AAPL", Description: "Apple Inc", Exchange: "NASDAQ"},
		{Symbol: "APLE", DisplaySymbol: "APLE", Description: "Apple Hospitality REIT", Exchange: "NYSE"},
		{Symbol: "MSFT", DisplaySymbol: "MSFT", Description: "Microsoft Corporation", Exchange: "NASDAQ"},
	}}
	svc, _ := newService(t, fake)

	q := models.SearchQuery{Text: "apple", Type: models.SearchTypeCompany, Provider: "fake", Limit: 50}
	out, err := svc.SearchSymbols(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, r := range out {
		assert.Contains(t, []string{"AAPL", "APLE"}, r.Symbol)
	}
}

func TestSearchSymbolsLimit(t *testing.T) {
	fake := &fakeProvider{code: "fake", results: []models.SymbolResult{
		{Symbol: "GLD", DisplaySymbol: "GLD", Description: "Gold Trust", Exchange: "NYSE"},
		{Symbol: "GLDX", DisplaySymbol: "GLDX", Description: "Gold Explorers", Exchange: "NYSE"},
	}}
	svc, _ := newService(t, fake)

	q := symbolQuery("GLD")
	q.Limit = 1

	out, err := svc.SearchSymbols(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "GLD", out[0].Symbol)
}

func TestSearchSymbolsRecordsErrorKinds(t *testing.T) {
	fake := &fakeProvider{code: "fake", err: xhttp.TimeoutError("provider fake timed out")}
	svc, m := newService(t, fake)

	_, err := svc.SearchSymbols(context.Background(), symbolQuery("AAPL"))
	require.Error(t, err)
	assert.Contains(t, m.errors, "timeout")
}

func TestExchangeOperationsDelegate(t *testing.T) {
	fake := &fakeProvider{code: "fake"}
	svc, _ := newService(t, fake)
	ctx := context.Background()

	exchanges, err := svc.ListExchanges(ctx, "")
	require.NoError(t, err)
	assert.NotEmpty(t, exchanges)

	ex, err := svc.GetExchange(ctx, "", "ASX")
	require.NoError(t, err)
	assert.Equal(t, "ASX", ex.Code)

	_, err = svc.GetExchange(ctx, "", "NOPE")
	require.Error(t, err)

	found, err := svc.SearchExchanges(ctx, "", "asx")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, "ASX", found[0].Code)

	providers := svc.Providers()
	require.Len(t, providers, 1)
	assert.Equal(t, "fake", providers[0].Code)
}
