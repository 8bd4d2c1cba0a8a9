package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ExchangeScout/internal/domain/models"
	"ExchangeScout/internal/registry"
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

func newClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	reg, err := registry.New()
	require.NoError(t, err)

	cfg := Config{BaseURL: baseURL, UserAgent: "test-agent"}
	return New(cfg, reg, xhttp.NewClient(xhttp.WithTimeout(2*time.Second)), &fakeMetrics{}, applogger.Nop())
}

const lookupBody = `{
	"finance": {
		"result": [{
			"documents": [
				{"symbol": "AAPL", "shortName": "Apple Inc.", "exchange": "NMS", "quoteType": "equity"},
				{"symbol": "BHP.AX", "shortName": "BHP Group", "exchange": "ASX", "quoteType": "EQUITY"},
				{"symbol": "GLD", "shortName": "SPDR Gold Trust", "exchange": "PCX", "quoteType": "etf"},
				{"symbol": "^GSPC", "shortName": "S&P 500", "exchange": "SNP", "quoteType": "index"},
				{"symbol": "NONAME", "shortName": "", "exchange": "NMS", "quoteType": "equity"}
			]
		}]
	}
}`

func TestSearchSymbolsMapsDocuments(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(lookupBody))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	out, err := c.SearchSymbols(context.Background(), models.SearchQuery{Text: "apple", Limit: 10})
	require.NoError(t, err)

	require.NotNil(t, gotReq)
	assert.Equal(t, "/v1/finance/lookup", gotReq.URL.Path)
	assert.Equal(t, "apple", gotReq.URL.Query().Get("query"))
	assert.Equal(t, "equity,etf", gotReq.URL.Query().Get("type"))
	assert.Equal(t, "10", gotReq.URL.Query().Get("count"))
	assert.Equal(t, "test-agent", gotReq.Header.Get("User-Agent"))

	// Index and nameless documents are dropped.
	require.Len(t, out, 3)

	aapl := out[0]
	assert.Equal(t, "AAPL", aapl.Symbol)
	assert.Equal(t, "Apple Inc.", aapl.Description)
	assert.Equal(t, "NASDAQ", aapl.Exchange)
	assert.Equal(t, "equity", aapl.Type)
	assert.False(t, aapl.ExchangeUnknown)

	bhp := out[1]
	assert.Equal(t, "ASX", bhp.Exchange)
	assert.Equal(t, "equity", bhp.Type)

	gld := out[2]
	assert.Equal(t, "etf", gld.Type)
	assert.True(t, gld.ExchangeUnknown)
	assert.Equal(t, "PCX", gld.Exchange)
}

func TestSearchSymbolsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"finance": {"result": []}}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	out, err := c.SearchSymbols(context.Background(), models.SearchQuery{Text: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearchSymbolsUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	_, err := c.SearchSymbols(context.Background(), models.SearchQuery{Text: "apple"})
	require.Error(t, err)

	var appErr *xhttp.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.Contains(t, appErr.Message, "429")
}

func TestSearchSymbolsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.SearchSymbols(ctx, models.SearchQuery{Text: "apple"})
	require.Error(t, err)

	var appErr *xhttp.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusGatewayTimeout, appErr.Status)
}
