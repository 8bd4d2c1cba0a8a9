package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadsEmbeddedData(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	require.NotEmpty(t, r.List())
}

func TestGetKnownCodes(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for _, ex := range r.List() {
		got, ok := r.Get(ex.Code)
		require.Truef(t, ok, "expected %s to resolve", ex.Code)
		assert.Equal(t, ex.Code, got.Code)
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	got, ok := r.Get("asx")
	require.True(t, ok)
	assert.Equal(t, "ASX", got.Code)
	assert.Equal(t, ".AX", got.Suffix)
}

func TestSearchMatchesCodeNameAndCountry(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	codes := func(query string) []string {
		var out []string
		for _, ex := range r.Search(query) {
			out = append(out, ex.Code)
		}
		return out
	}

	assert.Contains(t, codes("asx"), "ASX")
	assert.Contains(t, codes("AUSTRALIAN"), "ASX")
	assert.Contains(t, codes("united kingdom"), "LSE")
	assert.Empty(t, codes(""))
	assert.Empty(t, codes("no such exchange"))
}

func TestListSortedByCountryThenName(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	list := r.List()
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if prev.Country == cur.Country {
			assert.LessOrEqual(t, prev.Name, cur.Name)
		} else {
			assert.Less(t, prev.Country, cur.Country)
		}
	}
}

func TestResolveAliasesAndMICs(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	nasdaq, ok := r.Resolve("NMS")
	require.True(t, ok)
	assert.Equal(t, "NASDAQ", nasdaq.Code)

	nyse, ok := r.Resolve("XNYS")
	require.True(t, ok)
	assert.Equal(t, "NYSE", nyse.Code)

	_, ok = r.Resolve("ZZZZ")
	assert.False(t, ok)

	_, ok = r.Resolve("  ")
	assert.False(t, ok)
}

func TestResolveSuffixPrefersBaseExchange(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	// ASX and the CDI listing share .AX; the base exchange wins.
	ex, ok := r.ResolveSuffix(".AX")
	require.True(t, ok)
	assert.Equal(t, "ASX", ex.Code)

	lse, ok := r.ResolveSuffix(".l")
	require.True(t, ok)
	assert.Equal(t, "LSE", lse.Code)

	_, ok = r.ResolveSuffix(".ZZ")
	assert.False(t, ok)
}

func TestOTCSubtypesPresent(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	for code, subtype := range map[string]string{
		"PNK": "otc_pink",
		"OEM": "otc_expert",
		"QX":  "otcqx",
		"QB":  "otcqb",
		"CXA": "cdi",
	} {
		ex, ok := r.Get(code)
		require.Truef(t, ok, "expected %s in registry", code)
		assert.Equal(t, subtype, ex.Subtype)
	}
}

func TestLoadRejectsBadData(t *testing.T) {
	_, err := Load([]byte(`{"exchanges": []}`))
	require.Error(t, err)

	_, err = Load([]byte(`not json`))
	require.Error(t, err)

	_, err = Load([]byte(`{"exchanges": [{"code": "A", "name": "a"}, {"code": "a", "name": "b"}]}`))
	require.Error(t, err)

	_, err = Load([]byte(`{"exchanges": [{"name": "missing code"}]}`))
	require.Error(t, err)
}
