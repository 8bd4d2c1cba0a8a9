package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"ExchangeScout/internal/domain/models"
)

//go:embed exchanges.json
var exchangeData []byte

type exchangeFile struct {
	Exchanges []models.Exchange `json:"exchanges"`
}

// Registry is the static exchange table. Built once at startup, read-only
// afterwards.
type Registry struct {
	list     []models.Exchange
	byCode   map[string]models.Exchange
	byAlias  map[string]models.Exchange
	byMIC    map[string]models.Exchange
	bySuffix map[string]models.Exchange
}

// New builds the registry from the embedded exchange table.
func New() (*Registry, error) {
	return Load(exchangeData)
}

// Load builds a registry from raw JSON. Exposed for tests and alternative
// data files.
func Load(data []byte) (*Registry, error) {
	var f exchangeFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse exchange data: %w", err)
	}
	if len(f.Exchanges) == 0 {
		return nil, fmt.Errorf("exchange data is empty")
	}

	r := &Registry{
		byCode:   make(map[string]models.Exchange, len(f.Exchanges)),
		byAlias:  make(map[string]models.Exchange),
		byMIC:    make(map[string]models.Exchange),
		bySuffix: make(map[string]models.Exchange),
	}

	for _, ex := range f.Exchanges {
		code := strings.ToUpper(ex.Code)
		if code == "" {
			return nil, fmt.Errorf("exchange entry without code: %q", ex.Name)
		}
		if _, dup := r.byCode[code]; dup {
			return nil, fmt.Errorf("duplicate exchange code %s", code)
		}
		ex.Code = code
		r.byCode[code] = ex
		for _, a := range ex.Aliases {
			r.byAlias[strings.ToUpper(a)] = ex
		}
		if ex.MIC != "" {
			r.byMIC[strings.ToUpper(ex.MIC)] = ex
		}
		// First entry wins for shared suffixes, so ASX resolves .AX
		// ahead of the CDI listing.
		if ex.Suffix != "" {
			if _, ok := r.bySuffix[strings.ToUpper(ex.Suffix)]; !ok {
				r.bySuffix[strings.ToUpper(ex.Suffix)] = ex
			}
		}
		r.list = append(r.list, ex)
	}

	sort.Slice(r.list, func(i, j int) bool {
		if r.list[i].Country != r.list[j].Country {
			return r.list[i].Country < r.list[j].Country
		}
		return r.list[i].Name < r.list[j].Name
	})

	return r, nil
}

// List returns all exchanges sorted by (country, name).
func (r *Registry) List() []models.Exchange {
	out := make([]models.Exchange, len(r.list))
	copy(out, r.list)
	return out
}

// Get looks up an exchange by its canonical code, case-insensitively.
func (r *Registry) Get(code string) (models.Exchange, bool) {
	ex, ok := r.byCode[strings.ToUpper(code)]
	return ex, ok
}

// Resolve maps an upstream exchange identifier to a registry entry. It accepts
// canonical codes, provider aliases and MICs.
func (r *Registry) Resolve(code string) (models.Exchange, bool) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if key == "" {
		return models.Exchange{}, false
	}
	if ex, ok := r.byCode[key]; ok {
		return ex, true
	}
	if ex, ok := r.byAlias[key]; ok {
		return ex, true
	}
	if ex, ok := r.byMIC[key]; ok {
		return ex, true
	}
	return models.Exchange{}, false
}

// ResolveSuffix maps a ticker suffix such as ".AX" to its exchange.
func (r *Registry) ResolveSuffix(suffix string) (models.Exchange, bool) {
	ex, ok := r.bySuffix[strings.ToUpper(suffix)]
	return ex, ok
}

// Search returns exchanges whose code, name or country contains the query,
// case-insensitively, in registry order.
func (r *Registry) Search(query string) []models.Exchange {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []models.Exchange
	for _, ex := range r.list {
		if strings.Contains(strings.ToUpper(ex.Code), q) ||
			strings.Contains(strings.ToUpper(ex.Name), q) ||
			strings.Contains(strings.ToUpper(ex.Country), q) {
			out = append(out, ex)
		}
	}
	return out
}
