package provider

import (
	"fmt"
	"strings"

	"ExchangeScout/internal/domain/models"
	"ExchangeScout/internal/domain/repository"
	xhttp "ExchangeScout/pkg/http"
)

// Set is the fixed provider registry, keyed by provider code and resolved
// once at startup. Read-only afterwards.
type Set struct {
	byCode      map[string]repository.MarketData
	order       []string
	defaultCode string
}

// NewSet builds a provider set. The default code must name one of the given
// adapters.
func NewSet(defaultCode string, adapters ...repository.MarketData) (*Set, error) {
	s := &Set{
		byCode:      make(map[string]repository.MarketData, len(adapters)),
		defaultCode: strings.ToLower(defaultCode),
	}
	for _, a := range adapters {
		code := strings.ToLower(a.Code())
		if _, dup := s.byCode[code]; dup {
			return nil, fmt.Errorf("duplicate provider code %s", code)
		}
		s.byCode[code] = a
		s.order = append(s.order, code)
	}
	if _, ok := s.byCode[s.defaultCode]; !ok {
		return nil, fmt.Errorf("default provider %s is not registered", defaultCode)
	}
	return s, nil
}

// Get resolves a provider by code. An empty code selects the default.
func (s *Set) Get(code string) (repository.MarketData, error) {
	if code == "" {
		code = s.defaultCode
	}
	p, ok := s.byCode[strings.ToLower(code)]
	if !ok {
		return nil, xhttp.NotFoundErrorf("unknown provider: %s", code)
	}
	return p, nil
}

// Default returns the configured default provider code.
func (s *Set) Default() string {
	return s.defaultCode
}

// List returns provider identities in registration order.
func (s *Set) List() []models.ProviderInfo {
	out := make([]models.ProviderInfo, 0, len(s.order))
	for _, code := range s.order {
		p := s.byCode[code]
		out = append(out, models.ProviderInfo{Code: p.Code(), Name: p.Name()})
	}
	return out
}
