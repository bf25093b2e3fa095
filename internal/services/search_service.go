package services

import (
	"context"
	"strings"
	"sync/atomic"
	"unicode"

	"estateFront/internal/backend"
	"estateFront/internal/filters"
	"estateFront/internal/models"
	"estateFront/utils"
)

// SearchService runs listing searches against the backend. Responses are
// never cancelled at the transport level; a generation counter makes sure a
// superseded search is fetched to completion but never applied.
type SearchService struct {
	Backend *backend.Client

	generation atomic.Uint64
}

func (s *SearchService) Search(ctx context.Context, f filters.FilterState) (models.SearchResult, error) {
	gen := s.generation.Add(1)

	res, err := s.searchWithVariants(ctx, f)
	if err != nil {
		return models.SearchResult{}, err
	}
	if s.generation.Load() != gen {
		return models.SearchResult{}, models.ErrStaleSearch
	}
	return res, nil
}

// searchWithVariants reissues an empty city search with case-variant
// spellings before accepting zero results. This is the only automatic retry
// in the whole service.
func (s *SearchService) searchWithVariants(ctx context.Context, f filters.FilterState) (models.SearchResult, error) {
	res, err := s.Backend.SearchProperties(ctx, f)
	if err != nil {
		return models.SearchResult{}, err
	}
	if len(res.Listings) > 0 || strings.TrimSpace(f.City) == "" {
		return res, nil
	}

	for _, variant := range cityVariants(f.City) {
		alt := f
		alt.City = variant
		vres, verr := s.Backend.SearchProperties(ctx, alt)
		if verr != nil {
			utils.Logger.WithError(verr).Debugf("city variant %q search failed", variant)
			continue
		}
		if len(vres.Listings) > 0 {
			return vres, nil
		}
	}
	return res, nil
}

func cityVariants(city string) []string {
	city = strings.TrimSpace(city)
	var variants []string
	seen := map[string]bool{city: true}
	for _, candidate := range []string{titleCase(city), strings.ToLower(city)} {
		if candidate != "" && !seen[candidate] {
			seen[candidate] = true
			variants = append(variants, candidate)
		}
	}
	return variants
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
