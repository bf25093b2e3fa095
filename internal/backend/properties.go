package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"estateFront/internal/filters"
	"estateFront/internal/models"
)

// flexID tolerates ids sent as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	*f = flexID(string(b))
	return nil
}

type listingPayload struct {
	models.Listing
	RawID   flexID `json:"id"`
	MongoID flexID `json:"_id"`
}

func (p listingPayload) normalized() models.Listing {
	l := p.Listing
	l.ID = strings.TrimSpace(string(p.RawID))
	if l.ID == "" {
		l.ID = strings.TrimSpace(string(p.MongoID))
	}
	if l.Image == "" && len(l.Images) > 0 {
		l.Image = l.Images[0]
	}
	return l
}

func (c *Client) SearchProperties(ctx context.Context, f filters.FilterState) (models.SearchResult, error) {
	q := f.Values()
	data, err := c.doJSON(ctx, http.MethodGet, "/api/properties?"+q.Encode(), nil)
	if err != nil {
		return models.SearchResult{}, err
	}
	return decodeSearchResult(data, f)
}

func decodeSearchResult(data []byte, f filters.FilterState) (models.SearchResult, error) {
	res := models.SearchResult{Page: f.Page, Limit: f.Limit}

	raw, ok := extractList(data)
	if !ok {
		return res, fmt.Errorf("unrecognized search response shape")
	}

	var payloads []listingPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		return res, fmt.Errorf("decode listings: %w", err)
	}
	for _, p := range payloads {
		listing := p.normalized()
		if listing.ID == "" {
			continue
		}
		res.Listings = append(res.Listings, listing)
	}

	if total, ok := probeTotal(data); ok {
		res.Total = total
	} else {
		res.Total = len(res.Listings)
	}
	return res, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (models.Listing, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/api/properties/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Listing{}, err
	}

	var payload listingPayload
	if err := json.Unmarshal(extractObject(data), &payload); err != nil {
		return models.Listing{}, fmt.Errorf("decode property: %w", err)
	}
	return payload.normalized(), nil
}

// RateProperty submits a 1-5 star rating for one listing.
func (c *Client) RateProperty(ctx context.Context, id string, rating int) error {
	body := map[string]int{"rating": rating}
	_, err := c.doJSON(ctx, http.MethodPost, "/api/properties/"+url.PathEscape(id)+"/ratings", body)
	return err
}

// SubmitQuery sends a visitor question about one listing.
func (c *Client) SubmitQuery(ctx context.Context, q models.PropertyQuery) (string, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/api/properties/"+url.PathEscape(q.PropertyID)+"/queries", q)
	if err != nil {
		return "", err
	}
	return successMessage(data), nil
}
