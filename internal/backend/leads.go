package backend

import (
	"context"
	"net/http"

	"estateFront/internal/models"
)

func (c *Client) SubmitContact(ctx context.Context, lead models.ContactLead) (string, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/api/leads/contact", lead)
	if err != nil {
		return "", err
	}
	return successMessage(data), nil
}

func (c *Client) SubmitSellProperty(ctx context.Context, lead models.SellPropertyLead) (string, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/api/leads/sell-property", lead)
	if err != nil {
		return "", err
	}
	return successMessage(data), nil
}

func (c *Client) SubmitEnquiry(ctx context.Context, enquiry models.BuySellEnquiry) (string, error) {
	data, err := c.doJSON(ctx, http.MethodPost, "/api/leads/enquiry", enquiry)
	if err != nil {
		return "", err
	}
	return successMessage(data), nil
}
