package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"estateFront/internal/backend"
	"estateFront/internal/models"
)

const genericLeadThanks = "Thanks, we will get back to you shortly"

// LeadService validates and forwards the lead-generation forms. Validation
// failures never reach the backend; they surface next to the form control.
type LeadService struct {
	Backend    *backend.Client
	Uploads    *UploadService
	Validate   *validator.Validate
	InboxEmail string
}

func NewLeadService(api *backend.Client, uploads *UploadService, inboxEmail string) *LeadService {
	return &LeadService{
		Backend:    api,
		Uploads:    uploads,
		Validate:   validator.New(),
		InboxEmail: inboxEmail,
	}
}

func (s *LeadService) SubmitContact(ctx context.Context, lead models.ContactLead) (string, error) {
	if err := s.Validate.Struct(lead); err != nil {
		return "", err
	}
	msg, err := s.Backend.SubmitContact(ctx, lead)
	if err != nil {
		return "", err
	}
	if msg == "" {
		msg = genericLeadThanks
	}
	return msg, nil
}

// SubmitSellProperty uploads the media first (combined progress across
// images, video and the metadata request), then posts the lead with the
// returned URLs attached.
func (s *LeadService) SubmitSellProperty(ctx context.Context, lead models.SellPropertyLead, images []models.MediaFile, video *models.MediaFile, onProgress func(percent int)) (string, error) {
	if err := s.Validate.Struct(lead); err != nil {
		return "", err
	}

	media, tracker, err := s.Uploads.UploadMedia(ctx, images, video, onProgress)
	if err != nil {
		return "", err
	}
	lead.ImageURLs = media.ImageURLs
	lead.VideoURL = media.VideoURL

	msg, err := s.Backend.SubmitSellProperty(ctx, lead)
	if err != nil {
		return "", err
	}
	tracker.Finish()

	if msg == "" {
		msg = genericLeadThanks
	}
	return msg, nil
}

func (s *LeadService) SubmitEnquiry(ctx context.Context, enquiry models.BuySellEnquiry) (string, error) {
	if err := s.Validate.Struct(enquiry); err != nil {
		return "", err
	}
	msg, err := s.Backend.SubmitEnquiry(ctx, enquiry)
	if err != nil {
		return "", err
	}
	if msg == "" {
		msg = genericLeadThanks
	}
	return msg, nil
}

// MailtoLink builds the mailto: fallback used by the static forms. Spaces
// are %20-escaped because several mail clients choke on '+'.
func (s *LeadService) MailtoLink(subject, body string) string {
	q := url.Values{}
	if subject = strings.TrimSpace(subject); subject != "" {
		q.Set("subject", subject)
	}
	if body = strings.TrimSpace(body); body != "" {
		q.Set("body", body)
	}

	link := "mailto:" + s.InboxEmail
	if encoded := q.Encode(); encoded != "" {
		link += "?" + strings.ReplaceAll(encoded, "+", "%20")
	}
	return link
}
