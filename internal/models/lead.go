package models

// Lead-generation form payloads. Validation runs before any network call;
// violations never reach the backend.

type ContactLead struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=5,max=20"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type SellPropertyLead struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Phone         string   `json:"phone" validate:"required,min=5,max=20"`
	Email         string   `json:"email" validate:"omitempty,email"`
	City          string   `json:"city" validate:"required,min=1,max=100"`
	PropertyType  string   `json:"propertyType" validate:"required,min=1,max=50"`
	ExpectedPrice string   `json:"expectedPrice" validate:"omitempty,numeric"`
	Description   string   `json:"description" validate:"omitempty,max=5000"`
	ImageURLs     []string `json:"imageUrls,omitempty"`
	VideoURL      string   `json:"videoUrl,omitempty"`
}

type BuySellEnquiry struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Phone   string `json:"phone" validate:"required,min=5,max=20"`
	Intent  string `json:"intent" validate:"required,oneof=buy sell"`
	City    string `json:"city" validate:"omitempty,max=100"`
	Budget  string `json:"budget" validate:"omitempty,numeric"`
	Message string `json:"message" validate:"omitempty,max=2000"`
}

// MediaFile carries one uploaded file through the sell-property flow.
type MediaFile struct {
	Name        string
	ContentType string
	Data        []byte
}
