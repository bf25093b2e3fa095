package models

// Listing is a property record as shown in search results.
type Listing struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	Pincode         string   `json:"pincode,omitempty"`
	Location        string   `json:"location,omitempty"`
	Price           string   `json:"price,omitempty"`
	PropertyType    string   `json:"propertyType,omitempty"`
	ListingType     string   `json:"listingType,omitempty"`
	Status          string   `json:"status,omitempty"`
	FurnishedStatus string   `json:"furnishedStatus,omitempty"`
	ListedBy        string   `json:"listedBy,omitempty"`
	Facing          string   `json:"facing,omitempty"`
	Bedrooms        int      `json:"bedrooms,omitempty"`
	Bathrooms       int      `json:"bathrooms,omitempty"`
	Area            string   `json:"area,omitempty"`
	Amenities       []string `json:"amenities,omitempty"`
	Verified        bool     `json:"verified,omitempty"`
	IsFeatured      bool     `json:"isFeatured,omitempty"`
	Image           string   `json:"image,omitempty"`
	Images          []string `json:"images,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
}

type SearchResult struct {
	Listings []Listing `json:"listings"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

// PropertyQuery is a visitor question about one listing.
type PropertyQuery struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Phone      string `json:"phone" validate:"required,min=5,max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
	Message    string `json:"message" validate:"required,min=1,max=2000"`
}
