// Package filters maps the structured search state of the listings pages to
// and from URL path + query form, so searches stay shareable and bookmarkable.
package filters

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage      = 1
	DefaultLimit     = 20
	MaxLimit         = 100
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "desc"
)

// FilterState is a flat record of optional search criteria plus pagination
// and sort controls. Every text field defaults to the empty string; Page and
// Limit are always clamped integers.
type FilterState struct {
	Query           string
	City            string
	State           string
	Pincode         string
	PropertyType    string
	ListingType     string
	Status          string
	FurnishedStatus string
	ListedBy        string
	Facing          string
	Amenities       string
	Verified        string
	IsFeatured      string
	MinPrice        string
	MaxPrice        string
	MinArea         string
	MaxArea         string
	MinBedrooms     string
	MinBathrooms    string
	Page            int
	Limit           int
	SortBy          string
	SortOrder       string
}

func Default() FilterState {
	return FilterState{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}
}

// Decode builds a FilterState from a city path segment (the "<slug>" part of
// /properties-in-<slug>, may be empty) and the request query. Strings are
// trimmed, malformed numbers silently fall back to the field default, and the
// legacy priceRange=<min>-<max> parameter backfills MinPrice/MaxPrice only
// when those are not set explicitly.
func Decode(cityPath string, query url.Values) FilterState {
	f := Default()

	get := func(key string) string { return strings.TrimSpace(query.Get(key)) }

	f.Query = get("q")
	f.City = get("city")
	if f.City == "" {
		f.City = Deslugify(cityPath)
	}
	f.State = get("state")
	f.Pincode = get("pincode")
	f.PropertyType = get("propertyType")
	f.ListingType = get("listingType")
	f.Status = get("status")
	f.FurnishedStatus = get("furnishedStatus")
	f.ListedBy = get("listedBy")
	f.Facing = get("facing")
	f.Amenities = get("amenities")
	f.Verified = get("verified")
	f.IsFeatured = get("isFeatured")
	f.MinPrice = get("minPrice")
	f.MaxPrice = get("maxPrice")
	f.MinArea = get("minArea")
	f.MaxArea = get("maxArea")
	f.MinBedrooms = get("minBedrooms")
	f.MinBathrooms = get("minBathrooms")

	if pr := get("priceRange"); pr != "" {
		if lo, hi, ok := strings.Cut(pr, "-"); ok {
			if f.MinPrice == "" {
				f.MinPrice = strings.TrimSpace(lo)
			}
			if f.MaxPrice == "" {
				f.MaxPrice = strings.TrimSpace(hi)
			}
		}
	}

	f.Page = clampInt(get("page"), DefaultPage, 1, 0)
	f.Limit = clampInt(get("limit"), DefaultLimit, 1, MaxLimit)

	if v := get("sortBy"); v != "" {
		f.SortBy = v
	}
	if v := get("sortOrder"); v == "asc" || v == "desc" {
		f.SortOrder = v
	}

	return f
}

// Encode renders the canonical URL for a FilterState. A non-empty City puts
// the search on its pretty path /properties-in-<slug>; default-valued page,
// limit and sort parameters are omitted to keep URLs minimal. The legacy
// priceRange parameter is read-only and never written.
func Encode(f FilterState) (pathname, rawQuery string) {
	if strings.TrimSpace(f.City) != "" {
		pathname = "/properties-in-" + Slugify(f.City)
	} else {
		pathname = "/properties/search"
	}

	q := url.Values{}
	set := func(key, val string) {
		if v := strings.TrimSpace(val); v != "" {
			q.Set(key, v)
		}
	}

	set("q", f.Query)
	set("state", f.State)
	set("pincode", f.Pincode)
	set("propertyType", f.PropertyType)
	set("listingType", f.ListingType)
	set("status", f.Status)
	set("furnishedStatus", f.FurnishedStatus)
	set("listedBy", f.ListedBy)
	set("facing", f.Facing)
	set("amenities", f.Amenities)
	set("verified", f.Verified)
	set("isFeatured", f.IsFeatured)
	set("minPrice", f.MinPrice)
	set("maxPrice", f.MaxPrice)
	set("minArea", f.MinArea)
	set("maxArea", f.MaxArea)
	set("minBedrooms", f.MinBedrooms)
	set("minBathrooms", f.MinBathrooms)

	if f.Page > DefaultPage {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 && f.Limit != DefaultLimit {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.SortBy != "" && f.SortBy != DefaultSortBy {
		q.Set("sortBy", f.SortBy)
	}
	if f.SortOrder != "" && f.SortOrder != DefaultSortOrder {
		q.Set("sortOrder", f.SortOrder)
	}

	return pathname, q.Encode()
}

// IsMeaningful reports whether any filter field other than pagination and
// sort carries a value, i.e. whether the state represents an active search.
func (f FilterState) IsMeaningful() bool {
	for _, v := range []string{
		f.Query, f.City, f.State, f.Pincode, f.PropertyType, f.ListingType,
		f.Status, f.FurnishedStatus, f.ListedBy, f.Facing, f.Amenities,
		f.Verified, f.IsFeatured, f.MinPrice, f.MaxPrice, f.MinArea,
		f.MaxArea, f.MinBedrooms, f.MinBathrooms,
	} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Values renders the state as backend API query parameters. Unlike Encode,
// pagination and sort are always present here: the backend should not guess
// our defaults.
func (f FilterState) Values() url.Values {
	_, rawQuery := Encode(f)
	q, _ := url.ParseQuery(rawQuery)
	if strings.TrimSpace(f.City) != "" {
		q.Set("city", strings.TrimSpace(f.City))
	}
	q.Set("page", strconv.Itoa(f.Page))
	q.Set("limit", strconv.Itoa(f.Limit))
	q.Set("sortBy", f.SortBy)
	q.Set("sortOrder", f.SortOrder)
	return q
}

// Slugify lowercases, strips quote characters, collapses runs of
// non-alphanumerics to a single hyphen and trims hyphens at both ends.
// Idempotent: Slugify(Slugify(x)) == Slugify(x).
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.NewReplacer("'", "", "\"", "", "`", "", "’", "").Replace(text)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range text {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// Deslugify replaces hyphen runs with single spaces. Not an inverse of
// Slugify: original casing and exact spacing are not recoverable.
func Deslugify(text string) string {
	parts := strings.FieldsFunc(text, func(r rune) bool { return r == '-' })
	return strings.Join(parts, " ")
}

func clampInt(raw string, def, min, max int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < min {
		n = min
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}
