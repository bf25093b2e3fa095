package filters

import (
	"net/url"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Mumbai", "mumbai"},
		{"spaces", "New Delhi", "new-delhi"},
		{"quotes stripped", "D'Souza \"Estate\"", "dsouza-estate"},
		{"run of separators", "Navi  Mumbai / West", "navi-mumbai-west"},
		{"leading and trailing junk", "  --Pune-- ", "pune"},
		{"already a slug", "new-delhi", "new-delhi"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Slugify(tc.in)
			if got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if again := Slugify(got); again != got {
				t.Fatalf("Slugify not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestSlugifyShape(t *testing.T) {
	for _, in := range []string{"Greater Noida (West)", "!!!", "Delhi---NCR", "12 B Block"} {
		got := Slugify(in)
		for i := 0; i < len(got); i++ {
			c := got[i]
			ok := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
			if !ok {
				t.Fatalf("Slugify(%q) produced %q with invalid byte %q", in, got, c)
			}
		}
		if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
			t.Fatalf("Slugify(%q) = %q has edge hyphen", in, got)
		}
	}
}

func TestDeslugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"new-delhi", "new delhi"},
		{"navi--mumbai", "navi mumbai"},
		{"-pune-", "pune"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Deslugify(tc.in); got != tc.want {
			t.Errorf("Deslugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeDefaults(t *testing.T) {
	f := Decode("", url.Values{})
	if f != Default() {
		t.Fatalf("Decode of empty input differs from Default(): %#v", f)
	}
	if f.Page != 1 || f.Limit != 20 || f.SortBy != "createdAt" || f.SortOrder != "desc" {
		t.Fatalf("unexpected defaults: %#v", f)
	}
	if f.IsMeaningful() {
		t.Fatal("default state must not be meaningful")
	}
}

func TestDecodeCityFromPath(t *testing.T) {
	f := Decode("new-delhi", url.Values{})
	if f.City != "new delhi" {
		t.Fatalf("expected city from path, got %q", f.City)
	}

	q := url.Values{"city": {" Pune "}}
	f = Decode("new-delhi", q)
	if f.City != "Pune" {
		t.Fatalf("query city must win over path, got %q", f.City)
	}
}

func TestDecodePriceRangeBackfill(t *testing.T) {
	q, _ := url.ParseQuery("priceRange=5000000-10000000")
	f := Decode("", q)
	if f.MinPrice != "5000000" || f.MaxPrice != "10000000" {
		t.Fatalf("priceRange not backfilled: min=%q max=%q", f.MinPrice, f.MaxPrice)
	}

	q, _ = url.ParseQuery("minPrice=6000000&priceRange=5000000-10000000")
	f = Decode("", q)
	if f.MinPrice != "6000000" {
		t.Fatalf("explicit minPrice must win over legacy range, got %q", f.MinPrice)
	}
	if f.MaxPrice != "10000000" {
		t.Fatalf("maxPrice should still backfill, got %q", f.MaxPrice)
	}
}

func TestDecodeClamping(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"non numeric", "page=abc&limit=xyz", 1, 20},
		{"below minimum", "page=0&limit=-5", 1, 1},
		{"above maximum", "page=7&limit=500", 7, 100},
		{"empty values", "page=&limit=", 1, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tc.query)
			f := Decode("", q)
			if f.Page != tc.wantPage || f.Limit != tc.wantLimit {
				t.Fatalf("got page=%d limit=%d, want page=%d limit=%d",
					f.Page, f.Limit, tc.wantPage, tc.wantLimit)
			}
		})
	}
}

func TestEncodeAllDefaultsWithCity(t *testing.T) {
	f := Default()
	f.City = "New Delhi"
	pathname, rawQuery := Encode(f)
	if pathname != "/properties-in-new-delhi" {
		t.Fatalf("unexpected pathname %q", pathname)
	}
	if rawQuery != "" {
		t.Fatalf("all-default pagination/sort must be omitted, got %q", rawQuery)
	}
}

func TestEncodeWithoutCity(t *testing.T) {
	f := Default()
	f.MinPrice = "5000000"
	f.Page = 3
	pathname, rawQuery := Encode(f)
	if pathname != "/properties/search" {
		t.Fatalf("unexpected pathname %q", pathname)
	}
	q, _ := url.ParseQuery(rawQuery)
	if q.Get("minPrice") != "5000000" || q.Get("page") != "3" {
		t.Fatalf("unexpected query %q", rawQuery)
	}
	if q.Has("limit") || q.Has("sortBy") || q.Has("sortOrder") {
		t.Fatalf("default-valued params must be omitted: %q", rawQuery)
	}
}

func TestRoundTrip(t *testing.T) {
	f := Default()
	f.Query = "sea view"
	f.City = "mumbai" // slug-normal casing survives the path round trip
	f.PropertyType = "apartment"
	f.ListingType = "sale"
	f.FurnishedStatus = "semi-furnished"
	f.Amenities = "lift,parking"
	f.Verified = "true"
	f.MinPrice = "2500000"
	f.MaxPrice = "9000000"
	f.MinBedrooms = "2"
	f.Page = 2
	f.Limit = 50
	f.SortBy = "price"
	f.SortOrder = "asc"

	pathname, rawQuery := Encode(f)
	cityPath := ""
	if rest, ok := strings.CutPrefix(pathname, "/properties-in-"); ok {
		cityPath = rest
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		t.Fatalf("Encode produced unparseable query %q: %v", rawQuery, err)
	}

	got := Decode(cityPath, q)
	if got != f {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, f)
	}
}

func TestIsMeaningfulSingleField(t *testing.T) {
	set := []func(*FilterState){
		func(f *FilterState) { f.Query = "villa" },
		func(f *FilterState) { f.City = "pune" },
		func(f *FilterState) { f.Pincode = "400001" },
		func(f *FilterState) { f.Verified = "true" },
		func(f *FilterState) { f.MinBathrooms = "1" },
	}
	for i, apply := range set {
		f := Default()
		apply(&f)
		if !f.IsMeaningful() {
			t.Errorf("case %d: state with one filter field must be meaningful", i)
		}
	}

	f := Default()
	f.Page = 9
	f.Limit = 5
	f.SortBy = "price"
	if f.IsMeaningful() {
		t.Error("pagination/sort alone must not be meaningful")
	}
}

func TestValuesAlwaysCarryPagination(t *testing.T) {
	f := Default()
	f.City = "Pune"
	q := f.Values()
	if q.Get("page") != "1" || q.Get("limit") != "20" {
		t.Fatalf("backend values must always carry pagination: %v", q)
	}
	if q.Get("sortBy") != "createdAt" || q.Get("sortOrder") != "desc" {
		t.Fatalf("backend values must always carry sort: %v", q)
	}
	if q.Get("city") != "Pune" {
		t.Fatalf("backend values must carry the raw city: %v", q)
	}
}
