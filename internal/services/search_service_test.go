package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateFront/internal/backend"
	"estateFront/internal/filters"
	"estateFront/internal/models"
)

func TestSearchRetriesCityCaseVariants(t *testing.T) {
	var cities []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("city")
		cities = append(cities, city)
		if city == "Navi Mumbai" {
			w.Write([]byte(`[{"id":"p1","title":"Flat"}]`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := &SearchService{Backend: backend.NewClient(srv.Client(), srv.URL)}

	f := filters.Default()
	f.City = "navi mumbai"
	res, err := svc.Search(context.Background(), f)
	require.NoError(t, err)

	require.Len(t, res.Listings, 1)
	assert.Equal(t, []string{"navi mumbai", "Navi Mumbai"}, cities,
		"exact spelling first, then the title-case variant")
}

func TestSearchAcceptsZeroAfterVariantsExhausted(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	svc := &SearchService{Backend: backend.NewClient(srv.Client(), srv.URL)}

	f := filters.Default()
	f.City = "Atlantis"
	res, err := svc.Search(context.Background(), f)
	require.NoError(t, err)
	assert.Empty(t, res.Listings)
	// original spelling plus the one distinct case variant ("atlantis")
	assert.Equal(t, 2, calls)
}

func TestSearchNoVariantsWithoutCity(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := &SearchService{Backend: backend.NewClient(srv.Client(), srv.URL)}

	res, err := svc.Search(context.Background(), filters.Default())
	require.NoError(t, err)
	assert.Empty(t, res.Listings)
	assert.Equal(t, 1, calls, "no retry without a city filter")
}

func TestStaleSearchIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "slow" {
			close(started)
			<-release
		}
		w.Write([]byte(`[{"id":"p1","title":"Flat"}]`))
	}))
	defer srv.Close()

	svc := &SearchService{Backend: backend.NewClient(srv.Client(), srv.URL)}

	slow := filters.Default()
	slow.Query = "slow"

	done := make(chan error, 1)
	go func() {
		_, err := svc.Search(context.Background(), slow)
		done <- err
	}()
	<-started

	// A newer search supersedes the in-flight one.
	fast := filters.Default()
	fast.Query = "fast"
	_, err := svc.Search(context.Background(), fast)
	require.NoError(t, err)

	close(release)
	assert.ErrorIs(t, <-done, models.ErrStaleSearch)
}
