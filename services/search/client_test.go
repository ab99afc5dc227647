package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValyuClient_Search(t *testing.T) {
	var gotAuth string
	var gotReq valyuSearchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		assert.Equal(t, "/search", r.URL.Path)

		json.NewEncoder(w).Encode(valyuSearchResponse{
			Success: true,
			Results: []Document{
				{URL: "https://www.yelp.com/biz/acme", Title: "Acme Plumbing - Yelp", Content: "Call (020) 7946-0123"},
			},
		})
	}))
	defer server.Close()

	client := NewValyuClient("test-key", server.URL, 5*time.Second, zap.NewNop())
	docs, err := client.Search(context.Background(), "plumbing contractor near Austin, TX", 20)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "Acme Plumbing - Yelp", docs[0].Title)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "plumbing contractor near Austin, TX", gotReq.Query)
	assert.Equal(t, 20, gotReq.MaxNumResults)
	assert.Equal(t, "all", gotReq.SearchType)
}

func TestValyuClient_BackendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(valyuSearchResponse{Success: false, Error: "quota exceeded"})
	}))
	defer server.Close()

	client := NewValyuClient("test-key", server.URL, 5*time.Second, zap.NewNop())
	docs, err := client.Search(context.Background(), "anything", 5)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Nil(t, docs)
}

func TestValyuClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewValyuClient("test-key", server.URL, 5*time.Second, zap.NewNop())
	_, err := client.Search(context.Background(), "anything", 5)
	assert.Error(t, err)
}

func TestValyuClient_MissingKey(t *testing.T) {
	client := NewValyuClient("", "https://api.example.com/v1", 5*time.Second, zap.NewNop())
	_, err := client.Search(context.Background(), "anything", 5)
	assert.Error(t, err)
}
