package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/search"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tvly-key", r.Header.Get("Authorization"))

		var req SearchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Amazon protein powder 2024", req.Query)
		assert.Equal(t, 8, req.MaxResults)
		assert.Equal(t, "basic", req.SearchDepth)
		assert.Equal(t, "united states", req.Country)

		_, _ = w.Write([]byte(`{"results":[{"title":"T","url":"https://www.junglescout.com/blog/x","content":"c"}]}`))
	}))
	defer srv.Close()

	c := NewClient("tvly-key")
	c.endpoint = srv.URL

	resp, err := c.Search(context.Background(), &search.Request{Query: "Amazon protein powder 2024", MaxResults: 8, Country: "us"})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "www.junglescout.com", resp.Results[0].Source)
	assert.Equal(t, "c", resp.Results[0].Content)
}

func TestSearchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad key"))
	}))
	defer srv.Close()

	c := NewClient("tvly-key")
	c.endpoint = srv.URL

	_, err := c.Search(context.Background(), &search.Request{Query: "q"})
	require.ErrorContains(t, err, "status 401")
}
