package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/search"
)

func TestSearchParsesOrganicResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "google", q.Get("engine"))
		assert.Equal(t, "Amazon pricing strategy eco products market", q.Get("q"))
		assert.Equal(t, "key", q.Get("api_key"))
		assert.Equal(t, "8", q.Get("num"))
		assert.Equal(t, "en", q.Get("hl"))
		assert.Equal(t, "us", q.Get("gl"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"organic_results":[
			{"title":"A","link":"https://a.example","snippet":"sa","displayed_link":"a.example › x"},
			{"title":"B","link":"https://b.example","snippet":"sb","source":"B News"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.URL)
	resp, err := c.Search(context.Background(), &search.Request{
		Query:      "Amazon pricing strategy eco products market",
		MaxResults: 8,
		Language:   "en",
		Country:    "us",
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "https://a.example", resp.Results[0].URL)
	assert.Equal(t, "a.example › x", resp.Results[0].DisplayedLink)
	assert.Equal(t, "sb", resp.Results[1].Content)
	assert.Equal(t, "B News", resp.Results[1].Source)
}

func TestSearchMissingOrganicResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"search_metadata":{"status":"Success"}}`))
	}))
	defer srv.Close()

	resp, err := NewClient("key", srv.URL).Search(context.Background(), &search.Request{Query: "x"})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
}

func TestSearchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") == "bad" {
			_, _ = w.Write([]byte(`{"error":"Invalid API key."}`))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient("bad", srv.URL).Search(context.Background(), &search.Request{Query: "x"})
	require.ErrorContains(t, err, "Invalid API key")

	_, err = NewClient("good", srv.URL).Search(context.Background(), &search.Request{Query: "x"})
	require.ErrorContains(t, err, "status 429")
}
