package searxng

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/search"
)

func TestSearchTruncatesToMaxResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "en-us", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{"results":[
			{"title":"1","url":"https://1.example","content":"a","engine":"google"},
			{"title":"2","url":"https://2.example","content":"b","engines":["bing"]},
			{"title":"3","url":"https://3.example","content":"c"}
		]}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL, 5).Search(context.Background(), &search.Request{
		Query: "Amazon x", MaxResults: 2, Language: "en", Country: "us",
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "google", resp.Results[0].Source)
	assert.Equal(t, "bing", resp.Results[1].Source)
}

func TestSearchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 0).Search(context.Background(), &search.Request{Query: "x"})
	require.ErrorContains(t, err, "status 429")
}
