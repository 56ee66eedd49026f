package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/search"
)

const defaultBaseURL = "https://serpapi.com/search.json"

// Client SerpAPI (Google 搜索) 客户端
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的 SerpAPI 客户端，baseURL 为空时使用官方地址
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// SearchResponse SerpAPI 响应，仅保留自然搜索结果
type SearchResponse struct {
	OrganicResults []OrganicResult `json:"organic_results"`
	Error          string          `json:"error"`
}

// OrganicResult 单条自然搜索结果
type OrganicResult struct {
	Position      int    `json:"position"`
	Title         string `json:"title"`
	Link          string `json:"link"`
	DisplayedLink string `json:"displayed_link"`
	Snippet       string `json:"snippet"`
	Source        string `json:"source"`
	Date          string `json:"date"`
}

// Search 执行 Google 搜索
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("engine", "google")
	q.Set("q", req.Query)
	q.Set("api_key", c.apiKey)
	if req.MaxResults > 0 {
		q.Set("num", strconv.Itoa(req.MaxResults))
	}
	if req.Language != "" {
		q.Set("hl", req.Language)
	}
	if req.Country != "" {
		q.Set("gl", req.Country)
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi error (status %d): %s", res.StatusCode, string(body))
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}
	if searchResp.Error != "" && len(searchResp.OrganicResults) == 0 {
		return nil, fmt.Errorf("serpapi error: %s", searchResp.Error)
	}

	results := make([]search.Result, 0, len(searchResp.OrganicResults))
	for _, r := range searchResp.OrganicResults {
		results = append(results, search.Result{
			Title:         r.Title,
			URL:           r.Link,
			Content:       r.Snippet,
			DisplayedLink: r.DisplayedLink,
			Source:        r.Source,
			PublishedDate: r.Date,
		})
	}

	return &search.Response{Results: results}, nil
}
