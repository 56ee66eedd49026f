package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/logger"
	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/search"
)

const (
	searchRequestSize = 8
	searchKeepSize    = 6
	enrichMaxRunes    = 500
	fetchTimeout      = 15 * time.Second
)

// SearchOutcome 单次搜索的结果。Err 非空表示本次搜索失败，Results 为空。
type SearchOutcome struct {
	Term     string
	Category dm.Category
	Query    string
	Results  []dm.SearchResult
	Err      error
}

// Failed 本次搜索是否失败
func (o SearchOutcome) Failed() bool {
	return o.Err != nil
}

// Take 返回最多 n 条结果
func (o SearchOutcome) Take(n int) []dm.SearchResult {
	if len(o.Results) <= n {
		return o.Results
	}
	return o.Results[:n]
}

// SearchQuery 根据分类生成搜索词
func SearchQuery(term string, category dm.Category) string {
	if tpl, ok := searchPhrases[category]; ok {
		return fmt.Sprintf(tpl, term)
	}
	return "Amazon " + term
}

// Search 执行一次分类定向搜索，保留前 keep 条结果（不超过 6 条），
// 只对保留下来的空摘要结果抓取正文
func (e *Engine) Search(ctx context.Context, term string, category dm.Category, keep int) SearchOutcome {
	out := SearchOutcome{
		Term:     term,
		Category: category,
		Query:    SearchQuery(term, category),
	}
	if keep <= 0 || keep > searchKeepSize {
		keep = searchKeepSize
	}

	resp, err := e.searcher.Search(ctx, &search.Request{
		Query:      out.Query,
		MaxResults: searchRequestSize,
		Language:   e.language,
		Country:    e.country,
	})
	if err != nil {
		out.Err = err
		return out
	}

	for _, r := range resp.Results {
		source := r.DisplayedLink
		if source == "" {
			source = r.Source
		}
		out.Results = append(out.Results, dm.SearchResult{
			Title:   r.Title,
			Snippet: r.Content,
			Link:    r.URL,
			Source:  source,
		})
		if len(out.Results) >= keep {
			break
		}
	}

	e.enrich(ctx, out.Results)
	return out
}

// enrich 为空摘要结果补充正文，ctx 结束后不再发起抓取
func (e *Engine) enrich(ctx context.Context, results []dm.SearchResult) {
	if e.fetch == nil {
		return
	}
	for i := range results {
		res := &results[i]
		if res.Snippet != "" || res.Link == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			logger.Log.Debugf("停止抓取正文: %v", err)
			return
		}
		text, err := e.fetch(ctx, res.Link)
		if err != nil {
			logger.Log.Debugf("抓取正文失败 [%s]: %v", res.Link, err)
			continue
		}
		res.Snippet = truncateRunes(text, enrichMaxRunes)
	}
}

// fetchAndCleanContent 抓取 URL 并提取核心文本
func fetchAndCleanContent(ctx context.Context, rawURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(article.TextContent), " "), nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
