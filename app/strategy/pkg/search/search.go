package search

import "context"

// Searcher 定义通用的搜索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request 通用搜索请求
type Request struct {
	Query      string
	MaxResults int
	Language   string // hl, e.g. "en"
	Country    string // gl, e.g. "us"
}

// Response 通用搜索响应
type Response struct {
	Results []Result
}

// Result 单条搜索结果
type Result struct {
	Title         string
	URL           string
	Content       string // 摘要片段
	DisplayedLink string
	Source        string
	PublishedDate string
}
