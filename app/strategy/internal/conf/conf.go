package conf

// Bootstrap 服务配置入口
type Bootstrap struct {
	Server   *Server   `json:"server"`
	Data     *Data     `json:"data"`
	Strategy *Strategy `json:"strategy"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// Data 报告归档与结果缓存，均为可选
type Data struct {
	Database *Database `json:"database"`
	Redis    *Redis    `json:"redis"`
}

type Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

type Redis struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	Db       int32  `json:"db"`
	Ttl      string `json:"ttl"`
}

// Strategy 研究引擎配置，与 pkg/config.Config 对应
type Strategy struct {
	Llm         *LLM         `json:"llm"`
	Search      *Search      `json:"search"`
	SecretsFile string       `json:"secrets_file"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
}

type LLM struct {
	Provider string `json:"provider"`
	BaseUrl  string `json:"base_url"`
	ApiKey   string `json:"api_key"`
	Model    string `json:"model"`
}

type Search struct {
	Provider            string   `json:"provider"`
	Language            string   `json:"language"`
	Country             string   `json:"country"`
	EnrichEmptySnippets bool     `json:"enrich_empty_snippets"`
	Serpapi             *SerpAPI `json:"serpapi"`
	Tavily              *Tavily  `json:"tavily"`
	Searxng             *SearXNG `json:"searxng"`
}

type SerpAPI struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}
