package server

import (
	"embed"
	"io/fs"
	nethttp "net/http"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/conf"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/service"
)

// 一次完整研究包含多次 LLM 与搜索调用，默认超时需要足够长
const defaultTimeout = 3 * time.Minute

//go:embed assets/*
var assets embed.FS

func NewHTTPServer(c *conf.Server, s *service.StrategyService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
		http.Timeout(defaultTimeout),
	}
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				opts = append(opts, http.Timeout(d))
			} else {
				log.NewHelper(logger).Warnf("invalid http timeout %q, using %s", c.Http.Timeout, defaultTimeout)
			}
		}
	}

	srv := http.NewServer(opts...)
	service.RegisterHTTPServer(srv, s)

	srv.HandleFunc("/", indexHandler(assets, logger))

	return srv
}

// indexHandler 返回内嵌的单页表单
func indexHandler(fsys fs.FS, logger log.Logger) nethttp.HandlerFunc {
	helper := log.NewHelper(logger)
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/" {
			nethttp.NotFound(w, r)
			return
		}
		content, err := fs.ReadFile(fsys, "assets/index.html")
		if err != nil {
			helper.Errorf("read index page: %v", err)
			nethttp.Error(w, "index page unavailable", nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(content); err != nil {
			helper.Warnf("write index page: %v", err)
		}
	}
}
