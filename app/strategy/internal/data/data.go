package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/conf"
)

const defaultCacheTTL = 6 * time.Hour

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS research_reports (
		id SERIAL PRIMARY KEY,
		run_id TEXT NOT NULL UNIQUE,
		question TEXT NOT NULL,
		depth TEXT NOT NULL,
		category TEXT NOT NULL,
		template_used TEXT NOT NULL,
		report TEXT NOT NULL,
		sources TEXT[] NOT NULL DEFAULT '{}',
		analysis JSONB,
		failed_searches INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// Data 数据层资源。db 与 rdb 都可能为空，分别表示归档和缓存未启用
type Data struct {
	db       *sql.DB
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewData 根据配置打开数据库和 Redis 连接
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)
	d := &Data{cacheTTL: defaultCacheTTL}
	ctx := context.Background()

	if c != nil && c.Database != nil && c.Database.Source != "" {
		driver := c.Database.Driver
		if driver == "" {
			driver = "postgres"
		}
		db, err := sql.Open(driver, c.Database.Source)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		if err := migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		d.db = db
	} else {
		helper.Info("database not configured, report archive disabled")
	}

	if c != nil && c.Redis != nil && c.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       int(c.Redis.Db),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			if d.db != nil {
				d.db.Close()
			}
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		if c.Redis.Ttl != "" {
			ttl, err := time.ParseDuration(c.Redis.Ttl)
			if err != nil {
				helper.Warnf("invalid redis ttl %q, using %s", c.Redis.Ttl, defaultCacheTTL)
			} else {
				d.cacheTTL = ttl
			}
		}
		d.rdb = rdb
	} else {
		helper.Info("redis not configured, result cache disabled")
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		if d.db != nil {
			d.db.Close()
		}
		if d.rdb != nil {
			d.rdb.Close()
		}
	}
	return d, cleanup, nil
}

// ArchiveEnabled 是否配置了报告归档
func (d *Data) ArchiveEnabled() bool {
	return d.db != nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to init research_reports table: %w", err)
	}
	return nil
}
