package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/domain"
	"github.com/jamieroller/amazon-strategy-assistant/app/strategy/internal/repo"
	dm "github.com/jamieroller/amazon-strategy-assistant/app/strategy/pkg/model"
)

const cacheKeyPrefix = "strategy:research:"

type resultCache struct {
	data *Data
	log  *log.Helper
}

// NewResultCache 创建 Redis 结果缓存，未配置 Redis 时所有操作为空操作
func NewResultCache(data *Data, logger log.Logger) repo.ResultCache {
	return &resultCache{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func cacheKey(question string, depth dm.Depth) string {
	sum := sha256.Sum256([]byte(string(depth) + "|" + strings.TrimSpace(question)))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (c *resultCache) Get(ctx context.Context, question string, depth dm.Depth) (*domain.Research, bool, error) {
	if c.data.rdb == nil {
		return nil, false, nil
	}

	val, err := c.data.rdb.Get(ctx, cacheKey(question, depth)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var research domain.Research
	if err := json.Unmarshal([]byte(val), &research); err != nil {
		return nil, false, err
	}
	research.Cached = true
	return &research, true, nil
}

func (c *resultCache) Set(ctx context.Context, question string, depth dm.Depth, research *domain.Research) error {
	if c.data.rdb == nil {
		return nil
	}

	b, err := json.Marshal(research)
	if err != nil {
		return err
	}
	return c.data.rdb.Set(ctx, cacheKey(question, depth), b, c.data.cacheTTL).Err()
}
