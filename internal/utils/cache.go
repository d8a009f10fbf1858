package utils

import (
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheItem 包装缓存数据和过期时间
type cacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// TTLCache 本地 LRU 缓存，带过期时间，挡在只读目录类查询前面
type TTLCache struct {
	lruCache *lru.Cache[string, cacheItem]
}

var (
	cacheInstance *TTLCache
	cacheOnce     sync.Once
)

// GetCache 获取单例缓存实例，首次调用时初始化，并发安全
func GetCache() *TTLCache {
	cacheOnce.Do(func() {
		l, err := lru.New[string, cacheItem](128)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &TTLCache{
			lruCache: l,
		}
	})
	return cacheInstance
}

// Set 设置缓存，TTL 为过期时间
func (c *TTLCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, cacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get 获取缓存，若不存在或已过期则返回 nil
func (c *TTLCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

// Delete 删除指定缓存
func (c *TTLCache) Delete(key string) {
	c.lruCache.Remove(key)
}
