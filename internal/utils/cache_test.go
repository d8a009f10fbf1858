package utils

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetCache_ConcurrentFirstUse(t *testing.T) {
	// 单例首次初始化必须能扛住并发首访（用 -race 验证）
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n)
			GetCache().Set(key, n, time.Minute)
			assert.Equal(t, n, GetCache().Get(key))
		}(i)
	}
	wg.Wait()
}

func TestCache_TTLExpiry(t *testing.T) {
	c := GetCache()

	c.Set("hidup", "ya", time.Minute)
	assert.Equal(t, "ya", c.Get("hidup"))

	c.Set("hangus", "ya", -time.Second)
	assert.Nil(t, c.Get("hangus"))

	c.Delete("hidup")
	assert.Nil(t, c.Get("hidup"))
}
