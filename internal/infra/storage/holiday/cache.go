package holiday

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

const cacheSize = 8

// Source источник праздников по году
type Source interface {
	ListForYear(ctx context.Context, year int) ([]domain.Holiday, error)
	ListAll(ctx context.Context) ([]domain.Holiday, error)
}

// Cache кэширует праздники по году на ttl
// Праздники меняются вручную и редко, назначения залов здесь не кэшируются
type Cache struct {
	source Source
	years  *expirable.LRU[int, []domain.Holiday]
}

// NewCache оборачивает источник кэшем; ttl <= 0 отключает кэш
func NewCache(source Source, ttl time.Duration) *Cache {
	c := &Cache{source: source}
	if ttl > 0 {
		c.years = expirable.NewLRU[int, []domain.Holiday](cacheSize, nil, ttl)
	}
	return c
}

// ListForYear праздники года из кэша или источника
func (c *Cache) ListForYear(ctx context.Context, year int) ([]domain.Holiday, error) {
	if c.years != nil {
		if holidays, ok := c.years.Get(year); ok {
			return holidays, nil
		}
	}

	holidays, err := c.source.ListForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	if c.years != nil {
		c.years.Add(year, holidays)
	}
	return holidays, nil
}

// ListAll все праздники, без кэша
func (c *Cache) ListAll(ctx context.Context) ([]domain.Holiday, error) {
	return c.source.ListAll(ctx)
}
