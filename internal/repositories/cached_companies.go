package repositories

import (
	"context"
	"time"

	"github.com/jobboardly/backend/internal/entities"
	gocache "github.com/patrickmn/go-cache"
)

type companyReader interface {
	GetByID(ctx context.Context, id string) (*entities.Company, error)
}

// CachedCompanies is a read-through cache over the companies repository.
// Company records are read on every job view and every notification fan-out,
// so lookups are cached for a short window. Writes bypass this type.
type CachedCompanies struct {
	repo  companyReader
	cache *gocache.Cache
}

func NewCachedCompanies(repo companyReader) *CachedCompanies {
	return &CachedCompanies{repo: repo, cache: gocache.New(5*time.Minute, 10*time.Minute)}
}

func (c CachedCompanies) GetByID(ctx context.Context, id string) (*entities.Company, error) {
	if value, found := c.cache.Get(id); found {
		company := value.(entities.Company)
		return &company, nil
	}

	company, err := c.repo.GetByID(ctx, id)
	if company != nil {
		if err = c.cache.Add(id, *company, gocache.DefaultExpiration); err != nil {
			return company, err
		}
	}

	return company, err
}
