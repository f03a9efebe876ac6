package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.SiteService = (*SiteService)(nil)

// SiteService is a mock implementation of siteqa.SiteService.
type SiteService struct {
	CreateSiteFn     func(ctx context.Context, site *siteqa.Site) error
	FindSiteByNameFn func(ctx context.Context, name string) (*siteqa.Site, error)
	FindSitesFn      func(ctx context.Context) ([]*siteqa.Site, error)
	DeleteSiteFn     func(ctx context.Context, id string) error
}

func (s *SiteService) CreateSite(ctx context.Context, site *siteqa.Site) error {
	return s.CreateSiteFn(ctx, site)
}

func (s *SiteService) FindSiteByName(ctx context.Context, name string) (*siteqa.Site, error) {
	return s.FindSiteByNameFn(ctx, name)
}

func (s *SiteService) FindSites(ctx context.Context) ([]*siteqa.Site, error) {
	return s.FindSitesFn(ctx)
}

func (s *SiteService) DeleteSite(ctx context.Context, id string) error {
	return s.DeleteSiteFn(ctx, id)
}
