package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of siteqa.ItemService.
type ItemService struct {
	CreateItemFn        func(ctx context.Context, item *siteqa.Item) error
	FindItemsFn         func(ctx context.Context, filter siteqa.ItemFilter) ([]*siteqa.Item, error)
	DeleteItemsBySiteFn func(ctx context.Context, siteID string) error
}

func (s *ItemService) CreateItem(ctx context.Context, item *siteqa.Item) error {
	return s.CreateItemFn(ctx, item)
}

func (s *ItemService) FindItems(ctx context.Context, filter siteqa.ItemFilter) ([]*siteqa.Item, error) {
	return s.FindItemsFn(ctx, filter)
}

func (s *ItemService) DeleteItemsBySite(ctx context.Context, siteID string) error {
	return s.DeleteItemsBySiteFn(ctx, siteID)
}
