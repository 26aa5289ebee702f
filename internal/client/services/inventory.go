package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
)

const InventoryPath = "/inventory"

// InventoryService only lists and creates; items are not addressable by id.
type InventoryService struct {
	doer apiclient.Doer
}

func NewInventoryService(d apiclient.Doer) *InventoryService {
	return &InventoryService{doer: d}
}

func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	return apiclient.Call[[]models.InventoryItem](ctx, s.doer, apiclient.Request{Method: http.MethodGet, Path: InventoryPath})
}

func (s *InventoryService) Create(ctx context.Context, req models.CreateInventoryItemRequest) (models.InventoryItem, error) {
	if err := Validate(req); err != nil {
		return models.InventoryItem{}, err
	}
	return apiclient.Call[models.InventoryItem](ctx, s.doer, apiclient.Request{Method: http.MethodPost, Path: InventoryPath, Body: req})
}

func (s *InventoryService) Browse(ctx context.Context) (any, error) {
	return s.List(ctx)
}

func (s *InventoryService) Fetch(context.Context, string) (any, error) {
	return nil, ErrUnsupported
}

func (s *InventoryService) Remove(context.Context, string) error {
	return ErrUnsupported
}
