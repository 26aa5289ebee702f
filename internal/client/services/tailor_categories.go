package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
)

const TailorCategoriesPath = "/tailor-categories"

type TailorCategoryService struct {
	*Resource[models.TailorCategory, models.CreateTailorCategoryRequest, models.UpdateTailorCategoryRequest]
}

func NewTailorCategoryService(d apiclient.Doer) *TailorCategoryService {
	return &TailorCategoryService{
		Resource: NewResource[models.TailorCategory, models.CreateTailorCategoryRequest, models.UpdateTailorCategoryRequest](d, TailorCategoriesPath),
	}
}

// ListByParent lists top-level categories when parentID is empty, otherwise
// the subcategories of parentID.
func (s *TailorCategoryService) ListByParent(ctx context.Context, parentID string) ([]models.TailorCategory, error) {
	var q url.Values
	if parentID != "" {
		q = url.Values{"parentId": {parentID}}
	}
	return s.List(ctx, q)
}

func (s *TailorCategoryService) Reorder(ctx context.Context, req models.ReorderTailorCategoriesRequest) error {
	if err := Validate(req); err != nil {
		return err
	}
	return s.doer.Do(ctx, apiclient.Request{Method: http.MethodPatch, Path: s.path + "/reorder", Body: req}, nil)
}
