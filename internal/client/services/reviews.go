package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
)

const ReviewsPath = "/reviews"

type ReviewService struct {
	*Resource[models.Review, models.CreateReviewRequest, models.UpdateReviewRequest]
}

func NewReviewService(d apiclient.Doer) *ReviewService {
	return &ReviewService{Resource: NewResource[models.Review, models.CreateReviewRequest, models.UpdateReviewRequest](d, ReviewsPath)}
}

func (s *ReviewService) Stats(ctx context.Context) (models.ReviewStats, error) {
	return apiclient.Call[models.ReviewStats](ctx, s.doer, apiclient.Request{Method: http.MethodGet, Path: s.path + "/stats"})
}

// Search lists reviews. The backend answers either with a bare array or
// with {data|items, total}; both are normalized into a ReviewPage.
func (s *ReviewService) Search(ctx context.Context, f models.ReviewFilter) (models.ReviewPage, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	raw, err := apiclient.Call[json.RawMessage](ctx, s.doer, apiclient.Request{Method: http.MethodGet, Path: s.path, Query: q})
	if err != nil {
		return models.ReviewPage{}, err
	}
	return decodeReviewPage(raw)
}

func decodeReviewPage(raw json.RawMessage) (models.ReviewPage, error) {
	page := models.ReviewPage{Items: []models.Review{}}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return page, nil
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &page.Items); err != nil {
			return models.ReviewPage{}, fmt.Errorf("decode reviews: %w", err)
		}
		return page, nil
	}

	var wrapped struct {
		Data  []models.Review `json:"data"`
		Items []models.Review `json:"items"`
		Total int             `json:"total"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return models.ReviewPage{}, fmt.Errorf("decode reviews: %w", err)
	}
	switch {
	case wrapped.Data != nil:
		page.Items = wrapped.Data
	case wrapped.Items != nil:
		page.Items = wrapped.Items
	}
	page.Total = wrapped.Total
	return page, nil
}

func (s *ReviewService) Publish(ctx context.Context, id string) (models.Review, error) {
	return s.moderate(ctx, id, "publish")
}

func (s *ReviewService) Hide(ctx context.Context, id string) (models.Review, error) {
	return s.moderate(ctx, id, "hide")
}

func (s *ReviewService) moderate(ctx context.Context, id, action string) (models.Review, error) {
	return apiclient.Call[models.Review](ctx, s.doer, apiclient.Request{Method: http.MethodPatch, Path: s.item(id, action)})
}

// CreateWithImage posts a review with the customer's photo.
func (s *ReviewService) CreateWithImage(ctx context.Context, req models.CreateReviewRequest, image *File) (models.Review, error) {
	if err := Validate(req); err != nil {
		return models.Review{}, err
	}
	if image == nil {
		return models.Review{}, &ValidationError{Problems: []string{"customerImage is required"}}
	}
	body := form(map[string]string{
		"customerId": req.CustomerID,
		"productId":  req.ProductID,
		"rating":     strconv.Itoa(req.Rating),
		"reviewText": req.ReviewText,
		"status":     req.Status,
	}, image.part("customerImage"))

	return apiclient.Call[models.Review](ctx, s.doer, apiclient.Request{Method: http.MethodPost, Path: s.path + "/with-image", Body: body})
}
