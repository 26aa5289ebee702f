package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
)

const imageField = "image"

// ImageResource is a resource that can also be created or updated with an
// image file via the multipart "<path>/with-image" endpoints.
type ImageResource[T, C, U any] struct {
	*Resource[T, C, U]
	// imageRequired rejects CreateWithImage without a file.
	imageRequired bool
}

func NewImageResource[T, C, U any](d apiclient.Doer, path string, imageRequired bool) *ImageResource[T, C, U] {
	return &ImageResource[T, C, U]{Resource: NewResource[T, C, U](d, path), imageRequired: imageRequired}
}

// ListFiltered lists items in a category and/or subcategory.
func (r *ImageResource[T, C, U]) ListFiltered(ctx context.Context, f models.ImageFilter) ([]T, error) {
	q := url.Values{}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.SubcategoryID != "" {
		q.Set("subcategoryId", f.SubcategoryID)
	}
	if f.IsPublic != nil {
		q.Set("isPublic", strconv.FormatBool(*f.IsPublic))
	}
	return r.List(ctx, q)
}

// CreateWithImage posts fields and image as multipart/form-data.
func (r *ImageResource[T, C, U]) CreateWithImage(ctx context.Context, fields map[string]string, image *File) (T, error) {
	if image == nil && r.imageRequired {
		var zero T
		return zero, &ValidationError{Problems: []string{imageField + " is required"}}
	}
	return r.sendWithImage(ctx, http.MethodPost, r.path+"/with-image", fields, image)
}

// UpdateWithImage patches fields and, when image is non-nil, replaces the image.
func (r *ImageResource[T, C, U]) UpdateWithImage(ctx context.Context, id string, fields map[string]string, image *File) (T, error) {
	return r.sendWithImage(ctx, http.MethodPatch, r.item(id, "with-image"), fields, image)
}

func (r *ImageResource[T, C, U]) sendWithImage(ctx context.Context, method, path string, fields map[string]string, image *File) (T, error) {
	var files []apiclient.FormFile
	if image != nil {
		files = append(files, image.part(imageField))
	}
	return apiclient.Call[T](ctx, r.doer, apiclient.Request{
		Method: method,
		Path:   path,
		Body:   form(fields, files...),
	})
}
