// Package services holds the per-resource services the console drives.
// Each is a thin wrapper that fixes a path and method and hands the call to
// the authenticated API client.
package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/apiclient"
)

// ErrUnsupported is returned for operations a resource's endpoint does not offer.
var ErrUnsupported = errors.New("operation not supported for this resource")

// Browsable is the type-erased view of a resource used by the console.
type Browsable interface {
	Browse(ctx context.Context) (any, error)
	Fetch(ctx context.Context, id string) (any, error)
	Remove(ctx context.Context, id string) error
}

// Resource is a REST collection at path with item type T, create payload C
// and partial update payload U.
type Resource[T, C, U any] struct {
	doer apiclient.Doer
	path string
}

func NewResource[T, C, U any](d apiclient.Doer, path string) *Resource[T, C, U] {
	return &Resource[T, C, U]{doer: d, path: path}
}

func (r *Resource[T, C, U]) Path() string {
	return r.path
}

func (r *Resource[T, C, U]) List(ctx context.Context, query url.Values) ([]T, error) {
	return apiclient.Call[[]T](ctx, r.doer, apiclient.Request{Method: http.MethodGet, Path: r.path, Query: query})
}

func (r *Resource[T, C, U]) Get(ctx context.Context, id string) (T, error) {
	return apiclient.Call[T](ctx, r.doer, apiclient.Request{Method: http.MethodGet, Path: r.item(id)})
}

func (r *Resource[T, C, U]) Create(ctx context.Context, body C) (T, error) {
	if err := Validate(body); err != nil {
		var zero T
		return zero, err
	}
	return apiclient.Call[T](ctx, r.doer, apiclient.Request{Method: http.MethodPost, Path: r.path, Body: body})
}

// Update sends a partial PATCH.
func (r *Resource[T, C, U]) Update(ctx context.Context, id string, body U) (T, error) {
	if err := Validate(body); err != nil {
		var zero T
		return zero, err
	}
	return apiclient.Call[T](ctx, r.doer, apiclient.Request{Method: http.MethodPatch, Path: r.item(id), Body: body})
}

func (r *Resource[T, C, U]) Delete(ctx context.Context, id string) error {
	return r.doer.Do(ctx, apiclient.Request{Method: http.MethodDelete, Path: r.item(id)}, nil)
}

func (r *Resource[T, C, U]) Browse(ctx context.Context) (any, error) {
	return r.List(ctx, nil)
}

func (r *Resource[T, C, U]) Fetch(ctx context.Context, id string) (any, error) {
	return r.Get(ctx, id)
}

func (r *Resource[T, C, U]) Remove(ctx context.Context, id string) error {
	return r.Delete(ctx, id)
}

func (r *Resource[T, C, U]) item(id string, suffix ...string) string {
	parts := append([]string{r.path, url.PathEscape(id)}, suffix...)
	return strings.Join(parts, "/")
}
